package market

import (
	"math/rand"
	"testing"
)

func TestDecayNewsImpact(t *testing.T) {
	tests := []struct {
		name        string
		impact      float64
		daysLeft    int
		wantImpact  float64
		wantDays    int
		wantApplied float64
	}{
		{"exhausted", 0.5, 0, 0, 0, 0},
		{"negative days", 0.5, -3, 0, 0, 0},
		{"mid decay", 0.01, 5, 0.01, 4, 0.005},
		{"last day", 0.02, 1, 0, 0, 0.01},
		{"negative impact", -0.04, 3, -0.04, 2, -0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			impact, days, applied := DecayNewsImpact(tt.impact, tt.daysLeft)
			if impact != tt.wantImpact {
				t.Errorf("impact = %v, want %v", impact, tt.wantImpact)
			}
			if days != tt.wantDays {
				t.Errorf("days = %v, want %v", days, tt.wantDays)
			}
			if applied != tt.wantApplied {
				t.Errorf("applied = %v, want %v", applied, tt.wantApplied)
			}
		})
	}
}

func TestUpdateDailyPriceInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	econ := NewEconomy()
	c := NewCompany(rng, "TST01", "IT", 20_000, 0)

	for day := 1; day <= 200; day++ {
		c.UpdateDailyPrice(rng, econ.Factor(), econ.Factors, econ.National)

		last := c.Candles[len(c.Candles)-1]
		if last.Low > last.High {
			t.Fatalf("day %d: low %v above high %v", day, last.Low, last.High)
		}
		if last.Close > MaxPrice {
			t.Fatalf("day %d: close %v above ceiling", day, last.Close)
		}
		if last.Close < 0 || last.Low < 0 {
			t.Fatalf("day %d: negative price", day)
		}
		if c.Capital < 0 {
			t.Fatalf("day %d: negative capital %v", day, c.Capital)
		}
		if c.Debt < 0 {
			t.Fatalf("day %d: negative debt %v", day, c.Debt)
		}
		if c.Revenue < 100_000 {
			t.Fatalf("day %d: revenue %v under floor", day, c.Revenue)
		}
	}

	if len(c.Candles) != 201 {
		t.Errorf("candle count = %d, want 201", len(c.Candles))
	}
}

func TestUpdateDailyPriceFrozenWhenBankrupt(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	econ := NewEconomy()
	c := NewCompany(rng, "TST02", "Energy", 20_000, 0)
	c.Bankrupt = true

	before := c.CurrentPrice()
	c.UpdateDailyPrice(rng, econ.Factor(), econ.Factors, econ.National)
	if c.CurrentPrice() != before {
		t.Errorf("price moved after bankruptcy: %v -> %v", before, c.CurrentPrice())
	}
	if len(c.Candles) != 1 {
		t.Errorf("candle appended after bankruptcy")
	}
}

func TestLastDiffPct(t *testing.T) {
	c := &Company{Candles: []Candle{{Close: 100}}}
	if got := c.LastDiffPct(); got != 0 {
		t.Errorf("single candle diff = %v, want 0", got)
	}

	c.Candles = append(c.Candles, Candle{Close: 110})
	if got := c.LastDiffPct(); got != 10 {
		t.Errorf("diff = %v, want 10", got)
	}

	c.Candles = append(c.Candles, Candle{Close: 55})
	if got := c.LastDiffPct(); got != -50 {
		t.Errorf("diff = %v, want -50", got)
	}
}

func TestCheckBankruptcyLowPrice(t *testing.T) {
	c := &Company{
		Candles: []Candle{{Close: 8_000}},
		Capital: 1_000_000,
		Debt:    100,
	}

	// 0.7 per day: 14 days accumulate 9.8, the 15th crosses 10.
	for day := 1; day <= 14; day++ {
		c.CheckBankruptcy(day)
		if c.Bankrupt {
			t.Fatalf("bankrupt after %d days, want 15", day)
		}
	}
	c.CheckBankruptcy(15)
	if !c.Bankrupt {
		t.Fatal("not bankrupt after 15 low-price days")
	}
	if c.BankruptDay != 15 {
		t.Errorf("BankruptDay = %d, want 15", c.BankruptDay)
	}
}

func TestCheckBankruptcyCapitalFloor(t *testing.T) {
	c := &Company{
		Candles: []Candle{{Close: 50_000}},
		Capital: 400,
		Debt:    100,
	}
	c.CheckBankruptcy(1)
	if !c.Bankrupt {
		t.Fatal("capital under floor should bankrupt immediately")
	}
}

func TestCheckBankruptcyDebtRatio(t *testing.T) {
	// High debt at a high price accumulates slowly (0.2 per day).
	high := &Company{
		Candles: []Candle{{Close: 80_000}},
		Capital: 1_000,
		Debt:    10_000,
	}
	high.CheckBankruptcy(1)
	if high.WarningDays != 0.2 {
		t.Errorf("high-price warning = %v, want 0.2", high.WarningDays)
	}

	// The same debt ratio at a mid price accumulates at 0.5 per day.
	mid := &Company{
		Candles: []Candle{{Close: 50_000}},
		Capital: 1_000,
		Debt:    10_000,
	}
	mid.CheckBankruptcy(1)
	if mid.WarningDays != 0.5 {
		t.Errorf("mid-price warning = %v, want 0.5", mid.WarningDays)
	}
}

func TestCheckBankruptcyWarningReset(t *testing.T) {
	c := &Company{
		Candles:     []Candle{{Close: 8_000}},
		Capital:     1_000_000,
		Debt:        100,
		WarningDays: 5,
	}
	// Recovery above the threshold clears the accumulator.
	c.Candles[0].Close = 60_000
	c.CheckBankruptcy(1)
	if c.WarningDays != 0 {
		t.Errorf("warning not reset, got %v", c.WarningDays)
	}
	if c.Bankrupt {
		t.Error("healthy company flagged bankrupt")
	}
}

func TestApplyPriceShock(t *testing.T) {
	c := &Company{Candles: []Candle{{Open: 100, High: 110, Low: 90, Close: 100}}}

	c.ApplyPriceShock(-50)
	last := c.Candles[0]
	if last.Close != 50 {
		t.Errorf("close = %v, want 50", last.Close)
	}
	if last.High != 55 || last.Low != 45 {
		t.Errorf("high/low = %v/%v, want 55/45", last.High, last.Low)
	}
}

func TestRandomNameShape(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		name := RandomName(rng)
		if len(name) != 5 {
			t.Fatalf("name %q length %d, want 5", name, len(name))
		}
		for j := 0; j < 3; j++ {
			if name[j] < 'A' || name[j] > 'Z' {
				t.Fatalf("name %q: position %d not a letter", name, j)
			}
		}
		for j := 3; j < 5; j++ {
			if name[j] < '0' || name[j] > '9' {
				t.Fatalf("name %q: position %d not a digit", name, j)
			}
		}
	}
}
