package market

import (
	"math/rand"
	"testing"
)

func TestConditionThresholds(t *testing.T) {
	tests := []struct {
		sentiment float64
		want      Condition
	}{
		{20, ConditionBoom},
		{15, ConditionBoom},
		{14.9, ConditionNormal},
		{0, ConditionNormal},
		{-5, ConditionNormal},
		{-5.1, ConditionRecession},
		{-19.9, ConditionRecession},
		{-20, ConditionCrisis},
		{-30, ConditionCrisis},
	}

	e := NewEconomy()
	for _, tt := range tests {
		e.SentimentScore = tt.sentiment
		if got := e.Condition(); got != tt.want {
			t.Errorf("Condition(%v) = %v, want %v", tt.sentiment, got, tt.want)
		}
	}
}

func TestFactorByCondition(t *testing.T) {
	tests := []struct {
		sentiment float64
		want      float64
	}{
		{20, 0.8},
		{0, 1.0},
		{-10, 1.2},
		{-25, 1.5},
	}

	e := NewEconomy()
	for _, tt := range tests {
		e.SentimentScore = tt.sentiment
		if got := e.Factor(); got != tt.want {
			t.Errorf("Factor at sentiment %v = %v, want %v", tt.sentiment, got, tt.want)
		}
	}
}

func TestUpdateSentimentBounded(t *testing.T) {
	e := NewEconomy()
	sawBoom, sawRecession := false, false

	// One full oscillation period is about 63 days at frequency 0.1.
	for i := 0; i < 200; i++ {
		e.UpdateSentiment()
		if e.SentimentScore > 20 || e.SentimentScore < -20 {
			t.Fatalf("sentiment %v outside amplitude", e.SentimentScore)
		}
		switch e.Condition() {
		case ConditionBoom:
			sawBoom = true
		case ConditionRecession:
			sawRecession = true
		}
	}

	if !sawBoom {
		t.Error("oscillation never reached boom")
	}
	if !sawRecession {
		t.Error("oscillation never reached recession")
	}
}

func TestUpdateFactorsClampRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	// Hold each regime fixed for a long stretch so the drift hits the clamp
	// walls, then assert nothing escapes.
	for _, sentiment := range []float64{20, 0, -10, -25} {
		e := NewEconomy()
		e.SentimentScore = sentiment

		for i := 0; i < 500; i++ {
			e.UpdateFactors(rng)

			f := e.Factors
			if f.GDPGrowth < -5 || f.GDPGrowth > 10 {
				t.Fatalf("sentiment %v: gdp %v out of range", sentiment, f.GDPGrowth)
			}
			if f.Inflation < -15 || f.Inflation > 15 {
				t.Fatalf("sentiment %v: inflation %v out of range", sentiment, f.Inflation)
			}
			if f.InterestRate < 0.5 || f.InterestRate > 15 {
				t.Fatalf("sentiment %v: rate %v out of range", sentiment, f.InterestRate)
			}
			if f.Unemployment < 0 || f.Unemployment > 7 {
				t.Fatalf("sentiment %v: unemployment %v out of range", sentiment, f.Unemployment)
			}
			if f.ExchangeRate < 1000 || f.ExchangeRate > 1500 {
				t.Fatalf("sentiment %v: exchange %v out of range", sentiment, f.ExchangeRate)
			}
			if f.PoliticalStability < 0 || f.PoliticalStability > 2 {
				t.Fatalf("sentiment %v: stability %v out of range", sentiment, f.PoliticalStability)
			}
			n := e.National
			if n.TotalAssets < 18_000 || n.TotalAssets > 28_000 {
				t.Fatalf("sentiment %v: assets %v out of range", sentiment, n.TotalAssets)
			}
			if n.BirthRate < 0.5 || n.BirthRate > 3 {
				t.Fatalf("sentiment %v: birth rate %v out of range", sentiment, n.BirthRate)
			}
			if n.Population < 10_000_000 || n.Population > 100_000_000 {
				t.Fatalf("sentiment %v: population %v out of range", sentiment, n.Population)
			}
		}
	}
}

func TestBoomDrift(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	e := NewEconomy()
	e.SentimentScore = 20

	startGDP := e.Factors.GDPGrowth
	startUnemp := e.Factors.Unemployment
	for i := 0; i < 5; i++ {
		e.UpdateFactors(rng)
	}

	if e.Factors.GDPGrowth <= startGDP {
		t.Errorf("boom GDP did not rise: %v -> %v", startGDP, e.Factors.GDPGrowth)
	}
	if e.Factors.Unemployment >= startUnemp {
		t.Errorf("boom unemployment did not fall: %v -> %v", startUnemp, e.Factors.Unemployment)
	}
}
