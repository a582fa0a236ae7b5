package strategy

import (
	"math/rand"
	"testing"

	"github.com/hwanchang/stocksim/internal/market"
)

// fakeAccount records trade calls without any cash or position constraints.
type fakeAccount struct {
	bought map[string]int
	sold   map[string]int
	held   map[string]int
}

func newFakeAccount() *fakeAccount {
	return &fakeAccount{
		bought: make(map[string]int),
		sold:   make(map[string]int),
		held:   make(map[string]int),
	}
}

func (a *fakeAccount) Buy(c *market.Company, qty int) bool {
	a.bought[c.ID] += qty
	a.held[c.ID] += qty
	return true
}

func (a *fakeAccount) Sell(c *market.Company, qty int) bool {
	a.sold[c.ID] += qty
	a.held[c.ID] -= qty
	return true
}

func (a *fakeAccount) HoldingQuantity(id string) int { return a.held[id] }

func (a *fakeAccount) HeldCompanyIDs() []string {
	ids := make([]string, 0, len(a.held))
	for id, qty := range a.held {
		if qty > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

func setCloses(c *market.Company, closes ...float64) {
	c.Candles = c.Candles[:0]
	for _, cl := range closes {
		c.Candles = append(c.Candles, market.Candle{Open: cl, High: cl, Low: cl, Close: cl})
	}
}

func TestNewByName(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, name := range Names() {
		s, err := New(name, rng)
		if err != nil {
			t.Fatalf("New(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Name() = %q, want %q", s.Name(), name)
		}
	}
	if _, err := New("bogus", rng); err == nil {
		t.Error("unknown strategy name accepted")
	}
}

func TestTrending(t *testing.T) {
	c := &market.Company{}

	setCloses(c, 100, 101, 102, 103)
	if !trending(c, true) {
		t.Error("three rising closes not detected as uptrend")
	}
	if trending(c, false) {
		t.Error("uptrend detected as downtrend")
	}

	setCloses(c, 103, 102, 101, 100)
	if !trending(c, false) {
		t.Error("three falling closes not detected as downtrend")
	}

	// A flat day breaks the streak in both directions.
	setCloses(c, 100, 101, 101, 102)
	if trending(c, true) || trending(c, false) {
		t.Error("flat day counted as a trend")
	}
}

func TestTrailingAverage(t *testing.T) {
	c := &market.Company{}
	setCloses(c, 10, 20, 30, 40, 50)
	if got := trailingAverage(c, 5); got != 30 {
		t.Errorf("trailing average = %v, want 30", got)
	}
	setCloses(c, 999, 10, 20, 30, 40, 50)
	if got := trailingAverage(c, 5); got != 30 {
		t.Errorf("trailing average ignores older candles, got %v", got)
	}
}

func TestGrowthBuysBelowAverage(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	cfg := market.DefaultConfig()
	cfg.InitialCompanies = 2
	m := market.NewMarket(cfg, nil, rng, nil)

	cheap, dear := m.Companies()[0], m.Companies()[1]
	// Trailing average 100, current 80: a 20% discount, well past the gate.
	setCloses(cheap, 105, 105, 105, 105, 80)
	// Trailing average 100, current 100: no signal.
	setCloses(dear, 100, 100, 100, 100, 100)

	acct := newFakeAccount()
	Growth{}.Decide(rng, m, acct)

	if acct.bought[cheap.ID] == 0 {
		t.Error("discounted company not bought")
	}
	if acct.bought[dear.ID] != 0 {
		t.Error("fairly priced company bought")
	}
}

func TestGrowthSellsAboveAverage(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cfg := market.DefaultConfig()
	cfg.InitialCompanies = 1
	m := market.NewMarket(cfg, nil, rng, nil)

	c := m.Companies()[0]
	// Trailing average ~104, current 125: over the 5% sell gate.
	setCloses(c, 100, 100, 100, 95, 125)

	acct := newFakeAccount()
	acct.held[c.ID] = 10
	Growth{}.Decide(rng, m, acct)

	if acct.sold[c.ID] == 0 {
		t.Error("held company above average not sold")
	}
	if got := acct.sold[c.ID]; got > 5 {
		t.Errorf("sold %d shares, cap is 5", got)
	}
}

func TestMomentumBuysUptrend(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	cfg := market.DefaultConfig()
	cfg.InitialCompanies = 2
	m := market.NewMarket(cfg, nil, rng, nil)

	up, flat := m.Companies()[0], m.Companies()[1]
	setCloses(up, 100, 110, 120, 130)
	setCloses(flat, 100, 100, 100, 100)

	acct := newFakeAccount()
	Momentum{}.Decide(rng, m, acct)

	if acct.bought[up.ID] == 0 {
		t.Error("uptrending company not bought")
	}
	if acct.bought[flat.ID] != 0 {
		t.Error("flat company bought")
	}
}

func TestValueBuysLowRatio(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	cfg := market.DefaultConfig()
	cfg.InitialCompanies = 4
	m := market.NewMarket(cfg, nil, rng, nil)

	cheap, rich, loser, ghost := m.Companies()[0], m.Companies()[1], m.Companies()[2], m.Companies()[3]
	setCloses(cheap, 1_000)
	cheap.NetIncome = 100 // ratio 10, under the buy gate
	setCloses(rich, 30_000)
	rich.NetIncome = 1_000 // ratio 30
	setCloses(loser, 10)
	loser.NetIncome = -500 // loss-maker: divisor 1, ratio 10
	setCloses(ghost, 1_000)
	ghost.NetIncome = 100 // attractive ratio, but no revenue to back it
	ghost.Revenue = 0

	acct := newFakeAccount()
	acct.held[rich.ID] = 10
	for i := 0; i < 100; i++ {
		Value{}.Decide(rng, m, acct)
	}

	if acct.bought[cheap.ID] == 0 && acct.bought[loser.ID] == 0 {
		t.Error("no low-ratio company bought")
	}
	if acct.bought[rich.ID] != 0 {
		t.Error("high-ratio company bought")
	}
	if acct.bought[ghost.ID] != 0 {
		t.Error("zero-revenue company bought")
	}
	if acct.sold[rich.ID] == 0 {
		t.Error("held high-ratio company not sold")
	}
}

func TestSectorStaysInFocus(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	cfg := market.DefaultConfig()
	m := market.NewMarket(cfg, nil, rng, nil)

	s := &Sector{Focus: m.Companies()[0].Sector}
	acct := newFakeAccount()
	for i := 0; i < 100; i++ {
		s.Decide(rng, m, acct)
	}

	for id := range acct.bought {
		c := m.FindCompany(id)
		if c == nil {
			t.Fatalf("bought unknown company %s", id)
		}
		if c.Sector != s.Focus {
			t.Errorf("bought %s in sector %s, focus is %s", c.Name, c.Sector, s.Focus)
		}
	}
	if len(acct.bought) == 0 {
		t.Error("100 decisions produced no buys")
	}
}

func TestRandomNeverTradesBankrupt(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cfg := market.DefaultConfig()
	cfg.InitialCompanies = 2
	m := market.NewMarket(cfg, nil, rng, nil)

	dead := m.Companies()[0]
	dead.Bankrupt = true

	acct := newFakeAccount()
	acct.held[dead.ID] = 10
	for i := 0; i < 100; i++ {
		Random{}.Decide(rng, m, acct)
	}

	if acct.sold[dead.ID] != 0 {
		t.Error("sold shares of a bankrupt company")
	}
}
