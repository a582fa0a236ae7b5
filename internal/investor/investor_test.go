package investor

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/hwanchang/stocksim/internal/investor/strategy"
	"github.com/hwanchang/stocksim/internal/market"
)

var testCompanySeq int

func testCompany(price float64) *market.Company {
	testCompanySeq++
	return &market.Company{
		ID:      fmt.Sprintf("co-%d", testCompanySeq),
		Name:    "TST01",
		Sector:  "IT",
		Candles: []market.Candle{{Open: price, High: price, Low: price, Close: price}},
	}
}

func TestBuyUpdatesAverage(t *testing.T) {
	inv := NewInvestor("p", 10_000, nil)
	c := testCompany(100)

	if !inv.Buy(c, 10) {
		t.Fatal("first buy rejected")
	}
	c.Candles[0].Close = 200
	if !inv.Buy(c, 10) {
		t.Fatal("second buy rejected")
	}

	qty, avg, ok := inv.Holding(c.ID)
	if !ok || qty != 20 {
		t.Fatalf("position = %d (ok=%v), want 20", qty, ok)
	}
	if math.Abs(avg-150) > 1e-9 {
		t.Errorf("avg = %v, want 150", avg)
	}
	if inv.Cash != 10_000-1_000-2_000 {
		t.Errorf("cash = %v, want 7000", inv.Cash)
	}
}

func TestBuyRejections(t *testing.T) {
	inv := NewInvestor("p", 1_000, nil)
	c := testCompany(150)

	if inv.Buy(c, 0) {
		t.Error("zero-quantity buy accepted")
	}
	if inv.Buy(c, -5) {
		t.Error("negative-quantity buy accepted")
	}
	if inv.Buy(c, 10) {
		t.Error("buy beyond cash accepted")
	}
	if inv.Cash != 1_000 {
		t.Errorf("cash changed on rejected buys: %v", inv.Cash)
	}
	if len(inv.Holdings()) != 0 {
		t.Error("rejected buys left a position")
	}

	c.Bankrupt = true
	c.Candles[0].Close = 1
	if inv.Buy(c, 1) {
		t.Error("buy of bankrupt company accepted")
	}
}

func TestSellRoundTrip(t *testing.T) {
	inv := NewInvestor("p", 10_000, nil)
	c := testCompany(100)

	inv.Buy(c, 10)
	if !inv.Sell(c, 4) {
		t.Fatal("partial sell rejected")
	}
	if got := inv.HoldingQuantity(c.ID); got != 6 {
		t.Errorf("remaining = %d, want 6", got)
	}

	if !inv.Sell(c, 6) {
		t.Fatal("closing sell rejected")
	}
	if inv.Cash != 10_000 {
		t.Errorf("flat round trip cash = %v, want 10000", inv.Cash)
	}
	// Zero positions are removed, never kept.
	if _, _, ok := inv.Holding(c.ID); ok {
		t.Error("zero position still present")
	}
}

func TestSellRejections(t *testing.T) {
	inv := NewInvestor("p", 10_000, nil)
	c := testCompany(100)
	inv.Buy(c, 5)

	if inv.Sell(c, 6) {
		t.Error("oversell accepted")
	}
	if inv.Sell(c, -1) {
		t.Error("negative-quantity sell accepted")
	}
	if inv.Sell(testCompany(100), 1) {
		t.Error("sell of unheld company accepted")
	}
	if got := inv.HoldingQuantity(c.ID); got != 5 {
		t.Errorf("position changed on rejected sells: %d", got)
	}

	c.Bankrupt = true
	if inv.Sell(c, 1) {
		t.Error("sell of bankrupt company accepted")
	}
}

func TestPortfolioValue(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	cfg := market.DefaultConfig()
	cfg.InitialCompanies = 3
	m := market.NewMarket(cfg, nil, rng, nil)
	held := m.Companies()[0]

	inv := NewInvestor("p", 1_000_000, nil)
	if !inv.Buy(held, 10) {
		t.Fatal("buy rejected")
	}

	want := inv.Cash + held.CurrentPrice()*10
	if got := inv.PortfolioValue(m); math.Abs(got-want) > 1e-6 {
		t.Errorf("portfolio value = %v, want %v", got, want)
	}

	// The position stops counting once the company leaves the roster.
	held.Bankrupt = true
	m.AdvanceDay(nil)
	if got := inv.PortfolioValue(m); math.Abs(got-inv.Cash) > 1e-6 {
		t.Errorf("portfolio value after bankruptcy = %v, want cash %v", got, inv.Cash)
	}
}

func TestHeldCompanyIDsSorted(t *testing.T) {
	inv := NewInvestor("p", 1_000_000, nil)
	for _, id := range []string{"zz", "aa", "mm"} {
		inv.SetHolding(id, 1, 10)
	}

	ids := inv.HeldCompanyIDs()
	if len(ids) != 3 || ids[0] != "aa" || ids[1] != "mm" || ids[2] != "zz" {
		t.Errorf("ids = %v, want sorted [aa mm zz]", ids)
	}
}

func TestRemoveHolding(t *testing.T) {
	inv := NewInvestor("p", 10_000, nil)
	c := testCompany(100)
	inv.Buy(c, 5)

	cash := inv.Cash
	if !inv.RemoveHolding(c) {
		t.Fatal("remove of held position failed")
	}
	if inv.Cash != cash {
		t.Error("remove moved cash")
	}
	if inv.RemoveHolding(c) {
		t.Error("second remove reported success")
	}
}

func TestBotDelegatesToStrategy(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	cfg := market.DefaultConfig()
	m := market.NewMarket(cfg, nil, rng, nil)

	strat, err := strategy.New("random", rng)
	if err != nil {
		t.Fatal(err)
	}
	bot := NewBot("b", 1_000_000, strat, nil)
	if bot.StrategyName() != "random" {
		t.Errorf("strategy name = %q", bot.StrategyName())
	}

	// DecideTrades is the market.Trader surface; it must not panic on a
	// fresh roster regardless of what the strategy chooses.
	for i := 0; i < 50; i++ {
		bot.DecideTrades(rng, m)
	}
}
