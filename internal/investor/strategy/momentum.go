package strategy

import (
	"math/rand"

	"github.com/hwanchang/stocksim/internal/market"
)

// Momentum buys companies with three consecutive rising closes and sells
// holdings with three consecutive falling closes.
type Momentum struct{}

// Name implements Strategy.
func (Momentum) Name() string { return "momentum" }

// Decide implements Strategy.
func (Momentum) Decide(rng *rand.Rand, m *market.Market, acct Account) {
	var buyCandidates []*market.Company
	for _, c := range m.Companies() {
		if c.Bankrupt || len(c.Candles) < 4 {
			continue
		}
		if trending(c, true) {
			buyCandidates = append(buyCandidates, c)
		}
	}
	if len(buyCandidates) > 0 {
		acct.Buy(pick(rng, buyCandidates), 5+rng.Intn(16))
	}

	var sellCandidates []*market.Company
	for _, c := range m.Companies() {
		if c.Bankrupt || acct.HoldingQuantity(c.ID) == 0 || len(c.Candles) < 4 {
			continue
		}
		if trending(c, false) {
			sellCandidates = append(sellCandidates, c)
		}
	}
	if len(sellCandidates) > 0 {
		c := pick(rng, sellCandidates)
		if qty := sellQuantity(rng, acct.HoldingQuantity(c.ID)); qty > 0 {
			acct.Sell(c, qty)
		}
	}
}

// trending reports whether the last three day-over-day close changes all
// point the same way.
func trending(c *market.Company, up bool) bool {
	n := len(c.Candles)
	for i := 1; i <= 3; i++ {
		change := c.Candles[n-i].Close - c.Candles[n-i-1].Close
		if up && change <= 0 {
			return false
		}
		if !up && change >= 0 {
			return false
		}
	}
	return true
}
