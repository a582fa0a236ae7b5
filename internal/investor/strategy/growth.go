package strategy

import (
	"math/rand"

	"github.com/hwanchang/stocksim/internal/market"
)

// Growth buys companies trading at least 5% below their trailing 5-day
// average close and sells holdings at least 5% above it.
type Growth struct{}

// Name implements Strategy.
func (Growth) Name() string { return "growth" }

// Decide implements Strategy.
func (Growth) Decide(rng *rand.Rand, m *market.Market, acct Account) {
	var buyCandidates []*market.Company
	for _, c := range m.Companies() {
		if c.Bankrupt || len(c.Candles) < 5 {
			continue
		}
		if c.CurrentPrice() < trailingAverage(c, 5)*0.95 {
			buyCandidates = append(buyCandidates, c)
		}
	}
	if len(buyCandidates) > 0 {
		acct.Buy(pick(rng, buyCandidates), 5+rng.Intn(16))
	}

	var sellCandidates []*market.Company
	for _, c := range m.Companies() {
		if c.Bankrupt || acct.HoldingQuantity(c.ID) == 0 || len(c.Candles) < 5 {
			continue
		}
		if c.CurrentPrice() > trailingAverage(c, 5)*1.05 {
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

// trailingAverage is the mean close of the last n candles.
func trailingAverage(c *market.Company, n int) float64 {
	candles := c.Candles[len(c.Candles)-n:]
	var sum float64
	for _, cd := range candles {
		sum += cd.Close
	}
	return sum / float64(n)
}
