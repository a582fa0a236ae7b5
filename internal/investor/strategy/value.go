package strategy

import (
	"math/rand"

	"github.com/hwanchang/stocksim/internal/market"
)

// Value buys companies with a price/net-income ratio under 15 and sells
// holdings with a ratio over 25. Non-positive net income substitutes a
// divisor of 1, so a loss-maker's ratio collapses to its share price.
type Value struct{}

// Name implements Strategy.
func (Value) Name() string { return "value" }

// Decide implements Strategy.
func (Value) Decide(rng *rand.Rand, m *market.Market, acct Account) {
	var buyCandidates []*market.Company
	for _, c := range m.Companies() {
		if c.Bankrupt || c.Revenue == 0 {
			continue
		}
		if priceEarningsRatio(c) < 15 {
			buyCandidates = append(buyCandidates, c)
		}
	}
	if len(buyCandidates) > 0 {
		acct.Buy(pick(rng, buyCandidates), 5+rng.Intn(16))
	}

	var sellCandidates []*market.Company
	for _, c := range m.Companies() {
		if c.Bankrupt || acct.HoldingQuantity(c.ID) == 0 {
			continue
		}
		if priceEarningsRatio(c) > 25 {
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

func priceEarningsRatio(c *market.Company) float64 {
	divisor := c.NetIncome
	if divisor <= 0 {
		divisor = 1
	}
	return c.CurrentPrice() / divisor
}
