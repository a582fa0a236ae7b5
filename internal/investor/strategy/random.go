package strategy

import (
	"math/rand"

	"github.com/hwanchang/stocksim/internal/market"
)

// Random buys or sells (or holds) on a coin toss with no view on value.
type Random struct{}

// Name implements Strategy.
func (Random) Name() string { return "random" }

// Decide implements Strategy.
func (Random) Decide(rng *rand.Rand, m *market.Market, acct Account) {
	switch rng.Intn(3) {
	case 0: // buy
		companies := m.Companies()
		if len(companies) == 0 {
			return
		}
		acct.Buy(pick(rng, companies), 1+rng.Intn(10))

	case 1: // sell
		held := acct.HeldCompanyIDs()
		if len(held) == 0 {
			return
		}
		c := m.FindCompany(pick(rng, held))
		if c == nil || c.Bankrupt {
			return
		}
		if qty := sellQuantity(rng, acct.HoldingQuantity(c.ID)); qty > 0 {
			acct.Sell(c, qty)
		}
	}
}
