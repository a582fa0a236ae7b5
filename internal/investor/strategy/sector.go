package strategy

import (
	"math/rand"

	"github.com/hwanchang/stocksim/internal/market"
)

// Sector concentrates all trading in one fixed focus sector chosen at
// construction time.
type Sector struct {
	Focus string
}

// NewSector creates a sector strategy with a randomly chosen focus.
func NewSector(rng *rand.Rand) *Sector {
	return &Sector{Focus: market.Sectors[rng.Intn(len(market.Sectors))]}
}

// Name implements Strategy.
func (*Sector) Name() string { return "sector" }

// Decide implements Strategy.
func (s *Sector) Decide(rng *rand.Rand, m *market.Market, acct Account) {
	var pool []*market.Company
	for _, c := range m.Companies() {
		if c.Sector == s.Focus && !c.Bankrupt {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return
	}

	switch rng.Intn(3) {
	case 0: // buy
		acct.Buy(pick(rng, pool), 10+rng.Intn(21))

	case 1: // sell
		var held []*market.Company
		for _, c := range pool {
			if acct.HoldingQuantity(c.ID) > 0 {
				held = append(held, c)
			}
		}
		if len(held) == 0 {
			return
		}
		c := pick(rng, held)
		if qty := sellQuantity(rng, acct.HoldingQuantity(c.ID)); qty > 0 {
			acct.Sell(c, qty)
		}
	}
}
