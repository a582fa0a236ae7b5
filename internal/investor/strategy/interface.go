package strategy

import (
	"fmt"
	"math/rand"

	"github.com/hwanchang/stocksim/internal/market"
)

// Account is the trading surface a strategy acts through. Buy and Sell
// report success; a strategy never needs to know why a trade was rejected.
type Account interface {
	Buy(c *market.Company, quantity int) bool
	Sell(c *market.Company, quantity int) bool
	HoldingQuantity(companyID string) int
	HeldCompanyIDs() []string
}

// Strategy is the interface for bot trading strategies. Decide is called
// once per simulated day and performs at most one buy and one sell.
type Strategy interface {
	// Name is the strategy's stable identifier (used in config and logs).
	Name() string
	// Decide inspects the market and trades through the account.
	Decide(rng *rand.Rand, m *market.Market, acct Account)
}

// New constructs a strategy by name. The sector strategy picks its focus
// sector at construction time and keeps it for the whole run.
func New(name string, rng *rand.Rand) (Strategy, error) {
	switch name {
	case "random":
		return Random{}, nil
	case "growth":
		return Growth{}, nil
	case "sector":
		return NewSector(rng), nil
	case "value":
		return Value{}, nil
	case "momentum":
		return Momentum{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

// Names lists the available strategy identifiers.
func Names() []string {
	return []string{"random", "growth", "sector", "value", "momentum"}
}

// sellQuantity caps a sale at 5 shares and at the held amount.
func sellQuantity(rng *rand.Rand, held int) int {
	limit := held
	if limit > 5 {
		limit = 5
	}
	if limit < 1 {
		return 0
	}
	return 1 + rng.Intn(limit)
}

// pick returns a uniformly chosen element.
func pick[T any](rng *rand.Rand, pool []T) T {
	return pool[rng.Intn(len(pool))]
}
