package investor

import (
	"sort"

	"github.com/phuslu/log"

	"github.com/hwanchang/stocksim/internal/market"
)

// Holding is one position: share count and volume-weighted average cost.
type Holding struct {
	Quantity int
	AvgPrice float64
}

// Investor holds cash and share positions. Trades either succeed fully or
// reject with no state change; there are no partial fills. A position that
// reaches quantity zero is removed, never kept at zero.
type Investor struct {
	Name string
	Cash float64

	holdings map[string]Holding

	logger *log.Logger
}

// NewInvestor creates an investor with starting cash. A nil logger
// disables trade logging.
func NewInvestor(name string, cash float64, logger *log.Logger) *Investor {
	return &Investor{
		Name:     name,
		Cash:     cash,
		holdings: make(map[string]Holding),
		logger:   logger,
	}
}

// Buy purchases quantity shares at the company's current price. Returns
// false (and changes nothing) for non-positive quantities, bankrupt
// companies, or insufficient cash.
func (inv *Investor) Buy(c *market.Company, quantity int) bool {
	if quantity <= 0 || c.Bankrupt {
		return false
	}
	cost := c.CurrentPrice() * float64(quantity)
	if cost > inv.Cash {
		return false
	}

	inv.Cash -= cost

	h := inv.holdings[c.ID]
	newQty := h.Quantity + quantity
	newAvg := (float64(h.Quantity)*h.AvgPrice + float64(quantity)*c.CurrentPrice()) / float64(newQty)
	inv.holdings[c.ID] = Holding{Quantity: newQty, AvgPrice: newAvg}

	if inv.logger != nil {
		inv.logger.Info().
			Str("investor", inv.Name).
			Str("company", c.Name).
			Int("quantity", quantity).
			Float64("price", c.CurrentPrice()).
			Msg("buy")
	}
	return true
}

// Sell disposes quantity shares at the company's current price. Returns
// false for non-positive quantities, bankrupt companies, missing
// positions, or oversells.
func (inv *Investor) Sell(c *market.Company, quantity int) bool {
	if quantity <= 0 || c.Bankrupt {
		return false
	}
	h, ok := inv.holdings[c.ID]
	if !ok || h.Quantity < quantity {
		return false
	}

	h.Quantity -= quantity
	inv.Cash += c.CurrentPrice() * float64(quantity)

	if h.Quantity == 0 {
		delete(inv.holdings, c.ID)
	} else {
		inv.holdings[c.ID] = h
	}

	if inv.logger != nil {
		inv.logger.Info().
			Str("investor", inv.Name).
			Str("company", c.Name).
			Int("quantity", quantity).
			Float64("price", c.CurrentPrice()).
			Msg("sell")
	}
	return true
}

// RemoveHolding drops a position outright with no cash movement (used to
// clear worthless positions in bankrupt companies).
func (inv *Investor) RemoveHolding(c *market.Company) bool {
	return inv.RemoveHoldingID(c.ID)
}

// PortfolioValue is cash plus the mark-to-market value of all positions.
// Bankrupt holdings are valued at zero.
func (inv *Investor) PortfolioValue(m *market.Market) float64 {
	val := inv.Cash
	for _, c := range m.Companies() {
		if h, ok := inv.holdings[c.ID]; ok {
			val += c.CurrentPrice() * float64(h.Quantity)
		}
	}
	// Archived companies contribute nothing, but the positions remain
	// visible until removed.
	return val
}

// HoldingQuantity returns the share count for a company, zero if none.
func (inv *Investor) HoldingQuantity(companyID string) int {
	return inv.holdings[companyID].Quantity
}

// HeldCompanyIDs returns the IDs of all held companies in sorted order, so
// random selection over them is reproducible under a seeded source.
func (inv *Investor) HeldCompanyIDs() []string {
	ids := make([]string, 0, len(inv.holdings))
	for id := range inv.holdings {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Holdings returns a copy of all positions keyed by company ID.
func (inv *Investor) Holdings() map[string]Holding {
	out := make(map[string]Holding, len(inv.holdings))
	for id, h := range inv.holdings {
		out[id] = h
	}
	return out
}

// Holding implements market.Shareholder.
func (inv *Investor) Holding(companyID string) (int, float64, bool) {
	h, ok := inv.holdings[companyID]
	return h.Quantity, h.AvgPrice, ok
}

// SetHolding implements market.Shareholder.
func (inv *Investor) SetHolding(companyID string, quantity int, avgPrice float64) {
	if quantity <= 0 {
		delete(inv.holdings, companyID)
		return
	}
	inv.holdings[companyID] = Holding{Quantity: quantity, AvgPrice: avgPrice}
}

// RemoveHoldingID implements market.Shareholder.
func (inv *Investor) RemoveHoldingID(companyID string) bool {
	if _, ok := inv.holdings[companyID]; !ok {
		return false
	}
	delete(inv.holdings, companyID)
	return true
}
