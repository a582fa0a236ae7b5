package market

import (
	"fmt"
	"math/rand"

	"github.com/hwanchang/stocksim/internal/news"
)

// Interaction-pass roster band. The day cycle keeps its own, lower band;
// this one tops the roster up before companies start dealing with each
// other so the pairwise pass has partners to draw.
const (
	interactionMinCompanies    = 17
	interactionTargetCompanies = 20
)

// CorporateActionEngine handles pairwise company interactions (contracts,
// investments, share acquisitions, mergers, partnerships) and the unary
// company events nested under the acquisition branch. Capital and debt are
// floored at zero after every action.
type CorporateActionEngine struct{}

// Run executes the daily interaction pass over the roster. The probability
// bands are layered exactly as in the reference model: 0.5% contract, next
// 0.5% investment, next 0.5% share acquisition, with the unary events gated
// inside the acquisition branch at 1% each.
func (e *CorporateActionEngine) Run(m *Market, rng *rand.Rand) {
	if len(m.companies) < interactionMinCompanies {
		m.addRandomCompanies(interactionTargetCompanies - len(m.companies))
	}

	for _, c1 := range m.companies {
		if c1.Bankrupt {
			continue
		}

		switch p := rng.Float64(); {
		case p < 0.005:
			if c2 := m.randomCounterparty(rng, c1); c2 != nil {
				e.ContractDeal(m, c1, c2)
			}
		case p < 0.01:
			if c2 := m.randomCounterparty(rng, c1); c2 != nil {
				e.Invest(m, c1, c2)
			}
		case p < 0.015:
			if c2 := m.randomCounterparty(rng, c1); c2 != nil {
				e.AcquireShares(m, c1, c2)

				switch inner := rng.Float64(); {
				case inner < 0.01:
					e.Patent(m, c1)
				case inner < 0.02:
					e.ProductLaunch(m, c1)
				case inner < 0.03:
					e.Regulation(m, c1)
				case inner < 0.04:
					e.LaborDispute(m, c1)
				case inner < 0.05:
					e.SupplyDisruption(m, c1)
				}
			}
		}
	}
}

// ContractDeal transfers a contract's value: the winning side books 80% of
// the amount as capital, the paying side spends it and takes on 20% debt.
func (e *CorporateActionEngine) ContractDeal(m *Market, c1, c2 *Company) {
	amount := float64(randInt(m.rng, 100_000, 1_000_000))

	c1.Capital += amount * 0.8
	c2.Capital -= amount
	c2.Debt += amount * 0.2

	if c2.Capital < 0 {
		c2.Capital = 0
	}
	if c2.Debt < 0 {
		c2.Debt = 0
	}

	m.publish(news.Event{
		Kind:    news.KindContract,
		Day:     m.dayCount,
		Sector:  c1.Sector,
		Company: c1.Name + " - " + c2.Name,
		Text:    fmt.Sprintf("%s and %s sign a %.0f contract", c1.Name, c2.Name, amount),
	})
}

// Invest moves an investment from c1 to c2 and books c1's return at a
// random 0.9-1.2 multiple of the stake.
func (e *CorporateActionEngine) Invest(m *Market, c1, c2 *Company) {
	amount := float64(randInt(m.rng, 50_000, 500_000))

	c1.Capital -= amount
	c2.Capital += amount

	profitFactor := uniform(m.rng, 0.9, 1.2)
	c1.Capital += amount * profitFactor
	if c1.Capital < 0 {
		c1.Capital = 0
	}

	c2.Debt += c2.Debt * uniform(m.rng, -0.05, 0.05)
	if c2.Debt < 0 {
		c2.Debt = 0
	}

	m.publish(news.Event{
		Kind:    news.KindInvestment,
		Day:     m.dayCount,
		Sector:  c1.Sector,
		Company: c1.Name + " -> " + c2.Name,
		Text:    fmt.Sprintf("%s invests %.0f in %s", c1.Name, amount, c2.Name),
	})
}

// AcquireShares buys a random 10-30% stake: the acquirer pays the stake's
// value, 90% of it flows into the target's capital and 10% retires debt.
func (e *CorporateActionEngine) AcquireShares(m *Market, c1, c2 *Company) {
	sharePct := uniform(m.rng, 10, 30)
	cost := c2.Capital * (sharePct / 100)

	c1.Capital -= cost
	c2.Capital += cost * 0.9
	c2.Debt -= cost * 0.1

	if c1.Capital < 0 {
		c1.Capital = 0
	}
	if c2.Debt < 0 {
		c2.Debt = 0
	}

	m.publish(news.Event{
		Kind:    news.KindAcquisition,
		Day:     m.dayCount,
		Sector:  c1.Sector,
		Company: c1.Name + " -> " + c2.Name,
		Text:    fmt.Sprintf("%s acquires a %.1f%% stake in %s", c1.Name, sharePct, c2.Name),
	})
}

// Patent boosts capital by 5%.
func (e *CorporateActionEngine) Patent(m *Market, c *Company) {
	c.Capital *= 1.05
	m.publish(news.Event{
		Kind:    news.KindPatent,
		Day:     m.dayCount,
		Sector:  c.Sector,
		Company: c.Name,
		Text:    fmt.Sprintf("%s is granted a new patent", c.Name),
	})
}

// ProductLaunch boosts capital by 7.5%.
func (e *CorporateActionEngine) ProductLaunch(m *Market, c *Company) {
	c.Capital *= 1.075
	m.publish(news.Event{
		Kind:    news.KindProduct,
		Day:     m.dayCount,
		Sector:  c.Sector,
		Company: c.Name,
		Text:    fmt.Sprintf("%s announces a new product", c.Name),
	})
}

// Regulation cuts capital by 7.5%.
func (e *CorporateActionEngine) Regulation(m *Market, c *Company) {
	c.Capital *= 0.925
	m.publish(news.Event{
		Kind:    news.KindRegulation,
		Day:     m.dayCount,
		Sector:  c.Sector,
		Company: c.Name,
		Text:    fmt.Sprintf("%s faces tightened regulation", c.Name),
	})
}

// LaborDispute raises debt by 10%.
func (e *CorporateActionEngine) LaborDispute(m *Market, c *Company) {
	c.Debt *= 1.1
	m.publish(news.Event{
		Kind:    news.KindLabor,
		Day:     m.dayCount,
		Sector:  c.Sector,
		Company: c.Name,
		Text:    fmt.Sprintf("%s is caught in a labor dispute", c.Name),
	})
}

// SupplyDisruption cuts capital by 5%.
func (e *CorporateActionEngine) SupplyDisruption(m *Market, c *Company) {
	c.Capital *= 0.95
	m.publish(news.Event{
		Kind:    news.KindSupply,
		Day:     m.dayCount,
		Sector:  c.Sector,
		Company: c.Name,
		Text:    fmt.Sprintf("%s hit by supply chain disruption", c.Name),
	})
}

// MergeOrPartner resolves a pairing between two companies: 50/50 between a
// full merger and a strategic partnership.
//
// A merger creates one new company with summed capital/debt and averaged
// price, migrates every holder's positions into it by weighted-average cost
// basis, and removes both originals from the roster. A partnership
// cross-pollinates 10% of capital and debt each way (sequentially, in this
// order; the second leg sees the first leg's result), bumps both closes 5%,
// and re-checks bankruptcy.
func (e *CorporateActionEngine) MergeOrPartner(m *Market, c1, c2 *Company, holders []Shareholder) *Company {
	if m.rng.Float64() < 0.5 {
		return e.merge(m, c1, c2, holders)
	}
	e.partner(m, c1, c2)
	return nil
}

func (e *CorporateActionEngine) merge(m *Market, c1, c2 *Company, holders []Shareholder) *Company {
	mergedName := e.mergedName(m.rng, c1.Name, c2.Name)
	mergedSector := c1.Sector
	if m.rng.Float64() >= 0.5 {
		mergedSector = c2.Sector
	}
	mergedPrice := (c1.CurrentPrice() + c2.CurrentPrice()) / 2

	merged := NewCompany(m.rng, mergedName, mergedSector, mergedPrice, m.dayCount)
	merged.Capital = c1.Capital + c2.Capital
	merged.Debt = c1.Debt + c2.Debt
	m.addCompany(merged)

	transferHoldings(c1, c2, merged, holders)

	m.removeCompany(c1)
	m.removeCompany(c2)

	m.publish(news.Event{
		Kind:    news.KindMerger,
		Day:     m.dayCount,
		Sector:  mergedSector,
		Company: mergedName,
		Text:    fmt.Sprintf("%s and %s merge into %s", c1.Name, c2.Name, mergedName),
	})
	return merged
}

func (e *CorporateActionEngine) partner(m *Market, c1, c2 *Company) {
	c1.Capital += c2.Capital * 0.1
	c2.Capital += c1.Capital * 0.1
	c1.Debt += c2.Debt * 0.1
	c2.Debt += c1.Debt * 0.1

	for _, c := range []*Company{c1, c2} {
		if c.Capital < 0 {
			c.Capital = 0
		}
		if c.Debt < 0 {
			c.Debt = 0
		}
	}

	c1.Candles[len(c1.Candles)-1].Close *= 1.05
	c2.Candles[len(c2.Candles)-1].Close *= 1.05

	c1.CheckBankruptcy(m.dayCount)
	c2.CheckBankruptcy(m.dayCount)

	m.publish(news.Event{
		Kind:    news.KindPartnership,
		Day:     m.dayCount,
		Sector:  c1.Sector,
		Company: c1.Name + "-" + c2.Name,
		Text:    fmt.Sprintf("%s and %s form a strategic partnership", c1.Name, c2.Name),
	})
}

// mergedName splices the first two letters of each original name 70% of the
// time, otherwise generates a fresh random name.
func (e *CorporateActionEngine) mergedName(rng *rand.Rand, name1, name2 string) string {
	if rng.Float64() < 0.7 {
		return namePrefix(name1) + namePrefix(name2)
	}
	return RandomName(rng)
}

func namePrefix(name string) string {
	runes := []rune(name)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}

// transferHoldings consolidates every holder's positions in the two merged
// companies into one position in the new company, priced at the
// quantity-weighted average of the old cost bases.
func transferHoldings(c1, c2, merged *Company, holders []Shareholder) {
	for _, h := range holders {
		q1, avg1, _ := h.Holding(c1.ID)
		q2, avg2, _ := h.Holding(c2.ID)

		newQty := q1 + q2
		if newQty > 0 {
			newAvg := (float64(q1)*avg1 + float64(q2)*avg2) / float64(newQty)
			h.SetHolding(merged.ID, newQty, newAvg)
		}

		h.RemoveHoldingID(c1.ID)
		h.RemoveHoldingID(c2.ID)
	}
}
