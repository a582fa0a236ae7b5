package market

import (
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// MaxPrice is the ceiling any candle value is clamped to.
const MaxPrice = 30_000_000

// Bankruptcy thresholds. The constants are tuned-by-feel in the reference
// model and are kept exactly as-is.
const (
	lowPriceThreshold  = 10_000
	highPriceThreshold = 70_000
	highDebtRatio      = 2.0
	warningLimit       = 10
	capitalFloor       = 500
)

// Company is a listed company: an append-only OHLC price series plus the
// financial state the daily model and the corporate action engine mutate.
type Company struct {
	ID         string
	Name       string
	Sector     string
	CreatedDay int

	// Candles always holds at least one entry (seeded with the listing price).
	Candles []Candle

	Capital     float64
	Debt        float64
	Revenue     float64
	NetIncome   float64
	MarketShare float64
	Competitors []string

	Bankrupt       bool
	BankruptDay    int
	WarningDays    float64
	NewsImpact     float64
	NewsImpactDays int
}

// NewCompany lists a company at the given price with randomized financials.
func NewCompany(rng *rand.Rand, name, sector string, initialPrice float64, day int) *Company {
	return &Company{
		ID:         uuid.NewString(),
		Name:       name,
		Sector:     sector,
		CreatedDay: day,
		Candles: []Candle{{
			Open:  initialPrice,
			High:  initialPrice,
			Low:   initialPrice,
			Close: initialPrice,
		}},
		Capital:     float64(randInt(rng, 5_000_000, 10_000_000)),
		Debt:        float64(randInt(rng, 1_000, 5_000_000)),
		Revenue:     uniform(rng, 1_000_000, 5_000_000),
		NetIncome:   uniform(rng, -500_000, 500_000),
		MarketShare: uniform(rng, 1.0, 10.0),
	}
}

// CurrentPrice returns the close of the latest candle.
func (c *Company) CurrentPrice() float64 {
	if len(c.Candles) == 0 {
		return 0
	}
	return c.Candles[len(c.Candles)-1].Close
}

// LastDiffPct returns the close-over-close change versus the previous day,
// in percent. Zero when there is no previous day to compare against.
func (c *Company) LastDiffPct() float64 {
	if len(c.Candles) < 2 {
		return 0
	}
	oldp := c.Candles[len(c.Candles)-2].Close
	newp := c.Candles[len(c.Candles)-1].Close
	if oldp == 0 {
		return 0
	}
	return (newp - oldp) / oldp * 100
}

// DecayNewsImpact is one day's step of the news-effect decay. It returns
// the carried-over impact state and the delta to apply to today's trend.
// Once the remaining day count is exhausted the effect is inert (0, 0).
func DecayNewsImpact(impact float64, daysLeft int) (newImpact float64, newDaysLeft int, applied float64) {
	if daysLeft <= 0 {
		return 0, 0, 0
	}
	applied = impact * 0.5
	daysLeft--
	if daysLeft == 0 {
		return 0, 0, applied
	}
	return impact, daysLeft, applied
}

// UpdateDailyPrice appends today's candle and moves the financials with it.
// No-op for bankrupt companies; their price stays frozen at the level it
// had when they went under.
func (c *Company) UpdateDailyPrice(rng *rand.Rand, econFactor float64, econ EconomicFactors, national NationalFactors) {
	if c.Bankrupt {
		return
	}

	prevClose := c.CurrentPrice()

	baseVolatility := econFactor * uniform(rng, 0.00005, 0.00025)
	trend := 1 + uniform(rng, -0.00025, 0.00025)

	var applied float64
	c.NewsImpact, c.NewsImpactDays, applied = DecayNewsImpact(c.NewsImpact, c.NewsImpactDays)
	trend += applied

	adjustment := 1.0
	adjustment += 0.00005 * econ.GDPGrowth
	adjustment -= 0.00005 * econ.Inflation
	adjustment -= 0.00002 * econ.InterestRate
	adjustment -= 0.00005 * econ.Unemployment
	adjustment += 0.00003 * national.TotalAssets
	adjustment += 0.00002 * national.BirthRate
	adjustment += 0.00001 * float64(national.Population)

	change := uniform(rng, -baseVolatility, baseVolatility)
	open := prevClose * trend
	high := open * (1 + uniform(rng, 0, baseVolatility))
	low := open * (1 - uniform(rng, 0, baseVolatility))
	closePrice := open * (1 + change*adjustment)

	high = math.Min(high, MaxPrice)
	low = math.Max(low, 0)
	closePrice = math.Max(math.Min(closePrice, MaxPrice), 0)
	if high < low {
		high, low = low, high
	}

	c.Candles = append(c.Candles, Candle{Open: open, High: high, Low: low, Close: closePrice})

	var priceChange float64
	if prevClose != 0 {
		priceChange = (closePrice - prevClose) / prevClose
	}

	// Capital follows the move, damped; debt moves against it.
	c.Capital += c.Capital * priceChange / uniform(rng, 1.0, 1.5)
	if c.Capital < 0 {
		c.Capital = 0
	}
	c.Debt += c.Debt * -priceChange / uniform(rng, 0.5, 0.8)
	if c.Debt < 0 {
		c.Debt = 0
	}

	c.Revenue += uniform(rng, -50_000, 50_000)
	if c.Revenue < 100_000 {
		c.Revenue = 100_000
	}
	c.NetIncome += uniform(rng, -50_000, 50_000)
}

// CheckBankruptcy advances the warning accumulator and flips the company to
// bankrupt when the accumulator crosses the limit or capital falls through
// the floor. Transitions are one-way; callers archive the company the same
// day.
func (c *Company) CheckBankruptcy(currentDay int) {
	if c.Bankrupt {
		return
	}

	debtRatio := c.Debt / math.Max(c.Capital, 1)

	switch {
	case c.CurrentPrice() < lowPriceThreshold:
		c.WarningDays += 0.7
	case debtRatio > highDebtRatio:
		if c.CurrentPrice() > highPriceThreshold {
			c.WarningDays += 0.2
		} else {
			c.WarningDays += 0.5
		}
	default:
		c.WarningDays = 0
	}

	if c.WarningDays >= warningLimit || c.Capital < capitalFloor {
		c.Bankrupt = true
		c.BankruptDay = currentDay
	}
}

// ApplyPriceShock scales the latest candle by pct percent immediately,
// bypassing the daily model. Used for disasters, political events, and
// player-triggered shocks.
func (c *Company) ApplyPriceShock(pct float64) {
	if len(c.Candles) == 0 {
		return
	}
	factor := 1 + pct/100
	last := &c.Candles[len(c.Candles)-1]
	last.Open *= factor
	last.High *= factor
	last.Low *= factor
	last.Close *= factor
	if last.High < last.Low {
		last.High, last.Low = last.Low, last.High
	}
}
