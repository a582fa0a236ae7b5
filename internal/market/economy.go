package market

import (
	"math"
	"math/rand"
)

// Condition is the discrete economic regime derived from policy sentiment.
type Condition uint8

const (
	ConditionBoom Condition = iota
	ConditionNormal
	ConditionRecession
	ConditionCrisis
)

func (c Condition) String() string {
	switch c {
	case ConditionBoom:
		return "boom"
	case ConditionNormal:
		return "normal"
	case ConditionRecession:
		return "recession"
	case ConditionCrisis:
		return "crisis"
	default:
		return "unknown"
	}
}

// EconomicFactors are the macro indicators feeding the price adjustment.
type EconomicFactors struct {
	GDPGrowth          float64
	Inflation          float64
	InterestRate       float64
	Unemployment       float64
	ExchangeRate       float64
	RawMaterialCost    float64
	PoliticalStability float64
	InnovationIndex    float64
}

// NationalFactors are the slower-moving country-level indicators.
type NationalFactors struct {
	TotalAssets float64
	BirthRate   float64
	Population  int
}

// Economy evolves policy sentiment and the macro indicators once per day.
// Sentiment follows a bounded sine oscillation; the indicators random-walk
// with regime-dependent drift and per-factor clamp ranges.
type Economy struct {
	SentimentScore float64

	amplitude float64
	frequency float64
	phase     float64

	Factors  EconomicFactors
	National NationalFactors
}

// NewEconomy returns an economy at the reference model's starting point.
func NewEconomy() *Economy {
	return &Economy{
		amplitude: 20,
		frequency: 0.1,
		Factors: EconomicFactors{
			GDPGrowth:          2.0,
			Inflation:          2.0,
			InterestRate:       1.5,
			Unemployment:       1.0,
			ExchangeRate:       1300.0,
			RawMaterialCost:    100.0,
			PoliticalStability: 1.0,
			InnovationIndex:    1.0,
		},
		National: NationalFactors{
			TotalAssets: 23_000.0,
			BirthRate:   1.5,
			Population:  50_000_000,
		},
	}
}

// Condition classifies the current sentiment into one of four regimes.
func (e *Economy) Condition() Condition {
	s := e.SentimentScore
	switch {
	case s >= 15:
		return ConditionBoom
	case s >= -5:
		return ConditionNormal
	case s > -20:
		return ConditionRecession
	default:
		return ConditionCrisis
	}
}

// Factor is the volatility multiplier for the current regime.
func (e *Economy) Factor() float64 {
	switch e.Condition() {
	case ConditionBoom:
		return 0.8
	case ConditionNormal:
		return 1.0
	case ConditionRecession:
		return 1.2
	default:
		return 1.5
	}
}

// UpdateSentiment advances the oscillation one day.
func (e *Economy) UpdateSentiment() {
	e.phase += e.frequency
	e.SentimentScore = e.amplitude * math.Sin(e.phase)
}

// UpdateFactors applies one day of regime-dependent drift. The drift table
// (including the recession regime's double nudge of political stability and
// innovation) reproduces the reference model exactly; factors are clamped
// to their fixed ranges after every nudge.
func (e *Economy) UpdateFactors(rng *rand.Rand) {
	f := &e.Factors
	n := &e.National

	switch {
	case e.SentimentScore >= 15: // boom
		f.GDPGrowth = clamp(f.GDPGrowth+uniform(rng, 0.5, 1.0), -5.0, 10.0)
		f.Inflation = clamp(f.Inflation+uniform(rng, -0.5, -0.25), -15.0, 15.0)
		f.InterestRate = clamp(f.InterestRate+uniform(rng, -0.1, -0.05), 0.5, 15.0)
		f.Unemployment = clamp(f.Unemployment+uniform(rng, -0.15, -0.05), 0.0, 7.0)
		f.ExchangeRate = clamp(f.ExchangeRate+uniform(rng, -3, -1), 1000, 1500)
		f.RawMaterialCost = clamp(f.RawMaterialCost+uniform(rng, -5, -2.5), 50, 200)
		f.PoliticalStability = clamp(f.PoliticalStability+uniform(rng, 0.0, 0.075), 0.0, 2.0)
		f.InnovationIndex = clamp(f.InnovationIndex+uniform(rng, 0.0, 0.075), 0.0, 2.0)
		n.TotalAssets = clamp(n.TotalAssets+uniform(rng, -5, -2.5), 18_000.0, 28_000.0)
		n.BirthRate = clamp(n.BirthRate+uniform(rng, -0.1, -0.05), 0.5, 3.0)
		n.Population = clampInt(n.Population+randInt(rng, -5000, -2500), 10_000_000, 100_000_000)

	case e.SentimentScore >= -5: // normal
		f.GDPGrowth = clamp(f.GDPGrowth+uniform(rng, -0.25, 0.1), -5.0, 10.0)
		f.Inflation = clamp(f.Inflation+uniform(rng, -0.25, 0.25), -2.0, 15.0)
		f.InterestRate = clamp(f.InterestRate+uniform(rng, -0.05, 0.05), 0.5, 15.0)
		f.Unemployment = clamp(f.Unemployment+uniform(rng, -0.05, 0.1), 0.0, 7.0)
		f.ExchangeRate = clamp(f.ExchangeRate+uniform(rng, -5, 5), 1000, 1500)
		f.RawMaterialCost = clamp(f.RawMaterialCost+uniform(rng, -2.5, 2.5), 50, 200)
		f.PoliticalStability = clamp(f.PoliticalStability+uniform(rng, -0.025, 0.025), 0.0, 2.0)
		f.InnovationIndex = clamp(f.InnovationIndex+uniform(rng, -0.025, 0.025), 0.0, 2.0)
		n.TotalAssets = clamp(n.TotalAssets+uniform(rng, -2.5, 2.5), 18_000.0, 28_000.0)
		n.BirthRate = clamp(n.BirthRate+uniform(rng, -0.05, 0.05), 0.5, 3.0)
		n.Population = clampInt(n.Population+randInt(rng, -2500, 2500), 10_000_000, 100_000_000)

	case e.SentimentScore > -20: // recession
		f.GDPGrowth = clamp(f.GDPGrowth+uniform(rng, -0.75, 0.05), -5.0, 10.0)
		f.Inflation = clamp(f.Inflation+uniform(rng, -0.0125, 0.25), -2.0, 15.0)
		f.InterestRate = clamp(f.InterestRate+uniform(rng, -0.025, 0.05), 0.5, 15.0)
		f.Unemployment = clamp(f.Unemployment+uniform(rng, -0.025, 0.1), 0.0, 7.0)
		f.ExchangeRate = clamp(f.ExchangeRate+uniform(rng, -2.5, 5), 1000, 1500)
		f.RawMaterialCost = clamp(f.RawMaterialCost+uniform(rng, -1.25, 2.5), 50, 200)
		f.PoliticalStability = clamp(f.PoliticalStability+uniform(rng, -0.0125, 0.025), 0.0, 2.0)
		f.InnovationIndex = clamp(f.InnovationIndex+uniform(rng, -0.0125, 0.025), 0.0, 2.0)
		n.TotalAssets = clamp(n.TotalAssets+uniform(rng, 0.0, 2.5), 18_000.0, 28_000.0)
		f.PoliticalStability = clamp(f.PoliticalStability+uniform(rng, -0.03, -0.025), 0.0, 2.0)
		f.InnovationIndex = clamp(f.InnovationIndex+uniform(rng, -0.03, -0.025), 0.0, 2.0)
		n.BirthRate = clamp(n.BirthRate+uniform(rng, 0.0, 0.05), 0.5, 3.0)
		n.Population = clampInt(n.Population+randInt(rng, 0, 2500), 10_000_000, 100_000_000)

	default: // crisis
		f.GDPGrowth = clamp(f.GDPGrowth+uniform(rng, -0.2, -0.1), -5.0, 10.0)
		f.Inflation = clamp(f.Inflation+uniform(rng, 0.25, 0.5), -2.0, 15.0)
		f.InterestRate = clamp(f.InterestRate+uniform(rng, 0.05, 0.1), 0.5, 15.0)
		f.Unemployment = clamp(f.Unemployment+uniform(rng, 0.05, 0.1), 0.0, 7.0)
		f.ExchangeRate = clamp(f.ExchangeRate+uniform(rng, 5, 10), 1000, 1500)
		f.RawMaterialCost = clamp(f.RawMaterialCost+uniform(rng, 2.5, 5.0), 50, 200)
		f.PoliticalStability = clamp(f.PoliticalStability+uniform(rng, 0.0, -0.03), 0.0, 2.0)
		f.InnovationIndex = clamp(f.InnovationIndex+uniform(rng, 0.0, -0.03), 0.0, 2.0)
		n.TotalAssets = clamp(n.TotalAssets+uniform(rng, 2.5, 5.0), 18_000.0, 28_000.0)
		n.BirthRate = clamp(n.BirthRate+uniform(rng, 0.05, 0.1), 0.5, 3.0)
		n.Population = clampInt(n.Population+randInt(rng, 0, 5000), 10_000_000, 100_000_000)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
