package market

import "math/rand"

// Sectors is the fixed set of industry sectors companies belong to.
var Sectors = []string{"IT", "Pharma", "Chemical", "Gaming", "Energy", "Finance"}

// Shareholder is the minimal account surface the market needs when it
// migrates holdings during a merger or reports bankruptcy exposure.
// It is implemented by the investor package.
type Shareholder interface {
	// Holding reports the position in a company, if any.
	Holding(companyID string) (quantity int, avgPrice float64, ok bool)
	// SetHolding replaces the position in a company.
	SetHolding(companyID string, quantity int, avgPrice float64)
	// RemoveHoldingID deletes the position in a company outright.
	RemoveHoldingID(companyID string) bool
}

// Trader is a Shareholder that trades autonomously once per day.
// The market type-asserts for it during the day cycle; the player's
// account is a plain Shareholder and is never traded on its behalf.
type Trader interface {
	Shareholder
	DecideTrades(rng *rand.Rand, m *Market)
}

// DayReport summarizes the side effects of one simulated day that the
// driving layer may want to surface.
type DayReport struct {
	Day int
	// NewlyBankrupt lists companies removed from the roster this day.
	NewlyBankrupt []*Company
	// PrimaryHolderBankruptcies is the subset of NewlyBankrupt held by the
	// first shareholder passed to AdvanceDay (the player, by convention).
	PrimaryHolderBankruptcies []*Company
}
