package market

// Config holds the market's tunable parameters.
type Config struct {
	// InitialCompanies is the roster size at market creation.
	InitialCompanies int
	// InitialPriceMin/Max bound the listing price of the initial roster.
	InitialPriceMin float64
	InitialPriceMax float64
	// MinCompanies is the roster floor checked at the end of each day;
	// falling below it spawns companies up to ReplenishTarget.
	MinCompanies int
	// ReplenishTarget is the roster size restored when below MinCompanies.
	ReplenishTarget int
	// NewsProbability is the per-day chance of generating one news item.
	NewsProbability float64
	// TapeSize is the capacity of the recent-news ring buffer.
	TapeSize int
}

// DefaultConfig returns the reference model's parameters.
func DefaultConfig() Config {
	return Config{
		InitialCompanies: 23,
		InitialPriceMin:  1_000,
		InitialPriceMax:  50_000,
		MinCompanies:     10,
		ReplenishTarget:  12,
		NewsProbability:  0.7,
		TapeSize:         37,
	}
}
