package game

import "github.com/hwanchang/stocksim/internal/market"

// BotConfig describes one autonomous trading bot.
type BotConfig struct {
	Name     string  `toml:"name"`
	Cash     float64 `toml:"cash"`
	Strategy string  `toml:"strategy"`
}

// Config holds configuration for a simulation session.
type Config struct {
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64 `toml:"seed"`
	// PlayerName labels the primary investor.
	PlayerName string `toml:"player_name"`
	// PlayerCash is the primary investor's starting cash.
	PlayerCash float64 `toml:"player_cash"`
	// Bots is the autonomous trader lineup.
	Bots []BotConfig `toml:"bots"`
	// GoalAmount is the portfolio value that wins the run.
	GoalAmount float64 `toml:"goal_amount"`
	// GoalDays is the deadline for reaching GoalAmount.
	GoalDays int `toml:"goal_days"`
	// Market is the market engine configuration.
	Market market.Config `toml:"-"`
}

// DefaultConfig returns the reference scenario: one player and five bots,
// one per strategy.
func DefaultConfig() Config {
	return Config{
		PlayerName: "Player",
		PlayerCash: 25_000_000,
		Bots: []BotConfig{
			{Name: "bot-random", Cash: 5_000_000, Strategy: "random"},
			{Name: "bot-growth", Cash: 7_000_000, Strategy: "growth"},
			{Name: "bot-sector", Cash: 6_000_000, Strategy: "sector"},
			{Name: "bot-value", Cash: 8_000_000, Strategy: "value"},
			{Name: "bot-momentum", Cash: 7_500_000, Strategy: "momentum"},
		},
		GoalAmount: 100_000_000,
		GoalDays:   90,
		Market:     market.DefaultConfig(),
	}
}
