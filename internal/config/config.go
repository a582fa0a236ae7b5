// Package config loads application configuration with priority:
// defaults -> TOML file -> STOCKSIM_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/hwanchang/stocksim/internal/game"
)

// Config is the top-level application configuration.
type Config struct {
	Simulation SimulationConfig `toml:"simulation"`
	Logging    LoggingConfig    `toml:"logging"`
	UI         UIConfig         `toml:"ui"`
}

// SimulationConfig mirrors the session parameters.
type SimulationConfig struct {
	Seed             int64            `toml:"seed"`
	PlayerName       string           `toml:"player_name"`
	PlayerCash       float64          `toml:"player_cash"`
	GoalAmount       float64          `toml:"goal_amount"`
	GoalDays         int              `toml:"goal_days"`
	InitialCompanies int              `toml:"initial_companies"`
	Bots             []game.BotConfig `toml:"bots"`
}

// LoggingConfig contains diagnostic log settings.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `toml:"level"`
	// File receives the diagnostic log; empty logs to stderr only.
	File string `toml:"file"`
	// Console mirrors the log to stderr when a file is set.
	Console bool `toml:"console"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// DayIntervalMS is the autoplay delay between simulated days.
	DayIntervalMS int `toml:"day_interval_ms"`
}

// Default returns the built-in configuration.
func Default() Config {
	sim := game.DefaultConfig()
	return Config{
		Simulation: SimulationConfig{
			PlayerName:       sim.PlayerName,
			PlayerCash:       sim.PlayerCash,
			GoalAmount:       sim.GoalAmount,
			GoalDays:         sim.GoalDays,
			InitialCompanies: sim.Market.InitialCompanies,
			Bots:             sim.Bots,
		},
		Logging: LoggingConfig{
			Level:   "info",
			File:    "logs/stocksim.log",
			Console: false,
		},
		UI: UIConfig{
			DayIntervalMS: 500,
		},
	}
}

// Load reads configuration with priority defaults -> file -> env. An empty
// path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// GameConfig converts the file-level simulation settings into the session
// config consumed by the game package.
func (c *Config) GameConfig() game.Config {
	gc := game.DefaultConfig()
	gc.Seed = c.Simulation.Seed
	if c.Simulation.PlayerName != "" {
		gc.PlayerName = c.Simulation.PlayerName
	}
	if c.Simulation.PlayerCash > 0 {
		gc.PlayerCash = c.Simulation.PlayerCash
	}
	if c.Simulation.GoalAmount > 0 {
		gc.GoalAmount = c.Simulation.GoalAmount
	}
	if c.Simulation.GoalDays > 0 {
		gc.GoalDays = c.Simulation.GoalDays
	}
	if c.Simulation.InitialCompanies > 0 {
		gc.Market.InitialCompanies = c.Simulation.InitialCompanies
	}
	if len(c.Simulation.Bots) > 0 {
		gc.Bots = c.Simulation.Bots
	}
	return gc
}

func applyEnvOverrides(cfg *Config) {
	if seed := os.Getenv("STOCKSIM_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Simulation.Seed = v
		}
	}
	if cash := os.Getenv("STOCKSIM_PLAYER_CASH"); cash != "" {
		if v, err := strconv.ParseFloat(cash, 64); err == nil {
			cfg.Simulation.PlayerCash = v
		}
	}
	if level := os.Getenv("STOCKSIM_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv("STOCKSIM_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
}
