// Package game ties the market and the trading agents into one simulation
// session. All simulation state hangs off the Session; there are no
// package-level globals, and the driving layer (CLI or TUI) owns exactly
// one Session at a time.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/phuslu/log"

	"github.com/hwanchang/stocksim/internal/investor"
	"github.com/hwanchang/stocksim/internal/investor/strategy"
	"github.com/hwanchang/stocksim/internal/market"
)

// Session is one simulation run: a market, the player's account, and the
// bot lineup.
type Session struct {
	Market *market.Market
	Player *investor.Investor
	Bots   []*investor.Bot

	holders []market.Shareholder

	cfg    Config
	rng    *rand.Rand
	logger *log.Logger
}

// NewSession builds a session from the config. A nil logger disables the
// diagnostic log.
func NewSession(cfg Config, logger *log.Logger) (*Session, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) build() error {
	s.Market = market.NewMarket(s.cfg.Market, nil, s.rng, s.logger)
	s.Player = investor.NewInvestor(s.cfg.PlayerName, s.cfg.PlayerCash, s.logger)

	s.Bots = s.Bots[:0]
	s.holders = []market.Shareholder{s.Player}
	for _, bc := range s.cfg.Bots {
		strat, err := strategy.New(bc.Strategy, s.rng)
		if err != nil {
			return fmt.Errorf("bot %s: %w", bc.Name, err)
		}
		bot := investor.NewBot(bc.Name, bc.Cash, strat, s.logger)
		s.Bots = append(s.Bots, bot)
		s.holders = append(s.holders, bot)
	}
	return nil
}

// AdvanceDay runs one simulated day across the market and all agents.
func (s *Session) AdvanceDay() market.DayReport {
	return s.Market.AdvanceDay(s.holders)
}

// Day returns the current day counter.
func (s *Session) Day() int { return s.Market.Day() }

// Shareholders returns every account in the session, player first.
func (s *Session) Shareholders() []market.Shareholder { return s.holders }

// PlayerValue is the player's current portfolio value.
func (s *Session) PlayerValue() float64 {
	return s.Player.PortfolioValue(s.Market)
}

// GoalReached reports whether the player's portfolio hit the goal amount.
func (s *Session) GoalReached() bool {
	return s.cfg.GoalAmount > 0 && s.PlayerValue() >= s.cfg.GoalAmount
}

// GoalFailed reports whether the deadline passed without the goal.
func (s *Session) GoalFailed() bool {
	return s.cfg.GoalDays > 0 && s.Market.Day() >= s.cfg.GoalDays && !s.GoalReached()
}

// GoalAmount returns the configured win threshold.
func (s *Session) GoalAmount() float64 { return s.cfg.GoalAmount }

// GoalDays returns the configured deadline.
func (s *Session) GoalDays() int { return s.cfg.GoalDays }

// Reset rebuilds the session from scratch: fresh market, fresh accounts.
// The random source is not re-seeded, so a reset run diverges from the
// first one.
func (s *Session) Reset() error {
	if s.logger != nil {
		s.logger.Info().Msg("session reset")
	}
	return s.build()
}
