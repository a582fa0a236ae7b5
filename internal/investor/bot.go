package investor

import (
	"math/rand"

	"github.com/phuslu/log"

	"github.com/hwanchang/stocksim/internal/investor/strategy"
	"github.com/hwanchang/stocksim/internal/market"
)

// Bot is an autonomous investor: a plain account driven by one trading
// strategy, once per simulated day.
type Bot struct {
	*Investor

	strat strategy.Strategy
}

// NewBot creates a bot with starting cash and a strategy.
func NewBot(name string, cash float64, strat strategy.Strategy, logger *log.Logger) *Bot {
	return &Bot{
		Investor: NewInvestor(name, cash, logger),
		strat:    strat,
	}
}

// StrategyName reports which strategy drives this bot.
func (b *Bot) StrategyName() string { return b.strat.Name() }

// DecideTrades implements market.Trader.
func (b *Bot) DecideTrades(rng *rand.Rand, m *market.Market) {
	b.strat.Decide(rng, m, b.Investor)
}
