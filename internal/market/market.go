package market

import (
	"math/rand"

	"github.com/phuslu/log"

	"github.com/hwanchang/stocksim/internal/news"
)

// Market owns the company roster, the bankrupt-company archive, the
// economy, the event generator, and the corporate action engine, and
// advances all of them one day at a time. It is single-writer: all
// mutation happens inside AdvanceDay or the explicitly exposed operations,
// never concurrently.
type Market struct {
	cfg Config

	companies []*Company
	bankrupt  []*Company

	economy *Economy
	events  *EventGenerator
	actions *CorporateActionEngine

	dayCount int

	allMessages []news.Event
	tape        *news.Tape

	rng    *rand.Rand
	logger *log.Logger
}

// NewMarket creates a market with a randomized initial roster. A nil
// catalog falls back to the built-in templates; a nil logger disables the
// diagnostic log.
func NewMarket(cfg Config, catalog *news.Catalog, rng *rand.Rand, logger *log.Logger) *Market {
	if cfg.TapeSize <= 0 {
		cfg.TapeSize = DefaultConfig().TapeSize
	}
	if cfg.ReplenishTarget < cfg.MinCompanies {
		cfg.ReplenishTarget = cfg.MinCompanies
	}

	m := &Market{
		cfg:     cfg,
		economy: NewEconomy(),
		events:  NewEventGenerator(catalog),
		actions: &CorporateActionEngine{},
		tape:    news.NewTape(cfg.TapeSize),
		rng:     rng,
		logger:  logger,
	}

	for i := 0; i < cfg.InitialCompanies; i++ {
		name := RandomName(rng)
		sector := Sectors[rng.Intn(len(Sectors))]
		price := uniform(rng, cfg.InitialPriceMin, cfg.InitialPriceMax)
		c := NewCompany(rng, name, sector, price, 0)
		c.Competitors = m.sampleCompetitors(2)
		m.companies = append(m.companies, c)
	}

	return m
}

// Companies returns the active roster. Read-only view; callers must not
// modify the slice or reorder it.
func (m *Market) Companies() []*Company { return m.companies }

// BankruptCompanies returns the archive of companies removed from the
// roster, prices frozen at the day they went under.
func (m *Market) BankruptCompanies() []*Company { return m.bankrupt }

// Day returns the current day counter.
func (m *Market) Day() int { return m.dayCount }

// Economy returns the macro model for display.
func (m *Market) Economy() *Economy { return m.economy }

// Messages returns the full news log since market creation.
func (m *Market) Messages() []news.Event { return m.allMessages }

// RecentMessages returns the bounded recent-news window, oldest first.
func (m *Market) RecentMessages() []news.Event { return m.tape.All() }

// FindCompany looks a company up by ID in the roster, then the archive.
func (m *Market) FindCompany(id string) *Company {
	for _, c := range m.companies {
		if c.ID == id {
			return c
		}
	}
	for _, c := range m.bankrupt {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// AdvanceDay runs one full simulated day. The first shareholder is treated
// as the primary (player) account for bankruptcy exposure reporting; any
// shareholder that also implements Trader gets to trade. Step order is
// load-bearing: later steps read the state earlier steps produced.
func (m *Market) AdvanceDay(holders []Shareholder) DayReport {
	m.dayCount++

	m.economy.UpdateSentiment()
	m.economy.UpdateFactors(m.rng)
	econFactor := m.economy.Factor()

	for _, c := range m.companies {
		if c.Bankrupt {
			continue
		}
		c.UpdateDailyPrice(m.rng, econFactor, m.economy.Factors, m.economy.National)
		c.CheckBankruptcy(m.dayCount)
	}

	m.actions.Run(m, m.rng)

	for _, h := range holders {
		if t, ok := h.(Trader); ok {
			t.DecideTrades(m.rng, m)
		}
	}

	report := m.collectBankruptcies(holders)

	if len(m.companies) < m.cfg.MinCompanies {
		m.addRandomCompanies(m.cfg.ReplenishTarget - len(m.companies))
	} else if m.rng.Float64() < m.creationProbability() {
		m.addRandomCompanies(1)
	}

	if m.rng.Float64() < m.cfg.NewsProbability {
		m.events.GenerateDaily(m, m.rng)
	}
	m.events.HandleSpecial(m, m.rng)

	if m.logger != nil {
		m.logger.Info().
			Int("day", m.dayCount).
			Str("condition", m.economy.Condition().String()).
			Float64("sentiment", m.economy.SentimentScore).
			Int("companies", len(m.companies)).
			Int("bankruptcies", len(report.NewlyBankrupt)).
			Msg("day advanced")
	}

	return report
}

// SurgeEvent triggers a gradual price climb for one eligible company and
// returns it, or nil when no company qualifies.
func (m *Market) SurgeEvent() *Company {
	return m.events.Surge(m, m.rng)
}

// TriggerPlayerEvent applies an instant player-driven price boost to a
// random company.
func (m *Market) TriggerPlayerEvent() {
	m.events.PlayerEvent(m, m.rng)
}

// MergeOrPartner pairs two companies, 50/50 between merger and
// partnership. Returns the merged company when a merger happened.
func (m *Market) MergeOrPartner(c1, c2 *Company, holders []Shareholder) *Company {
	return m.actions.MergeOrPartner(m, c1, c2, holders)
}

func (m *Market) collectBankruptcies(holders []Shareholder) DayReport {
	report := DayReport{Day: m.dayCount}

	var primary Shareholder
	if len(holders) > 0 {
		primary = holders[0]
	}

	survivors := m.companies[:0]
	for _, c := range m.companies {
		if !c.Bankrupt {
			survivors = append(survivors, c)
			continue
		}

		report.NewlyBankrupt = append(report.NewlyBankrupt, c)
		m.bankrupt = append(m.bankrupt, c)
		m.publish(news.Event{
			Kind:    news.KindBankruptcy,
			Day:     m.dayCount,
			Sector:  c.Sector,
			Company: c.Name,
			Text:    c.Name + " declares bankruptcy after sustained decline",
		})

		if primary != nil {
			if qty, _, ok := primary.Holding(c.ID); ok && qty > 0 {
				report.PrimaryHolderBankruptcies = append(report.PrimaryHolderBankruptcies, c)
			}
		}
	}
	m.companies = survivors

	return report
}

// creationProbability is the chance of one extra listing per day, by
// regime: booms breed companies, crises don't.
func (m *Market) creationProbability() float64 {
	switch m.economy.Condition() {
	case ConditionBoom:
		return 0.05
	case ConditionNormal:
		return 0.02
	case ConditionRecession:
		return 0.01
	default:
		return 0.0
	}
}

func (m *Market) addRandomCompanies(n int) {
	for i := 0; i < n; i++ {
		name := RandomName(m.rng)
		sector := Sectors[m.rng.Intn(len(Sectors))]
		price := uniform(m.rng, 5_000, 40_000)
		c := NewCompany(m.rng, name, sector, price, m.dayCount)
		c.Competitors = m.sampleCompetitors(2)
		m.addCompany(c)

		m.publish(news.Event{
			Kind:    news.KindNewListing,
			Day:     m.dayCount,
			Sector:  sector,
			Company: name,
			Text:    name + " (" + sector + ") lists on the exchange",
		})
	}
}

func (m *Market) sampleCompetitors(n int) []string {
	names := make([]string, 0, len(m.companies))
	for _, c := range m.companies {
		names = append(names, c.Name)
	}
	return sample(m.rng, names, n)
}

func (m *Market) addCompany(c *Company) {
	m.companies = append(m.companies, c)
}

func (m *Market) removeCompany(target *Company) {
	for i, c := range m.companies {
		if c == target {
			m.companies = append(m.companies[:i], m.companies[i+1:]...)
			return
		}
	}
}

func (m *Market) randomCounterparty(rng *rand.Rand, c1 *Company) *Company {
	if len(m.companies) == 0 {
		return nil
	}
	c2 := m.companies[rng.Intn(len(m.companies))]
	if c2.ID == c1.ID || c2.Bankrupt {
		return nil
	}
	return c2
}

func (m *Market) randomSectorCompany(rng *rand.Rand, sector string) *Company {
	var pool []*Company
	for _, c := range m.companies {
		if c.Sector == sector && !c.Bankrupt {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		return nil
	}
	return pool[rng.Intn(len(pool))]
}

// applyPriceShock shocks the latest candle and immediately re-checks the
// bankruptcy condition, as every instant price change does.
func (m *Market) applyPriceShock(c *Company, pct float64) {
	c.ApplyPriceShock(pct)
	c.CheckBankruptcy(m.dayCount)
}

func (m *Market) publish(ev news.Event) {
	m.allMessages = append(m.allMessages, ev)
	m.tape.Append(ev)
	if m.logger != nil {
		m.logger.Debug().
			Int("day", ev.Day).
			Str("kind", ev.Kind.String()).
			Str("company", ev.Company).
			Str("sector", ev.Sector).
			Msg(ev.Text)
	}
}
