package market

import (
	"fmt"
	"math/rand"

	"github.com/hwanchang/stocksim/internal/news"
)

// EventGenerator produces randomized company, sector, and economy news and
// schedules the delayed price effects they carry. It draws all text from
// the catalog; a missing template list means the item is silently skipped.
type EventGenerator struct {
	catalog *news.Catalog
}

// NewEventGenerator creates a generator over the given catalog.
func NewEventGenerator(catalog *news.Catalog) *EventGenerator {
	if catalog == nil {
		catalog = news.DefaultCatalog()
	}
	return &EventGenerator{catalog: catalog}
}

// GenerateDaily emits at most one news item by picking one of eight
// category slots uniformly: four map to company news (two positive, two
// negative), two to sector policy, two to macro-economic news.
func (g *EventGenerator) GenerateDaily(m *Market, rng *rand.Rand) {
	switch msgType := rng.Intn(8); msgType {
	case 0, 1, 4, 6:
		g.companyNews(m, rng, msgType == 0 || msgType == 4)
	case 2, 3:
		g.policyNews(m, rng)
	default:
		g.economicNews(m, rng)
	}
}

func (g *EventGenerator) companyNews(m *Market, rng *rand.Rand, positive bool) {
	candidates := make([]*Company, 0, len(m.companies))
	for _, c := range m.companies {
		if !c.Bankrupt {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return
	}
	target := candidates[rng.Intn(len(candidates))]

	if positive {
		templates := g.catalog.PositiveBySector[target.Sector]
		if len(templates) == 0 {
			return
		}
		m.publish(news.Event{
			Kind:    news.KindPositive,
			Day:     m.dayCount,
			Sector:  target.Sector,
			Company: target.Name,
			Text:    news.Fill(templates[rng.Intn(len(templates))], target.Name, target.Sector),
		})
		impactPct := uniform(rng, 0.005, 0.01)
		duration := randInt(rng, 20, 30)
		target.NewsImpact = impactPct / float64(duration)
		target.NewsImpactDays = duration
		return
	}

	templates := g.catalog.NegativeBySector[target.Sector]
	if len(templates) == 0 {
		return
	}
	m.publish(news.Event{
		Kind:    news.KindNegative,
		Day:     m.dayCount,
		Sector:  target.Sector,
		Company: target.Name,
		Text:    news.Fill(templates[rng.Intn(len(templates))], target.Name, target.Sector),
	})
	impactPct := uniform(rng, -0.075, -0.025)
	duration := randInt(rng, 3, 7)
	target.NewsImpact = impactPct / float64(duration)
	target.NewsImpactDays = duration
}

func (g *EventGenerator) policyNews(m *Market, rng *rand.Rand) {
	sectors := g.catalog.PolicySectors()
	if len(sectors) == 0 {
		return
	}
	sector := sectors[rng.Intn(len(sectors))]
	templates := g.catalog.PolicyBySector[sector]
	if len(templates) == 0 {
		return
	}

	m.publish(news.Event{
		Kind:   news.KindPolicy,
		Day:    m.dayCount,
		Sector: sector,
		Text:   news.Fill(templates[rng.Intn(len(templates))], "", sector),
	})

	var sectorCompanies []*Company
	for _, c := range m.companies {
		if c.Sector == sector {
			sectorCompanies = append(sectorCompanies, c)
		}
	}

	// Roughly a third of the roster caps how many sector members react.
	sampleSize := len(m.companies) / 3
	if sampleSize < 1 {
		sampleSize = 1
	}
	if sampleSize > len(sectorCompanies) {
		sampleSize = len(sectorCompanies)
	}

	impactPct := uniform(rng, -0.0025, 0.0025)
	duration := randInt(rng, 20, 30)
	for _, c := range sample(rng, sectorCompanies, sampleSize) {
		c.NewsImpact = impactPct / float64(duration)
		c.NewsImpactDays = duration
	}
}

func (g *EventGenerator) economicNews(m *Market, rng *rand.Rand) {
	// Probability of good macro news rises linearly with policy sentiment.
	pPositive := clamp((m.economy.SentimentScore+30)/60, 0.1, 0.9)

	var impactPct float64
	var headline news.EconomicHeadline
	if rng.Float64() < pPositive {
		if len(g.catalog.EconomicPositive) == 0 {
			return
		}
		impactPct = uniform(rng, 0.001, 0.002)
		headline = g.catalog.EconomicPositive[rng.Intn(len(g.catalog.EconomicPositive))]
	} else {
		if len(g.catalog.EconomicNegative) == 0 {
			return
		}
		impactPct = uniform(rng, -0.002, -0.001)
		headline = g.catalog.EconomicNegative[rng.Intn(len(g.catalog.EconomicNegative))]
	}

	m.publish(news.Event{
		Kind: news.KindEconomic,
		Day:  m.dayCount,
		Text: headline.Text,
	})

	sampleSize := len(m.companies) / 5
	if sampleSize < 1 {
		sampleSize = 1
	}
	duration := randInt(rng, 20, 30)
	for _, c := range sample(rng, m.companies, sampleSize) {
		c.NewsImpact = impactPct / float64(duration)
		c.NewsImpactDays = duration
	}

	m.economy.SentimentScore += headline.Delta
}

// HandleSpecial runs the low-probability immediate-shock pass: 2% chance of
// a natural disaster, a further 2% of a political event. Unlike regular
// news these apply to the latest candle at once rather than decaying in.
func (g *EventGenerator) HandleSpecial(m *Market, rng *rand.Rand) {
	chance := rng.Float64()
	switch {
	case chance < 0.02:
		g.naturalDisaster(m, rng)
	case chance < 0.04:
		g.politicalEvent(m, rng)
	}
}

func (g *EventGenerator) naturalDisaster(m *Market, rng *rand.Rand) {
	sectors := []string{"Energy", "Chemical", "Pharma"}
	sector := sectors[rng.Intn(len(sectors))]
	target := m.randomSectorCompany(rng, sector)
	if target == nil {
		return
	}

	damagePct := uniform(rng, 0.05, 0.15)
	m.applyPriceShock(target, -damagePct*100)

	m.publish(news.Event{
		Kind:    news.KindNaturalDisaster,
		Day:     m.dayCount,
		Sector:  sector,
		Company: target.Name,
		Text:    fmt.Sprintf("%s drops %.2f%% after a natural disaster", target.Name, damagePct*100),
	})
}

func (g *EventGenerator) politicalEvent(m *Market, rng *rand.Rand) {
	sectors := []string{"Finance", "IT", "Gaming"}
	sector := sectors[rng.Intn(len(sectors))]
	target := m.randomSectorCompany(rng, sector)
	if target == nil {
		return
	}

	impactPct := uniform(rng, -0.1, 0.1)
	m.applyPriceShock(target, impactPct*100)

	direction := "favorable"
	if impactPct <= 0 {
		direction = "adverse"
	}
	m.publish(news.Event{
		Kind:    news.KindPolitical,
		Day:     m.dayCount,
		Sector:  sector,
		Company: target.Name,
		Text:    fmt.Sprintf("%s moves %.2f%% on %s political developments", target.Name, impactPct*100, direction),
	})
}

// Surge schedules a gradual climb for one modestly priced company toward a
// 3-5% higher target over 5-10 days, announced with a sector-positive
// reason. The climb runs through the news-impact channel.
func (g *EventGenerator) Surge(m *Market, rng *rand.Rand) *Company {
	var candidates []*Company
	for _, c := range m.companies {
		if !c.Bankrupt && c.CurrentPrice() < 50_000 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	target := candidates[rng.Intn(len(candidates))]

	reason := "unspecified reasons"
	if templates := g.catalog.PositiveBySector[target.Sector]; len(templates) > 0 {
		reason = news.Fill(templates[rng.Intn(len(templates))], target.Name, target.Sector)
	}

	const surgeCeiling = 300_000
	price := target.CurrentPrice()
	targetPrice := price * uniform(rng, 1.03, 1.05)
	if targetPrice > surgeCeiling {
		targetPrice = surgeCeiling
	}
	surgeDays := randInt(rng, 5, 10)

	if price > 0 {
		target.NewsImpact = (targetPrice - price) / price / float64(surgeDays)
		target.NewsImpactDays = surgeDays
	}

	m.publish(news.Event{
		Kind:    news.KindSurge,
		Day:     m.dayCount,
		Sector:  target.Sector,
		Company: target.Name,
		Text:    fmt.Sprintf("%s set to climb: %s", target.Name, reason),
	})
	return target
}

// PlayerEvent applies an instant 5-15% boost to a random company on the
// player's behalf.
func (g *EventGenerator) PlayerEvent(m *Market, rng *rand.Rand) {
	if len(m.companies) == 0 {
		return
	}
	target := m.companies[rng.Intn(len(m.companies))]
	impactPct := uniform(rng, 0.05, 0.15)
	m.applyPriceShock(target, impactPct*100)

	m.publish(news.Event{
		Kind:    news.KindPlayerEvent,
		Day:     m.dayCount,
		Sector:  target.Sector,
		Company: target.Name,
		Text:    fmt.Sprintf("%s jumps %.2f%% on a player-driven rally", target.Name, impactPct*100),
	})
}
