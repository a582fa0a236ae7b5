package news

import (
	"sort"
	"strings"
)

// EconomicHeadline is a macro news template paired with the policy-sentiment
// delta applied when it runs.
type EconomicHeadline struct {
	Text  string
	Delta float64
}

// Catalog holds the message templates the event generator draws from.
// Templates may contain {company} and {sector} placeholders. A missing
// template list for a sector means that news category is silently skipped.
type Catalog struct {
	PositiveBySector map[string][]string
	NegativeBySector map[string][]string
	PolicyBySector   map[string][]string
	EconomicPositive []EconomicHeadline
	EconomicNegative []EconomicHeadline
}

// PolicySectors returns the sectors that have policy templates, in a stable
// order so that random selection is reproducible under a seeded source.
func (c *Catalog) PolicySectors() []string {
	sectors := make([]string, 0, len(c.PolicyBySector))
	for s := range c.PolicyBySector {
		sectors = append(sectors, s)
	}
	sort.Strings(sectors)
	return sectors
}

// Fill substitutes the {company} and {sector} placeholders in a template.
func Fill(template, company, sector string) string {
	out := strings.ReplaceAll(template, "{company}", company)
	return strings.ReplaceAll(out, "{sector}", sector)
}

// DefaultCatalog returns the built-in template tables covering the six
// standard sectors.
func DefaultCatalog() *Catalog {
	return &Catalog{
		PositiveBySector: map[string][]string{
			"IT": {
				"{company} lands a major cloud infrastructure contract",
				"{company} posts record quarterly user growth",
				"{company} unveils an AI platform to strong reviews",
			},
			"Pharma": {
				"{company} reports successful phase-3 trial results",
				"{company} wins regulatory approval for a new drug",
				"{company} signs a global licensing deal",
			},
			"Chemical": {
				"{company} opens a next-generation materials plant",
				"{company} secures a long-term supply agreement",
				"{company} patents a low-cost polymer process",
			},
			"Gaming": {
				"{company}'s new title tops the download charts",
				"{company} announces a hit expansion with record pre-orders",
				"{company} signs a console exclusivity deal",
			},
			"Energy": {
				"{company} strikes a major offshore field",
				"{company} wins a national grid modernization bid",
				"{company} doubles renewable generation capacity",
			},
			"Finance": {
				"{company} beats earnings estimates on trading revenue",
				"{company} announces a share buyback program",
				"{company} expands into overseas retail banking",
			},
		},
		NegativeBySector: map[string][]string{
			"IT": {
				"{company} suffers a large-scale data breach",
				"{company} delays its flagship product launch",
				"{company} loses a key patent lawsuit",
			},
			"Pharma": {
				"{company} halts a trial over safety concerns",
				"{company} faces a product recall",
				"{company} loses exclusivity on its best-selling drug",
			},
			"Chemical": {
				"{company} fined over an emissions violation",
				"{company} shuts a plant after an accident",
				"{company} hit by surging feedstock costs",
			},
			"Gaming": {
				"{company}'s flagship launch flops with players",
				"{company} hit by server outages during launch week",
				"{company} faces regulatory scrutiny over loot boxes",
			},
			"Energy": {
				"{company} reports a pipeline spill",
				"{company} writes down stranded assets",
				"{company} loses a major supply contract",
			},
			"Finance": {
				"{company} discloses unexpected loan losses",
				"{company} under investigation for compliance failures",
				"{company} cuts its dividend on capital concerns",
			},
		},
		PolicyBySector: map[string][]string{
			"IT":       {"Government announces a {sector} sector investment package", "New data regulations reshape the {sector} sector"},
			"Pharma":   {"Drug pricing reform targets the {sector} sector", "Fast-track approvals announced for the {sector} sector"},
			"Chemical": {"Stricter environmental rules hit the {sector} sector", "Export incentives announced for the {sector} sector"},
			"Gaming":   {"Playtime regulations proposed for the {sector} sector", "Tax credits unveiled for the {sector} sector"},
			"Energy":   {"Carbon pricing overhaul shakes the {sector} sector", "Subsidy expansion announced for the {sector} sector"},
			"Finance":  {"Capital requirement changes hit the {sector} sector", "Rate policy shift rewires the {sector} sector"},
		},
		EconomicPositive: []EconomicHeadline{
			{Text: "Consumer confidence jumps to a multi-year high", Delta: 1.5},
			{Text: "Exports grow for a third straight month", Delta: 1.0},
			{Text: "Central bank signals easier policy ahead", Delta: 2.0},
			{Text: "Unemployment falls below expectations", Delta: 1.0},
		},
		EconomicNegative: []EconomicHeadline{
			{Text: "Manufacturing output contracts sharply", Delta: -1.5},
			{Text: "Trade dispute escalates with key partners", Delta: -2.0},
			{Text: "Household debt reaches a record level", Delta: -1.0},
			{Text: "Currency slides on capital outflows", Delta: -1.0},
		},
	}
}
