package news

// Kind identifies what a news event reports. The enumeration is closed:
// consumers can switch exhaustively instead of probing optional fields.
type Kind uint8

const (
	KindSurge Kind = iota
	KindInvestment
	KindAcquisition
	KindMerger
	KindPartnership
	KindNewListing
	KindBankruptcy
	KindPositive
	KindNegative
	KindPolicy
	KindEconomic
	KindNaturalDisaster
	KindPolitical
	KindContract
	KindPatent
	KindProduct
	KindRegulation
	KindLabor
	KindSupply
	KindPlayerEvent
	KindTrade
)

func (k Kind) String() string {
	switch k {
	case KindSurge:
		return "surge"
	case KindInvestment:
		return "investment"
	case KindAcquisition:
		return "acquisition"
	case KindMerger:
		return "merger"
	case KindPartnership:
		return "partnership"
	case KindNewListing:
		return "new-listing"
	case KindBankruptcy:
		return "bankruptcy"
	case KindPositive:
		return "positive"
	case KindNegative:
		return "negative"
	case KindPolicy:
		return "policy"
	case KindEconomic:
		return "economic"
	case KindNaturalDisaster:
		return "natural-disaster"
	case KindPolitical:
		return "political"
	case KindContract:
		return "contract"
	case KindPatent:
		return "patent"
	case KindProduct:
		return "product"
	case KindRegulation:
		return "regulation"
	case KindLabor:
		return "labor"
	case KindSupply:
		return "supply"
	case KindPlayerEvent:
		return "player-event"
	case KindTrade:
		return "trade"
	default:
		return "unknown"
	}
}

// Event is a single market news item. Sector and Company are empty when the
// event is not tied to one (economy-wide news has neither).
type Event struct {
	Kind    Kind
	Day     int
	Sector  string
	Company string
	Text    string
}
