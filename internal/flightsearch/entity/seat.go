package entity

type CabinClass string

const (
	CabinFirst          CabinClass = "FIRST"
	CabinBusiness       CabinClass = "BUSINESS"
	CabinPremiumEconomy CabinClass = "PREMIUM_ECONOMY"
	CabinEconomy        CabinClass = "ECONOMY"
)

// DisplayName is the customer-facing label for the cabin.
func (c CabinClass) DisplayName() string {
	switch c {
	case CabinFirst:
		return "First Class"
	case CabinBusiness:
		return "Business"
	case CabinPremiumEconomy:
		return "Premium Economy"
	case CabinEconomy:
		return "Economy"
	default:
		return string(c)
	}
}

// Priority orders cabins front-of-aircraft first. Unknown cabins sort after
// economy.
func (c CabinClass) Priority() int {
	switch c {
	case CabinFirst:
		return 0
	case CabinBusiness:
		return 1
	case CabinPremiumEconomy:
		return 2
	case CabinEconomy:
		return 3
	default:
		return 4
	}
}

type SeatStatus string

const (
	SeatAvailable SeatStatus = "AVAILABLE"
	SeatBlocked   SeatStatus = "BLOCKED"
	SeatOccupied  SeatStatus = "OCCUPIED"
)

func (s SeatStatus) Selectable() bool {
	return s == SeatAvailable
}

// Seat is the raw seat-map row as delivered by the aggregator.
type Seat struct {
	Number               string        `json:"number"`
	Cabin                CabinClass    `json:"cabin"`
	CharacteristicsCodes []string      `json:"characteristicsCodes"`
	Status               SeatStatus    `json:"availability"`
	TravelerPricing      []SeatPricing `json:"travelerPricing,omitempty"`
}

type SeatPricing struct {
	Price Price `json:"price"`
}

// Deck is one physical level of the aircraft (MAIN, UPPER, LOWER).
type Deck struct {
	DeckType string `json:"deckType"`
	Seats    []Seat `json:"seats"`
}

type SeatMap struct {
	SegmentID string `json:"segmentId"`
	Decks     []Deck `json:"decks"`
}

// SeatSelection is the only seat value that crosses from the seat-map core
// back into application state.
type SeatSelection struct {
	SegmentID       string     `json:"segment_id"`
	Number          string     `json:"number"`
	Cabin           CabinClass `json:"cabin"`
	Characteristics []string   `json:"characteristics"`
	DisplayPrice    string     `json:"display_price,omitempty"`
}
