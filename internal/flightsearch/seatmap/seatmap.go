// Package seatmap converts raw aircraft deck payloads into renderable,
// cabin-grouped seat sections. All functions are pure.
package seatmap

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/format"
)

// Characteristic codes carried on raw seats.
const (
	codeWindow       = "W"
	codeAisle        = "A"
	codeMiddle       = "M"
	codeExitRow      = "E"
	codeExtraLegroom = "L"
	codePremium      = "P"
	codeChargeable   = "CH"
)

var seatNumberPattern = regexp.MustCompile(`^(\d+)([A-Za-z]+)$`)

// ProcessedSeat is a raw seat with its derived display fields.
type ProcessedSeat struct {
	Number          string
	Row             int
	Column          string
	Cabin           entity.CabinClass
	Status          entity.SeatStatus
	Characteristics []string
	IsWindow        bool
	IsAisle         bool
	IsMiddle        bool
	IsExitRow       bool
	IsExtraLegroom  bool
	IsPremium       bool
	IsSelected      bool
	DisplayPrice    string
}

// CabinSection groups one cabin's seats within one deck.
type CabinSection struct {
	DeckType    string
	Cabin       entity.CabinClass
	DisplayName string
	Seats       []ProcessedSeat
	Rows        []int
	Columns     []string
	MinRow      int
	MaxRow      int
}

// ParseSeatNumber splits "12A" into row 12 and column "A". Unparseable
// numbers yield (0, "") so one bad seat never fails the whole map.
func ParseSeatNumber(number string) (int, string) {
	match := seatNumberPattern.FindStringSubmatch(strings.TrimSpace(number))
	if match == nil {
		return 0, ""
	}
	row, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, ""
	}
	return row, strings.ToUpper(match[2])
}

// Normalize flattens decks into cabin sections. Deck identity is kept as a
// grouping key: sections are ordered by deck input order, then by cabin
// priority (FIRST, BUSINESS, PREMIUM_ECONOMY, ECONOMY). Empty groups are
// omitted, and an empty deck list yields an empty slice, not an error.
func Normalize(decks []entity.Deck, selectedSeat string) []CabinSection {
	sections := make([]CabinSection, 0, len(decks))

	for _, deck := range decks {
		byCabin := make(map[entity.CabinClass][]ProcessedSeat)
		cabins := make([]entity.CabinClass, 0, 4)
		for _, seat := range deck.Seats {
			if _, seen := byCabin[seat.Cabin]; !seen {
				cabins = append(cabins, seat.Cabin)
			}
			byCabin[seat.Cabin] = append(byCabin[seat.Cabin], processSeat(seat, selectedSeat))
		}

		sort.SliceStable(cabins, func(i, j int) bool {
			return cabins[i].Priority() < cabins[j].Priority()
		})

		for _, cabin := range cabins {
			sections = append(sections, buildSection(deck.DeckType, cabin, byCabin[cabin]))
		}
	}

	return sections
}

// Selection builds the seat-identity value handed back to application state
// when the user picks a seat.
func Selection(segmentID string, seat ProcessedSeat) entity.SeatSelection {
	return entity.SeatSelection{
		SegmentID:       segmentID,
		Number:          seat.Number,
		Cabin:           seat.Cabin,
		Characteristics: append([]string{}, seat.Characteristics...),
		DisplayPrice:    seat.DisplayPrice,
	}
}

func processSeat(seat entity.Seat, selectedSeat string) ProcessedSeat {
	row, column := ParseSeatNumber(seat.Number)

	window := hasCode(seat.CharacteristicsCodes, codeWindow)
	aisle := hasCode(seat.CharacteristicsCodes, codeAisle)
	middle := hasCode(seat.CharacteristicsCodes, codeMiddle) || (!window && !aisle)

	displayPrice := ""
	if len(seat.TravelerPricing) > 0 {
		price := seat.TravelerPricing[0].Price
		displayPrice = format.SeatPrice(price.Total, price.Currency)
	}

	return ProcessedSeat{
		Number:          seat.Number,
		Row:             row,
		Column:          column,
		Cabin:           seat.Cabin,
		Status:          seat.Status,
		Characteristics: append([]string{}, seat.CharacteristicsCodes...),
		IsWindow:        window,
		IsAisle:         aisle,
		IsMiddle:        middle,
		IsExitRow:       hasCode(seat.CharacteristicsCodes, codeExitRow),
		IsExtraLegroom:  hasCode(seat.CharacteristicsCodes, codeExtraLegroom),
		IsPremium:       hasCode(seat.CharacteristicsCodes, codePremium) || hasCode(seat.CharacteristicsCodes, codeChargeable),
		IsSelected:      selectedSeat != "" && seat.Number == selectedSeat,
		DisplayPrice:    displayPrice,
	}
}

func buildSection(deckType string, cabin entity.CabinClass, seats []ProcessedSeat) CabinSection {
	rowSet := make(map[int]struct{})
	columnSet := make(map[string]struct{})
	for _, seat := range seats {
		rowSet[seat.Row] = struct{}{}
		if seat.Column != "" {
			columnSet[seat.Column] = struct{}{}
		}
	}

	rows := make([]int, 0, len(rowSet))
	for row := range rowSet {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	columns := make([]string, 0, len(columnSet))
	for column := range columnSet {
		columns = append(columns, column)
	}
	sort.Strings(columns)

	section := CabinSection{
		DeckType:    deckType,
		Cabin:       cabin,
		DisplayName: cabin.DisplayName(),
		Seats:       seats,
		Rows:        rows,
		Columns:     columns,
	}
	if len(rows) > 0 {
		section.MinRow = rows[0]
		section.MaxRow = rows[len(rows)-1]
	}
	return section
}

func hasCode(codes []string, want string) bool {
	for _, code := range codes {
		if strings.EqualFold(strings.TrimSpace(code), want) {
			return true
		}
	}
	return false
}
