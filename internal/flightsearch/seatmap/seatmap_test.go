package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
)

func seat(number string, cabin entity.CabinClass, codes ...string) entity.Seat {
	return entity.Seat{
		Number:               number,
		Cabin:                cabin,
		CharacteristicsCodes: codes,
		Status:               entity.SeatAvailable,
	}
}

func TestParseSeatNumber(t *testing.T) {
	tests := []struct {
		name       string
		number     string
		wantRow    int
		wantColumn string
	}{
		{name: "simple", number: "12A", wantRow: 12, wantColumn: "A"},
		{name: "single digit row", number: "7F", wantRow: 7, wantColumn: "F"},
		{name: "lowercase column", number: "33c", wantRow: 33, wantColumn: "C"},
		{name: "multi-letter column", number: "4AB", wantRow: 4, wantColumn: "AB"},
		{name: "garbage", number: "bad", wantRow: 0, wantColumn: ""},
		{name: "letters first", number: "A12", wantRow: 0, wantColumn: ""},
		{name: "empty", number: "", wantRow: 0, wantColumn: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, column := ParseSeatNumber(tt.number)
			assert.Equal(t, tt.wantRow, row)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}

func TestNormalizeEmptyDecks(t *testing.T) {
	assert.Empty(t, Normalize(nil, ""))
	assert.Empty(t, Normalize([]entity.Deck{{DeckType: "MAIN"}}, ""))
}

func TestNormalizeCabinOrdering(t *testing.T) {
	decks := []entity.Deck{{
		DeckType: "MAIN",
		Seats: []entity.Seat{
			seat("30A", entity.CabinEconomy, "W"),
			seat("3A", entity.CabinBusiness, "W"),
			seat("31B", entity.CabinEconomy),
		},
	}}

	sections := Normalize(decks, "")

	require.Len(t, sections, 2)
	assert.Equal(t, entity.CabinBusiness, sections[0].Cabin)
	assert.Equal(t, "Business", sections[0].DisplayName)
	assert.Equal(t, entity.CabinEconomy, sections[1].Cabin)
	assert.Len(t, sections[1].Seats, 2)
}

func TestNormalizeCharacteristicFlags(t *testing.T) {
	decks := []entity.Deck{{
		DeckType: "MAIN",
		Seats: []entity.Seat{
			seat("14A", entity.CabinEconomy, "W", "E"),
			seat("14C", entity.CabinEconomy, "A"),
			seat("14B", entity.CabinEconomy),
			seat("15D", entity.CabinEconomy, "A", "L", "CH"),
		},
	}}

	sections := Normalize(decks, "")
	require.Len(t, sections, 1)
	byNumber := make(map[string]ProcessedSeat)
	for _, s := range sections[0].Seats {
		byNumber[s.Number] = s
	}

	window := byNumber["14A"]
	assert.True(t, window.IsWindow)
	assert.False(t, window.IsAisle)
	assert.False(t, window.IsMiddle)
	assert.True(t, window.IsExitRow)

	aisle := byNumber["14C"]
	assert.True(t, aisle.IsAisle)
	assert.False(t, aisle.IsWindow)
	assert.False(t, aisle.IsMiddle)

	// No window or aisle code: implicitly middle.
	middle := byNumber["14B"]
	assert.True(t, middle.IsMiddle)

	extra := byNumber["15D"]
	assert.True(t, extra.IsAisle)
	assert.True(t, extra.IsExtraLegroom)
	assert.True(t, extra.IsPremium)
}

func TestNormalizeTwoAisleSeats(t *testing.T) {
	decks := []entity.Deck{{
		DeckType: "MAIN",
		Seats: []entity.Seat{
			seat("14C", entity.CabinEconomy, "A"),
			seat("14D", entity.CabinEconomy, "A"),
		},
	}}

	sections := Normalize(decks, "")
	require.Len(t, sections, 1)

	for _, s := range sections[0].Seats {
		assert.True(t, s.IsAisle, s.Number)
		assert.False(t, s.IsWindow, s.Number)
		assert.False(t, s.IsMiddle, s.Number)
	}
}

func TestNormalizeSelectionAndPrice(t *testing.T) {
	priced := seat("12A", entity.CabinEconomy, "W")
	priced.TravelerPricing = []entity.SeatPricing{{Price: entity.Price{Total: "22.70", Currency: "EUR"}}}

	decks := []entity.Deck{{DeckType: "MAIN", Seats: []entity.Seat{priced, seat("12B", entity.CabinEconomy)}}}

	sections := Normalize(decks, "12A")
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Seats, 2)

	selected := sections[0].Seats[0]
	assert.True(t, selected.IsSelected)
	assert.Equal(t, "EUR 23", selected.DisplayPrice)
	assert.False(t, sections[0].Seats[1].IsSelected)
	assert.Empty(t, sections[0].Seats[1].DisplayPrice)
}

func TestNormalizeRowsColumnsAndSpan(t *testing.T) {
	decks := []entity.Deck{{
		DeckType: "MAIN",
		Seats: []entity.Seat{
			seat("22F", entity.CabinEconomy, "W"),
			seat("20A", entity.CabinEconomy, "W"),
			seat("21C", entity.CabinEconomy, "A"),
			seat("20C", entity.CabinEconomy, "A"),
		},
	}}

	sections := Normalize(decks, "")
	require.Len(t, sections, 1)

	section := sections[0]
	assert.Equal(t, []int{20, 21, 22}, section.Rows)
	assert.Equal(t, []string{"A", "C", "F"}, section.Columns)
	assert.Equal(t, 20, section.MinRow)
	assert.Equal(t, 22, section.MaxRow)
}

func TestNormalizeKeepsDeckIdentity(t *testing.T) {
	decks := []entity.Deck{
		{DeckType: "UPPER", Seats: []entity.Seat{seat("2A", entity.CabinBusiness, "W")}},
		{DeckType: "MAIN", Seats: []entity.Seat{
			seat("5A", entity.CabinBusiness, "W"),
			seat("30A", entity.CabinEconomy, "W"),
		}},
	}

	sections := Normalize(decks, "")

	// Same cabin on two decks stays split, ordered deck-first.
	require.Len(t, sections, 3)
	assert.Equal(t, "UPPER", sections[0].DeckType)
	assert.Equal(t, entity.CabinBusiness, sections[0].Cabin)
	assert.Equal(t, "MAIN", sections[1].DeckType)
	assert.Equal(t, entity.CabinBusiness, sections[1].Cabin)
	assert.Equal(t, entity.CabinEconomy, sections[2].Cabin)
}

func TestNormalizeUnparseableSeatNumberDegrades(t *testing.T) {
	decks := []entity.Deck{{
		DeckType: "MAIN",
		Seats:    []entity.Seat{seat("??", entity.CabinEconomy, "W")},
	}}

	sections := Normalize(decks, "")

	// The record is kept with sentinel values, never dropped.
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Seats, 1)
	assert.Equal(t, 0, sections[0].Seats[0].Row)
	assert.Equal(t, "", sections[0].Seats[0].Column)
}

func TestSelection(t *testing.T) {
	processed := ProcessedSeat{
		Number:          "12A",
		Cabin:           entity.CabinEconomy,
		Characteristics: []string{"W", "E"},
		DisplayPrice:    "EUR 23",
	}

	selection := Selection("seg-1", processed)

	assert.Equal(t, "seg-1", selection.SegmentID)
	assert.Equal(t, "12A", selection.Number)
	assert.Equal(t, entity.CabinEconomy, selection.Cabin)
	assert.Equal(t, []string{"W", "E"}, selection.Characteristics)
	assert.Equal(t, "EUR 23", selection.DisplayPrice)
}
