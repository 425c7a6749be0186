package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
)

func offerWithDeparture(id, total, at string) entity.FlightOffer {
	return entity.FlightOffer{
		ID: id,
		Itineraries: []entity.Itinerary{{
			Duration: "PT2H",
			Segments: []entity.Segment{{Departure: entity.Endpoint{IATACode: "JFK", At: at}}},
		}},
		Price: entity.Price{Total: total, Currency: "USD"},
	}
}

func TestSortOffers(t *testing.T) {
	offers := func() []entity.FlightOffer {
		return []entity.FlightOffer{
			makeOffer("expensive-long", "900", "PT9H", []string{"AA"}, 0),
			makeOffer("cheap-short", "100", "PT2H", []string{"BA"}, 0),
			makeOffer("mid", "500", "PT5H", []string{"CA"}, 0),
		}
	}

	tests := []struct {
		name   string
		sortBy SortOption
		want   []string
	}{
		{name: "price ascending", sortBy: SortPriceAsc, want: []string{"cheap-short", "mid", "expensive-long"}},
		{name: "price descending", sortBy: SortPriceDesc, want: []string{"expensive-long", "mid", "cheap-short"}},
		{name: "duration ascending", sortBy: SortDurationAsc, want: []string{"cheap-short", "mid", "expensive-long"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := offers()
			sortOffers(list, tt.sortBy)

			got := make([]string, len(list))
			for i, offer := range list {
				got[i] = offer.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortOffersByDeparture(t *testing.T) {
	list := []entity.FlightOffer{
		offerWithDeparture("late", "100", "2026-03-01T18:00:00"),
		offerWithDeparture("early", "200", "2026-03-01T06:15:00"),
		offerWithDeparture("unparseable", "300", "sometime"),
	}

	sortOffers(list, SortDepartureAsc)

	// The unparseable timestamp sorts first as the zero time.
	assert.Equal(t, "unparseable", list[0].ID)
	assert.Equal(t, "early", list[1].ID)
	assert.Equal(t, "late", list[2].ID)
}

func TestSortOffersStableOnTies(t *testing.T) {
	list := []entity.FlightOffer{
		makeOffer("first", "300", "PT2H", []string{"AA"}, 0),
		makeOffer("second", "300", "PT3H", []string{"BA"}, 0),
		makeOffer("third", "300", "PT4H", []string{"CA"}, 0),
	}

	sortOffers(list, SortPriceAsc)
	sortOffers(list, SortPriceAsc) // sorting a sorted list is a no-op

	got := []string{list[0].ID, list[1].ID, list[2].ID}
	assert.Equal(t, []string{"first", "second", "third"}, got)
}
