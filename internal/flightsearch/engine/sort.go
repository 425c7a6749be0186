package engine

import (
	"sort"
	"time"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/format"
)

// localTimestampLayout matches the aggregator's zone-less local timestamps.
const localTimestampLayout = "2006-01-02T15:04:05"

// sortOffers orders offers in place by the selected key. The sort is stable
// so ties keep input order.
func sortOffers(offers []entity.FlightOffer, sortBy SortOption) {
	switch sortBy {
	case SortPriceAsc:
		sort.SliceStable(offers, func(i, j int) bool {
			return format.ParsePrice(offers[i].Price.Total) < format.ParsePrice(offers[j].Price.Total)
		})
	case SortPriceDesc:
		sort.SliceStable(offers, func(i, j int) bool {
			return format.ParsePrice(offers[i].Price.Total) > format.ParsePrice(offers[j].Price.Total)
		})
	case SortDurationAsc:
		sort.SliceStable(offers, func(i, j int) bool {
			return primaryDuration(offers[i]) < primaryDuration(offers[j])
		})
	case SortDepartureAsc:
		sort.SliceStable(offers, func(i, j int) bool {
			return departureTime(offers[i]).Before(departureTime(offers[j]))
		})
	}
}

func primaryDuration(offer entity.FlightOffer) int {
	return format.ParseISODuration(offer.Itineraries[0].Duration)
}

// departureTime is the first segment's departure of the primary itinerary.
// Unparseable timestamps sort first as the zero time.
func departureTime(offer entity.FlightOffer) time.Time {
	segments := offer.Itineraries[0].Segments
	if len(segments) == 0 {
		return time.Time{}
	}
	at := segments[0].Departure.At
	if parsed, err := time.Parse(localTimestampLayout, at); err == nil {
		return parsed
	}
	if parsed, err := time.Parse(time.RFC3339, at); err == nil {
		return parsed
	}
	return time.Time{}
}
