// Package engine derives the displayed result set from a raw offer list:
// filtering, stable sorting, price statistics, airline facets, and a price
// histogram. Every function is pure; inputs are never mutated.
package engine

import (
	"strings"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/format"
)

type StopBucket string

const (
	StopBucketNonStop StopBucket = "non_stop"
	StopBucketOneStop StopBucket = "one_stop"
	StopBucketTwoPlus StopBucket = "two_plus"
)

// Matches reports whether an offer-wide stop count falls in the bucket.
func (b StopBucket) Matches(stops int) bool {
	switch b {
	case StopBucketNonStop:
		return stops == 0
	case StopBucketOneStop:
		return stops == 1
	case StopBucketTwoPlus:
		return stops >= 2
	default:
		return false
	}
}

// PriceRange is the user-set price window. Min defaults to 0 and Max to
// unbounded (nil); the range only filters when it is narrower than the full
// observed range.
type PriceRange struct {
	Min float64
	Max *float64
}

// FilterSpec is the user-controlled filter state. Empty selections mean "no
// filtering applied", never "exclude everything".
type FilterSpec struct {
	Stops              []StopBucket
	Price              PriceRange
	Airlines           []string
	MaxDurationMinutes int
}

type SortOption string

const (
	SortPriceAsc     SortOption = "price_asc"
	SortPriceDesc    SortOption = "price_desc"
	SortDurationAsc  SortOption = "duration_asc"
	SortDepartureAsc SortOption = "departure_asc"
)

type PriceStats struct {
	Min     float64
	Max     float64
	Average float64
}

type AirlineFacet struct {
	Code  string
	Name  string
	Count int
}

type PriceBucket struct {
	Lower float64
	Count int
	Label string
}

// View is the derived display state for one (offers, filters, sort) tuple.
type View struct {
	Visible          []entity.FlightOffer
	PriceStats       PriceStats
	AirlineFacets    []AirlineFacet
	Histogram        []PriceBucket
	HasActiveFilters bool
}

// DeriveView computes the filtered, sorted view plus its derived statistics.
// Facets are computed over the pre-filter set; price stats and the histogram
// over the post-filter set. Re-deriving with identical inputs yields an
// identical View, including ordering.
func DeriveView(offers []entity.FlightOffer, filters FilterSpec, sortBy SortOption, carriers map[string]string) View {
	valid := validOffers(offers)

	globalMin, globalMax := observedPriceRange(valid)
	low, high, priceActive := effectivePriceRange(filters.Price, globalMin, globalMax)
	airlineSet := normalizeCodeSet(filters.Airlines)

	visible := make([]entity.FlightOffer, 0, len(valid))
	for _, offer := range valid {
		if !matchStops(offer, filters.Stops) {
			continue
		}
		if priceActive && !matchPrice(offer, low, high) {
			continue
		}
		if !matchAirlines(offer, airlineSet) {
			continue
		}
		if !matchDuration(offer, filters.MaxDurationMinutes) {
			continue
		}
		visible = append(visible, offer)
	}

	sortOffers(visible, sortBy)
	stats := priceStats(visible)

	return View{
		Visible:       visible,
		PriceStats:    stats,
		AirlineFacets: airlineFacets(valid, carriers),
		Histogram:     histogram(visible, stats),
		HasActiveFilters: len(filters.Stops) > 0 ||
			len(filters.Airlines) > 0 ||
			priceActive ||
			filters.MaxDurationMinutes > 0,
	}
}

func validOffers(offers []entity.FlightOffer) []entity.FlightOffer {
	valid := make([]entity.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if offer.Valid() {
			valid = append(valid, offer)
		}
	}
	return valid
}

func observedPriceRange(offers []entity.FlightOffer) (float64, float64) {
	if len(offers) == 0 {
		return 0, 0
	}
	min := format.ParsePrice(offers[0].Price.Total)
	max := min
	for _, offer := range offers[1:] {
		price := format.ParsePrice(offer.Price.Total)
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

// effectivePriceRange resolves the user range against the global observed
// range. A missing bound falls back to the global one, and an inverted range
// is clamped rather than left to produce a silently empty result.
func effectivePriceRange(price PriceRange, globalMin, globalMax float64) (low, high float64, active bool) {
	low = price.Min
	high = globalMax
	if price.Max != nil {
		high = *price.Max
	}

	if low < globalMin {
		low = globalMin
	}
	if high > globalMax {
		high = globalMax
	}
	if low > high {
		low = high
	}

	return low, high, low > globalMin || high < globalMax
}

func matchStops(offer entity.FlightOffer, buckets []StopBucket) bool {
	if len(buckets) == 0 {
		return true
	}
	stops := offer.StopCount()
	for _, bucket := range buckets {
		if bucket.Matches(stops) {
			return true
		}
	}
	return false
}

func matchPrice(offer entity.FlightOffer, low, high float64) bool {
	price := format.ParsePrice(offer.Price.Total)
	return price >= low && price <= high
}

func matchAirlines(offer entity.FlightOffer, selected map[string]struct{}) bool {
	if len(selected) == 0 {
		return true
	}
	for _, code := range offer.ValidatingAirlineCodes {
		if _, ok := selected[strings.ToUpper(strings.TrimSpace(code))]; ok {
			return true
		}
	}
	return false
}

func matchDuration(offer entity.FlightOffer, ceiling int) bool {
	if ceiling <= 0 {
		return true
	}
	return format.ParseISODuration(offer.Itineraries[0].Duration) <= ceiling
}

func normalizeCodeSet(codes []string) map[string]struct{} {
	if len(codes) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		set[code] = struct{}{}
	}
	return set
}
