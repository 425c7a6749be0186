package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/format"
)

// maxHistogramBuckets caps the price distribution resolution.
const maxHistogramBuckets = 10

func priceStats(offers []entity.FlightOffer) PriceStats {
	if len(offers) == 0 {
		return PriceStats{}
	}

	min, max := observedPriceRange(offers)
	sum := 0.0
	for _, offer := range offers {
		sum += format.ParsePrice(offer.Price.Total)
	}

	return PriceStats{Min: min, Max: max, Average: sum / float64(len(offers))}
}

// airlineFacets counts offers per validating airline code across the full
// pre-filter set, so facet counts stay constant while the user narrows the
// view. Codes repeated on one offer count that offer once.
func airlineFacets(offers []entity.FlightOffer, carriers map[string]string) []AirlineFacet {
	counts := make(map[string]int)
	for _, offer := range offers {
		seen := make(map[string]struct{}, len(offer.ValidatingAirlineCodes))
		for _, code := range offer.ValidatingAirlineCodes {
			code = strings.ToUpper(strings.TrimSpace(code))
			if code == "" {
				continue
			}
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			counts[code]++
		}
	}

	facets := make([]AirlineFacet, 0, len(counts))
	for code, count := range counts {
		name := carriers[code]
		if name == "" {
			name = code
		}
		facets = append(facets, AirlineFacet{Code: code, Name: name, Count: count})
	}

	sort.Slice(facets, func(i, j int) bool {
		if facets[i].Count != facets[j].Count {
			return facets[i].Count > facets[j].Count
		}
		return facets[i].Code < facets[j].Code
	})

	return facets
}

// histogram buckets visible prices into at most maxHistogramBuckets
// equal-width buckets spanning [stats.Min, stats.Max]. A single-price set
// uses width 1 instead of dividing by zero. Bucket counts always sum to the
// visible set size.
func histogram(offers []entity.FlightOffer, stats PriceStats) []PriceBucket {
	if len(offers) == 0 {
		return nil
	}

	bucketCount := maxHistogramBuckets
	if len(offers) < bucketCount {
		bucketCount = len(offers)
	}

	width := (stats.Max - stats.Min) / float64(bucketCount)
	if width <= 0 {
		width = 1
	}

	buckets := make([]PriceBucket, bucketCount)
	for i := range buckets {
		lower := stats.Min + float64(i)*width
		buckets[i] = PriceBucket{
			Lower: lower,
			Label: fmt.Sprintf("%.0f - %.0f", lower, lower+width),
		}
	}

	for _, offer := range offers {
		price := format.ParsePrice(offer.Price.Total)
		index := int((price - stats.Min) / width)
		if index >= bucketCount {
			index = bucketCount - 1
		}
		if index < 0 {
			index = 0
		}
		buckets[index].Count++
	}

	return buckets
}
