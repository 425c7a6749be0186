package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/moxie99/flight-search-app/internal/flightsearch/engine"
	"github.com/moxie99/flight-search-app/internal/flightsearch/view"
)

// buildSearchKey encodes the full input tuple, so any change to the raw
// query, the filter/sort state, or the page request is a distinct cache
// entry.
func buildSearchKey(in SearchInput) string {
	return fmt.Sprintf(
		"%s|%s|%s|%s|%d|%s|%s|%s|%s|%d|%d|%s",
		strings.ToUpper(in.Origin),
		strings.ToUpper(in.Destination),
		in.DepartureDate.Format("2006-01-02"),
		formatOptionalDate(in.ReturnDate),
		in.Adults,
		strings.ToUpper(in.TravelClass),
		formatFilterSpec(in.Filters),
		in.Sort,
		formatTableFilters(in.Table),
		in.Page,
		in.PageSize,
		in.Mode,
	)
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("2006-01-02")
}

func formatFilterSpec(filters engine.FilterSpec) string {
	stops := make([]string, 0, len(filters.Stops))
	for _, bucket := range filters.Stops {
		stops = append(stops, string(bucket))
	}
	sort.Strings(stops)

	max := ""
	if filters.Price.Max != nil {
		max = fmt.Sprintf("%.2f", *filters.Price.Max)
	}

	return strings.Join([]string{
		strings.Join(stops, "+"),
		fmt.Sprintf("%.2f", filters.Price.Min),
		max,
		formatCodes(filters.Airlines),
		fmt.Sprintf("%d", filters.MaxDurationMinutes),
	}, ",")
}

func formatTableFilters(filters view.TableFilters) string {
	maxPrice := ""
	if filters.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%.2f", *filters.MaxPrice)
	}
	maxStops := ""
	if filters.MaxStops != nil {
		maxStops = fmt.Sprintf("%d", *filters.MaxStops)
	}

	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(filters.Query)),
		maxPrice,
		maxStops,
		formatCodes(filters.Airlines),
	}, ",")
}

func formatCodes(values []string) string {
	if len(values) == 0 {
		return ""
	}
	clean := make([]string, 0, len(values))
	for _, value := range values {
		trimmed := strings.ToUpper(strings.TrimSpace(value))
		if trimmed != "" {
			clean = append(clean, trimmed)
		}
	}
	if len(clean) == 0 {
		return ""
	}
	sort.Strings(clean)
	return strings.Join(clean, "+")
}

// CloneSearchOutput guards cached outputs against aliasing; the memory cache
// hands every caller its own copy.
func CloneSearchOutput(value *SearchOutput) *SearchOutput {
	if value == nil {
		return nil
	}

	clone := *value
	clone.AirlineFacets = append([]engine.AirlineFacet{}, value.AirlineFacets...)
	clone.Histogram = append([]engine.PriceBucket{}, value.Histogram...)
	clone.Page.Items = append(value.Page.Items[:0:0], value.Page.Items...)

	if value.Carriers != nil {
		clone.Carriers = make(map[string]string, len(value.Carriers))
		for code, name := range value.Carriers {
			clone.Carriers[code] = name
		}
	}
	if value.Criteria.ReturnDate != nil {
		date := *value.Criteria.ReturnDate
		clone.Criteria.ReturnDate = &date
	}

	return &clone
}
