// Package view is the UI-local second filter stage: free-text search, simple
// ceilings, pagination, and view mode, layered on top of the engine's
// output. State is an immutable value; reducers return a new State.
package view

import (
	"strings"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/format"
)

type Mode string

const (
	ModeCard    Mode = "card"
	ModeTable   Mode = "table"
	ModeCompact Mode = "compact"
)

// PageSizes are the selectable page sizes.
var PageSizes = []int{5, 10, 15, 25, 50}

const DefaultPageSize = 10

// TableFilters are AND-combined; each is optional. Query matches airline
// code/name or origin/destination airport codes, case-insensitive.
type TableFilters struct {
	Query    string
	MaxPrice *float64
	MaxStops *int
	Airlines []string
}

// State is the pagination/view-mode state over one offer list. Build it with
// NewState and evolve it through the With* reducers.
type State struct {
	Offers   []entity.FlightOffer
	Carriers map[string]string
	Filters  TableFilters
	Page     int
	PageSize int
	Mode     Mode
}

type PageResult struct {
	Items      []entity.FlightOffer
	TotalItems int
	TotalPages int
	Page       int
	PageSize   int
	// LowestPriceID flags the single cheapest offer across the whole
	// table-filtered set, even when it sits on a later page.
	LowestPriceID string
}

func NewState() State {
	return State{Page: 1, PageSize: DefaultPageSize, Mode: ModeCard}
}

// WithOffers replaces the underlying list and resets to the first page.
func (s State) WithOffers(offers []entity.FlightOffer, carriers map[string]string) State {
	s.Offers = offers
	s.Carriers = carriers
	s.Page = 1
	return s
}

// WithFilters replaces the table filters and resets to the first page.
func (s State) WithFilters(filters TableFilters) State {
	s.Filters = filters
	s.Page = 1
	return s
}

// WithPageSize switches to one of the enumerated page sizes (falling back to
// the default for anything else) and resets to the first page.
func (s State) WithPageSize(size int) State {
	s.PageSize = DefaultPageSize
	for _, allowed := range PageSizes {
		if size == allowed {
			s.PageSize = size
			break
		}
	}
	s.Page = 1
	return s
}

// WithPage moves to the requested page, clamped to the valid range for the
// current filtered set.
func (s State) WithPage(page int) State {
	if page < 1 {
		page = 1
	}
	if total := s.totalPages(); page > total {
		page = total
	}
	s.Page = page
	return s
}

// WithMode changes how a page renders; it never changes the data.
func (s State) WithMode(mode Mode) State {
	switch mode {
	case ModeCard, ModeTable, ModeCompact:
		s.Mode = mode
	}
	return s
}

// Slice materializes the current page of the table-filtered set.
func (s State) Slice() PageResult {
	filtered := s.filtered()

	result := PageResult{
		TotalItems:    len(filtered),
		TotalPages:    pageCount(len(filtered), s.PageSize),
		Page:          s.Page,
		PageSize:      s.PageSize,
		LowestPriceID: lowestPriceID(filtered),
	}

	start := (s.Page - 1) * s.PageSize
	if start >= len(filtered) {
		result.Items = []entity.FlightOffer{}
		return result
	}
	end := start + s.PageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	result.Items = filtered[start:end]
	return result
}

func (s State) totalPages() int {
	return pageCount(len(s.filtered()), s.PageSize)
}

func (s State) filtered() []entity.FlightOffer {
	query := strings.ToLower(strings.TrimSpace(s.Filters.Query))
	airlines := make(map[string]struct{}, len(s.Filters.Airlines))
	for _, code := range s.Filters.Airlines {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			airlines[code] = struct{}{}
		}
	}

	filtered := make([]entity.FlightOffer, 0, len(s.Offers))
	for _, offer := range s.Offers {
		if query != "" && !s.matchesQuery(offer, query) {
			continue
		}
		if s.Filters.MaxPrice != nil && format.ParsePrice(offer.Price.Total) > *s.Filters.MaxPrice {
			continue
		}
		if s.Filters.MaxStops != nil && offer.StopCount() > *s.Filters.MaxStops {
			continue
		}
		if len(airlines) > 0 && !matchesAirlines(offer, airlines) {
			continue
		}
		filtered = append(filtered, offer)
	}
	return filtered
}

func (s State) matchesQuery(offer entity.FlightOffer, query string) bool {
	for _, code := range offer.ValidatingAirlineCodes {
		if strings.Contains(strings.ToLower(code), query) {
			return true
		}
		if name, ok := s.Carriers[strings.ToUpper(code)]; ok &&
			strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	for _, itinerary := range offer.Itineraries {
		for _, segment := range itinerary.Segments {
			if strings.Contains(strings.ToLower(segment.Departure.IATACode), query) ||
				strings.Contains(strings.ToLower(segment.Arrival.IATACode), query) {
				return true
			}
		}
	}
	return false
}

func matchesAirlines(offer entity.FlightOffer, selected map[string]struct{}) bool {
	for _, code := range offer.ValidatingAirlineCodes {
		if _, ok := selected[strings.ToUpper(strings.TrimSpace(code))]; ok {
			return true
		}
	}
	return false
}

func lowestPriceID(offers []entity.FlightOffer) string {
	if len(offers) == 0 {
		return ""
	}
	lowestID := offers[0].ID
	lowest := format.ParsePrice(offers[0].Price.Total)
	for _, offer := range offers[1:] {
		if price := format.ParsePrice(offer.Price.Total); price < lowest {
			lowest = price
			lowestID = offer.ID
		}
	}
	return lowestID
}

func pageCount(items, pageSize int) int {
	if items == 0 {
		return 1
	}
	return (items + pageSize - 1) / pageSize
}
