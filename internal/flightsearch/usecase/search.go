package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/moxie99/flight-search-app/internal/flightsearch/amadeus"
	"github.com/moxie99/flight-search-app/internal/flightsearch/engine"
	"github.com/moxie99/flight-search-app/internal/flightsearch/view"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgerror"
)

type SearchInput struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	Adults        int
	TravelClass   string

	Filters engine.FilterSpec
	Sort    engine.SortOption

	Table    view.TableFilters
	Page     int
	PageSize int
	Mode     view.Mode
}

type SearchCriteria struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    *string
	Adults        int
	TravelClass   string
}

type SearchMetadata struct {
	TotalResults   int
	VisibleResults int
	SearchTimeMs   int64
	CacheHit       bool
}

type SearchOutput struct {
	Criteria SearchCriteria
	Metadata SearchMetadata

	PriceStats       engine.PriceStats
	AirlineFacets    []engine.AirlineFacet
	Histogram        []engine.PriceBucket
	HasActiveFilters bool

	Page view.PageResult
	Mode view.Mode

	Carriers map[string]string
}

// Search runs the full pipeline: fetch raw offers (or reuse a cached
// derivation), derive the filtered/sorted view, then slice the requested
// page. Raw offers are also indexed by ID so a follow-up seat-map request
// can find its offer without a second upstream search.
func (u *Usecase) Search(ctx context.Context, in SearchInput) (*SearchOutput, error) {
	start := time.Now()

	cacheKey := buildSearchKey(in)
	if cached, ok := u.searchCache.Get(ctx, cacheKey); ok {
		cached.Metadata.CacheHit = true
		cached.Metadata.SearchTimeMs = time.Since(start).Milliseconds()
		return cached, nil
	}

	query := amadeus.SearchQuery{
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate.Format("2006-01-02"),
		Adults:        in.Adults,
		TravelClass:   in.TravelClass,
	}
	if in.ReturnDate != nil {
		query.ReturnDate = in.ReturnDate.Format("2006-01-02")
	}

	result, err := u.client.SearchFlightOffers(ctx, query)
	if err != nil {
		return nil, upstreamError("flight search is temporarily unavailable", err)
	}

	derived := engine.DeriveView(result.Offers, in.Filters, in.Sort, result.Carriers)

	state := view.NewState().
		WithOffers(derived.Visible, result.Carriers).
		WithFilters(in.Table).
		WithPageSize(in.PageSize).
		WithMode(in.Mode).
		WithPage(in.Page)
	page := state.Slice()

	for _, offer := range result.Offers {
		u.offerCache.Set(ctx, offer.ID, offer, u.offerTTL)
	}

	criteria := SearchCriteria{
		Origin:        in.Origin,
		Destination:   in.Destination,
		DepartureDate: in.DepartureDate.Format("2006-01-02"),
		Adults:        in.Adults,
		TravelClass:   in.TravelClass,
	}
	if in.ReturnDate != nil {
		value := in.ReturnDate.Format("2006-01-02")
		criteria.ReturnDate = &value
	}

	output := &SearchOutput{
		Criteria: criteria,
		Metadata: SearchMetadata{
			TotalResults:   len(result.Offers),
			VisibleResults: len(derived.Visible),
			SearchTimeMs:   time.Since(start).Milliseconds(),
		},
		PriceStats:       derived.PriceStats,
		AirlineFacets:    derived.AirlineFacets,
		Histogram:        derived.Histogram,
		HasActiveFilters: derived.HasActiveFilters,
		Page:             page,
		Mode:             state.Mode,
		Carriers:         result.Carriers,
	}

	u.searchCache.Set(ctx, cacheKey, output, u.searchTTL)

	return output, nil
}

func upstreamError(message string, err error) error {
	return fmt.Errorf("%w: %w",
		pkgerror.NewBusiness(message, pkgerror.CodeUpstreamUnavailable), err)
}
