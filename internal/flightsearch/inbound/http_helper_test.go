package inbound

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moxie99/flight-search-app/internal/flightsearch/engine"
	"github.com/moxie99/flight-search-app/internal/flightsearch/view"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgerror"
)

func TestParseSearchInput(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/flights?origin=cgk&destination=SIN&departureDate=2026-09-01&returnDate=2026-09-08"+
			"&adults=2&travelClass=business&stops=non_stop,one_stop&minPrice=100&maxPrice=900"+
			"&airlines=GA,SQ&maxDuration=480&sort=duration_asc&q=garuda&table_max_stops=1"+
			"&page=2&pageSize=25&view=table", nil)

	input, err := parseSearchInput(r)
	require.NoError(t, err)

	assert.Equal(t, "CGK", input.Origin)
	assert.Equal(t, "SIN", input.Destination)
	assert.Equal(t, "BUSINESS", input.TravelClass)
	assert.Equal(t, 2, input.Adults)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), input.DepartureDate)
	require.NotNil(t, input.ReturnDate)
	assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), *input.ReturnDate)

	assert.Equal(t, []engine.StopBucket{engine.StopBucketNonStop, engine.StopBucketOneStop}, input.Filters.Stops)
	assert.Equal(t, 100.0, input.Filters.Price.Min)
	require.NotNil(t, input.Filters.Price.Max)
	assert.Equal(t, 900.0, *input.Filters.Price.Max)
	assert.Equal(t, []string{"GA", "SQ"}, input.Filters.Airlines)
	assert.Equal(t, 480, input.Filters.MaxDurationMinutes)

	assert.Equal(t, engine.SortDurationAsc, input.Sort)
	assert.Equal(t, "garuda", input.Table.Query)
	require.NotNil(t, input.Table.MaxStops)
	assert.Equal(t, 1, *input.Table.MaxStops)

	assert.Equal(t, 2, input.Page)
	assert.Equal(t, 25, input.PageSize)
	assert.Equal(t, view.ModeTable, input.Mode)
}

func TestParseSearchInput_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/flights?origin=CGK&destination=DPS&departure_date=2026-09-01", nil)

	input, err := parseSearchInput(r)
	require.NoError(t, err)

	assert.Equal(t, 1, input.Adults)
	assert.Nil(t, input.ReturnDate)
	assert.Equal(t, engine.SortPriceAsc, input.Sort)
	assert.Equal(t, 1, input.Page)
	assert.Equal(t, view.DefaultPageSize, input.PageSize)
	assert.Empty(t, input.Filters.Stops)
}

func TestParseSearchInput_Invalid(t *testing.T) {
	tests := map[string]string{
		"missing origin":       "/flights?destination=SIN&departureDate=2026-09-01",
		"origin not iata":      "/flights?origin=JAKARTA&destination=SIN&departureDate=2026-09-01",
		"same endpoints":       "/flights?origin=CGK&destination=CGK&departureDate=2026-09-01",
		"missing departure":    "/flights?origin=CGK&destination=SIN",
		"bad departure date":   "/flights?origin=CGK&destination=SIN&departureDate=tomorrow",
		"bad return date":      "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&returnDate=next-week",
		"too many adults":      "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&adults=10",
		"bad adults":           "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&adults=two",
		"unknown travel class": "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&travelClass=LUXURY",
		"unknown stops bucket": "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&stops=three_plus",
		"negative min price":   "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&minPrice=-1",
		"bad max duration":     "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&maxDuration=long",
		"zero page":            "/flights?origin=CGK&destination=SIN&departureDate=2026-09-01&page=0",
	}

	for name, target := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parseSearchInput(httptest.NewRequest("GET", target, nil))
			require.Error(t, err)
			code, ok := pkgerror.CodeOf(err)
			require.True(t, ok)
			assert.Equal(t, pkgerror.CodeInvalidInput, code)
		})
	}
}

func TestParseListParam(t *testing.T) {
	r := httptest.NewRequest("GET", "/flights?airlines=GA,+SQ+,,QZ", nil)
	assert.Equal(t, []string{"GA", "SQ", "QZ"}, parseListParam(r.URL.Query(), "airlines"))
	assert.Nil(t, parseListParam(r.URL.Query(), "missing"))
}

func TestParseSortOption(t *testing.T) {
	assert.Equal(t, engine.SortPriceDesc, parseSortOption(" PRICE_DESC "))
	assert.Equal(t, engine.SortDepartureAsc, parseSortOption("departure_asc"))
	assert.Equal(t, engine.SortPriceAsc, parseSortOption("cheapest-first"))
	assert.Equal(t, engine.SortPriceAsc, parseSortOption(""))
}
