package inbound

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/moxie99/flight-search-app/internal/flightsearch/engine"
	"github.com/moxie99/flight-search-app/internal/flightsearch/usecase"
	"github.com/moxie99/flight-search-app/internal/flightsearch/view"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgerror"
)

var validate = validator.New()

// searchParams carries the validated scalar search criteria.
type searchParams struct {
	Origin      string `validate:"required,len=3,alpha"`
	Destination string `validate:"required,len=3,alpha,nefield=Origin"`
	TravelClass string `validate:"omitempty,oneof=ECONOMY PREMIUM_ECONOMY BUSINESS FIRST"`
	Adults      int    `validate:"min=1,max=9"`
}

func parseSearchInput(r *http.Request) (usecase.SearchInput, error) {
	q := r.URL.Query()

	params := searchParams{
		Origin:      strings.ToUpper(strings.TrimSpace(q.Get("origin"))),
		Destination: strings.ToUpper(strings.TrimSpace(q.Get("destination"))),
		TravelClass: strings.ToUpper(strings.TrimSpace(firstNotEmpty(q.Get("travelClass"), q.Get("travel_class")))),
		Adults:      1,
	}
	if value := strings.TrimSpace(q.Get("adults")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return usecase.SearchInput{}, pkgerror.NewBusiness("invalid adults", pkgerror.CodeInvalidInput)
		}
		params.Adults = parsed
	}
	if err := validate.Struct(params); err != nil {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid search criteria: "+err.Error(), pkgerror.CodeInvalidInput)
	}

	departureDateStr := strings.TrimSpace(firstNotEmpty(q.Get("departureDate"), q.Get("departure_date")))
	if departureDateStr == "" {
		return usecase.SearchInput{}, pkgerror.NewBusiness("departureDate is required", pkgerror.CodeInvalidInput)
	}
	departureDate, err := time.Parse("2006-01-02", departureDateStr)
	if err != nil {
		return usecase.SearchInput{}, pkgerror.NewBusiness("invalid departureDate", pkgerror.CodeInvalidInput)
	}

	var returnDate *time.Time
	if value := strings.TrimSpace(firstNotEmpty(q.Get("returnDate"), q.Get("return_date"))); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			return usecase.SearchInput{}, pkgerror.NewBusiness("invalid returnDate", pkgerror.CodeInvalidInput)
		}
		returnDate = &parsed
	}

	filters, err := parseFilterSpec(q)
	if err != nil {
		return usecase.SearchInput{}, err
	}
	table, err := parseTableFilters(q)
	if err != nil {
		return usecase.SearchInput{}, err
	}

	page := 1
	if value := strings.TrimSpace(q.Get("page")); value != "" {
		if page, err = strconv.Atoi(value); err != nil || page < 1 {
			return usecase.SearchInput{}, pkgerror.NewBusiness("invalid page", pkgerror.CodeInvalidInput)
		}
	}
	pageSize := view.DefaultPageSize
	if value := strings.TrimSpace(firstNotEmpty(q.Get("pageSize"), q.Get("page_size"))); value != "" {
		if pageSize, err = strconv.Atoi(value); err != nil {
			return usecase.SearchInput{}, pkgerror.NewBusiness("invalid page_size", pkgerror.CodeInvalidInput)
		}
	}

	return usecase.SearchInput{
		Origin:        params.Origin,
		Destination:   params.Destination,
		DepartureDate: departureDate,
		ReturnDate:    returnDate,
		Adults:        params.Adults,
		TravelClass:   params.TravelClass,
		Filters:       filters,
		Sort:          parseSortOption(q.Get("sort")),
		Table:         table,
		Page:          page,
		PageSize:      pageSize,
		Mode:          view.Mode(strings.ToLower(strings.TrimSpace(q.Get("view")))),
	}, nil
}

func parseFilterSpec(q url.Values) (engine.FilterSpec, error) {
	filters := engine.FilterSpec{}

	for _, raw := range parseListParam(q, "stops") {
		switch engine.StopBucket(raw) {
		case engine.StopBucketNonStop, engine.StopBucketOneStop, engine.StopBucketTwoPlus:
			filters.Stops = append(filters.Stops, engine.StopBucket(raw))
		default:
			return filters, pkgerror.NewBusiness("invalid stops bucket: "+raw, pkgerror.CodeInvalidInput)
		}
	}

	if value := strings.TrimSpace(firstNotEmpty(q.Get("minPrice"), q.Get("min_price"))); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 {
			return filters, pkgerror.NewBusiness("invalid min_price", pkgerror.CodeInvalidInput)
		}
		filters.Price.Min = parsed
	}
	if value := strings.TrimSpace(firstNotEmpty(q.Get("maxPrice"), q.Get("max_price"))); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 {
			return filters, pkgerror.NewBusiness("invalid max_price", pkgerror.CodeInvalidInput)
		}
		filters.Price.Max = &parsed
	}

	filters.Airlines = parseListParam(q, "airlines")

	if value := strings.TrimSpace(firstNotEmpty(q.Get("maxDuration"), q.Get("max_duration"))); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return filters, pkgerror.NewBusiness("invalid max_duration", pkgerror.CodeInvalidInput)
		}
		filters.MaxDurationMinutes = parsed
	}

	return filters, nil
}

func parseTableFilters(q url.Values) (view.TableFilters, error) {
	table := view.TableFilters{
		Query:    strings.TrimSpace(q.Get("q")),
		Airlines: parseListParam(q, "table_airlines"),
	}

	if value := strings.TrimSpace(q.Get("table_max_price")); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil || parsed < 0 {
			return table, pkgerror.NewBusiness("invalid table_max_price", pkgerror.CodeInvalidInput)
		}
		table.MaxPrice = &parsed
	}
	if value := strings.TrimSpace(q.Get("table_max_stops")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			return table, pkgerror.NewBusiness("invalid table_max_stops", pkgerror.CodeInvalidInput)
		}
		table.MaxStops = &parsed
	}

	return table, nil
}

func parseSortOption(value string) engine.SortOption {
	switch engine.SortOption(strings.ToLower(strings.TrimSpace(value))) {
	case engine.SortPriceDesc:
		return engine.SortPriceDesc
	case engine.SortDurationAsc:
		return engine.SortDurationAsc
	case engine.SortDepartureAsc:
		return engine.SortDepartureAsc
	default:
		return engine.SortPriceAsc
	}
}

func parseListParam(q url.Values, key string) []string {
	value := strings.TrimSpace(q.Get(key))
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	clean := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}
	return clean
}

func firstNotEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
