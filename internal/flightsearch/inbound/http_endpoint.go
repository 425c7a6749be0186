package inbound

import (
	"context"
	"net/http"
	"strings"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/format"
	"github.com/moxie99/flight-search-app/internal/flightsearch/seatmap"
	"github.com/moxie99/flight-search-app/internal/flightsearch/usecase"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgerror"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgrouter"
)

type HTTPEndpoint struct {
	uc uc
}

func (h *HTTPEndpoint) Search(ctx context.Context, r *http.Request) (any, error) {
	input, err := parseSearchInput(r)
	if err != nil {
		return nil, err
	}

	output, err := h.uc.Search(ctx, input)
	if err != nil {
		return nil, err
	}

	return mapSearchResponse(output), nil
}

func (h *HTTPEndpoint) Airports(ctx context.Context, r *http.Request) (any, error) {
	keyword := strings.TrimSpace(r.URL.Query().Get("keyword"))
	if len(keyword) < 2 {
		return nil, pkgerror.NewBusiness("keyword must be at least 2 characters", pkgerror.CodeInvalidInput)
	}

	locations, err := h.uc.Locations(ctx, keyword)
	if err != nil {
		return nil, err
	}

	airports := make([]AirportResponse, 0, len(locations))
	for _, location := range locations {
		airports = append(airports, AirportResponse{
			IATACode:    location.IATACode,
			Name:        location.Name,
			CityName:    location.CityName,
			CountryCode: location.CountryCode,
		})
	}
	return airports, nil
}

func (h *HTTPEndpoint) SeatMap(ctx context.Context, r *http.Request) (any, error) {
	offerID := pkgrouter.PathParam(r, "id")
	if offerID == "" {
		return nil, pkgerror.NewBusiness("offer id is required", pkgerror.CodeInvalidInput)
	}

	output, err := h.uc.SeatMap(ctx, usecase.SeatMapInput{
		OfferID:      offerID,
		SelectedSeat: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("selected"))),
	})
	if err != nil {
		return nil, err
	}

	return mapSeatMapResponse(output), nil
}

func (h *HTTPEndpoint) Confirm(ctx context.Context, r *http.Request) (any, error) {
	offerID := pkgrouter.PathParam(r, "id")
	if offerID == "" {
		return nil, pkgerror.NewBusiness("offer id is required", pkgerror.CodeInvalidInput)
	}

	output, err := h.uc.Confirm(ctx, usecase.ConfirmInput{
		OfferID:      offerID,
		SelectedSeat: strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("seat"))),
	})
	if err != nil {
		return nil, err
	}

	return ConfirmResponse{
		BookingReference: output.BookingReference,
		OfferID:          output.OfferID,
		SelectedSeat:     output.SelectedSeat,
		Status:           output.Status,
	}, nil
}

func mapSearchResponse(output *usecase.SearchOutput) SearchResponse {
	flights := make([]OfferResponse, 0, len(output.Page.Items))
	for _, offer := range output.Page.Items {
		flights = append(flights, mapOfferResponse(offer, output.Page.LowestPriceID))
	}

	facets := make([]FacetResponse, 0, len(output.AirlineFacets))
	for _, facet := range output.AirlineFacets {
		facets = append(facets, FacetResponse{Code: facet.Code, Name: facet.Name, Count: facet.Count})
	}

	buckets := make([]HistogramBucket, 0, len(output.Histogram))
	for _, bucket := range output.Histogram {
		buckets = append(buckets, HistogramBucket{Lower: bucket.Lower, Count: bucket.Count, Label: bucket.Label})
	}

	return SearchResponse{
		SearchCriteria: SearchCriteriaResponse{
			Origin:        output.Criteria.Origin,
			Destination:   output.Criteria.Destination,
			DepartureDate: output.Criteria.DepartureDate,
			ReturnDate:    output.Criteria.ReturnDate,
			Adults:        output.Criteria.Adults,
			TravelClass:   output.Criteria.TravelClass,
		},
		Metadata: MetadataResponse{
			TotalResults:     output.Metadata.TotalResults,
			VisibleResults:   output.Metadata.VisibleResults,
			SearchTimeMs:     output.Metadata.SearchTimeMs,
			CacheHit:         output.Metadata.CacheHit,
			HasActiveFilters: output.HasActiveFilters,
		},
		Stats: StatsResponse{
			MinPrice:     output.PriceStats.Min,
			MaxPrice:     output.PriceStats.Max,
			AveragePrice: output.PriceStats.Average,
		},
		Facets:    facets,
		Histogram: buckets,
		Pagination: PaginationResponse{
			Page:       output.Page.Page,
			PageSize:   output.Page.PageSize,
			TotalItems: output.Page.TotalItems,
			TotalPages: output.Page.TotalPages,
		},
		ViewMode: string(output.Mode),
		Flights:  flights,
	}
}

func mapOfferResponse(offer entity.FlightOffer, lowestPriceID string) OfferResponse {
	itineraries := make([]ItineraryResponse, 0, len(offer.Itineraries))
	for _, itinerary := range offer.Itineraries {
		segments := make([]SegmentResponse, 0, len(itinerary.Segments))
		for _, segment := range itinerary.Segments {
			segments = append(segments, SegmentResponse{
				From:              segment.Departure.IATACode,
				To:                segment.Arrival.IATACode,
				DepartureAt:       segment.Departure.At,
				ArrivalAt:         segment.Arrival.At,
				DepartureTerminal: segment.Departure.Terminal,
				ArrivalTerminal:   segment.Arrival.Terminal,
				Carrier:           segment.CarrierCode,
				Number:            segment.Number,
				Stops:             segment.NumberOfStops,
			})
		}

		minutes := format.ParseISODuration(itinerary.Duration)
		itineraries = append(itineraries, ItineraryResponse{
			Duration:        itinerary.Duration,
			DurationMinutes: minutes,
			Formatted:       format.Minutes(minutes),
			Stops:           itinerary.StopCount(),
			Segments:        segments,
		})
	}

	return OfferResponse{
		ID:          offer.ID,
		Airlines:    append([]string{}, offer.ValidatingAirlineCodes...),
		Price:       mapPriceResponse(offer.Price),
		Itineraries: itineraries,
		Stops:       offer.StopCount(),
		BookableSeats: offer.NumberOfBookableSeats,
		LowestPrice: offer.ID != "" && offer.ID == lowestPriceID,
	}
}

func mapPriceResponse(price entity.Price) PriceResponse {
	return PriceResponse{
		Total:     price.Total,
		Currency:  price.Currency,
		Formatted: format.Price(format.ParsePrice(price.Total), price.Currency),
	}
}

func mapSeatMapResponse(output *usecase.SeatMapOutput) SeatMapResponse {
	resp := SeatMapResponse{OfferID: output.OfferID, Available: output.Available}
	if !output.Available {
		resp.Message = "seat selection unavailable for this flight"
	}

	for _, segment := range output.Segments {
		sections := make([]SectionResponse, 0, len(segment.Sections))
		for _, section := range segment.Sections {
			sections = append(sections, mapSectionResponse(section))
		}
		resp.Segments = append(resp.Segments, SegmentSeatMapItem{
			SegmentID: segment.SegmentID,
			Sections:  sections,
		})
	}

	if output.Selection != nil {
		resp.Selection = &SelectionResponse{
			SegmentID:       output.Selection.SegmentID,
			Number:          output.Selection.Number,
			Cabin:           string(output.Selection.Cabin),
			Characteristics: output.Selection.Characteristics,
			Price:           output.Selection.DisplayPrice,
		}
	}

	return resp
}

func mapSectionResponse(section seatmap.CabinSection) SectionResponse {
	seats := make([]SeatResponse, 0, len(section.Seats))
	for _, seat := range section.Seats {
		seats = append(seats, SeatResponse{
			Number:          seat.Number,
			Row:             seat.Row,
			Column:          seat.Column,
			Status:          string(seat.Status),
			Characteristics: seat.Characteristics,
			Window:          seat.IsWindow,
			Aisle:           seat.IsAisle,
			Middle:          seat.IsMiddle,
			ExitRow:         seat.IsExitRow,
			ExtraLegroom:    seat.IsExtraLegroom,
			Premium:         seat.IsPremium,
			Selected:        seat.IsSelected,
			Price:           seat.DisplayPrice,
		})
	}

	return SectionResponse{
		Deck:        section.DeckType,
		Cabin:       string(section.Cabin),
		DisplayName: section.DisplayName,
		MinRow:      section.MinRow,
		MaxRow:      section.MaxRow,
		Rows:        section.Rows,
		Columns:     section.Columns,
		Seats:       seats,
	}
}
