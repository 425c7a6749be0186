package amadeus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
)

// SearchQuery mirrors the aggregator's flight-offer search parameters.
// Dates use the 2006-01-02 layout.
type SearchQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	TravelClass   string
	CurrencyCode  string
	MaxResults    int
}

// SearchResult is a raw search response: the offer list plus the carrier
// code→name dictionary used for display names and facets.
type SearchResult struct {
	Offers   []entity.FlightOffer `json:"offers"`
	Carriers map[string]string    `json:"carriers"`
}

type searchResponse struct {
	Data         []entity.FlightOffer `json:"data"`
	Dictionaries struct {
		Carriers map[string]string `json:"carriers"`
	} `json:"dictionaries"`
}

func (c *Client) SearchFlightOffers(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate)
	if q.ReturnDate != "" {
		params.Set("returnDate", q.ReturnDate)
	}
	adults := q.Adults
	if adults <= 0 {
		adults = 1
	}
	params.Set("adults", strconv.Itoa(adults))
	if q.TravelClass != "" {
		params.Set("travelClass", q.TravelClass)
	}
	if q.CurrencyCode != "" {
		params.Set("currencyCode", q.CurrencyCode)
	}
	if q.MaxResults > 0 {
		params.Set("max", strconv.Itoa(q.MaxResults))
	}

	var resp searchResponse
	if err := c.do(ctx, http.MethodGet, "/v2/shopping/flight-offers", params, nil, &resp); err != nil {
		return nil, fmt.Errorf("search flight offers: %w", err)
	}

	return &SearchResult{Offers: resp.Data, Carriers: resp.Dictionaries.Carriers}, nil
}
