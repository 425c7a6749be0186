package amadeus

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
)

type locationsResponse struct {
	Data []struct {
		IATACode string `json:"iataCode"`
		Name     string `json:"name"`
		Address  struct {
			CityName    string `json:"cityName"`
			CountryCode string `json:"countryCode"`
		} `json:"address"`
	} `json:"data"`
}

// SearchLocations looks up airports matching a keyword, for the
// origin/destination autocomplete.
func (c *Client) SearchLocations(ctx context.Context, keyword string) ([]entity.Location, error) {
	params := url.Values{}
	params.Set("subType", "AIRPORT")
	params.Set("keyword", keyword)

	var resp locationsResponse
	if err := c.do(ctx, http.MethodGet, "/v1/reference-data/locations", params, nil, &resp); err != nil {
		return nil, fmt.Errorf("search locations: %w", err)
	}

	locations := make([]entity.Location, 0, len(resp.Data))
	for _, item := range resp.Data {
		locations = append(locations, entity.Location{
			IATACode:    item.IATACode,
			Name:        item.Name,
			CityName:    item.Address.CityName,
			CountryCode: item.Address.CountryCode,
		})
	}
	return locations, nil
}
