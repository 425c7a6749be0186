package amadeus

import (
	"context"
	"fmt"
	"net/http"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
)

type seatMapRequest struct {
	Data []entity.FlightOffer `json:"data"`
}

type seatMapResponse struct {
	Data []entity.SeatMap `json:"data"`
}

// SeatMaps fetches the aircraft seat maps for one priced offer, one map per
// flight segment.
func (c *Client) SeatMaps(ctx context.Context, offer entity.FlightOffer) ([]entity.SeatMap, error) {
	body := seatMapRequest{Data: []entity.FlightOffer{offer}}

	var resp seatMapResponse
	if err := c.do(ctx, http.MethodPost, "/v1/shopping/seatmaps", nil, body, &resp); err != nil {
		return nil, fmt.Errorf("fetch seat maps: %w", err)
	}
	return resp.Data, nil
}
