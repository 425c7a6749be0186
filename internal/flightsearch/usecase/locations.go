package usecase

import (
	"context"
	"strings"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
)

// Locations looks up airports for the origin/destination autocomplete,
// memoizing per keyword.
func (u *Usecase) Locations(ctx context.Context, keyword string) ([]entity.Location, error) {
	key := strings.ToLower(strings.TrimSpace(keyword))
	if cached, ok := u.locationCache.Get(ctx, key); ok {
		return cached, nil
	}

	locations, err := u.client.SearchLocations(ctx, keyword)
	if err != nil {
		return nil, upstreamError("airport lookup is temporarily unavailable", err)
	}

	u.locationCache.Set(ctx, key, locations, u.locationTTL)
	return locations, nil
}
