package usecase

import (
	"context"
	"time"

	"github.com/moxie99/flight-search-app/internal/flightsearch/amadeus"
	"github.com/moxie99/flight-search-app/internal/flightsearch/cache"
	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/pkg/pkguid"
)

// FlightClient is the outbound surface the usecase depends on; amadeus.Client
// satisfies it.
type FlightClient interface {
	SearchFlightOffers(ctx context.Context, q amadeus.SearchQuery) (*amadeus.SearchResult, error)
	SearchLocations(ctx context.Context, keyword string) ([]entity.Location, error)
	SeatMaps(ctx context.Context, offer entity.FlightOffer) ([]entity.SeatMap, error)
}

type Dependency struct {
	Client FlightClient
	UID    pkguid.StringID

	SearchCache   cache.Store[*SearchOutput]
	OfferCache    cache.Store[entity.FlightOffer]
	LocationCache cache.Store[[]entity.Location]

	SearchTTL   time.Duration
	OfferTTL    time.Duration
	LocationTTL time.Duration
}

type Usecase struct {
	client FlightClient
	uid    pkguid.StringID

	searchCache   cache.Store[*SearchOutput]
	offerCache    cache.Store[entity.FlightOffer]
	locationCache cache.Store[[]entity.Location]

	searchTTL   time.Duration
	offerTTL    time.Duration
	locationTTL time.Duration
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		client:        dep.Client,
		uid:           dep.UID,
		searchCache:   dep.SearchCache,
		offerCache:    dep.OfferCache,
		locationCache: dep.LocationCache,
		searchTTL:     dep.SearchTTL,
		offerTTL:      dep.OfferTTL,
		locationTTL:   dep.LocationTTL,
	}
}
