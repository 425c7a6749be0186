package flightsearch

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moxie99/flight-search-app/internal/flightsearch/amadeus"
	"github.com/moxie99/flight-search-app/internal/flightsearch/cache"
	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/inbound"
	"github.com/moxie99/flight-search-app/internal/flightsearch/usecase"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgconfig"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgrouter"
	"github.com/moxie99/flight-search-app/internal/pkg/pkguid"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	client := amadeus.New(amadeus.Config{
		BaseURL:      dep.Config.GetString("modules.flight-search.amadeus.base_url"),
		ClientID:     dep.Config.GetString("modules.flight-search.amadeus.client_id"),
		ClientSecret: dep.Config.GetString("modules.flight-search.amadeus.client_secret"),
		Timeout:      durationMs(dep.Config, "modules.flight-search.amadeus.timeout_ms", 10*time.Second),
		MaxRetries:   dep.Config.GetInt("modules.flight-search.amadeus.max_retries"),
	})

	searchTTL := durationSec(dep.Config, "modules.flight-search.cache.search_ttl_seconds", 60*time.Second)
	offerTTL := durationSec(dep.Config, "modules.flight-search.cache.offer_ttl_seconds", 15*time.Minute)
	locationTTL := durationSec(dep.Config, "modules.flight-search.cache.location_ttl_seconds", time.Hour)

	var (
		searchCache   cache.Store[*usecase.SearchOutput]
		offerCache    cache.Store[entity.FlightOffer]
		locationCache cache.Store[[]entity.Location]
	)
	if dep.Config.GetString("modules.flight-search.cache.backend") == "redis" {
		rdb := redis.NewClient(&redis.Options{
			Addr: dep.Config.GetString("modules.flight-search.cache.redis.address"),
		})
		searchCache = cache.NewRedis[*usecase.SearchOutput](rdb, "fs:search:")
		offerCache = cache.NewRedis[entity.FlightOffer](rdb, "fs:offer:")
		locationCache = cache.NewRedis[[]entity.Location](rdb, "fs:location:")
	} else {
		searchCache = cache.NewMemory(usecase.CloneSearchOutput)
		offerCache = cache.NewMemory[entity.FlightOffer](nil)
		locationCache = cache.NewMemory[[]entity.Location](nil)
	}

	uc := usecase.New(usecase.Dependency{
		Client:        client,
		UID:           pkguid.NewUUID(),
		SearchCache:   searchCache,
		OfferCache:    offerCache,
		LocationCache: locationCache,
		SearchTTL:     searchTTL,
		OfferTTL:      offerTTL,
		LocationTTL:   locationTTL,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}

func durationMs(cfg pkgconfig.Config, key string, fallback time.Duration) time.Duration {
	if ms := cfg.GetInt(key); ms > 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}

func durationSec(cfg pkgconfig.Config, key string, fallback time.Duration) time.Duration {
	if sec := cfg.GetInt(key); sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return fallback
}
