package inbound

import (
	"context"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/usecase"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgrouter"
)

type uc interface {
	Search(ctx context.Context, in usecase.SearchInput) (*usecase.SearchOutput, error)
	SeatMap(ctx context.Context, in usecase.SeatMapInput) (*usecase.SeatMapOutput, error)
	Locations(ctx context.Context, keyword string) ([]entity.Location, error)
	Confirm(ctx context.Context, in usecase.ConfirmInput) (*usecase.ConfirmOutput, error)
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/flights", end.Search)
	r.GET("/airports", end.Airports)
	r.GET("/flights/{id}/seatmap", end.SeatMap)
	r.POST("/flights/{id}/confirm", end.Confirm)
}
