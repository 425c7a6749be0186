package usecase

import (
	"context"

	"github.com/moxie99/flight-search-app/internal/flightsearch/entity"
	"github.com/moxie99/flight-search-app/internal/flightsearch/seatmap"
	"github.com/moxie99/flight-search-app/internal/pkg/pkgerror"
)

type SeatMapInput struct {
	OfferID      string
	SelectedSeat string
}

type SegmentSeatMap struct {
	SegmentID string
	Sections  []seatmap.CabinSection
}

type SeatMapOutput struct {
	OfferID  string
	Segments []SegmentSeatMap
	// Available is false when the aircraft exposes no seats at all; callers
	// render an explicit "seat selection unavailable" state, not an error.
	Available bool
	// Selection echoes the seat identity when SelectedSeat matched a seat.
	Selection *entity.SeatSelection
}

// SeatMap fetches and normalizes the seat maps for a previously searched
// offer. The offer must still be in the offer index; an expired or unknown
// ID is a NOT_FOUND business error.
func (u *Usecase) SeatMap(ctx context.Context, in SeatMapInput) (*SeatMapOutput, error) {
	offer, ok := u.offerCache.Get(ctx, in.OfferID)
	if !ok {
		return nil, pkgerror.NewBusiness("offer not found or expired, search again", pkgerror.CodeNotFound)
	}

	maps, err := u.client.SeatMaps(ctx, offer)
	if err != nil {
		return nil, upstreamError("seat maps are temporarily unavailable", err)
	}

	output := &SeatMapOutput{OfferID: in.OfferID}
	for _, m := range maps {
		sections := seatmap.Normalize(m.Decks, in.SelectedSeat)
		output.Segments = append(output.Segments, SegmentSeatMap{SegmentID: m.SegmentID, Sections: sections})

		for _, section := range sections {
			if len(section.Seats) > 0 {
				output.Available = true
			}
			if output.Selection != nil {
				continue
			}
			for _, seat := range section.Seats {
				if seat.IsSelected {
					selection := seatmap.Selection(m.SegmentID, seat)
					output.Selection = &selection
					break
				}
			}
		}
	}

	return output, nil
}
