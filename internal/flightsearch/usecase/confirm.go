package usecase

import (
	"context"

	"github.com/moxie99/flight-search-app/internal/pkg/pkgerror"
)

type ConfirmInput struct {
	OfferID      string
	SelectedSeat string
}

type ConfirmOutput struct {
	BookingReference string
	OfferID          string
	SelectedSeat     string
	Status           string
}

// Confirm is the booking-preview stub: it acknowledges the selection with a
// generated reference. No payment or reservation happens here.
func (u *Usecase) Confirm(ctx context.Context, in ConfirmInput) (*ConfirmOutput, error) {
	if _, ok := u.offerCache.Get(ctx, in.OfferID); !ok {
		return nil, pkgerror.NewBusiness("offer not found or expired, search again", pkgerror.CodeNotFound)
	}

	return &ConfirmOutput{
		BookingReference: u.uid.Generate(),
		OfferID:          in.OfferID,
		SelectedSeat:     in.SelectedSeat,
		Status:           "PREVIEW",
	}, nil
}
