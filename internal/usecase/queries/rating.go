package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/errs"
)

type RatingView struct {
	ID        uuid.UUID
	PCID      uuid.UUID
	UserID    uuid.UUID
	Stars     int
	Comment   string
	CreatedAt time.Time
}

type RatingSummary struct {
	PCID    uuid.UUID
	Average float64
	Count   int
	Ratings []RatingView
}

type RatingReadStore interface {
	ListByPC(ctx context.Context, pcID uuid.UUID) ([]RatingView, error)
}

type RatingQueries struct {
	store RatingReadStore
	pcs   InventoryReadStore
}

func NewRatingQueries(store RatingReadStore, pcs InventoryReadStore) *RatingQueries {
	return &RatingQueries{store: store, pcs: pcs}
}

// ListByPC returns the ratings for a PC with the stored running average.
func (q *RatingQueries) ListByPC(ctx context.Context, pcID uuid.UUID) (*RatingSummary, error) {
	pcView, err := q.pcs.GetPC(ctx, pcID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPCNotFound)
		}
		return nil, err
	}

	ratings, err := q.store.ListByPC(ctx, pcID)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{
		PCID:    pcID,
		Average: pcView.RatingAvg,
		Count:   pcView.RatingCount,
		Ratings: ratings,
	}, nil
}
