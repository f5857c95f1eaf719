package queries

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/domain/user"
	"netcafe-booking/internal/infra"
	"netcafe-booking/internal/pkg/errs"
	"netcafe-booking/internal/usecase/shared"
)

type ReservationView struct {
	ID         uuid.UUID
	PCID       uuid.UUID
	UserID     uuid.UUID
	Start      time.Time
	End        time.Time
	Status     string
	TotalHours int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AvailabilityResult is an advisory probe outcome. It can be stale by the
// time the caller acts on it; only admission is authoritative.
type AvailabilityResult struct {
	Available bool
	Conflicts []reservation.Interval
}

type QuoteView struct {
	PCID            uuid.UUID
	HourlyRateCents int64
	DurationHours   int
	ResourceCount   int
	TotalCents      int64
}

type ReservationReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error)
	ListAll(ctx context.Context) ([]ReservationView, error)
	Find(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// ActiveOverlapping returns the active intervals on the PC overlapping
	// the given one, in start order.
	ActiveOverlapping(ctx context.Context, pcID uuid.UUID, iv reservation.Interval) ([]reservation.Interval, error)
}

type ReservationQueries struct {
	store ReservationReadStore
	pcs   shared.PCReader
}

func NewReservationQueries(store ReservationReadStore, pcs shared.PCReader) *ReservationQueries {
	return &ReservationQueries{store: store, pcs: pcs}
}

func (q *ReservationQueries) ListByUser(ctx context.Context, userID uuid.UUID) ([]ReservationView, error) {
	return q.store.ListByUser(ctx, userID)
}

func (q *ReservationQueries) ListAll(ctx context.Context) ([]ReservationView, error) {
	return q.store.ListAll(ctx)
}

// Get returns one reservation; only its owner or an admin may see it.
func (q *ReservationQueries) Get(ctx context.Context, id, requesterID uuid.UUID, role user.Role) (*ReservationView, error) {
	view, err := q.store.Find(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrReservationNotFound)
		}
		return nil, err
	}
	if view.UserID != requesterID && role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	return view, nil
}

// CheckAvailability reports whether the interval is currently free on the
// PC, with the overlapping intervals when it is not.
func (q *ReservationQueries) CheckAvailability(ctx context.Context, pcID uuid.UUID, start, end time.Time) (*AvailabilityResult, error) {
	slot, err := reservation.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInterval)
	}

	if _, err := q.pcs.Snapshot(ctx, pcID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPCNotFound)
		}
		return nil, err
	}

	conflicts, err := q.store.ActiveOverlapping(ctx, pcID, slot.Interval())
	if err != nil {
		return nil, errs.Wrap(err, "failed to probe availability")
	}
	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// Quote prices a prospective booking: rate times whole hours times PC count,
// all in integer cents. Quotes are never stored and never affect admission.
func (q *ReservationQueries) Quote(ctx context.Context, pcID uuid.UUID, durationHours, resourceCount int) (*QuoteView, error) {
	snap, err := q.pcs.Snapshot(ctx, pcID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPCNotFound)
		}
		return nil, err
	}

	rate, err := reservation.NewMoney(snap.HourlyRateCents)
	if err != nil {
		return nil, errs.Wrap(err, "invalid hourly rate")
	}
	quote, err := reservation.ComputeQuote(rate, durationHours, resourceCount)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidQuoteInput)
	}
	return &QuoteView{
		PCID:            pcID,
		HourlyRateCents: quote.HourlyRate.Cents(),
		DurationHours:   quote.DurationHours,
		ResourceCount:   quote.ResourceCount,
		TotalCents:      quote.Total.Cents(),
	}, nil
}
