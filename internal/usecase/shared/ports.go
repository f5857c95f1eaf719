package shared

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/domain/rating"
	"netcafe-booking/internal/domain/report"
	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/domain/room"
)

// UnitOfWork runs fn inside one transaction. fn may be retried as a whole
// when the database reports a serialization failure, so it must be
// side-effect free outside the transaction.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes the write repositories bound to one transaction.
type Tx interface {
	Reservations() ReservationRepository
	PCs() PCRepository
	Rooms() RoomRepository
	Ratings() RatingRepository
	Reports() ReportRepository
}

// ExpiredReservation identifies a reservation completed by the expiry sweep.
type ExpiredReservation struct {
	ID   uuid.UUID
	PCID uuid.UUID
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	// SetStatus transitions an active reservation; it fails with a not found
	// kind when the row is missing or no longer active.
	SetStatus(ctx context.Context, id uuid.UUID, status reservation.Status, now time.Time) error
	// CompleteExpired flips every active reservation whose end time has
	// passed to completed and reports which PCs were touched.
	CompleteExpired(ctx context.Context, now time.Time) ([]ExpiredReservation, error)
	// HasActiveCovering reports whether any active reservation on the PC
	// contains the given instant.
	HasActiveCovering(ctx context.Context, pcID uuid.UUID, at time.Time) (bool, error)
}

type PCRepository interface {
	Create(ctx context.Context, p *pc.PC) error
	Get(ctx context.Context, id uuid.UUID) (*pc.PC, error)
	Update(ctx context.Context, p *pc.PC) error
	SetStatus(ctx context.Context, id uuid.UUID, status pc.Status, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) error
	Get(ctx context.Context, id uuid.UUID) (*room.Room, error)
	Update(ctx context.Context, r *room.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type RatingRepository interface {
	Create(ctx context.Context, r *rating.Rating) error
}

type ReportRepository interface {
	Create(ctx context.Context, r *report.Report) error
	Get(ctx context.Context, id uuid.UUID) (*report.Report, error)
	Update(ctx context.Context, r *report.Report) error
}

// ReservationReader serves the admission engine's index warm-up and the
// availability probe outside any transaction.
type ReservationReader interface {
	ActiveEntries(ctx context.Context, pcID uuid.UUID) ([]reservation.Entry, error)
	Get(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
}

// PCReader provides the lightweight PC lookups commands need before taking
// the admission lock.
type PCReader interface {
	Snapshot(ctx context.Context, id uuid.UUID) (*PCSnapshot, error)
}

// PCSnapshot is the read-side projection of a PC.
type PCSnapshot struct {
	ID              uuid.UUID
	RoomID          uuid.UUID
	Number          int
	Specs           pc.Specs
	Status          pc.Status
	HourlyRateCents int64
	RatingAvg       float64
	RatingCount     int
}
