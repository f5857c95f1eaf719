package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive          = errors.New("reservation is not active")
	ErrAlreadyStarted     = errors.New("reservation has already started")
	ErrNotOwner           = errors.New("reservation belongs to another user")
	ErrInvalidReservation = errors.New("invalid reservation")
)

type Reservation struct {
	id        uuid.UUID
	pcID      uuid.UUID
	userID    uuid.UUID
	slot      TimeSlot
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewReservation builds a fresh active reservation. Slot validity is the
// caller's concern; admission rules live in the command layer.
func NewReservation(pcID, userID uuid.UUID, slot TimeSlot, now time.Time) (*Reservation, error) {
	if pcID == uuid.Nil || userID == uuid.Nil {
		return nil, ErrInvalidReservation
	}
	return &Reservation{
		id:        uuid.New(),
		pcID:      pcID,
		userID:    userID,
		slot:      slot,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a reservation from persistence without validation.
func Reconstruct(
	id, pcID, userID uuid.UUID,
	slot TimeSlot,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		pcID:      pcID,
		userID:    userID,
		slot:      slot,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) PCID() uuid.UUID      { return r.pcID }
func (r *Reservation) UserID() uuid.UUID    { return r.userID }
func (r *Reservation) Slot() TimeSlot       { return r.slot }
func (r *Reservation) Status() Status       { return r.status }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time { return r.updatedAt }

// TotalHours is derived from the slot, never stored.
func (r *Reservation) TotalHours() int {
	return r.slot.Hours()
}

func (r *Reservation) IsOwnedBy(userID uuid.UUID) bool {
	return r.userID == userID
}

// CanCancelAt reports whether cancellation is admissible at the given
// instant: the reservation must still be active and must not have started.
func (r *Reservation) CanCancelAt(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	if !now.Before(r.slot.Start()) {
		return ErrAlreadyStarted
	}
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if err := r.CanCancelAt(now); err != nil {
		return err
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

// Complete finalizes a reservation whose end time has passed. It is a no-op
// guard failure on non-active reservations so the sweep stays idempotent.
func (r *Reservation) Complete(now time.Time) error {
	if r.status != StatusActive {
		return ErrNotActive
	}
	r.status = StatusCompleted
	r.updatedAt = now
	return nil
}

// IsExpiredAt reports whether the slot has fully elapsed.
func (r *Reservation) IsExpiredAt(now time.Time) bool {
	return !r.slot.End().After(now)
}
