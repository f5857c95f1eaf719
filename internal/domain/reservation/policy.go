package reservation

import (
	"errors"
	"time"
)

var (
	ErrStartInPast      = errors.New("start time is in the past")
	ErrBeyondHorizon    = errors.New("reservation extends beyond the booking horizon")
	ErrNotSlotAligned   = errors.New("duration is not a multiple of the slot granularity")
	ErrDurationTooShort = errors.New("duration is shorter than one slot")
)

// Policy holds the booking rules applied to every incoming slot.
type Policy struct {
	Granularity time.Duration
	Horizon     time.Duration
}

// ValidateInterval checks the slot position against now: the start must not
// be in the past and the whole slot must fit inside the horizon.
func (p Policy) ValidateInterval(slot TimeSlot, now time.Time) error {
	if slot.Start().Before(now) {
		return ErrStartInPast
	}
	if p.Horizon > 0 && slot.End().After(now.Add(p.Horizon)) {
		return ErrBeyondHorizon
	}
	return nil
}

// ValidateDuration checks the slot length against the granularity.
func (p Policy) ValidateDuration(slot TimeSlot) error {
	d := slot.Duration()
	if d < p.Granularity {
		return ErrDurationTooShort
	}
	if p.Granularity > 0 && d%p.Granularity != 0 {
		return ErrNotSlotAligned
	}
	return nil
}
