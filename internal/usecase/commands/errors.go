package commands

import (
	"fmt"

	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/pkg/errs"
)

var (
	ErrInvalidInterval        = errs.New("invalid reservation interval")
	ErrInvalidDuration        = errs.New("invalid reservation duration")
	ErrResourceUnavailable    = errs.New("pc is not available for booking")
	ErrConflictingReservation = errs.New("interval conflicts with an existing reservation")

	ErrReservationNotFound = errs.New("reservation not found")
	ErrNotReservationOwner = errs.New("reservation belongs to another user")
	ErrAlreadyFinalized    = errs.New("reservation can no longer be cancelled")
	ErrScheduleCorrupted   = errs.New("conflict index disagrees with the ledger")

	ErrRoomNotFound   = errs.New("room not found")
	ErrPCNotFound     = errs.New("pc not found")
	ErrReportNotFound = errs.New("report not found")
	ErrDuplicatePC    = errs.New("pc number already taken in room")
)

// ConflictError carries the intervals that blocked admission. It is always
// marked with ErrConflictingReservation.
type ConflictError struct {
	Conflicts []reservation.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("interval conflicts with %d existing reservation(s)", len(e.Conflicts))
}

func newConflictError(conflicts []reservation.Interval) error {
	return errs.Mark(&ConflictError{Conflicts: conflicts}, ErrConflictingReservation)
}
