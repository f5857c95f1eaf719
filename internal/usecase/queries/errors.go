package queries

import "netcafe-booking/internal/pkg/errs"

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrRoomNotFound        = errs.New("room not found")
	ErrPCNotFound          = errs.New("pc not found")
	ErrReportNotFound      = errs.New("report not found")
	ErrForbidden           = errs.New("requester may not view this resource")
	ErrInvalidInterval     = errs.New("invalid availability interval")
	ErrInvalidQuoteInput   = errs.New("invalid quote input")
)
