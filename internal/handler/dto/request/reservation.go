package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PCID      uuid.UUID `json:"pc_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type CheckAvailabilityRequest struct {
	PCID      uuid.UUID `json:"pc_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type QuoteRequest struct {
	DurationHours int `form:"duration_hours" binding:"required,min=1"`
	ResourceCount int `form:"resource_count,default=1" binding:"min=1"`
}
