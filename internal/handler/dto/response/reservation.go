package response

import (
	"time"

	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID         uuid.UUID `json:"id"`
	PCID       uuid.UUID `json:"pcId"`
	UserID     uuid.UUID `json:"userId"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Status     string    `json:"status"`
	TotalHours int       `json:"totalHours"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:         rm.ID,
		PCID:       rm.PCID,
		UserID:     rm.UserID,
		StartTime:  rm.Start,
		EndTime:    rm.End,
		Status:     rm.Status,
		TotalHours: rm.TotalHours,
		CreatedAt:  rm.CreatedAt,
		UpdatedAt:  rm.UpdatedAt,
	}
}

func FromReservationViews(rms []queries.ReservationView) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(rms))
	for i := range rms {
		out = append(out, *FromReservationView(&rms[i]))
	}
	return out
}

type IntervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type AvailabilityResponse struct {
	Available bool               `json:"available"`
	Conflicts []IntervalResponse `json:"conflicts"`
}

func FromAvailability(result *queries.AvailabilityResult) *AvailabilityResponse {
	conflicts := make([]IntervalResponse, 0, len(result.Conflicts))
	for _, iv := range result.Conflicts {
		conflicts = append(conflicts, IntervalResponse{Start: iv.Start, End: iv.End})
	}
	return &AvailabilityResponse{
		Available: result.Available,
		Conflicts: conflicts,
	}
}

func FromIntervals(intervals []reservation.Interval) []IntervalResponse {
	out := make([]IntervalResponse, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, IntervalResponse{Start: iv.Start, End: iv.End})
	}
	return out
}

type QuoteResponse struct {
	PCID            uuid.UUID `json:"pcId"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	DurationHours   int       `json:"durationHours"`
	ResourceCount   int       `json:"resourceCount"`
	TotalCents      int64     `json:"totalCents"`
}

func FromQuote(q *queries.QuoteView) *QuoteResponse {
	return &QuoteResponse{
		PCID:            q.PCID,
		HourlyRateCents: q.HourlyRateCents,
		DurationHours:   q.DurationHours,
		ResourceCount:   q.ResourceCount,
		TotalCents:      q.TotalCents,
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}
