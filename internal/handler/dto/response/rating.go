package response

import (
	"time"

	"netcafe-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	PCID      uuid.UUID `json:"pcId"`
	UserID    uuid.UUID `json:"userId"`
	Stars     int       `json:"stars"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

type RatingSummaryResponse struct {
	PCID    uuid.UUID        `json:"pcId"`
	Average float64          `json:"average"`
	Count   int              `json:"count"`
	Ratings []RatingResponse `json:"ratings"`
}

func FromRatingSummary(summary *queries.RatingSummary) *RatingSummaryResponse {
	ratings := make([]RatingResponse, 0, len(summary.Ratings))
	for i := range summary.Ratings {
		var r RatingResponse
		_ = copier.Copy(&r, &summary.Ratings[i])
		ratings = append(ratings, r)
	}
	return &RatingSummaryResponse{
		PCID:    summary.PCID,
		Average: summary.Average,
		Count:   summary.Count,
		Ratings: ratings,
	}
}
