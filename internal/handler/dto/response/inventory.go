package response

import (
	"time"

	"netcafe-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	RoomType    string    `json:"roomType"`
	PCCount     int       `json:"pcCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

type PCSpecsResponse struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Monitor string `json:"monitor"`
}

type PCResponse struct {
	ID              uuid.UUID       `json:"id"`
	RoomID          uuid.UUID       `json:"roomId"`
	Number          int             `json:"number"`
	Specs           PCSpecsResponse `json:"specs"`
	Status          string          `json:"status"`
	HourlyRateCents int64           `json:"hourlyRateCents"`
	RatingAvg       float64         `json:"ratingAvg"`
	RatingCount     int             `json:"ratingCount"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromRoomViews(rms []queries.RoomView) []RoomResponse {
	out := make([]RoomResponse, 0, len(rms))
	for i := range rms {
		out = append(out, *FromRoomView(&rms[i]))
	}
	return out
}

func FromPCView(rm *queries.PCView) *PCResponse {
	var resp PCResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromPCViews(rms []queries.PCView) []PCResponse {
	out := make([]PCResponse, 0, len(rms))
	for i := range rms {
		out = append(out, *FromPCView(&rms[i]))
	}
	return out
}
