package request

import "github.com/google/uuid"

type CreateRoomRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	RoomType    string `json:"room_type" binding:"omitempty,oneof=VIP Normal Training"`
}

type PCSpecsRequest struct {
	CPU     string `json:"cpu"`
	GPU     string `json:"gpu"`
	RAM     string `json:"ram"`
	Monitor string `json:"monitor"`
}

type CreatePCRequest struct {
	RoomID          uuid.UUID      `json:"room_id" binding:"required"`
	Number          int            `json:"number" binding:"required,min=1"`
	Specs           PCSpecsRequest `json:"specs"`
	HourlyRateCents int64          `json:"hourly_rate_cents" binding:"min=0"`
}

type UpdatePCRequest struct {
	Number          int            `json:"number" binding:"required,min=1"`
	Specs           PCSpecsRequest `json:"specs"`
	HourlyRateCents int64          `json:"hourly_rate_cents" binding:"min=0"`
	Status          string         `json:"status" binding:"required,oneof=available reserved disabled"`
}
