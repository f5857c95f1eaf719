package api

import (
	"errors"
	"net/http"

	reqdto "netcafe-booking/internal/handler/dto/request"
	resdto "netcafe-booking/internal/handler/dto/response"
	"netcafe-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InventoryHandler serves the public browse surface: rooms, PCs, quotes.
type InventoryHandler struct {
	inventory    *queries.InventoryQueries
	reservations *queries.ReservationQueries
}

func NewInventoryHandler(inventory *queries.InventoryQueries, reservations *queries.ReservationQueries) *InventoryHandler {
	return &InventoryHandler{
		inventory:    inventory,
		reservations: reservations,
	}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *InventoryHandler) ListRooms(c *gin.Context) {
	views, err := h.inventory.ListRooms(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *InventoryHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	view, err := h.inventory.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary List PCs in a room
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {array} resdto.PCResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id}/pcs [get]
func (h *InventoryHandler) ListRoomPCs(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	views, err := h.inventory.ListPCsByRoom(c.Request.Context(), roomID)
	if err != nil {
		if errors.Is(err, queries.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPCViews(views))
}

// @Summary Get PC
// @Tags pcs
// @Produce json
// @Param id path string true "PC ID"
// @Success 200 {object} resdto.PCResponse
// @Failure 404 {object} map[string]string
// @Router /pcs/{id} [get]
func (h *InventoryHandler) GetPC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PC ID format",
		})
		return
	}

	view, err := h.inventory.GetPC(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrPCNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "PC not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromPCView(view))
}

// @Summary Quote a booking
// @Description Price estimate: hourly rate times whole hours times PC count
// @Tags pcs
// @Produce json
// @Param id path string true "PC ID"
// @Param duration_hours query int true "Duration in whole hours"
// @Param resource_count query int false "Number of PCs" default(1)
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pcs/{id}/quote [get]
func (h *InventoryHandler) QuotePC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PC ID format",
		})
		return
	}

	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid quote parameters",
		})
		return
	}

	quote, err := h.reservations.Quote(c.Request.Context(), id, req.DurationHours, req.ResourceCount)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrPCNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "PC not found",
			})
		case errors.Is(err, queries.ErrInvalidQuoteInput):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid quote parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}
