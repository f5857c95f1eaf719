package api

import (
	"errors"
	"net/http"

	"netcafe-booking/internal/domain/pc"
	"netcafe-booking/internal/domain/room"
	reqdto "netcafe-booking/internal/handler/dto/request"
	resdto "netcafe-booking/internal/handler/dto/response"
	"netcafe-booking/internal/usecase/commands"
	"netcafe-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AdminHandler covers inventory management and the admin reservation view.
type AdminHandler struct {
	inventory    *commands.InventoryCommands
	reservations *queries.ReservationQueries
}

func NewAdminHandler(inventory *commands.InventoryCommands, reservations *queries.ReservationQueries) *AdminHandler {
	return &AdminHandler{
		inventory:    inventory,
		reservations: reservations,
	}
}

// @Summary Create room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Router /admin/rooms [post]
func (h *AdminHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.inventory.CreateRoom(c.Request.Context(), commands.CreateRoomInput{
		Name:        req.Name,
		Description: req.Description,
		RoomType:    room.Type(req.RoomType),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room parameters",
		})
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update room
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [put]
func (h *AdminHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.CreateRoomRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.inventory.UpdateRoom(c.Request.Context(), id, commands.CreateRoomInput{
		Name:        req.Name,
		Description: req.Description,
		RoomType:    room.Type(req.RoomType),
	})
	if err != nil {
		if errors.Is(err, commands.ErrRoomNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room parameters",
		})
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete room
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/rooms/{id} [delete]
func (h *AdminHandler) DeleteRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	if err := h.inventory.DeleteRoom(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrRoomNotFound) {
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
	c.Status(http.StatusNoContent)
}

// @Summary Create PC
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePCRequest true "PC"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/pcs [post]
func (h *AdminHandler) CreatePC(c *gin.Context) {
	var req reqdto.CreatePCRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.inventory.CreatePC(c.Request.Context(), commands.CreatePCInput{
		RoomID:          req.RoomID,
		Number:          req.Number,
		Specs:           specsFromRequest(req.Specs),
		HourlyRateCents: req.HourlyRateCents,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, commands.ErrDuplicatePC):
			c.JSON(http.StatusConflict, gin.H{
				"error": "PC number already taken in room",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid PC parameters",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary Update PC
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "PC ID"
// @Param request body reqdto.UpdatePCRequest true "PC"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/pcs/{id} [put]
func (h *AdminHandler) UpdatePC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PC ID format",
		})
		return
	}

	var req reqdto.UpdatePCRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	err = h.inventory.UpdatePC(c.Request.Context(), id, commands.UpdatePCInput{
		Number:          req.Number,
		Specs:           specsFromRequest(req.Specs),
		HourlyRateCents: req.HourlyRateCents,
		Status:          pc.Status(req.Status),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPCNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "PC not found",
			})
		case errors.Is(err, commands.ErrDuplicatePC):
			c.JSON(http.StatusConflict, gin.H{
				"error": "PC number already taken in room",
			})
		default:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid PC parameters",
			})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete PC
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "PC ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/pcs/{id} [delete]
func (h *AdminHandler) DeletePC(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PC ID format",
		})
		return
	}

	if err := h.inventory.DeletePC(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrPCNotFound) {
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
	c.Status(http.StatusNoContent)
}

// @Summary List all reservations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Router /admin/reservations [get]
func (h *AdminHandler) ListAllReservations(c *gin.Context) {
	views, err := h.reservations.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func specsFromRequest(req reqdto.PCSpecsRequest) pc.Specs {
	return pc.Specs{
		CPU:     req.CPU,
		GPU:     req.GPU,
		RAM:     req.RAM,
		Monitor: req.Monitor,
	}
}
