package api

import (
	"errors"
	"net/http"

	reqdto "netcafe-booking/internal/handler/dto/request"
	resdto "netcafe-booking/internal/handler/dto/response"
	"netcafe-booking/internal/handler/middleware"
	"netcafe-booking/internal/usecase/commands"
	"netcafe-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatingHandler struct {
	commands *commands.RatingCommands
	queries  *queries.RatingQueries
}

func NewRatingHandler(cmds *commands.RatingCommands, qrys *queries.RatingQueries) *RatingHandler {
	return &RatingHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary Rate a PC
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "PC ID"
// @Param request body reqdto.CreateRatingRequest true "Rating"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pcs/{id}/ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	pcID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PC ID format",
		})
		return
	}

	var req reqdto.CreateRatingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.RatePC(c.Request.Context(), commands.RatePCInput{
		PCID:    pcID,
		UserID:  userID,
		Stars:   req.Stars,
		Comment: req.Comment,
	})
	if err != nil {
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

	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List PC ratings
// @Tags ratings
// @Produce json
// @Param id path string true "PC ID"
// @Success 200 {object} resdto.RatingSummaryResponse
// @Failure 404 {object} map[string]string
// @Router /pcs/{id}/ratings [get]
func (h *RatingHandler) ListRatings(c *gin.Context) {
	pcID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PC ID format",
		})
		return
	}

	summary, err := h.queries.ListByPC(c.Request.Context(), pcID)
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

	c.JSON(http.StatusOK, resdto.FromRatingSummary(summary))
}
