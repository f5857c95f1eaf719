package api

import (
	"context"
	"errors"
	"net/http"

	"netcafe-booking/internal/domain/report"
	reqdto "netcafe-booking/internal/handler/dto/request"
	resdto "netcafe-booking/internal/handler/dto/response"
	"netcafe-booking/internal/handler/middleware"
	"netcafe-booking/internal/usecase/commands"
	"netcafe-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReportHandler struct {
	commands *commands.ReportCommands
	queries  *queries.ReportQueries
}

func NewReportHandler(cmds *commands.ReportCommands, qrys *queries.ReportQueries) *ReportHandler {
	return &ReportHandler{
		commands: cmds,
		queries:  qrys,
	}
}

// @Summary Report a PC issue
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "PC ID"
// @Param request body reqdto.CreateReportRequest true "Issue report"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pcs/{id}/reports [post]
func (h *ReportHandler) CreateReport(c *gin.Context) {
	pcID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid PC ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CreateReportRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.commands.Submit(c.Request.Context(), commands.SubmitReportInput{
		PCID:        pcID,
		UserID:      userID,
		IssueType:   report.IssueType(req.IssueType),
		Description: req.Description,
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

// @Summary List reports
// @Description Admin view of issue reports, optionally filtered by status
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(open, resolved, closed)
// @Success 200 {array} resdto.ReportResponse
// @Failure 403 {object} map[string]string
// @Router /admin/reports [get]
func (h *ReportHandler) ListReports(c *gin.Context) {
	var status *report.Status
	if raw := c.Query("status"); raw != "" {
		st := report.Status(raw)
		if !st.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
			return
		}
		status = &st
	}

	views, err := h.queries.List(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromReportViews(views))
}

// @Summary Resolve report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reports/{id}/resolve [put]
func (h *ReportHandler) ResolveReport(c *gin.Context) {
	h.transition(c, h.commands.Resolve)
}

// @Summary Close report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Report ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/reports/{id}/close [put]
func (h *ReportHandler) CloseReport(c *gin.Context) {
	h.transition(c, h.commands.Close)
}

func (h *ReportHandler) transition(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid report ID format",
		})
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrReportNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Report not found",
			})
		case errors.Is(err, report.ErrAlreadyResolved), errors.Is(err, report.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Report is not in a transitionable state",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
