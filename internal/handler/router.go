package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"netcafe-booking/internal/domain/user"
	"netcafe-booking/internal/handler/api"
	"netcafe-booking/internal/handler/middleware"
	"netcafe-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Reservation *api.ReservationHandler
	Inventory   *api.InventoryHandler
	Rating      *api.RatingHandler
	Report      *api.ReportHandler
	Admin       *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		rooms := apiGroup.Group("/rooms")
		addRoutes(rooms, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Inventory.ListRooms},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Inventory.GetRoom},
			{Method: http.MethodGet, Path: "/:id/pcs", Handler: h.Inventory.ListRoomPCs},
		})

		pcs := apiGroup.Group("/pcs")
		addRoutes(pcs, []route{
			{Method: http.MethodGet, Path: "/:id", Handler: h.Inventory.GetPC},
			{Method: http.MethodGet, Path: "/:id/quote", Handler: h.Inventory.QuotePC},
			{Method: http.MethodGet, Path: "/:id/ratings", Handler: h.Rating.ListRatings},
		})

		pcsAuthed := pcs.Group("")
		pcsAuthed.Use(authMiddleware.RequireAuth())
		addRoutes(pcsAuthed, []route{
			{Method: http.MethodPost, Path: "/:id/ratings", Handler: h.Rating.CreateRating},
			{Method: http.MethodPost, Path: "/:id/reports", Handler: h.Report.CreateReport},
		})

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
			{Method: http.MethodGet, Path: "", Handler: h.Reservation.GetUserReservations},
			{Method: http.MethodPost, Path: "/check-availability", Handler: h.Reservation.CheckAvailability},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.GetReservation},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.CancelReservation},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRoleAtLeast(user.RoleAdmin))
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "/rooms", Handler: h.Admin.CreateRoom},
			{Method: http.MethodPut, Path: "/rooms/:id", Handler: h.Admin.UpdateRoom},
			{Method: http.MethodDelete, Path: "/rooms/:id", Handler: h.Admin.DeleteRoom},
			{Method: http.MethodPost, Path: "/pcs", Handler: h.Admin.CreatePC},
			{Method: http.MethodPut, Path: "/pcs/:id", Handler: h.Admin.UpdatePC},
			{Method: http.MethodDelete, Path: "/pcs/:id", Handler: h.Admin.DeletePC},
			{Method: http.MethodGet, Path: "/reservations", Handler: h.Admin.ListAllReservations},
			{Method: http.MethodGet, Path: "/reports", Handler: h.Report.ListReports},
			{Method: http.MethodPut, Path: "/reports/:id/resolve", Handler: h.Report.ResolveReport},
			{Method: http.MethodPut, Path: "/reports/:id/close", Handler: h.Report.CloseReport},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		case http.MethodPut:
			g.PUT(r.Path, r.Handler)
		case http.MethodPatch:
			g.PATCH(r.Path, r.Handler)
		case http.MethodDelete:
			g.DELETE(r.Path, r.Handler)
		default:
			g.Any(r.Path, r.Handler)
		}
	}
}
