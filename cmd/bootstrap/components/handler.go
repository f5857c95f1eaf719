package components

import (
	"netcafe-booking/internal/handler"
	"netcafe-booking/internal/handler/api"
	"netcafe-booking/internal/handler/middleware"
	"netcafe-booking/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		api.NewReservationHandler,
		api.NewInventoryHandler,
		api.NewRatingHandler,
		api.NewReportHandler,
		api.NewAdminHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	reservation *api.ReservationHandler,
	inventory *api.InventoryHandler,
	rating *api.RatingHandler,
	report *api.ReportHandler,
	admin *api.AdminHandler,
) handler.Handlers {
	return handler.Handlers{
		Reservation: reservation,
		Inventory:   inventory,
		Rating:      rating,
		Report:      report,
		Admin:       admin,
	}
}
