package components

import (
	"time"

	"netcafe-booking/internal/domain/reservation"
	"netcafe-booking/internal/pkg/clock"
	"netcafe-booking/internal/pkg/config"
	"netcafe-booking/internal/pkg/lockmap"
	"netcafe-booking/internal/usecase/commands"
	"netcafe-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	lockmap.New,
	reservation.NewScheduleMap,
	NewBookingPolicy,
)

func NewBookingPolicy(cfg config.Config) reservation.Policy {
	return reservation.Policy{
		Granularity: cfg.Booking.SlotGranularity,
		Horizon:     time.Duration(cfg.Booking.HorizonDays) * 24 * time.Hour,
	}
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReservationCommands,
		commands.NewInventoryCommands,
		commands.NewRatingCommands,
		commands.NewReportCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewInventoryQueries,
		queries.NewRatingQueries,
		queries.NewReportQueries,
	),
)
