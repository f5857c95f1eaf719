package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"netcafe-booking/internal/pkg/config"
	"netcafe-booking/internal/pkg/errs"
	"netcafe-booking/internal/usecase/commands"
)

const TypeSweepExpired = "reservation:sweep"

// Sweeper handles the periodic expiry task.
type Sweeper struct {
	reservations *commands.ReservationCommands
	logger       *slog.Logger
}

func NewSweeper(reservations *commands.ReservationCommands, logger *slog.Logger) *Sweeper {
	return &Sweeper{
		reservations: reservations,
		logger:       logger,
	}
}

func (s *Sweeper) HandleSweep(ctx context.Context, _ *asynq.Task) error {
	count, err := s.reservations.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("expiry sweep failed", "error", err)
		return err
	}
	if count > 0 {
		s.logger.Debug("expiry sweep done", "completed", count)
	}
	return nil
}

// Runner owns the asynq server and the periodic schedule that enqueues the
// sweep at the configured interval.
type Runner struct {
	server   *asynq.Server
	mux      *asynq.ServeMux
	periodic *asynq.PeriodicTaskManager
}

func NewRunner(cfg config.Config, sweeper *Sweeper, logger *slog.Logger) (*Runner, error) {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			"default": 10,
		},
		ErrorHandler: asynq.ErrorHandlerFunc(func(_ context.Context, task *asynq.Task, err error) {
			logger.Error("task failed", "type", task.Type(), "error", err)
		}),
	})

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSweepExpired, sweeper.HandleSweep)

	provider := &sweepConfigProvider{interval: fmt.Sprintf("@every %s", cfg.Booking.SweepInterval)}
	periodic, err := asynq.NewPeriodicTaskManager(asynq.PeriodicTaskManagerOpts{
		RedisConnOpt:               redisOpt,
		PeriodicTaskConfigProvider: provider,
		SyncInterval:               cfg.Booking.SweepInterval,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to build periodic task manager")
	}

	return &Runner{
		server:   server,
		mux:      mux,
		periodic: periodic,
	}, nil
}

func (r *Runner) Start() error {
	if err := r.server.Start(r.mux); err != nil {
		return errs.Wrap(err, "failed to start task server")
	}
	if err := r.periodic.Start(); err != nil {
		r.server.Shutdown()
		return errs.Wrap(err, "failed to start periodic tasks")
	}
	return nil
}

func (r *Runner) Stop() {
	r.periodic.Shutdown()
	r.server.Shutdown()
}

type sweepConfigProvider struct {
	interval string
}

func (p *sweepConfigProvider) GetConfigs() ([]*asynq.PeriodicTaskConfig, error) {
	return []*asynq.PeriodicTaskConfig{
		{
			Cronspec: p.interval,
			Task:     asynq.NewTask(TypeSweepExpired, nil),
		},
	}, nil
}
