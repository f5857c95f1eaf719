package bootstrap

import (
	"context"

	"netcafe-booking/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewSweeper,
		worker.NewRunner,
	),
	fx.Invoke(startWorker),
)

func startWorker(lc fx.Lifecycle, runner *worker.Runner) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return runner.Start()
		},
		OnStop: func(_ context.Context) error {
			runner.Stop()
			return nil
		},
	})
}
