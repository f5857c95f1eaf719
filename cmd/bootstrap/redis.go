package bootstrap

import (
	"context"

	"netcafe-booking/internal/infra/statuscache"
	"netcafe-booking/internal/pkg/config"
	"netcafe-booking/internal/usecase/commands"
	"netcafe-booking/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		fx.Annotate(
			statuscache.NewCache,
			fx.As(new(commands.StatusCache)),
			fx.As(new(queries.StatusHint)),
		),
	),
)

func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, err := statuscache.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}
