package statuscache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"netcafe-booking/internal/pkg/clock"
	"netcafe-booking/internal/pkg/config"
	"netcafe-booking/internal/pkg/errs"
)

const keyPrefix = "pc:status:"

// Cache keeps a short-lived "reserved right now" hint per PC in Redis. The
// reservation ledger stays authoritative; losing or lagging this cache only
// degrades the browse view.
type Cache struct {
	client *redis.Client
	clock  clock.Clock
}

func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	return client, nil
}

func NewCache(client *redis.Client, clk clock.Clock) *Cache {
	return &Cache{client: client, clock: clk}
}

// MarkReserved stores the hint with a TTL reaching the reservation's end, so
// a missed clear self-heals.
func (c *Cache) MarkReserved(ctx context.Context, pcID uuid.UUID, until time.Time) error {
	ttl := until.Sub(c.clock.Now())
	if ttl <= 0 {
		return nil
	}
	if err := c.client.Set(ctx, keyPrefix+pcID.String(), "reserved", ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to set status hint")
	}
	return nil
}

func (c *Cache) Clear(ctx context.Context, pcID uuid.UUID) error {
	if err := c.client.Del(ctx, keyPrefix+pcID.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to clear status hint")
	}
	return nil
}

// IsReserved reads the hint; absence means not reserved.
func (c *Cache) IsReserved(ctx context.Context, pcID uuid.UUID) (bool, error) {
	_, err := c.client.Get(ctx, keyPrefix+pcID.String()).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errs.Wrap(err, "failed to read status hint")
	}
	return true, nil
}
