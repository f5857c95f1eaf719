//go:build unit

package statuscache_test

import (
	"context"
	"testing"
	"time"

	"netcafe-booking/internal/infra/statuscache"
	"netcafe-booking/internal/pkg/clock"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCache(t *testing.T) (*statuscache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return statuscache.NewCache(client, clock.NewRealClock()), mr
}

func TestMarkReserved(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()
	pcID := uuid.New()

	require.NoError(t, cache.MarkReserved(ctx, pcID, time.Now().Add(2*time.Hour)))

	reserved, err := cache.IsReserved(ctx, pcID)
	require.NoError(t, err)
	assert.True(t, reserved)

	// The hint self-heals once the reservation window has elapsed.
	mr.FastForward(3 * time.Hour)
	reserved, err = cache.IsReserved(ctx, pcID)
	require.NoError(t, err)
	assert.False(t, reserved)
}

func TestMarkReservedUsesInjectedClock(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	cache := statuscache.NewCache(client, clock.NewMockClock(base))
	pcID := uuid.New()

	// TTL comes from the injected clock, not the wall clock.
	require.NoError(t, cache.MarkReserved(context.Background(), pcID, base.Add(2*time.Hour)))
	assert.Equal(t, 2*time.Hour, mr.TTL("pc:status:"+pcID.String()))
}

func TestMarkReservedInPast(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()
	pcID := uuid.New()

	require.NoError(t, cache.MarkReserved(ctx, pcID, time.Now().Add(-time.Minute)))

	reserved, err := cache.IsReserved(ctx, pcID)
	require.NoError(t, err)
	assert.False(t, reserved)
}

func TestClear(t *testing.T) {
	cache, _ := newCache(t)
	ctx := context.Background()
	pcID := uuid.New()

	require.NoError(t, cache.MarkReserved(ctx, pcID, time.Now().Add(time.Hour)))
	require.NoError(t, cache.Clear(ctx, pcID))

	reserved, err := cache.IsReserved(ctx, pcID)
	require.NoError(t, err)
	assert.False(t, reserved)

	// Clearing an absent hint is a no-op.
	assert.NoError(t, cache.Clear(ctx, uuid.New()))
}
