//go:build unit

package pc_test

import (
	"testing"
	"time"

	"netcafe-booking/internal/domain/pc"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

var specs = pc.Specs{CPU: "Ryzen 7 7800X3D", GPU: "RTX 4070", RAM: "32GB", Monitor: "27in 240Hz"}

func TestNewPC(t *testing.T) {
	p, err := pc.NewPC(uuid.New(), 12, specs, 800, now)
	require.NoError(t, err)
	assert.Equal(t, pc.StatusAvailable, p.Status())
	assert.Equal(t, int64(800), p.HourlyRateCents())
	assert.Zero(t, p.RatingCount())

	_, err = pc.NewPC(uuid.Nil, 1, specs, 800, now)
	assert.ErrorIs(t, err, pc.ErrNoRoom)

	_, err = pc.NewPC(uuid.New(), 0, specs, 800, now)
	assert.ErrorIs(t, err, pc.ErrInvalidNumber)

	_, err = pc.NewPC(uuid.New(), 1, specs, -1, now)
	assert.ErrorIs(t, err, pc.ErrInvalidRate)
}

func TestIsBookable(t *testing.T) {
	p, err := pc.NewPC(uuid.New(), 1, specs, 800, now)
	require.NoError(t, err)

	assert.True(t, p.IsBookable())

	// A reserved hint does not block admission.
	require.NoError(t, p.Update(1, specs, 800, pc.StatusReserved, now))
	assert.True(t, p.IsBookable())

	require.NoError(t, p.Update(1, specs, 800, pc.StatusDisabled, now))
	assert.False(t, p.IsBookable())
}

func TestApplyRating(t *testing.T) {
	p, err := pc.NewPC(uuid.New(), 1, specs, 800, now)
	require.NoError(t, err)

	p.ApplyRating(5, now)
	assert.Equal(t, 1, p.RatingCount())
	assert.InDelta(t, 5.0, p.RatingAvg(), 1e-9)

	p.ApplyRating(2, now)
	assert.Equal(t, 2, p.RatingCount())
	assert.InDelta(t, 3.5, p.RatingAvg(), 1e-9)

	p.ApplyRating(4, now)
	assert.Equal(t, 3, p.RatingCount())
	assert.InDelta(t, 11.0/3.0, p.RatingAvg(), 1e-9)
}
