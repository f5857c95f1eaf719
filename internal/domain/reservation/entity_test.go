//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"netcafe-booking/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newActive(t *testing.T, startOffset, endOffset time.Duration) *reservation.Reservation {
	t.Helper()
	res, err := reservation.NewReservation(uuid.New(), uuid.New(), slot(t, startOffset, endOffset), base)
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	res := newActive(t, time.Hour, 3*time.Hour)

	assert.NotEqual(t, uuid.Nil, res.ID())
	assert.Equal(t, reservation.StatusActive, res.Status())
	assert.Equal(t, 2, res.TotalHours())
	assert.Equal(t, base, res.CreatedAt())

	_, err := reservation.NewReservation(uuid.Nil, uuid.New(), slot(t, 0, time.Hour), base)
	assert.ErrorIs(t, err, reservation.ErrInvalidReservation)
}

func TestReservationCancel(t *testing.T) {
	t.Run("before start succeeds", func(t *testing.T) {
		res := newActive(t, 2*time.Hour, 4*time.Hour)
		require.NoError(t, res.Cancel(base.Add(time.Hour)))
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("at start time is too late", func(t *testing.T) {
		res := newActive(t, 2*time.Hour, 4*time.Hour)
		err := res.Cancel(base.Add(2 * time.Hour))
		assert.ErrorIs(t, err, reservation.ErrAlreadyStarted)
		assert.Equal(t, reservation.StatusActive, res.Status())
	})

	t.Run("after start is too late", func(t *testing.T) {
		res := newActive(t, 2*time.Hour, 4*time.Hour)
		assert.ErrorIs(t, res.Cancel(base.Add(3*time.Hour)), reservation.ErrAlreadyStarted)
	})

	t.Run("cancelled twice", func(t *testing.T) {
		res := newActive(t, 2*time.Hour, 4*time.Hour)
		require.NoError(t, res.Cancel(base))
		assert.ErrorIs(t, res.Cancel(base), reservation.ErrNotActive)
	})

	t.Run("completed reservation", func(t *testing.T) {
		res := newActive(t, 0, time.Hour)
		require.NoError(t, res.Complete(base.Add(time.Hour)))
		assert.ErrorIs(t, res.Cancel(base), reservation.ErrNotActive)
	})
}

func TestReservationComplete(t *testing.T) {
	res := newActive(t, 0, time.Hour)

	require.NoError(t, res.Complete(base.Add(time.Hour)))
	assert.Equal(t, reservation.StatusCompleted, res.Status())
	assert.ErrorIs(t, res.Complete(base.Add(time.Hour)), reservation.ErrNotActive)
}

func TestReservationExpiry(t *testing.T) {
	res := newActive(t, 0, 2*time.Hour)

	assert.False(t, res.IsExpiredAt(base.Add(time.Hour)))
	assert.True(t, res.IsExpiredAt(base.Add(2*time.Hour)))
	assert.True(t, res.IsExpiredAt(base.Add(3*time.Hour)))
}

func TestReservationOwnership(t *testing.T) {
	owner := uuid.New()
	res, err := reservation.NewReservation(uuid.New(), owner, slot(t, 0, time.Hour), base)
	require.NoError(t, err)

	assert.True(t, res.IsOwnedBy(owner))
	assert.False(t, res.IsOwnedBy(uuid.New()))
}
