//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"netcafe-booking/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func slot(t *testing.T, startOffset, endOffset time.Duration) reservation.TimeSlot {
	t.Helper()
	ts, err := reservation.NewTimeSlot(base.Add(startOffset), base.Add(endOffset))
	require.NoError(t, err)
	return ts
}

func TestNewTimeSlot(t *testing.T) {
	t.Run("valid slot", func(t *testing.T) {
		ts, err := reservation.NewTimeSlot(base, base.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, base, ts.Start())
		assert.Equal(t, base.Add(2*time.Hour), ts.End())
		assert.Equal(t, 2*time.Hour, ts.Duration())
		assert.Equal(t, 2, ts.Hours())
	})

	t.Run("start equals end", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base, base)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := reservation.NewTimeSlot(base.Add(time.Hour), base)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeSlot)
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		jst := time.FixedZone("JST", 9*3600)
		ts, err := reservation.NewTimeSlot(base.In(jst), base.Add(time.Hour).In(jst))
		require.NoError(t, err)
		assert.Equal(t, time.UTC, ts.Start().Location())
		assert.True(t, ts.Start().Equal(base))
	})
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     reservation.Interval
		overlaps bool
	}{
		{
			name:     "identical intervals",
			a:        reservation.Interval{Start: base, End: base.Add(2 * time.Hour)},
			b:        reservation.Interval{Start: base, End: base.Add(2 * time.Hour)},
			overlaps: true,
		},
		{
			name:     "partial overlap",
			a:        reservation.Interval{Start: base, End: base.Add(2 * time.Hour)},
			b:        reservation.Interval{Start: base.Add(time.Hour), End: base.Add(3 * time.Hour)},
			overlaps: true,
		},
		{
			name:     "contained interval",
			a:        reservation.Interval{Start: base, End: base.Add(4 * time.Hour)},
			b:        reservation.Interval{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)},
			overlaps: true,
		},
		{
			name:     "back to back does not overlap",
			a:        reservation.Interval{Start: base, End: base.Add(2 * time.Hour)},
			b:        reservation.Interval{Start: base.Add(2 * time.Hour), End: base.Add(4 * time.Hour)},
			overlaps: false,
		},
		{
			name:     "disjoint intervals",
			a:        reservation.Interval{Start: base, End: base.Add(time.Hour)},
			b:        reservation.Interval{Start: base.Add(3 * time.Hour), End: base.Add(4 * time.Hour)},
			overlaps: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := reservation.Interval{Start: base, End: base.Add(2 * time.Hour)}

	assert.True(t, iv.Contains(base))
	assert.True(t, iv.Contains(base.Add(time.Hour)))
	assert.False(t, iv.Contains(base.Add(2*time.Hour)))
	assert.False(t, iv.Contains(base.Add(-time.Second)))
}

func TestMoney(t *testing.T) {
	t.Run("valid amount", func(t *testing.T) {
		m, err := reservation.NewMoney(4800)
		require.NoError(t, err)
		assert.Equal(t, int64(4800), m.Cents())
	})

	t.Run("negative amount", func(t *testing.T) {
		_, err := reservation.NewMoney(-1)
		assert.Error(t, err)
	})

	t.Run("add", func(t *testing.T) {
		a, _ := reservation.NewMoney(100)
		b, _ := reservation.NewMoney(250)
		assert.Equal(t, int64(350), a.Add(b).Cents())
	})
}

func TestPolicy(t *testing.T) {
	policy := reservation.Policy{
		Granularity: time.Hour,
		Horizon:     30 * 24 * time.Hour,
	}

	t.Run("interval checks", func(t *testing.T) {
		now := base

		assert.NoError(t, policy.ValidateInterval(slot(t, 0, time.Hour), now))
		assert.NoError(t, policy.ValidateInterval(slot(t, time.Hour, 2*time.Hour), now))
		assert.ErrorIs(t, policy.ValidateInterval(slot(t, -time.Hour, time.Hour), now), reservation.ErrStartInPast)
		assert.ErrorIs(t,
			policy.ValidateInterval(slot(t, 31*24*time.Hour, 32*24*time.Hour), now),
			reservation.ErrBeyondHorizon)

		// The end is bounded too: starting inside the horizon does not let
		// the slot spill past it.
		assert.ErrorIs(t,
			policy.ValidateInterval(slot(t, 29*24*time.Hour, 39*24*time.Hour), now),
			reservation.ErrBeyondHorizon)
		assert.NoError(t, policy.ValidateInterval(slot(t, 29*24*time.Hour, 30*24*time.Hour), now))
	})

	t.Run("duration checks", func(t *testing.T) {
		assert.NoError(t, policy.ValidateDuration(slot(t, 0, time.Hour)))
		assert.NoError(t, policy.ValidateDuration(slot(t, 0, 3*time.Hour)))
		assert.ErrorIs(t, policy.ValidateDuration(slot(t, 0, 30*time.Minute)), reservation.ErrDurationTooShort)
		assert.ErrorIs(t, policy.ValidateDuration(slot(t, 0, 90*time.Minute)), reservation.ErrNotSlotAligned)
	})
}
