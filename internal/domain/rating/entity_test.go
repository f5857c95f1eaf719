//go:build unit

package rating_test

import (
	"strings"
	"testing"
	"time"

	"netcafe-booking/internal/domain/rating"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	r, err := rating.NewRating(uuid.New(), uuid.New(), 4, "  smooth rig  ", now)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Stars())
	assert.Equal(t, "smooth rig", r.Comment())

	for _, stars := range []int{0, 6, -1} {
		_, err := rating.NewRating(uuid.New(), uuid.New(), stars, "", now)
		assert.ErrorIs(t, err, rating.ErrInvalidStars)
	}

	_, err = rating.NewRating(uuid.New(), uuid.New(), 3, strings.Repeat("a", 1001), now)
	assert.ErrorIs(t, err, rating.ErrCommentTooLong)
}
