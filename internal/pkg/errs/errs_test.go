//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"netcafe-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark(t *testing.T) {
	sentinel := errs.New("not available")
	cause := errs.New("row missing")

	t.Run("mark matches with errors.Is", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("marks stack", func(t *testing.T) {
		other := errs.New("rejected")
		err := errs.Mark(errs.Mark(cause, sentinel), other)
		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, other)
	})

	t.Run("errors.As reaches the cause through the mark", func(t *testing.T) {
		inner := &detailError{detail: "slot taken"}
		err := errs.Mark(fmt.Errorf("admission: %w", inner), sentinel)

		var target *detailError
		require.ErrorAs(t, err, &target)
		assert.Equal(t, "slot taken", target.detail)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nil error yields the mark itself", func(t *testing.T) {
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("wrap keeps the mark", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "context")
		assert.ErrorIs(t, err, sentinel)
	})
}

type detailError struct {
	detail string
}

func (e *detailError) Error() string { return e.detail }

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "context"))
}

func TestIsRegardlessOfTarget(t *testing.T) {
	sentinel := errs.New("sentinel")
	assert.False(t, errors.Is(errs.Mark(errs.New("x"), sentinel), errs.New("other")))
}
