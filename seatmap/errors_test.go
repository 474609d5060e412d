package seatmap

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := newError(KindRowNotFound, nil, "row %d", 9)
	wrapped := fmt.Errorf("resolving seat: %w", err)

	assert.True(t, errors.Is(wrapped, ErrRowNotFound))
	assert.False(t, errors.Is(wrapped, ErrSeatNotFound))
	assert.Equal(t, KindRowNotFound, KindOf(wrapped))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
}

func TestError_Message(t *testing.T) {
	cause := errors.New("unexpected status 503")
	err := newError(KindLayoutUnavailable, cause, "cinema %s session %s", "BAL", "1")

	assert.Equal(t, "LayoutUnavailable: cinema BAL session 1: unexpected status 503", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "SeatNotFound", ErrSeatNotFound.Error())
}
