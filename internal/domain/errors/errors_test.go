package errors

import (
	"fmt"
	"net/http"
	"testing"

	"mapic/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_StatusFollowsKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err    *BaseError
		status int
	}{
		{err: ErrPlaceNotFound, status: http.StatusNotFound},
		{err: ErrNotFriends, status: http.StatusForbidden},
		{err: ErrDuplicateCheckIn, status: http.StatusConflict},
		{err: ErrOtpRateLimited, status: http.StatusTooManyRequests},
		{err: ErrInvalidOtp, status: http.StatusBadRequest},
		{err: ErrTooFar, status: http.StatusUnprocessableEntity},
		{err: ErrPasswordTooShort, status: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.status, tt.err.HTTPCode())
		})
	}
}

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("check in: %w", ErrTooFar.WithDetails("distance 150m"))

	assert.True(t, errors.Is(err, ErrTooFar))
	assert.False(t, errors.Is(err, ErrDuplicateCheckIn))
	assert.Equal(t, KindTooFar, KindOf(err))
	assert.Contains(t, err.Error(), "distance 150m")
}

func TestKindOf_PlainError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, KindInternal, KindOf(NewDatabaseExecuteError(errors.New("boom"), "insert")))
}
