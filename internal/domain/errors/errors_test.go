package errors

import (
	"net/http"
	"testing"

	"lostfound/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrLoadFailed.WithDetails("zones")

	assert.True(t, errors.Is(err, ErrLoadFailed))
	assert.False(t, errors.Is(err, ErrListingNotFound))
	assert.Equal(t, "failed to load: zones", err.Error())
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
}

func TestBaseError_WrappedIsStillAppError(t *testing.T) {
	wrapped := errors.Wrap(ErrInvalidTransition, "transition listing")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_TRANSITION", appErr.ErrorCode())
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert delivery logs")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "insert delivery logs", err.Details())
}

func TestToErrorInfo(t *testing.T) {
	info := ToErrorInfo(ErrForbidden)
	assert.Equal(t, "FORBIDDEN", info.Code)
	assert.Nil(t, info.Details)

	info = ToErrorInfo(ErrValidationFailed.WithDetails("event is required"))
	assert.Equal(t, "event is required", info.Details)
}
