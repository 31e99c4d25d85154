package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"waterdrops/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidID.WithDetails("not-a-hex")

	assert.True(t, errors.Is(err, ErrInvalidID))
	assert.False(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "Invalid document id: not-a-hex", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessageIsStillAppError(t *testing.T) {
	wrapped := ErrStoreTimeout.WrapMessage("find orders")

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, "STORE_TIMEOUT", appErr.ErrorCode())
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to insert order")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.NotContains(t, err.Message(), "connection reset")
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
