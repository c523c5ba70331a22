package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Prashgeek/attendance-tracking-system/internal/errors"
	"github.com/stretchr/testify/assert"
)

func TestHasCode(t *testing.T) {
	err := errors.NotFound("User not found")
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	assert.False(t, errors.HasCode(err, errors.CodeConflict))

	// Wrapped errors still expose their code.
	wrapped := fmt.Errorf("handling request: %w", err)
	assert.True(t, errors.HasCode(wrapped, errors.CodeNotFound))

	assert.False(t, errors.HasCode(errors.New("plain"), errors.CodeNotFound))
	assert.False(t, errors.HasCode(nil, errors.CodeNotFound))
}

func TestToHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, errors.ToHTTPStatus(errors.CodeAccountLocked))
	assert.Equal(t, http.StatusUnauthorized, errors.ToHTTPStatus(errors.CodeInvalidCredentials))
	assert.Equal(t, http.StatusInternalServerError, errors.ToHTTPStatus("SOMETHING_ELSE"))
}

func TestInternalHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := errors.Internal(cause)

	assert.Equal(t, "Server error", err.Message())
	assert.ErrorIs(t, err, cause)
}
