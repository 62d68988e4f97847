package errors

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorKeepsTypedErrors(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", Clone(ErrNotFound, "exercise not found"))

	appErr := FromError(wrapped)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "exercise not found", appErr.Message)
}

func TestFromErrorDefaultsToInternal(t *testing.T) {
	appErr := FromError(sql.ErrConnDone)
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.ErrorIs(t, appErr, sql.ErrConnDone)
	assert.Nil(t, FromError(nil))
}

func TestCloneLeavesOriginalUntouched(t *testing.T) {
	clone := Clone(ErrConflict, "email already registered")
	assert.Equal(t, "conflict", ErrConflict.Message)
	assert.True(t, Is(clone, ErrConflict))
	assert.False(t, Is(clone, ErrNotFound))
}
