package errs

import (
	"errors"
	"net/http"
	"testing"

	"github.com/pranavratheesh/portfolio-backend/validation"
	"github.com/stretchr/testify/assert"
)

func TestNewDatabaseErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		cause      error
		wantStatus int
	}{
		{"unique violation maps to conflict", errors.New(`UNIQUE constraint failed: tags.slug`), http.StatusConflict},
		{"duplicate key maps to conflict", errors.New(`duplicate key value violates unique constraint "tags_slug_key"`), http.StatusConflict},
		{"foreign key violation maps to bad request", errors.New(`insert or update violates foreign key constraint`), http.StatusBadRequest},
		{"record not found maps to not found", errors.New("record not found"), http.StatusNotFound},
		{"connection failure maps to service unavailable", errors.New("connection refused"), http.StatusServiceUnavailable},
		{"anything else is internal", errors.New("syntax error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDatabaseError("create", "tag", tt.cause)
			assert.Equal(t, tt.wantStatus, err.StatusCode)
			assert.NotNil(t, err.Cause)
		})
	}
}

func TestValidationErrorCarriesViolations(t *testing.T) {
	violations := validation.Violations{
		{Field: "name", Rule: validation.RuleRequired, Message: "name is required"},
	}
	err := NewValidationError(violations)

	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.True(t, IsValidationFailure(err))
	assert.Len(t, err.Violations, 1)
	assert.Contains(t, err.Error(), "name is required")
}

func TestSentinelUnwrapping(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("project")))
	assert.True(t, IsNotFound(NewNotFoundError("project missing")))
	assert.True(t, IsBadRequest(NewBadRequestError("bad payload")))
	assert.True(t, IsUnauthorized(NewUnauthorizedError("no token")))
	assert.False(t, IsNotFound(NewBadRequestError("bad payload")))
}

func TestGetFullErrorChainsCauses(t *testing.T) {
	inner := errors.New("disk full")
	err := NewStorageError("write upload file", inner)
	assert.Contains(t, err.GetFullError(), "disk full")
}
