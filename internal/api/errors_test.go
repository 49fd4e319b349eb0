package api

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/phrazzld/tasklist-api/internal/api/shared"
	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/service"
	"github.com/phrazzld/tasklist-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"service not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store not found", store.ErrTaskNotFound, http.StatusNotFound},
		{
			"validation error",
			domain.NewValidationError("title", "cannot be empty", domain.ErrValidation),
			http.StatusBadRequest,
		},
		{"invalid id", domain.ErrInvalidID, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	})

	t.Run("not found", func(t *testing.T) {
		assert.Equal(t, "Task not found", GetSafeErrorMessage(service.ErrTaskNotFound))
	})

	t.Run("validation error surfaces field and rule", func(t *testing.T) {
		err := domain.NewValidationError("category", "cannot exceed 50 characters", domain.ErrValidation)
		msg := GetSafeErrorMessage(err)
		assert.Contains(t, msg, "category")
		assert.Contains(t, msg, "cannot exceed 50 characters")
	})

	t.Run("internal detail is hidden", func(t *testing.T) {
		err := errors.New("dial tcp 10.0.0.5:5432: connection refused")
		assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(err))
	})
}

func TestSanitizeValidationError(t *testing.T) {
	t.Run("names the failing field and rule", func(t *testing.T) {
		err := shared.ValidateRequest(AddTaskRequest{Title: "", Category: "Shopping"})
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Contains(t, msg, "title")
		assert.Contains(t, msg, "required")
		// The submitted value never appears in the message.
		assert.NotContains(t, msg, "Shopping")
	})

	t.Run("length violation names the field", func(t *testing.T) {
		err := shared.ValidateRequest(AddTaskRequest{
			Title:    strings.Repeat("x", 81),
			Category: "Shopping",
		})
		require.Error(t, err)

		msg := SanitizeValidationError(err)
		assert.Contains(t, msg, "title")
		assert.Contains(t, msg, "max")
	})

	t.Run("non-validator error falls back to a generic message", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("boom")))
	})
}
