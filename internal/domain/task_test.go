package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Run("valid task", func(t *testing.T) {
		task, err := domain.NewTask("Buy milk", "Shopping")

		require.NoError(t, err)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, "Shopping", task.Category)
		assert.False(t, task.IsDone)
		assert.False(t, task.MarkedAsRemoved)
		assert.Zero(t, task.ID)
	})

	t.Run("created at is current UTC time", func(t *testing.T) {
		before := time.Now().UTC()
		task, err := domain.NewTask("Buy milk", "Shopping")
		after := time.Now().UTC()

		require.NoError(t, err)
		assert.Equal(t, time.UTC, task.CreatedAt.Location())
		assert.False(t, task.CreatedAt.Before(before))
		assert.False(t, task.CreatedAt.After(after))
	})

	t.Run("boundary lengths are accepted", func(t *testing.T) {
		task, err := domain.NewTask(strings.Repeat("x", 80), strings.Repeat("y", 50))

		require.NoError(t, err)
		assert.Len(t, task.Title, 80)
		assert.Len(t, task.Category, 50)
	})
}

func TestTaskValidate(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		category  string
		wantField string
	}{
		{
			name:      "empty title",
			title:     "",
			category:  "Shopping",
			wantField: "title",
		},
		{
			name:      "title too long",
			title:     strings.Repeat("x", 81),
			category:  "Shopping",
			wantField: "title",
		},
		{
			name:      "empty category",
			title:     "Buy milk",
			category:  "",
			wantField: "category",
		},
		{
			name:      "category too long",
			title:     "Buy milk",
			category:  strings.Repeat("y", 51),
			wantField: "category",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewTask(tt.title, tt.category)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)

			var validationErr *domain.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("error message includes field and rule", func(t *testing.T) {
		err := domain.NewValidationError("title", "cannot be empty", domain.ErrValidation)

		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("unwraps to sentinel", func(t *testing.T) {
		err := domain.NewValidationError("title", "cannot be empty", domain.ErrValidation)

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
