package domain

import (
	"time"
	"unicode/utf8"
)

// Field length bounds enforced on every write.
const (
	MaxTitleLength    = 80
	MaxCategoryLength = 50
)

// Task represents a single tracked task.
// Tasks are never hard-deleted; MarkedAsRemoved excludes them from
// all normal reads while the row is retained for history.
type Task struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	Category        string    `json:"category"`
	IsDone          bool      `json:"is_done"`
	CreatedAt       time.Time `json:"created_at"`
	MarkedAsRemoved bool      `json:"-"` // Soft-delete flag, never exposed in JSON
}

// NewTask creates a new Task with the given title and category.
// The ID is zero until the store assigns one on insert. CreatedAt is
// set to the current time in UTC so stored timestamps never carry a
// local offset. Returns a *ValidationError if either field fails
// validation.
func NewTask(title, category string) (*Task, error) {
	task := &Task{
		Title:     title,
		Category:  category,
		IsDone:    false,
		CreatedAt: time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns a *ValidationError naming the offending field, or nil.
func (t *Task) Validate() error {
	if t.Title == "" {
		return NewValidationError("title", "cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(t.Title) > MaxTitleLength {
		return NewValidationError("title", "cannot exceed 80 characters", ErrValidation)
	}

	if t.Category == "" {
		return NewValidationError("category", "cannot be empty", ErrValidation)
	}
	if utf8.RuneCountInString(t.Category) > MaxCategoryLength {
		return NewValidationError("category", "cannot exceed 50 characters", ErrValidation)
	}

	return nil
}
