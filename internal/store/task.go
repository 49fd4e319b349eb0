package store

import (
	"context"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
// Implementations enforce no business rules: they translate between
// the Task entity and persisted rows, applying one uniform rule only —
// timestamps are stored normalized to UTC and tagged as UTC on read,
// regardless of how the underlying store represents them.
type TaskStore interface {
	// FindAll retrieves every task that has not been soft-removed,
	// ordered by ID ascending. An empty store yields an empty slice.
	FindAll(ctx context.Context) ([]*domain.Task, error)

	// FindByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist or has been
	// soft-removed; removed rows are invisible to all reads.
	FindByID(ctx context.Context, id int64) (*domain.Task, error)

	// Insert persists a new task and assigns its ID from the store.
	// The assigned ID is written back to task.ID. IDs are never reused.
	Insert(ctx context.Context, task *domain.Task) error

	// Update persists changes to an existing task in place.
	// Returns ErrTaskNotFound if no row with the task's ID exists.
	Update(ctx context.Context, task *domain.Task) error
}
