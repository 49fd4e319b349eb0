package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// PostgresTaskStore implements the store.TaskStore interface using PostgreSQL.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgresTaskStore.
// It accepts a database handle that should be initialized and managed by the caller.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	return &PostgresTaskStore{
		db: db,
	}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// FindAll implements store.TaskStore.FindAll.
// Soft-removed rows are filtered out in the query itself, and results
// come back ordered by id so listings are stable.
func (s *PostgresTaskStore) FindAll(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, category, is_done, created_at, marked_as_removed
		FROM tasks
		WHERE marked_as_removed = FALSE
		ORDER BY id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query tasks", "error", err)
		return nil, storeError("find_all", "query failed", err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", "error", err)
			return nil, storeError("find_all", "row scan failed", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating task rows", "error", err)
		return nil, storeError("find_all", "row iteration failed", err)
	}

	return tasks, nil
}

// FindByID implements store.TaskStore.FindByID.
// Returns store.ErrTaskNotFound when no matching non-removed row exists.
func (s *PostgresTaskStore) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, title, category, is_done, created_at, marked_as_removed
		FROM tasks
		WHERE id = $1 AND marked_as_removed = FALSE
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		log.Error("failed to query task by id",
			"task_id", id,
			"error", err)
		return nil, storeError("find_by_id", "query failed", err)
	}

	return task, nil
}

// Insert implements store.TaskStore.Insert.
// The database assigns the id; it is written back into the entity.
func (s *PostgresTaskStore) Insert(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	query := `
		INSERT INTO tasks (title, category, is_done, created_at, marked_as_removed)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		task.Title,
		task.Category,
		task.IsDone,
		task.CreatedAt.UTC(),
		task.MarkedAsRemoved,
	).Scan(&task.ID)

	if err != nil {
		log.Error("failed to insert task", "error", err)
		return storeError("insert", "insert failed", err)
	}

	return nil
}

// Update implements store.TaskStore.Update.
// Updates the row in place; the id and created_at columns are immutable.
func (s *PostgresTaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	query := `
		UPDATE tasks
		SET title = $1, category = $2, is_done = $3, marked_as_removed = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Title,
		task.Category,
		task.IsDone,
		task.MarkedAsRemoved,
		task.ID,
	)
	if err != nil {
		log.Error("failed to update task",
			"task_id", task.ID,
			"error", err)
		return storeError("update", "update failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			"task_id", task.ID,
			"error", err)
		return storeError("update", "rows affected unavailable", err)
	}

	if rowsAffected == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// storeError wraps a driver failure with the entity and operation that hit it.
func storeError(operation, message string, err error) error {
	return &store.StoreError{
		Entity:    "task",
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask maps one row onto a Task, tagging created_at as UTC so the
// in-memory representation never carries the session timezone.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Category,
		&task.IsDone,
		&task.CreatedAt,
		&task.MarkedAsRemoved,
	)
	if err != nil {
		return nil, err
	}

	task.CreatedAt = task.CreatedAt.UTC()
	return &task, nil
}
