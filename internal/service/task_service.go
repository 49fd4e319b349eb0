package service

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/phrazzld/tasklist-api/internal/domain"
	"github.com/phrazzld/tasklist-api/internal/platform/logger"
	"github.com/phrazzld/tasklist-api/internal/store"
)

// TaskService provides task-related operations
type TaskService interface {
	// ListTasks retrieves all tasks that have not been soft-removed,
	// ordered by id ascending. An empty store yields an empty slice.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// AddTask validates the title and category, persists a new task and
	// returns the assigned id. Returns a *domain.ValidationError naming
	// the failing field when validation fails; no write occurs in that case.
	AddTask(ctx context.Context, title, category string) (int64, error)

	// ToggleTaskStatus flips the done flag of a non-removed task and
	// returns the new value. Returns ErrTaskNotFound when the id does
	// not exist or the task has been removed.
	ToggleTaskStatus(ctx context.Context, id int64) (bool, error)

	// RemoveTask soft-deletes a non-removed task. The task never
	// reappears in listings afterwards, and a second call for the same
	// id returns ErrTaskNotFound.
	RemoveTask(ctx context.Context, id int64) error
}

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService.
// It returns an error if the store dependency is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, domain.NewValidationError("taskStore", "cannot be nil", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_service")),
	}, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("fetching all tasks",
		slog.Int(eventCodeKey, EventListTasksStarted))

	tasks, err := s.taskStore.FindAll(ctx)
	if err != nil {
		log.Error("failed to fetch tasks",
			slog.Int(eventCodeKey, EventStoreFailure),
			slog.String("error", err.Error()))
		return nil, NewTaskServiceError("list_tasks", "failed to fetch tasks", err)
	}

	log.Info("retrieved tasks",
		slog.Int(eventCodeKey, EventListTasksCompleted),
		slog.Int("count", len(tasks)))

	return tasks, nil
}

// AddTask implements TaskService.AddTask
func (s *taskServiceImpl) AddTask(ctx context.Context, title, category string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	start := time.Now()

	// Entry log carries field sizes, not raw content
	log.Debug("attempting to add task",
		slog.Int(eventCodeKey, EventAddTaskStarted),
		slog.Int("title_length", utf8.RuneCountInString(title)),
		slog.Int("category_length", utf8.RuneCountInString(category)))

	task, err := domain.NewTask(title, category)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			log.Warn("task validation failed",
				slog.Int(eventCodeKey, EventAddTaskValidationFailed),
				slog.String("field", validationErr.Field))
			return 0, validationErr
		}
		return 0, NewTaskServiceError("add_task", "validation failed", err)
	}

	if err := s.taskStore.Insert(ctx, task); err != nil {
		log.Error("failed to persist task",
			slog.Int(eventCodeKey, EventStoreFailure),
			slog.String("error", err.Error()))
		return 0, NewTaskServiceError("add_task", "failed to persist task", err)
	}

	log.Info("task added",
		slog.Int(eventCodeKey, EventAddTaskCompleted),
		slog.Int64("task_id", task.ID),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	return task.ID, nil
}

// ToggleTaskStatus implements TaskService.ToggleTaskStatus
func (s *taskServiceImpl) ToggleTaskStatus(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	start := time.Now()

	log.Debug("toggling task status",
		slog.Int(eventCodeKey, EventToggleTaskStarted),
		slog.Int64("task_id", id))

	task, err := s.taskStore.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("task not found or removed",
				slog.Int(eventCodeKey, EventToggleTaskNotFound),
				slog.Int64("task_id", id))
			return false, ErrTaskNotFound
		}
		log.Error("failed to look up task",
			slog.Int(eventCodeKey, EventStoreFailure),
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return false, NewTaskServiceError("toggle_task_status", "failed to look up task", err)
	}

	task.IsDone = !task.IsDone

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to persist task status",
			slog.Int(eventCodeKey, EventStoreFailure),
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return false, NewTaskServiceError("toggle_task_status", "failed to persist task status", err)
	}

	log.Info("task status updated",
		slog.Int(eventCodeKey, EventToggleTaskCompleted),
		slog.Int64("task_id", id),
		slog.Bool("is_done", task.IsDone),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	return task.IsDone, nil
}

// RemoveTask implements TaskService.RemoveTask
func (s *taskServiceImpl) RemoveTask(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)
	start := time.Now()

	log.Debug("attempting to remove task",
		slog.Int(eventCodeKey, EventRemoveTaskStarted),
		slog.Int64("task_id", id))

	task, err := s.taskStore.FindByID(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Warn("task not found for removal",
				slog.Int(eventCodeKey, EventRemoveTaskNotFound),
				slog.Int64("task_id", id))
			return ErrTaskNotFound
		}
		log.Error("failed to look up task",
			slog.Int(eventCodeKey, EventStoreFailure),
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return NewTaskServiceError("remove_task", "failed to look up task", err)
	}

	task.MarkedAsRemoved = true

	if err := s.taskStore.Update(ctx, task); err != nil {
		log.Error("failed to persist task removal",
			slog.Int(eventCodeKey, EventStoreFailure),
			slog.Int64("task_id", id),
			slog.String("error", err.Error()))
		return NewTaskServiceError("remove_task", "failed to persist task removal", err)
	}

	log.Info("task marked as removed",
		slog.Int(eventCodeKey, EventRemoveTaskCompleted),
		slog.Int64("task_id", id),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	return nil
}
