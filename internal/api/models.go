package api

import (
	"time"

	"github.com/phrazzld/tasklist-api/internal/domain"
)

// AddTaskRequest represents the request body for creating a task.
// Length bounds mirror the domain rules so obviously-bad requests are
// rejected before reaching the service.
type AddTaskRequest struct {
	Title    string `json:"title"    validate:"required,max=80"`
	Category string `json:"category" validate:"required,max=50"`
}

// AddTaskResponse represents the response for a created task.
type AddTaskResponse struct {
	ID int64 `json:"id"`
}

// TaskResponse represents the response data for a single task.
type TaskResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
}

// ToggleTaskResponse represents the response for a toggled task.
type ToggleTaskResponse struct {
	ID     int64 `json:"id"`
	IsDone bool  `json:"is_done"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:        task.ID,
		Title:     task.Title,
		Category:  task.Category,
		IsDone:    task.IsDone,
		CreatedAt: task.CreatedAt,
	}
}
