package tasks

import (
	"time"

	domain "github.com/example/task-tracker/domain/task"
)

// TaskFields is the writable portion of a task, shared by create and update.
// Status and Priority are pointers so an absent field can take its default
// ("pending", 1) while an explicit empty or zero value is stored verbatim.
type TaskFields struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *int    `json:"priority"`
}

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	TaskFields
}

// GetTaskRequest is the request for getting a task.
type GetTaskRequest struct {
	ID int64 `json:"id"`
}

// ListTasksRequest carries the declarative query parameters.
type ListTasksRequest struct {
	Search string `json:"search,omitempty"`
	SortBy string `json:"sort_by,omitempty"`
	Order  string `json:"order,omitempty"`
	TopN   *int   `json:"top_n,omitempty"`
}

// UpdateTaskRequest is the request for replacing a task's writable fields.
type UpdateTaskRequest struct {
	ID int64 `json:"id"`
	TaskFields
}

// DeleteTaskRequest is the request for deleting a task.
type DeleteTaskRequest struct {
	ID int64 `json:"id"`
}

// DeleteTaskResponse is the response after deleting a task.
type DeleteTaskResponse struct {
	ID int64 `json:"id"`
}

// TaskResponse represents a task in responses.
type TaskResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  *string   `json:"description"`
	Status       string    `json:"status"`
	Priority     int       `json:"priority"`
	CreationTime time.Time `json:"creation_time"`
}

// ListTasksResponse is the response containing the composed result set.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// toTaskResponse converts a Task entity to a TaskResponse.
func toTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		Priority:     task.Priority,
		CreationTime: task.CreationTime,
	}
}
