package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
)

// TaskPort defines the interface other modules use to access task operations.
type TaskPort interface {
	Create(ctx context.Context, fields TaskFields) (TaskResponse, error)
	Get(ctx context.Context, id int64) (TaskResponse, error)
	List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error)
	Update(ctx context.Context, id int64, fields TaskFields) (TaskResponse, error)
	Delete(ctx context.Context, id int64) (DeleteTaskResponse, error)
}

// TaskAdapter implements TaskPort using the service container.
type TaskAdapter struct {
	container mono.ServiceContainer
}

// NewTaskAdapter creates a new TaskAdapter.
func NewTaskAdapter(container mono.ServiceContainer) *TaskAdapter {
	return &TaskAdapter{
		container: container,
	}
}

func call[T1, T2 any](ctx context.Context, a *TaskAdapter, service string, req *T1, resp *T2) error {
	if err := helper.CallRequestReplyService(
		ctx,
		a.container,
		service,
		json.Marshal,
		json.Unmarshal,
		req,
		resp,
	); err != nil {
		return fmt.Errorf("%s request failed: %w", service, err)
	}
	return nil
}

// Create creates a task.
func (a *TaskAdapter) Create(ctx context.Context, fields TaskFields) (TaskResponse, error) {
	req := CreateTaskRequest{TaskFields: fields}
	var resp TaskResponse
	err := call(ctx, a, "task.create", &req, &resp)
	return resp, err
}

// Get retrieves a task by id.
func (a *TaskAdapter) Get(ctx context.Context, id int64) (TaskResponse, error) {
	req := GetTaskRequest{ID: id}
	var resp TaskResponse
	err := call(ctx, a, "task.get", &req, &resp)
	return resp, err
}

// List returns the composed result set for the given query parameters.
func (a *TaskAdapter) List(ctx context.Context, req ListTasksRequest) (ListTasksResponse, error) {
	var resp ListTasksResponse
	err := call(ctx, a, "task.list", &req, &resp)
	return resp, err
}

// Update replaces a task's writable fields.
func (a *TaskAdapter) Update(ctx context.Context, id int64, fields TaskFields) (TaskResponse, error) {
	req := UpdateTaskRequest{ID: id, TaskFields: fields}
	var resp TaskResponse
	err := call(ctx, a, "task.update", &req, &resp)
	return resp, err
}

// Delete removes a task by id.
func (a *TaskAdapter) Delete(ctx context.Context, id int64) (DeleteTaskResponse, error) {
	req := DeleteTaskRequest{ID: id}
	var resp DeleteTaskResponse
	err := call(ctx, a, "task.delete", &req, &resp)
	return resp, err
}
