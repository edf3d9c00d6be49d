package tasks

import (
	"context"
	"time"

	domain "github.com/example/task-tracker/domain/task"
)

const (
	// DefaultStatus is stored when a request leaves status unset.
	DefaultStatus = "pending"
	// DefaultPriority is stored when a request leaves priority unset.
	DefaultPriority = 1
)

// TaskService holds the task business logic above the repository.
type TaskService struct {
	repo *Repository
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *Repository) *TaskService {
	return &TaskService{repo: repo}
}

// applyFields replaces the writable fields of a task from the request,
// defaulting absent status and priority. The field list is fixed on purpose:
// id and creation_time can never be smuggled in through an update payload.
func applyFields(task *domain.Task, fields TaskFields) {
	task.Title = fields.Title
	task.Description = fields.Description

	task.Status = DefaultStatus
	if fields.Status != nil {
		task.Status = *fields.Status
	}

	task.Priority = DefaultPriority
	if fields.Priority != nil {
		task.Priority = *fields.Priority
	}
}

// Create stores a new task. The service assigns creation_time, the store
// assigns the id; everything else is taken verbatim from the request.
func (s *TaskService) Create(_ context.Context, fields TaskFields) (*domain.Task, error) {
	task := &domain.Task{
		CreationTime: time.Now(),
	}
	applyFields(task, fields)

	if err := s.repo.Create(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Get retrieves a task by id.
func (s *TaskService) Get(_ context.Context, id int64) (*domain.Task, error) {
	return s.repo.FindByID(id)
}

// List validates the query and returns the composed result set.
func (s *TaskService) List(_ context.Context, q ListQuery) ([]*domain.Task, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return s.repo.List(q)
}

// Update full-replaces the writable fields of an existing task, preserving
// id and creation_time.
func (s *TaskService) Update(_ context.Context, id int64, fields TaskFields) (*domain.Task, error) {
	task, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	applyFields(task, fields)

	if err := s.repo.Update(task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task by id.
func (s *TaskService) Delete(_ context.Context, id int64) error {
	return s.repo.Delete(id)
}
