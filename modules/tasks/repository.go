package tasks

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/example/task-tracker/domain/task"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a task is not found.
var ErrNotFound = errors.New("task not found")

// Repository provides access to task storage and composes list queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new task repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create saves a new task. The store assigns the id.
func (r *Repository) Create(task *domain.Task) error {
	if err := r.db.Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// FindByID retrieves a task by its id.
func (r *Repository) FindByID(id int64) (*domain.Task, error) {
	var task domain.Task
	if err := r.db.First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}

// List composes the query and returns the matching tasks. Precedence: the
// search filter applies first, then either the top-N ranking (priority
// ascending, most recently created first on ties, truncated to N) or the
// explicit sort. With neither, tasks come back in natural store order.
// The query must already be validated.
func (r *Repository) List(q ListQuery) ([]*domain.Task, error) {
	tx := r.db.Model(&domain.Task{})

	if q.Search != "" {
		// LIKE on a NULL description is NULL, so tasks without a
		// description never match through that column.
		pattern := "%" + strings.ToLower(q.Search) + "%"
		tx = tx.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
	}

	switch {
	case q.TopN != nil:
		// creation_time is monotone with insertion order; id breaks
		// same-instant ties the same way.
		tx = tx.Order("priority ASC, creation_time DESC, id DESC").Limit(*q.TopN)
	case q.SortBy != "":
		direction := "ASC"
		if q.Descending() {
			direction = "DESC"
		}
		tx = tx.Order(q.SortBy + " " + direction)
	}

	var found []*domain.Task
	if err := tx.Find(&found).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return found, nil
}

// Update rewrites the writable columns of the stored row. Only the listed
// columns are touched, so id and creation_time stay intact.
func (r *Repository) Update(task *domain.Task) error {
	result := r.db.Model(&domain.Task{}).Where("id = ?", task.ID).Select(
		"title", "description", "status", "priority",
	).Updates(map[string]any{
		"title":       task.Title,
		"description": task.Description,
		"status":      task.Status,
		"priority":    task.Priority,
	})
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a task by id.
func (r *Repository) Delete(id int64) error {
	result := r.db.Delete(&domain.Task{}, "id = ?", id)
	if err := result.Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
