package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	domain "github.com/example/task-tracker/domain/task"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TasksModule provides task storage and the query composer.
type TasksModule struct {
	db      *gorm.DB
	service *TaskService
	dbPath  string
}

// Compile-time interface checks.
var _ mono.Module = (*TasksModule)(nil)
var _ mono.ServiceProviderModule = (*TasksModule)(nil)
var _ mono.HealthCheckableModule = (*TasksModule)(nil)

// NewModule creates a new TasksModule.
func NewModule() *TasksModule {
	dbPath := os.Getenv("TASKS_DB_PATH")
	if dbPath == "" {
		dbPath = "tasks.db"
	}
	return &TasksModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *TasksModule) Name() string {
	return "tasks"
}

// Start initializes the tasks module.
func (m *TasksModule) Start(_ context.Context) error {
	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := db.AutoMigrate(&domain.Task{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	m.service = NewTaskService(NewRepository(db))

	log.Printf("[tasks] Module started (database: %s)", m.dbPath)
	return nil
}

// Stop shuts down the module.
func (m *TasksModule) Stop(_ context.Context) error {
	if m.db != nil {
		sqlDB, err := m.db.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
	log.Println("[tasks] Module stopped")
	return nil
}

// Health returns the health status of the module.
func (m *TasksModule) Health(_ context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get database connection: %v", err),
		}
	}

	if err := sqlDB.Ping(); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"database": m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
func (m *TasksModule) RegisterServices(container mono.ServiceContainer) error {
	services := map[string]func() error{
		"task.create": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "task.create", json.Unmarshal, json.Marshal, m.createTask)
		},
		"task.get": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "task.get", json.Unmarshal, json.Marshal, m.getTask)
		},
		"task.list": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "task.list", json.Unmarshal, json.Marshal, m.listTasks)
		},
		"task.update": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "task.update", json.Unmarshal, json.Marshal, m.updateTask)
		},
		"task.delete": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "task.delete", json.Unmarshal, json.Marshal, m.deleteTask)
		},
	}

	for name, register := range services {
		if err := register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
	}

	log.Printf("[tasks] Registered services: task.create, task.get, task.list, task.update, task.delete")
	return nil
}

// createTask handles the task.create service request.
func (m *TasksModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.service.Create(ctx, req.TaskFields)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// getTask handles the task.get service request.
func (m *TasksModule) getTask(ctx context.Context, req GetTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.service.Get(ctx, req.ID)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// listTasks handles the task.list service request.
func (m *TasksModule) listTasks(ctx context.Context, req ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	found, err := m.service.List(ctx, ListQuery{
		Search: req.Search,
		SortBy: req.SortBy,
		Order:  req.Order,
		TopN:   req.TopN,
	})
	if err != nil {
		return ListTasksResponse{}, err
	}

	resp := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(found)),
		Total: len(found),
	}
	for _, task := range found {
		resp.Tasks = append(resp.Tasks, toTaskResponse(task))
	}
	return resp, nil
}

// updateTask handles the task.update service request.
func (m *TasksModule) updateTask(ctx context.Context, req UpdateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	task, err := m.service.Update(ctx, req.ID, req.TaskFields)
	if err != nil {
		return TaskResponse{}, err
	}
	return toTaskResponse(task), nil
}

// deleteTask handles the task.delete service request.
func (m *TasksModule) deleteTask(ctx context.Context, req DeleteTaskRequest, _ *mono.Msg) (DeleteTaskResponse, error) {
	if err := m.service.Delete(ctx, req.ID); err != nil {
		return DeleteTaskResponse{}, err
	}
	return DeleteTaskResponse{ID: req.ID}, nil
}
