package api

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/example/task-tracker/modules/auth"
	"github.com/example/task-tracker/modules/tasks"
	"github.com/gofiber/fiber/v2"
)

// Handlers contains HTTP handlers for the API.
type Handlers struct {
	authPort    auth.AuthPort
	taskAdapter tasks.TaskPort
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(authPort auth.AuthPort, taskAdapter tasks.TaskPort) *Handlers {
	return &Handlers{
		authPort:    authPort,
		taskAdapter: taskAdapter,
	}
}

// Register handles user registration.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Username and password are required",
		})
	}

	resp, err := h.authPort.Register(c.UserContext(), auth.RegisterRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(UserResponse{
		ID:       resp.ID,
		Username: resp.Username,
	})
}

// Login handles user login and returns a bearer token.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	// Empty credentials fall through to the credential check, so the failure
	// stays the same uniform 401 a wrong password gets.
	resp, err := h.authPort.Login(c.UserContext(), auth.LoginRequest{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.handleAuthError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(TokenResponse{
		AccessToken: resp.AccessToken,
		TokenType:   resp.TokenType,
		ExpiresIn:   resp.ExpiresIn,
	})
}

// CreateTask handles task creation. The auth middleware has already resolved
// the current user.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var fields tasks.TaskFields
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	task, err := h.taskAdapter.Create(c.UserContext(), fields)
	if err != nil {
		return h.handleTaskError(c, err, false)
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

// ListTasks handles the declarative task listing.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	req := tasks.ListTasksRequest{
		Search: c.Query("search"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order", "asc"),
	}

	if raw := c.Query("top_n"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error:   "bad_request",
				Message: "top_n must be an integer",
			})
		}
		req.TopN = &n
	}

	resp, err := h.taskAdapter.List(c.UserContext(), req)
	if err != nil {
		return h.handleTaskError(c, err, false)
	}

	return c.Status(fiber.StatusOK).JSON(resp.Tasks)
}

// GetTask handles fetching a single task.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	id, ok := h.taskID(c)
	if !ok {
		return nil
	}

	task, err := h.taskAdapter.Get(c.UserContext(), id)
	if err != nil {
		return h.handleTaskError(c, err, false)
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

// UpdateTask handles a full replace of a task's writable fields.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	id, ok := h.taskID(c)
	if !ok {
		return nil
	}

	var fields tasks.TaskFields
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Invalid request body",
		})
	}

	// Update-on-missing-id answers 400, unlike get/delete. Kept as part of
	// the external contract.
	task, err := h.taskAdapter.Update(c.UserContext(), id, fields)
	if err != nil {
		return h.handleTaskError(c, err, true)
	}

	return c.Status(fiber.StatusOK).JSON(task)
}

// DeleteTask handles task deletion.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	id, ok := h.taskID(c)
	if !ok {
		return nil
	}

	resp, err := h.taskAdapter.Delete(c.UserContext(), id)
	if err != nil {
		return h.handleTaskError(c, err, false)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{
		Message: fmt.Sprintf("Task with id %d deleted", resp.ID),
	})
}

// taskID parses the :id route parameter. On failure it writes the response
// itself and reports false.
func (h *Handlers) taskID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Task id must be an integer",
		})
		return 0, false
	}
	return id, true
}

// handleAuthError maps auth service errors to HTTP responses. Errors arrive
// flattened to strings across the service container, so they are matched by
// message.
func (h *Handlers) handleAuthError(c *fiber.Ctx, err error) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "username already registered"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Username already registered",
		})
	case strings.Contains(errStr, "incorrect username or password"):
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "Incorrect username or password",
		})
	case strings.Contains(errStr, "username must not be empty"):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: "Username must not be empty",
		})
	default:
		// Log the actual error but don't expose it to the client
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}

// handleTaskError maps task service errors to HTTP responses. notFoundAs400
// preserves the update quirk: a missing id answers 400 there, 404 elsewhere.
func (h *Handlers) handleTaskError(c *fiber.Ctx, err error, notFoundAs400 bool) error {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "task not found"):
		status := fiber.StatusNotFound
		kind := "not_found"
		if notFoundAs400 {
			status = fiber.StatusBadRequest
			kind = "bad_request"
		}
		return c.Status(status).JSON(ErrorResponse{
			Error:   kind,
			Message: "Task with this id does not exist",
		})
	case strings.Contains(errStr, "invalid argument"):
		// Strip the adapter and sentinel prefixes; the tail names the
		// offending parameter ("top_n must be positive", ...).
		message := errStr
		if idx := strings.LastIndex(errStr, "invalid argument: "); idx >= 0 {
			message = errStr[idx+len("invalid argument: "):]
		}
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error:   "bad_request",
			Message: message,
		})
	default:
		log.Printf("[api] Internal error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}
