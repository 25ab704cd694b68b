package service

import (
	"errors"
	"fmt"

	"github.com/taskdeck/taskdeck-api/internal/store"
)

// Common sentinel errors for TaskService.
var (
	// ErrTitleRequired indicates a create request with an empty or missing title.
	ErrTitleRequired = errors.New("title is required")

	// ErrUserIDRequired indicates a create request without an owning user.
	ErrUserIDRequired = errors.New("user ID is required")

	// ErrTaskNotFound indicates that no task with the given ID exists.
	ErrTaskNotFound = errors.New("task not found")

	// ErrNotTaskOwner indicates that the task exists but belongs to a
	// different user. Deliberately distinct from ErrTaskNotFound: callers
	// can tell a private task exists without seeing its contents.
	ErrNotTaskOwner = errors.New("task does not belong to the requesting user")
)

// TaskServiceError wraps errors from the task service with context.
type TaskServiceError struct {
	// Operation is the operation that failed (e.g. "create_task").
	Operation string
	// Message is a human-readable description of the error.
	Message string
	// Err is the underlying error that caused the failure.
	Err error
}

// Error implements the error interface for TaskServiceError.
func (e *TaskServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("task service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("task service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *TaskServiceError) Unwrap() error {
	return e.Err
}

// newTaskServiceError creates a new TaskServiceError. Known sentinel
// errors pass through unwrapped so callers can match them directly.
func newTaskServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, ErrNotTaskOwner) {
		return err
	}

	// Map store-level sentinels to service-level ones.
	if errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	return &TaskServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
