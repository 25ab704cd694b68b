package store

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskFilter narrows the result of FindByUser. A nil Status or Priority
// means "no constraint", not "match empty". When OverdueOnly is true,
// only tasks whose due date is strictly in the past and whose status is
// not completed are returned. Filters combine with logical AND.
type TaskFilter struct {
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	OverdueOnly bool
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store and assigns its ID.
	// It handles domain validation internally and returns validation
	// errors from the domain Task if the data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// FindByUser retrieves the tasks owned by the given user, newest
	// first (by creation time), optionally narrowed by filter.
	// Returns an empty slice if no tasks match.
	FindByUser(ctx context.Context, userID int64, filter TaskFilter) ([]*domain.Task, error)

	// Update saves changes to an existing task.
	// Returns ErrTaskNotFound if the task does not exist.
	// Returns validation errors if the task data is invalid.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task from the store.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
