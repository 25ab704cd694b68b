package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// CreateTaskParams carries the caller-supplied fields for a new task.
// Priority defaults to medium when nil; the status is always forced to
// pending regardless of caller input.
type CreateTaskParams struct {
	Title       string
	Description *string
	Priority    *domain.TaskPriority
	DueDate     *time.Time
	UserID      int64
}

// UpdateTaskParams is a field-level patch. Optional fields distinguish
// absent (leave untouched) from explicit null (clear). Status and
// Priority are parsed at the HTTP boundary, so a nil pointer simply
// means the field was not part of the patch.
type UpdateTaskParams struct {
	Title       domain.Optional[string]
	Description domain.Optional[string]
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     domain.Optional[time.Time]
}

// TaskStats aggregates a user's tasks by status plus the overdue count.
// The three status counts partition Total; Overdue is independent of
// the partition (an in-progress task may also be overdue).
type TaskStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Overdue    int `json:"overdue"`
}

// TaskService provides task-related operations.
type TaskService interface {
	// CreateTask validates and persists a new task owned by params.UserID.
	CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error)

	// ListTasksByUser returns the user's tasks, newest first, narrowed
	// by the optional filter.
	ListTasksByUser(ctx context.Context, userID int64, filter store.TaskFilter) ([]*domain.Task, error)

	// GetTaskByID returns the task with the given ID after an ownership check.
	GetTaskByID(ctx context.Context, id, userID int64) (*domain.Task, error)

	// UpdateTask applies a field-level patch to the task after not-found
	// and ownership checks, and returns the updated task.
	UpdateTask(ctx context.Context, id, userID int64, patch UpdateTaskParams) (*domain.Task, error)

	// DeleteTask permanently removes the task after not-found and
	// ownership checks.
	DeleteTask(ctx context.Context, id, userID int64) error

	// ToggleTaskCompletion flips the task between completed and pending
	// after not-found and ownership checks, and returns the updated task.
	ToggleTaskCompletion(ctx context.Context, id, userID int64) (*domain.Task, error)

	// GetTaskStats computes status and overdue counts over all of the
	// user's tasks in a single fetch.
	GetTaskStats(ctx context.Context, userID int64) (*TaskStats, error)
}

// taskServiceImpl implements the TaskService interface.
type taskServiceImpl struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskService creates a new TaskService backed by the given store.
// It returns an error if the store is nil.
func NewTaskService(taskStore store.TaskStore, logger *slog.Logger) (TaskService, error) {
	if taskStore == nil {
		return nil, &TaskServiceError{
			Operation: "create_service",
			Message:   "taskStore cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &taskServiceImpl{
		taskStore: taskStore,
		logger:    logger.With("component", "task_service"),
	}, nil
}

// CreateTask validates the required fields, applies defaults and
// persists the new task. The store assigns the ID.
func (s *taskServiceImpl) CreateTask(
	ctx context.Context,
	params CreateTaskParams,
) (*domain.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, ErrTitleRequired
	}

	if params.UserID == 0 {
		return nil, ErrUserIDRequired
	}

	priority := domain.TaskPriorityMedium
	if params.Priority != nil {
		priority = *params.Priority
	}

	task, err := domain.NewTask(domain.NewTaskParams{
		Title:       params.Title,
		Description: params.Description,
		Status:      domain.TaskStatusPending,
		Priority:    priority,
		DueDate:     params.DueDate,
		UserID:      params.UserID,
	})
	if err != nil {
		s.logger.Error("failed to construct task",
			"error", err,
			"user_id", params.UserID)
		return nil, newTaskServiceError("create_task", "failed to construct task", err)
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		s.logger.Error("failed to persist task",
			"error", err,
			"user_id", params.UserID)
		return nil, newTaskServiceError("create_task", "failed to save task", err)
	}

	s.logger.Info("task created",
		"task_id", task.ID,
		"user_id", task.UserID,
		"priority", task.Priority)

	return task, nil
}

// ListTasksByUser returns the user's tasks, newest first.
func (s *taskServiceImpl) ListTasksByUser(
	ctx context.Context,
	userID int64,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	tasks, err := s.taskStore.FindByUser(ctx, userID, filter)
	if err != nil {
		s.logger.Error("failed to list tasks",
			"error", err,
			"user_id", userID)
		return nil, newTaskServiceError("list_tasks", "failed to list tasks", err)
	}

	return tasks, nil
}

// GetTaskByID returns the task or ErrTaskNotFound, raising
// ErrNotTaskOwner when the requester does not own it.
func (s *taskServiceImpl) GetTaskByID(ctx context.Context, id, userID int64) (*domain.Task, error) {
	return s.fetchOwnedTask(ctx, "get_task", id, userID)
}

// UpdateTask applies the patch field by field. A field absent from the
// patch is left untouched; Description and DueDate clear on explicit
// null. UpdatedAt is refreshed exactly once per update, whether or not
// any field changed.
func (s *taskServiceImpl) UpdateTask(
	ctx context.Context,
	id, userID int64,
	patch UpdateTaskParams,
) (*domain.Task, error) {
	task, err := s.fetchOwnedTask(ctx, "update_task", id, userID)
	if err != nil {
		return nil, err
	}

	if patch.Title.Set {
		if patch.Title.Value == nil || strings.TrimSpace(*patch.Title.Value) == "" {
			return nil, domain.ErrTitleEmpty
		}
		if err := task.UpdateTitle(*patch.Title.Value); err != nil {
			return nil, err
		}
	}

	if patch.Description.Set {
		task.UpdateDescription(patch.Description.Value)
	}

	if patch.Status != nil {
		task.UpdateStatus(*patch.Status)
	}

	if patch.Priority != nil {
		task.UpdatePriority(*patch.Priority)
	}

	if patch.DueDate.Set {
		task.UpdateDueDate(patch.DueDate.Value)
	}

	// Single authoritative refresh; an empty patch still bumps the
	// timestamp, matching the persisted-on-save contract.
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to save updated task",
			"error", err,
			"task_id", id,
			"user_id", userID)
		return nil, newTaskServiceError("update_task", "failed to save task", err)
	}

	s.logger.Info("task updated",
		"task_id", id,
		"user_id", userID)

	return task, nil
}

// DeleteTask permanently removes the task.
func (s *taskServiceImpl) DeleteTask(ctx context.Context, id, userID int64) error {
	if _, err := s.fetchOwnedTask(ctx, "delete_task", id, userID); err != nil {
		return err
	}

	if err := s.taskStore.Delete(ctx, id); err != nil {
		s.logger.Error("failed to delete task",
			"error", err,
			"task_id", id,
			"user_id", userID)
		return newTaskServiceError("delete_task", "failed to delete task", err)
	}

	s.logger.Info("task deleted",
		"task_id", id,
		"user_id", userID)

	return nil
}

// ToggleTaskCompletion flips a completed task back to pending and any
// other task to completed.
func (s *taskServiceImpl) ToggleTaskCompletion(
	ctx context.Context,
	id, userID int64,
) (*domain.Task, error) {
	task, err := s.fetchOwnedTask(ctx, "toggle_task", id, userID)
	if err != nil {
		return nil, err
	}

	if task.IsCompleted() {
		task.UpdateStatus(domain.TaskStatusPending)
	} else {
		task.UpdateStatus(domain.TaskStatusCompleted)
	}

	if err := s.taskStore.Update(ctx, task); err != nil {
		s.logger.Error("failed to save toggled task",
			"error", err,
			"task_id", id,
			"user_id", userID)
		return nil, newTaskServiceError("toggle_task", "failed to save task", err)
	}

	s.logger.Info("task completion toggled",
		"task_id", id,
		"user_id", userID,
		"status", task.Status)

	return task, nil
}

// GetTaskStats fetches the user's tasks once and derives all five
// counts from that single result set.
func (s *taskServiceImpl) GetTaskStats(ctx context.Context, userID int64) (*TaskStats, error) {
	tasks, err := s.taskStore.FindByUser(ctx, userID, store.TaskFilter{})
	if err != nil {
		s.logger.Error("failed to fetch tasks for stats",
			"error", err,
			"user_id", userID)
		return nil, newTaskServiceError("get_task_stats", "failed to fetch tasks", err)
	}

	stats := &TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		switch task.Status {
		case domain.TaskStatusCompleted:
			stats.Completed++
		case domain.TaskStatusPending:
			stats.Pending++
		case domain.TaskStatusInProgress:
			stats.InProgress++
		}
		if task.IsOverdue() {
			stats.Overdue++
		}
	}

	return stats, nil
}

// fetchOwnedTask retrieves a task and verifies ownership. Not-found and
// ownership mismatch stay distinct errors.
func (s *taskServiceImpl) fetchOwnedTask(
	ctx context.Context,
	operation string,
	id, userID int64,
) (*domain.Task, error) {
	task, err := s.taskStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.logger.Error("failed to retrieve task",
				"error", err,
				"task_id", id,
				"user_id", userID)
		}
		return nil, newTaskServiceError(operation, "failed to retrieve task", err)
	}

	if task.UserID != userID {
		s.logger.Warn("ownership check failed",
			"task_id", id,
			"owner_id", task.UserID,
			"user_id", userID)
		return nil, ErrNotTaskOwner
	}

	return task, nil
}
