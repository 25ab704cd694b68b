package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Possible task status values. Transitions between them are unrestricted;
// any status may be set from any other by an explicit update.
const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskPriority represents the urgency of a task.
type TaskPriority string

// Possible task priority values.
const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// ParseTaskStatus converts an untrusted string into a TaskStatus.
// Returns ErrInvalidStatus if the string is not one of the closed set.
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !isValidTaskStatus(status) {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ParseTaskPriority converts an untrusted string into a TaskPriority.
// Returns ErrInvalidPriority if the string is not one of the closed set.
func ParseTaskPriority(s string) (TaskPriority, error) {
	priority := TaskPriority(s)
	if !isValidTaskPriority(priority) {
		return "", ErrInvalidPriority
	}
	return priority, nil
}

func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	default:
		return false
	}
}

func isValidTaskPriority(priority TaskPriority) bool {
	switch priority {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// Task represents a unit of work owned by exactly one user.
// The ID is assigned by the store on creation.
type Task struct {
	ID          int64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	UserID      int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTaskParams carries the fields for constructing a Task. Title and
// UserID are required; Description and DueDate may be nil. Status and
// Priority must be set explicitly by the caller: the entity applies no
// defaults, that responsibility belongs to the service layer.
type NewTaskParams struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	UserID      int64
}

// NewTask creates a new Task from the given params, trimming the title
// and setting the creation/update timestamps.
// Returns an error if validation fails.
func NewTask(params NewTaskParams) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       strings.TrimSpace(params.Title),
		Description: params.Description,
		Status:      params.Status,
		Priority:    params.Priority,
		DueDate:     params.DueDate,
		UserID:      params.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleEmpty
	}

	if t.UserID == 0 {
		return ErrUserIDRequired
	}

	if !isValidTaskStatus(t.Status) {
		return ErrInvalidStatus
	}

	if !isValidTaskPriority(t.Priority) {
		return ErrInvalidPriority
	}

	return nil
}

// IsOverdue reports whether the task is past its due date. A task with
// no due date is never overdue, and a completed task is never overdue
// regardless of its due date.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(time.Now()) && t.Status != TaskStatusCompleted
}

// IsCompleted reports whether the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// UpdateTitle trims and assigns a new title and refreshes UpdatedAt.
// Returns ErrTitleEmpty if the new title is empty or whitespace-only.
func (t *Task) UpdateTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return ErrTitleEmpty
	}
	t.Title = trimmed
	t.touch()
	return nil
}

// UpdateStatus assigns a new status and refreshes UpdatedAt. The status
// is expected to have been parsed at the system boundary.
func (t *Task) UpdateStatus(status TaskStatus) {
	t.Status = status
	t.touch()
}

// UpdatePriority assigns a new priority and refreshes UpdatedAt.
func (t *Task) UpdatePriority(priority TaskPriority) {
	t.Priority = priority
	t.touch()
}

// UpdateDescription assigns a new description and refreshes UpdatedAt.
// A nil description clears the field.
func (t *Task) UpdateDescription(description *string) {
	t.Description = description
	t.touch()
}

// UpdateDueDate assigns a new due date and refreshes UpdatedAt.
// A nil due date clears the field.
func (t *Task) UpdateDueDate(dueDate *time.Time) {
	t.DueDate = dueDate
	t.touch()
}

func (t *Task) touch() {
	t.UpdatedAt = time.Now().UTC()
}

// taskRecord is the serialized wire representation of a Task. The field
// names are a contract shared with the frontend and must not change.
// The owning user ID is deliberately not exposed.
type taskRecord struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"dueDate"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	IsOverdue   bool         `json:"isOverdue"`
	IsCompleted bool         `json:"isCompleted"`
}

// MarshalJSON serializes the task as a plain record, including the
// derived IsOverdue and IsCompleted flags.
func (t *Task) MarshalJSON() ([]byte, error) {
	return json.Marshal(taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		IsOverdue:   t.IsOverdue(),
		IsCompleted: t.IsCompleted(),
	})
}
