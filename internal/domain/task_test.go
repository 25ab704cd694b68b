package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewTask(t *testing.T) {
	t.Parallel() // Enable parallel execution
	due := time.Now().Add(24 * time.Hour)
	desc := "write the quarterly report"

	task, err := NewTask(NewTaskParams{
		Title:       "  Quarterly report  ",
		Description: &desc,
		Status:      TaskStatusPending,
		Priority:    TaskPriorityHigh,
		DueDate:     &due,
		UserID:      42,
	})

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if task.Title != "Quarterly report" {
		t.Errorf("Expected trimmed title %q, got %q", "Quarterly report", task.Title)
	}

	if task.Description == nil || *task.Description != desc {
		t.Errorf("Expected description %q, got %v", desc, task.Description)
	}

	if task.Status != TaskStatusPending {
		t.Errorf("Expected status %s, got %s", TaskStatusPending, task.Status)
	}

	if task.Priority != TaskPriorityHigh {
		t.Errorf("Expected priority %s, got %s", TaskPriorityHigh, task.Priority)
	}

	if task.UserID != 42 {
		t.Errorf("Expected user ID 42, got %d", task.UserID)
	}

	if task.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if task.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test empty title
	_, err = NewTask(NewTaskParams{
		Title:    "   ",
		Status:   TaskStatusPending,
		Priority: TaskPriorityMedium,
		UserID:   42,
	})
	if err != ErrTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTitleEmpty, err)
	}

	// Test missing user ID
	_, err = NewTask(NewTaskParams{
		Title:    "Quarterly report",
		Status:   TaskStatusPending,
		Priority: TaskPriorityMedium,
	})
	if err != ErrUserIDRequired {
		t.Errorf("Expected error %v, got %v", ErrUserIDRequired, err)
	}
}

func TestTaskValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	validTask := Task{
		Title:    "Test task",
		Status:   TaskStatusPending,
		Priority: TaskPriorityMedium,
		UserID:   1,
	}

	// Test valid task
	if err := validTask.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid Title
	invalidTask := validTask
	invalidTask.Title = ""
	if err := invalidTask.Validate(); err != ErrTitleEmpty {
		t.Errorf("Expected error %v, got %v", ErrTitleEmpty, err)
	}

	// Test invalid UserID
	invalidTask = validTask
	invalidTask.UserID = 0
	if err := invalidTask.Validate(); err != ErrUserIDRequired {
		t.Errorf("Expected error %v, got %v", ErrUserIDRequired, err)
	}

	// Test invalid Status
	invalidTask = validTask
	invalidTask.Status = "invalid_status"
	if err := invalidTask.Validate(); err != ErrInvalidStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidStatus, err)
	}

	// Test invalid Priority
	invalidTask = validTask
	invalidTask.Priority = "urgent"
	if err := invalidTask.Validate(); err != ErrInvalidPriority {
		t.Errorf("Expected error %v, got %v", ErrInvalidPriority, err)
	}
}

func TestParseTaskStatus(t *testing.T) {
	t.Parallel() // Enable parallel execution
	for _, valid := range []string{"pending", "in_progress", "completed"} {
		status, err := ParseTaskStatus(valid)
		if err != nil {
			t.Errorf("Expected no error for %q, got %v", valid, err)
		}
		if string(status) != valid {
			t.Errorf("Expected status %q, got %q", valid, status)
		}
	}

	for _, invalid := range []string{"", "done", "PENDING", "in-progress"} {
		if _, err := ParseTaskStatus(invalid); err != ErrInvalidStatus {
			t.Errorf("Expected error %v for %q, got %v", ErrInvalidStatus, invalid, err)
		}
	}
}

func TestParseTaskPriority(t *testing.T) {
	t.Parallel() // Enable parallel execution
	for _, valid := range []string{"low", "medium", "high"} {
		priority, err := ParseTaskPriority(valid)
		if err != nil {
			t.Errorf("Expected no error for %q, got %v", valid, err)
		}
		if string(priority) != valid {
			t.Errorf("Expected priority %q, got %q", valid, priority)
		}
	}

	for _, invalid := range []string{"", "urgent", "HIGH"} {
		if _, err := ParseTaskPriority(invalid); err != ErrInvalidPriority {
			t.Errorf("Expected error %v for %q, got %v", ErrInvalidPriority, invalid, err)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	t.Parallel() // Enable parallel execution
	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	cases := []struct {
		name    string
		dueDate *time.Time
		status  TaskStatus
		want    bool
	}{
		{"no due date", nil, TaskStatusPending, false},
		{"future due date", &future, TaskStatusPending, false},
		{"past due date pending", &past, TaskStatusPending, true},
		{"past due date in progress", &past, TaskStatusInProgress, true},
		{"past due date completed", &past, TaskStatusCompleted, false},
		{"no due date completed", nil, TaskStatusCompleted, false},
	}

	for _, tc := range cases {
		task := Task{
			Title:    "Test task",
			Status:   tc.status,
			Priority: TaskPriorityMedium,
			DueDate:  tc.dueDate,
			UserID:   1,
		}
		if got := task.IsOverdue(); got != tc.want {
			t.Errorf("%s: expected IsOverdue %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestIsCompleted(t *testing.T) {
	t.Parallel() // Enable parallel execution
	task := Task{Title: "Test task", Status: TaskStatusPending, Priority: TaskPriorityLow, UserID: 1}

	if task.IsCompleted() {
		t.Error("Expected pending task not to be completed")
	}

	task.Status = TaskStatusCompleted
	if !task.IsCompleted() {
		t.Error("Expected completed task to be completed")
	}
}

func TestUpdateTitle(t *testing.T) {
	t.Parallel() // Enable parallel execution
	task := Task{Title: "Old title", Status: TaskStatusPending, Priority: TaskPriorityMedium, UserID: 1}

	origUpdatedAt := task.UpdatedAt
	if err := task.UpdateTitle("  New title  "); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	if task.Title != "New title" {
		t.Errorf("Expected trimmed title %q, got %q", "New title", task.Title)
	}

	if !task.UpdatedAt.After(origUpdatedAt) {
		t.Error("Expected UpdatedAt to be refreshed")
	}

	// Empty and whitespace-only titles are rejected and leave the task unchanged
	for _, bad := range []string{"", "   "} {
		if err := task.UpdateTitle(bad); err != ErrTitleEmpty {
			t.Errorf("Expected error %v for %q, got %v", ErrTitleEmpty, bad, err)
		}
		if task.Title != "New title" {
			t.Errorf("Expected title to remain %q, got %q", "New title", task.Title)
		}
	}
}

func TestUpdateDescriptionAndDueDate(t *testing.T) {
	t.Parallel() // Enable parallel execution
	desc := "details"
	due := time.Now().Add(time.Hour)
	task := Task{
		Title:       "Test task",
		Description: &desc,
		Status:      TaskStatusPending,
		Priority:    TaskPriorityMedium,
		DueDate:     &due,
		UserID:      1,
	}

	task.UpdateDescription(nil)
	if task.Description != nil {
		t.Errorf("Expected description to be cleared, got %v", *task.Description)
	}

	task.UpdateDueDate(nil)
	if task.DueDate != nil {
		t.Errorf("Expected due date to be cleared, got %v", *task.DueDate)
	}
}

func TestTaskMarshalJSON(t *testing.T) {
	t.Parallel() // Enable parallel execution
	past := time.Now().Add(-time.Hour)
	task := Task{
		ID:       7,
		Title:    "Test task",
		Status:   TaskStatusInProgress,
		Priority: TaskPriorityHigh,
		DueDate:  &past,
		UserID:   42,
	}

	data, err := json.Marshal(&task)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	var record map[string]interface{}
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("Expected valid JSON, got %v", err)
	}

	for _, key := range []string{
		"id", "title", "description", "status", "priority",
		"dueDate", "createdAt", "updatedAt", "isOverdue", "isCompleted",
	} {
		if _, ok := record[key]; !ok {
			t.Errorf("Expected key %q in serialized task", key)
		}
	}

	// The owning user is never serialized
	if _, ok := record["userId"]; ok {
		t.Error("Expected userId to be excluded from serialized task")
	}

	if record["isOverdue"] != true {
		t.Errorf("Expected isOverdue true, got %v", record["isOverdue"])
	}

	if record["isCompleted"] != false {
		t.Errorf("Expected isCompleted false, got %v", record["isCompleted"])
	}
}
