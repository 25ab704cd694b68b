package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/service"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not task owner", service.ErrNotTaskOwner, http.StatusForbidden},
		{"service not found", service.ErrTaskNotFound, http.StatusNotFound},
		{"store not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"title required", service.ErrTitleRequired, http.StatusBadRequest},
		{"user ID required", service.ErrUserIDRequired, http.StatusBadRequest},
		{"title empty", domain.ErrTitleEmpty, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"invalid priority", domain.ErrInvalidPriority, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestMapErrorToStatusCode_Wrapped(t *testing.T) {
	t.Parallel()

	// Wrapped sentinels still map through errors.Is
	wrapped := fmt.Errorf("operation failed: %w", service.ErrNotTaskOwner)
	assert.Equal(t, http.StatusForbidden, MapErrorToStatusCode(wrapped))

	svcErr := &service.TaskServiceError{
		Operation: "create_task",
		Message:   "failed to save task",
		Err:       errors.New("connection refused"),
	}
	assert.Equal(t, http.StatusInternalServerError, MapErrorToStatusCode(svcErr))
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"not task owner", service.ErrNotTaskOwner, "You do not own this task"},
		{"not found", service.ErrTaskNotFound, "Task not found"},
		{"title required", service.ErrTitleRequired, "Title is required"},
		{"user ID required", service.ErrUserIDRequired, "User ID is required"},
		{"title empty", domain.ErrTitleEmpty, "Title cannot be empty"},
		{"invalid status", domain.ErrInvalidStatus, "Invalid task status"},
		{"invalid priority", domain.ErrInvalidPriority, "Invalid task priority"},
		{"invalid entity", store.ErrInvalidEntity, "Invalid task data"},
		{
			"internal details never leak",
			errors.New("pq: connection to server at 10.0.0.5 failed"),
			"An unexpected error occurred",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}
