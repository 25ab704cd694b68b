package domain

import "errors"

// Common validation errors for Task.
var (
	// ErrTitleEmpty is returned when a task title is empty or whitespace-only.
	ErrTitleEmpty = errors.New("title cannot be empty")

	// ErrUserIDRequired is returned when a task is constructed without an owner.
	ErrUserIDRequired = errors.New("user ID is required")

	// ErrInvalidStatus is returned when a status value is outside the closed set.
	ErrInvalidStatus = errors.New("invalid task status")

	// ErrInvalidPriority is returned when a priority value is outside the closed set.
	ErrInvalidPriority = errors.New("invalid task priority")
)
