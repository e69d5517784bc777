package repository

import "errors"

// Common repository errors
var (
	// ErrTaskNotFound is returned when a task is missing or the conditional write matched no row
	ErrTaskNotFound = errors.New("task not found")

	// ErrUserNotFound is returned when a user update matched no row
	ErrUserNotFound = errors.New("user not found")
)
