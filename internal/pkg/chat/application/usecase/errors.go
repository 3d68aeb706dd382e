package usecase

import "errors"

// Failure taxonomy surfaced by chat use cases. Controllers translate these
// to HTTP statuses; nothing here is retried automatically.
var (
	// ErrInvalidInput marks a missing or malformed required field.
	ErrInvalidInput = errors.New("chat use case: invalid input")

	// ErrNotFound marks a chat record that is absent or not owned by the caller.
	ErrNotFound = errors.New("chat use case: chat not found")

	// ErrUpstream marks a completion-provider failure (unreachable or erroring).
	ErrUpstream = errors.New("chat use case: completion provider failure")

	// ErrPersistence indicates an infrastructure/repository failure inside a use case.
	ErrPersistence = errors.New("chat use case persistence error")
)
