package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a required input that was nil or empty.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks a lookup for an id that has no stored record.
	ErrNotFound = errors.New("not found")
)

// ArgumentError reports a missing required argument.
type ArgumentError struct {
	Message string
}

// InvalidArgument returns an ArgumentError with the given message.
func InvalidArgument(msg string) error {
	return &ArgumentError{Message: msg}
}

func (e *ArgumentError) Error() string { return e.Message }

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// NotFoundError reports that no employee exists for ID.
// Its message is part of the public API and must not change.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Employee not found for ID %s", e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
