package model

import (
	"errors"
	"fmt"
)

// ErrIDsExhausted is returned when the id counter cannot advance any further.
var ErrIDsExhausted = errors.New("no todo ids left to assign")

// NotFoundError indicates that no todo exists with the given ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo #%d not found", e.ID)
}

// ValidationError indicates rejected input.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	return e.Message
}

// StorageError indicates that todo state could not be written to or read
// from its backing store.
type StorageError struct {
	Op   string // "save", "open", ...
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
