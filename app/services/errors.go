package services

import (
	"errors"
	"fmt"
)

// ErrNotFound is matched by every NotFoundError.
var ErrNotFound = errors.New("not found")

// NotFoundError reports a missing row. Its message is client facing.
type NotFoundError struct {
	Resource string
	ID       uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError is a rejected request. Its message is client facing.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
