package service

import "errors"

// ErrNotFound is wrapped by every *NotFoundError so callers can use errors.Is.
var ErrNotFound = errors.New("book not found")

// ValidationError reports a payload that breaks a book invariant. Nothing was mutated.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError reports that the requested book id does not resolve.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// InternalError reports a failure that is not the caller's fault.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string { return e.Message }
