// Package apperrors defines the error kinds shared by all skills.
//
// Each kind is a sentinel usable with errors.Is; the wrapped Error
// carries the exact message that becomes the payload text.
package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotFound indicates that a referenced record does not exist for the caller.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates an attempt to create a record that already exists.
var ErrConflict = errors.New("already exists")

// Error pairs an error kind with a user-facing message.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

// Validation returns a validation error with the given payload message.
func Validation(msg string) error {
	return &Error{kind: ErrValidation, msg: msg}
}

// NotFound returns a not-found error with the given payload message.
func NotFound(msg string) error {
	return &Error{kind: ErrNotFound, msg: msg}
}

// Conflict returns a conflict error with the given payload message.
func Conflict(msg string) error {
	return &Error{kind: ErrConflict, msg: msg}
}
