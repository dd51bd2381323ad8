// Package apperrors defines the typed errors shared by the repository,
// service and handler layers.  Every domain failure carries a Kind so that
// handlers can pick the HTTP status without inspecting messages.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error.
type Kind string

const (
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = "NOT_FOUND"
	// KindInvalidRange means a date range is empty or inverted.
	KindInvalidRange Kind = "INVALID_RANGE"
	// KindConflict means the request cannot be satisfied in the current
	// state, e.g. not enough free rooms or a dependent record exists.
	KindConflict Kind = "CONFLICT"
	// KindValidation means the request payload is malformed.
	KindValidation Kind = "VALIDATION"
)

// Error is the application error type.  Entity and ID are set for
// NotFound errors and identify the missing record.
type Error struct {
	Kind    Kind
	Entity  string
	ID      uint64
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.  It lets
// callers match with errors.Is(err, apperrors.ErrNotFound).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Entity == "" && t.Message == ""
}

// Sentinels for errors.Is matching by kind.
var (
	ErrNotFound     = &Error{Kind: KindNotFound}
	ErrInvalidRange = &Error{Kind: KindInvalidRange}
	ErrConflict     = &Error{Kind: KindConflict}
	ErrValidation   = &Error{Kind: KindValidation}
)

// NotFound reports that entity with the given id does not exist.
func NotFound(entity string, id uint64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Entity:  entity,
		ID:      id,
		Message: fmt.Sprintf("%s %d not found", entity, id),
	}
}

// NotFoundf is NotFound for entities not addressed by numeric id.
func NotFoundf(entity, format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, Message: fmt.Sprintf(format, args...)}
}

// InvalidRange reports an empty or inverted date range.
func InvalidRange(message string) *Error {
	return &Error{Kind: KindInvalidRange, Message: message}
}

// Conflict reports a state conflict.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Validation reports a malformed request.
func Validation(message string, err error) *Error {
	return &Error{Kind: KindValidation, Message: message, Err: err}
}
