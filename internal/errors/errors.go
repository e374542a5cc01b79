// Package errors provides the domain error kinds shared by every module.
// Use cases return these (usually wrapped with context) and the HTTP layer
// maps them onto status codes, so handlers never inspect driver errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Domain error kinds.
var (
	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a conflict with existing data (e.g., duplicate email).
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput indicates a bad parameter supplied by the caller.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized indicates a missing or wrong bearer credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the caller is not allowed in, e.g. its address is not allow-listed.
	ErrForbidden = errors.New("forbidden")
)

// New creates a new error with the given message.
func New(message string) error {
	return errors.New(message)
}

// Wrap wraps an error with additional context while preserving the error chain.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Message returns the caller-facing part of an error built with Wrap on top of
// kind, i.e. the text without the trailing ": <kind>" suffix.
func Message(err, kind error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if kind == nil {
		return msg
	}
	return strings.TrimSuffix(msg, ": "+kind.Error())
}
