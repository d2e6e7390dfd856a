package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies every failure the API can report. The set is closed:
// repositories and services only ever return one of these kinds, and the
// mapping to HTTP status codes lives in StatusCode alone.
type Kind int

const (
	BadRequest Kind = iota
	NotFound
	ConstraintViolation
	Unauthorized
	Internal
)

// Error is the error type returned across the repository, service, and
// handler layers.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // underlying cause, not exposed to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to an Error of the given kind.
func Wrap(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the kind of err, defaulting to Internal for anything that
// is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// StatusCode is the single place where error kinds become HTTP statuses.
func StatusCode(err error) int {
	switch KindOf(err) {
	case BadRequest:
		return fiber.StatusBadRequest
	case NotFound:
		return fiber.StatusNotFound
	case ConstraintViolation:
		return fiber.StatusConflict
	case Unauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

// Message returns the client-facing message for err. Internal errors are
// reported generically so persistence details never leak into responses.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != Internal {
		return e.Msg
	}
	return "internal server error"
}
