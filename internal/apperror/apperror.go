package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so that handlers can pick a response status
// without string-matching on messages.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindValidation
	KindPersistence
)

// Error is the error type returned by all services in this module.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message == "" {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ===========================
// Constructors

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Persistence wraps a store write/read failure. Batch operations treat it
// as fatal for the whole batch.
func Persistence(err error) *Error {
	return &Error{Kind: KindPersistence, Message: fmt.Sprintf("persistence failure: %v", err), Err: err}
}

// ===========================
// Inspection helpers

// KindOf reports the kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsConflict(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindConflict
}

// PublicMessage returns the error text safe to expose in a response body.
// Persistence failures and untyped errors carry store internals in their
// message, so they collapse to a generic line; the cause stays available
// through Unwrap for logging.
func PublicMessage(err error) string {
	k, ok := KindOf(err)
	if !ok || k == KindPersistence {
		return "internal server error"
	}
	return err.Error()
}

// HTTPStatus maps an error to the response status the handlers use.
// Unknown errors are treated as internal failures.
func HTTPStatus(err error) int {
	switch k, ok := KindOf(err); {
	case !ok:
		return http.StatusInternalServerError
	case k == KindNotFound:
		return http.StatusNotFound
	case k == KindConflict:
		return http.StatusConflict
	case k == KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
