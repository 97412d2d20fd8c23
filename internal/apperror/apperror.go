// Package apperror defines the failure kinds surfaced by the services. Each
// error carries the client-facing message and matches its kind with errors.Is.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrConflict   = errors.New("conflict")
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrUpstream   = errors.New("upstream failure")
)

type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func Conflict(message string) *Error {
	return &Error{Kind: ErrConflict, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Kind: ErrBadRequest, Message: message}
}

// Upstream wraps a classifier failure, keeping its text as the message.
func Upstream(err error) *Error {
	return &Error{Kind: ErrUpstream, Message: err.Error(), Err: err}
}

// StatusCode maps an error kind to its HTTP status. Unknown errors are 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrConflict), errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
