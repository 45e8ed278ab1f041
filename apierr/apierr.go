// Package apierr classifies request failures so handlers can map them to
// HTTP status codes in one place.
package apierr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindValidation  Kind = iota // malformed or missing input → 400
	KindAuth                    // missing or invalid identity → 401
	KindForbidden               // authenticated but not allowed → 403
	KindNotFound                // referenced record absent → 404
	KindPersistence             // unexpected store failure → 500
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error  { return &Error{Kind: KindValidation, Message: msg} }
func Auth(msg string) *Error        { return &Error{Kind: KindAuth, Message: msg} }
func Forbidden(msg string) *Error   { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) *Error    { return &Error{Kind: KindNotFound, Message: msg} }
func Persistence(msg string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, Err: err}
}

// Status returns the HTTP status for err; unclassified errors are 500.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for err without internal detail.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "server error"
}
