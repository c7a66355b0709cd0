// Package apperror defines the error taxonomy shared by the store, the
// media pipeline and the HTTP layer.
package apperror

import (
	"errors"
	"net/http"
)

type Kind int

const (
	KindServer Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuth
	KindStorage
	KindTranscode
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindAuth:
		return "auth"
	case KindStorage:
		return "storage"
	case KindTranscode:
		return "transcode"
	default:
		return "server"
	}
}

// Status returns the HTTP status code for the kind.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is a categorized application error. Field is set for conflicts
// and validation failures that concern a single input.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func InvalidField(field, msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Field: field}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(field, msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg, Field: field}
}

func Auth(msg string) *Error {
	return &Error{Kind: KindAuth, Message: msg}
}

func Storage(err error, msg string) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: err}
}

func Transcode(err error, msg string) *Error {
	return &Error{Kind: KindTranscode, Message: msg, Err: err}
}

func Server(err error, msg string) *Error {
	return &Error{Kind: KindServer, Message: msg, Err: err}
}

// As extracts the application error from err, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// StatusOf maps any error to an HTTP status; uncategorized errors are 500.
func StatusOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Kind.Status()
	}
	return http.StatusInternalServerError
}

// PublicMessage is the message safe to return to a client. Uncategorized
// errors never leak their text.
func PublicMessage(err error) string {
	if appErr, ok := As(err); ok {
		return appErr.Message
	}
	return "Internal server error"
}
