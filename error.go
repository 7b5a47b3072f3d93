package httprange

import (
	"net/http"

	"github.com/pkg/errors"
)

// An Error reports a Range or Content-Range value that violates
// RFC 7233.
type Error struct {
	// Status is the HTTP status code a server should respond with:
	// 400 Bad Request or 416 Requested Range Not Satisfiable.
	Status int

	err error
}

func (e *Error) Error() string { return e.err.Error() }

// Cause returns the underlying error, for github.com/pkg/errors.Cause.
func (e *Error) Cause() error { return e.err }

// Unwrap returns the underlying error, for errors.Is and errors.As.
func (e *Error) Unwrap() error { return e.err }

const (
	msgInvalidRange        = "Invalid Range header for byte ranges"
	msgInvalidContentRange = "Invalid Content-Range value"
)

func rangeNotSatisfiable() *Error {
	return &Error{
		Status: http.StatusRequestedRangeNotSatisfiable,
		err:    errors.New(msgInvalidRange),
	}
}

func badRangeRequest() *Error {
	return &Error{
		Status: http.StatusBadRequest,
		err:    errors.New(msgInvalidRange),
	}
}

func invalidContentRange() *Error {
	return &Error{
		Status: http.StatusRequestedRangeNotSatisfiable,
		err:    errors.New(msgInvalidContentRange),
	}
}
