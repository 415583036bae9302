package http

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-natours/models"
)

// AppError is an error with an HTTP status attached.
//
// Operational errors are expected failures whose message is safe to show to
// the client. Everything else is a programmer error: it is logged and, outside
// development, answered with a generic message.
type AppError struct {
	StatusCode  int
	Message     string
	Operational bool

	// Err is the error the AppError was derived from, if any.
	Err error

	// Stack is captured when the AppError is created.
	Stack []byte
}

// NewAppError returns an operational error.
func NewAppError(statusCode int, message string) *AppError {
	return &AppError{
		StatusCode:  statusCode,
		Message:     message,
		Operational: true,
		Stack:       debug.Stack(),
	}
}

func wrapAppError(statusCode int, message string, err error) *AppError {
	appErr := NewAppError(statusCode, message)
	appErr.Err = err
	return appErr
}

func programmerError(err error, stack []byte) *AppError {
	if stack == nil {
		stack = debug.Stack()
	}
	return &AppError{
		StatusCode: http.StatusInternalServerError,
		Message:    err.Error(),
		Err:        err,
		Stack:      stack,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Status is "fail" for client errors and "error" for server errors.
func (e *AppError) Status() string {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return models.StatusFail
	}
	return models.StatusError
}

func asAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
