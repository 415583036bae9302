package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("invalid input data")
)

// ValidationError lists every rule an input broke, one message per field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "Invalid input data. " + strings.Join(e.Messages, ". ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
