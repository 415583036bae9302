package workers

import (
	"fmt"
	"runtime/debug"
)

// PanicError carries a panic recovered from a background goroutine.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Recover wraps fn so a panic inside it is returned as a *PanicError
// instead of crashing the process.
func Recover(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = &PanicError{Value: rec, Stack: debug.Stack()}
			}
		}()
		return fn()
	}
}
