package pipeline

import "errors"

var (
	ErrEmptyStageName = errors.New("stage name is empty")
	ErrNilMiddleware  = errors.New("stage has no middleware")
	ErrDuplicateStage = errors.New("stage is declared twice")
	ErrUnknownStage   = errors.New("stage constraint references an undeclared stage")

	// ErrOrderViolation is returned when a stage is declared on the wrong
	// side of a stage it names in Before or After.
	ErrOrderViolation = errors.New("stage order violates a declared constraint")
)
