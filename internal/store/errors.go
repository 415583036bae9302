package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a queried row does not exist (or is
	// hidden, like secret tours and deactivated users).
	ErrNotFound = errors.New("record was not found")

	// ErrEmailAlreadyExists is returned when a user with the same email
	// already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrTourNameAlreadyExists is returned when a tour with the same name
	// (and therefore slug) already exists.
	ErrTourNameAlreadyExists = errors.New("tour name already exists")

	// ErrDuplicateReview is returned when a user reviews the same tour twice.
	ErrDuplicateReview = errors.New("user already reviewed this tour")

	// ErrDuplicateBooking is returned when a checkout session was already
	// turned into a booking.
	ErrDuplicateBooking = errors.New("booking for this checkout session already exists")

	// ErrReferenceNotFound is returned when a foreign key points to a
	// missing tour or user.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	// ErrConstraintViolation is returned when a row breaks a CHECK or
	// NOT NULL constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrInvalidQuery is returned when a list query references an unknown
	// field or carries a value that does not fit the column type.
	ErrInvalidQuery = errors.New("invalid list query")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a result
	// row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrNothingToUpdate is returned when a partial update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)
