package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells [DB.inTx] whether a failed transaction may be
// run again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// ErrorClassificator decides whether a failed transaction may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier retries transactions that PostgreSQL rolled back
// on its own (serialization failures and deadlocks, class 40) and those
// that lost their connection before it was established (class 08, 57P03).
// Everything else, constraint violations included, is final.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	code := postgresError(err)
	switch {
	case code == "":
		return NonRetryable
	case pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsConnectionException(code),
		code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

// postgresError returns the SQLSTATE of err or "" when err did not come
// from the server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// mapWriteError translates driver errors of INSERT/UPDATE statements into
// store sentinels. duplicate is returned on a unique violation.
func mapWriteError(err error, duplicate error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return duplicate
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenceNotFound
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// mapReadError translates errors of single-row reads.
func mapReadError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
