package sqlengine

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"github.com/rishithapentyala/Library-Management-System/circulation"
)

const (
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeUniqueViolation      = "23505"

	mysqlErrLockWaitTimeout = 1205
	mysqlErrDeadlock        = 1213
	mysqlErrDuplicateEntry  = 1062
)

// classify joins driver errors that a retry can resolve with circulation.ErrConcurrencyConflict.
func classify(err error) error {
	if err == nil || errors.Is(err, circulation.ErrConcurrencyConflict) {
		return err
	}

	if isConcurrencyConflict(err) {
		return errors.Join(circulation.ErrConcurrencyConflict, err)
	}

	return err
}

func isConcurrencyConflict(err error) bool {
	switch sqlStateOf(err) {
	case pgCodeSerializationFailure, pgCodeDeadlockDetected:
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDeadlock || mysqlErr.Number == mysqlErrLockWaitTimeout
	}

	return false
}

func isUniqueViolation(err error) bool {
	if sqlStateOf(err) == pgCodeUniqueViolation {
		return true
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == mysqlErrDuplicateEntry
	}

	return false
}

// sqlStateOf returns the SQLSTATE reported by pgx or lib/pq, or an empty string.
func sqlStateOf(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	return ""
}

// errorType is used as metric label and span attribute.
func errorType(err error) string {
	switch {
	case errors.Is(err, circulation.ErrConcurrencyConflict):
		return errorTypeConcurrencyConflict
	case circulation.IsDomainError(err):
		return errorTypeRejected
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return errorTypeCanceled
	default:
		return errorTypeDatabase
	}
}
