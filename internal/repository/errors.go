// Package repository defines the errors shared by the repositories.
// Callers distinguish an empty result (ErrNotFound) from a failed
// statement (*StorageError) with errors.Is / errors.As. Compat folds
// both back into an absent result for callers that do not care.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned when a lookup succeeded but matched no row.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrEmailExists is returned by AddUser when the email is already
// registered. It is always wrapped in a *StorageError.
var ErrEmailExists = errors.New("email already exists")

// ErrNoColumns is returned by AddProperty when the record carries no
// populated field at all.
var ErrNoColumns = errors.New("no columns to insert")

// StorageError reports that the statement of Op could not be executed
// (connection failure, malformed statement, constraint violation).
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// markDuplicate tags a unique violation inside err with sentinel. Other
// errors are returned unchanged.
func markDuplicate(err, sentinel error) error {
	var se *StorageError
	if errors.As(err, &se) && isUniqueViolation(se.Err) {
		se.Err = fmt.Errorf("%w: %w", sentinel, se.Err)
	}
	return err
}

// isUniqueViolation recognises duplicate key errors of both drivers:
// SQLSTATE 23505 for PostgreSQL and error 1062 for MySQL.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return false
}
