package datastore

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Standard errors for datastore operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUnknownTable indicates the table name is not a registered entity.
	ErrUnknownTable = errors.New("unknown table")

	// ErrDuplicate indicates a write collided with an existing primary or unique key.
	ErrDuplicate = errors.New("duplicate key")

	// ErrInvalidDocument indicates a document is not a pointer to the table's model.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidConfig indicates the store could not be constructed from its configuration.
	ErrInvalidConfig = errors.New("invalid datastore configuration")

	// ErrConnection indicates the database could not be reached or synchronized.
	ErrConnection = errors.New("database connection error")
)

// OpError wraps a failed operation with the operation and table it ran against.
// It unwraps to the sentinel or driver error that caused it.
type OpError struct {
	Op    string
	Table string
	Err   error
}

func (e *OpError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s [table=%s]: %v", e.Op, e.Table, e.Err)
}

// Unwrap returns the underlying error.
func (e *OpError) Unwrap() error {
	return e.Err
}

// PostgreSQL SQLSTATE for unique_violation.
const pqUniqueViolation = "23505"

// classify maps driver and GORM errors onto the datastore sentinels.
// GORM translates mysql and sqlite key violations itself; lib/pq errors are not
// covered by the postgres dialector and are matched by SQLSTATE here.
func classify(err error) error {
	var pqErr *pq.Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %w", ErrDuplicate, err)
	case errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation:
		return fmt.Errorf("%w: %s", ErrDuplicate, pqErr.Message)
	}
	return err
}

// IsNotFound reports whether err means the lookup matched nothing.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
