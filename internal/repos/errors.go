package repos

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrIntegrity: the statement would break a foreign key (e.g. deleting a
	// user that still has orders).
	ErrIntegrity = errors.New("referential integrity violation")
	// ErrDuplicate: a unique or primary key already holds the value.
	ErrDuplicate = errors.New("duplicate key")
)

// StoreError carries the failing operation and table next to the driver
// error. errors.Is matches both the driver error and its classification.
type StoreError struct {
	Op    string
	Table string
	Kind  error
	Err   error
}

func (e *StoreError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() []error {
	if e.Kind != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Err}
}

func wrap(err error, op, table string) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Table: table, Kind: classify(err), Err: err}
}

func classify(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ErrIntegrity
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ErrDuplicate
		}
		// primary result codes only carry the reason in the message
		msg := se.Error()
		switch {
		case strings.Contains(msg, "FOREIGN KEY constraint failed"):
			return ErrIntegrity
		case strings.Contains(msg, "UNIQUE constraint failed"):
			return ErrDuplicate
		}
		return nil
	}
	var pe *pq.Error
	if errors.As(err, &pe) {
		switch pe.Code {
		case "23503":
			return ErrIntegrity
		case "23505":
			return ErrDuplicate
		}
	}
	return nil
}
