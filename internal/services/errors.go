package services

import (
	"errors"
	"fmt"

	"shopapi/internal/repos"
)

// NotFoundError: the lookup, update or delete target does not exist.
type NotFoundError struct {
	Resource string
	ID       any
}

func (e *NotFoundError) Error() string { return fmt.Sprintf("Resource not found. Id %v", e.ID) }

// DatabaseError: the store refused the write because of an integrity rule.
// Msg is safe to show to clients; Err is the store error and stays server-side.
type DatabaseError struct {
	Resource string
	Msg      string
	Err      error
}

func (e *DatabaseError) Error() string { return e.Msg }
func (e *DatabaseError) Unwrap() error { return e.Err }

func notFound(resource string, id any, err error) error {
	if repos.IsNotFound(err) {
		return &NotFoundError{Resource: resource, ID: id}
	}
	return err
}

func writeErr(resource string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repos.ErrDuplicate):
		return &DatabaseError{Resource: resource, Msg: fmt.Sprintf("%s conflicts with an existing record", resource), Err: err}
	case errors.Is(err, repos.ErrIntegrity):
		return &DatabaseError{Resource: resource, Msg: fmt.Sprintf("%s references a record that does not exist", resource), Err: err}
	}
	return err
}

func deleteErr(resource string, id any, err error) error {
	switch {
	case err == nil:
		return nil
	case repos.IsNotFound(err):
		return &NotFoundError{Resource: resource, ID: id}
	case errors.Is(err, repos.ErrIntegrity):
		return &DatabaseError{Resource: resource, Msg: fmt.Sprintf("%s %v is still referenced by other records", resource, id), Err: err}
	}
	return err
}
