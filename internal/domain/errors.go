package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks values that cannot be mapped onto the domain,
// such as an unknown order status code.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError is an ErrInvalidArgument with a message that is safe to
// show to clients, however deeply it ends up wrapped.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return ErrInvalidArgument.Error() + ": " + e.Msg }

func (e *ArgumentError) Is(target error) bool { return target == ErrInvalidArgument }

// Invalid builds an ArgumentError from a format string.
func Invalid(format string, args ...any) error {
	return &ArgumentError{Msg: fmt.Sprintf(format, args...)}
}
