// Package errors defines the error kinds reported by the collection packages,
// plus a small accumulator for reporting several violations at once.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a constructor argument is out of range
	// (for example a negative capacity). The wrapped message carries the offending value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange is returned by indexed operations when the index falls
	// outside the operation's valid range. The wrapped message carries the index and size.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrNullArgument is returned when a required source sequence is absent.
	ErrNullArgument = errors.New("null argument")
)

// InvalidArgument wraps ErrInvalidArgument with a formatted description.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// IndexOutOfRange wraps ErrIndexOutOfRange with the rejected index and the current size.
func IndexOutOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, index, size)
}

// NullArgument wraps ErrNullArgument with the name of the missing argument.
func NullArgument(name string) error {
	return fmt.Errorf("%w: %s must not be nil", ErrNullArgument, name)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Use this when several independent checks should all be reported together
// instead of stopping at the first failure.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil if the collection is empty, the single error if there's
// only one, or an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
