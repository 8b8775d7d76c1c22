package pageroutes

import (
	"errors"
	"fmt"
)

var (
	// ErrUninitialized is returned by every operation on a Router that was not
	// created with New.
	ErrUninitialized = errors.New("pageroutes: router not initialized")

	// ErrNoHistory is returned by Back and Forward when the history cursor is
	// already at the corresponding end of the stack.
	ErrNoHistory = errors.New("pageroutes: no history entry in that direction")
)

// ConfigurationError reports an invalid route table. It is returned from
// NewTable and New, and means the application cannot start.
type ConfigurationError struct {
	Path   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("pageroutes: invalid route %q: %s", e.Path, e.Reason)
}

// NotFoundError is returned when a path has no entry in the route table.
// It is recoverable: callers usually render a not-found view.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pageroutes: no route for path %q", e.Path)
}

// IsNotFound reports whether err, or any error it wraps, is a *NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
