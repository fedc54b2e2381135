package cli

import (
	"fmt"
)

// UsageError signals that the user invoked a [Command] incorrectly, and should be shown its usage information.
// Any UsageError matches any other with [errors.Is], so callers can check for the kind without a sentinel.
type UsageError struct {
	wrapped error
}

func (e *UsageError) Error() string {
	if e.wrapped == nil {
		return "usage error"
	}
	return "usage error: " + e.wrapped.Error()
}

func (e *UsageError) Is(err error) bool {
	_, ok := err.(*UsageError)
	return ok
}

func (e *UsageError) Unwrap() error {
	return e.wrapped
}

// NewUsageError creates a [UsageError], passing format and args to [fmt.Errorf] for the wrapped error.
func NewUsageError(format string, args ...any) error {
	return &UsageError{wrapped: fmt.Errorf(format, args...)}
}
