package ui

import (
	"errors"
	"fmt"
)

// ErrShutdown is returned by every screen once the window was closed or the
// power button was pressed.
var ErrShutdown = errors.New("ui: shutdown requested")

// InfrastructureError is a failure of the presentation layer itself
// (window creation, font loading, rendering) as opposed to anything the
// user did.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ui: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func infraError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError reports whether err is an InfrastructureError.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
