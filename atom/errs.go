package atom

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is matched by every InvariantError.
	ErrInvariant = errors.New("invariant violation")

	ErrSelfReference    = errors.New("self referential variable")
	ErrDanglingVariable = errors.New("dangling variable")
)

// InvariantError reports a defect in an upstream pass rather than in the
// program being compiled. It is raised with panic.
type InvariantError struct {
	Err    error
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvariant, e.Err, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// Violate panics with an InvariantError wrapping err.
func Violate(err error, format string, args ...any) {
	panic(&InvariantError{Err: err, Detail: fmt.Sprintf(format, args...)})
}
