package pipeline

import "errors"

var (
	// ErrInternal wraps an invariant violation raised by a pass. It is a
	// compiler defect, not a problem with the program.
	ErrInternal = errors.New("pipeline: internal error")

	ErrNoFixpoint = errors.New("pipeline: rewriting did not converge")
)
