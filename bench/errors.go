package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a buffer size is not positive.
	ErrInvalidSize = errors.New("size must be positive")

	// ErrInvalidIterations is returned when an iteration count is negative.
	ErrInvalidIterations = errors.New("iterations must not be negative")

	// ErrUnknownOp is returned for an operation name or value that does not exist.
	ErrUnknownOp = errors.New("unknown operation")
)

// ErrMismatch indicates that memvec and the baseline produced different
// results.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrMismatch struct {
	Op    Op
	Size  int
	cause error
}

func (e *ErrMismatch) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("%s mismatch at size %d", e.Op, e.Size)
	}
	return fmt.Sprintf("%s mismatch at size %d: %v", e.Op, e.Size, e.cause)
}

func (e *ErrMismatch) Unwrap() error { return e.cause }
