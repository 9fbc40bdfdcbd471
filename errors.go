package restring

import (
	"errors"
	"fmt"
)

// Common restring errors
var (
	// ErrNotFound is reported by Index, RIndex and their bounded variants
	// when the criterion does not occur in the searched region.
	ErrNotFound = errors.New("restring: substring not found")

	// ErrInvalidBounds indicates a region outside 0 <= start <= end <= len(s).
	ErrInvalidBounds = errors.New("restring: invalid bounds")
)

// NotFoundError is returned when an operation that cannot answer with a
// sentinel finds no match. It matches ErrNotFound with errors.Is.
type NotFoundError struct {
	Op string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return "restring: " + e.Op + ": substring not found"
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// BoundsError describes a rejected [Start, End) region of a subject of
// length Len. It matches ErrInvalidBounds with errors.Is.
type BoundsError struct {
	Op    string
	Start int
	End   int
	Len   int
}

// Error implements the error interface
func (e *BoundsError) Error() string {
	return fmt.Sprintf("restring: %s: bounds [%d:%d] out of range for length %d",
		e.Op, e.Start, e.End, e.Len)
}

// Is reports whether target is ErrInvalidBounds.
func (e *BoundsError) Is(target error) bool {
	return target == ErrInvalidBounds
}

// PatternError wraps a compile failure reported by the engine. Op names what
// triggered the compilation: "compile" for the caller's expression, or the
// operation whose derived program failed ("split", "hasprefix",
// "hassuffix"). The engine's error is kept unchanged and reachable through
// errors.As.
type PatternError struct {
	Op   string
	Expr string
	Err  error
}

// Error implements the error interface
func (e *PatternError) Error() string {
	return "restring: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the engine's error
func (e *PatternError) Unwrap() error {
	return e.Err
}

// checkBounds validates a region of s for operation op.
func checkBounds(op, s string, start, end int) error {
	if start < 0 || end < start || end > len(s) {
		return &BoundsError{Op: op, Start: start, End: end, Len: len(s)}
	}
	return nil
}
