package linalg

import (
	"errors"
	"fmt"
)

// Operation name constants for unified error wrapping.
const (
	opGemul  = "Qgemul"
	opGramul = "Qgramul"
	opGemv   = "Qgemv"
	opPotrf  = "Qpotrf"
	opPotrs  = "Qpotrs"
	opSytrf  = "Qsytrf"
	opTrtri  = "Qtrtri"
)

var (
	// ErrDimensionMismatch is returned when operand shapes are
	// incompatible for the requested kernel (accounting for any
	// transpose tag).
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

	// ErrNonSquare is returned when a kernel that requires a square
	// operand (Qpotrf, Qpotrs, Qsytrf, Qtrtri) is given a non-square one.
	ErrNonSquare = errors.New("linalg: matrix is not square")

	// ErrNot1D is returned when Qgemv's x or y does not have exactly one
	// axis, or when Qsytrf's D is not one-dimensional with length equal
	// to A's side.
	ErrNot1D = errors.New("linalg: expected a 1-dimensional tensor")
)

// linalgErrorf wraps err with an operation tag, preserving the
// sentinel for errors.Is.
func linalgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
