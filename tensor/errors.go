package tensor

import (
	"errors"
	"fmt"
)

// Sentinel errors for the tensor package. Callers match these with
// errors.Is; operations wrap them with tensorErrorf to attach an
// operation tag.
var (
	// ErrBadShape is returned when a requested shape has a non-positive
	// axis, or an empty shape slice.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrIndexOutOfBounds is returned by At/Set when an index falls
	// outside the tensor's declared shape.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")

	// ErrShapeMismatch is returned when two operand shapes are neither
	// identical nor one of them a broadcastable scalar.
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrEmptyReduce is returned by Qreduce when given a tensor with zero
	// elements: there is no identity element to fall back to, since the
	// combine function's own format merger decides F_out.
	ErrEmptyReduce = errors.New("tensor: cannot reduce an empty tensor")
)

// tensorErrorf wraps err with an operation tag, preserving the
// sentinel for errors.Is.
func tensorErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
