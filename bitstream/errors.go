package bitstream

import (
	"errors"
	"fmt"
)

// Sentinel errors for the bitstream package. Callers match these with
// errors.Is; Pack and Unpack wrap them with streamErrorf to attach an
// operation tag.
var (
	// ErrLengthMismatch is returned by Unpack when the input string's
	// length is not a multiple of the per-element field width, or does
	// not hold exactly as many fields as the requested shape needs.
	ErrLengthMismatch = errors.New("bitstream: string length does not match the element field width")

	// ErrChunkIndivisible is returned when an R2L(n) ordering is applied
	// to a tensor whose element count is not a multiple of n.
	ErrChunkIndivisible = errors.New("bitstream: element count is not a multiple of the chunk size")

	// ErrNotBinary is returned by Unpack when the input contains a
	// character other than '0' or '1'.
	ErrNotBinary = errors.New("bitstream: input contains a non-binary character")

	// ErrZeroWidthElement is returned when the element format has zero
	// total bits: such elements carry no field to emit or parse.
	ErrZeroWidthElement = errors.New("bitstream: element format has zero field width")
)

// streamErrorf wraps err with an operation tag, preserving the sentinel
// for errors.Is.
func streamErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
