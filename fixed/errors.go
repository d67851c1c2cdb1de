package fixed

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "fixed: ..." for consistency and to allow
// easy grepping across logs. Sentinels are returned directly by the
// algebra (FracConvert/IntConvert never fail; their callers validate
// first) and are wrapped with fixedErrorf at kernel call boundaries so
// errors.Is/errors.As keeps working for callers.

var (
	// ErrWidthCap is returned when a requested Format violates the
	// 0 <= IntBits+FracBits <= 31 invariant.
	ErrWidthCap = errors.New("fixed: int_bits+frac_bits exceeds the 31-bit cap")

	// ErrNegativeWidth is returned when IntBits or FracBits is negative.
	ErrNegativeWidth = errors.New("fixed: int_bits and frac_bits must be >= 0")

	// ErrUnsupportedOp is returned by operations this library declares
	// unsupported (ComplexDiv, complex/complex division).
	ErrUnsupportedOp = errors.New("fixed: unsupported operation")

	// ErrDivWidthExceeded is returned by AssertDivWidth, and Div panics
	// with it, when the pre-divide left shift of the numerator would not
	// fit in an int64 accumulator. See AssertDivWidth for the exact bound.
	ErrDivWidthExceeded = errors.New("fixed: division operand width exceeds int64 shift budget")

	// ErrUnknownRoundMode and ErrUnknownOverflowMode are returned by
	// Format.Validate for a mode tag outside the closed tag sets. An
	// invalid tag that reaches the casting algebra itself panics via
	// invalidMode instead.
	ErrUnknownRoundMode    = errors.New("fixed: unknown rounding mode")
	ErrUnknownOverflowMode = errors.New("fixed: unknown overflow mode")
)

// fixedErrorf wraps err with an operation tag, preserving the original
// error via %w so errors.Is/errors.As keeps matching the sentinel.
func fixedErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// invalidMode aborts on a mode tag outside the closed RoundMode/
// OverflowMode enumerations reaching the dynamic cast path. Every static
// call site uses Go constants from this package and can never trigger
// this; only a dynamic Format built from an untrusted integer can, which
// is why this panics rather than returning an error: it is a
// programming bug, not caller input.
func invalidMode(tag string, mode fmt.Stringer) {
	panic(fmt.Sprintf("fixed: invalid mode tag reached %s: %v", tag, mode))
}
