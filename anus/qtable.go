package anus

import (
	"math"

	"github.com/qufix/qufix/fixed"
)

// Qtable builds a ROM-emulating quantizer for the real function f:
// it evaluates f on x's real view and quantizes the result back into
// x's own format, rounding to nearest with ties toward zero (RndZero)
// for that final quantization regardless of x.Format's own declared
// rounding mode. The returned Value still carries x.Format verbatim; the
// RndZero rounding is an internal detail of the table lookup, not a
// change to the value's declared format.
func Qtable(f func(float64) float64) func(fixed.Value) fixed.Value {
	return func(x fixed.Value) fixed.Value {
		y := f(x.Real())
		quantized := fixed.FromReal(y, x.Format.WithRound(fixed.RndZero))
		return fixed.Value{Format: x.Format, Data: quantized.Data}
	}
}

// Sqrt is the built-in Qtable instance for the square root function.
func Sqrt(x fixed.Value) fixed.Value { return Qtable(math.Sqrt)(x) }

// Recip is the built-in Qtable instance for reciprocal (1/x).
func Recip(x fixed.Value) fixed.Value { return Qtable(reciprocal)(x) }

// Rsqrt is the built-in Qtable instance for reciprocal square root
// (1/sqrt(x)), used by linalg.Qpotrf's diagonal storage convention.
func Rsqrt(x fixed.Value) fixed.Value { return Qtable(rsqrt)(x) }

// Exp is the built-in Qtable instance for the exponential function.
func Exp(x fixed.Value) fixed.Value { return Qtable(math.Exp)(x) }

func reciprocal(v float64) float64 { return 1 / v }
func rsqrt(v float64) float64      { return 1 / math.Sqrt(v) }
