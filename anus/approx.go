package anus

import "github.com/qufix/qufix/fixed"

// Segment pairs a polynomial with the upper breakpoint of the real-number
// range it applies to. Segments must be supplied to Approx in ascending
// breakpoint order; the last segment's breakpoint is never consulted (it
// catches every x above the second-to-last breakpoint).
type Segment struct {
	Breakpoint float64
	Coeffs     []fixed.Value
}

// Approx evaluates a piecewise polynomial approximation: x's real
// view is compared against each segment's breakpoint in order, and the first segment whose breakpoint exceeds x's value is
// selected (falling through to the last segment if x exceeds every
// breakpoint). The selected segment's coefficients are evaluated via
// Poly.
//
// Approx panics if segments is empty, for the same construction-time-
// mistake reasoning as Poly.
func Approx(x fixed.Value, segments []Segment) fixed.Value {
	if len(segments) == 0 {
		panic("anus: Approx: segments must be non-empty")
	}

	real := x.Real()
	chosen := segments[len(segments)-1]
	for _, seg := range segments[:len(segments)-1] {
		if real < seg.Breakpoint {
			chosen = seg
			break
		}
	}
	return Poly(x, chosen.Coeffs)
}
