package anus

import "github.com/qufix/qufix/fixed"

// Poly evaluates the Horner scheme
// ((...((x*a0 + a1)*x + a2)...)*x + an)
// given x and coefficients a0..an (coeffs[0] is a0, the leading
// coefficient; coeffs[len-1] is an, the constant term). Each
// coefficient carries its own format; the intermediate result after
// adding ak is forced into ak's own format, and the final result
// therefore has the format of an, the last coefficient.
//
// Poly panics if coeffs is empty: a polynomial needs at least a constant
// term, and this is a construction-time-class mistake, not data-dependent
// runtime state.
func Poly(x fixed.Value, coeffs []fixed.Value) fixed.Value {
	if len(coeffs) == 0 {
		panic("anus: Poly: coeffs must be non-empty")
	}

	acc := coeffs[0]
	for k := 1; k < len(coeffs); k++ {
		prod := fixed.Mul(acc, x)
		acc = fixed.Add(prod, coeffs[k], coeffFormatOpts(coeffs[k].Format)...)
	}
	return acc
}

// coeffFormatOpts builds the bundle options that pin a merge's output
// format to exactly f, used to force each Horner step's intermediate
// into the format of the coefficient that step just folded in.
func coeffFormatOpts(f fixed.Format) []fixed.BundleOption {
	return []fixed.BundleOption{
		fixed.IntBits(f.IntBits),
		fixed.FracBits(f.FracBits),
		fixed.IsSigned(f.Signed),
		fixed.WithRoundMode(f.Rnd),
		fixed.WithOverflowMode(f.Ovf),
	}
}
