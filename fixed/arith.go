package fixed

// This file implements the primitive arithmetic operations (mul, add,
// sub, div, neg, abs, cmp), each following the same five-step algorithm:
//
//  1. Determine F_out via mergeFormat (merge.go).
//  2. Compute the ideal wide-integer result in an int64 accumulator.
//  3. FracConvert the accumulator to F_out.FracBits under F_out.Rnd.
//  4. IntConvert under F_out.Ovf.
//  5. Return a Value carrying the result as raw Data.

// Mul computes a*b: the ideal product is
// data1*data2 at fractional width f1+f2 (no shift needed — a product of
// two binary fractions is itself exact at the sum of their fractional
// widths).
func Mul(a, b Value, opts ...BundleOption) Value {
	bundle := NewBundle(opts...)
	fOut := mergeFormat(a.Format, b.Format, bundle, opMul)
	accum := a.Data * b.Data
	accumFrac := a.Format.FracBits + b.Format.FracBits
	return finish(accum, accumFrac, fOut)
}

// Add computes a+b: both operands are
// left-aligned to max(f1,f2) before combining.
func Add(a, b Value, opts ...BundleOption) Value {
	return addSub(a, b, 1, opts...)
}

// Sub computes a-b.
func Sub(a, b Value, opts ...BundleOption) Value {
	return addSub(a, b, -1, opts...)
}

func addSub(a, b Value, sign int64, opts ...BundleOption) Value {
	bundle := NewBundle(opts...)
	fOut := mergeFormat(a.Format, b.Format, bundle, opSub) // add/sub share one merge rule
	maxF := maxInt(a.Format.FracBits, b.Format.FracBits)
	aAligned := a.Data << uint(maxF-a.Format.FracBits)
	bAligned := b.Data << uint(maxF-b.Format.FracBits)
	accum := aAligned + sign*bAligned
	return finish(accum, maxF, fOut)
}

// maxDivShift bounds the magnitude bits of the left-shifted numerator
// (the operand's own width plus the pre-divide shift): for near-maximal
// formats this can approach the 63-bit signed limit. The sign bit takes
// the one remaining bit below 64.
const maxDivShift = 62

// Div computes a/b: the numerator is
// left-shifted by max(f1,f2)-f1+f_out before dividing by the denominator
// (left-aligned to max(f1,f2)); the quotient is then already at
// fractional width f_out. Division by zero returns zero in F_out
// (not an exceptional condition).
//
// If the pre-divide shift would not fit inside an int64 accumulator,
// Div panics with
// ErrDivWidthExceeded rather than silently producing a wrong bit
// pattern — this is a construction-time-class error a caller should
// catch with AssertDivWidth before wiring a kernel, not a data-dependent
// runtime condition.
func Div(a, b Value, opts ...BundleOption) Value {
	bundle := NewBundle(opts...)
	fOut := mergeFormat(a.Format, b.Format, bundle, opDiv)
	maxF := maxInt(a.Format.FracBits, b.Format.FracBits)
	numShift := maxF - a.Format.FracBits + fOut.FracBits
	if err := AssertDivWidth(a.Format, b.Format, fOut); err != nil {
		panic(err)
	}
	if b.Data == 0 {
		return Value{Format: fOut, Data: 0}
	}
	numerator := a.Data << uint(numShift)
	denominator := b.Data << uint(maxF-b.Format.FracBits)
	quotient := numerator / denominator
	return finish(quotient, fOut.FracBits, fOut)
}

// AssertDivWidth reports ErrDivWidthExceeded if a Div between values of
// format aFmt and bFmt producing fOut would need more than maxDivShift+1
// (63) total bits to hold the left-shifted numerator (the operand's own
// magnitude width, plus one sign bit, plus the pre-divide shift).
// Kernels that wire Div at instantiation time should call
// this once per distinct format pairing rather than per element.
func AssertDivWidth(aFmt, bFmt, fOut Format) error {
	maxF := maxInt(aFmt.FracBits, bFmt.FracBits)
	shift := maxF - aFmt.FracBits + fOut.FracBits
	bitsNeeded := aFmt.TotalBits() + 1 + shift
	if bitsNeeded > maxDivShift+1 {
		return fixedErrorf("Div", ErrDivWidthExceeded)
	}
	return nil
}

// Neg computes -a: output gains one integer
// bit and is always signed.
func Neg(a Value, opts ...BundleOption) Value {
	bundle := NewBundle(opts...)
	fOut := mergeFormat(a.Format, a.Format, bundle, opNeg)
	return finish(-a.Data, a.Format.FracBits, fOut)
}

// Abs computes |a|: unsigned inputs are the
// identity; signed inputs gain one integer bit to hold the
// most-negative-value edge case.
func Abs(a Value, opts ...BundleOption) Value {
	bundle := NewBundle(opts...)
	fOut := mergeFormat(a.Format, a.Format, bundle, opAbs)
	if !a.Format.Signed {
		return finish(a.Data, a.Format.FracBits, fOut)
	}
	return finish(abs64(a.Data), a.Format.FracBits, fOut)
}

// Cmp returns -1, 0, or 1 as a is less than, equal to, or greater than
// b. Both operands are left-aligned to their common fractional width
// before comparison; no output format is produced, Cmp yields an
// ordering rather than a value.
func Cmp(a, b Value) int {
	maxF := maxInt(a.Format.FracBits, b.Format.FracBits)
	aAligned := a.Data << uint(maxF-a.Format.FracBits)
	bAligned := b.Data << uint(maxF-b.Format.FracBits)
	switch {
	case aAligned < bAligned:
		return -1
	case aAligned > bAligned:
		return 1
	default:
		return 0
	}
}

// finish performs steps 3-5 shared by every primitive: FracConvert the
// accumulator to fOut's fractional width, IntConvert under fOut's
// overflow mode, and wrap the result as a Value in fOut.
func finish(accum int64, accumFrac int, fOut Format) Value {
	narrowed := FracConvert(accum, accumFrac, fOut.FracBits, fOut.Rnd)
	data := IntConvert(narrowed, fOut.IntBits, fOut.FracBits, fOut.Signed, fOut.Ovf)
	return Value{Format: fOut, Data: data}
}
