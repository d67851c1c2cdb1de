package fixed

// Complex is a pair of Values treated
// as an opaque scalar by the operations below. Unlike the real
// primitives, complex multiply dispatches on two distinct expansions
// (school-book vs. Karatsuba-style), selected by the bundle.
type Complex struct {
	Re, Im Value
}

// ComplexMul computes x*y for x=Re+Im*i, y=other.Re+other.Im*i.
//
// By default this is the school-book 4-multiply/1-add/1-sub expansion
// (ac-bd, ad+bc). Passing WithKaratsuba() selects the 3-multiply/5-add
// form instead. Both expansions expose one named sub-bundle per partial
// product/sum ("ac", "bd", "ad", "bc", "acbd", "adbc" for school-book;
// "ab", "cd", "ba", "abc", "cdb", "bad", "AB", "BC" for Karatsuba) so a
// caller can give each a distinct quantization policy.
func ComplexMul(x, y Complex, opts ...BundleOption) Complex {
	b := NewBundle(opts...)
	if b.IsKaratsuba() {
		return complexMulKaratsuba(x, y, b)
	}
	return complexMulSchoolbook(x, y, b)
}

func complexMulSchoolbook(x, y Complex, b Bundle) Complex {
	ac := Mul(x.Re, y.Re, subBundleOpts(b.Named("ac"))...)
	bd := Mul(x.Im, y.Im, subBundleOpts(b.Named("bd"))...)
	ad := Mul(x.Re, y.Im, subBundleOpts(b.Named("ad"))...)
	bc := Mul(x.Im, y.Re, subBundleOpts(b.Named("bc"))...)

	re := Sub(ac, bd, subBundleOpts(b.Named("acbd"))...)
	im := Add(ad, bc, subBundleOpts(b.Named("adbc"))...)
	return Complex{Re: re, Im: im}
}

// complexMulKaratsuba is the 3-multiply/5-add expansion:
//
//	A = (a+b)*c   B = (c+d)*b   C = (b-a)*d
//	re = A - B    im = B - C
func complexMulKaratsuba(x, y Complex, b Bundle) Complex {
	ab := Add(x.Re, x.Im, subBundleOpts(b.Named("ab"))...)   // a+b
	cd := Add(y.Re, y.Im, subBundleOpts(b.Named("cd"))...)   // c+d
	ba := Sub(x.Im, x.Re, subBundleOpts(b.Named("ba"))...)   // b-a

	partA := Mul(ab, y.Re, subBundleOpts(b.Named("abc"))...) // (a+b)*c
	partB := Mul(cd, x.Im, subBundleOpts(b.Named("cdb"))...) // (c+d)*b
	partC := Mul(ba, y.Im, subBundleOpts(b.Named("bad"))...) // (b-a)*d

	re := Sub(partA, partB, subBundleOpts(b.Named("AB"))...)
	im := Sub(partB, partC, subBundleOpts(b.Named("BC"))...)
	return Complex{Re: re, Im: im}
}

// subBundleOpts lifts an already-built Bundle back into a single
// BundleOption slice, so partial products/sums can reuse Mul/Add/Sub's
// variadic-option signature with a sub-bundle assembled ahead of time.
func subBundleOpts(b Bundle) []BundleOption {
	return []BundleOption{func(dst *Bundle) { *dst = b }}
}

// ComplexMulReal distributes a real scalar multiply over both parts of
// a complex value.
func ComplexMulReal(x Complex, r Value, opts ...BundleOption) Complex {
	return Complex{
		Re: Mul(x.Re, r, opts...),
		Im: Mul(x.Im, r, opts...),
	}
}

// ComplexAdd adds two complex values component-wise.
func ComplexAdd(x, y Complex, opts ...BundleOption) Complex {
	return Complex{Re: Add(x.Re, y.Re, opts...), Im: Add(x.Im, y.Im, opts...)}
}

// ComplexSub subtracts two complex values component-wise.
func ComplexSub(x, y Complex, opts ...BundleOption) Complex {
	return Complex{Re: Sub(x.Re, y.Re, opts...), Im: Sub(x.Im, y.Im, opts...)}
}

// ComplexDiv is declared but unsupported: complex/complex division
// fails with ErrUnsupportedOp.
func ComplexDiv(Complex, Complex, ...BundleOption) (Complex, error) {
	return Complex{}, fixedErrorf("ComplexDiv", ErrUnsupportedOp)
}
