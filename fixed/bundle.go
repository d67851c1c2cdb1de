package fixed

// Policy bundles: the per-operation override set and its
// functional-options construction layer.
//
// Design goals:
//   - Deterministic: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid literal parameters.
//   - Reusability: Bundle fields are unexported; callers build one via
//     functional BundleOption values passed to NewBundle.

const (
	panicNamedSubBundleEmpty = "fixed: WithNamed: sub-bundle name must be non-empty"
)

// Bundle is an unordered set of override tags. Any axis left nil/false is derived by the merger rule
// (mergeFormat) instead of being taken from the bundle.
type Bundle struct {
	intBits   *int
	fracBits  *int
	signed    *bool
	rnd       *RoundMode
	ovf       *OverflowMode
	fullPrec  bool
	karatsuba bool
	named     map[string]Bundle
}

// BundleOption mutates a Bundle under construction. Safe to apply
// repeatedly; later options in the NewBundle call win over earlier ones
// for the same axis.
type BundleOption func(*Bundle)

// NewBundle builds a Bundle from zero or more options. A zero-value
// Bundle (no options) overrides nothing: every axis of the merger rule
// falls back to its input-derived default.
func NewBundle(opts ...BundleOption) Bundle {
	var b Bundle
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// IntBits overrides the merged output's integer width.
func IntBits(n int) BundleOption {
	if n < 0 {
		panic("fixed: IntBits: n must be >= 0")
	}
	return func(b *Bundle) { b.intBits = &n }
}

// FracBits overrides the merged output's fractional width.
func FracBits(n int) BundleOption {
	if n < 0 {
		panic("fixed: FracBits: n must be >= 0")
	}
	return func(b *Bundle) { b.fracBits = &n }
}

// IsSigned overrides the merged output's signedness.
func IsSigned(v bool) BundleOption {
	return func(b *Bundle) { b.signed = &v }
}

// WithRoundMode overrides the merged output's rounding mode.
func WithRoundMode(r RoundMode) BundleOption {
	if !r.valid() {
		panic("fixed: WithRoundMode: unknown rounding mode")
	}
	return func(b *Bundle) { b.rnd = &r }
}

// WithOverflowMode overrides the merged output's overflow mode.
func WithOverflowMode(o OverflowMode) BundleOption {
	if !o.valid() {
		panic("fixed: WithOverflowMode: unknown overflow mode")
	}
	return func(b *Bundle) { b.ovf = &o }
}

// FullPrec requests a full-precision merge: the output width is
// widened to hold the exact ideal result without rounding or
// overflow (mul: i1+i2, f1+f2; add/sub/div: max(i1,i2)+1, max(f1,f2)).
func FullPrec() BundleOption {
	return func(b *Bundle) { b.fullPrec = true }
}

// WithKaratsuba selects the 3-multiply/5-add complex-multiply expansion
// in place of the school-book 4-multiply form. Named sub-bundles
// (ab, cd, ba, abc, cdb, bad, AB, BC) attached via WithNamed carry the
// per-sub-operation policy for each partial product/sum.
func WithKaratsuba() BundleOption {
	return func(b *Bundle) { b.karatsuba = true }
}

// WithNamed attaches a named sub-bundle (e.g. "ac", "bd", "abc") used by
// ComplexMul's school-book and Karatsuba expansions to give each partial
// product/sum its own policy.
func WithNamed(name string, sub Bundle) BundleOption {
	if name == "" {
		panic(panicNamedSubBundleEmpty)
	}
	return func(b *Bundle) {
		if b.named == nil {
			b.named = make(map[string]Bundle, 1)
		}
		b.named[name] = sub
	}
}

// Named looks up a sub-bundle by name, returning the zero Bundle (no
// overrides) if none was attached under that name.
func (b Bundle) Named(name string) Bundle {
	if b.named == nil {
		return Bundle{}
	}
	return b.named[name]
}

// IsFullPrec reports whether FullPrec() was applied to this bundle.
func (b Bundle) IsFullPrec() bool { return b.fullPrec }

// IsKaratsuba reports whether WithKaratsuba() was applied to this
// bundle.
func (b Bundle) IsKaratsuba() bool { return b.karatsuba }
