package fixed

// FormatOf is the hook for compile-time-tagged formats: Go has no
// integer const generics, so a caller declares one zero-size marker
// type per format
// and implements this single method on it. Q[T] then carries its format
// at compile time via T, while delegating every actual computation to
// the dynamic Value algebra (FromReal, FromValue, Mul, Add, ...) so only
// one algorithmic core needs proving.
//
// Example:
//
//	type Q12_8S struct{}
//	func (Q12_8S) Format() fixed.Format {
//		return fixed.MustNewFormat(12, 8, true, fixed.RndTCPL, fixed.OvfSatTCPL)
//	}
//	a := fixed.NewQ[Q12_8S](3.0)
type FormatOf interface {
	Format() Format
}

// Q is the static (compile-time-formatted) fixed-point scalar. It is a
// thin wrapper over Value; every method lowers to
// the dynamic algebra in cast.go/value.go/arith.go.
type Q[T FormatOf] struct {
	v Value
}

// formatOf returns the zero value of T's Format(), without requiring the
// caller to construct a T instance (T is always a zero-size marker).
func formatOf[T FormatOf]() Format {
	var tag T
	return tag.Format()
}

// NewQ constructs a Q[T] from the real number x.
func NewQ[T FormatOf](x float64) Q[T] {
	return Q[T]{v: FromReal(x, formatOf[T]())}
}

// FromDyn constructs a Q[T] from a dynamic Value of any format, invoking
// the casting algebra.
func FromDyn[T FormatOf](d Value) Q[T] {
	return Q[T]{v: FromValue(d, formatOf[T]())}
}

// CastQ converts a Q[U] to a Q[T], delegating to FromValue. This is the
// static/static cast path; it still routes through the one dynamic core.
func CastQ[T FormatOf, U FormatOf](q Q[U]) Q[T] {
	return Q[T]{v: FromValue(q.v, formatOf[T]())}
}

// Dyn returns the dynamic Value view of q, for passing to the dynamic
// primitive/kernel APIs.
func (q Q[T]) Dyn() Value { return q.v }

// Real returns the real-number view of q.
func (q Q[T]) Real() float64 { return q.v.Real() }

// Format returns T's compile-time-declared format.
func (q Q[T]) Format() Format { return formatOf[T]() }

// Raw returns the underlying signed integer data word.
func (q Q[T]) Raw() int64 { return q.v.Data }
