package fixed

import "math"

// Value is the dynamic fixed-point scalar: a signed integer
// data interpreted as data*2^(-Format.FracBits), carrying its own
// Format so it is convertible to/from any other format without a
// compile-time type parameter. fixed.Q[T] (static.go) is a thin
// compile-time-tagged wrapper over this same type.
type Value struct {
	Format Format
	Data   int64
}

// FromReal constructs a Value in format f from the real number x,
// compute round(x*2^f.FracBits) under f.Rnd, then
// IntConvert under f.Ovf.
func FromReal(x float64, f Format) Value {
	scale := float64(int64(1) << uint(f.FracBits))
	raw := roundReal(x*scale, f.Rnd)
	data := IntConvert(raw, f.IntBits, f.FracBits, f.Signed, f.Ovf)
	return Value{Format: f, Data: data}
}

// roundReal rounds a continuous scaled value to the nearest representable
// integer under mode, applying the same tie-break vocabulary FracConvert
// uses for discrete values, generalized to a continuous
// input: the "tie" case is raw being exactly N+0.5 for some integer N,
// which float64 represents exactly whenever x is itself a dyadic
// rational (the common case for test fixtures and for any value that is
// itself already fixed-point at some format).
func roundReal(raw float64, mode RoundMode) int64 {
	floor := math.Floor(raw)
	switch mode {
	case RndTCPL:
		return int64(floor)
	case RndSMGN:
		if raw >= 0 {
			return int64(floor)
		}
		return int64(math.Ceil(raw))
	}

	ceil := math.Ceil(raw)
	if floor == ceil {
		return int64(floor) // raw is already integral
	}
	frac := raw - floor
	switch {
	case frac < 0.5:
		return int64(floor)
	case frac > 0.5:
		return int64(ceil)
	}

	// Exact tie.
	switch mode {
	case RndPosInf:
		return int64(ceil)
	case RndNegInf:
		return int64(floor)
	case RndZero:
		if math.Abs(floor) <= math.Abs(ceil) {
			return int64(floor)
		}
		return int64(ceil)
	case RndInf:
		if math.Abs(floor) >= math.Abs(ceil) {
			return int64(floor)
		}
		return int64(ceil)
	case RndConv:
		if int64(floor)&1 == 0 {
			return int64(floor)
		}
		return int64(ceil)
	default:
		invalidMode("roundReal", mode)
		return 0 // unreachable: invalidMode panics
	}
}

// FromValue constructs a Value in format target from another Value v of
// a possibly different format: FracConvert from
// v.Format.FracBits to target.FracBits under target.Rnd, then IntConvert
// under target.Ovf. If the formats are identical, data is copied
// directly with no re-quantization.
func FromValue(v Value, target Format) Value {
	if v.Format == target {
		return Value{Format: target, Data: v.Data}
	}
	aligned := FracConvert(v.Data, v.Format.FracBits, target.FracBits, target.Rnd)
	data := IntConvert(aligned, target.IntBits, target.FracBits, target.Signed, target.Ovf)
	return Value{Format: target, Data: data}
}

// FromBits constructs a Value directly from a raw bit pattern, for
// interop with an external source that already produced a word in this
// format (e.g. a bitstream.Unpack field, or a simulator register dump).
// The caller is responsible for raw being a value that format f could
// have produced; FromBits performs no re-quantization.
func FromBits(raw int64, f Format) Value {
	return Value{Format: f, Data: raw}
}

// Real returns the real-number view of v: Data*2^(-FracBits).
func (v Value) Real() float64 {
	return float64(v.Data) / float64(int64(1)<<uint(v.Format.FracBits))
}
