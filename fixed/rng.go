package fixed

import "math/rand/v2"

// Filler is an explicit RNG handle for the fill helpers. Randomness is
// never buried in process-global state: the only mutable state is this
// handle's own generator, shared only when the caller chooses to share
// one Filler across calls.
type Filler struct {
	r *rand.Rand
}

// NewFiller constructs a Filler seeded deterministically from seed,
// using math/rand/v2's PCG generator.
func NewFiller(seed uint64) *Filler {
	return &Filler{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Uniform draws a Value in format f from a uniform real distribution
// over [lo, hi).
func (fl *Filler) Uniform(lo, hi float64, f Format) Value {
	x := lo + fl.r.Float64()*(hi-lo)
	return FromReal(x, f)
}

// Normal draws a Value in format f from a normal real distribution with
// the given mean and standard deviation.
func (fl *Filler) Normal(mean, stddev float64, f Format) Value {
	x := mean + fl.r.NormFloat64()*stddev
	return FromReal(x, f)
}

// RawBits draws a Value directly from a uniform random bit pattern
// within f's representable range.
func (fl *Filler) RawBits(f Format) Value {
	min, max := f.Bounds()
	span := uint64(max-min) + 1
	raw := min + int64(fl.r.Uint64N(span))
	return FromBits(raw, f)
}

// UniformSlice fills dst with independent draws from Uniform.
func (fl *Filler) UniformSlice(dst []Value, lo, hi float64, f Format) {
	for i := range dst {
		dst[i] = fl.Uniform(lo, hi, f)
	}
}

// NormalSlice fills dst with independent draws from Normal.
func (fl *Filler) NormalSlice(dst []Value, mean, stddev float64, f Format) {
	for i := range dst {
		dst[i] = fl.Normal(mean, stddev, f)
	}
}
