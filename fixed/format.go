package fixed

import "fmt"

// RoundMode names one of the seven fractional-truncation tie-break
// policies used by FracConvert when narrowing a value's fractional
// width. The zero value is not a valid mode; always construct via one
// of the RndXxx constants.
type RoundMode uint8

// The seven fractional-truncation modes.
const (
	RndPosInf RoundMode = iota + 1 // round half toward +infinity
	RndNegInf                      // round half toward -infinity
	RndZero                        // round half toward zero
	RndInf                         // round half away from zero
	RndConv                        // round half to even (convergent / banker's)
	RndTCPL                        // arithmetic shift right (floor toward -infinity, no tie-break)
	RndSMGN                        // shift-right magnitude (sign-magnitude truncation)
)

// String implements fmt.Stringer for diagnostics and panic messages.
func (r RoundMode) String() string {
	switch r {
	case RndPosInf:
		return "POS_INF"
	case RndNegInf:
		return "NEG_INF"
	case RndZero:
		return "ZERO"
	case RndInf:
		return "INF"
	case RndConv:
		return "CONV"
	case RndTCPL:
		return "TCPL"
	case RndSMGN:
		return "SMGN"
	default:
		return fmt.Sprintf("RoundMode(%d)", uint8(r))
	}
}

// valid reports whether r is one of the seven closed tag values.
func (r RoundMode) valid() bool {
	return r >= RndPosInf && r <= RndSMGN
}

// OverflowMode names one of the four integer-range clamping policies
// used by IntConvert. The zero value is not valid; always construct via
// one of the OvfXxx constants.
type OverflowMode uint8

// The four integer-clamping modes.
const (
	OvfSatTCPL OverflowMode = iota + 1 // saturate to [m, M], two's-complement range
	OvfSatZero                        // out-of-range collapses to 0
	OvfSatSMGN                        // saturate to [m+1, M], reserves the most-negative value
	OvfWrpTCPL                        // two's-complement wraparound
)

// String implements fmt.Stringer for diagnostics and panic messages.
func (o OverflowMode) String() string {
	switch o {
	case OvfSatTCPL:
		return "SAT_TCPL"
	case OvfSatZero:
		return "SAT_ZERO"
	case OvfSatSMGN:
		return "SAT_SMGN"
	case OvfWrpTCPL:
		return "WRP_TCPL"
	default:
		return fmt.Sprintf("OverflowMode(%d)", uint8(o))
	}
}

// valid reports whether o is one of the four closed tag values.
func (o OverflowMode) valid() bool {
	return o >= OvfSatTCPL && o <= OvfWrpTCPL
}

// MaxTotalBits caps every validated format and every non-FullPrec merge
// result: such a Format carries at most 31 combined integer+fraction
// bits, so the product of two such values fits inside an int64
// accumulator with margin to spare. FullPrec merges are not capped.
const MaxTotalBits = 31

// Format describes a fixed-point number: widths, signedness, and the
// default quantization policies.
//
// Field IntBits is the number of bits to the left of the binary point,
// FracBits the number to the right, Signed the signedness, and Rnd/Ovf
// the format's default rounding/overflow policy used when none is
// overridden by an operation's Bundle.
type Format struct {
	IntBits  int
	FracBits int
	Signed   bool
	Rnd      RoundMode
	Ovf      OverflowMode
}

// NewFormat constructs a Format and validates it.
func NewFormat(intBits, fracBits int, signed bool, rnd RoundMode, ovf OverflowMode) (Format, error) {
	f := Format{IntBits: intBits, FracBits: fracBits, Signed: signed, Rnd: rnd, Ovf: ovf}
	if err := f.Validate(); err != nil {
		return Format{}, err
	}
	return f, nil
}

// MustNewFormat is NewFormat's panicking twin, for package-level format
// declarations where the arguments are literals and any error is a
// compile-time-grade programmer mistake rather than caller input.
func MustNewFormat(intBits, fracBits int, signed bool, rnd RoundMode, ovf OverflowMode) Format {
	f, err := NewFormat(intBits, fracBits, signed, rnd, ovf)
	if err != nil {
		panic(err)
	}
	return f
}

// Validate checks the invariant 0 <= IntBits+FracBits <= 31
// and that IntBits, FracBits are non-negative and Rnd/Ovf name a known
// tag.
func (f Format) Validate() error {
	if f.IntBits < 0 || f.FracBits < 0 {
		return fixedErrorf("Format.Validate", ErrNegativeWidth)
	}
	if f.IntBits+f.FracBits > MaxTotalBits {
		return fixedErrorf("Format.Validate", ErrWidthCap)
	}
	if !f.Rnd.valid() {
		return fixedErrorf("Format.Validate", ErrUnknownRoundMode)
	}
	if !f.Ovf.valid() {
		return fixedErrorf("Format.Validate", ErrUnknownOverflowMode)
	}
	return nil
}

// TotalBits returns IntBits+FracBits.
func (f Format) TotalBits() int {
	return f.IntBits + f.FracBits
}

// Bounds returns the inclusive [min, max] representable raw-data range
// for this format: signed formats hold
// [-2^(i+f), 2^(i+f)-1], unsigned formats hold [0, 2^(i+f)-1].
func (f Format) Bounds() (min, max int64) {
	width := f.TotalBits()
	m := int64(1) << uint(width)
	if f.Signed {
		return -m, m - 1
	}
	return 0, m - 1
}

// WithRound returns a copy of f with Rnd replaced.
func (f Format) WithRound(r RoundMode) Format {
	f.Rnd = r
	return f
}

// WithOverflow returns a copy of f with Ovf replaced.
func (f Format) WithOverflow(o OverflowMode) Format {
	f.Ovf = o
	return f
}

// capWidth applies the symmetric width-cap reduction: while
// intBits+fracBits exceeds MaxTotalBits, both are reduced by
// ceil((over+1)/2) from their sum, symmetrically, until the invariant
// holds. over is intBits+fracBits-MaxTotalBits on entry.
func capWidth(intBits, fracBits int) (int, int) {
	for intBits+fracBits > MaxTotalBits {
		over := intBits + fracBits - MaxTotalBits
		reduce := (over + 1 + 1) / 2 // ceil((over+1)/2)
		// Split the reduction across both axes as evenly as possible,
		// giving the odd unit to the fractional axis; an axis too narrow
		// for its share passes the remainder to the other one.
		reduceInt := reduce / 2
		reduceFrac := reduce - reduceInt
		if intBits < reduceInt {
			reduceFrac += reduceInt - intBits
			reduceInt = intBits
		}
		if fracBits < reduceFrac {
			reduceInt += reduceFrac - fracBits
			reduceFrac = fracBits
		}
		intBits -= reduceInt
		fracBits -= reduceFrac
		if reduceInt == 0 && reduceFrac == 0 {
			break // degenerate: both already at zero, nothing left to cap
		}
	}
	return intBits, fracBits
}
