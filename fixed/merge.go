package fixed

// mergeOp names the primitive operation being merged for. Kept
// unexported: callers never build
// one directly, arith.go's Mul/Add/Sub/Div/Neg/Abs pass the right
// constant.
type mergeOp uint8

const (
	opMerge mergeOp = iota
	opMul
	opAdd
	opSub
	opDiv
	opNeg
	opAbs
)

// commonRound returns the shared rounding mode of f1 and f2 if they
// agree, else the library default (RndTCPL).
func commonRound(f1, f2 Format) RoundMode {
	if f1.Rnd == f2.Rnd {
		return f1.Rnd
	}
	return RndTCPL
}

// commonOverflow returns the shared overflow mode of f1 and f2 if they
// agree, else the library default (OvfSatTCPL).
func commonOverflow(f1, f2 Format) OverflowMode {
	if f1.Ovf == f2.Ovf {
		return f1.Ovf
	}
	return OvfSatTCPL
}

// mergeFormat is the merger rule: the deterministic pure function
// deriving F_out from the input format(s), the policy bundle, and the
// operation. It runs after bundle application, so an explicit bundle
// tag always overrides the corresponding merged axis.
func mergeFormat(f1, f2 Format, b Bundle, op mergeOp) Format {
	var iOut, fOut int
	var signed bool
	rnd := commonRound(f1, f2)
	ovf := commonOverflow(f1, f2)

	switch op {
	case opMul:
		if b.fullPrec {
			iOut = f1.IntBits + f2.IntBits
			fOut = f1.FracBits + f2.FracBits
		} else {
			iOut = maxInt(f1.IntBits, f2.IntBits)
			fOut = maxInt(f1.FracBits, f2.FracBits)
		}
		signed = f1.Signed || f2.Signed
	case opAdd, opSub, opDiv:
		iOut = maxInt(f1.IntBits, f2.IntBits)
		if b.fullPrec {
			iOut++
		}
		fOut = maxInt(f1.FracBits, f2.FracBits)
		signed = f1.Signed || f2.Signed
	case opNeg:
		iOut = f1.IntBits + 1
		fOut = f1.FracBits
		signed = true
	case opAbs:
		if !f1.Signed {
			iOut, fOut, signed = f1.IntBits, f1.FracBits, false
		} else {
			iOut, fOut, signed = f1.IntBits+1, f1.FracBits, true
		}
	}

	if b.intBits != nil {
		iOut = *b.intBits
	}
	if b.fracBits != nil {
		fOut = *b.fracBits
	}
	if b.signed != nil {
		signed = *b.signed
	}
	if b.rnd != nil {
		rnd = *b.rnd
	}
	if b.ovf != nil {
		ovf = *b.ovf
	}

	// The width cap is skipped when FullPrec is requested: FullPrec
	// means the output is wide enough to hold the exact ideal result
	// with no rounding or overflow, and capping would reintroduce
	// exactly the quantization it exists to avoid. A FullPrec product
	// of two 31-bit formats still fits the int64 accumulator.
	if !b.fullPrec {
		iOut, fOut = capWidth(iOut, fOut)
	}

	return Format{IntBits: iOut, FracBits: fOut, Signed: signed, Rnd: rnd, Ovf: ovf}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
