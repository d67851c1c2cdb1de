package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// A full-precision product of two (12,8) operands lands in (24,16)
// with no quantization: 3.0 * 0.5 == 1.5 exactly.
func TestMul_FullPrecWidensToExactProduct(t *testing.T) {
	f := MustNewFormat(12, 8, true, RndTCPL, OvfSatTCPL)
	a := FromReal(3.0, f)
	b := FromReal(0.5, f)

	got := Mul(a, b, FullPrec())

	assert.Equal(t, 24, got.Format.IntBits)
	assert.Equal(t, 16, got.Format.FracBits)
	assert.True(t, got.Format.Signed)
	assert.Equal(t, RndTCPL, got.Format.Rnd)
	assert.Equal(t, OvfSatTCPL, got.Format.Ovf)
	assert.InDelta(t, 1.5, got.Real(), 1e-9)
}

func TestMul_NonFullPrec_UsesMaxWidths(t *testing.T) {
	f1 := MustNewFormat(4, 4, true, RndTCPL, OvfSatTCPL)
	f2 := MustNewFormat(8, 2, true, RndTCPL, OvfSatTCPL)
	a := FromReal(1.5, f1)
	b := FromReal(2.0, f2)

	got := Mul(a, b)
	assert.Equal(t, 8, got.Format.IntBits)
	assert.Equal(t, 4, got.Format.FracBits)
	assert.InDelta(t, 3.0, got.Real(), 1.0/16)
}

func TestAdd_LeftAlignsToMaxFrac(t *testing.T) {
	f1 := MustNewFormat(4, 2, true, RndTCPL, OvfSatTCPL)
	f2 := MustNewFormat(4, 4, true, RndTCPL, OvfSatTCPL)
	a := FromReal(1.25, f1)
	b := FromReal(0.5, f2)

	got := Add(a, b)
	assert.Equal(t, 4, got.Format.FracBits)
	assert.InDelta(t, 1.75, got.Real(), 1.0/16)
}

func TestSub_Basic(t *testing.T) {
	f := MustNewFormat(8, 4, true, RndTCPL, OvfSatTCPL)
	a := FromReal(3.0, f)
	b := FromReal(1.25, f)
	got := Sub(a, b)
	assert.InDelta(t, 1.75, got.Real(), 1.0/16)
}

func TestDiv_Basic(t *testing.T) {
	f := MustNewFormat(8, 8, true, RndTCPL, OvfSatTCPL)
	a := FromReal(3.0, f)
	b := FromReal(2.0, f)
	got := Div(a, b)
	assert.InDelta(t, 1.5, got.Real(), 1.0/256)
}

func TestDiv_ByZeroReturnsZero(t *testing.T) {
	f := MustNewFormat(8, 8, true, RndTCPL, OvfSatTCPL)
	a := FromReal(3.0, f)
	zero := FromReal(0.0, f)
	got := Div(a, zero)
	assert.Equal(t, int64(0), got.Data)
}

func TestDiv_WidthLimitAsserted(t *testing.T) {
	aFmt := MustNewFormat(1, 0, true, RndTCPL, OvfSatTCPL)
	bFmt := MustNewFormat(0, 31, true, RndTCPL, OvfSatTCPL)
	fOut := MustNewFormat(0, 31, true, RndTCPL, OvfSatTCPL)
	err := AssertDivWidth(aFmt, bFmt, fOut)
	assert.ErrorIs(t, err, ErrDivWidthExceeded)
}

func TestDiv_WidthLimitNotTrippedForNormalFormats(t *testing.T) {
	f := MustNewFormat(8, 8, true, RndTCPL, OvfSatTCPL)
	err := AssertDivWidth(f, f, f)
	assert.NoError(t, err)
}

func TestNeg_GainsIntBitAndIsSigned(t *testing.T) {
	f := MustNewFormat(4, 4, false, RndTCPL, OvfSatTCPL)
	a := FromReal(3.0, f)
	got := Neg(a)
	assert.Equal(t, 5, got.Format.IntBits)
	assert.True(t, got.Format.Signed)
	assert.InDelta(t, -3.0, got.Real(), 1.0/16)
}

func TestAbs_UnsignedIsIdentity(t *testing.T) {
	f := MustNewFormat(4, 4, false, RndTCPL, OvfSatTCPL)
	a := FromReal(3.0, f)
	got := Abs(a)
	assert.Equal(t, f, got.Format)
	assert.InDelta(t, 3.0, got.Real(), 1.0/16)
}

func TestAbs_SignedGainsIntBit(t *testing.T) {
	f := MustNewFormat(4, 4, true, RndTCPL, OvfSatTCPL)
	a := FromReal(-3.0, f)
	got := Abs(a)
	assert.Equal(t, 5, got.Format.IntBits)
	assert.InDelta(t, 3.0, got.Real(), 1.0/16)
}

func TestCmp_Ordering(t *testing.T) {
	f1 := MustNewFormat(4, 2, true, RndTCPL, OvfSatTCPL)
	f2 := MustNewFormat(4, 4, true, RndTCPL, OvfSatTCPL)
	a := FromReal(1.0, f1)
	b := FromReal(2.0, f2)
	assert.Equal(t, -1, Cmp(a, b))
	assert.Equal(t, 1, Cmp(b, a))
	assert.Equal(t, 0, Cmp(a, a))
}

func TestBundle_ExplicitOverridesWinOverMerge(t *testing.T) {
	f := MustNewFormat(4, 4, true, RndTCPL, OvfSatTCPL)
	a := FromReal(1.0, f)
	b := FromReal(1.0, f)
	got := Add(a, b, IntBits(10), FracBits(2), WithRoundMode(RndConv), WithOverflowMode(OvfWrpTCPL))
	assert.Equal(t, 10, got.Format.IntBits)
	assert.Equal(t, 2, got.Format.FracBits)
	assert.Equal(t, RndConv, got.Format.Rnd)
	assert.Equal(t, OvfWrpTCPL, got.Format.Ovf)
}
