package fixed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_ValidateRejectsWidthCapViolation(t *testing.T) {
	_, err := NewFormat(20, 20, true, RndTCPL, OvfSatTCPL)
	assert.ErrorIs(t, err, ErrWidthCap)
}

func TestFormat_ValidateRejectsNegativeWidth(t *testing.T) {
	_, err := NewFormat(-1, 4, true, RndTCPL, OvfSatTCPL)
	assert.ErrorIs(t, err, ErrNegativeWidth)
}

func TestFormat_ValidateAcceptsBoundaryWidth(t *testing.T) {
	f, err := NewFormat(16, 15, true, RndTCPL, OvfSatTCPL)
	require.NoError(t, err)
	assert.Equal(t, 31, f.TotalBits())
}

func TestFormat_Bounds_Signed(t *testing.T) {
	f := MustNewFormat(2, 0, true, RndTCPL, OvfSatTCPL)
	min, max := f.Bounds()
	assert.Equal(t, int64(-4), min)
	assert.Equal(t, int64(3), max)
}

func TestFormat_Bounds_Unsigned(t *testing.T) {
	f := MustNewFormat(2, 0, false, RndTCPL, OvfSatTCPL)
	min, max := f.Bounds()
	assert.Equal(t, int64(0), min)
	assert.Equal(t, int64(3), max)
}

func TestMustNewFormat_PanicsOnInvalidFormat(t *testing.T) {
	assert.Panics(t, func() {
		MustNewFormat(31, 31, true, RndTCPL, OvfSatTCPL)
	})
}

func TestCapWidth_SymmetricReduction(t *testing.T) {
	i, f := capWidth(24, 16) // 40 total, 9 over
	assert.LessOrEqual(t, i+f, MaxTotalBits)
}

func TestCapWidth_NoOpWhenWithinBudget(t *testing.T) {
	i, f := capWidth(10, 10)
	assert.Equal(t, 10, i)
	assert.Equal(t, 10, f)
}

func TestRoundMode_StringAndValid(t *testing.T) {
	assert.Equal(t, "CONV", RndConv.String())
	assert.True(t, RndConv.valid())
	assert.False(t, RoundMode(0).valid())
}

func TestOverflowMode_StringAndValid(t *testing.T) {
	assert.Equal(t, "WRP_TCPL", OvfWrpTCPL.String())
	assert.True(t, OvfWrpTCPL.valid())
	assert.False(t, OverflowMode(99).valid())
}
