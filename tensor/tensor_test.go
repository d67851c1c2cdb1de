package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qufix/qufix/fixed"
)

func testFormat() fixed.Format {
	return fixed.MustNewFormat(8, 8, true, fixed.RndTCPL, fixed.OvfSatTCPL)
}

func TestNew_RejectsBadShape(t *testing.T) {
	_, err := New(nil, testFormat())
	assert.ErrorIs(t, err, ErrBadShape)

	_, err = New([]int{2, 0}, testFormat())
	assert.ErrorIs(t, err, ErrBadShape)
}

func TestNew_AllocatesZeroedData(t *testing.T) {
	tn, err := New([]int{2, 3}, testFormat())
	require.NoError(t, err)
	assert.Equal(t, 6, tn.Len())
	v, err := tn.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v.Data)
}

func TestSetAt_RoundTrips(t *testing.T) {
	tn, err := New([]int{2, 2}, testFormat())
	require.NoError(t, err)
	v := fixed.FromReal(1.5, testFormat())
	require.NoError(t, tn.Set(v, 1, 0))
	got, err := tn.At(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, got.Real(), 1.0/256)
}

func TestAt_OutOfBounds(t *testing.T) {
	tn, err := New([]int{2, 2}, testFormat())
	require.NoError(t, err)
	_, err = tn.At(2, 0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = tn.At(0)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}

func TestSet_RequantizesForeignFormat(t *testing.T) {
	tn, err := New([]int{1}, testFormat())
	require.NoError(t, err)
	foreign := fixed.FromReal(2.5, fixed.MustNewFormat(4, 4, true, fixed.RndTCPL, fixed.OvfSatTCPL))
	require.NoError(t, tn.Set(foreign, 0))
	got, err := tn.At(0)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, got.Real(), 1.0/256)
}

func TestClone_IsIndependent(t *testing.T) {
	tn, err := New([]int{2}, testFormat())
	require.NoError(t, err)
	require.NoError(t, tn.Set(fixed.FromReal(1.0, testFormat()), 0))
	clone := tn.Clone()
	require.NoError(t, clone.Set(fixed.FromReal(9.0, testFormat()), 0))

	orig, _ := tn.At(0)
	cloned, _ := clone.At(0)
	assert.InDelta(t, 1.0, orig.Real(), 1.0/256)
	assert.InDelta(t, 9.0, cloned.Real(), 1.0/256)
}

func TestFill_AppliesGeneratorToEveryElement(t *testing.T) {
	tn, err := New([]int{3}, testFormat())
	require.NoError(t, err)
	tn.Fill(func(i int) fixed.Value {
		return fixed.FromReal(float64(i), testFormat())
	})
	for i := 0; i < 3; i++ {
		v, _ := tn.At(i)
		assert.InDelta(t, float64(i), v.Real(), 1.0/256)
	}
}

func TestShape_ReturnsIndependentCopy(t *testing.T) {
	tn, err := New([]int{2, 3}, testFormat())
	require.NoError(t, err)
	shape := tn.Shape()
	shape[0] = 99
	assert.Equal(t, []int{2, 3}, tn.Shape())
}

func TestAtFlat_WalksRowMajorOrder(t *testing.T) {
	tn, err := New([]int{2, 2}, testFormat())
	require.NoError(t, err)
	vals := []float64{1, 2, 3, 4}
	for i, x := range vals {
		require.NoError(t, tn.SetFlat(fixed.FromReal(x, testFormat()), i))
	}
	v, err := tn.At(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, v.Real(), 1.0/256)

	for i, x := range vals {
		got, err := tn.AtFlat(i)
		require.NoError(t, err)
		assert.InDelta(t, x, got.Real(), 1.0/256)
	}
}

func TestAtFlat_OutOfRangeErrors(t *testing.T) {
	tn, err := New([]int{2}, testFormat())
	require.NoError(t, err)
	_, err = tn.AtFlat(2)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	err = tn.SetFlat(fixed.Value{}, -1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}
