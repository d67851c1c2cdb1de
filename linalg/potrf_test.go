package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

func q816() fixed.Format {
	return fixed.MustNewFormat(8, 16, true, fixed.RndTCPL, fixed.OvfSatTCPL)
}

func TestQpotrf_ReciprocalDiagonalStorage(t *testing.T) {
	f := q816()
	A := newMatrix(t, f, 2, 2, []float64{4, 2, 2, 3})

	require.NoError(t, Qpotrf(A))

	d0, err := A.At(0, 0)
	require.NoError(t, err)
	d1, err := A.At(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d0.Real(), 1.0/65536)
	assert.InDelta(t, 1.0/1.4142135623730951, d1.Real(), 1.0/4096)
}

func TestQpotrf_NonPositiveDefiniteLeavesResidualSignal(t *testing.T) {
	f := q816()
	A := newMatrix(t, f, 2, 2, []float64{1, 2, 2, 1}) // not PD: det = -3
	require.NoError(t, Qpotrf(A)) // non-PD is not an error return

	d1, err := A.At(1, 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, d1.Real(), 0.0)
}

func TestQpotrf_NonSquareRejected(t *testing.T) {
	f := q816()
	A := newMatrix(t, f, 2, 3, []float64{1, 0, 0, 0, 1, 0})
	err := Qpotrf(A)
	assert.ErrorIs(t, err, ErrNonSquare)
}

func TestCheckPositiveDefinite(t *testing.T) {
	f := q816()
	spd := newMatrix(t, f, 2, 2, []float64{4, 2, 2, 3})
	notSPD := newMatrix(t, f, 2, 2, []float64{1, 2, 2, 1})
	assert.True(t, CheckPositiveDefinite(spd))
	assert.False(t, CheckPositiveDefinite(notSPD))
	// Clone isolation: the original must still be the unfactored matrix.
	v, err := spd.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v.Real(), 1.0/65536)
}

func TestStandardCholeskyFactor(t *testing.T) {
	f := q816()
	A := newMatrix(t, f, 2, 2, []float64{4, 2, 2, 3})
	require.NoError(t, Qpotrf(A))

	L, err := StandardCholeskyFactor(A)
	require.NoError(t, err)
	d0, _ := L.At(0, 0)
	d1, _ := L.At(1, 1)
	assert.InDelta(t, 2.0, d0.Real(), 1.0/256)
	assert.InDelta(t, 1.4142135623730951, d1.Real(), 1.0/128)
}

func TestQpotrs_SolvesAgainstKnownSystem(t *testing.T) {
	f := q816()
	A := newMatrix(t, f, 2, 2, []float64{4, 2, 2, 3})
	require.NoError(t, Qpotrf(A))

	b, err := tensor.New([]int{2}, f)
	require.NoError(t, err)
	require.NoError(t, b.Set(fixed.FromReal(2, f), 0))
	require.NoError(t, b.Set(fixed.FromReal(1, f), 1))

	require.NoError(t, Qpotrs(A, b))

	x0, err := b.At(0)
	require.NoError(t, err)
	x1, err := b.At(1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, x0.Real(), 1.0/256)
	assert.InDelta(t, 0.0, x1.Real(), 1.0/256)
}
