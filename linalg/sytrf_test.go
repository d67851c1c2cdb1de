package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qufix/qufix/tensor"
)

func TestQsytrf_FactorsLDLt(t *testing.T) {
	f := q816()
	A := newMatrix(t, f, 2, 2, []float64{4, 2, 2, 3})
	L, err := tensor.New([]int{2, 2}, f)
	require.NoError(t, err)
	D, err := tensor.New([]int{2}, f)
	require.NoError(t, err)

	require.NoError(t, Qsytrf(L, D, A))

	d0, _ := D.At(0)
	d1, _ := D.At(1)
	l10, _ := L.At(1, 0)
	assert.InDelta(t, 4.0, d0.Real(), 1.0/256)
	assert.InDelta(t, 2.0, d1.Real(), 1.0/256)
	assert.InDelta(t, 0.5, l10.Real(), 1.0/256)
}

func TestQsytrf_DimensionMismatch(t *testing.T) {
	f := q816()
	A := newMatrix(t, f, 2, 2, []float64{4, 2, 2, 3})
	L, err := tensor.New([]int{3, 3}, f)
	require.NoError(t, err)
	D, err := tensor.New([]int{2}, f)
	require.NoError(t, err)

	err = Qsytrf(L, D, A)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
