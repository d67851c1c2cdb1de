package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

func newVector(t *testing.T, f fixed.Format, vals []float64) *tensor.Tensor {
	t.Helper()
	v, err := tensor.New([]int{len(vals)}, f)
	require.NoError(t, err)
	for i, val := range vals {
		require.NoError(t, v.Set(fixed.FromReal(val, f), i))
	}
	return v
}

func TestQgemv_DefaultAlphaOneBetaZero(t *testing.T) {
	f := q128()
	A := newMatrix(t, f, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := newVector(t, f, []float64{1, 1, 1})
	y, err := tensor.New([]int{2}, f)
	require.NoError(t, err)

	require.NoError(t, Qgemv(y, A, x))

	y0, _ := y.At(0)
	y1, _ := y.At(1)
	assert.InDelta(t, 6.0, y0.Real(), 1.0/256)
	assert.InDelta(t, 15.0, y1.Real(), 1.0/256)
}

func TestQgemv_AlphaBetaScaling(t *testing.T) {
	f := q128()
	A := newMatrix(t, f, 2, 2, []float64{1, 0, 0, 1})
	x := newVector(t, f, []float64{2, 3})
	y := newVector(t, f, []float64{10, 10})

	require.NoError(t, Qgemv(y, A, x, QgemvAlpha(fixed.FromReal(2, f)), QgemvBeta(fixed.FromReal(0.5, f))))

	y0, _ := y.At(0)
	y1, _ := y.At(1)
	// y = 2*(1*2) + 0.5*10 = 4+5 = 9 ; y = 2*(1*3)+0.5*10 = 6+5 = 11
	assert.InDelta(t, 9.0, y0.Real(), 1.0/128)
	assert.InDelta(t, 11.0, y1.Real(), 1.0/128)
}

func TestQgemv_TransposeTag(t *testing.T) {
	f := q128()
	A := newMatrix(t, f, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := newVector(t, f, []float64{1, 1})
	y, err := tensor.New([]int{3}, f)
	require.NoError(t, err)

	require.NoError(t, Qgemv(y, A, x, QgemvTransA()))

	want := []float64{5, 7, 9}
	for i, w := range want {
		yi, _ := y.At(i)
		assert.InDelta(t, w, yi.Real(), 1.0/256)
	}
}

func TestQgemv_DimensionMismatch(t *testing.T) {
	f := q128()
	A := newMatrix(t, f, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	x := newVector(t, f, []float64{1, 1})
	y, err := tensor.New([]int{2}, f)
	require.NoError(t, err)

	err = Qgemv(y, A, x)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
