package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

func q128() fixed.Format {
	return fixed.MustNewFormat(12, 8, true, fixed.RndTCPL, fixed.OvfSatTCPL)
}

func newMatrix(t *testing.T, f fixed.Format, rows, cols int, vals []float64) *tensor.Tensor {
	t.Helper()
	m, err := tensor.New([]int{rows, cols}, f)
	require.NoError(t, err)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.NoError(t, m.Set(fixed.FromReal(vals[i*cols+j], f), i, j))
		}
	}
	return m
}

func TestQgemul_ScaledIdentity(t *testing.T) {
	f := q128()
	A := newMatrix(t, f, 3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	B := newMatrix(t, f, 3, 3, []float64{0.5, 0, 0, 0, 0.5, 0, 0, 0, 0.5})
	C, err := tensor.New([]int{3, 3}, f)
	require.NoError(t, err)

	err = Qgemul(C, A, B, QgemulAddArgs(fixed.NewBundle(fixed.FullPrec())), QgemulMulArgs(fixed.NewBundle(fixed.FullPrec())))
	require.NoError(t, err)

	want := []float64{0.5, 1.0, 1.5, 2.0, 2.5, 3.0, 3.5, 4.0, 4.5}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, err := C.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, want[i*3+j], v.Real(), 1.0/256)
		}
	}
}

func TestQgemul_TransposeTags(t *testing.T) {
	f := q128()
	A := newMatrix(t, f, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	At := newMatrix(t, f, 3, 2, []float64{1, 4, 2, 5, 3, 6})

	C1, err := tensor.New([]int{2, 2}, f)
	require.NoError(t, err)
	require.NoError(t, Qgemul(C1, A, At))

	C2, err := tensor.New([]int{2, 2}, f)
	require.NoError(t, err)
	require.NoError(t, Qgemul(C2, At, A, QgemulTransA(), QgemulTransB()))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v1, _ := C1.At(i, j)
			v2, _ := C2.At(i, j)
			assert.InDelta(t, v1.Real(), v2.Real(), 1.0/256)
		}
	}
}

func TestQgemul_DimensionMismatch(t *testing.T) {
	f := q128()
	A := newMatrix(t, f, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	B := newMatrix(t, f, 2, 2, []float64{1, 0, 0, 1})
	C, err := tensor.New([]int{2, 2}, f)
	require.NoError(t, err)

	err = Qgemul(C, A, B)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}
