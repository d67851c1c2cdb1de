package linalg

import (
	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Qgemul computes C = op(A)·op(B): for each output cell (i,j), the
// length-K vector of partial products
// Qmul<mulBundle>(op(A)[i,k], op(B)[k,j]) for k = 0…K-1 is built in a
// temporary tensor at the merged product format, then folded into
// C[i,j] by Qreduce<addBundle> — C is assigned, not accumulated into.
//
// Stage 1 (Validate): resolve op(A)/op(B)'s logical (rows, cols) against
// the transA/transB tags and check K matches and C's shape matches
// (rows(A), cols(B)).
// Stage 2 (Compute): for every output cell, build the K-length product
// vector and Qreduce it.
// Stage 3 (Finalize): every cell of C has been assigned; return nil.
//
// Complexity: O(rows(A)·cols(B)·K) scalar combines.
func Qgemul(C, A, B *tensor.Tensor, opts ...GemulOption) error {
	cfg := gemulConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	aRows, aCols, err := orientedDims2D(A, cfg.transA)
	if err != nil {
		return linalgErrorf(opGemul, err)
	}
	bRows, bCols, err := orientedDims2D(B, cfg.transB)
	if err != nil {
		return linalgErrorf(opGemul, err)
	}
	if aCols != bRows {
		return linalgErrorf(opGemul, ErrDimensionMismatch)
	}
	cShape := C.Shape()
	if len(cShape) != 2 || cShape[0] != aRows || cShape[1] != bCols {
		return linalgErrorf(opGemul, ErrDimensionMismatch)
	}

	mulOpts := bundleOpts(cfg.mulBundle)
	sample := fixed.Mul(fixed.Value{Format: A.Format()}, fixed.Value{Format: B.Format()}, mulOpts...)
	prod, err := tensor.New([]int{aCols}, sample.Format)
	if err != nil {
		return linalgErrorf(opGemul, err)
	}

	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			for k := 0; k < aCols; k++ {
				av, err := atOriented2D(A, cfg.transA, i, k)
				if err != nil {
					return linalgErrorf(opGemul, err)
				}
				bv, err := atOriented2D(B, cfg.transB, k, j)
				if err != nil {
					return linalgErrorf(opGemul, err)
				}
				if err := prod.Set(fixed.Mul(av, bv, mulOpts...), k); err != nil {
					return linalgErrorf(opGemul, err)
				}
			}
			sum, err := tensor.Qreduce(prod, fixed.Add, []fixed.Bundle{cfg.addBundle})
			if err != nil {
				return linalgErrorf(opGemul, err)
			}
			if err := C.Set(sum, i, j); err != nil {
				return linalgErrorf(opGemul, err)
			}
		}
	}
	return nil
}

// orientedDims2D returns t's logical (rows, cols) as seen through op(t),
// swapping the two axes when trans is set.
func orientedDims2D(t *tensor.Tensor, trans bool) (rows, cols int, err error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return 0, 0, ErrDimensionMismatch
	}
	if trans {
		return shape[1], shape[0], nil
	}
	return shape[0], shape[1], nil
}

// atOriented2D reads t[i,j] through op(t): t.At(j,i) when trans is set,
// t.At(i,j) otherwise.
func atOriented2D(t *tensor.Tensor, trans bool, i, j int) (fixed.Value, error) {
	if trans {
		return t.At(j, i)
	}
	return t.At(i, j)
}
