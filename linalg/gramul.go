package linalg

import (
	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Qgramul computes the Gram matrix C = Aᵀ·A (or, with QgramulTrans,
// C = A·Aᵀ): diagonal cells route their partial products and reduce
// pass through {diagMul, diagAdd}, off-diagonal cells through
// {offMul, offAdd} — the split lets a caller give the always-nonnegative
// diagonal a different overflow policy than the off-diagonal terms.
//
// Stage 1 (Validate): A must be 2-dimensional; C must be square with
// side equal to the contracted-against dimension of op(A).
// Stage 2 (Compute): for each cell (i,j), build the contracted-length
// product vector from op(A)'s rows/cols and Qreduce it under the
// diagonal or off-diagonal bundle pair.
func Qgramul(C, A *tensor.Tensor, opts ...GramulOption) error {
	cfg := gramulConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	shape := A.Shape()
	if len(shape) != 2 {
		return linalgErrorf(opGramul, ErrDimensionMismatch)
	}
	// contractLen is the axis summed over: rows when computing AᵀA,
	// cols when computing AAᵀ. outN is the resulting square side.
	contractLen, outN := shape[0], shape[1]
	if cfg.trans {
		contractLen, outN = shape[1], shape[0]
	}

	cShape := C.Shape()
	if len(cShape) != 2 || cShape[0] != outN || cShape[1] != outN {
		return linalgErrorf(opGramul, ErrDimensionMismatch)
	}

	diagMulOpts := bundleOpts(cfg.diagMul)
	offMulOpts := bundleOpts(cfg.offMul)
	// Separate scratch vectors per path: the diagonal and off-diagonal
	// product formats differ whenever their mul bundles do, and holding
	// diagonal partials in the off-diagonal format would re-quantize
	// them before the reduce.
	diagSample := fixed.Mul(fixed.Value{Format: A.Format()}, fixed.Value{Format: A.Format()}, diagMulOpts...)
	diagProd, err := tensor.New([]int{contractLen}, diagSample.Format)
	if err != nil {
		return linalgErrorf(opGramul, err)
	}
	offSample := fixed.Mul(fixed.Value{Format: A.Format()}, fixed.Value{Format: A.Format()}, offMulOpts...)
	offProd, err := tensor.New([]int{contractLen}, offSample.Format)
	if err != nil {
		return linalgErrorf(opGramul, err)
	}

	// colAt reads the (i-th of the outN axis, k-th of the contracted
	// axis) operand: A[k,i] for AᵀA, A[i,k] for AAᵀ.
	colAt := func(i, k int) (fixed.Value, error) {
		if cfg.trans {
			return A.At(i, k)
		}
		return A.At(k, i)
	}

	for i := 0; i < outN; i++ {
		for j := i; j < outN; j++ {
			mulOpts, addBundle, prod := offMulOpts, cfg.offAdd, offProd
			if i == j {
				mulOpts, addBundle, prod = diagMulOpts, cfg.diagAdd, diagProd
			}
			for k := 0; k < contractLen; k++ {
				ai, err := colAt(i, k)
				if err != nil {
					return linalgErrorf(opGramul, err)
				}
				aj, err := colAt(j, k)
				if err != nil {
					return linalgErrorf(opGramul, err)
				}
				if err := prod.Set(fixed.Mul(ai, aj, mulOpts...), k); err != nil {
					return linalgErrorf(opGramul, err)
				}
			}
			sum, err := tensor.Qreduce(prod, fixed.Add, []fixed.Bundle{addBundle})
			if err != nil {
				return linalgErrorf(opGramul, err)
			}
			if err := C.Set(sum, i, j); err != nil {
				return linalgErrorf(opGramul, err)
			}
			if i != j {
				if err := C.Set(sum, j, i); err != nil {
					return linalgErrorf(opGramul, err)
				}
			}
		}
	}
	return nil
}
