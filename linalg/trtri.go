package linalg

import (
	"github.com/qufix/qufix/anus"
	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Qtrtri computes Ainv, the inverse of the triangular matrix A. By
// default A is treated as lower-triangular and the
// recurrence runs top-left to bottom-right; QtrtriUpper runs the
// analogous recurrence from the bottom-right for an upper-triangular A.
// Diagonal entries are inverted via anus.Recip (a Qtable reciprocal);
// the sumBundle tag controls the running sum in the off-diagonal
// recurrence.
//
// Stage 1 (Validate): A must be square; Ainv must match A's shape.
// Stage 2 (Invert): diagonal entries first, then off-diagonal entries by
// the standard triangular-inverse recurrence, working outward from the
// diagonal already computed.
func Qtrtri(Ainv, A *tensor.Tensor, opts ...TrtriOption) error {
	cfg := trtriConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	n, err := squareSide(A)
	if err != nil {
		return linalgErrorf(opTrtri, err)
	}
	if !sameShape2D(Ainv, A) {
		return linalgErrorf(opTrtri, ErrDimensionMismatch)
	}

	sumOpts := bundleOpts(cfg.sumBundle)
	zero := fixed.FromReal(0, A.Format())

	if cfg.upper {
		for i := n - 1; i >= 0; i-- {
			aii, err := A.At(i, i)
			if err != nil {
				return linalgErrorf(opTrtri, err)
			}
			if err := Ainv.Set(anus.Recip(aii), i, i); err != nil {
				return linalgErrorf(opTrtri, err)
			}
			for j := i - 1; j >= 0; j-- {
				sum := zero
				for k := j + 1; k <= i; k++ {
					ajk, err := A.At(j, k)
					if err != nil {
						return linalgErrorf(opTrtri, err)
					}
					aki, err := Ainv.At(k, i)
					if err != nil {
						return linalgErrorf(opTrtri, err)
					}
					sum = fixed.Add(sum, fixed.Mul(ajk, aki), sumOpts...)
				}
				ajj, err := A.At(j, j)
				if err != nil {
					return linalgErrorf(opTrtri, err)
				}
				aji := fixed.Div(fixed.Neg(sum), ajj)
				if err := Ainv.Set(aji, j, i); err != nil {
					return linalgErrorf(opTrtri, err)
				}
			}
		}
		return nil
	}

	for i := 0; i < n; i++ {
		aii, err := A.At(i, i)
		if err != nil {
			return linalgErrorf(opTrtri, err)
		}
		if err := Ainv.Set(anus.Recip(aii), i, i); err != nil {
			return linalgErrorf(opTrtri, err)
		}
		for j := i + 1; j < n; j++ {
			sum := zero
			for k := i; k < j; k++ {
				ajk, err := A.At(j, k)
				if err != nil {
					return linalgErrorf(opTrtri, err)
				}
				aki, err := Ainv.At(k, i)
				if err != nil {
					return linalgErrorf(opTrtri, err)
				}
				sum = fixed.Add(sum, fixed.Mul(ajk, aki), sumOpts...)
			}
			ajj, err := A.At(j, j)
			if err != nil {
				return linalgErrorf(opTrtri, err)
			}
			aji := fixed.Div(fixed.Neg(sum), ajj)
			if err := Ainv.Set(aji, j, i); err != nil {
				return linalgErrorf(opTrtri, err)
			}
		}
	}
	return nil
}

// sameShape2D reports whether a and b are both 2-dimensional with equal
// shapes.
func sameShape2D(a, b *tensor.Tensor) bool {
	as, bs := a.Shape(), b.Shape()
	if len(as) != 2 || len(bs) != 2 {
		return false
	}
	return as[0] == bs[0] && as[1] == bs[1]
}
