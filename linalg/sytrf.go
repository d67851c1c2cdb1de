package linalg

import (
	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Qsytrf factors the symmetric matrix A into A = L·D·Lᵀ: L is written
// with an implicit unit diagonal (the diagonal of L
// is never read or written by this routine — callers should pre-
// initialize it to 1 if they intend to read L back out as a full dense
// matrix), D is the diagonal factor, and the {LD, sumLD} bundle pair lets
// a caller control the truncation of each L[i,k]*L[j,k]*D[k]-style
// summand independently from the running sum that accumulates them.
//
// Stage 1 (Validate): A must be square; L must match A's shape; D must
// be 1-dimensional with length equal to A's side.
// Stage 2 (Factor): for each column j, accumulate the LD-weighted sum
// over prior columns, derive D[j], then derive L[i,j] for i>j by
// dividing the corresponding off-diagonal residual by D[j].
func Qsytrf(L, D, A *tensor.Tensor, opts ...SytrfOption) error {
	cfg := sytrfConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	n, err := squareSide(A)
	if err != nil {
		return linalgErrorf(opSytrf, err)
	}
	lShape := L.Shape()
	if len(lShape) != 2 || lShape[0] != n || lShape[1] != n {
		return linalgErrorf(opSytrf, ErrDimensionMismatch)
	}
	if len(D.Shape()) != 1 || D.Shape()[0] != n {
		return linalgErrorf(opSytrf, ErrNot1D)
	}

	ldOpts := bundleOpts(cfg.ldBundle)
	sumOpts := bundleOpts(cfg.sumLDBundle)
	zero := fixed.FromReal(0, D.Format())

	for j := 0; j < n; j++ {
		sum := zero
		for k := 0; k < j; k++ {
			ljk, err := L.At(j, k)
			if err != nil {
				return linalgErrorf(opSytrf, err)
			}
			dk, err := D.At(k)
			if err != nil {
				return linalgErrorf(opSytrf, err)
			}
			term := fixed.Mul(fixed.Mul(ljk, ljk, ldOpts...), dk, ldOpts...)
			sum = fixed.Add(sum, term, sumOpts...)
		}
		ajj, err := A.At(j, j)
		if err != nil {
			return linalgErrorf(opSytrf, err)
		}
		dj := fixed.Sub(ajj, sum)
		if err := D.Set(dj, j); err != nil {
			return linalgErrorf(opSytrf, err)
		}

		for i := j + 1; i < n; i++ {
			sum2 := zero
			for k := 0; k < j; k++ {
				lik, err := L.At(i, k)
				if err != nil {
					return linalgErrorf(opSytrf, err)
				}
				ljk, err := L.At(j, k)
				if err != nil {
					return linalgErrorf(opSytrf, err)
				}
				dk, err := D.At(k)
				if err != nil {
					return linalgErrorf(opSytrf, err)
				}
				term := fixed.Mul(fixed.Mul(lik, ljk, ldOpts...), dk, ldOpts...)
				sum2 = fixed.Add(sum2, term, sumOpts...)
			}
			aij, err := A.At(i, j)
			if err != nil {
				return linalgErrorf(opSytrf, err)
			}
			residual := fixed.Sub(aij, sum2)
			if err := L.Set(fixed.Div(residual, dj), i, j); err != nil {
				return linalgErrorf(opSytrf, err)
			}
		}
	}
	return nil
}
