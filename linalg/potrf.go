package linalg

import (
	"github.com/qufix/qufix/anus"
	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Qpotrf factors the symmetric positive-definite matrix A in place into
// its lower Cholesky factor L, such that L·Lᵀ = A, with a non-standard
// storage convention: each diagonal entry L[j,j] stores
// rsqrt(A[j,j]) — the reciprocal square root, via anus.Rsqrt — rather
// than sqrt(A[j,j]), so the downstream triangular solve (Qpotrs) can
// multiply by the diagonal instead of dividing by it.
//
// Stage 1 (Validate): A must be square.
// Stage 2 (Factor): standard outer-product Cholesky column sweep, with
// the diagonal's reciprocal-square-root substitution.
// Stage 3 (Non-PD signal): if a diagonal pivot is <= 0 after the column
// update, A is not positive definite; Qpotrf returns nil immediately
// rather than an error, leaving A partially factored
// with that column's diagonal holding its non-positive pre-rsqrt
// residual. A caller that wants a definite yes/no should call
// CheckPositiveDefinite instead of inspecting A directly.
//
// Complexity: O(n³/3) scalar combines, matching the standard Cholesky
// operation count.
func Qpotrf(A *tensor.Tensor, opts ...PotrfOption) error {
	cfg := potrfConfig{lower: true}
	for _, o := range opts {
		o(&cfg)
	}

	n, err := squareSide(A)
	if err != nil {
		return linalgErrorf(opPotrf, err)
	}

	for j := 0; j < n; j++ {
		for k := 0; k < j; k++ {
			ajk, err := A.At(j, k)
			if err != nil {
				return linalgErrorf(opPotrf, err)
			}
			for i := j; i < n; i++ {
				aik, err := A.At(i, k)
				if err != nil {
					return linalgErrorf(opPotrf, err)
				}
				aij, err := A.At(i, j)
				if err != nil {
					return linalgErrorf(opPotrf, err)
				}
				updated := fixed.Sub(aij, fixed.Mul(aik, ajk))
				if err := A.Set(updated, i, j); err != nil {
					return linalgErrorf(opPotrf, err)
				}
			}
		}

		ajj, err := A.At(j, j)
		if err != nil {
			return linalgErrorf(opPotrf, err)
		}
		if ajj.Real() <= 0 {
			// Not positive definite: this is a caller-inspects-the-
			// diagonal signal, not an error return.
			// A is left partially factored with A[j,j] holding the
			// non-positive pre-rsqrt residual rather than a
			// reciprocal-square-root, so CheckPositiveDefinite's
			// every-diagonal-entry-positive scan can detect it.
			return nil
		}
		t := anus.Rsqrt(ajj)
		for i := j; i < n; i++ {
			aij, err := A.At(i, j)
			if err != nil {
				return linalgErrorf(opPotrf, err)
			}
			if err := A.Set(fixed.Mul(aij, t), i, j); err != nil {
				return linalgErrorf(opPotrf, err)
			}
		}
		if err := A.Set(t, j, j); err != nil {
			return linalgErrorf(opPotrf, err)
		}
	}
	return nil
}

// CheckPositiveDefinite runs Qpotrf on a scratch Clone() of A and reports
// whether every diagonal entry of the result is positive. Qpotrf itself
// returns no error for a non-PD input (the caller inspects the
// diagonal) — a factorization that stopped early leaves the
// column where it stopped holding its non-positive pre-rsqrt residual
// rather than a reciprocal square root, which is always positive for a
// positive argument, so this scan is exact.
func CheckPositiveDefinite(A *tensor.Tensor) bool {
	scratch := A.Clone()
	if err := Qpotrf(scratch); err != nil {
		return false
	}
	n, err := squareSide(scratch)
	if err != nil {
		return false
	}
	for j := 0; j < n; j++ {
		v, err := scratch.At(j, j)
		if err != nil || v.Real() <= 0 {
			return false
		}
	}
	return true
}

// StandardCholeskyFactor reads L's non-standard reciprocal-square-root
// diagonal storage (as left by Qpotrf) and returns a new Tensor holding
// the conventional lower Cholesky factor, with each diagonal entry
// L[j,j] replaced by 1/L[j,j] — useful for comparing against a
// reference Cholesky implementation or for display.
func StandardCholeskyFactor(L *tensor.Tensor) (*tensor.Tensor, error) {
	n, err := squareSide(L)
	if err != nil {
		return nil, linalgErrorf(opPotrf, err)
	}
	out := L.Clone()
	for j := 0; j < n; j++ {
		ljj, err := L.At(j, j)
		if err != nil {
			return nil, linalgErrorf(opPotrf, err)
		}
		if err := out.Set(anus.Recip(ljj), j, j); err != nil {
			return nil, linalgErrorf(opPotrf, err)
		}
	}
	return out, nil
}

// squareSide validates that t is 2-dimensional and square, returning its
// side length.
func squareSide(t *tensor.Tensor) (int, error) {
	shape := t.Shape()
	if len(shape) != 2 {
		return 0, ErrNonSquare
	}
	if shape[0] != shape[1] {
		return 0, ErrNonSquare
	}
	return shape[0], nil
}
