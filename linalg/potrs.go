package linalg

import (
	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Qpotrs solves L·Lᵀ·x = b in place on b, given the lower Cholesky
// factor L produced by Qpotrf — diagonal entries of L hold rsqrt(A[j,j])
// rather than sqrt(A[j,j]), so both triangular solves multiply by the
// diagonal instead of dividing by it.
//
// Stage 1 (Validate): L must be square; b must be 1-dimensional with
// length equal to L's side.
// Stage 2 (Forward): solve L·y = b by forward substitution, overwriting
// b with y.
// Stage 3 (Backward): solve Lᵀ·x = y by backward substitution,
// overwriting b with x.
func Qpotrs(L, b *tensor.Tensor) error {
	n, err := squareSide(L)
	if err != nil {
		return linalgErrorf(opPotrs, err)
	}
	if len(b.Shape()) != 1 || b.Shape()[0] != n {
		return linalgErrorf(opPotrs, ErrDimensionMismatch)
	}

	zero := fixed.FromReal(0, b.Format())

	for i := 0; i < n; i++ {
		sum := zero
		for j := 0; j < i; j++ {
			lij, err := L.At(i, j)
			if err != nil {
				return linalgErrorf(opPotrs, err)
			}
			bj, err := b.At(j)
			if err != nil {
				return linalgErrorf(opPotrs, err)
			}
			sum = fixed.Add(sum, fixed.Mul(lij, bj))
		}
		if err := substituteOne(L, b, i, sum); err != nil {
			return linalgErrorf(opPotrs, err)
		}
	}

	for i := n - 1; i >= 0; i-- {
		sum := zero
		for j := i + 1; j < n; j++ {
			lji, err := L.At(j, i)
			if err != nil {
				return linalgErrorf(opPotrs, err)
			}
			bj, err := b.At(j)
			if err != nil {
				return linalgErrorf(opPotrs, err)
			}
			sum = fixed.Add(sum, fixed.Mul(lji, bj))
		}
		if err := substituteOne(L, b, i, sum); err != nil {
			return linalgErrorf(opPotrs, err)
		}
	}
	return nil
}

// substituteOne sets b[i] = (b[i]-sum)*L[i,i], the shared combine step of
// both the forward and backward substitution passes.
func substituteOne(L, b *tensor.Tensor, i int, sum fixed.Value) error {
	bi, err := b.At(i)
	if err != nil {
		return err
	}
	lii, err := L.At(i, i)
	if err != nil {
		return err
	}
	diff := fixed.Sub(bi, sum)
	return b.Set(fixed.Mul(diff, lii), i)
}
