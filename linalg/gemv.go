package linalg

import (
	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Qgemv computes y = α·op(A)·x + β·y. α defaults to 1 and β to 0, both
// in y's format, matching the BLAS convention of y := Ax when neither
// is set.
//
// Stage 1 (Validate): A must be 2-dimensional, x and y 1-dimensional;
// op(A)'s (rows, cols) must equal (len(y), len(x)).
// Stage 2 (Compute): for each row i, dot = Qreduce<addBundle> over
// Qmul<mulBundle>(op(A)[i,j], x[j]); then y[i] = α·dot + β·y[i].
func Qgemv(y, A, x *tensor.Tensor, opts ...GemvOption) error {
	cfg := gemvConfig{}
	for _, o := range opts {
		o(&cfg)
	}

	aShape := A.Shape()
	if len(aShape) != 2 {
		return linalgErrorf(opGemv, ErrDimensionMismatch)
	}
	if len(x.Shape()) != 1 || len(y.Shape()) != 1 {
		return linalgErrorf(opGemv, ErrNot1D)
	}
	aRows, aCols := aShape[0], aShape[1]
	if cfg.transA {
		aRows, aCols = aShape[1], aShape[0]
	}
	if aCols != x.Shape()[0] || aRows != y.Shape()[0] {
		return linalgErrorf(opGemv, ErrDimensionMismatch)
	}

	yFmt := y.Format()
	alpha := fixed.FromReal(1, yFmt)
	if cfg.alpha != nil {
		alpha = *cfg.alpha
	}
	beta := fixed.FromReal(0, yFmt)
	if cfg.beta != nil {
		beta = *cfg.beta
	}
	// yOpts pins the α/β outer ops to y's own format.
	var yOpts []fixed.BundleOption
	if cfg.alpha != nil || cfg.beta != nil {
		yOpts = []fixed.BundleOption{
			fixed.IntBits(yFmt.IntBits), fixed.FracBits(yFmt.FracBits), fixed.IsSigned(yFmt.Signed),
			fixed.WithRoundMode(yFmt.Rnd), fixed.WithOverflowMode(yFmt.Ovf),
		}
	}

	mulOpts := bundleOpts(cfg.mulBundle)
	sample := fixed.Mul(fixed.Value{Format: A.Format()}, fixed.Value{Format: x.Format()}, mulOpts...)
	prod, err := tensor.New([]int{aCols}, sample.Format)
	if err != nil {
		return linalgErrorf(opGemv, err)
	}

	for i := 0; i < aRows; i++ {
		for j := 0; j < aCols; j++ {
			av, err := atOriented2D(A, cfg.transA, i, j)
			if err != nil {
				return linalgErrorf(opGemv, err)
			}
			xv, err := x.At(j)
			if err != nil {
				return linalgErrorf(opGemv, err)
			}
			if err := prod.Set(fixed.Mul(av, xv, mulOpts...), j); err != nil {
				return linalgErrorf(opGemv, err)
			}
		}
		dot, err := tensor.Qreduce(prod, fixed.Add, []fixed.Bundle{cfg.addBundle})
		if err != nil {
			return linalgErrorf(opGemv, err)
		}

		// β = 0 and α = 1 is a plain assignment with no outer ops;
		// otherwise the α/β arithmetic
		// runs in y's own format (y.Set re-quantizes into it).
		scaled := dot
		if cfg.alpha != nil {
			scaled = fixed.Mul(alpha, dot, yOpts...)
		}
		if cfg.beta != nil {
			yi, err := y.At(i)
			if err != nil {
				return linalgErrorf(opGemv, err)
			}
			scaled = fixed.Add(scaled, fixed.Mul(beta, yi, yOpts...), yOpts...)
		}
		if err := y.Set(scaled, i); err != nil {
			return linalgErrorf(opGemv, err)
		}
	}
	return nil
}
