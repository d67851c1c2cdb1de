package anus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qufix/qufix/fixed"
)

func af() fixed.Format {
	return fixed.MustNewFormat(8, 8, true, fixed.RndTCPL, fixed.OvfSatTCPL)
}

func TestPoly_EvaluatesQuadratic(t *testing.T) {
	// p(x) = 2x^2 + 3x + 1, evaluated at x=2: 2*4+3*2+1 = 15
	x := fixed.FromReal(2.0, af())
	coeffs := []fixed.Value{
		fixed.FromReal(2.0, af()),
		fixed.FromReal(3.0, af()),
		fixed.FromReal(1.0, af()),
	}
	got := Poly(x, coeffs)
	assert.InDelta(t, 15.0, got.Real(), 1.0/256)
}

func TestPoly_ConstantTermOnly(t *testing.T) {
	x := fixed.FromReal(5.0, af())
	coeffs := []fixed.Value{fixed.FromReal(7.0, af())}
	got := Poly(x, coeffs)
	assert.InDelta(t, 7.0, got.Real(), 1.0/256)
}

func TestPoly_ResultTakesLastCoeffFormat(t *testing.T) {
	x := fixed.FromReal(1.0, af())
	lastFmt := fixed.MustNewFormat(4, 4, true, fixed.RndTCPL, fixed.OvfSatTCPL)
	coeffs := []fixed.Value{
		fixed.FromReal(1.0, af()),
		fixed.FromReal(1.0, lastFmt),
	}
	got := Poly(x, coeffs)
	assert.Equal(t, lastFmt, got.Format)
}

func TestPoly_PanicsOnEmptyCoeffs(t *testing.T) {
	assert.Panics(t, func() {
		Poly(fixed.FromReal(1.0, af()), nil)
	})
}
