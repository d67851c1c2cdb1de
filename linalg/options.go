package linalg

import "github.com/qufix/qufix/fixed"

// bundleOpts lifts an already-built fixed.Bundle into a single
// fixed.BundleOption, so kernels can reuse Mul/Add/Sub/Div's variadic-
// option signature with a bundle chosen ahead of time per kernel tag —
// the same pattern as fixed/complex.go's subBundleOpts.
func bundleOpts(b fixed.Bundle) []fixed.BundleOption {
	return []fixed.BundleOption{func(dst *fixed.Bundle) { *dst = b }}
}

// ---- Qgemul ----

type gemulConfig struct {
	transA, transB       bool
	addBundle, mulBundle fixed.Bundle
}

// GemulOption configures Qgemul's {transA, transB, addBundle,
// mulBundle} tag set.
type GemulOption func(*gemulConfig)

// QgemulTransA requests op(A) = Aᵀ.
func QgemulTransA() GemulOption { return func(c *gemulConfig) { c.transA = true } }

// QgemulTransB requests op(B) = Bᵀ.
func QgemulTransB() GemulOption { return func(c *gemulConfig) { c.transB = true } }

// QgemulAddArgs sets the policy bundle for the Qreduce<addBundle> pass
// that assigns each output cell.
func QgemulAddArgs(b fixed.Bundle) GemulOption {
	return func(c *gemulConfig) { c.addBundle = b }
}

// QgemulMulArgs sets the policy bundle for each Qmul<mulBundle> partial
// product.
func QgemulMulArgs(b fixed.Bundle) GemulOption {
	return func(c *gemulConfig) { c.mulBundle = b }
}

// ---- Qgramul ----

type gramulConfig struct {
	trans                            bool
	diagMul, diagAdd, offMul, offAdd fixed.Bundle
}

// GramulOption configures Qgramul's {trans, diagMul, diagAdd,
// offMul, offAdd} tag set.
type GramulOption func(*gramulConfig)

// QgramulTrans requests C = A·Aᵀ in place of the default C = Aᵀ·A.
func QgramulTrans() GramulOption { return func(c *gramulConfig) { c.trans = true } }

// QgramulDiagMulArgs sets the multiply bundle used for diagonal cells.
func QgramulDiagMulArgs(b fixed.Bundle) GramulOption {
	return func(c *gramulConfig) { c.diagMul = b }
}

// QgramulDiagAddArgs sets the reduce bundle used for diagonal cells.
func QgramulDiagAddArgs(b fixed.Bundle) GramulOption {
	return func(c *gramulConfig) { c.diagAdd = b }
}

// QgramulOffMulArgs sets the multiply bundle used for off-diagonal cells.
func QgramulOffMulArgs(b fixed.Bundle) GramulOption {
	return func(c *gramulConfig) { c.offMul = b }
}

// QgramulOffAddArgs sets the reduce bundle used for off-diagonal cells.
func QgramulOffAddArgs(b fixed.Bundle) GramulOption {
	return func(c *gramulConfig) { c.offAdd = b }
}

// ---- Qgemv ----

type gemvConfig struct {
	transA               bool
	addBundle, mulBundle fixed.Bundle
	alpha, beta          *fixed.Value
}

// GemvOption configures Qgemv's {transA, addBundle, mulBundle, α, β}
// tag set.
type GemvOption func(*gemvConfig)

// QgemvTransA requests op(A) = Aᵀ.
func QgemvTransA() GemvOption { return func(c *gemvConfig) { c.transA = true } }

// QgemvAddArgs sets the policy bundle for the Qreduce<addBundle> dot
// product pass.
func QgemvAddArgs(b fixed.Bundle) GemvOption {
	return func(c *gemvConfig) { c.addBundle = b }
}

// QgemvMulArgs sets the policy bundle for each Qmul<mulBundle> partial
// product.
func QgemvMulArgs(b fixed.Bundle) GemvOption {
	return func(c *gemvConfig) { c.mulBundle = b }
}

// QgemvAlpha sets the α scale applied to A·x (or Aᵀ·x). Default is 1
// in y's format.
func QgemvAlpha(v fixed.Value) GemvOption { return func(c *gemvConfig) { c.alpha = &v } }

// QgemvBeta sets the β scale applied to the prior value of y. Default is
// 0 in y's format.
func QgemvBeta(v fixed.Value) GemvOption { return func(c *gemvConfig) { c.beta = &v } }

// ---- Qpotrf ----

type potrfConfig struct {
	lower bool
}

// PotrfOption configures Qpotrf. Only the lower-triangular factor is
// implemented; QpotrfLower is accepted so call sites can document
// intent, but it is already the sole behavior and switches nothing.
type PotrfOption func(*potrfConfig)

// QpotrfLower selects the lower-triangular factor (the only variant this
// package implements).
func QpotrfLower() PotrfOption { return func(c *potrfConfig) { c.lower = true } }

// ---- Qsytrf ----

type sytrfConfig struct {
	ldBundle, sumLDBundle fixed.Bundle
}

// SytrfOption configures Qsytrf's {LD, sumLD} bundle pair.
type SytrfOption func(*sytrfConfig)

// QsytrfLDArgs sets the policy bundle for each L[i,k]*L[j,k]*D[k]-style
// summand product.
func QsytrfLDArgs(b fixed.Bundle) SytrfOption {
	return func(c *sytrfConfig) { c.ldBundle = b }
}

// QsytrfSumLDArgs sets the policy bundle for the running sum that
// accumulates those summands.
func QsytrfSumLDArgs(b fixed.Bundle) SytrfOption {
	return func(c *sytrfConfig) { c.sumLDBundle = b }
}

// ---- Qtrtri ----

type trtriConfig struct {
	upper     bool
	sumBundle fixed.Bundle
}

// TrtriOption configures Qtrtri's {lower, sumBundle} tag set.
type TrtriOption func(*trtriConfig)

// QtrtriUpper requests the upper-triangular recurrence in place of the
// default lower-triangular one.
func QtrtriUpper() TrtriOption { return func(c *trtriConfig) { c.upper = true } }

// QtrtriSumArgs sets the policy bundle for the running sum in the
// triangular-inverse recurrence.
func QtrtriSumArgs(b fixed.Bundle) TrtriOption {
	return func(c *trtriConfig) { c.sumBundle = b }
}
