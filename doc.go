// Package qufix is a header-only-style library for bit-exact fixed-point
// arithmetic simulation with BLAS/LAPACK-style linear-algebra kernels.
//
// 🚀 What is qufix?
//
//	A pure-Go model of fixed-point ASIC/FPGA datapaths: every scalar
//	primitive (add, sub, mul, div, neg, abs, cmp) and every composite
//	kernel (Qgemul, Qgramul, Qgemv, Qpotrf, Qpotrs, Qsytrf, Qtrtri)
//	reproduces the exact integer bit pattern that hardware implementing
//	the same word-length, rounding, and overflow policies would produce.
//
// ✨ Why choose qufix?
//
//   - Bit-exact – every cast and every arithmetic primitive routes
//     through two proven pure functions (FracConvert, IntConvert)
//   - Policy-driven – per-operation rounding/overflow/width overrides via
//     functional-option policy bundles, never global state
//   - Pure Go – no cgo; kernels are deterministic, single-threaded,
//     side-effect-free functions over their inputs
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	fixed/     — FixedFormat, FixedValue, the casting algebra, and the
//	             scalar arithmetic primitives
//	tensor/    — the fixed-shape Tensor type, lazy element-wise
//	             expression wrappers, and the tree reducer
//	linalg/    — Qgemul, Qgramul, Qgemv, Qpotrf, Qpotrs, Qsytrf, Qtrtri
//	anus/      — Advanced Nonlinear Universal Subprograms: Poly, Approx,
//	             and the Qtable ROM-emulating lookup
//	bitstream/ — the l2r/r2l bit-packing interface to a downstream
//	             cycle-accurate simulator
//
// See DESIGN.md for the component design notes and the rationale behind
// the kernel storage conventions.
package qufix
