// Package linalg provides the bit-exact BLAS/LAPACK-style kernels built
// on top of package fixed's primitive arithmetic: Qgemul (general matrix
// multiply with optional transpose), Qgramul (Gram matrix AᵀA/AAᵀ),
// Qgemv (matrix-vector with α/β scaling), Qpotrf/Qpotrs (Cholesky
// factorization and solve), Qsytrf (LDLᵀ factorization), and Qtrtri
// (triangular inverse).
//
// Every kernel follows the same shape: validate operand shapes, then
// route every scalar combine through fixed.Mul/Add/Sub/Div so the one
// algorithmic core in package fixed is what actually gets exercised.
package linalg
