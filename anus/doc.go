// Package anus provides the Advanced Nonlinear Universal Subprograms:
// Poly (Horner-scheme polynomial evaluation), Approx (piecewise polynomial
// dispatch), and Qtable (a ROM-emulating real-function quantizer).
// These model the hardware nonlinear blocks a datapath
// delegates to a lookup table or CORDIC unit rather than synthesizing
// directly: the caller substitutes a true ROM or iterative unit at RTL
// time, this package only needs to reproduce the quantized numeric
// contract those blocks present to the rest of the datapath.
package anus
