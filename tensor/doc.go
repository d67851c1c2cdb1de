// Package tensor provides a fixed-shape, row-major store of fixed-point
// values (tensor.Tensor), a small lazy expression tree over it
// (tensor.Expr, tensor.Qmul/Qadd/Qsub/Qdiv/Qneg/Qabs), and the tree-based
// reduction kernel (tensor.Qreduce).
//
// Tensor keeps one flat backing slice, bounds-checked At/Set, and a
// Clone that deep-copies. Elements are stored as fixed.Value raw int64
// data alongside one shared fixed.Format, since every element of a
// Tensor is defined to share a single format.
package tensor
