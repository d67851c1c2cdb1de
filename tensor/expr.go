package tensor

import (
	"github.com/qufix/qufix/fixed"
)

// Expr is a small tagged node over {operand-tensor, binary-op(node,node),
// unary-op(node)}: anything shaped like a Tensor that can be read at
// an index, lazily combining operands under the fixed-point arithmetic
// algebra instead of
// eagerly materializing an intermediate Tensor per operation.
//
// Shape-checking happens once at construction (Qmul/Qadd/... validate
// their operands' shapes immediately); At is then infallible with respect
// to shape and only reports genuine out-of-bounds indices.
type Expr interface {
	// At evaluates the expression at idx, recursing into operands as
	// needed. Each binary/unary node applies its fixed-point primitive
	// (fixed.Mul, fixed.Add, ...) to the operands' evaluated values.
	At(idx ...int) (fixed.Value, error)

	// Shape returns the expression's result shape, the broadcast-resolved
	// shape of a binary node's operands, or the operand's own shape for a
	// unary node or a leaf.
	Shape() []int
}

// operand wraps a *Tensor as a leaf Expr.
type operand struct {
	t *Tensor
}

// Operand lifts a *Tensor into an Expr leaf.
func Operand(t *Tensor) Expr {
	return operand{t: t}
}

func (o operand) At(idx ...int) (fixed.Value, error) { return o.t.At(idx...) }
func (o operand) Shape() []int                       { return o.t.Shape() }

// binOp is the kind tag for a binaryOp node.
type binOp uint8

const (
	binMul binOp = iota
	binAdd
	binSub
	binDiv
)

type binaryOp struct {
	op    binOp
	left  Expr
	right Expr
	shape []int
	opts  []fixed.BundleOption
}

// newBinary validates left/right's shapes (identical, or one a
// broadcastable scalar) and returns the resolved output shape.
func newBinary(op binOp, left, right Expr, opts ...fixed.BundleOption) (Expr, error) {
	ls, rs := left.Shape(), right.Shape()
	var shape []int
	switch {
	case sameShape(ls, rs):
		shape = ls
	case isScalarShape(rs):
		shape = ls
	case isScalarShape(ls):
		shape = rs
	default:
		return nil, tensorErrorf("tensor.binary", ErrShapeMismatch)
	}
	return binaryOp{op: op, left: left, right: right, shape: shape, opts: opts}, nil
}

func (b binaryOp) Shape() []int { return append([]int(nil), b.shape...) }

func (b binaryOp) At(idx ...int) (fixed.Value, error) {
	lIdx := broadcastIndex(b.left.Shape(), idx)
	rIdx := broadcastIndex(b.right.Shape(), idx)
	lv, err := b.left.At(lIdx...)
	if err != nil {
		return fixed.Value{}, err
	}
	rv, err := b.right.At(rIdx...)
	if err != nil {
		return fixed.Value{}, err
	}
	switch b.op {
	case binMul:
		return fixed.Mul(lv, rv, b.opts...), nil
	case binAdd:
		return fixed.Add(lv, rv, b.opts...), nil
	case binSub:
		return fixed.Sub(lv, rv, b.opts...), nil
	case binDiv:
		return fixed.Div(lv, rv, b.opts...), nil
	default:
		panic("tensor: unknown binOp")
	}
}

// broadcastIndex maps an output-shape idx down to a leaf's own shape: a
// scalar leaf (all axes size 1) always reads index 0 on every axis.
func broadcastIndex(leafShape, idx []int) []int {
	if isScalarShape(leafShape) {
		return make([]int, len(leafShape))
	}
	return idx
}

// unOp is the kind tag for a unaryOp node.
type unOp uint8

const (
	unNeg unOp = iota
	unAbs
)

type unaryOp struct {
	op   unOp
	x    Expr
	opts []fixed.BundleOption
}

func (u unaryOp) Shape() []int { return u.x.Shape() }

func (u unaryOp) At(idx ...int) (fixed.Value, error) {
	xv, err := u.x.At(idx...)
	if err != nil {
		return fixed.Value{}, err
	}
	switch u.op {
	case unNeg:
		return fixed.Neg(xv, u.opts...), nil
	case unAbs:
		return fixed.Abs(xv, u.opts...), nil
	default:
		panic("tensor: unknown unOp")
	}
}

// Qmul builds a lazy element-wise multiply node.
func Qmul(left, right Expr, opts ...fixed.BundleOption) (Expr, error) {
	return newBinary(binMul, left, right, opts...)
}

// Qadd builds a lazy element-wise add node.
func Qadd(left, right Expr, opts ...fixed.BundleOption) (Expr, error) {
	return newBinary(binAdd, left, right, opts...)
}

// Qsub builds a lazy element-wise subtract node.
func Qsub(left, right Expr, opts ...fixed.BundleOption) (Expr, error) {
	return newBinary(binSub, left, right, opts...)
}

// Qdiv builds a lazy element-wise divide node.
func Qdiv(left, right Expr, opts ...fixed.BundleOption) (Expr, error) {
	return newBinary(binDiv, left, right, opts...)
}

// Qneg builds a lazy element-wise negate node.
func Qneg(x Expr, opts ...fixed.BundleOption) Expr {
	return unaryOp{op: unNeg, x: x, opts: opts}
}

// Qabs builds a lazy element-wise absolute-value node.
func Qabs(x Expr, opts ...fixed.BundleOption) Expr {
	return unaryOp{op: unAbs, x: x, opts: opts}
}

// Assign materializes expr into dst, re-quantizing each evaluated element
// into dst's format via Tensor.Set. dst's shape must match expr's.
func Assign(dst *Tensor, expr Expr) error {
	if !sameShape(dst.Shape(), expr.Shape()) {
		return tensorErrorf("tensor.Assign", ErrShapeMismatch)
	}
	idx := make([]int, len(dst.shape))
	return assignRec(dst, expr, idx, 0)
}

func assignRec(dst *Tensor, expr Expr, idx []int, axis int) error {
	if axis == len(idx) {
		v, err := expr.At(idx...)
		if err != nil {
			return tensorErrorf("tensor.Assign", err)
		}
		return dst.Set(v, idx...)
	}
	for i := 0; i < dst.shape[axis]; i++ {
		idx[axis] = i
		if err := assignRec(dst, expr, idx, axis+1); err != nil {
			return err
		}
	}
	return nil
}
