package tensor

import (
	"github.com/qufix/qufix/fixed"
)

// Tensor is a fixed-shape, row-major store of fixed.Value elements that
// all share one fixed.Format: one flat slice with bounds-checked At/Set
// and deep Clone semantics.
//
// Unlike a 2-D matrix type, Tensor has an arbitrary (but fixed at construction) number
// of axes, so indexing takes a variadic idx ...int instead of (row, col).
type Tensor struct {
	shape   []int
	strides []int
	format  fixed.Format
	data    []int64
}

// New allocates a Tensor of the given shape with every element the
// zero value of format (raw data 0).
//
// Stage 1 (Validate): every axis must be > 0.
// Stage 2 (Prepare): compute row-major strides, allocate the flat slice.
// Stage 3 (Finalize): return the new Tensor or ErrBadShape.
func New(shape []int, format fixed.Format) (*Tensor, error) {
	if len(shape) == 0 {
		return nil, tensorErrorf("tensor.New", ErrBadShape)
	}
	n := 1
	for _, dim := range shape {
		if dim <= 0 {
			return nil, tensorErrorf("tensor.New", ErrBadShape)
		}
		n *= dim
	}
	shapeCopy := append([]int(nil), shape...)
	return &Tensor{
		shape:   shapeCopy,
		strides: rowMajorStrides(shapeCopy),
		format:  format,
		data:    make([]int64, n),
	}, nil
}

// rowMajorStrides computes the row-major stride for each axis of shape:
// strides[i] is the flat-index delta for incrementing axis i by one.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}
	return strides
}

// Shape returns a copy of the tensor's per-axis extents.
func (t *Tensor) Shape() []int {
	return append([]int(nil), t.shape...)
}

// Format returns the shared fixed.Format of every element.
func (t *Tensor) Format() fixed.Format {
	return t.format
}

// Len returns the total element count (the product of Shape()).
func (t *Tensor) Len() int {
	return len(t.data)
}

// flatIndex validates idx against t.shape and returns the flat offset.
func (t *Tensor) flatIndex(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, tensorErrorf("Tensor.At", ErrIndexOutOfBounds)
	}
	off := 0
	for axis, i := range idx {
		if i < 0 || i >= t.shape[axis] {
			return 0, tensorErrorf("Tensor.At", ErrIndexOutOfBounds)
		}
		off += i * t.strides[axis]
	}
	return off, nil
}

// At retrieves the element at idx, one coordinate per axis.
func (t *Tensor) At(idx ...int) (fixed.Value, error) {
	off, err := t.flatIndex(idx)
	if err != nil {
		return fixed.Value{}, err
	}
	return fixed.FromBits(t.data[off], t.format), nil
}

// AtFlat retrieves the element at row-major flat index i, for callers
// that walk the buffer in storage order (the bitstream packer, fills).
func (t *Tensor) AtFlat(i int) (fixed.Value, error) {
	if i < 0 || i >= len(t.data) {
		return fixed.Value{}, tensorErrorf("tensor.AtFlat", ErrIndexOutOfBounds)
	}
	return fixed.FromBits(t.data[i], t.format), nil
}

// SetFlat assigns v at row-major flat index i, re-quantizing v into t's
// format via fixed.FromValue if v's own format differs.
func (t *Tensor) SetFlat(v fixed.Value, i int) error {
	if i < 0 || i >= len(t.data) {
		return tensorErrorf("tensor.SetFlat", ErrIndexOutOfBounds)
	}
	if v.Format != t.format {
		v = fixed.FromValue(v, t.format)
	}
	t.data[i] = v.Data
	return nil
}

// Set assigns v at idx, re-quantizing v into t's format via
// fixed.FromValue if v's own format differs.
func (t *Tensor) Set(v fixed.Value, idx ...int) error {
	off, err := t.flatIndex(idx)
	if err != nil {
		return err
	}
	if v.Format != t.format {
		v = fixed.FromValue(v, t.format)
	}
	t.data[off] = v.Data
	return nil
}

// Clone returns a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	dataCopy := make([]int64, len(t.data))
	copy(dataCopy, t.data)
	return &Tensor{
		shape:   append([]int(nil), t.shape...),
		strides: append([]int(nil), t.strides...),
		format:  t.format,
		data:    dataCopy,
	}
}

// Fill overwrites every element of t with the result of calling gen for
// that flat index, re-quantizing into t's format.
func (t *Tensor) Fill(gen func(flatIdx int) fixed.Value) {
	for i := range t.data {
		v := gen(i)
		if v.Format != t.format {
			v = fixed.FromValue(v, t.format)
		}
		t.data[i] = v.Data
	}
}

// sameShape reports whether two shape slices are element-wise equal.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isScalarShape reports whether shape denotes a single-element tensor,
// eligible for broadcasting against any other shape.
func isScalarShape(shape []int) bool {
	for _, dim := range shape {
		if dim != 1 {
			return false
		}
	}
	return true
}
