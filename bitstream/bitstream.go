package bitstream

import (
	"strconv"
	"strings"

	"github.com/qufix/qufix/fixed"
	"github.com/qufix/qufix/tensor"
)

// Order names one of the two element orderings of the stream contract.
// Construct via L2R or R2L; the zero value behaves like L2R().
type Order struct {
	reversed bool
	chunk    int
}

// L2R emits element 0 first.
func L2R() Order {
	return Order{chunk: 1}
}

// R2L emits elements in reverse, in chunks of n whose internal order is
// preserved: the last n elements come first (in their original relative
// order), then the n before those, and so on. R2L(1) is a plain element
// reversal. n < 1 is a construction-time programmer mistake and panics.
func R2L(n int) Order {
	if n < 1 {
		panic("bitstream: R2L: chunk size must be >= 1")
	}
	return Order{reversed: true, chunk: n}
}

// fieldWidth returns the per-element bit-field width for f:
// IntBits + FracBits + one sign bit when signed.
func fieldWidth(f fixed.Format) int {
	w := f.TotalBits()
	if f.Signed {
		w++
	}
	return w
}

// streamOrder returns the source flat index of each stream position: the
// element at flat index perm[p] occupies the p-th field of the stream.
// n must already be validated against order.chunk.
func streamOrder(n int, order Order) []int {
	perm := make([]int, 0, n)
	if !order.reversed {
		for i := 0; i < n; i++ {
			perm = append(perm, i)
		}
		return perm
	}
	for i := n; i > 0; i -= order.chunk {
		for j := 0; j < order.chunk; j++ {
			perm = append(perm, i-order.chunk+j)
		}
	}
	return perm
}

// Pack serializes t into a concatenated binary string, one
// fieldWidth-character two's-complement field per element, MSB first,
// elements arranged per order.
func Pack(t *tensor.Tensor, order Order) (string, error) {
	const op = "bitstream.Pack"
	if order.chunk == 0 {
		order = L2R()
	}

	w := fieldWidth(t.Format())
	if w == 0 {
		return "", streamErrorf(op, ErrZeroWidthElement)
	}
	n := t.Len()
	if order.reversed && n%order.chunk != 0 {
		return "", streamErrorf(op, ErrChunkIndivisible)
	}

	mask := uint64(1)<<uint(w) - 1
	var sb strings.Builder
	sb.Grow(n * w)
	for _, src := range streamOrder(n, order) {
		v, err := t.AtFlat(src)
		if err != nil {
			return "", streamErrorf(op, err)
		}
		field := strconv.FormatUint(uint64(v.Data)&mask, 2)
		for pad := w - len(field); pad > 0; pad-- {
			sb.WriteByte('0')
		}
		sb.WriteString(field)
	}
	return sb.String(), nil
}

// Unpack parses a stream produced under the same (format, shape, order)
// triple back into a fresh tensor. Signed fields are sign-extended from
// their top bit, so Pack followed by Unpack is the identity on the raw
// element words.
func Unpack(s string, format fixed.Format, shape []int, order Order) (*tensor.Tensor, error) {
	const op = "bitstream.Unpack"
	if order.chunk == 0 {
		order = L2R()
	}
	if err := format.Validate(); err != nil {
		return nil, streamErrorf(op, err)
	}

	w := fieldWidth(format)
	if w == 0 {
		return nil, streamErrorf(op, ErrZeroWidthElement)
	}
	if len(s)%w != 0 {
		return nil, streamErrorf(op, ErrLengthMismatch)
	}

	t, err := tensor.New(shape, format)
	if err != nil {
		return nil, streamErrorf(op, err)
	}
	n := t.Len()
	if len(s)/w != n {
		return nil, streamErrorf(op, ErrLengthMismatch)
	}
	if order.reversed && n%order.chunk != 0 {
		return nil, streamErrorf(op, ErrChunkIndivisible)
	}

	signBit := int64(1) << uint(w-1)
	for p, dst := range streamOrder(n, order) {
		field := s[p*w : (p+1)*w]
		raw, err := strconv.ParseUint(field, 2, 64)
		if err != nil {
			return nil, streamErrorf(op, ErrNotBinary)
		}
		data := int64(raw)
		if format.Signed && data&signBit != 0 {
			data -= int64(1) << uint(w)
		}
		if err := t.SetFlat(fixed.FromBits(data, format), dst); err != nil {
			return nil, streamErrorf(op, err)
		}
	}
	return t, nil
}
