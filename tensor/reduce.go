package tensor

import (
	"github.com/samber/lo"

	"github.com/qufix/qufix/fixed"
)

// Qreduce combines every element of t into a single fixed.Value via a
// layered pairwise tree: each layer pairs up adjacent elements with
// combine, carrying forward any odd element untouched to the next layer,
// exactly mirroring a pipelined adder tree. bundles supplies one
// fixed.Bundle per layer; if fewer bundles than layers are given, the
// last bundle is reused for every remaining layer. A nil/empty bundles
// uses the zero Bundle (no overrides) at every layer.
//
// lo.Chunk partitions each layer into adjacent pairs, the idiomatic
// generic-slice-helper replacement for hand-rolled index arithmetic.
func Qreduce(t *Tensor, combine func(a, b fixed.Value, opts ...fixed.BundleOption) fixed.Value, bundles []fixed.Bundle) (fixed.Value, error) {
	if t.Len() == 0 {
		return fixed.Value{}, tensorErrorf("tensor.Qreduce", ErrEmptyReduce)
	}

	layer := make([]fixed.Value, t.Len())
	for i := range layer {
		layer[i] = fixed.FromBits(t.data[i], t.format)
	}

	for layerIdx := 0; len(layer) > 1; layerIdx++ {
		bundle := layerBundle(bundles, layerIdx)
		chunks := lo.Chunk(layer, 2)
		next := make([]fixed.Value, 0, len(chunks))
		for _, pair := range chunks {
			if len(pair) == 1 {
				next = append(next, pair[0]) // odd element carried forward
				continue
			}
			next = append(next, combine(pair[0], pair[1], bundleOpt(bundle)))
		}
		layer = next
	}

	return layer[0], nil
}

// layerBundle returns bundles[i], clamped to the last element, or the
// zero Bundle if bundles is empty.
func layerBundle(bundles []fixed.Bundle, i int) fixed.Bundle {
	if len(bundles) == 0 {
		return fixed.Bundle{}
	}
	if i >= len(bundles) {
		i = len(bundles) - 1
	}
	return bundles[i]
}

// bundleOpt lifts an already-built Bundle into a single BundleOption, so
// combine's variadic-option signature can be reused with a bundle chosen
// ahead of time per layer.
func bundleOpt(b fixed.Bundle) fixed.BundleOption {
	return func(dst *fixed.Bundle) { *dst = b }
}
