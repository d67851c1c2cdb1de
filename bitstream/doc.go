// Package bitstream converts between a tensor and a concatenated binary
// string of per-element bit fields, the staging format a downstream
// cycle-accurate simulator consumes.
//
// Each element occupies IntBits+FracBits+(Signed?1:0) characters of '0'
// and '1', most-significant bit first, holding the element's raw data
// word in two's complement. Two element orderings are exposed: L2R
// (element 0 first) and R2L(n) (elements emitted in reverse, in chunks
// of n that keep their internal order). These orderings are the
// interface contract for feeding the simulator; pick the one matching
// its shift-register fill direction.
package bitstream
