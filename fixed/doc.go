// Package fixed implements the bit-exact fixed-point number model: the
// FixedFormat/FixedValue data model, the casting algebra (FracConvert,
// IntConvert) every cast reduces to, the scalar arithmetic primitives
// (Mul, Add, Sub, Div, Neg, Abs, Cmp), and the PolicyBundle override
// system that lets a caller model heterogeneous datapaths (e.g. a wider
// accumulator than the operand product).
//
// What & Why:
//
//	A FixedValue is a signed 64-bit integer interpreted as data*2^(-f).
//	Every operation here is a pure function of its inputs and the policy
//	bundle — there is no global state, no floating-point fallback, and no
//	validated format may exceed 31 combined integer+fraction bits (so the
//	product of two such values fits comfortably inside an int64
//	accumulator). FullPrec merge results are exempt from that cap.
//
// Complexity:
//
//	FracConvert and IntConvert run in O(1). Every scalar primitive in
//	this package runs in O(1) and allocates nothing.
package fixed
