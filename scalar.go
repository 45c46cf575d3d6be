//go:build !nines_unsigned

package nines

import "golang.org/x/exp/constraints"

// Scalar is the constraint for coordinate values. It admits the signed
// integer and floating point types.
//
// Unsigned integers underflow as soon as a rectangle extends left of or above
// the origin, or a border is subtracted from a smaller coordinate. They are
// only admitted when building with the nines_unsigned tag.
type Scalar interface {
	constraints.Signed | constraints.Float
}
