//go:build nines_unsigned

package nines

import "golang.org/x/exp/constraints"

// Scalar is the constraint for coordinate values. This build also admits
// unsigned integers; callers are responsible for avoiding underflow.
type Scalar interface {
	constraints.Integer | constraints.Float
}
