package nines

import "fmt"

type Point[S Scalar] struct {
	X S
	Y S
}

// Pt returns the point (x, y).
func Pt[S Scalar](x, y S) Point[S] {
	return Point[S]{X: x, Y: y}
}

func (pt Point[S]) Splat() (S, S) {
	return pt.X, pt.Y
}

func (pt Point[S]) String() string {
	return fmt.Sprintf("(%v, %v)", pt.X, pt.Y)
}

// Add returns pt translated by o.
func (pt Point[S]) Add(o Point[S]) Point[S] {
	return Point[S]{
		X: pt.X + o.X,
		Y: pt.Y + o.Y,
	}
}

// Sub computes pt−o.
func (pt Point[S]) Sub(o Point[S]) Point[S] {
	return Point[S]{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// IsNaN reports whether at least one of x and y is NaN. It is always false for
// integer scalars.
func (pt Point[S]) IsNaN() bool {
	return isNaN(pt.X) || isNaN(pt.Y)
}

// isNaN reports whether v is a floating point NaN.
func isNaN[S Scalar](v S) bool {
	return v != v
}
