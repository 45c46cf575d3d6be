package nines

import "fmt"

type Size[S Scalar] struct {
	Width  S
	Height S
}

// Sz returns the size w×h.
func Sz[S Scalar](w, h S) Size[S] {
	return Size[S]{
		Width:  w,
		Height: h,
	}
}

func (sz Size[S]) String() string {
	return fmt.Sprintf("%v×%v", sz.Width, sz.Height)
}

func (sz Size[S]) Splat() (w S, h S) {
	return sz.Width, sz.Height
}

func (sz Size[S]) Area() S {
	return sz.Width * sz.Height
}

// IsZero reports whether the size has no area, which is the case for the
// degenerate cells of a layout with empty borders or an empty center.
func (sz Size[S]) IsZero() bool {
	return sz.Width == 0 || sz.Height == 0
}
