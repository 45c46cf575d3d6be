package nines

import "fmt"

// Rect is an axis-aligned rectangle. Right and Bottom are generally not
// inclusive.
//
// A Rect may have negative extents or NaN bounds. Use [Rect.Validate] to
// obtain a [ValidRect] before doing layout math with it.
type Rect[S Scalar] struct {
	Left   S
	Right  S
	Top    S
	Bottom S
}

// XYWH returns the rectangle with origin (x, y) and size w×h.
//
// x+w and y+h are computed in S and may overflow; that is the caller's
// responsibility.
func XYWH[S Scalar](x, y, w, h S) Rect[S] {
	return Rect[S]{
		Left:   x,
		Top:    y,
		Right:  x + w,
		Bottom: y + h,
	}
}

// RectFromPoints returns the rectangle spanning from p0 (top left) to p1
// (bottom right). Unlike most constructors in geometry packages, the points
// are not reordered.
func RectFromPoints[S Scalar](p0, p1 Point[S]) Rect[S] {
	return Rect[S]{
		Left:   p0.X,
		Top:    p0.Y,
		Right:  p1.X,
		Bottom: p1.Y,
	}
}

// RectFromRanges returns the rectangle covering the horizontal range [x0, x1)
// and the vertical range [y0, y1).
func RectFromRanges[S Scalar](x0, x1, y0, y1 S) Rect[S] {
	return Rect[S]{
		Left:   x0,
		Right:  x1,
		Top:    y0,
		Bottom: y1,
	}
}

func (r Rect[S]) Min() Point[S] { return Point[S]{r.Left, r.Top} }
func (r Rect[S]) Max() Point[S] { return Point[S]{r.Right, r.Bottom} }

// Grow returns r moved outward on each side by the matching field of borders.
//
// The result is not validated.
func (r Rect[S]) Grow(borders Rect[S]) Rect[S] {
	return Rect[S]{
		Left:   r.Left - borders.Left,
		Right:  r.Right + borders.Right,
		Top:    r.Top - borders.Top,
		Bottom: r.Bottom + borders.Bottom,
	}
}

// Shrink returns r moved inward on each side by the matching field of borders.
//
// The result is not validated.
func (r Rect[S]) Shrink(borders Rect[S]) Rect[S] {
	return Rect[S]{
		Left:   r.Left + borders.Left,
		Right:  r.Right - borders.Right,
		Top:    r.Top + borders.Top,
		Bottom: r.Bottom - borders.Bottom,
	}
}

func (r Rect[S]) Translate(v Point[S]) Rect[S] {
	return Rect[S]{
		Left:   r.Left + v.X,
		Right:  r.Right + v.X,
		Top:    r.Top + v.Y,
		Bottom: r.Bottom + v.Y,
	}
}

func (r Rect[S]) IsNaN() bool {
	return isNaN(r.Left) ||
		isNaN(r.Right) ||
		isNaN(r.Top) ||
		isNaN(r.Bottom)
}

func (r Rect[S]) String() string {
	return fmt.Sprintf("[%v, %v)×[%v, %v)", r.Left, r.Right, r.Top, r.Bottom)
}

// Validate checks that r has non-negative, non-NaN extents, that is
//
//	left ≤ right
//	top ≤ bottom
//
// Every comparison involving NaN is false, so a NaN bound always fails.
func (r Rect[S]) Validate() (ValidRect[S], error) {
	if !(r.Left <= r.Right) {
		return ValidRect[S]{}, errLeftRight
	}
	if !(r.Top <= r.Bottom) {
		return ValidRect[S]{}, errTopBottom
	}
	return ValidRect[S]{r}, nil
}

// trusted wraps r without checking it. It is used where the invariant follows
// from values that were already validated. In debug builds the invariant is
// checked anyway.
func (r Rect[S]) trusted() ValidRect[S] {
	if debug {
		if !(r.Left <= r.Right) {
			panic(errLeftRight)
		}
		if !(r.Top <= r.Bottom) {
			panic(errTopBottom)
		}
	}
	return ValidRect[S]{r}
}

// ValidRect is a [Rect] known to satisfy left ≤ right and top ≤ bottom.
//
// The zero value is the valid empty rectangle at the origin. There is no way
// to modify a ValidRect in place; derive a new Rect and validate it instead.
type ValidRect[S Scalar] struct {
	r Rect[S]
}

// NewValidRect is shorthand for r.Validate().
func NewValidRect[S Scalar](r Rect[S]) (ValidRect[S], error) {
	return r.Validate()
}

func (v ValidRect[S]) Left() S   { return v.r.Left }
func (v ValidRect[S]) Right() S  { return v.r.Right }
func (v ValidRect[S]) Top() S    { return v.r.Top }
func (v ValidRect[S]) Bottom() S { return v.r.Bottom }

// Rect returns a copy of the underlying rectangle.
func (v ValidRect[S]) Rect() Rect[S] { return v.r }

func (v ValidRect[S]) Min() Point[S] { return v.r.Min() }
func (v ValidRect[S]) Max() Point[S] { return v.r.Max() }

// Width returns right − left. It is never negative.
func (v ValidRect[S]) Width() S {
	return v.r.Right - v.r.Left
}

// Height returns bottom − top. It is never negative.
func (v ValidRect[S]) Height() S {
	return v.r.Bottom - v.r.Top
}

func (v ValidRect[S]) Size() Size[S] {
	return Size[S]{
		Width:  v.Width(),
		Height: v.Height(),
	}
}

// Equal reports whether v has the same bounds as r.
func (v ValidRect[S]) Equal(r Rect[S]) bool {
	return v.r == r
}

func (v ValidRect[S]) String() string {
	return v.r.String()
}
