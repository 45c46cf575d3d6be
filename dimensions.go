package nines

import "fmt"

// Dimensions describe a nine-slice region: an outer rectangle and the inner
// rectangle nested inside it.
//
//	left             right   ┌──→ +x
//	 ┊←──── outer ────→┊     │
//	 ┊                 ┊     ↓
//	 ┊  ┊←─ inner ─→┊  ┊    +y
//	 ┊  ┊           ┊  ┊
//	 ┌──┬───────────┬──┐┈┈┈┈┈┈┈┈ top
//	 │  │           │  │          ↑
//	 ├──┼───────────┼──┤┈┈┈┈      │
//	 │  │           │  │   ↑      │
//	 │  │           │  │ inner  outer
//	 │  │           │  │   ↓      │
//	 ├──┼───────────┼──┤┈┈┈┈      │
//	 │  │           │  │          ↓
//	 └──┴───────────┴──┘┈┈┈┈┈┈ bottom
//
// See [ValidDimensions] for the checked form.
type Dimensions[S Scalar] struct {
	Outer Rect[S]
	Inner Rect[S]
}

// Validate checks that the inner rectangle is properly nested in the outer
// one:
//
//	outer.left ≤ inner.left ≤ inner.right ≤ outer.right
//	outer.top ≤ inner.top ≤ inner.bottom ≤ outer.bottom
//
// The error describes the first violated inequality, checking the
// horizontal chain before the vertical one.
func (d Dimensions[S]) Validate() (ValidDimensions[S], error) {
	if err := d.check(); err != nil {
		return ValidDimensions[S]{}, err
	}
	return ValidDimensions[S]{d}, nil
}

func (d Dimensions[S]) check() *Error {
	switch {
	case !(d.Outer.Left <= d.Inner.Left):
		return errOuterLeftInnerLeft
	case !(d.Inner.Left <= d.Inner.Right):
		return errInnerLeftInnerRight
	case !(d.Inner.Right <= d.Outer.Right):
		return errInnerRightOuterRight
	case !(d.Outer.Top <= d.Inner.Top):
		return errOuterTopInnerTop
	case !(d.Inner.Top <= d.Inner.Bottom):
		return errInnerTopInnerBottom
	case !(d.Inner.Bottom <= d.Outer.Bottom):
		return errInnerBottomOuterBottom
	}
	return nil
}

func (d Dimensions[S]) trusted() ValidDimensions[S] {
	if debug {
		if err := d.check(); err != nil {
			panic(err)
		}
	}
	return ValidDimensions[S]{d}
}

func (d Dimensions[S]) String() string {
	return fmt.Sprintf("{outer %v, inner %v}", d.Outer, d.Inner)
}

// ValidDimensions are [Dimensions] known to be properly nested. As a
// consequence both rectangles and all four borders have non-negative
// extents.
type ValidDimensions[S Scalar] struct {
	d Dimensions[S]
}

// NewValidDimensions is shorthand for Dimensions{outer, inner}.Validate().
func NewValidDimensions[S Scalar](outer, inner Rect[S]) (ValidDimensions[S], error) {
	return Dimensions[S]{Outer: outer, Inner: inner}.Validate()
}

func (v ValidDimensions[S]) Outer() ValidRect[S] { return v.d.Outer.trusted() }
func (v ValidDimensions[S]) Inner() ValidRect[S] { return v.d.Inner.trusted() }

// Dimensions returns a copy of the underlying dimensions.
func (v ValidDimensions[S]) Dimensions() Dimensions[S] { return v.d }

// Equal reports whether v has the same rectangles as d.
func (v ValidDimensions[S]) Equal(d Dimensions[S]) bool {
	return v.d == d
}

func (v ValidDimensions[S]) String() string {
	return v.d.String()
}

// Borders returns the thickness of each border, that is the distance between
// the matching edges of the outer and inner rectangles.
//
//	 left   right
//	 ┊←→┊    ┊←→┊
//	 ┌──┬────┬──┐┈┈
//	 │  │    │  │ ↕ top
//	 ├──┼────┼──┤┈┈
//	 │  │    │  │
//	 ├──┼────┼──┤┈┈
//	 │  │    │  │ ↕ bottom
//	 └──┴────┴──┘┈┈
//
// All four values are non-negative.
func (v ValidDimensions[S]) Borders() Rect[S] {
	return Rect[S]{
		Left:   v.d.Inner.Left - v.d.Outer.Left,
		Right:  v.d.Outer.Right - v.d.Inner.Right,
		Top:    v.d.Inner.Top - v.d.Outer.Top,
		Bottom: v.d.Outer.Bottom - v.d.Inner.Bottom,
	}
}

// CenterSize returns the size of the inner rectangle.
func (v ValidDimensions[S]) CenterSize() Size[S] {
	return v.Inner().Size()
}

// WithOuter returns dimensions with the given outer rectangle and the same
// border thicknesses as v.
//
// It fails if outer is invalid or if the borders don't fit inside it, which
// would give the center a negative extent. The result is checked after the
// inner rectangle has been computed, so floating point rounding or infinite
// bounds never produce improperly nested dimensions. Integer overflow is not
// detected.
func (v ValidDimensions[S]) WithOuter(outer Rect[S]) (ValidDimensions[S], error) {
	borders := v.Borders()
	vo, err := outer.Validate()
	if err != nil {
		return ValidDimensions[S]{}, err
	}
	if borders.Left+borders.Right > vo.Width() {
		return ValidDimensions[S]{}, errNegativeCenterWidth
	}
	if borders.Top+borders.Bottom > vo.Height() {
		return ValidDimensions[S]{}, errNegativeCenterHeight
	}
	// Rounding and infinities can still break nesting after shrinking.
	d := Dimensions[S]{
		Outer: outer,
		Inner: outer.Shrink(borders),
	}
	switch err := d.check(); err {
	case nil:
		return ValidDimensions[S]{d}, nil
	case errInnerLeftInnerRight:
		return ValidDimensions[S]{}, errNegativeCenterWidth
	case errInnerTopInnerBottom:
		return ValidDimensions[S]{}, errNegativeCenterHeight
	default:
		return ValidDimensions[S]{}, err
	}
}

// WithInner returns dimensions with the given inner rectangle and the same
// border thicknesses as v.
//
// Unlike [ValidDimensions.WithOuter] this cannot fail: growing a valid
// rectangle by non-negative borders keeps it nested. The exception is
// overflow, which is not detected and produces garbage.
func (v ValidDimensions[S]) WithInner(inner ValidRect[S]) ValidDimensions[S] {
	return Dimensions[S]{
		Outer: inner.r.Grow(v.Borders()),
		Inner: inner.r,
	}.trusted()
}
