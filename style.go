package nines

import "fmt"

// BorderScales holds one [Scale] per border edge. Top and Bottom apply to
// the vertical axis of their edge, Left and Right to the horizontal axis.
type BorderScales struct {
	Left   Scale
	Right  Scale
	Top    Scale
	Bottom Scale
}

// Style is the scaling style of a nine-slice layout. The zero value stretches
// everything.
//
// Corners always use [Stretch]. Each border edge has one fixed [Stretch]
// axis and takes its border scale on the other. For the top edge
//
//	   ┈┬───────────┬┈
//	    │           │
//	   ┈┼───────────┼┈
//	    ┊           ┊
//
// the horizontal scale is Stretch and the vertical scale is Border.Top. For
// a corner
//
//	 ┌──┬┈
//	 │  │
//	 ├──┼┈
//	 ┊  ┊
//
// both are Stretch. The center uses Center.Horizontal and Center.Vertical.
type Style struct {
	Border BorderScales
	Center Axes[Scale]
}

// NewStyle returns a style with the same scaling everywhere.
//
//	 ┊←→┊←─ scale ─→┊←→┊
//	 ┌──┬───────────┬──┐┈┈┈┈
//	 │  │           │  │   ↕
//	 ├──┼───────────┼──┤┈┈┈┈
//	 │  │           │  │   ↑
//	 │  │           │  │ scale
//	 │  │           │  │   ↓
//	 ├──┼───────────┼──┤┈┈┈┈
//	 │  │           │  │   ↕
//	 └──┴───────────┴──┘┈┈┈┈
func NewStyle(scale Scale) Style {
	return NewStyleHV(scale, scale)
}

// NewStyleHV returns a style with uniform scaling along each axis.
//
//	 ┊←→┊←horizontal→┊←→┊
//	 ┌──┬────────────┬──┐┈┈┈┈┈
//	 │  │            │  │    ↕
//	 ├──┼────────────┼──┤┈┈┈┈┈
//	 │  │            │  │    ↑
//	 │  │            │  │ vertical
//	 │  │            │  │    ↓
//	 ├──┼────────────┼──┤┈┈┈┈┈
//	 │  │            │  │    ↕
//	 └──┴────────────┴──┘┈┈┈┈┈
func NewStyleHV(horizontal, vertical Scale) Style {
	return Style{
		Border: BorderScales{
			Left:   vertical,
			Right:  vertical,
			Top:    horizontal,
			Bottom: horizontal,
		},
		Center: Axes[Scale]{
			Horizontal: horizontal,
			Vertical:   vertical,
		},
	}
}

// Scales returns the horizontal and vertical scale used for slice s.
func (st Style) Scales(s Slice) Axes[Scale] {
	switch s {
	case Top:
		return Axes[Scale]{Stretch, st.Border.Top}
	case Bottom:
		return Axes[Scale]{Stretch, st.Border.Bottom}
	case Left:
		return Axes[Scale]{st.Border.Left, Stretch}
	case Right:
		return Axes[Scale]{st.Border.Right, Stretch}
	case Center:
		return st.Center
	default:
		return Axes[Scale]{Stretch, Stretch}
	}
}

// Supported returns an error wrapping [ErrUnsupportedScale] if any slice of
// the style uses a scale other than [Stretch]. It names the first such slice
// in layout order.
func (st Style) Supported() error {
	for s := range allSlices() {
		sc := st.Scales(s)
		if !sc.Horizontal.Supported() {
			return fmt.Errorf("%w: %s horizontal scale is %s", ErrUnsupportedScale, s, sc.Horizontal)
		}
		if !sc.Vertical.Supported() {
			return fmt.Errorf("%w: %s vertical scale is %s", ErrUnsupportedScale, s, sc.Vertical)
		}
	}
	return nil
}
