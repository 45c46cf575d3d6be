package nines

import (
	"fmt"
	"iter"
)

// Slice identifies one of the nine cells of a layout. Slices are numbered in
// row-major order, which is also the order in which layouts emit them.
//
//	┌───┬───┬───┐
//	│ 0 │ 1 │ 2 │
//	├───┼───┼───┤
//	│ 3 │ 4 │ 5 │
//	├───┼───┼───┤
//	│ 6 │ 7 │ 8 │
//	└───┴───┴───┘
type Slice uint8

const (
	TopLeft Slice = iota
	Top
	TopRight
	Left
	Center
	Right
	BottomLeft
	Bottom
	BottomRight
)

// NumSlices is the number of cells in a layout.
const NumSlices = 9

var sliceNames = [NumSlices]string{
	TopLeft:     "top-left",
	Top:         "top",
	TopRight:    "top-right",
	Left:        "left",
	Center:      "center",
	Right:       "right",
	BottomLeft:  "bottom-left",
	Bottom:      "bottom",
	BottomRight: "bottom-right",
}

func (s Slice) String() string {
	if s < NumSlices {
		return sliceNames[s]
	}
	return fmt.Sprintf("Slice(%d)", uint8(s))
}

// Column returns the slice's column, 0 through 2.
func (s Slice) Column() int { return int(s) % 3 }

// Row returns the slice's row, 0 through 2.
func (s Slice) Row() int { return int(s) / 3 }

// IsCorner reports whether s is one of the four corners.
func (s Slice) IsCorner() bool {
	return s.Column() != 1 && s.Row() != 1
}

func allSlices() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		for s := range Slice(NumSlices) {
			if !yield(s) {
				return
			}
		}
	}
}

// Layout describes a nine-slice layout to compute: where the slices of Src
// end up in Dst, and how they are scaled to get there.
//
// A Layout has to be validated before it can be laid out:
//
//	l := nines.Layout[int]{
//		Src: nines.Dimensions[int]{
//			Outer: nines.XYWH(0, 0, 3, 3),
//			Inner: nines.XYWH(1, 1, 1, 1),
//		},
//		Dst: nines.Dimensions[int]{
//			Outer: nines.XYWH(0, 0, 5, 4),
//			Inner: nines.XYWH(1, 1, 3, 2),
//		},
//	}
//	vl, err := l.Validate()
type Layout[S Scalar] struct {
	Dst   Dimensions[S]
	Src   Dimensions[S]
	Style Style
}

// Validate validates Dst and then Src. Style is not checked; unsupported
// scales are reported when the layout is computed.
func (l Layout[S]) Validate() (ValidLayout[S], error) {
	dst, err := l.Dst.Validate()
	if err != nil {
		return ValidLayout[S]{}, fmt.Errorf("dst: %w", err)
	}
	src, err := l.Src.Validate()
	if err != nil {
		return ValidLayout[S]{}, fmt.Errorf("src: %w", err)
	}
	return ValidLayout[S]{
		Dst:   dst,
		Src:   src,
		Style: l.Style,
	}, nil
}

// ValidLayout is a [Layout] whose dimensions have been validated. Its fields
// can be replaced freely, since each of them is valid on its own.
type ValidLayout[S Scalar] struct {
	Dst   ValidDimensions[S]
	Src   ValidDimensions[S]
	Style Style
}

// Layout returns the unvalidated form of l.
func (l ValidLayout[S]) Layout() Layout[S] {
	return Layout[S]{
		Dst:   l.Dst.Dimensions(),
		Src:   l.Src.Dimensions(),
		Style: l.Style,
	}
}

// Cell is one slice of a computed layout.
type Cell[S Scalar] struct {
	Slice Slice
	Dst   ValidRect[S]
	Src   ValidRect[S]
	// Scale is the scale of the slice along each axis.
	Scale Axes[Scale]
}

// EachDstSrc calls fn with the destination and source rectangle of every
// slice, in the order top-left, top, top-right, left, center, right,
// bottom-left, bottom, bottom-right.
//
// If the style uses a scale other than [Stretch] anywhere, EachDstSrc returns
// an error wrapping [ErrUnsupportedScale] without calling fn.
func (l ValidLayout[S]) EachDstSrc(fn func(dst, src ValidRect[S])) error {
	if err := l.Style.Supported(); err != nil {
		return err
	}
	l.layout9(func(c Cell[S]) bool {
		fn(c.Dst, c.Src)
		return true
	})
	return nil
}

// Cells returns all nine cells of the layout, indexed by [Slice].
func (l ValidLayout[S]) Cells() ([NumSlices]Cell[S], error) {
	var out [NumSlices]Cell[S]
	if err := l.Style.Supported(); err != nil {
		return out, err
	}
	l.layout9(func(c Cell[S]) bool {
		out[c.Slice] = c
		return true
	})
	return out, nil
}

// Pairs returns an iterator over the destination and source rectangles of
// every slice, in the same order as [ValidLayout.EachDstSrc].
//
// Pairs panics if the style is unsupported, before yielding anything. Check
// [Style.Supported] first when the style comes from untrusted input.
func (l ValidLayout[S]) Pairs() iter.Seq2[ValidRect[S], ValidRect[S]] {
	if err := l.Style.Supported(); err != nil {
		panic(err)
	}
	return func(yield func(ValidRect[S], ValidRect[S]) bool) {
		l.layout9(func(c Cell[S]) bool {
			return yield(c.Dst, c.Src)
		})
	}
}

// breakpoints returns the horizontal and vertical edges of the nine slices of
// d, in increasing order.
func breakpoints[S Scalar](d ValidDimensions[S]) (x, y [4]S) {
	x = [4]S{d.d.Outer.Left, d.d.Inner.Left, d.d.Inner.Right, d.d.Outer.Right}
	y = [4]S{d.d.Outer.Top, d.d.Inner.Top, d.d.Inner.Bottom, d.d.Outer.Bottom}
	return x, y
}

// layout9 decomposes dst and src into their nine slices and lays out each
// pair. It stops when emit returns false.
func (l ValidLayout[S]) layout9(emit func(Cell[S]) bool) {
	dstx, dsty := breakpoints(l.Dst)
	srcx, srcy := breakpoints(l.Src)

	for s := range allSlices() {
		x, y := s.Column(), s.Row()
		// The breakpoints are sorted because the dimensions are valid, so
		// every slice is too.
		dst := Rect[S]{Left: dstx[x], Right: dstx[x+1], Top: dsty[y], Bottom: dsty[y+1]}.trusted()
		src := Rect[S]{Left: srcx[x], Right: srcx[x+1], Top: srcy[y], Bottom: srcy[y+1]}.trusted()
		if !layout1(s, dst, src, l.Style.Scales(s), emit) {
			return
		}
	}
}

// layout1 lays out a single slice. With Stretch on both axes the source maps
// onto the destination as a whole.
func layout1[S Scalar](s Slice, dst, src ValidRect[S], scale Axes[Scale], emit func(Cell[S]) bool) bool {
	if !scale.Horizontal.Supported() || !scale.Vertical.Supported() {
		// Callers check the style up front.
		panic(fmt.Sprintf("unsupported scale %v for slice %s", scale, s))
	}
	return emit(Cell[S]{
		Slice: s,
		Dst:   dst,
		Src:   src,
		Scale: scale,
	})
}
