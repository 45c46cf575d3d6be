package nines

import (
	"errors"
	"testing"
)

type pair[S Scalar] struct {
	Dst, Src Rect[S]
}

func collect[S Scalar](t *testing.T, l ValidLayout[S]) []pair[S] {
	t.Helper()
	var out []pair[S]
	err := l.EachDstSrc(func(dst, src ValidRect[S]) {
		out = append(out, pair[S]{dst.Rect(), src.Rect()})
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

// zLayout stretches a 3×3 source with 1 pixel slices onto a 5×4 destination.
//
// src
//
//	  1   1   1
//	┊←─→┊←─→┊←─→┊
//	┌───┬───┬───┐┈┈
//	│ 0 │ 1 │ 2 │ ↕ 1
//	├───┼───┼───┤┈┈
//	│ 3 │ 4 │ 5 │ ↕ 1
//	├───┼───┼───┤┈┈
//	│ 6 │ 7 │ 8 │ ↕ 1
//	└───┴───┴───┘┈┈
//
// dst
//
//	  1    3    1
//	┊←─→┊←───→┊←─→┊
//	┌───┬─────┬───┐┈┈
//	│ 0 │  1  │ 2 │ ↕ 1
//	├───┼─────┼───┤┈┈
//	│   │     │   │
//	│ 3 │  4  │ 5 │  2
//	│   │     │   │
//	├───┼─────┼───┤┈┈
//	│ 6 │  7  │ 8 │ ↕ 1
//	└───┴─────┴───┘┈┈
var zLayout = Layout[int]{
	Src: Dimensions[int]{
		Outer: XYWH(0, 0, 3, 3),
		Inner: XYWH(1, 1, 1, 1),
	},
	Dst: Dimensions[int]{
		Outer: XYWH(0, 0, 5, 4),
		Inner: XYWH(1, 1, 3, 2),
	},
}

func TestLayoutZ(t *testing.T) {
	l, err := zLayout.Validate()
	if err != nil {
		t.Fatal(err)
	}
	want := []pair[int]{
		{XYWH(0, 0, 1, 1), XYWH(0, 0, 1, 1)},
		{XYWH(1, 0, 3, 1), XYWH(1, 0, 1, 1)},
		{XYWH(4, 0, 1, 1), XYWH(2, 0, 1, 1)},
		{XYWH(0, 1, 1, 2), XYWH(0, 1, 1, 1)},
		{XYWH(1, 1, 3, 2), XYWH(1, 1, 1, 1)},
		{XYWH(4, 1, 1, 2), XYWH(2, 1, 1, 1)},
		{XYWH(0, 3, 1, 1), XYWH(0, 2, 1, 1)},
		{XYWH(1, 3, 3, 1), XYWH(1, 2, 1, 1)},
		{XYWH(4, 3, 1, 1), XYWH(2, 2, 1, 1)},
	}
	diff(t, want, collect(t, l))
}

func TestLayoutFloat(t *testing.T) {
	l, err := Layout[float64]{
		Src: Dimensions[float64]{
			Outer: XYWH(0.0, 0, 16, 16),
			Inner: XYWH(4.0, 4, 8, 8),
		},
		Dst: Dimensions[float64]{
			Outer: XYWH(10.0, 20, 100.5, 40),
			Inner: XYWH(14.0, 24, 92.5, 32),
		},
		Style: NewStyle(Stretch),
	}.Validate()
	if err != nil {
		t.Fatal(err)
	}
	got := collect(t, l)
	if len(got) != NumSlices {
		t.Fatalf("got %d pairs, want %d", len(got), NumSlices)
	}
	diff(t, pair[float64]{XYWH(14.0, 24, 92.5, 32), XYWH(4.0, 4, 8, 8)}, got[Center])
	diff(t, pair[float64]{XYWH(106.5, 56, 4, 4), XYWH(12.0, 12, 4, 4)}, got[BottomRight])
}

// The slices of a layout tile the outer rectangles without gaps or overlap.
func TestLayoutCoversOuter(t *testing.T) {
	l, err := zLayout.Validate()
	if err != nil {
		t.Fatal(err)
	}
	var dstArea, srcArea int
	err = l.EachDstSrc(func(dst, src ValidRect[int]) {
		dstArea += dst.Size().Area()
		srcArea += src.Size().Area()
	})
	if err != nil {
		t.Fatal(err)
	}
	if want := l.Dst.Outer().Size().Area(); dstArea != want {
		t.Errorf("got dst area %d, want %d", dstArea, want)
	}
	if want := l.Src.Outer().Size().Area(); srcArea != want {
		t.Errorf("got src area %d, want %d", srcArea, want)
	}
}

func TestLayoutDegenerate(t *testing.T) {
	// No borders at all: eight empty slices and the center.
	l, err := Layout[int]{
		Src: Dimensions[int]{Outer: XYWH(0, 0, 4, 4), Inner: XYWH(0, 0, 4, 4)},
		Dst: Dimensions[int]{Outer: XYWH(0, 0, 8, 8), Inner: XYWH(0, 0, 8, 8)},
	}.Validate()
	if err != nil {
		t.Fatal(err)
	}
	cells, err := l.Cells()
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range cells {
		if c.Slice == Center {
			diff(t, XYWH(0, 0, 8, 8), c.Dst.Rect())
			diff(t, XYWH(0, 0, 4, 4), c.Src.Rect())
			continue
		}
		if !c.Dst.Size().IsZero() || !c.Src.Size().IsZero() {
			t.Errorf("%s: got non-empty slices %v and %v", c.Slice, c.Dst, c.Src)
		}
	}
}

func TestLayoutCells(t *testing.T) {
	l, err := zLayout.Validate()
	if err != nil {
		t.Fatal(err)
	}
	cells, err := l.Cells()
	if err != nil {
		t.Fatal(err)
	}
	pairs := collect(t, l)
	for i, c := range cells {
		if c.Slice != Slice(i) {
			t.Errorf("cell %d has slice %s", i, c.Slice)
		}
		diff(t, pairs[i], pair[int]{c.Dst.Rect(), c.Src.Rect()})
		diff(t, Axes[Scale]{Stretch, Stretch}, c.Scale)
	}
}

func TestLayoutPairs(t *testing.T) {
	l, err := zLayout.Validate()
	if err != nil {
		t.Fatal(err)
	}
	want := collect(t, l)
	var got []pair[int]
	for dst, src := range l.Pairs() {
		got = append(got, pair[int]{dst.Rect(), src.Rect()})
	}
	diff(t, want, got)

	// Breaking out early stops the iteration.
	n := 0
	for range l.Pairs() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestLayoutUnsupportedScale(t *testing.T) {
	styles := []Style{
		NewStyle(Repeat),
		NewStyleHV(Stretch, Round),
		{Border: BorderScales{Top: Space}},
		{Border: BorderScales{Bottom: Repeat}},
		{Border: BorderScales{Left: Round}},
		{Border: BorderScales{Right: Space}},
		{Center: Axes[Scale]{Horizontal: Repeat}},
		{Center: Axes[Scale]{Vertical: Repeat}},
	}
	for _, st := range styles {
		l, err := zLayout.Validate()
		if err != nil {
			t.Fatal(err)
		}
		l.Style = st

		called := false
		err = l.EachDstSrc(func(dst, src ValidRect[int]) { called = true })
		if !errors.Is(err, ErrUnsupportedScale) {
			t.Errorf("%+v: got error %v, want ErrUnsupportedScale", st, err)
		}
		if called {
			t.Errorf("%+v: pairs were emitted for an unsupported style", st)
		}

		if _, err := l.Cells(); !errors.Is(err, ErrUnsupportedScale) {
			t.Errorf("%+v: Cells returned %v", st, err)
		}

		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("%+v: Pairs didn't panic", st)
				}
			}()
			l.Pairs()
		}()
	}
}

func TestLayoutValidate(t *testing.T) {
	bad := zLayout
	bad.Src.Inner = XYWH(5, 5, 1, 1)
	if _, err := bad.Validate(); !errors.Is(err, errInnerRightOuterRight) {
		t.Errorf("got error %v, want %v", err, errInnerRightOuterRight)
	}

	bad = zLayout
	bad.Dst.Outer = XYWH(2, 0, 5, 4)
	if _, err := bad.Validate(); !errors.Is(err, errOuterLeftInnerLeft) {
		t.Errorf("got error %v, want %v", err, errOuterLeftInnerLeft)
	}

	l, err := zLayout.Validate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, zLayout, l.Layout())
}

func TestSlice(t *testing.T) {
	corners := []Slice{TopLeft, TopRight, BottomLeft, BottomRight}
	for _, s := range corners {
		if !s.IsCorner() {
			t.Errorf("%s isn't a corner", s)
		}
	}
	for _, s := range []Slice{Top, Left, Center, Right, Bottom} {
		if s.IsCorner() {
			t.Errorf("%s is a corner", s)
		}
	}
	if s := Slice(NumSlices).String(); s != "Slice(9)" {
		t.Errorf("got %q", s)
	}
	if c, r := BottomLeft.Column(), BottomLeft.Row(); c != 0 || r != 2 {
		t.Errorf("bottom-left is at column %d, row %d", c, r)
	}
}
