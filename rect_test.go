package nines

import (
	"errors"
	"math"
	"testing"
)

func TestRect(t *testing.T) {
	r, err := XYWH(10, 20, 30, 40).Validate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, Rect[int]{Left: 10, Right: 40, Top: 20, Bottom: 60}, r.Rect())
	if l, rr, tp, b := r.Left(), r.Right(), r.Top(), r.Bottom(); l != 10 || rr != 40 || tp != 20 || b != 60 {
		t.Errorf("got bounds %d %d %d %d, want 10 40 20 60", l, rr, tp, b)
	}
	if w := r.Width(); w != 30 {
		t.Errorf("got width %d, want 30", w)
	}
	if h := r.Height(); h != 40 {
		t.Errorf("got height %d, want 40", h)
	}
	diff(t, Sz(30, 40), r.Size())

	if !r.Equal(RectFromRanges(10, 40, 20, 60)) {
		t.Errorf("%v doesn't equal the range constructed rectangle", r)
	}
	if !r.Equal(RectFromPoints(Pt(10, 20), Pt(40, 60))) {
		t.Errorf("%v doesn't equal the point constructed rectangle", r)
	}
	diff(t, Pt(10, 20), r.Min())
	diff(t, Pt(40, 60), r.Max())
}

func TestRectValidate(t *testing.T) {
	tests := []struct {
		r    Rect[int]
		want error
	}{
		{XYWH(0, 0, 0, 0), nil},
		{XYWH(-5, -5, 3, 3), nil},
		{XYWH(0, 0, 0, -1), errTopBottom},
		{XYWH(0, 0, -1, 0), errLeftRight},
		// left ≤ right is checked first
		{XYWH(0, 0, -1, -1), errLeftRight},
	}
	for _, tt := range tests {
		_, err := tt.r.Validate()
		if err != tt.want {
			t.Errorf("%v: got error %v, want %v", tt.r, err, tt.want)
		}
	}
}

func TestRectValidateNaN(t *testing.T) {
	nan := math.NaN()
	if _, err := XYWH(0.0, 0.0, 0.0, 0.0).Validate(); err != nil {
		t.Errorf("unexpected error for empty rectangle: %v", err)
	}
	for _, r := range []Rect[float64]{
		XYWH(nan, 0, 0, 0),
		XYWH(0, nan, 0, 0),
		XYWH(0, 0, nan, 0),
		XYWH(0, 0, 0, nan),
	} {
		if !r.IsNaN() {
			t.Errorf("%v: IsNaN returned false", r)
		}
		_, err := r.Validate()
		var nerr *Error
		if !errors.As(err, &nerr) {
			t.Errorf("%v: got error %v, want *Error", r, err)
		}
	}

	f32 := float32(math.NaN())
	if _, err := XYWH[float32](0, 0, f32, 1).Validate(); err == nil {
		t.Error("float32 NaN width passed validation")
	}
}

// Validity must match the defining inequalities for any combination of
// bounds, including the degenerate ones.
func TestRectValidateExhaustive(t *testing.T) {
	vals := []int{-2, -1, 0, 1, 2}
	for _, l := range vals {
		for _, r := range vals {
			for _, tp := range vals {
				for _, b := range vals {
					rect := Rect[int]{l, r, tp, b}
					_, err := rect.Validate()
					if want := l <= r && tp <= b; (err == nil) != want {
						t.Errorf("%v: got error %v, want valid=%t", rect, err, want)
					}
				}
			}
		}
	}
}

func TestRectRoundTrip(t *testing.T) {
	orig := XYWH(1.5, -2.5, 3, 4)
	v, err := orig.Validate()
	if err != nil {
		t.Fatal(err)
	}
	v2, err := v.Rect().Validate()
	if err != nil {
		t.Fatal(err)
	}
	diff(t, v, v2)
	diff(t, orig, v2.Rect())
}

func TestRectGrowShrink(t *testing.T) {
	r := XYWH(10, 10, 10, 10)
	borders := Rect[int]{Left: 1, Right: 2, Top: 3, Bottom: 4}
	grown := r.Grow(borders)
	diff(t, Rect[int]{Left: 9, Right: 22, Top: 7, Bottom: 24}, grown)
	diff(t, r, grown.Shrink(borders))

	// Shrinking past the center is not caught by Shrink itself.
	inverted := XYWH(0, 0, 2, 2).Shrink(Rect[int]{2, 2, 2, 2})
	if _, err := inverted.Validate(); err == nil {
		t.Errorf("%v passed validation", inverted)
	}
}

func TestRectTranslate(t *testing.T) {
	diff(t, XYWH(5, -5, 2, 3), XYWH(0, 0, 2, 3).Translate(Pt(5, -5)))
}

func TestZeroValidRect(t *testing.T) {
	var v ValidRect[float64]
	if v.Width() != 0 || v.Height() != 0 {
		t.Errorf("zero ValidRect has size %v", v.Size())
	}
	if _, err := v.Rect().Validate(); err != nil {
		t.Errorf("zero rectangle failed validation: %v", err)
	}
}
