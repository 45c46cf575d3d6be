package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"honnef.co/go/nines"
)

const (
	scalarInt   = "int"
	scalarFloat = "float"
)

// layoutFile is the on-disk description of a layout.
//
//	scalar = "int"
//	style = "stretch"
//
//	[src]
//	outer = [0, 0, 3, 3]
//	inner = [1, 1, 1, 1]
//
//	[dst]
//	outer = [0, 0, 5, 4]
//	inner = [1, 1, 3, 2]
//
// Rectangles are given as [x, y, w, h].
type layoutFile struct {
	Scalar string    `toml:"scalar"`
	Style  styleSpec `toml:"style"`
	Src    dimsSpec  `toml:"src"`
	Dst    dimsSpec  `toml:"dst"`
}

type dimsSpec struct {
	Outer xywh `toml:"outer"`
	Inner xywh `toml:"inner"`
}

// xywh is a rectangle as x, y, width and height. TOML distinguishes integers
// from floats, so both are accepted and converted later.
type xywh [4]float64

func (r *xywh) UnmarshalTOML(data any) error {
	vals, ok := data.([]any)
	if !ok || len(vals) != 4 {
		return fmt.Errorf("rectangle must be an array of 4 numbers [x, y, w, h], got %v", data)
	}
	for i, v := range vals {
		switch n := v.(type) {
		case int64:
			r[i] = float64(n)
		case float64:
			r[i] = n
		default:
			return fmt.Errorf("rectangle element %d is %T, not a number", i, v)
		}
	}
	return nil
}

func (r xywh) String() string {
	return fmt.Sprintf("[%g, %g, %g, %g]", r[0], r[1], r[2], r[3])
}

// styleSpec accepts either a single scale name, or a table with optional
// horizontal, vertical, border and center entries. Later entries refine
// earlier ones.
//
//	style = "stretch"
//	style = { horizontal = "stretch", vertical = "round" }
//	[style]
//	border = { left = "stretch", right = "stretch", top = "repeat", bottom = "repeat" }
//	center = { horizontal = "stretch", vertical = "stretch" }
type styleSpec struct {
	nines.Style
}

func (st *styleSpec) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case string:
		sc, err := nines.ParseScale(v)
		if err != nil {
			return err
		}
		st.Style = nines.NewStyle(sc)
		return nil
	case map[string]any:
		return st.fromTable(v)
	default:
		return fmt.Errorf("style must be a scale name or a table, got %T", data)
	}
}

func (st *styleSpec) fromTable(t map[string]any) error {
	h, v := nines.Stretch, nines.Stretch
	if err := scaleField(t, "horizontal", &h); err != nil {
		return err
	}
	if err := scaleField(t, "vertical", &v); err != nil {
		return err
	}
	st.Style = nines.NewStyleHV(h, v)

	if b, ok := t["border"]; ok {
		bt, ok := b.(map[string]any)
		if !ok {
			return fmt.Errorf("style.border must be a table, got %T", b)
		}
		for _, f := range []struct {
			key string
			dst *nines.Scale
		}{
			{"left", &st.Border.Left},
			{"right", &st.Border.Right},
			{"top", &st.Border.Top},
			{"bottom", &st.Border.Bottom},
		} {
			if err := scaleField(bt, f.key, f.dst); err != nil {
				return fmt.Errorf("style.border: %w", err)
			}
		}
	}
	if c, ok := t["center"]; ok {
		ct, ok := c.(map[string]any)
		if !ok {
			return fmt.Errorf("style.center must be a table, got %T", c)
		}
		if err := scaleField(ct, "horizontal", &st.Center.Horizontal); err != nil {
			return fmt.Errorf("style.center: %w", err)
		}
		if err := scaleField(ct, "vertical", &st.Center.Vertical); err != nil {
			return fmt.Errorf("style.center: %w", err)
		}
	}
	return nil
}

// scaleField parses t[key] into dst if it is present.
func scaleField(t map[string]any, key string, dst *nines.Scale) error {
	raw, ok := t[key]
	if !ok {
		return nil
	}
	name, ok := raw.(string)
	if !ok {
		return fmt.Errorf("%s must be a scale name, got %T", key, raw)
	}
	sc, err := nines.ParseScale(name)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = sc
	return nil
}

// loadLayoutFile reads and parses a layout description. A path of "-" reads
// from stdin.
func loadLayoutFile(path string, stdin io.Reader) (*layoutFile, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	f, err := parseLayoutFile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

func parseLayoutFile(data []byte) (*layoutFile, error) {
	var f layoutFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	f.Scalar = strings.ToLower(f.Scalar)
	switch f.Scalar {
	case "":
		f.Scalar = scalarInt
	case scalarInt, scalarFloat:
	default:
		return nil, fmt.Errorf("unknown scalar %q, want %q or %q", f.Scalar, scalarInt, scalarFloat)
	}
	return &f, nil
}

// toInt converts a coordinate for integer layouts. Fractional values are
// rejected rather than truncated.
func toInt(v float64) (int, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%g is not an integer", v)
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%g is out of range", v)
	}
	return int(v), nil
}

func toFloat(v float64) (float64, error) { return v, nil }

// convertRect turns r into a rectangle over S. The conversion to S happens
// before x+w is computed, so integer layouts do integer arithmetic.
func convertRect[S nines.Scalar](r xywh, conv func(float64) (S, error)) (nines.Rect[S], error) {
	var v [4]S
	for i, f := range r {
		s, err := conv(f)
		if err != nil {
			return nines.Rect[S]{}, err
		}
		v[i] = s
	}
	return nines.XYWH(v[0], v[1], v[2], v[3]), nil
}

func convertDims[S nines.Scalar](d dimsSpec, conv func(float64) (S, error)) (nines.Dimensions[S], error) {
	outer, err := convertRect(d.Outer, conv)
	if err != nil {
		return nines.Dimensions[S]{}, fmt.Errorf("outer: %w", err)
	}
	inner, err := convertRect(d.Inner, conv)
	if err != nil {
		return nines.Dimensions[S]{}, fmt.Errorf("inner: %w", err)
	}
	return nines.Dimensions[S]{Outer: outer, Inner: inner}, nil
}

// buildLayout converts the file into an unvalidated layout over S.
func buildLayout[S nines.Scalar](f *layoutFile, conv func(float64) (S, error)) (nines.Layout[S], error) {
	src, err := convertDims(f.Src, conv)
	if err != nil {
		return nines.Layout[S]{}, fmt.Errorf("src: %w", err)
	}
	dst, err := convertDims(f.Dst, conv)
	if err != nil {
		return nines.Layout[S]{}, fmt.Errorf("dst: %w", err)
	}
	return nines.Layout[S]{
		Src:   src,
		Dst:   dst,
		Style: f.Style.Style,
	}, nil
}
