package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"honnef.co/go/nines"
)

type resizeOpts struct {
	outer  string // new outer rectangle of dst as x,y,w,h
	inner  string // new inner rectangle of dst as x,y,w,h
	format string // "text" or "toml"
}

func newResizeCmd() *cobra.Command {
	opts := resizeOpts{format: "text"}

	cmd := &cobra.Command{
		Use:   "resize [file]",
		Short: "Resize the destination of a layout, keeping its borders",
		Long: `Resize the destination dimensions of a layout file. With --outer the inner rectangle follows, which fails if the borders no longer fit. With --inner the outer rectangle grows around it.

With --format toml the updated layout file is written to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != "text" && opts.format != "toml" {
				return fmt.Errorf("unknown format %q, want text or toml", opts.format)
			}
			f, err := loadLayoutFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if f.Scalar == scalarFloat {
				return runResize(cmd.OutOrStdout(), f, &opts, toFloat)
			}
			return runResize(cmd.OutOrStdout(), f, &opts, toInt)
		},
	}

	cmd.Flags().StringVar(&opts.outer, "outer", "", "new outer rectangle of dst as x,y,w,h")
	cmd.Flags().StringVar(&opts.inner, "inner", "", "new inner rectangle of dst as x,y,w,h")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, toml")
	cmd.MarkFlagsMutuallyExclusive("outer", "inner")
	cmd.MarkFlagsOneRequired("outer", "inner")

	return cmd
}

// parseXYWH parses "x,y,w,h".
func parseXYWH(s string) (xywh, error) {
	var r xywh
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return r, fmt.Errorf("%q: want x,y,w,h", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return r, fmt.Errorf("%q: %w", s, err)
		}
		r[i] = v
	}
	return r, nil
}

func runResize[S nines.Scalar](w io.Writer, f *layoutFile, opts *resizeOpts, conv func(float64) (S, error)) error {
	dst, err := convertDims(f.Dst, conv)
	if err != nil {
		return fmt.Errorf("dst: %w", err)
	}
	vd, err := dst.Validate()
	if err != nil {
		return fmt.Errorf("dst: %w", err)
	}

	var resized nines.ValidDimensions[S]
	if opts.outer != "" {
		r, err := parseXYWH(opts.outer)
		if err != nil {
			return err
		}
		outer, err := convertRect(r, conv)
		if err != nil {
			return err
		}
		resized, err = vd.WithOuter(outer)
		if err != nil {
			return err
		}
	} else {
		r, err := parseXYWH(opts.inner)
		if err != nil {
			return err
		}
		inner, err := convertRect(r, conv)
		if err != nil {
			return err
		}
		vi, err := inner.Validate()
		if err != nil {
			return fmt.Errorf("inner: %w", err)
		}
		resized = vd.WithInner(vi)
	}

	if opts.format == "toml" {
		return encodeLayoutFile(w, f, resized)
	}
	printSuccess(w, "resized dst")
	printDetail(w, "dst", resized)
	printDetail(w, "center", resized.CenterSize())
	printDetail(w, "borders", resized.Borders())
	return nil
}

type fileOut struct {
	Scalar string   `toml:"scalar"`
	Style  styleOut `toml:"style"`
	Src    dimsOut  `toml:"src"`
	Dst    dimsOut  `toml:"dst"`
}

type styleOut struct {
	Border map[string]nines.Scale `toml:"border"`
	Center map[string]nines.Scale `toml:"center"`
}

type dimsOut struct {
	Outer []any `toml:"outer"`
	Inner []any `toml:"inner"`
}

// tomlRect returns r as [x, y, w, h], keeping integers integral.
func tomlRect[S nines.Scalar](r nines.ValidRect[S]) []any {
	out := make([]any, 0, 4)
	for _, v := range []S{r.Left(), r.Top(), r.Width(), r.Height()} {
		if f := float64(v); f == float64(int64(f)) {
			out = append(out, int64(f))
		} else {
			out = append(out, f)
		}
	}
	return out
}

func tomlDims[S nines.Scalar](d nines.ValidDimensions[S]) dimsOut {
	return dimsOut{Outer: tomlRect(d.Outer()), Inner: tomlRect(d.Inner())}
}

// encodeLayoutFile writes f as TOML with its destination replaced by dst.
// The source is written as read.
func encodeLayoutFile[S nines.Scalar](w io.Writer, f *layoutFile, dst nines.ValidDimensions[S]) error {
	src := dimsOut{
		Outer: []any{f.Src.Outer[0], f.Src.Outer[1], f.Src.Outer[2], f.Src.Outer[3]},
		Inner: []any{f.Src.Inner[0], f.Src.Inner[1], f.Src.Inner[2], f.Src.Inner[3]},
	}
	if f.Scalar == scalarInt {
		for i := range 4 {
			src.Outer[i] = int64(f.Src.Outer[i])
			src.Inner[i] = int64(f.Src.Inner[i])
		}
	}
	st := f.Style.Style
	out := fileOut{
		Scalar: f.Scalar,
		Style: styleOut{
			Border: map[string]nines.Scale{
				"left":   st.Border.Left,
				"right":  st.Border.Right,
				"top":    st.Border.Top,
				"bottom": st.Border.Bottom,
			},
			Center: map[string]nines.Scale{
				"horizontal": st.Center.Horizontal,
				"vertical":   st.Center.Vertical,
			},
		},
		Src: src,
		Dst: tomlDims(dst),
	}
	return toml.NewEncoder(w).Encode(out)
}
