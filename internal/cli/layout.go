package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/nines"
)

type layoutOpts struct {
	format string // output format: table, json or svg
	style  string // scale name overriding the file's style
	output string // output file, stdout if empty
}

func newLayoutCmd() *cobra.Command {
	opts := layoutOpts{format: formatTable}

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Compute the slices of a layout",
		Long:  `Compute the destination and source rectangle of each of the nine slices of a layout file. Use - to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			f, err := loadLayoutFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if opts.style != "" {
				sc, err := nines.ParseScale(opts.style)
				if err != nil {
					return err
				}
				f.Style.Style = nines.NewStyle(sc)
			}

			// The output file is only created once rendering succeeded.
			var buf bytes.Buffer
			if err := runLayout(cmd.Context(), f, opts.format, &buf); err != nil {
				return err
			}
			if opts.output == "" {
				_, err := buf.WriteTo(cmd.OutOrStdout())
				return err
			}
			if err := writeOutput(opts.output, buf.Bytes()); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Info("wrote layout", "path", opts.output, "format", opts.format)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: table, json, svg")
	cmd.Flags().StringVar(&opts.style, "style", "", "scale for all slices, overriding the file: stretch, repeat, round, space")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// writeOutput writes data to path, reporting errors from closing the file.
func writeOutput(path string, data []byte) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = out.Write(data)
	return err
}

func runLayout(ctx context.Context, f *layoutFile, format string, w io.Writer) error {
	if f.Scalar == scalarFloat {
		return emitLayout(ctx, f, toFloat, format, w)
	}
	return emitLayout(ctx, f, toInt, format, w)
}

func emitLayout[S nines.Scalar](ctx context.Context, f *layoutFile, conv func(float64) (S, error), format string, w io.Writer) error {
	logger := loggerFromContext(ctx)
	p := newProgress(logger)

	vl, err := validLayout(f, conv)
	if err != nil {
		return err
	}
	logger.Debug("validated layout", "dst", vl.Dst, "src", vl.Src, "scalar", f.Scalar)

	cells, err := vl.Cells()
	if err != nil {
		return err
	}
	p.done("computed slices", "count", len(cells))

	return writeCells(w, format, vl, cells)
}

func validLayout[S nines.Scalar](f *layoutFile, conv func(float64) (S, error)) (nines.ValidLayout[S], error) {
	l, err := buildLayout(f, conv)
	if err != nil {
		return nines.ValidLayout[S]{}, err
	}
	vl, err := l.Validate()
	if err != nil {
		return nines.ValidLayout[S]{}, fmt.Errorf("invalid layout: %w", err)
	}
	return vl, nil
}
