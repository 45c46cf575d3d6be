package cli

import (
	"errors"
	"io"

	"github.com/spf13/cobra"

	"honnef.co/go/nines"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Check a layout file",
		Long:  `Check that both dimensions of a layout file are properly nested and that its style can be laid out.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadLayoutFile(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if f.Scalar == scalarFloat {
				return reportValidation(w, f, toFloat)
			}
			return reportValidation(w, f, toInt)
		},
	}
}

func reportValidation[S nines.Scalar](w io.Writer, f *layoutFile, conv func(float64) (S, error)) error {
	vl, err := validLayout(f, conv)
	if err != nil {
		printError(w, "%v", err)
		return err
	}
	if err := vl.Style.Supported(); err != nil {
		printError(w, "%v", err)
		if errors.Is(err, nines.ErrUnsupportedScale) {
			return errors.New("style cannot be laid out")
		}
		return err
	}

	printSuccess(w, "layout is valid")
	printDetail(w, "dst", vl.Dst)
	printDetail(w, "dst borders", vl.Dst.Borders())
	printDetail(w, "src", vl.Src)
	printDetail(w, "src borders", vl.Src.Borders())
	return nil
}
