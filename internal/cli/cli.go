// Package cli implements the nines command-line interface.
//
// The command reads layout descriptions from TOML files and reports the
// nine-slice geometry computed by package nines.
//
// # Commands
//
//   - layout: compute the destination and source rectangle of every slice
//   - validate: check a layout file and report its borders
//   - resize: resize the destination of a layout, keeping its borders
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"honnef.co/go/nines/internal/buildinfo"
)

const appName = "nines"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The --verbose flag lowers the log level to debug.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           appName,
		Short:         "nines computes nine-slice layouts",
		Long:          `nines computes nine-slice (border image) layouts: which part of a source image ends up where in a destination rectangle, without distorting the corners.`,
		Version:       buildinfo.Read().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	root.AddCommand(newLayoutCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newResizeCmd())
	root.AddCommand(newVersionCmd())

	return root
}
