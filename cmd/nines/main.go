// Command nines computes nine-slice layouts from TOML layout files.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"honnef.co/go/nines/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()

	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		os.Exit(130)
	default:
		fmt.Fprintln(os.Stderr, "nines:", err)
		os.Exit(1)
	}
}
