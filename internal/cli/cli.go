// Package cli implements the command line interface.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/superfly/vislog/internal/command/root"
	"github.com/superfly/vislog/internal/flyerr"
	"github.com/superfly/vislog/iostreams"
)

// Run runs the command line interface with the given arguments and reports the
// exit code the application should exit with.
func Run(ctx context.Context, io *iostreams.IOStreams, args ...string) int {
	ctx = iostreams.NewContext(ctx, io)

	cmd := root.New()
	cmd.SetOut(io.Out)
	cmd.SetErr(io.ErrOut)
	cmd.SetArgs(args)

	switch _, err := cmd.ExecuteContextC(ctx); {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 127
	case errors.Is(err, context.DeadlineExceeded):
		flyerr.PrintCLIOutput(io.ErrOut, err, io.ColorEnabled())

		return 126
	default:
		flyerr.PrintCLIOutput(io.ErrOut, err, io.ColorEnabled())

		return 1
	}
}

// NewRootCommand returns the root command, for documentation generators.
func NewRootCommand() *cobra.Command {
	return root.New()
}
