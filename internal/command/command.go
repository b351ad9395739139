// Package command implements helpers useful for when building cobra commands.
package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/superfly/vislog"
	"github.com/superfly/vislog/internal/config"
	"github.com/superfly/vislog/iostreams"
)

// Runner is the function a Command runs once its context is prepared.
type Runner func(context.Context) error

// New initializes and returns a reference to a new Command. Before fn runs,
// the context is loaded with the resolved Config and a Logger built from it.
func New(usage, short, long string, fn Runner) *cobra.Command {
	cmd := &cobra.Command{
		Use:   usage,
		Short: short,
		Long:  long,
	}

	if fn != nil {
		cmd.RunE = func(cmd *cobra.Command, _ []string) error {
			ctx, log, err := prepare(cmd)
			if err != nil {
				return err
			}
			defer log.Shutdown(keepsItems(cmd))

			return fn(ctx)
		}
	}

	return cmd
}

func prepare(cmd *cobra.Command) (context.Context, *vislog.Logger, error) {
	ctx := cmd.Context()
	io := iostreams.FromContext(ctx)

	cfg, err := config.Load(config.NewViper(), cmd.Flags())
	if err != nil {
		return nil, nil, err
	}
	if cfg.NoColor {
		io.ColorScheme().SetEnabled(false)
	}

	opts := append(cfg.Options(),
		vislog.WithOutput(vislog.NewOutput(io)),
		vislog.WithColorizer(io.ColorScheme()),
	)
	log, err := vislog.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	ctx = NewContext(ctx, cmd)
	ctx = config.NewContext(ctx, cfg)
	ctx = vislog.NewContext(ctx, log)
	return ctx, log, nil
}
