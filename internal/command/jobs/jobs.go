// Package jobs implements the jobs command.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/superfly/vislog/internal/command"
	"github.com/superfly/vislog/internal/config"
	"github.com/superfly/vislog/statuslogger"
)

// New initializes and returns a new jobs Command.
func New() *cobra.Command {
	const (
		short = "Run fake jobs as numbered status lines"
		long  = `Runs a number of fake jobs concurrently, each reporting on its own
numbered status line. A job can be made to fail with --fail, which
cancels the jobs still running.`
	)

	cmd := command.New("jobs", short, long, run)
	cmd.Flags().Int("fail", 0, "Number of the job that fails halfway; 0 for none")
	cmd.Flags().Bool("clear", false, "Remove the status lines once all jobs are done")
	return cmd
}

func run(ctx context.Context) error {
	var (
		cfg   = config.FromContext(ctx)
		flags = command.FromContext(ctx).Flags()
	)

	fail, err := flags.GetInt("fail")
	if err != nil {
		return err
	}
	clearAfter, err := flags.GetBool("clear")
	if err != nil {
		return err
	}

	jobs := make([]int, cfg.Jobs)
	for i := range jobs {
		jobs[i] = i + 1
	}

	return statuslogger.AsyncIterateWithErr(ctx, clearAfter, "Done", jobs, func(ctx context.Context, _ int, job int) error {
		for step := 1; step <= cfg.Steps; step++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cfg.StepDelay):
			}

			if job == fail && step > cfg.Steps/2 {
				return fmt.Errorf("job %d failed at step %d", job, step)
			}
			statuslogger.Logf(ctx, "Step %d of %d", step, cfg.Steps)
		}
		return nil
	})
}
