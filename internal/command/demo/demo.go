// Package demo implements the demo command.
package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"

	"github.com/superfly/vislog"
	"github.com/superfly/vislog/internal/command"
	"github.com/superfly/vislog/internal/config"
)

var jobColors = []string{"cyan", "magenta", "yellow", "green", "blue"}

// New initializes and returns a new demo Command.
func New() *cobra.Command {
	const (
		short = "Render fake jobs as live items"
		long  = `Runs a number of fake jobs concurrently. Each job is an item with a
spinner that is updated as the job makes progress, while log lines are
written above the live block. The final state of every job stays on
screen once all of them are done.`
	)

	cmd := command.New("demo", short, long, run)
	command.KeepItems(cmd)
	return cmd
}

func run(ctx context.Context) error {
	var (
		cfg = config.FromContext(ctx)
		log = vislog.FromContext(ctx)
	)

	log.Infof("running %d jobs with %d steps each", cfg.Jobs, cfg.Steps)

	p := pool.New().WithErrors().WithMaxGoroutines(cfg.Jobs).WithContext(ctx)
	for i := 0; i < cfg.Jobs; i++ {
		i := i
		p.Go(func(ctx context.Context) error {
			return runJob(ctx, log, i, cfg.Steps, cfg.StepDelay)
		})
	}

	if err := p.Wait(); err != nil {
		return err
	}

	log.FYI("all jobs finished")
	return nil
}

func runJob(ctx context.Context, log *vislog.Logger, n, steps int, delay time.Duration) error {
	name := fmt.Sprintf("job-%02d", n+1)
	log.AddItem(vislog.ItemOptions{
		Name:    name,
		Color:   jobColors[n%len(jobColors)],
		Spinner: vislog.DefaultSpinner,
	})

	// stagger the jobs so their updates interleave
	delay += time.Duration(n*37%120) * time.Millisecond

	for step := 1; step <= steps; step++ {
		select {
		case <-ctx.Done():
			log.SetItemSpinner(name, nil).UpdateItem(name, "cancelled")
			return ctx.Err()
		case <-time.After(delay):
		}

		log.UpdateItem(name, fmt.Sprintf("step %d/%d", step, steps))
		if step == steps/2 {
			log.Logr().WithName(name).V(1).Info("halfway", "step", step)
		}
	}

	log.SetItemSpinner(name, nil).UpdateItem(name, "done")
	log.Infof("%s finished", name)
	return nil
}
