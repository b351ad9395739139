// Package root implements the root command.
package root

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/superfly/vislog/internal/command"
	"github.com/superfly/vislog/internal/command/demo"
	"github.com/superfly/vislog/internal/command/jobs"
	"github.com/superfly/vislog/internal/config"
)

// New initializes and returns a reference to a new root command.
func New() *cobra.Command {
	const (
		long = `vislog renders leveled log lines together with a live block of
status items below them.

* Watch items spin and update with the demo command
* Follow numbered job lines with the jobs command

Every flag may also be set through a VISLOG_ environment variable, for
example VISLOG_RENDER_FPS=60, or through the file named by --config.`
		short = "Terminal status and log renderer"
	)

	root := command.New("vislog", short, long, nil)
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
	}

	fs := root.PersistentFlags()
	_ = fs.String(config.LevelKey, "", "Log level: debug, verbose, info, warn, error, fyi or none")
	_ = fs.String(config.ItemsKey, "normal", "How items are shown: normal, simple or none")
	_ = fs.Int(config.RenderFPSKey, 30, "Maximum redraws per second of the live block")
	_ = fs.Bool(config.NoColorKey, false, "Disable colors")
	_ = fs.Int(config.MaxDotsKey, 80, "Dots per row in simple mode")
	_ = fs.Int(config.UpdatesPerDotKey, 5, "Item updates per dot in simple mode")
	_ = fs.IntP(config.JobsKey, "j", 4, "Number of fake jobs to run")
	_ = fs.Int(config.StepsKey, 12, "Updates per fake job")
	_ = fs.Duration(config.StepDelayKey, 150*time.Millisecond, "Delay between updates of a fake job")
	_ = fs.String(config.FileKey, "", "Path to a config file")

	root.AddCommand(
		demo.New(),
		jobs.New(),
	)

	return root
}
