package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/superfly/vislog"
	"github.com/superfly/vislog/internal/flyerr"
)

const (
	envPrefix = "VISLOG"

	// Keys double as flag names.
	LevelKey         = "level"
	ItemsKey         = "items"
	RenderFPSKey     = "render-fps"
	NoColorKey       = "no-color"
	MaxDotsKey       = "max-dots"
	UpdatesPerDotKey = "updates-per-dot"
	JobsKey          = "jobs"
	StepsKey         = "steps"
	StepDelayKey     = "step-delay"
	FileKey          = "config"
)

// Config holds the settings the commands render with.
type Config struct {
	Level         vislog.Level
	ItemMode      vislog.ItemMode
	RenderFPS     int
	NoColor       bool
	MaxDots       int
	UpdatesPerDot int

	// Jobs is the number of fake jobs the demo commands run.
	Jobs int
	// Steps is the number of updates each job goes through.
	Steps     int
	StepDelay time.Duration
}

// NewViper returns a viper instance reading VISLOG_* environment variables,
// with dashes in keys mapped to underscores.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(ItemsKey, vislog.ItemModeLive.String())
	v.SetDefault(RenderFPSKey, 30)
	v.SetDefault(MaxDotsKey, 80)
	v.SetDefault(UpdatesPerDotKey, 5)
	v.SetDefault(JobsKey, 4)
	v.SetDefault(StepsKey, 12)
	v.SetDefault(StepDelayKey, 150*time.Millisecond)
	return v
}

// Load resolves a Config from v. Flags in fs take precedence over the
// environment, which takes precedence over the optional config file.
func Load(v *viper.Viper, fs *pflag.FlagSet) (*Config, error) {
	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, errors.Wrap(err, "failed binding flags")
		}
	}

	if path := v.GetString(FileKey); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed reading config file %s", path)
		}
	}

	cfg := &Config{
		Level:         vislog.LevelFromEnv(),
		ItemMode:      vislog.ParseItemMode(v.GetString(ItemsKey)),
		RenderFPS:     v.GetInt(RenderFPSKey),
		NoColor:       v.GetBool(NoColorKey),
		MaxDots:       v.GetInt(MaxDotsKey),
		UpdatesPerDot: v.GetInt(UpdatesPerDotKey),
		Jobs:          v.GetInt(JobsKey),
		Steps:         v.GetInt(StepsKey),
		StepDelay:     v.GetDuration(StepDelayKey),
	}

	if name := v.GetString(LevelKey); name != "" {
		level, ok := vislog.ParseLevel(name)
		if !ok {
			return nil, flyerr.WithSuggestion(
				fmt.Errorf("unknown log level %q", name),
				"Valid levels are debug, verbose, info, warn, error, fyi and none.",
			)
		}
		cfg.Level = level
	}

	if cfg.Jobs < 1 {
		return nil, fmt.Errorf("--%s must be at least 1, got %d", JobsKey, cfg.Jobs)
	}
	if cfg.Steps < 1 {
		return nil, fmt.Errorf("--%s must be at least 1, got %d", StepsKey, cfg.Steps)
	}

	return cfg, nil
}

// Options translates cfg into Logger options.
func (cfg *Config) Options() []vislog.Option {
	return []vislog.Option{
		vislog.WithLevel(cfg.Level),
		vislog.WithItemMode(cfg.ItemMode),
		vislog.WithRenderFPS(cfg.RenderFPS),
		vislog.WithColor(!cfg.NoColor),
		vislog.WithMaxDots(cfg.MaxDots),
		vislog.WithUpdatesPerDot(cfg.UpdatesPerDot),
	}
}
