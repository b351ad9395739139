package vislog

import (
	"github.com/pkg/errors"

	"github.com/superfly/vislog/iostreams"
)

const (
	defaultMaxDots       = 80
	defaultUpdatesPerDot = 5
	defaultRenderFPS     = 30
	defaultPrefix        = "> "
)

// ErrInvalidRenderFPS is returned by New when the redraw rate is outside
// [1, 1000).
var ErrInvalidRenderFPS = errors.New("render fps must be >= 1 and < 1000")

type config struct {
	output        Output
	colorizer     Colorizer
	color         bool
	maxDots       int
	updatesPerDot int
	renderFPS     int
	saveLogs      bool
	level         Level
	itemMode      ItemMode
	clock         clock
}

// Option configures a Logger at construction.
type Option func(*config)

// WithOutput sets the sink. The default renders to the process stdout.
func WithOutput(o Output) Option {
	return func(c *config) {
		c.output = o
	}
}

// WithColorizer sets the styling implementation. The default is the color
// scheme of the standard streams.
func WithColorizer(cz Colorizer) Option {
	return func(c *config) {
		c.colorizer = cz
	}
}

// WithColor toggles colorized prefixes and item labels. Default true.
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.color = enabled
	}
}

// WithMaxDots sets how many dots are written before wrapping. Values below
// one keep the default of 80.
func WithMaxDots(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxDots = n
		}
	}
}

// WithUpdatesPerDot sets how many item updates produce one dot. Values below
// one keep the default of 5.
func WithUpdatesPerDot(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.updatesPerDot = n
		}
	}
}

// WithRenderFPS sets the maximum live block redraw rate. New fails unless
// 1 <= fps < 1000.
func WithRenderFPS(fps int) Option {
	return func(c *config) {
		c.renderFPS = fps
	}
}

// WithSaveLogs toggles recording into LogData. Default true.
func WithSaveLogs(enabled bool) Option {
	return func(c *config) {
		c.saveLogs = enabled
	}
}

// WithLevel sets the initial threshold. Default info.
func WithLevel(l Level) Option {
	return func(c *config) {
		c.level = l
	}
}

// WithItemMode sets the initial item display mode. Default ItemModeLive,
// which degrades to dots on a non-interactive output.
func WithItemMode(m ItemMode) Option {
	return func(c *config) {
		c.itemMode = m
	}
}

func withClock(cl clock) Option {
	return func(c *config) {
		c.clock = cl
	}
}

func newConfig(opts []Option) (*config, error) {
	c := &config{
		color:         true,
		maxDots:       defaultMaxDots,
		updatesPerDot: defaultUpdatesPerDot,
		renderFPS:     defaultRenderFPS,
		saveLogs:      true,
		level:         LevelInfo,
		itemMode:      ItemModeLive,
		clock:         realClock{},
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.renderFPS < 1 || c.renderFPS >= 1000 {
		return nil, errors.Wrapf(ErrInvalidRenderFPS, "got %d", c.renderFPS)
	}

	if c.output == nil || c.colorizer == nil {
		io := iostreams.System()
		if c.output == nil {
			c.output = NewOutput(io)
		}
		if c.colorizer == nil {
			c.colorizer = io.ColorScheme()
		}
	}
	return c, nil
}
