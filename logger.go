package vislog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Logger writes leveled log lines and maintains the live item block. All
// methods are safe for concurrent use and, except for the accessors, return
// the Logger so calls can be chained.
type Logger struct {
	mu sync.Mutex

	output    Output
	colorizer Colorizer
	clock     clock

	level    Level
	saveLogs bool
	history  []string

	color          bool
	stylingActive  bool
	defaultPrefix  string
	levelPrefixes  map[Level]string
	prefixOverride *string

	itemMode   ItemMode
	frozen     bool
	frozenMode ItemMode
	closed     bool

	items  []*item
	byName map[string]*item
	lines  []string

	renderInterval time.Duration
	renderTask     *task
	spinTask       *task

	maxDots       int
	updatesPerDot int
	dots          int
	dotUpdates    int
}

// New builds a Logger. It fails only when the render rate is out of range.
func New(opts ...Option) (*Logger, error) {
	c, err := newConfig(opts)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		output:         c.output,
		colorizer:      c.colorizer,
		clock:          c.clock,
		level:          c.level,
		saveLogs:       c.saveLogs,
		color:          c.color,
		byName:         map[string]*item{},
		renderInterval: renderInterval(c.renderFPS),
		maxDots:        c.maxDots,
		updatesPerDot:  c.updatesPerDot,
	}
	l.buildPrefixes(defaultPrefix)
	l.setItemMode(c.itemMode)

	return l, nil
}

// MustNew is like New but panics on invalid configuration.
func MustNew(opts ...Option) *Logger {
	l, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// LogData returns a copy of every line recorded so far.
func (l *Logger) LogData() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]string(nil), l.history...)
}

func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

func (l *Logger) SetLevel(level Level) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	return l
}

func (l *Logger) Color() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.color
}

// SetColor toggles colorized prefixes and labels of items added from now on.
func (l *Logger) SetColor(enabled bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.color = enabled
	l.buildPrefixes(l.defaultPrefix)
	return l
}

// SetPrefix replaces the default "> " prefix of every level.
func (l *Logger) SetPrefix(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buildPrefixes(prefix)
	return l
}

// Prefix overrides the prefix of the next log call only. An empty prefix
// drops it for that call.
func (l *Logger) Prefix(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prefixOverride = &prefix
	return l
}

func (l *Logger) buildPrefixes(prefix string) {
	l.defaultPrefix = prefix
	l.stylingActive = l.colorizer.StylingActive()
	l.levelPrefixes = make(map[Level]string, len(levels))

	for _, level := range levels {
		color := levelColors[level]
		if color != "" && l.color && l.stylingActive {
			l.levelPrefixes[level] = l.colorizer.Colorize(color, prefix)
		} else {
			l.levelPrefixes[level] = prefix
		}
	}
}

func (l *Logger) colorize(color, s string) string {
	if !l.color {
		return s
	}
	return l.colorizer.Colorize(color, s)
}

func (l *Logger) Debug(args ...any) *Logger   { return l.Print(LevelDebug, args...) }
func (l *Logger) Verbose(args ...any) *Logger { return l.Print(LevelVerbose, args...) }
func (l *Logger) Info(args ...any) *Logger    { return l.Print(LevelInfo, args...) }
func (l *Logger) Log(args ...any) *Logger     { return l.Print(LevelInfo, args...) }
func (l *Logger) Warn(args ...any) *Logger    { return l.Print(LevelWarn, args...) }
func (l *Logger) Error(args ...any) *Logger   { return l.Print(LevelError, args...) }
func (l *Logger) FYI(args ...any) *Logger     { return l.Print(LevelFYI, args...) }

func (l *Logger) Debugf(format string, args ...any) *Logger {
	return l.Printf(LevelDebug, format, args...)
}

func (l *Logger) Verbosef(format string, args ...any) *Logger {
	return l.Printf(LevelVerbose, format, args...)
}

func (l *Logger) Infof(format string, args ...any) *Logger {
	return l.Printf(LevelInfo, format, args...)
}

func (l *Logger) Logf(format string, args ...any) *Logger {
	return l.Printf(LevelInfo, format, args...)
}

func (l *Logger) Warnf(format string, args ...any) *Logger {
	return l.Printf(LevelWarn, format, args...)
}

func (l *Logger) Errorf(format string, args ...any) *Logger {
	return l.Printf(LevelError, format, args...)
}

func (l *Logger) FYIf(format string, args ...any) *Logger {
	return l.Printf(LevelFYI, format, args...)
}

// Print logs its operands separated by spaces.
func (l *Logger) Print(level Level, args ...any) *Logger {
	return l.log(level, strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

func (l *Logger) Printf(level Level, format string, args ...any) *Logger {
	return l.log(level, fmt.Sprintf(format, args...))
}

func (l *Logger) log(level Level, msg string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	line := l.nextPrefix(level) + msg
	l.save(line)

	if level >= l.level && level < LevelNone {
		l.clearItems()
		l.resetDots()
		l.output.Write(line + "\n")
		l.requestRender()
	}
	return l
}

func (l *Logger) nextPrefix(level Level) string {
	if l.prefixOverride != nil {
		prefix := *l.prefixOverride
		l.prefixOverride = nil
		return prefix
	}

	// styling may have been switched process-wide since the cache was built
	if l.stylingActive != l.colorizer.StylingActive() {
		l.buildPrefixes(l.defaultPrefix)
	}
	return l.levelPrefixes[level]
}

func (l *Logger) save(line string) {
	if l.saveLogs {
		l.history = append(l.history, line)
	}
}
