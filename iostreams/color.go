package iostreams

import (
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mgutz/ansi"
	"github.com/muesli/termenv"
)

var (
	white   = ansi.ColorFunc("white")
	black   = ansi.ColorFunc("black")
	magenta = ansi.ColorFunc("magenta")
	cyan    = ansi.ColorFunc("cyan")
	red     = ansi.ColorFunc("red")
	yellow  = ansi.ColorFunc("yellow")
	blue    = ansi.ColorFunc("blue")
	green   = ansi.ColorFunc("green")
	gray    = ansi.ColorFunc("black+h")
	bold    = ansi.ColorFunc("default+b")

	gray256 = ansi.ColorFunc("242")
)

func EnvColorDisabled() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("CLICOLOR") == "0"
}

func EnvColorForced() bool {
	return os.Getenv("CLICOLOR_FORCE") != "" && os.Getenv("CLICOLOR_FORCE") != "0"
}

// DetectColorProfile reports whether f supports color at all and whether it
// supports the 256 color palette.
func DetectColorProfile(f *os.File) (enabled, is256enabled bool) {
	if EnvColorDisabled() {
		return false, false
	}

	profile := termenv.NewOutput(f).EnvColorProfile()
	if EnvColorForced() && profile == termenv.Ascii {
		profile = termenv.ANSI
	}

	return profile != termenv.Ascii, profile == termenv.ANSI256 || profile == termenv.TrueColor
}

func NewColorScheme(enabled, is256enabled bool) *ColorScheme {
	return &ColorScheme{
		enabled:      enabled,
		is256enabled: is256enabled,
	}
}

// ColorScheme maps color names onto ANSI styled strings. It is safe for
// concurrent use.
type ColorScheme struct {
	mu           sync.RWMutex
	enabled      bool
	is256enabled bool
}

func (c *ColorScheme) Enabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.enabled
}

func (c *ColorScheme) SetEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled = enabled
}

// StylingActive reports whether Colorize currently emits escape sequences.
// It follows both the scheme and the process-wide color.NoColor switch, so
// callers caching styled strings should poll it.
func (c *ColorScheme) StylingActive() bool {
	return c.Enabled() && !color.NoColor
}

func (c *ColorScheme) style(fn func(string) string, t string) string {
	if !c.StylingActive() {
		return t
	}
	return fn(t)
}

func (c *ColorScheme) Bold(t string) string {
	return c.style(bold, t)
}

func (c *ColorScheme) White(t string) string {
	return c.style(white, t)
}

func (c *ColorScheme) Black(t string) string {
	return c.style(black, t)
}

func (c *ColorScheme) Red(t string) string {
	return c.style(red, t)
}

func (c *ColorScheme) Yellow(t string) string {
	return c.style(yellow, t)
}

func (c *ColorScheme) Green(t string) string {
	return c.style(green, t)
}

func (c *ColorScheme) Gray(t string) string {
	c.mu.RLock()
	is256 := c.is256enabled
	c.mu.RUnlock()

	if is256 {
		return c.style(gray256, t)
	}
	return c.style(gray, t)
}

func (c *ColorScheme) Magenta(t string) string {
	return c.style(magenta, t)
}

func (c *ColorScheme) Cyan(t string) string {
	return c.style(cyan, t)
}

func (c *ColorScheme) Blue(t string) string {
	return c.style(blue, t)
}

func (c *ColorScheme) SuccessIcon() string {
	return c.Green("✓")
}

func (c *ColorScheme) WarningIcon() string {
	return c.Yellow("!")
}

func (c *ColorScheme) FailureIcon() string {
	return c.Red("X")
}

// ColorFromString returns the styling func for a color name. Unknown names
// leave the text untouched.
func (c *ColorScheme) ColorFromString(s string) func(string) string {
	s = strings.ToLower(s)
	var fn func(string) string
	switch s {
	case "bold":
		fn = c.Bold
	case "white":
		fn = c.White
	case "black":
		fn = c.Black
	case "red":
		fn = c.Red
	case "yellow":
		fn = c.Yellow
	case "green":
		fn = c.Green
	case "gray", "grey":
		fn = c.Gray
	case "magenta":
		fn = c.Magenta
	case "cyan":
		fn = c.Cyan
	case "blue":
		fn = c.Blue
	default:
		fn = func(s string) string {
			return s
		}
	}

	return fn
}

// Colorize styles text with the named color.
func (c *ColorScheme) Colorize(colorName, text string) string {
	return c.ColorFromString(colorName)(text)
}
