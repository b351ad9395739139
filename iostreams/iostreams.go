package iostreams

import (
	"bytes"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/superfly/vislog/internal/env"
)

const defaultTerminalWidth = 80

// IOStreams bundles the output streams a logger renders into, together with
// what is known about the terminal behind them.
type IOStreams struct {
	Out    io.Writer
	ErrOut io.Writer

	outFile     *os.File
	colorScheme *ColorScheme

	stdoutTTYOverride bool
	stdoutIsTTY       bool
	neverInteractive  bool
}

// System returns IOStreams bound to the process standard streams.
func System() *IOStreams {
	enabled, is256 := DetectColorProfile(os.Stdout)

	return &IOStreams{
		Out:              colorable.NewColorable(os.Stdout),
		ErrOut:           colorable.NewColorable(os.Stderr),
		outFile:          os.Stdout,
		colorScheme:      NewColorScheme(enabled, is256),
		neverInteractive: env.IsCI(),
	}
}

// Test returns IOStreams writing into in-memory buffers. The streams report
// themselves as non-interactive and colorless until told otherwise.
func Test() (*IOStreams, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	io := &IOStreams{
		Out:               out,
		ErrOut:            errOut,
		colorScheme:       NewColorScheme(false, false),
		stdoutTTYOverride: true,
	}
	return io, out, errOut
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || IsCygwinTerminal(f)
}

func IsCygwinTerminal(f *os.File) bool {
	return isatty.IsCygwinTerminal(f.Fd())
}

func (s *IOStreams) SetStdoutTTY(isTTY bool) {
	s.stdoutTTYOverride = true
	s.stdoutIsTTY = isTTY
}

func (s *IOStreams) IsStdoutTTY() bool {
	if s.stdoutTTYOverride {
		return s.stdoutIsTTY
	}
	if s.outFile == nil {
		return false
	}
	return IsTerminal(s.outFile)
}

// IsInteractive reports whether Out can be redrawn in place. CI runners
// sometimes allocate a pty, but their logs are read after the fact.
func (s *IOStreams) IsInteractive() bool {
	return !s.neverInteractive && s.IsStdoutTTY()
}

func (s *IOStreams) ColorScheme() *ColorScheme {
	return s.colorScheme
}

func (s *IOStreams) ColorEnabled() bool {
	return s.colorScheme.Enabled()
}

// TerminalWidth returns the column count of the terminal behind Out, or 80
// when Out is not a terminal.
func (s *IOStreams) TerminalWidth() int {
	if s.outFile == nil {
		return defaultTerminalWidth
	}
	width, _, err := term.GetSize(int(s.outFile.Fd()))
	if err != nil || width <= 0 {
		return defaultTerminalWidth
	}
	return width
}
