package vislog

import (
	"fmt"

	"github.com/superfly/vislog/iostreams"
	"github.com/superfly/vislog/terminal"
)

// Output is the sink a Logger renders into.
type Output interface {
	// IsInteractive reports whether blocks can be redrawn in place.
	IsInteractive() bool
	// Write emits raw text.
	Write(text string)
	// WriteBlock replaces the previously drawn block with text.
	WriteBlock(text string)
	// ClearBlock erases the previously drawn block without a trace.
	ClearBlock()
}

// Colorizer styles text by color name.
type Colorizer interface {
	Colorize(color, text string) string
	// StylingActive reports whether Colorize currently emits styles. The
	// logger rebuilds cached styled prefixes whenever this changes.
	StylingActive() bool
}

type streamOutput struct {
	io    *iostreams.IOStreams
	block *terminal.Block
}

// NewOutput returns an Output writing to io.Out, redrawing blocks with
// cursor movement when io is interactive.
func NewOutput(io *iostreams.IOStreams) Output {
	return &streamOutput{
		io:    io,
		block: terminal.NewBlock(io.Out, io.TerminalWidth),
	}
}

func (o *streamOutput) IsInteractive() bool {
	return o.io.IsInteractive()
}

func (o *streamOutput) Write(text string) {
	fmt.Fprint(o.io.Out, text)
}

func (o *streamOutput) WriteBlock(text string) {
	o.block.WriteBlock(text)
}

func (o *streamOutput) ClearBlock() {
	o.block.ClearBlock()
}
