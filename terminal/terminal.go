package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/morikuni/aec"
)

// Block draws a multi-line region that can be overwritten in place. Each
// WriteBlock erases whatever the previous call drew before drawing again,
// taking lines wrapped by the terminal into account.
type Block struct {
	w       *LineCounter
	width   func() int
	hidden  bool
	prevOut uint
}

// NewBlock returns a Block writing to w. width reports the current terminal
// width in columns; it is consulted on every draw.
func NewBlock(w io.Writer, width func() int) *Block {
	return &Block{
		w:     &LineCounter{W: w},
		width: width,
	}
}

func (b *Block) WriteBlock(text string) {
	if !b.hidden {
		fmt.Fprint(b.w, aec.Hide)
		b.hidden = true
	}

	erase := eraseLines(b.prevOut)
	b.w.Reset()
	b.w.Width = b.width()
	fmt.Fprint(b.w, erase, text, "\n")
	// the cursor sits on the empty row below the block
	b.prevOut = b.w.LinesWritten() + 1
}

func (b *Block) ClearBlock() {
	fmt.Fprint(b.w, eraseLines(b.prevOut))
	b.prevOut = 0
	if b.hidden {
		fmt.Fprint(b.w, aec.Show)
		b.hidden = false
	}
}

// Rows reports how many terminal rows the block currently occupies,
// including the cursor row below it.
func (b *Block) Rows() uint {
	return b.prevOut
}

func eraseLines(n uint) string {
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	for i := uint(0); i < n; i++ {
		sb.WriteString(aec.EraseLine(aec.EraseModes.All).String())
		if i < n-1 {
			sb.WriteString(aec.Up(1).String())
		}
	}
	sb.WriteString(aec.Column(0).String())
	return sb.String()
}
