package terminal

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineCounter(t *testing.T) {
	w := LineCounter{W: &bytes.Buffer{}}
	fmt.Fprint(&w, "Hello\nWorld\n")
	assert.Equal(t, uint(2), w.LinesWritten())
	w.Reset()
	assert.Equal(t, uint(0), w.LinesWritten())
}

func TestLineCounterWraps(t *testing.T) {
	w := LineCounter{W: &bytes.Buffer{}, Width: 4}

	fmt.Fprint(&w, "abcd\n")
	assert.Equal(t, uint(1), w.LinesWritten())

	fmt.Fprint(&w, "abcdefghi\n")
	assert.Equal(t, uint(4), w.LinesWritten())
}

func TestLineCounterIgnoresEscapes(t *testing.T) {
	w := LineCounter{W: &bytes.Buffer{}, Width: 4}

	fmt.Fprint(&w, "\x1b[31mabcd\x1b[0m\n")
	assert.Equal(t, uint(1), w.LinesWritten())
}

func TestLineCounterWideRunes(t *testing.T) {
	w := LineCounter{W: &bytes.Buffer{}, Width: 4}

	// each glyph takes two columns
	fmt.Fprint(&w, "日本語\n")
	assert.Equal(t, uint(2), w.LinesWritten())
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "hello", StripANSI("\x1b[1;33mhello\x1b[0m"))
	assert.Equal(t, "x", StripANSI("\x1b[?25lx"))
}
