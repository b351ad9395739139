package terminal

import (
	"io"
	"regexp"

	"github.com/mattn/go-runewidth"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)

// StripANSI removes CSI escape sequences from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// LineCounter counts the terminal rows written through it. With a positive
// Width, lines longer than Width count once per row they wrap onto.
type LineCounter struct {
	W     io.Writer
	Width int

	n   uint
	col int
}

func (l *LineCounter) Write(p []byte) (int, error) {
	l.count(StripANSI(string(p)))
	return l.W.Write(p)
}

func (l *LineCounter) count(s string) {
	for _, r := range s {
		if r == '\n' {
			l.n++
			l.col = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if l.Width > 0 && l.col+w > l.Width {
			l.n++
			l.col = 0
		}
		l.col += w
	}
}

func (l *LineCounter) LinesWritten() uint {
	return l.n
}

func (l *LineCounter) Reset() {
	l.n = 0
	l.col = 0
}
