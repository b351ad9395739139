package statuslogger

import (
	"fmt"
	"strconv"

	"github.com/superfly/vislog"
)

type Status int

const (
	StatusNone Status = iota
	StatusRunning
	StatusSuccess
	StatusFailure
)

// glyphsRunning animates running lines on interactive outputs.
var glyphsRunning = vislog.BuiltinSpinner(3)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "none"
	}
}

// glyph is the static marker of s. Running lines use a spinner instead when
// the output can animate.
func (s Status) glyph() string {
	switch s {
	case StatusRunning:
		return "-"
	case StatusSuccess:
		return "✔"
	case StatusFailure:
		return "✖"
	default:
		return "•"
	}
}

// formatIndex renders line n of total as [03/12].
func formatIndex(n, total int) string {
	pad := len(strconv.Itoa(total))
	return fmt.Sprintf("[%0*d/%d]", pad, n+1, total)
}
