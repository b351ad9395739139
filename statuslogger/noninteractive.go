package statuslogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/superfly/vislog"
)

// noninteractiveLogger writes every line update as a log line of its own.
type noninteractiveLogger struct {
	log        *vislog.Logger
	lines      []*noninteractiveLine
	logNumbers bool
	showStatus bool
}

func (nl *noninteractiveLogger) Line(i int) StatusLine {
	return nl.lines[i]
}

// Destroy is a no-op for non-interactive loggers.
func (nl *noninteractiveLogger) Destroy(_ bool) {}

func (nl *noninteractiveLogger) Pause() ResumeFn { return func() {} }

type noninteractiveLine struct {
	mu      sync.Mutex
	logger  *noninteractiveLogger
	lineNum int
	status  Status
}

func (line *noninteractiveLine) Log(s string) {
	line.mu.Lock()
	status := line.status
	line.mu.Unlock()

	buf := ""
	if line.logger.showStatus {
		buf += status.glyph() + " "
	}
	if line.logger.logNumbers {
		buf += formatIndex(line.lineNum, len(line.logger.lines)) + " "
	}
	buf += s
	line.logger.log.Info(buf)
}

func (line *noninteractiveLine) Logf(format string, args ...any) {
	line.Log(fmt.Sprintf(format, args...))
}

func (line *noninteractiveLine) LogStatus(s Status, str string) {
	line.setStatus(s)
	line.Log(str)
}

func (line *noninteractiveLine) LogfStatus(s Status, format string, args ...any) {
	line.LogStatus(s, fmt.Sprintf(format, args...))
}

func (line *noninteractiveLine) Failed(e error) {
	firstLine, _, _ := strings.Cut(e.Error(), "\n")
	line.LogfStatus(StatusFailure, "Failed: %s", firstLine)
}

func (line *noninteractiveLine) setStatus(s Status) {
	line.mu.Lock()
	defer line.mu.Unlock()

	line.status = s
}
