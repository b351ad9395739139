package statuslogger

import (
	"fmt"
	"strings"
	"sync"

	"github.com/superfly/vislog"
)

// interactiveLogger keeps one live item per line.
type interactiveLogger struct {
	lock       sync.Mutex
	log        *vislog.Logger
	lines      []*interactiveLine
	showStatus bool
	done       bool
}

func (il *interactiveLogger) Line(i int) StatusLine {
	return il.lines[i]
}

func (il *interactiveLogger) Destroy(clear bool) {
	il.lock.Lock()
	defer il.lock.Unlock()

	if il.done {
		return
	}
	il.done = true

	for _, line := range il.lines {
		if !clear {
			il.log.Info(line.text())
		}
		il.log.RemoveItem(line.name)
	}
}

func (il *interactiveLogger) Pause() ResumeFn {
	il.log.FreezeItems(false)

	return func() {
		il.log.UnfreezeItems()
	}
}

type interactiveLine struct {
	mu     sync.Mutex
	logger *interactiveLogger
	name   string
	label  string
	buf    string
	status Status
}

func (line *interactiveLine) Log(s string) {
	line.mu.Lock()
	defer line.mu.Unlock()

	line.buf = s
	line.lockedDraw(false)
}

func (line *interactiveLine) Logf(format string, args ...any) {
	line.Log(fmt.Sprintf(format, args...))
}

func (line *interactiveLine) LogStatus(s Status, str string) {
	line.mu.Lock()
	defer line.mu.Unlock()

	line.lockedSetStatus(s)
	line.buf = str
	line.lockedDraw(false)
}

func (line *interactiveLine) LogfStatus(s Status, format string, args ...any) {
	line.LogStatus(s, fmt.Sprintf(format, args...))
}

func (line *interactiveLine) Failed(e error) {
	firstLine, _, _ := strings.Cut(e.Error(), "\n")
	line.LogfStatus(StatusFailure, "Failed: %s", firstLine)
}

func (line *interactiveLine) setStatus(s Status) {
	line.mu.Lock()
	defer line.mu.Unlock()

	line.lockedSetStatus(s)
	line.lockedDraw(true)
}

func (line *interactiveLine) lockedSetStatus(s Status) {
	if s == line.status {
		return
	}
	line.status = s
	if !line.logger.showStatus {
		return
	}

	if s == StatusRunning {
		line.logger.log.SetItemSpinner(line.name, glyphsRunning)
	} else {
		line.logger.log.SetItemSpinner(line.name, nil)
	}
}

// display is the item label. Lines that are not running carry their status
// glyph in front of it; running ones get the spinner there instead.
func (line *interactiveLine) display() string {
	if line.logger.showStatus && line.status != StatusRunning {
		return line.status.glyph() + " " + line.label
	}
	return line.label
}

func (line *interactiveLine) lockedDraw(skipHistory bool) {
	line.logger.log.UpdateItemWith(line.name, vislog.ItemUpdate{
		Msg:         line.buf,
		Display:     line.display(),
		SkipHistory: skipHistory,
	})
}

func (line *interactiveLine) text() string {
	line.mu.Lock()
	defer line.mu.Unlock()

	return line.display() + ": " + line.buf
}
