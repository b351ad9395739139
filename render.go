package vislog

import (
	"math"
	"strings"
	"time"
)

// task is a deferred callback owned by a Logger. Callbacks run with the
// logger lock held and never run once cancel has returned.
type task struct {
	t         timer
	cancelled bool
}

func (tk *task) cancel() {
	if tk == nil {
		return
	}
	tk.cancelled = true
	tk.t.Stop()
}

// after runs fn once, d from now.
func (l *Logger) after(d time.Duration, fn func()) *task {
	tk := &task{}
	tk.t = l.clock.AfterFunc(d, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if tk.cancelled {
			return
		}
		tk.cancelled = true
		fn()
	})
	return tk
}

// every runs fn each d until cancelled.
func (l *Logger) every(d time.Duration, fn func()) *task {
	tk := &task{}
	tk.t = l.clock.AfterFunc(d, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if tk.cancelled {
			return
		}
		fn()
		if !tk.cancelled {
			tk.t.Reset(d)
		}
	})
	return tk
}

func renderInterval(fps int) time.Duration {
	return time.Duration(math.Floor(1000.0/float64(fps)+0.5)) * time.Millisecond
}

// requestRender schedules a redraw of the live block unless one is already
// pending. The pending redraw picks up whatever the lines are when it fires.
func (l *Logger) requestRender() {
	if l.renderTask != nil || l.closed || !l.liveActive() || len(l.lines) == 0 {
		return
	}
	l.renderTask = l.after(l.renderInterval, func() {
		l.renderTask = nil
		// items may have been frozen while the redraw was pending
		if !l.liveActive() || len(l.lines) == 0 {
			return
		}
		l.output.WriteBlock(strings.Join(l.lines, "\n"))
	})
}
