package vislog

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	c     *fakeClock
	at    time.Duration
	f     func()
	armed bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) timer {
	t := &fakeTimer{c: c, at: c.now + d, f: f, armed: true}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	was := t.armed
	t.armed = false
	return was
}

func (t *fakeTimer) Reset(d time.Duration) bool {
	was := t.armed
	t.at = t.c.now + d
	t.armed = true
	return was
}

// Advance moves time forward by d, firing due timers in deadline order.
func (c *fakeClock) Advance(d time.Duration) {
	end := c.now + d
	for {
		var next *fakeTimer
		for _, t := range c.timers {
			if t.armed && t.at <= end && (next == nil || t.at < next.at) {
				next = t
			}
		}
		if next == nil {
			break
		}
		c.now = next.at
		next.armed = false
		next.f()
	}
	c.now = end
}

func (c *fakeClock) armed() int {
	n := 0
	for _, t := range c.timers {
		if t.armed {
			n++
		}
	}
	return n
}

// recordOutput keeps raw writes the way a terminal would show them: text
// continues the last entry until that entry ends with a newline.
type recordOutput struct {
	interactive bool
	out         []string
	vis         string
	visList     []string
	clearCount  int
}

func (o *recordOutput) IsInteractive() bool {
	return o.interactive
}

func (o *recordOutput) Write(text string) {
	if n := len(o.out); n > 0 && !strings.HasSuffix(o.out[n-1], "\n") {
		o.out[n-1] += text
		return
	}
	o.out = append(o.out, text)
}

func (o *recordOutput) WriteBlock(text string) {
	o.vis = text
	o.visList = append(o.visList, text)
}

func (o *recordOutput) ClearBlock() {
	o.vis = ""
	o.clearCount++
}

func (o *recordOutput) reset() {
	o.out = nil
	o.visList = nil
}

type plainColorizer struct{}

func (plainColorizer) Colorize(_, text string) string { return text }
func (plainColorizer) StylingActive() bool           { return false }

// tagColorizer marks styled text as <color>text.
type tagColorizer struct {
	active bool
}

func (c *tagColorizer) Colorize(color, text string) string {
	if !c.active {
		return text
	}
	return "<" + color + ">" + text
}

func (c *tagColorizer) StylingActive() bool {
	return c.active
}

const renderWait = 40 * time.Millisecond

type harness struct {
	l     *Logger
	out   *recordOutput
	clock *fakeClock
}

func newHarness(t *testing.T, opts ...Option) *harness {
	t.Helper()

	h := &harness{
		out:   &recordOutput{interactive: true},
		clock: &fakeClock{},
	}
	opts = append([]Option{
		WithOutput(h.out),
		WithColorizer(plainColorizer{}),
		withClock(h.clock),
	}, opts...)

	l, err := New(opts...)
	require.NoError(t, err)
	h.l = l
	return h
}

// withItem is newHarness plus the TEST_1 item most item tests start from.
func withItem(t *testing.T, opts ...Option) *harness {
	t.Helper()

	h := newHarness(t, append([]Option{WithUpdatesPerDot(1)}, opts...)...)
	h.l.AddItem(ItemOptions{Name: "TEST_1", Color: "blue"})
	return h
}
