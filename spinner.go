package vislog

import (
	"time"

	"github.com/briandowns/spinner"
	"github.com/samber/lo"
)

// DefaultSpinInterval drives every spinner that does not ask for its own
// cadence. All such spinners share one timer.
const DefaultSpinInterval = 100 * time.Millisecond

// Spinner is the glyph sequence an item cycles through. An empty Spinner
// means the item does not animate.
type Spinner []string

// BuiltinSpinners are the sequences addressable by BuiltinSpinner.
var BuiltinSpinners = []Spinner{
	GlyphSpinner(`|/-\`),
	GlyphSpinner("⠁⠁⠉⠙⠚⠒⠂⠂⠒⠲⠴⠤⠄⠄⠤⠠⠠⠤⠦⠖⠒⠐⠐⠒⠓⠋⠉⠈⠈"),
	GlyphSpinner("⢹⢺⢼⣸⣇⡧⡗⡏"),
	GlyphSpinner("⣾⣽⣻⢿⡿⣟⣯⣷"),
}

// DefaultSpinner is the sequence used when an item just wants "a spinner".
var DefaultSpinner = BuiltinSpinners[1]

// BuiltinSpinner returns the i-th built-in sequence, or nil when i is out
// of range.
func BuiltinSpinner(i int) Spinner {
	if i < 0 || i >= len(BuiltinSpinners) {
		return nil
	}
	return BuiltinSpinners[i]
}

// GlyphSpinner splits s into one frame per rune.
func GlyphSpinner(s string) Spinner {
	var frames Spinner
	for _, r := range s {
		frames = append(frames, string(r))
	}
	return frames
}

// CharSetSpinner returns character set i of github.com/briandowns/spinner,
// or nil when there is no such set.
func CharSetSpinner(i int) Spinner {
	set, ok := spinner.CharSets[i]
	if !ok {
		return nil
	}
	return append(Spinner(nil), set...)
}

type spinPhase uint8

const (
	spinOff spinPhase = iota
	// spinJustStarted makes the next tick restart at frame 0.
	spinJustStarted
	spinRunning
)

// advance moves the item to its next frame. It reports false when the item
// is not animating.
func (it *item) advance() bool {
	if len(it.spinner) == 0 || it.phase == spinOff {
		return false
	}
	if it.phase == spinJustStarted || !it.hasFrame {
		it.frame = 0
		it.hasFrame = true
		it.phase = spinRunning
	} else {
		it.frame++
	}
	if it.frame >= len(it.spinner) {
		it.frame = 0
	}
	return true
}

func (it *item) usesSharedTimer() bool {
	return it.spinInterval == DefaultSpinInterval
}

// startSpinner starts animating it. With reset, the item restarts at frame
// 0; otherwise it resumes from its current frame.
func (l *Logger) startSpinner(it *item, reset bool) {
	if l.closed || !l.liveActive() || it.spinTask != nil || len(it.spinner) == 0 {
		return
	}

	if reset || !it.hasFrame {
		it.phase = spinJustStarted
		it.frame = 0
		it.hasFrame = true
	} else {
		it.phase = spinRunning
	}

	if it.usesSharedTimer() {
		l.startSharedSpinTimer()
		return
	}
	name := it.name
	it.spinTask = l.every(it.spinInterval, func() {
		if l.liveActive() {
			l.updateItem(name, nil)
		}
	})
}

// SetItemSpinner replaces the spinner of an item and restarts it at frame 0.
// A nil Spinner stops the animation and drops the glyph from the line.
func (l *Logger) SetItemSpinner(name string, s Spinner) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.byName[name]
	if !ok {
		return l
	}

	l.stopSpinner(it)
	it.spinner = append(Spinner(nil), s...)
	it.frame = 0
	it.hasFrame = false
	l.startSpinner(it, true)

	l.lines[lo.IndexOf(l.items, it)] = it.render()
	l.requestRender()
	return l
}

func (l *Logger) stopSpinner(it *item) {
	it.phase = spinOff
	it.spinTask.cancel()
	it.spinTask = nil
	l.stopSharedSpinTimer(false)
}

func (l *Logger) startSharedSpinTimer() {
	if l.spinTask != nil || l.closed || !l.liveActive() {
		return
	}
	l.spinTask = l.every(DefaultSpinInterval, l.spinShared)
}

// stopSharedSpinTimer cancels the shared timer when force is set or no
// item still animates on it.
func (l *Logger) stopSharedSpinTimer(force bool) {
	if l.spinTask == nil {
		return
	}
	if !force {
		for _, it := range l.items {
			if it.phase != spinOff && it.usesSharedTimer() {
				return
			}
		}
	}
	l.spinTask.cancel()
	l.spinTask = nil
}

func (l *Logger) spinShared() {
	if !l.liveActive() {
		return
	}
	for i, it := range l.items {
		if it.phase != spinOff && it.usesSharedTimer() {
			it.advance()
			l.lines[i] = it.render()
		}
	}
	l.requestRender()
}
