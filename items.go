package vislog

import (
	"strings"
	"time"

	"github.com/samber/lo"
)

// ItemMode selects how item updates are shown.
type ItemMode uint8

const (
	// ItemModeOff records item state without showing anything.
	ItemModeOff ItemMode = iota
	// ItemModeDots writes a dot every few updates, for outputs that cannot
	// redraw in place.
	ItemModeDots
	// ItemModeLive redraws all items as one block below the log lines.
	ItemModeLive
)

var itemModeNames = map[string]ItemMode{
	"none":   ItemModeOff,
	"off":    ItemModeOff,
	"simple": ItemModeDots,
	"dots":   ItemModeDots,
	"normal": ItemModeLive,
	"live":   ItemModeLive,
}

func (m ItemMode) String() string {
	switch m {
	case ItemModeDots:
		return "simple"
	case ItemModeLive:
		return "normal"
	default:
		return "none"
	}
}

// ParseItemMode maps a mode name to its ItemMode. Unknown and empty names
// turn items off.
func ParseItemMode(name string) ItemMode {
	return itemModeNames[strings.ToLower(strings.TrimSpace(name))]
}

// ItemOptions describes an item to add.
type ItemOptions struct {
	// Name identifies the item. Adding a name twice is a no-op.
	Name string
	// Display is the label shown instead of Name.
	Display string
	// Color of the label; white when empty.
	Color string
	// Spinner animates the item when non-empty.
	Spinner Spinner
	// SpinInterval gives the spinner its own cadence. Zero shares
	// DefaultSpinInterval with the other spinners.
	SpinInterval time.Duration
	// SkipHistory keeps the item's updates out of LogData.
	SkipHistory bool
}

// ItemUpdate is a structured item update.
type ItemUpdate struct {
	Msg string
	// Display overrides the label for this update.
	Display string
	// SkipHistory keeps this update out of LogData.
	SkipHistory bool
	// SkipRender updates state and history without touching the screen.
	SkipRender bool
}

type item struct {
	name         string
	color        string
	label        string
	msg          string
	spinner      Spinner
	spinInterval time.Duration
	skipHistory  bool

	frame    int
	hasFrame bool
	phase    spinPhase
	spinTask *task
}

func (it *item) render() string {
	if len(it.spinner) > 0 && it.hasFrame {
		return it.spinner[it.frame] + " " + it.msg
	}
	return it.msg
}

func (l *Logger) setMessage(it *item, label, msg string) {
	if label == "" {
		label = it.label
	}
	it.msg = label + ": " + msg
}

// liveActive reports whether item updates redraw the live block.
func (l *Logger) liveActive() bool {
	return l.itemMode == ItemModeLive && l.level <= LevelInfo
}

// AddItem registers a live item at the bottom of the block. Its line reads
// "<label>: " until the first update.
func (l *Logger) AddItem(opts ItemOptions) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.byName[opts.Name]; ok {
		return l
	}

	// keep every spinner in step with the newcomer
	for _, other := range l.items {
		if other.phase != spinOff {
			other.phase = spinJustStarted
		}
	}

	color := lo.Ternary(opts.Color == "", "white", opts.Color)
	display := lo.Ternary(opts.Display == "", opts.Name, opts.Display)
	it := &item{
		name:         opts.Name,
		color:        color,
		label:        l.colorize(color, display),
		spinner:      append(Spinner(nil), opts.Spinner...),
		spinInterval: lo.Ternary(opts.SpinInterval <= 0, DefaultSpinInterval, opts.SpinInterval),
		skipHistory:  opts.SkipHistory,
	}
	l.setMessage(it, "", "")
	l.startSpinner(it, true)

	l.items = append(l.items, it)
	l.byName[it.name] = it
	l.lines = append(l.lines, it.render())
	return l
}

func (l *Logger) HasItem(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.byName[name]
	return ok
}

// ItemMode returns the current display mode.
func (l *Logger) ItemMode() ItemMode {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.itemMode
}

// SetItemMode switches how items are shown. Asking for the live block on a
// non-interactive output falls back to dots.
func (l *Logger) SetItemMode(mode ItemMode) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.setItemMode(mode)
	return l
}

// SetItemType is SetItemMode by name: "normal", "simple" or "none".
func (l *Logger) SetItemType(name string) *Logger {
	return l.SetItemMode(ParseItemMode(name))
}

func (l *Logger) setItemMode(mode ItemMode) {
	if l.closed || mode > ItemModeLive {
		mode = ItemModeOff
	}
	if mode == ItemModeLive && !l.output.IsInteractive() {
		mode = ItemModeDots
	}
	l.itemMode = mode
	if mode == ItemModeDots {
		l.dots = 0
	}
}

// RemoveItem drops an item and its spinner, redrawing the block without it.
func (l *Logger) RemoveItem(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	it, ok := l.byName[name]
	if !ok {
		return l
	}

	l.clearItems()

	x := lo.IndexOf(l.items, it)
	l.items = append(l.items[:x], l.items[x+1:]...)
	l.lines = append(l.lines[:x], l.lines[x+1:]...)
	delete(l.byName, name)
	l.stopSpinner(it)

	l.requestRender()
	return l
}

// UpdateItem sets the message of an item.
func (l *Logger) UpdateItem(name, msg string) *Logger {
	return l.UpdateItemWith(name, ItemUpdate{Msg: msg})
}

func (l *Logger) UpdateItemWith(name string, u ItemUpdate) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.updateItem(name, &u)
	return l
}

// TickItem redraws an item without new data, advancing its spinner. It does
// nothing for items without a spinner.
func (l *Logger) TickItem(name string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.updateItem(name, nil)
	return l
}

func (l *Logger) updateItem(name string, u *ItemUpdate) {
	it, ok := l.byName[name]
	if !ok {
		return
	}
	idx := lo.IndexOf(l.items, it)

	if u != nil {
		label := ""
		if u.Display != "" {
			label = l.colorize(it.color, u.Display)
		}
		l.setMessage(it, label, u.Msg)
		if !it.skipHistory && !u.SkipHistory {
			l.save(it.msg)
		}
		if u.SkipRender {
			return
		}
	}

	if !l.liveActive() {
		l.lines[idx] = it.msg
		l.writeDot()
		return
	}

	if u == nil && !it.advance() {
		// no spinner and no data, nothing changed
		return
	}
	l.lines[idx] = it.render()
	l.requestRender()
}

// ClearItems erases the live block from the screen while keeping the items.
func (l *Logger) ClearItems() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clearItems()
	return l
}

func (l *Logger) clearItems() {
	if l.liveActive() && len(l.lines) > 0 {
		l.output.ClearBlock()
	} else {
		l.resetDots()
	}
}

// FreezeItems stops all spinners and takes the block off the screen. With
// show, the current item lines are written once as regular output. Item
// updates are recorded but not shown until UnfreezeItems.
func (l *Logger) FreezeItems(show bool) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.freezeItems(show)
	return l
}

func (l *Logger) freezeItems(show bool) {
	l.stopSharedSpinTimer(true)
	for _, it := range l.items {
		l.stopSpinner(it)
	}
	l.output.ClearBlock()
	l.resetDots()
	if show && len(l.lines) > 0 {
		l.output.Write(strings.Join(l.lines, "\n") + "\n")
	}

	if !l.frozen {
		l.frozen = true
		l.frozenMode = l.itemMode
	}
	l.itemMode = ItemModeOff
}

// UnfreezeItems restores the mode that was active before FreezeItems and
// resumes spinners where they stopped.
func (l *Logger) UnfreezeItems() *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.frozen || l.closed {
		return l
	}
	l.frozen = false
	l.itemMode = l.frozenMode
	for _, it := range l.items {
		l.startSpinner(it, false)
	}
	l.requestRender()
	return l
}

// Shutdown freezes the items for good and cancels any pending redraw.
func (l *Logger) Shutdown(show bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.freezeItems(show)
	l.renderTask.cancel()
	l.renderTask = nil
	l.closed = true
}
