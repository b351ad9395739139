package vislog

// writeDot counts an item update and writes a dot every updatesPerDot
// updates, wrapping after maxDots dots.
func (l *Logger) writeDot() {
	if l.itemMode != ItemModeDots {
		return
	}
	l.dotUpdates++
	if l.dotUpdates < l.updatesPerDot {
		return
	}
	l.dotUpdates = 0
	l.dots++
	l.output.Write(".")
	l.wrapDots()
}

func (l *Logger) wrapDots() {
	if l.itemMode == ItemModeDots && l.dots >= l.maxDots {
		l.dots = 0
		l.output.Write("\n")
	}
}

// resetDots ends a partial row of dots so the next output starts on a
// fresh line.
func (l *Logger) resetDots() {
	if l.dots > 0 {
		l.dots = 0
		l.output.Write("\n")
	}
}
