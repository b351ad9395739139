package statuslogger

type ResumeFn func()

type StatusLogger interface {
	// Destroy destroys the logger.
	// If clear is true, the status lines are removed from the terminal.
	// Otherwise their final state is written out as regular log lines.
	Destroy(clear bool)
	// Line returns a StatusLine for the given line number.
	Line(idx int) StatusLine
	// Pause takes the status lines off the screen and holds redraws until the
	// returned resume function is called. Lines are items of the vislog.Logger
	// in the context, so every item on that logger is held, including lines of
	// other status loggers sharing it.
	Pause() ResumeFn
}

type StatusLine interface {
	Log(s string)
	Logf(format string, args ...any)
	LogStatus(s Status, str string)
	LogfStatus(s Status, format string, args ...any)
	Failed(e error)
	// Private because it won't redraw on non-interactive loggers.
	// For outside use, use LogStatus or LogfStatus.
	setStatus(s Status)
}
