package vislog

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

// Logr returns a logr.Logger that writes through l. V(0) logs at info, V(1)
// at verbose and anything more verbose at debug; errors log at error.
func (l *Logger) Logr() logr.Logger {
	return logr.New(&logrSink{l: l})
}

type logrSink struct {
	l      *Logger
	name   string
	values []any
}

func (s *logrSink) Init(logr.RuntimeInfo) {}

// Enabled always holds: lines below the threshold still enter history.
func (s *logrSink) Enabled(int) bool {
	return true
}

func (s *logrSink) Info(level int, msg string, keysAndValues ...any) {
	s.l.Print(logrLevel(level), s.format(msg, keysAndValues))
}

func (s *logrSink) Error(err error, msg string, keysAndValues ...any) {
	if err != nil {
		keysAndValues = append([]any{"error", err}, keysAndValues...)
	}
	s.l.Print(LevelError, s.format(msg, keysAndValues))
}

func (s *logrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := append(append([]any(nil), s.values...), keysAndValues...)
	return &logrSink{l: s.l, name: s.name, values: values}
}

func (s *logrSink) WithName(name string) logr.LogSink {
	if s.name != "" {
		name = s.name + "/" + name
	}
	return &logrSink{l: s.l, name: name, values: s.values}
}

func logrLevel(v int) Level {
	switch {
	case v <= 0:
		return LevelInfo
	case v == 1:
		return LevelVerbose
	default:
		return LevelDebug
	}
}

func (s *logrSink) format(msg string, keysAndValues []any) string {
	var sb strings.Builder
	if s.name != "" {
		sb.WriteString(s.name)
		sb.WriteString(": ")
	}
	sb.WriteString(msg)

	kvs := append(append([]any(nil), s.values...), keysAndValues...)
	for i := 0; i < len(kvs); i += 2 {
		var v any = "(MISSING)"
		if i+1 < len(kvs) {
			v = kvs[i+1]
		}
		fmt.Fprintf(&sb, " %v=%v", kvs[i], v)
	}
	return sb.String()
}
