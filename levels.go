package vislog

import (
	"strings"

	"github.com/superfly/vislog/internal/env"
)

// Level is the severity rank of a log line. Lines below the logger's
// threshold are recorded in history but not written.
type Level int

const (
	LevelDebug   Level = 10
	LevelVerbose Level = 20
	LevelInfo    Level = 30
	LevelWarn    Level = 40
	LevelError   Level = 50
	// LevelFYI ranks above errors so it surfaces unless explicitly silenced.
	LevelFYI Level = 60
	// LevelNone is never emitted; as a threshold it silences everything.
	LevelNone Level = 100
)

var levels = []Level{LevelDebug, LevelVerbose, LevelInfo, LevelWarn, LevelError, LevelFYI, LevelNone}

var levelNames = map[Level]string{
	LevelDebug:   "debug",
	LevelVerbose: "verbose",
	LevelInfo:    "info",
	LevelWarn:    "warn",
	LevelError:   "error",
	LevelFYI:     "fyi",
	LevelNone:    "none",
}

var levelColors = map[Level]string{
	LevelDebug:   "blue",
	LevelVerbose: "cyan",
	LevelWarn:    "yellow",
	LevelError:   "red",
	LevelFYI:     "magenta",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "unknown"
}

// ParseLevel maps a level name to its Level. "log" is accepted as an alias
// of "info".
func ParseLevel(name string) (Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "log" {
		return LevelInfo, true
	}
	for _, l := range levels {
		if levelNames[l] == name {
			return l, true
		}
	}
	return LevelInfo, false
}

// LevelFromEnv reads the threshold from VISLOG_LEVEL, falling back to
// LOG_LEVEL, and to info when neither holds a known level.
func LevelFromEnv() Level {
	lit, ok := env.First("VISLOG_LEVEL", "LOG_LEVEL")
	if !ok {
		return LevelInfo
	}
	level, _ := ParseLevel(lit)
	return level
}
