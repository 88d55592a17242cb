package logger

import (
	"github.com/philipp01105/logsink/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	TraceLevel    = core.TraceLevel
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	NoticeLevel   = core.NoticeLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a string to a Level, falling back to InfoLevel for
// unknown names.
func ParseLevel(s string) Level {
	l, err := core.ParseLevel(s)
	if err != nil {
		return InfoLevel
	}
	return l
}
