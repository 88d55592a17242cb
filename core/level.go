package core

import (
	"fmt"
	"strings"
)

// Level represents the severity level of a log record
type Level int8

const (
	// TraceLevel for very fine grained tracing
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// NoticeLevel for normal but significant conditions
	NoticeLevel
	// WarningLevel for warning messages
	WarningLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for conditions that need immediate attention
	CriticalLevel
)

var levelNames = [...]string{
	TraceLevel:    "trace",
	DebugLevel:    "debug",
	InfoLevel:     "info",
	NoticeLevel:   "notice",
	WarningLevel:  "warning",
	ErrorLevel:    "error",
	CriticalLevel: "critical",
}

// Name returns the lowercase name of the level
func (l Level) Name() string {
	if l.Valid() {
		return levelNames[l]
	}
	return "unknown"
}

// String returns the uppercase name of the level
func (l Level) String() string {
	return strings.ToUpper(l.Name())
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l >= TraceLevel && l <= CriticalLevel
}

// ParseLevel converts a level name to a Level. Matching is case
// insensitive and accepts the common aliases warn, err, crit and fatal.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return TraceLevel, nil
	case "debug":
		return DebugLevel, nil
	case "info":
		return InfoLevel, nil
	case "notice":
		return NoticeLevel, nil
	case "warning", "warn":
		return WarningLevel, nil
	case "error", "err":
		return ErrorLevel, nil
	case "critical", "crit", "fatal", "panic":
		return CriticalLevel, nil
	}
	return InfoLevel, fmt.Errorf("unknown log level %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.Name()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
