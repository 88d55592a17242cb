package core

import (
	"path/filepath"
	"runtime"
	"time"
)

// Record is a single log event as handed to a handler.
type Record struct {
	Time     time.Time
	Level    Level
	Message  string
	Metadata Metadata
	// Source names the emitting component, typically the logger label.
	Source string
	Caller CallerInfo
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// NewRecord creates a record stamped with the current time.
func NewRecord(level Level, msg string, md Metadata) *Record {
	return &Record{
		Time:     time.Now(),
		Level:    level,
		Message:  msg,
		Metadata: md,
	}
}

// WithMetadata returns a shallow copy of r whose metadata is md.
func (r *Record) WithMetadata(md Metadata) *Record {
	cp := *r
	cp.Metadata = md
	return &cp
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
