package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

// Logger is the front-end that builds records and dispatches them to a
// Handler. It is immutable; the level it gates on belongs to the handler.
type Logger struct {
	handler       handler.Handler
	label         string
	metadata      core.Metadata
	includeCaller bool
	callerSkip    int
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	label         string
	level         *core.Level
	metadata      core.Metadata
	includeCaller bool
	callerSkip    int
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		callerSkip: 3, // Default skip for getCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	return b
}

// WithLabel sets the label copied into every record's Source.
func (b *Builder) WithLabel(label string) *Builder {
	b.label = label
	return b
}

// WithLevel sets the handler's threshold when the logger is built.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = &level
	return b
}

// WithFields adds default metadata to all records
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	if len(fields) == 0 {
		return b
	}
	b.metadata = b.metadata.Merge(core.FromFields(fields...))
	return b
}

// WithCaller enables caller information
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	if b.level != nil && b.handler != nil {
		b.handler.SetLevel(*b.level)
	}
	return &Logger{
		handler:       b.handler,
		label:         b.label,
		metadata:      b.metadata.Clone(),
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
	}
}

// Handler returns the handler records are dispatched to.
func (l *Logger) Handler() handler.Handler {
	return l.handler
}

// Label returns the logger label.
func (l *Logger) Label() string {
	return l.label
}

// Level returns the threshold of the underlying handler.
func (l *Logger) Level() core.Level {
	if l.handler == nil {
		return core.CriticalLevel
	}
	return l.handler.Level()
}

// SetLevel changes the threshold of the underlying handler. Every logger
// sharing the handler observes the change.
func (l *Logger) SetLevel(level core.Level) {
	if l.handler != nil {
		l.handler.SetLevel(level)
	}
}

// Enabled reports whether a record at level would be dispatched.
func (l *Logger) Enabled(level core.Level) bool {
	return l.handler != nil && handler.Enabled(l.handler, level)
}

// With creates a new Logger with additional metadata (immutable operation)
func (l *Logger) With(fields ...core.Field) *Logger {
	return &Logger{
		handler:       l.handler,
		label:         l.label,
		metadata:      l.metadata.Merge(core.FromFields(fields...)),
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
	}
}

// Named creates a new Logger with a different label.
func (l *Logger) Named(label string) *Logger {
	cp := *l
	cp.label = label
	return &cp
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if !l.Enabled(level) {
		return
	}
	l.log(level, msg, fields)
}

// log builds the record. Record metadata is shared with the logger and
// must be treated as read-only by handlers.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	md := l.metadata
	if len(fields) > 0 {
		md = make(core.Metadata, len(l.metadata)+len(fields))
		for k, v := range l.metadata {
			md[k] = v
		}
		for _, f := range fields {
			md[f.Key] = f.Value
		}
	}

	rec := &core.Record{
		Time:     time.Now(),
		Level:    level,
		Message:  msg,
		Metadata: md,
		Source:   l.label,
	}
	if l.includeCaller {
		rec.Caller = core.GetCaller(l.callerSkip)
	}

	l.handler.Handle(rec)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string, fields ...core.Field) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, msg, fields)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...core.Field) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Notice logs a notice message
func (l *Logger) Notice(msg string, fields ...core.Field) {
	if !l.Enabled(core.NoticeLevel) {
		return
	}
	l.log(core.NoticeLevel, msg, fields)
}

// Warning logs a warning message
func (l *Logger) Warning(msg string, fields ...core.Field) {
	if !l.Enabled(core.WarningLevel) {
		return
	}
	l.log(core.WarningLevel, msg, fields)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields ...core.Field) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Critical logs a critical message. Unlike fatal levels elsewhere it
// neither exits nor panics.
func (l *Logger) Critical(msg string, fields ...core.Field) {
	if !l.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, msg, fields)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if !l.Enabled(core.TraceLevel) {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...), nil)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Noticef logs a notice message with formatting
func (l *Logger) Noticef(format string, args ...interface{}) {
	if !l.Enabled(core.NoticeLevel) {
		return
	}
	l.log(core.NoticeLevel, fmt.Sprintf(format, args...), nil)
}

// Warningf logs a warning message with formatting
func (l *Logger) Warningf(format string, args ...interface{}) {
	if !l.Enabled(core.WarningLevel) {
		return
	}
	l.log(core.WarningLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a critical message with formatting
func (l *Logger) Criticalf(format string, args ...interface{}) {
	if !l.Enabled(core.CriticalLevel) {
		return
	}
	l.log(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// Close closes the logger's handler when it owns resources.
func (l *Logger) Close() error {
	if c, ok := l.handler.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
