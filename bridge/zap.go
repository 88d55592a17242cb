package bridge

import (
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

// ZapCore is a zapcore.Core that turns zap entries into records for a
// Handler. Use it with zap.New(bridge.NewZapCore(h)).
type ZapCore struct {
	handler handler.Handler
	fields  []zapcore.Field
}

// NewZapCore creates a core dispatching to h.
func NewZapCore(h handler.Handler) *ZapCore {
	return &ZapCore{handler: h}
}

// Enabled reports whether entries at level reach the handler.
func (c *ZapCore) Enabled(level zapcore.Level) bool {
	return handler.Enabled(c.handler, ZapLevel(level))
}

// With returns a core that adds fields to every entry.
func (c *ZapCore) With(fields []zapcore.Field) zapcore.Core {
	merged := make([]zapcore.Field, 0, len(c.fields)+len(fields))
	merged = append(merged, c.fields...)
	merged = append(merged, fields...)
	return &ZapCore{handler: c.handler, fields: merged}
}

// Check adds the core to ce when the entry is enabled.
func (c *ZapCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write encodes the fields into metadata and hands the record over.
func (c *ZapCore) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var md core.Metadata
	if len(enc.Fields) > 0 {
		md = make(core.Metadata, len(enc.Fields))
		for k, v := range enc.Fields {
			md[k] = core.AnyValue(v)
		}
	}

	rec := &core.Record{
		Time:     ent.Time,
		Level:    ZapLevel(ent.Level),
		Message:  ent.Message,
		Metadata: md,
		Source:   ent.LoggerName,
	}
	if ent.Caller.Defined {
		rec.Caller = callerInfo(ent.Caller.File, ent.Caller.Line, ent.Caller.Function)
	}

	c.handler.Handle(rec)
	return nil
}

// Sync flushes the handler when it supports syncing.
func (c *ZapCore) Sync() error {
	if s, ok := c.handler.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}

// ZapLevel converts a zapcore.Level to a core.Level.
func ZapLevel(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.DPanicLevel:
		return core.CriticalLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarningLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	case level >= zapcore.DebugLevel:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

var _ zapcore.Core = (*ZapCore)(nil)
