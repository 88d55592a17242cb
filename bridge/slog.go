package bridge

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

// SlogHandler is an adapter that implements slog.Handler using a Handler.
// This allows any sink to be used as the backend of log/slog.
type SlogHandler struct {
	handler handler.Handler
	source  string
	attrs   core.Metadata
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Handler. source is copied into every record's Source.
func NewSlogHandler(h handler.Handler, source string) *SlogHandler {
	return &SlogHandler{
		handler: h,
		source:  source,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return handler.Enabled(s.handler, SlogLevel(level))
}

// Handle converts a slog.Record into a core.Record and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	md := s.attrs.Clone()
	record.Attrs(func(a slog.Attr) bool {
		if md == nil {
			md = make(core.Metadata, record.NumAttrs())
		}
		addSlogAttr(md, s.group, a)
		return true
	})

	rec := &core.Record{
		Time:     record.Time,
		Level:    SlogLevel(record.Level),
		Message:  record.Message,
		Metadata: md,
		Source:   s.source,
	}
	if rec.Time.IsZero() {
		rec.Time = time.Now()
	}
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		rec.Caller = callerInfo(frame.File, frame.Line, frame.Function)
	}

	s.handler.Handle(rec)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	md := s.attrs.Clone()
	if md == nil {
		md = make(core.Metadata, len(attrs))
	}
	for _, a := range attrs {
		addSlogAttr(md, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		source:  s.source,
		attrs:   md,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	return &SlogHandler{
		handler: s.handler,
		source:  s.source,
		attrs:   s.attrs.Clone(),
		group:   joinKey(s.group, name),
	}
}

// SlogLevel converts a slog.Level to a core.Level.
func SlogLevel(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError+4:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo+2:
		return core.NoticeLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// addSlogAttr stores a, flattening groups into dotted keys.
func addSlogAttr(md core.Metadata, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = joinKey(group, a.Key)
		}
		for _, ga := range a.Value.Group() {
			addSlogAttr(md, prefix, ga)
		}
		return
	}

	md[joinKey(group, a.Key)] = slogValue(a.Value)
}

func slogValue(v slog.Value) core.Value {
	switch v.Kind() {
	case slog.KindString:
		return core.StringValue(v.String())
	case slog.KindInt64:
		return core.Int64Value(v.Int64())
	case slog.KindUint64:
		return core.AnyValue(v.Uint64())
	case slog.KindFloat64:
		return core.Float64Value(v.Float64())
	case slog.KindBool:
		return core.BoolValue(v.Bool())
	case slog.KindTime:
		return core.TimeValue(v.Time())
	case slog.KindDuration:
		return core.DurationValue(v.Duration())
	default:
		return core.AnyValue(v.Any())
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	return group + "." + key
}

var _ slog.Handler = (*SlogHandler)(nil)
