package bridge

import (
	"github.com/sirupsen/logrus"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

// LogrusHook is a logrus.Hook forwarding every fired entry to a Handler.
// Add it with logger.AddHook; set logger.Out to io.Discard when the sinks
// should be the only output.
type LogrusHook struct {
	handler handler.Handler
	source  string
}

// NewLogrusHook creates a hook dispatching to h.
func NewLogrusHook(h handler.Handler, source string) *LogrusHook {
	return &LogrusHook{handler: h, source: source}
}

// Levels returns all logrus levels; filtering happens against the
// handler's level in Fire.
func (hk *LogrusHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire converts entry into a record.
func (hk *LogrusHook) Fire(entry *logrus.Entry) error {
	level := LogrusLevel(entry.Level)
	if !handler.Enabled(hk.handler, level) {
		return nil
	}

	var md core.Metadata
	if len(entry.Data) > 0 {
		md = make(core.Metadata, len(entry.Data))
		for k, v := range entry.Data {
			md[k] = core.AnyValue(v)
		}
	}

	rec := &core.Record{
		Time:     entry.Time,
		Level:    level,
		Message:  entry.Message,
		Metadata: md,
		Source:   hk.source,
	}
	if entry.HasCaller() {
		rec.Caller = callerInfo(entry.Caller.File, entry.Caller.Line, entry.Caller.Function)
	}

	hk.handler.Handle(rec)
	return nil
}

// LogrusLevel converts a logrus.Level to a core.Level.
func LogrusLevel(level logrus.Level) core.Level {
	switch level {
	case logrus.TraceLevel:
		return core.TraceLevel
	case logrus.DebugLevel:
		return core.DebugLevel
	case logrus.InfoLevel:
		return core.InfoLevel
	case logrus.WarnLevel:
		return core.WarningLevel
	case logrus.ErrorLevel:
		return core.ErrorLevel
	default:
		return core.CriticalLevel
	}
}

var _ logrus.Hook = (*LogrusHook)(nil)
