package bridge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

// ZerologWriter receives zerolog's JSON events and hands them to a Handler
// as records. Use it as the writer of zerolog.New.
type ZerologWriter struct {
	handler handler.Handler
	source  string
}

// NewZerologWriter creates a writer dispatching to h. source is copied
// into every record's Source.
func NewZerologWriter(h handler.Handler, source string) *ZerologWriter {
	return &ZerologWriter{handler: h, source: source}
}

// Write decodes one event. The level is taken from the event itself.
func (w *ZerologWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel decodes one event logged at level.
func (w *ZerologWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	var event map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		return 0, fmt.Errorf("decode zerolog event: %w", err)
	}

	if s, ok := event[zerolog.LevelFieldName].(string); ok {
		if parsed, err := zerolog.ParseLevel(s); err == nil {
			level = parsed
		}
	}
	lvl := ZerologLevel(level)
	if !handler.Enabled(w.handler, lvl) {
		return len(p), nil
	}

	rec := &core.Record{
		Level:  lvl,
		Source: w.source,
	}
	if msg, ok := event[zerolog.MessageFieldName].(string); ok {
		rec.Message = msg
	}
	rec.Time = zerologTime(event[zerolog.TimestampFieldName])
	if caller, ok := event[zerolog.CallerFieldName].(string); ok {
		rec.Caller = parseZerologCaller(caller)
	}

	for _, key := range []string{
		zerolog.LevelFieldName,
		zerolog.MessageFieldName,
		zerolog.TimestampFieldName,
		zerolog.CallerFieldName,
	} {
		delete(event, key)
	}
	if len(event) > 0 {
		rec.Metadata = make(core.Metadata, len(event))
		for k, v := range event {
			rec.Metadata[k] = jsonValue(v)
		}
	}

	w.handler.Handle(rec)
	return len(p), nil
}

// ZerologLevel converts a zerolog.Level to a core.Level. Events without a
// level are treated as info.
func ZerologLevel(level zerolog.Level) core.Level {
	switch level {
	case zerolog.TraceLevel:
		return core.TraceLevel
	case zerolog.DebugLevel:
		return core.DebugLevel
	case zerolog.WarnLevel:
		return core.WarningLevel
	case zerolog.ErrorLevel:
		return core.ErrorLevel
	case zerolog.FatalLevel, zerolog.PanicLevel:
		return core.CriticalLevel
	default:
		return core.InfoLevel
	}
}

func zerologTime(v interface{}) time.Time {
	switch x := v.(type) {
	case string:
		if t, err := time.Parse(zerolog.TimeFieldFormat, x); err == nil {
			return t
		}
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			break
		}
		switch zerolog.TimeFieldFormat {
		case zerolog.TimeFormatUnixMs:
			return time.UnixMilli(n)
		case zerolog.TimeFormatUnixMicro:
			return time.UnixMicro(n)
		case zerolog.TimeFormatUnixNano:
			return time.Unix(0, n)
		default:
			return time.Unix(n, 0)
		}
	}
	return time.Now()
}

func parseZerologCaller(s string) core.CallerInfo {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return callerInfo(s, 0, "")
	}
	line, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return callerInfo(s, 0, "")
	}
	return callerInfo(s[:i], line, "")
}

// jsonValue maps a decoded JSON value onto a core.Value.
func jsonValue(v interface{}) core.Value {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return core.Int64Value(i)
		}
		if f, err := n.Float64(); err == nil {
			return core.Float64Value(f)
		}
		return core.StringValue(n.String())
	}
	return core.AnyValue(v)
}

var _ zerolog.LevelWriter = (*ZerologWriter)(nil)
