package formatter

import (
	"bytes"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logsink/core"
)

// reservedPrefix is prepended to metadata keys that collide with the
// keys the formatter writes itself.
const reservedPrefix = "metadata."

var reservedJSONKeys = map[string]struct{}{
	"time":     {},
	"level":    {},
	"message":  {},
	"source":   {},
	"caller":   {},
	"function": {},
}

// JSONFormatter formats records as JSON objects, one per line, using
// zap's JSON encoder.
type JSONFormatter struct {
	Config
	encoder zapcore.Encoder
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(cfg Config) *JSONFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339Nano
	}
	loc := cfg.location()
	layout := cfg.TimestampFormat

	encCfg := zapcore.EncoderConfig{
		TimeKey:    "time",
		NameKey:    "source",
		MessageKey: "message",
		LineEnding: zapcore.DefaultLineEnding,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.In(loc).Format(layout))
		},
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
	if cfg.IncludeCaller {
		encCfg.CallerKey = "caller"
		encCfg.FunctionKey = "function"
	}

	return &JSONFormatter{
		Config:  cfg,
		encoder: zapcore.NewJSONEncoder(encCfg),
	}
}

// Format formats a record as JSON
func (f *JSONFormatter) Format(rec *core.Record) ([]byte, error) {
	return formatWith(f, rec)
}

// FormatRecord formats a record as JSON into the given buffer (implements BufferFormatter).
func (f *JSONFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) error {
	ent := zapcore.Entry{
		Time:       rec.Time,
		Message:    rec.Message,
		LoggerName: rec.Source,
	}
	if f.IncludeCaller && rec.Caller.Defined {
		ent.Caller = zapcore.EntryCaller{
			Defined:  true,
			File:     rec.Caller.File,
			Line:     rec.Caller.Line,
			Function: rec.Caller.Function,
		}
	}

	// zap has no notice or critical level, so the level travels as a field.
	fields := make([]zapcore.Field, 0, len(rec.Metadata)+1)
	fields = append(fields, zap.String("level", rec.Level.Name()))
	for _, field := range rec.Metadata.Sorted() {
		if _, ok := reservedJSONKeys[field.Key]; ok {
			field.Key = reservedPrefix + field.Key
		}
		fields = append(fields, ZapField(field))
	}

	out, err := f.encoder.EncodeEntry(ent, fields)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	buf.Write(out.Bytes())
	out.Free()
	return nil
}

// ZapField converts a metadata field into the equivalent zap field.
func ZapField(field core.Field) zapcore.Field {
	v := field.Value
	switch v.Type {
	case core.StringType, core.ErrorType:
		return zap.String(field.Key, v.Str)
	case core.Int64Type:
		return zap.Int64(field.Key, v.Int64)
	case core.Float64Type:
		return zap.Float64(field.Key, v.Float64)
	case core.BoolType:
		return zap.Bool(field.Key, v.Int64 == 1)
	case core.TimeType:
		return zap.Time(field.Key, time.Unix(0, v.Int64))
	case core.DurationType:
		return zap.Duration(field.Key, time.Duration(v.Int64))
	case core.StringerType:
		if s, ok := v.Any.(fmt.Stringer); ok {
			return zap.Stringer(field.Key, s)
		}
		return zap.String(field.Key, v.String())
	default:
		return zap.Any(field.Key, v.Any)
	}
}
