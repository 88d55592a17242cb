package formatter

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/philipp01105/logsink/core"
)

// DefaultLineTimestamp is the wall-clock layout used by LineFormatter.
const DefaultLineTimestamp = "15:04:05.000"

// levelWidth is the fixed width of the level column.
const levelWidth = 5

// metadataSeparator introduces the metadata section of a line.
const metadataSeparator = " → "

// LineFormatter renders records as
//
//	HH:mm:ss.SSS [LEVEL] message → key1=val1, key2=val2
//
// The level column is always five characters wide. Metadata is sorted by
// key, double quotes are stripped from values, and the whole section is
// omitted when there is no metadata.
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultLineTimestamp
	}
	return &LineFormatter{Config: cfg}
}

// pre-formatted level columns to avoid per-call padding
var levelColumns = [...]string{
	core.TraceLevel:    levelColumn(core.TraceLevel),
	core.DebugLevel:    levelColumn(core.DebugLevel),
	core.InfoLevel:     levelColumn(core.InfoLevel),
	core.NoticeLevel:   levelColumn(core.NoticeLevel),
	core.WarningLevel:  levelColumn(core.WarningLevel),
	core.ErrorLevel:    levelColumn(core.ErrorLevel),
	core.CriticalLevel: levelColumn(core.CriticalLevel),
}

// levelColumn pads the uppercase level name with spaces to levelWidth,
// cutting longer names so the column never grows.
func levelColumn(l core.Level) string {
	name := l.String()
	if len(name) >= levelWidth {
		return name[:levelWidth]
	}
	return name + strings.Repeat(" ", levelWidth-len(name))
}

// LevelColumn returns the rendered level column for l.
func LevelColumn(l core.Level) string {
	if l.Valid() {
		return levelColumns[l]
	}
	return levelColumn(l)
}

// Format formats a record as a single line
func (f *LineFormatter) Format(rec *core.Record) ([]byte, error) {
	return formatWith(f, rec)
}

// FormatRecord writes the formatted record into buf (implements BufferFormatter).
func (f *LineFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) error {
	// Timestamp - use AppendFormat to avoid string allocation
	ts := rec.Time.In(f.location())
	buf.Write(ts.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" [")
	column := LevelColumn(rec.Level)
	if f.DecorateLevel != nil {
		column = f.DecorateLevel(rec.Level, column)
	}
	buf.WriteString(column)
	buf.WriteString("] ")

	if f.IncludeCaller && rec.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(rec.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(rec.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(rec.Message)

	if len(rec.Metadata) > 0 {
		buf.WriteString(metadataSeparator)
		writeMetadata(buf, rec.Metadata)
	}

	buf.WriteByte('\n')
	return nil
}

// writeUnquoted writes s with every double quote removed.
func writeUnquoted(buf *bytes.Buffer, s string) {
	for {
		i := strings.IndexByte(s, '"')
		if i < 0 {
			buf.WriteString(s)
			return
		}
		buf.WriteString(s[:i])
		s = s[i+1:]
	}
}

// FormatMetadata renders md the way LineFormatter does after the
// separator, e.g. "a=1, b=2".
func FormatMetadata(md core.Metadata) string {
	buf := getBuffer()
	defer putBuffer(buf)
	writeMetadata(buf, md)
	return buf.String()
}

func writeMetadata(buf *bytes.Buffer, md core.Metadata) {
	for i, field := range md.Sorted() {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		writeUnquoted(buf, field.Value.String())
	}
}
