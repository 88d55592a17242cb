package formatter

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/logsink/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format renders a record into a complete, newline-terminated line
	Format(rec *core.Record) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time layout (default depends on the formatter)
	TimestampFormat string
	// Location is the zone timestamps are rendered in (default: time.Local)
	Location *time.Location
	// DecorateLevel, when set, wraps the rendered level column. Used by
	// the console handler to colorize levels.
	DecorateLevel func(level core.Level, column string) string
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatWith runs a BufferFormatter against a pooled buffer and returns
// a copy of the result.
func formatWith(f BufferFormatter, rec *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	if err := f.FormatRecord(rec, buf); err != nil {
		return nil, err
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}
