package handler

import (
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/philipp01105/logsink/core"
)

// ErrClosed is reported when a record reaches a handler that has been closed.
var ErrClosed = errors.New("handler is closed")

// Handler is the capability set every sink implements.
//
// Handle never fails from the caller's point of view: a handler that
// cannot persist a record drops it and reports the cause through its
// ErrorHandler, if one is configured. Handle does not consult Level;
// dispatching only records at or above the threshold is the caller's job.
type Handler interface {
	// Metadata returns the handler-level metadata entry for key
	Metadata(key string) (core.Value, bool)
	// SetMetadata sets a handler-level metadata entry that is merged into
	// every record the handler processes
	SetMetadata(key string, value core.Value)
	// Level returns the minimum severity callers should dispatch
	Level() core.Level
	// SetLevel sets the minimum severity
	SetLevel(level core.Level)
	// Handle persists or forwards a record
	Handle(rec *core.Record)
}

// ErrorHandler receives failures that Handle cannot return.
type ErrorHandler func(err error)

// Report calls fn with err. It is a no-op on a nil ErrorHandler.
func (fn ErrorHandler) Report(err error) {
	if fn != nil && err != nil {
		fn(err)
	}
}

// ZapErrorHandler returns an ErrorHandler that logs failures to l at warn level.
func ZapErrorHandler(l *zap.Logger) ErrorHandler {
	return func(err error) {
		l.Warn("log handler failure", zap.Error(err))
	}
}

// Base implements the metadata and level half of Handler. Embed it in a
// concrete handler and call Apply from Handle. The zero value is ready to
// use with an info threshold and no metadata.
type Base struct {
	mu       sync.RWMutex
	metadata core.Metadata
	// level is stored relative to InfoLevel so the zero value means info
	level atomic.Int32
}

// Metadata returns the handler-level metadata entry for key
func (b *Base) Metadata(key string) (core.Value, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.metadata[key]
	return v, ok
}

// SetMetadata sets a handler-level metadata entry
func (b *Base) SetMetadata(key string, value core.Value) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.metadata == nil {
		b.metadata = make(core.Metadata)
	}
	b.metadata[key] = value
}

// DeleteMetadata removes a handler-level metadata entry
func (b *Base) DeleteMetadata(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.metadata, key)
}

// MetadataSnapshot returns a copy of the handler-level metadata
func (b *Base) MetadataSnapshot() core.Metadata {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.metadata.Clone()
}

// Level returns the minimum severity
func (b *Base) Level() core.Level {
	return core.Level(b.level.Load() + int32(core.InfoLevel))
}

// SetLevel sets the minimum severity
func (b *Base) SetLevel(level core.Level) {
	b.level.Store(int32(level) - int32(core.InfoLevel))
}

// Apply returns rec with the handler-level metadata merged underneath the
// record's own entries. rec is returned unchanged when there is nothing
// to merge; otherwise a copy is returned and rec is left untouched.
func (b *Base) Apply(rec *core.Record) *core.Record {
	b.mu.RLock()
	if len(b.metadata) == 0 {
		b.mu.RUnlock()
		return rec
	}
	merged := b.metadata.Merge(rec.Metadata)
	if len(rec.Metadata) == 0 {
		// Merge handed back our own map; detach it before unlocking.
		merged = merged.Clone()
	}
	b.mu.RUnlock()
	return rec.WithMetadata(merged)
}

// Enabled reports whether a record at level should be dispatched to h.
func Enabled(h Handler, level core.Level) bool {
	return level >= h.Level()
}
