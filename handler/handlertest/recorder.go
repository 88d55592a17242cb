// Package handlertest provides an in-memory Handler for tests.
package handlertest

import (
	"sync"

	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

// Recorder is a Handler that keeps every record it receives.
type Recorder struct {
	handler.Base
	Name string

	mu      sync.Mutex
	records []core.Record
	// OnHandle, when set, runs after the record has been stored.
	OnHandle func(rec *core.Record)
}

// NewRecorder creates an empty recorder.
func NewRecorder(name string) *Recorder {
	return &Recorder{Name: name}
}

// Handle stores a copy of rec with the recorder's metadata applied.
func (r *Recorder) Handle(rec *core.Record) {
	rec = r.Apply(rec)
	r.mu.Lock()
	r.records = append(r.records, *rec)
	r.mu.Unlock()
	if r.OnHandle != nil {
		r.OnHandle(rec)
	}
}

// Records returns a copy of the records received so far.
func (r *Recorder) Records() []core.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]core.Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records received.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Last returns the most recent record.
func (r *Recorder) Last() (core.Record, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.records) == 0 {
		return core.Record{}, false
	}
	return r.records[len(r.records)-1], true
}

// Reset drops all stored records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

var _ handler.Handler = (*Recorder)(nil)
