package benchmark

import (
	"github.com/philipp01105/logsink/core"
	"github.com/philipp01105/logsink/handler"
)

// noopHandler merges metadata like a real sink but never formats or writes.
type noopHandler struct {
	handler.Base
	last int
}

func newNoopHandler() *noopHandler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(rec *core.Record) {
	rec = h.Apply(rec)
	h.last = len(rec.Message) + len(rec.Metadata)
}
