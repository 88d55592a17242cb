package handler

import (
	"fmt"

	"github.com/philipp01105/logsink/core"
)

// MultiHandler forwards every record to an ordered list of handlers.
// Members are shared, not owned: MultiHandler never closes them.
type MultiHandler struct {
	Base
	handlers []Handler
	onError  ErrorHandler
}

// Combine builds a MultiHandler that forwards to handlers in the given
// order. A nested MultiHandler without metadata or ErrorHandler of its own
// is flattened into the list; one that carries either is kept as a single
// member so its records are unchanged. Nil handlers are skipped;
// duplicates are kept.
func Combine(handlers ...Handler) *MultiHandler {
	flat := make([]Handler, 0, len(handlers))
	for _, h := range handlers {
		switch v := h.(type) {
		case nil:
		case *MultiHandler:
			switch {
			case v == nil:
			case v.flattenable():
				flat = append(flat, v.handlers...)
			default:
				flat = append(flat, v)
			}
		default:
			flat = append(flat, h)
		}
	}
	return &MultiHandler{handlers: flat}
}

// flattenable reports whether m adds nothing to the records it forwards,
// so its members can be spliced into another composite.
func (m *MultiHandler) flattenable() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.metadata) == 0 && m.onError == nil
}

// NewMultiHandler creates a new multi-handler. It is an alias for Combine.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	return Combine(handlers...)
}

// SetErrorHandler installs the hook that receives member panics. It must
// be called before the handler is shared between goroutines.
func (m *MultiHandler) SetErrorHandler(fn ErrorHandler) {
	m.onError = fn
}

// Handlers returns a copy of the member list in forwarding order.
func (m *MultiHandler) Handlers() []Handler {
	out := make([]Handler, len(m.handlers))
	copy(out, m.handlers)
	return out
}

// Len returns the number of members.
func (m *MultiHandler) Len() int {
	return len(m.handlers)
}

// Handle sends the record to every member in order. A member that panics
// does not stop later members from receiving the record.
func (m *MultiHandler) Handle(rec *core.Record) {
	rec = m.Apply(rec)
	for i, h := range m.handlers {
		m.forward(i, h, rec)
	}
}

func (m *MultiHandler) forward(i int, h Handler, rec *core.Record) {
	defer func() {
		if p := recover(); p != nil {
			m.onError.Report(fmt.Errorf("handler %d (%T) panicked: %v", i, h, p))
		}
	}()
	h.Handle(rec)
}
