package logger

import "context"

type contextKey struct{}

var nop = &Logger{}

// Nop returns a logger without a handler; every call is a no-op.
func Nop() *Logger {
	return nop
}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or Nop when there is none.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(contextKey{}).(*Logger); ok && l != nil {
		return l
	}
	return nop
}
