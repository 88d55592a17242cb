// Package logger is the front-end most programs use. It turns calls like
// Info or Errorf into core.Record values and dispatches them to a
// handler.Handler, typically a file sink, a console sink, or several of
// them combined with handler.Combine.
//
// A Logger is immutable after construction. Its label, default metadata
// and caller setting are fixed by the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(handler.Combine(console, file)).
//	    WithLabel("api").
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// The severity threshold lives on the handler, not on the Logger. Handlers
// never filter by level themselves, so the Logger checks the handler's
// threshold before building a record; filtered-out calls allocate nothing.
//
// Child loggers with extra metadata are created via With:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// There is no package-level default logger. Pass loggers explicitly or
// carry them in a context with NewContext and FromContext.
package logger
