// Package bridge lets records produced by other logging frameworks reach
// a handler.Handler.
//
//   - SlogHandler implements log/slog.Handler.
//   - ZapCore implements zapcore.Core for go.uber.org/zap.
//   - ZerologWriter is an io.Writer / zerolog.LevelWriter for rs/zerolog.
//   - LogrusHook is a logrus.Hook for sirupsen/logrus.
//
// Each bridge maps the framework's levels onto core.Level and only
// dispatches records at or above the target handler's level, since
// handlers themselves never filter.
package bridge
