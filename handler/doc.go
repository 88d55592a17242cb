// Package handler provides the Handler interface shared by every sink and
// the MultiHandler that fans one record out to several sinks.
//
// A Handler carries its own metadata, merged into every record it
// handles, and a minimum level. The level is advisory: Handle formats
// and persists whatever it is given, and callers such as the logger
// package are expected to check Enabled before dispatching. Base
// implements the metadata and level half of the interface for embedding.
//
// Handle has no error return. Sinks that can fail accept an ErrorHandler
// hook and count failures in Stats; ZapErrorHandler routes such failures
// to a zap logger.
//
// Built-in handlers:
//
//   - filehandler.FileHandler appends formatted lines to a file.
//   - consolehandler.ConsoleHandler writes formatted lines to any io.Writer
//     (default: stdout), optionally colorizing the level.
//   - MultiHandler, built with Combine, forwards each record to its
//     members in order. Combining MultiHandlers flattens them unless the
//     nested one carries its own metadata or ErrorHandler.
//
// The bridge package adapts slog, zap, zerolog and logrus so that records
// produced by those frameworks reach any Handler.
package handler
