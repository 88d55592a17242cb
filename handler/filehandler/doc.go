// Package filehandler provides a handler that appends formatted records
// to a file, one line per record.
//
// NewFileHandler creates every missing parent directory, opens the file
// in append mode (creating it when needed) and positions at its end.
// Construction is all-or-nothing: on failure no handler is returned and
// the error is an *OpenError.
//
// Handle serializes format-and-write under a mutex so concurrent callers
// never interleave bytes of different lines. Each line reaches the file
// in a single Write call without user-space buffering; set SyncOnWrite
// to additionally fsync after every line. Close syncs and closes the
// file. Write failures are counted in Stats and passed to the
// configured ErrorHandler, never returned from Handle.
package filehandler
