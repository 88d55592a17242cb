// Package formatter defines how records are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// BufferFormatter, which writes into a caller-owned bytes.Buffer.
// Handlers check for BufferFormatter at construction time and prefer it
// when available, so the file handler can format straight into a buffer
// it reuses under its write lock.
//
// LineFormatter produces the human-readable line format
//
//	15:04:05.000 [INFO ] ready → port=8080
//
// with a fixed five-character level column, key-sorted metadata and
// double quotes stripped from metadata values. JSONFormatter delegates to
// zap's JSON encoder and emits one object per line.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
