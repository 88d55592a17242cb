// Package core defines the shared types used across logsink.
//
// It provides the Level type for severity ordering, the Record type that
// represents a single log event handed to a sink, and the Value type
// for typed metadata values.
//
// Records are plain values owned by whoever emits them. Handlers must
// treat them as read-only; a handler that needs to add metadata (for
// example a composite merging its own entries) works on a copy obtained
// from Record.WithMetadata.
//
// Value encodes scalars into fixed-size numeric fields (Int64, Float64)
// so that ints, bools, durations and times never escape to the heap. The
// Any variant exists as a fallback for arbitrary types and is rendered
// with fmt.
package core
