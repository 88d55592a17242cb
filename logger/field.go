package logger

import (
	"time"

	"github.com/philipp01105/logsink/core"
)

// Field helper functions for convenience

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Value: core.StringValue(val)}
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Value: core.Int64Value(int64(val))}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Value: core.Int64Value(val)}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Value: core.Float64Value(val)}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	return core.Field{Key: key, Value: core.BoolValue(val)}
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Value: core.TimeValue(val)}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Value: core.DurationValue(val)}
}

// Err creates an error field under the "error" key
func Err(err error) core.Field {
	return core.Field{Key: "error", Value: core.ErrorValue(err)}
}

// Any creates a field with any value
func Any(key string, val interface{}) core.Field {
	return core.Field{Key: key, Value: core.AnyValue(val)}
}
