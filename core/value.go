package core

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// ValueType represents the type of a metadata value
type ValueType uint8

const (
	StringType ValueType = iota
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	StringerType
	AnyType
)

// Value is a string-renderable metadata value.
type Value struct {
	Type    ValueType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// StringValue creates a string value
func StringValue(s string) Value {
	return Value{Type: StringType, Str: s}
}

// Int64Value creates an integer value
func Int64Value(i int64) Value {
	return Value{Type: Int64Type, Int64: i}
}

// Float64Value creates a float value
func Float64Value(f float64) Value {
	return Value{Type: Float64Type, Float64: f}
}

// BoolValue creates a bool value
func BoolValue(b bool) Value {
	v := Value{Type: BoolType}
	if b {
		v.Int64 = 1
	}
	return v
}

// TimeValue creates a time value
func TimeValue(t time.Time) Value {
	return Value{Type: TimeType, Int64: t.UnixNano()}
}

// DurationValue creates a duration value
func DurationValue(d time.Duration) Value {
	return Value{Type: DurationType, Int64: int64(d)}
}

// ErrorValue creates an error value. A nil error renders as "<nil>".
func ErrorValue(err error) Value {
	if err == nil {
		return Value{Type: ErrorType, Str: "<nil>"}
	}
	return Value{Type: ErrorType, Str: err.Error()}
}

// AnyValue picks the most specific Value variant for v.
func AnyValue(v interface{}) Value {
	switch x := v.(type) {
	case Value:
		return x
	case string:
		return StringValue(x)
	case int:
		return Int64Value(int64(x))
	case int8:
		return Int64Value(int64(x))
	case int16:
		return Int64Value(int64(x))
	case int32:
		return Int64Value(int64(x))
	case int64:
		return Int64Value(x)
	case uint8:
		return Int64Value(int64(x))
	case uint16:
		return Int64Value(int64(x))
	case uint32:
		return Int64Value(int64(x))
	case float32:
		return Float64Value(float64(x))
	case float64:
		return Float64Value(x)
	case bool:
		return BoolValue(x)
	case time.Time:
		return TimeValue(x)
	case time.Duration:
		return DurationValue(x)
	case error:
		return ErrorValue(x)
	case fmt.Stringer:
		return Value{Type: StringerType, Any: x}
	default:
		return Value{Type: AnyType, Any: v}
	}
}

// String returns the string representation of the value
func (v Value) String() string {
	switch v.Type {
	case StringType, ErrorType:
		return v.Str
	case Int64Type:
		return strconv.FormatInt(v.Int64, 10)
	case Float64Type:
		return strconv.FormatFloat(v.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.FormatBool(v.Int64 == 1)
	case TimeType:
		return time.Unix(0, v.Int64).Format(time.RFC3339Nano)
	case DurationType:
		return time.Duration(v.Int64).String()
	case StringerType:
		if s, ok := v.Any.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(v.Any)
	case AnyType:
		return fmt.Sprint(v.Any)
	default:
		return ""
	}
}

// Interface returns the value as a plain Go value.
func (v Value) Interface() interface{} {
	switch v.Type {
	case StringType, ErrorType:
		return v.Str
	case Int64Type:
		return v.Int64
	case Float64Type:
		return v.Float64
	case BoolType:
		return v.Int64 == 1
	case TimeType:
		return time.Unix(0, v.Int64)
	case DurationType:
		return time.Duration(v.Int64)
	default:
		return v.Any
	}
}

// Field is a single metadata entry.
type Field struct {
	Key   string
	Value Value
}

// Metadata maps unique keys to values.
type Metadata map[string]Value

// Clone returns a shallow copy of m. A nil map clones to nil.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Merge returns m overlaid with over; entries in over win. The receiver
// is never modified. When one side is empty the other is returned as is.
func (m Metadata) Merge(over Metadata) Metadata {
	if len(over) == 0 {
		return m
	}
	if len(m) == 0 {
		return over
	}
	out := make(Metadata, len(m)+len(over))
	for k, v := range m {
		out[k] = v
	}
	for k, v := range over {
		out[k] = v
	}
	return out
}

// Sorted returns the entries ordered by key (byte-wise ascending).
func (m Metadata) Sorted() []Field {
	if len(m) == 0 {
		return nil
	}
	fields := make([]Field, 0, len(m))
	for k, v := range m {
		fields = append(fields, Field{Key: k, Value: v})
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Key < fields[j].Key
	})
	return fields
}

// FromFields builds Metadata from fields; later duplicates win.
func FromFields(fields ...Field) Metadata {
	if len(fields) == 0 {
		return nil
	}
	m := make(Metadata, len(fields))
	for _, f := range fields {
		m[f.Key] = f.Value
	}
	return m
}
