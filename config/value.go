package config

import (
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds. KindAbsent is the zero value and marks a missing key.
const (
	KindAbsent Kind = iota
	KindString
	KindBool
	KindInt
	KindFloat
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a single configuration value: a string, boolean, integer or float,
// or Absent when the key is not present.
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
	flag bool
}

// Absent is the value returned for keys that are not present.
//
//nolint:gochecknoglobals // immutable zero value used as a marker.
var Absent = Value{}

// String wraps s.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool wraps b.
func Bool(b bool) Value {
	return Value{kind: KindBool, flag: b}
}

// Int wraps n.
func Int(n int64) Value {
	return Value{kind: KindInt, num: n}
}

// Float wraps f.
func Float(f float64) Value {
	return Value{kind: KindFloat, flt: f}
}

// ValueOf converts a decoded scalar into a Value.
// Strings, booleans, integers of any width and floats are accepted; anything
// else (nil, lists, nested maps) yields ErrUnsupportedValue.
func ValueOf(raw any) (Value, error) {
	switch typed := raw.(type) {
	case Value:
		return typed, nil
	case string:
		return String(typed), nil
	case bool:
		return Bool(typed), nil
	case int:
		return Int(int64(typed)), nil
	case int8:
		return Int(int64(typed)), nil
	case int16:
		return Int(int64(typed)), nil
	case int32:
		return Int(int64(typed)), nil
	case int64:
		return Int(typed), nil
	case uint:
		return uintValue(uint64(typed))
	case uint8:
		return Int(int64(typed)), nil
	case uint16:
		return Int(int64(typed)), nil
	case uint32:
		return Int(int64(typed)), nil
	case uint64:
		return uintValue(typed)
	case float32:
		return Float(float64(typed)), nil
	case float64:
		return Float(typed), nil
	default:
		return Absent, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}

func uintValue(n uint64) (Value, error) {
	if n > math.MaxInt64 {
		return Absent, fmt.Errorf("%w: integer %d overflows int64", ErrUnsupportedValue, n)
	}

	return Int(int64(n)), nil
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Present reports whether v holds a value.
func (v Value) Present() bool {
	return v.kind != KindAbsent
}

// Truthy reports whether v counts as enabled when used as a flag:
// boolean true, a non-zero number or a non-empty string. Absent is false.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.flag
	case KindInt:
		return v.num != 0
	case KindFloat:
		return v.flt != 0
	case KindString:
		return v.str != ""
	default:
		return false
	}
}

// AsString returns the string held by v, if any.
func (v Value) AsString() (string, bool) {
	return v.str, v.kind == KindString
}

// AsBool returns the boolean held by v, if any.
func (v Value) AsBool() (bool, bool) {
	return v.flag, v.kind == KindBool
}

// AsInt returns the integer held by v, if any.
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns v as a float. Integers are widened.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.flt, true
	case KindInt:
		return float64(v.num), true
	default:
		return 0, false
	}
}

// Any returns the native Go value held by v, or nil when absent.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return v.flag
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	default:
		return nil
	}
}

// String renders v for display. Absent renders as "<absent>".
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	default:
		return "<absent>"
	}
}
