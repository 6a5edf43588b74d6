package gelf

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind discriminates the closed set of wire value types. GELF additional
// fields carry strings and numbers only, so everything else coerces to a
// string at construction time.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindInt
	KindFloat
)

// Value is a tagged variant holding one additional-field value. The zero
// Value is Null, which downstream means "omit this field".
type Value struct {
	kind Kind
	str  string
	num  int64
	flt  float64
}

// Null is the explicit omission value.
var Null = Value{}

// StringValue returns a string Value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue returns an integer Value.
func IntValue(i int64) Value { return Value{kind: KindInt, num: i} }

// FloatValue returns a floating-point Value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, flt: f} }

// ValueOf coerces an arbitrary Go value into the closed wire variant.
// Integers and floats keep their numeric kind; nil maps to Null; booleans and
// everything else take their textual form.
func ValueOf(v any) Value {
	switch val := v.(type) {
	case nil:
		return Null
	case Value:
		return val
	case string:
		return StringValue(val)
	case bool:
		return StringValue(strconv.FormatBool(val))
	case int:
		return IntValue(int64(val))
	case int8:
		return IntValue(int64(val))
	case int16:
		return IntValue(int64(val))
	case int32:
		return IntValue(int64(val))
	case int64:
		return IntValue(val)
	case uint:
		return IntValue(int64(val))
	case uint8:
		return IntValue(int64(val))
	case uint16:
		return IntValue(int64(val))
	case uint32:
		return IntValue(int64(val))
	case uint64:
		if val > math.MaxInt64 {
			return StringValue(strconv.FormatUint(val, 10))
		}
		return IntValue(int64(val))
	case float32:
		return FloatValue(float64(val))
	case float64:
		return FloatValue(val)
	case time.Duration:
		return StringValue(val.String())
	case time.Time:
		return StringValue(val.UTC().Format(time.RFC3339Nano))
	case error:
		return StringValue(val.Error())
	case fmt.Stringer:
		return StringValue(val.String())
	default:
		return StringValue(fmt.Sprint(val))
	}
}

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value requests omission.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Int returns the integer payload. It is meaningful only for KindInt.
func (v Value) Int() int64 { return v.num }

// Float returns the floating-point payload. It is meaningful only for KindFloat.
func (v Value) Float() float64 { return v.flt }

// String returns the textual form of the value.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.flt, 'g', -1, 64)
	default:
		return "<null>"
	}
}

// Any returns the payload as a plain Go value for JSON encoding.
func (v Value) Any() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.num
	case KindFloat:
		return v.flt
	default:
		return nil
	}
}

// Equal reports whether two values carry the same kind and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.num == o.num
	case KindFloat:
		return v.flt == o.flt
	default:
		return true
	}
}

// Field is one named additional-field value.
type Field struct {
	Key   string
	Value Value
}

// String builds a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: StringValue(value)}
}

// Int builds an integer field.
func Int(key string, value int64) Field {
	return Field{Key: key, Value: IntValue(value)}
}

// Float builds a floating-point field.
func Float(key string, value float64) Field {
	return Field{Key: key, Value: FloatValue(value)}
}

// NullField builds an explicit omission request for key.
func NullField(key string) Field {
	return Field{Key: key, Value: Null}
}

// Any builds a field by coercing an arbitrary value.
func Any(key string, value any) Field {
	return Field{Key: key, Value: ValueOf(value)}
}
