package compare

import (
	"math"
	"reflect"
)

// Value is a tagged value ready for comparison. The kind is decided once,
// when the Value is built, so comparators never probe runtime types inline.
type Value struct {
	kind Kind
	rep  numRep
	num  float64
	i    int64
	u    uint64
	text string
	raw  any
}

// numRep records how a KindNumber payload was given, so integers compare
// exactly instead of through float64.
type numRep uint8

const (
	repFloat numRep = iota
	repSigned
	repUnsigned
)

var _ Comparable[Value] = Value{}

// Number returns a Value of KindNumber.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n, raw: n}
}

// Int returns a Value of KindNumber holding an exact signed integer.
func Int(n int64) Value {
	return Value{kind: KindNumber, rep: repSigned, num: float64(n), i: n, raw: n}
}

// Uint returns a Value of KindNumber holding an exact unsigned integer.
func Uint(n uint64) Value {
	return Value{kind: KindNumber, rep: repUnsigned, num: float64(n), u: n, raw: n}
}

func withRaw(v Value, raw any) Value {
	v.raw = raw

	return v
}

// Text returns a Value of KindText.
func Text(s string) Value {
	return Value{kind: KindText, text: s, raw: s}
}

// Generic returns a Value of KindGeneric wrapping v as-is, even if v is a
// number or a string.
func Generic(v any) Value {
	return Value{kind: KindGeneric, raw: v}
}

// Missing is the Value used for absent fields. It is a generic nil.
func Missing() Value {
	return Value{kind: KindGeneric}
}

// Of classifies an arbitrary value. Numeric kinds (including named types
// whose underlying type is numeric) become KindNumber, string kinds become
// KindText, and everything else becomes KindGeneric.
func Of(v any) Value {
	switch val := v.(type) {
	case nil:
		return Missing()
	case Value:
		return val
	case float64:
		return Number(val)
	case float32:
		return Number(float64(val))
	case int:
		return withRaw(Int(int64(val)), v)
	case int64:
		return Int(val)
	case int32:
		return withRaw(Int(int64(val)), v)
	case string:
		return Text(val)
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return withRaw(Int(rv.Int()), v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return withRaw(Uint(rv.Uint()), v)
	case reflect.Float32, reflect.Float64:
		return Value{kind: KindNumber, num: rv.Float(), raw: v}
	case reflect.String:
		return Value{kind: KindText, text: rv.String(), raw: v}
	default:
		return Generic(v)
	}
}

// Kind returns the comparison kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the numeric payload, rounded to float64 for integers beyond
// 2^53. Only meaningful for KindNumber.
func (v Value) Float() float64 {
	return v.num
}

// Str returns the text payload. Only meaningful for KindText.
func (v Value) Str() string {
	return v.text
}

// Any returns the value the Value was built from.
func (v Value) Any() any {
	return v.raw
}

// IsNaN reports whether v is a number that is NaN.
func (v Value) IsNaN() bool {
	return v.kind == KindNumber && math.IsNaN(v.num)
}

// Equals reports strict equality: same kind and same payload. NaN is never
// equal to anything, including itself. Generic values are equal when the
// generic comparator ranks them the same.
func (v Value) Equals(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNumber:
		if v.IsNaN() || other.IsNaN() {
			return false
		}

		return numbers(v, other, false) == 0
	case KindText:
		return v.text == other.text
	default:
		return Any(v.raw, other.raw) == 0
	}
}
