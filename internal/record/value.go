package record

import (
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindNull is the JSON null scalar. It is also the zero Value.
	KindNull Kind = iota
	// KindString is a string scalar.
	KindString
	// KindNumber is a numeric scalar.
	KindNumber
	// KindBool is a boolean scalar.
	KindBool
	// KindNested is an object-valued field (JSON objects and arrays).
	KindNested
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// nestedPlaceholder is the display text of a nested value in a flat context.
const nestedPlaceholder = "{...}"

// Value is a tagged union: a scalar (string, number, bool, null) or a nested
// ordered object.
type Value struct {
	kind   Kind
	str    string
	num    float64
	flag   bool
	nested *Object
}

// Null returns the null scalar.
func Null() Value { return Value{} }

// String returns a string scalar.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric scalar.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool returns a boolean scalar.
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Nested wraps an object. A nil object is treated as an empty one.
func Nested(obj *Object) Value {
	if obj == nil {
		obj = NewObject()
	}
	return Value{kind: KindNested, nested: obj}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// IsNested reports whether v is an object-valued (non-null) value.
func (v Value) IsNested() bool { return v.kind == KindNested }

// IsScalar reports whether v is a scalar, including null.
func (v Value) IsScalar() bool { return v.kind != KindNested }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Str returns the string payload, valid when Kind is KindString.
func (v Value) Str() string { return v.str }

// Num returns the numeric payload, valid when Kind is KindNumber.
func (v Value) Num() float64 { return v.num }

// Flag returns the boolean payload, valid when Kind is KindBool.
func (v Value) Flag() bool { return v.flag }

// Object returns the nested object, or nil for scalars.
func (v Value) Object() *Object { return v.nested }

// String renders v for display. Null renders empty and nested values render
// as a short placeholder.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindNested:
		return nestedPlaceholder
	default:
		return ""
	}
}

// Equal reports deep equality.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.flag == other.flag
	case KindNested:
		return v.nested.Equal(other.nested)
	default:
		return true
	}
}
