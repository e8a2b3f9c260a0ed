package state

import (
	"encoding/json"
	"sort"
	"strconv"
)

// ValueKind identifies the variant stored in a Value.
type ValueKind int

const (
	// KindNull is the absent / empty value.
	KindNull ValueKind = iota
	// KindBool holds a boolean.
	KindBool
	// KindInt holds a 64-bit signed integer.
	KindInt
	// KindDouble holds a 64-bit float.
	KindDouble
	// KindString holds a string.
	KindString
	// KindArray holds an ordered list of values.
	KindArray
	// KindObject holds a string-keyed map of values.
	KindObject
)

func (k ValueKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

// Value is the universal data currency of the engine: a tagged variant over
// null, bool, int, double, string, array and object.
//
// Values are immutable. Operations that appear to modify a tree (see SetPath)
// build new containers along the touched path and share the rest, so a Value
// can be handed out freely without defensive copying.
type Value struct {
	kind ValueKind
	b    bool
	i    int64
	d    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null value. The zero Value is also null.
func Null() Value {
	return Value{}
}

// Bool wraps a boolean.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int wraps an integer.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Double wraps a float.
func Double(d float64) Value {
	return Value{kind: KindDouble, d: d}
}

// String wraps a string.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array wraps a list of values. The input slice is copied.
func Array(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: KindArray, arr: arr}
}

// Object wraps a map of values. The input map is copied.
func Object(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind reports the variant held by v.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload. The second result is false when v is not
// a bool.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// Int returns the integer payload. The second result is false when v is not
// an int.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInt
}

// Float returns a numeric payload widened to float64, accepting both int and
// double values.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindDouble:
		return v.d, true
	default:
		return 0, false
	}
}

// Str returns the string payload. The second result is false when v is not a
// string.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Len returns the number of elements (array) or fields (object), and 0 for
// every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Index returns the i-th array element. The second result is false when v is
// not an array or i is out of range.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Null(), false
	}
	return v.arr[i], true
}

// Field returns the named object field. The second result is false when v is
// not an object or the key is missing.
func (v Value) Field(key string) (Value, bool) {
	if v.kind != KindObject {
		return Null(), false
	}
	val, ok := v.obj[key]
	return val, ok
}

// Items returns the array elements. The slice must not be mutated.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Keys returns the object's field names in sorted order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal reports deep equality between two values. Int and double compare as
// distinct kinds: Int(1) is not equal to Double(1).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindDouble:
		return v.d == other.d
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, val := range v.obj {
			o, ok := other.obj[k]
			if !ok || !val.Equal(o) {
				return false
			}
		}
		return true
	}
	return false
}

// Display converts v to the string used when splicing interpolation results
// into templates: null renders as "", bools as "true"/"false", numbers in
// decimal, strings verbatim. Arrays and objects render as compact JSON.
func (v Value) Display() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindDouble:
		return strconv.FormatFloat(v.d, 'f', -1, 64)
	case KindString:
		return v.s
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// Truthy reports whether v counts as true in a condition position: a true
// bool. Every other value, including non-empty strings, is false.
func (v Value) Truthy() bool {
	return v.kind == KindBool && v.b
}

// FromAny converts a dynamically typed value, as produced by encoding/json or
// yaml.v3 decoding into any, to a Value. Unsupported types map to null.
func FromAny(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case int:
		return Int(int64(x))
	case int64:
		return Int(x)
	case float64:
		// JSON numbers always decode as float64; keep integral values as ints
		// so templates render "5" rather than "5.000000".
		if x == float64(int64(x)) {
			return Int(int64(x))
		}
		return Double(x)
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return Int(i)
		}
		if f, err := x.Float64(); err == nil {
			return Double(f)
		}
		return Null()
	case string:
		return String(x)
	case []any:
		arr := make([]Value, len(x))
		for i, item := range x {
			arr[i] = FromAny(item)
		}
		return Value{kind: KindArray, arr: arr}
	case map[string]any:
		obj := make(map[string]Value, len(x))
		for k, item := range x {
			obj[k] = FromAny(item)
		}
		return Value{kind: KindObject, obj: obj}
	default:
		return Null()
	}
}

// Interface converts v back to dynamically typed data suitable for
// encoding/json marshalling.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindDouble:
		return v.d
	case KindString:
		return v.s
	case KindArray:
		out := make([]any, len(v.arr))
		for i, item := range v.arr {
			out[i] = item.Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, item := range v.obj {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromAny(raw)
	return nil
}
