package value

import "fmt"

const (
	NullKind   = Kind("null")
	BoolKind   = Kind("bool")
	IntKind    = Kind("int")
	UintKind   = Kind("uint")
	FloatKind  = Kind("float")
	StringKind = Kind("string")
	BytesKind  = Kind("bytes")
	ListKind   = Kind("list")
	MapKind    = Kind("map")
	FuncKind   = Kind("func")
)

type Kind string

// Value is the runtime representation of every expression result. Values are
// immutable once constructed; List and Map instances are shared by aliasing,
// never copied.
type Value interface {
	Kind() Kind
	NativeValue() any
	String() string
}

// NewValue converts a native Go value into a Value. Existing Values pass
// through unchanged.
func NewValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return NullValue
	case Value:
		return x
	case bool:
		return Bool(x)
	case int:
		return Int(x)
	case int8:
		return Int(x)
	case int16:
		return Int(x)
	case int32:
		return Int(x)
	case int64:
		return Int(x)
	case uint:
		return Uint(x)
	case uint8:
		return Uint(x)
	case uint16:
		return Uint(x)
	case uint32:
		return Uint(x)
	case uint64:
		return Uint(x)
	case float32:
		return Float(x)
	case float64:
		return Float(x)
	case string:
		return String(x)
	case []byte:
		return Bytes(x)
	case []any:
		return NewList(x)
	case []Value:
		return List(x)
	case map[string]any:
		return NewMap(x)
	default:
		panic(fmt.Sprintf("can not convert type %T to a value", v))
	}
}

// Equal reports strict per-variant equality. Values of different kinds are
// never equal, including Int, Uint, and Float values holding the same number.
func Equal(left, right Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case *Null:
		return true
	case Bool:
		return l == right.(Bool)
	case Int:
		return l == right.(Int)
	case Uint:
		return l == right.(Uint)
	case Float:
		return l == right.(Float)
	case String:
		return l == right.(String)
	case Bytes:
		r := right.(Bytes)
		if len(l) != len(r) {
			return false
		}
		for i := range l {
			if l[i] != r[i] {
				return false
			}
		}
		return true
	case List:
		r := right.(List)
		if len(l) != len(r) {
			return false
		}
		for i := range l {
			if !Equal(l[i], r[i]) {
				return false
			}
		}
		return true
	case *Map:
		return l.equals(right.(*Map))
	case Func:
		return l == right.(Func)
	}
	return false
}
