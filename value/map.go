package value

import (
	"fmt"
	"sort"
	"strings"
)

// Key is the restricted subset of Value variants usable as map keys. It is a
// comparable struct so it can index a native Go map directly.
type Key struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	s    string
}

// ToKey converts a Value into a map Key. Only Bool, Int, Uint, and String
// values are convertible; anything else fails with *ErrUnsupportedKeyType.
func ToKey(v Value) (Key, error) {
	switch x := v.(type) {
	case Bool:
		return Key{kind: BoolKind, b: (bool)(x)}, nil
	case Int:
		return Key{kind: IntKind, i: (int64)(x)}, nil
	case Uint:
		return Key{kind: UintKind, u: (uint64)(x)}, nil
	case String:
		return Key{kind: StringKind, s: (string)(x)}, nil
	}
	return Key{}, &ErrUnsupportedKeyType{
		Value: v,
	}
}

func StringKey(s string) Key {
	return Key{kind: StringKind, s: s}
}

func (k Key) Kind() Kind {
	return k.kind
}

// Value converts the key back into the Value it was built from.
func (k Key) Value() Value {
	switch k.kind {
	case BoolKind:
		return Bool(k.b)
	case IntKind:
		return Int(k.i)
	case UintKind:
		return Uint(k.u)
	default:
		return String(k.s)
	}
}

type ErrUnsupportedKeyType struct {
	Value Value
}

func (e *ErrUnsupportedKeyType) Error() string {
	return fmt.Sprintf("unsupported key type: %s", e.Value.Kind())
}

type Map struct {
	entries map[Key]Value
}

func NewMap(data map[string]any) *Map {
	entries := make(map[Key]Value, len(data))
	for k, v := range data {
		entries[StringKey(k)] = NewValue(v)
	}
	return &Map{
		entries: entries,
	}
}

func NewMapOf(entries map[Key]Value) *Map {
	return &Map{
		entries: entries,
	}
}

func (m *Map) Kind() Kind {
	return MapKind
}

func (m *Map) Get(k Key) (Value, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *Map) Has(k Key) bool {
	_, ok := m.entries[k]
	return ok
}

// Len is the entry count.
func (m *Map) Len() int64 {
	return int64(len(m.entries))
}

func (m *Map) NativeValue() any {
	result := make(map[any]any, len(m.entries))
	for k, v := range m.entries {
		result[k.Value().NativeValue()] = v.NativeValue()
	}
	return result
}

func (m *Map) String() string {
	parts := make([]string, 0, len(m.entries))
	for k, v := range m.entries {
		parts = append(parts, k.Value().String()+": "+v.String())
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *Map) equals(right *Map) bool {
	if len(m.entries) != len(right.entries) {
		return false
	}
	for k, v := range m.entries {
		rv, ok := right.entries[k]
		if !ok || !Equal(v, rv) {
			return false
		}
	}
	return true
}
