package value

import "strings"

type List []Value

func NewList(objs []any) List {
	l := make([]Value, 0, len(objs))
	for _, obj := range objs {
		l = append(l, NewValue(obj))
	}
	return l
}

func (l List) Kind() Kind {
	return ListKind
}

func (l List) NativeValue() any {
	result := make([]any, 0, len(l))
	for _, v := range l {
		result = append(result, v.NativeValue())
	}
	return result
}

func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, v := range l {
		parts = append(parts, v.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l List) Len() int64 {
	return int64(len(l))
}

func (l List) Contains(v Value) bool {
	for _, item := range l {
		if Equal(item, v) {
			return true
		}
	}
	return false
}
