package value

import (
	"strconv"
	"unicode/utf8"
)

type String string

func (s String) Kind() Kind {
	return StringKind
}

func (s String) NativeValue() any {
	return (string)(s)
}

func (s String) String() string {
	return strconv.Quote((string)(s))
}

// Len counts code points, not bytes.
func (s String) Len() int64 {
	return int64(utf8.RuneCountInString((string)(s)))
}
