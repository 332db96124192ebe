package value

import "fmt"

type Bytes []byte

func (b Bytes) Kind() Kind {
	return BytesKind
}

func (b Bytes) NativeValue() any {
	return ([]byte)(b)
}

func (b Bytes) String() string {
	return fmt.Sprintf("b%q", (string)(b))
}

func (b Bytes) Len() int64 {
	return int64(len(b))
}

func (b Bytes) Contains(c byte) bool {
	for _, x := range b {
		if x == c {
			return true
		}
	}
	return false
}
