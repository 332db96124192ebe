package value

import "strconv"

var (
	True  = Bool(true)
	False = Bool(false)
)

type Bool bool

func (b Bool) Kind() Kind {
	return BoolKind
}

func (b Bool) NativeValue() any {
	return (bool)(b)
}

func (b Bool) String() string {
	return strconv.FormatBool((bool)(b))
}
