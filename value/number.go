package value

import "strconv"

type Int int64

func (n Int) Kind() Kind {
	return IntKind
}

func (n Int) NativeValue() any {
	return (int64)(n)
}

func (n Int) String() string {
	return strconv.FormatInt((int64)(n), 10)
}

type Uint uint64

func (n Uint) Kind() Kind {
	return UintKind
}

func (n Uint) NativeValue() any {
	return (uint64)(n)
}

func (n Uint) String() string {
	return strconv.FormatUint((uint64)(n), 10) + "u"
}

type Float float64

func (n Float) Kind() Kind {
	return FloatKind
}

func (n Float) NativeValue() any {
	return (float64)(n)
}

func (n Float) String() string {
	return strconv.FormatFloat((float64)(n), 'g', -1, 64)
}
