package value

// Func is a reference to a named callable in the host's function registry.
// Identifiers that name a registered function resolve to one of these.
type Func string

func (f Func) Kind() Kind {
	return FuncKind
}

func (f Func) NativeValue() any {
	return (string)(f)
}

func (f Func) String() string {
	return (string)(f) + "()"
}

func (f Func) Name() string {
	return (string)(f)
}
