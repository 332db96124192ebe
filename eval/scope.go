package eval

import (
	"github.com/lucperkins/cel-rust/value"
)

// Scope is a chain of binding frames. Get resolves in the newest frame first
// and walks outward; Push derives a child frame without touching the parent.
// The function registry rides on the root frame so that callables are
// reachable from any scope handed to an expression.
type Scope interface {
	Get(key string) (value.Value, bool, error)
	Funcs() Funcs
	Push(lookup ScopeLookuper) Scope
}

type ScopeLookuper interface {
	ScopeLookup(key string) (value.Value, bool, error)
}

// ScopeData holds host bindings. Native values are converted lazily on
// lookup, so hosts can populate it with plain Go primitives and collections.
type ScopeData map[string]any

func (m ScopeData) ScopeLookup(key string) (value.Value, bool, error) {
	ret, ok := m[key]
	if !ok {
		return nil, false, nil
	}
	return value.NewValue(ret), true, nil
}

// NewScope creates a root scope carrying the given function registry. A nil
// registry means DefaultFuncs.
func NewScope(funcs Funcs) Scope {
	if funcs == nil {
		funcs = DefaultFuncs()
	}
	return rootScope{
		funcs: funcs,
	}
}

type rootScope struct {
	funcs Funcs
}

func (r rootScope) Get(key string) (value.Value, bool, error) {
	return nil, false, nil
}

func (r rootScope) Funcs() Funcs {
	return r.funcs
}

func (r rootScope) Push(lookup ScopeLookuper) Scope {
	return scopePush(r, lookup)
}

type nested struct {
	parent Scope
	lookup ScopeLookuper
}

func (n nested) Get(key string) (value.Value, bool, error) {
	v, ok, err := n.lookup.ScopeLookup(key)
	if err != nil {
		return nil, false, err
	}
	if ok {
		return v, ok, nil
	}
	return n.parent.Get(key)
}

func (n nested) Funcs() Funcs {
	return n.parent.Funcs()
}

func (n nested) Push(lookup ScopeLookuper) Scope {
	return scopePush(n, lookup)
}

func scopePush(parent Scope, lookup ScopeLookuper) Scope {
	if lookup == nil {
		lookup = ScopeData(nil)
	}
	return nested{
		parent: parent,
		lookup: lookup,
	}
}
