package eval

import (
	"github.com/lucperkins/cel-rust/value"
)

// Expression is the parsed tree the resolver consumes. The evaluator only
// reads it; built-ins receive argument expressions unevaluated and call
// ToValue themselves to control evaluation order and scope.
type Expression interface {
	ToValue(scope Scope) (value.Value, error)
}

// Literal evaluates to its embedded constant.
type Literal struct {
	Value value.Value
}

func (l *Literal) ToValue(_ Scope) (value.Value, error) {
	return l.Value, nil
}

// Lookup resolves an identifier against the scope chain. A name that misses
// the chain but matches a registered function resolves to a function
// reference, so registered callables can be passed around by name.
type Lookup struct {
	Key string
}

func (l *Lookup) ToValue(scope Scope) (value.Value, error) {
	v, ok, err := scope.Get(l.Key)
	if err != nil {
		return nil, err
	}
	if ok {
		return v, nil
	}
	if _, ok := scope.Funcs()[l.Key]; ok {
		return value.Func(l.Key), nil
	}
	return nil, &ErrNoSuchKey{
		Key: l.Key,
	}
}

// Array is a list literal. Items resolve in source order; the first error
// abandons the whole aggregate.
type Array struct {
	Items []Expression
}

func (a *Array) ToValue(scope Scope) (value.Value, error) {
	items := make([]value.Value, 0, len(a.Items))
	for _, item := range a.Items {
		v, err := item.ToValue(scope)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return value.List(items), nil
}

// Object is a map literal. Entries resolve in source order; a resolved key
// outside the key subset fails with *value.ErrUnsupportedKeyType.
type Object struct {
	Entries []Entry
}

type Entry struct {
	Key   Expression
	Value Expression
}

func (o *Object) ToValue(scope Scope) (value.Value, error) {
	entries := make(map[value.Key]value.Value, len(o.Entries))
	for _, entry := range o.Entries {
		kv, err := entry.Key.ToValue(scope)
		if err != nil {
			return nil, err
		}
		key, err := value.ToKey(kv)
		if err != nil {
			return nil, err
		}
		v, err := entry.Value.ToValue(scope)
		if err != nil {
			return nil, err
		}
		entries[key] = v
	}
	return value.NewMapOf(entries), nil
}

// Selector is member access. A key missing from the base map, or a base that
// is not a map at all, is uniformly "absent" so that has() can consume it.
type Selector struct {
	Base Expression
	Key  string
}

func (s *Selector) ToValue(scope Scope) (value.Value, error) {
	base, err := s.Base.ToValue(scope)
	if err != nil {
		return nil, err
	}
	if m, ok := base.(*value.Map); ok {
		if v, ok := m.Get(value.StringKey(s.Key)); ok {
			return v, nil
		}
	}
	return nil, &ErrNoSuchKey{
		Key: s.Key,
	}
}

// Call invokes a registered callable. The receiver, when present, resolves
// eagerly; argument expressions are handed to the callable raw.
type Call struct {
	Target Expression
	Name   string
	Args   []Expression
}

func (c *Call) ToValue(scope Scope) (value.Value, error) {
	fn, err := c.lookupFunc(scope)
	if err != nil {
		return nil, err
	}

	var target value.Value
	if c.Target != nil {
		target, err = c.Target.ToValue(scope)
		if err != nil {
			return nil, err
		}
	}
	return fn(target, c.Args, scope)
}

func (c *Call) lookupFunc(scope Scope) (Function, error) {
	if fn, ok := scope.Funcs()[c.Name]; ok {
		return fn, nil
	}

	// The name may be a scope binding referencing a registered function.
	if v, ok, err := scope.Get(c.Name); err != nil {
		return nil, err
	} else if ok {
		if ref, ok := v.(value.Func); ok {
			if fn, ok := scope.Funcs()[ref.Name()]; ok {
				return fn, nil
			}
		}
	}

	return nil, &ErrFunction{
		Name:    c.Name,
		Message: "unknown function",
	}
}
