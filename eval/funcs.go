package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucperkins/cel-rust/value"
)

// Function is a registered callable. target is nil for free-function calls.
// Arguments arrive as unevaluated expressions: the callable decides whether,
// when, and in which scope each one resolves. That is what lets has() consume
// a resolution failure and map() introduce a loop variable.
type Function func(target value.Value, args []Expression, scope Scope) (value.Value, error)

// Funcs maps names to callables. Hosts may add or replace entries before
// building a scope; last write wins.
type Funcs map[string]Function

func DefaultFuncs() Funcs {
	return Funcs{
		"size":     Size,
		"contains": Contains,
		"has":      Has,
		"map":      Map,
		"filter":   Filter,
	}
}

// Size returns the element, entry, code point, or byte count of its single
// eagerly resolved argument. Free-function only.
func Size(target value.Value, args []Expression, scope Scope) (value.Value, error) {
	if target != nil {
		return nil, &ErrNotSupportedAsMethod{
			Name:   "size",
			Target: target,
		}
	}
	if len(args) != 1 {
		return nil, &ErrInvalidArgumentCount{
			Expected: 1,
			Actual:   len(args),
		}
	}
	v, err := args[0].ToValue(scope)
	if err != nil {
		return nil, err
	}
	switch x := v.(type) {
	case value.List:
		return value.Int(x.Len()), nil
	case *value.Map:
		return value.Int(x.Len()), nil
	case value.String:
		return value.Int(x.Len()), nil
	case value.Bytes:
		return value.Int(x.Len()), nil
	}
	return nil, &ErrFunction{
		Name:    "size",
		Message: fmt.Sprintf("cannot determine size of %s", v),
	}
}

// Contains tests membership of its single eagerly resolved argument in the
// receiver. Method only; the registry contract guarantees a receiver.
func Contains(target value.Value, args []Expression, scope Scope) (value.Value, error) {
	if len(args) != 1 {
		return nil, &ErrInvalidArgumentCount{
			Expected: 1,
			Actual:   len(args),
		}
	}
	arg, err := args[0].ToValue(scope)
	if err != nil {
		return nil, err
	}

	switch recv := target.(type) {
	case value.List:
		return value.Bool(recv.Contains(arg)), nil
	case *value.Map:
		key, err := value.ToKey(arg)
		if err != nil {
			return nil, err
		}
		return value.Bool(recv.Has(key)), nil
	case value.String:
		if s, ok := arg.(value.String); ok {
			return value.Bool(strings.Contains((string)(recv), (string)(s))), nil
		}
		return value.False, nil
	case value.Bytes:
		b, ok := arg.(value.Bytes)
		if !ok {
			return value.False, nil
		}
		// Raw byte search only supports a single byte.
		if len(b) > 1 {
			return nil, &ErrFunction{
				Name:    "contains",
				Message: fmt.Sprintf("expected 1 byte, found %d", len(b)),
			}
		}
		if len(b) == 0 {
			return value.False, nil
		}
		return value.Bool(recv.Contains(b[0])), nil
	}
	return value.False, nil
}

// Has reports whether its single argument resolves. The argument is passed
// unresolved; resolution failing with *ErrNoSuchKey means "absent" and yields
// false, while every other error kind propagates unchanged.
func Has(target value.Value, args []Expression, scope Scope) (value.Value, error) {
	if target != nil {
		return nil, &ErrNotSupportedAsMethod{
			Name:   "has",
			Target: target,
		}
	}
	if len(args) != 1 {
		return nil, &ErrInvalidArgumentCount{
			Expected: 1,
			Actual:   len(args),
		}
	}
	if _, err := args[0].ToValue(scope); err != nil {
		if e := (*ErrNoSuchKey)(nil); errors.As(err, &e) {
			return value.False, nil
		}
		return nil, err
	}
	return value.True, nil
}

// Map applies a transform expression to every element of the receiver list,
// binding the identifier named by the first argument in a child scope. The
// child frame is rebound in place across iterations; the parent scope is
// never written.
func Map(target value.Value, args []Expression, scope Scope) (value.Value, error) {
	list, ident, body, err := macroArgs("map", target, args)
	if err != nil {
		return nil, err
	}

	data := ScopeData{}
	child := scope.Push(data)

	result := make([]value.Value, 0, len(list))
	for _, item := range list {
		data[ident] = item
		v, err := body.ToValue(child)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return value.List(result), nil
}

// Filter keeps the elements of the receiver list for which the predicate
// expression is true, in input order. The predicate must produce a bool.
func Filter(target value.Value, args []Expression, scope Scope) (value.Value, error) {
	list, ident, body, err := macroArgs("filter", target, args)
	if err != nil {
		return nil, err
	}

	data := ScopeData{}
	child := scope.Push(data)

	var result []value.Value
	for _, item := range list {
		data[ident] = item
		v, err := body.ToValue(child)
		if err != nil {
			return nil, err
		}
		keep, ok := v.(value.Bool)
		if !ok {
			return nil, &ErrFunction{
				Name:    "filter",
				Message: fmt.Sprintf("expression must return a bool, got %s", v.Kind()),
			}
		}
		if keep {
			result = append(result, item)
		}
	}
	return value.List(result), nil
}

func macroArgs(name string, target value.Value, args []Expression) (value.List, string, Expression, error) {
	if target == nil {
		return nil, "", nil, &ErrMissingArgumentOrTarget{}
	}
	if len(args) != 2 {
		return nil, "", nil, &ErrInvalidArgumentCount{
			Expected: 2,
			Actual:   len(args),
		}
	}
	ident, ok := args[0].(*Lookup)
	if !ok {
		return nil, "", nil, &ErrFunction{
			Name:    name,
			Message: "first argument must be an identifier",
		}
	}
	list, ok := target.(value.List)
	if !ok {
		return nil, "", nil, &ErrFunction{
			Name:    name,
			Message: name + " can only be called on a list",
		}
	}
	return list, ident.Key, args[1], nil
}
