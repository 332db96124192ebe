package eval

import (
	"github.com/lucperkins/cel-rust/value"
)

// Eval resolves an expression against a scope. A nil scope evaluates with
// only the built-in functions available.
func Eval(expr Expression, scope Scope) (value.Value, error) {
	if scope == nil {
		scope = NewScope(nil)
	}
	return expr.ToValue(scope)
}
