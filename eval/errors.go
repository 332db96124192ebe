package eval

import (
	"fmt"

	"github.com/lucperkins/cel-rust/value"
)

// ErrNoSuchKey reports an identifier or member access that resolved to
// nothing anywhere in the scope chain or the base value. It is the one error
// kind has() consumes.
type ErrNoSuchKey struct {
	Key string
}

func (e *ErrNoSuchKey) Error() string {
	return fmt.Sprintf("no such key: %s", e.Key)
}

type ErrInvalidArgumentCount struct {
	Expected int
	Actual   int
}

func (e *ErrInvalidArgumentCount) Error() string {
	return fmt.Sprintf("invalid argument count, expected %d got %d", e.Expected, e.Actual)
}

type ErrNotSupportedAsMethod struct {
	Name   string
	Target value.Value
}

func (e *ErrNotSupportedAsMethod) Error() string {
	return fmt.Sprintf("%s may not be called as a method of %s", e.Name, e.Target)
}

type ErrMissingArgumentOrTarget struct {
}

func (e *ErrMissingArgumentOrTarget) Error() string {
	return "missing argument or target"
}

// ErrFunction is the escape hatch for built-in specific validation failures
// that do not warrant a dedicated kind.
type ErrFunction struct {
	Name    string
	Message string
}

func (e *ErrFunction) Error() string {
	return fmt.Sprintf("error calling %s: %s", e.Name, e.Message)
}
