package eval

import (
	"testing"

	"github.com/lucperkins/cel-rust/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeChainLookup(t *testing.T) {
	scope := NewScope(nil).Push(ScopeData{
		"a": 1,
		"b": 2,
	}).Push(ScopeData{
		"b": "shadowed",
	})

	v, ok, err := scope.Get("a")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Int(1), v)

	v, ok, err = scope.Get("b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.String("shadowed"), v)

	_, ok, err = scope.Get("c")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScopePushDoesNotTouchParent(t *testing.T) {
	parent := NewScope(nil).Push(ScopeData{
		"x": "parent",
	})
	child := parent.Push(ScopeData{
		"x": "child",
	})

	v, ok, err := child.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.String("child"), v)

	v, ok, err = parent.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.String("parent"), v)
}

func TestScopeSiblingsIndependent(t *testing.T) {
	parent := NewScope(nil).Push(ScopeData{
		"x": 1,
	})
	left := parent.Push(ScopeData{"x": 2})
	right := parent.Push(ScopeData{"y": 3})

	v, ok, err := right.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Int(1), v)

	v, ok, err = left.Get("x")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, value.Int(2), v)
}

func TestScopeFuncsFromRoot(t *testing.T) {
	funcs := DefaultFuncs()
	scope := NewScope(funcs).Push(ScopeData{}).Push(nil)
	assert.NotNil(t, scope.Funcs()["size"])
	assert.NotNil(t, scope.Funcs()["has"])
}

func TestScopeDataNativeConversion(t *testing.T) {
	scope := NewScope(nil).Push(ScopeData{
		"m": map[string]any{"k": []any{1, 2}},
	})
	v, ok, err := scope.Get("m")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, value.MapKind, v.Kind())
}
