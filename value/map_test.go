package value

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKey(t *testing.T) {
	tests := []struct {
		val any
		ok  bool
	}{
		{val: true, ok: true},
		{val: 1, ok: true},
		{val: uint(1), ok: true},
		{val: "a", ok: true},
		{val: 1.5, ok: false},
		{val: nil, ok: false},
		{val: []any{1}, ok: false},
		{val: map[string]any{}, ok: false},
		{val: []byte("a"), ok: false},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%s%d", t.Name(), i), func(t *testing.T) {
			v := NewValue(test.val)
			key, err := ToKey(v)
			if !test.ok {
				e := (*ErrUnsupportedKeyType)(nil)
				require.ErrorAs(t, err, &e)
				assert.Equal(t, v, e.Value)
				return
			}
			require.NoError(t, err)
			assert.True(t, Equal(v, key.Value()))
		})
	}
}

func TestKeyDistinctKinds(t *testing.T) {
	// Int(1), Uint(1), and true are distinct keys.
	m := NewMapOf(map[Key]Value{
		mustKey(t, Int(1)):  String("int"),
		mustKey(t, Uint(1)): String("uint"),
		mustKey(t, True):    String("bool"),
	})
	require.Equal(t, int64(3), m.Len())

	v, ok := m.Get(mustKey(t, Int(1)))
	require.True(t, ok)
	assert.Equal(t, String("int"), v)

	v, ok = m.Get(mustKey(t, Uint(1)))
	require.True(t, ok)
	assert.Equal(t, String("uint"), v)
}

func TestMapLookup(t *testing.T) {
	m := NewMap(map[string]any{
		"key": "value",
	})
	v, ok := m.Get(StringKey("key"))
	require.True(t, ok)
	assert.Equal(t, "value", v.NativeValue())

	_, ok = m.Get(StringKey("missing"))
	assert.False(t, ok)
	assert.False(t, m.Has(StringKey("missing")))
}

func mustKey(t *testing.T, v Value) Key {
	t.Helper()
	key, err := ToKey(v)
	require.NoError(t, err)
	return key
}
