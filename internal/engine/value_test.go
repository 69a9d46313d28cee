package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceInt(t *testing.T) {
	for _, in := range []any{int64(7), 7, float64(7), "7", " 7 "} {
		got, err := Coerce(TypeInt, in)
		require.NoError(t, err, "input %v", in)
		assert.Equal(t, int64(7), got)
	}
	for _, in := range []any{"abc", 7.5, true} {
		_, err := Coerce(TypeInt, in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestCoerceStr(t *testing.T) {
	cases := map[any]string{
		"hi":       "hi",
		int64(42):  "42",
		true:       "true",
		float64(3): "3",
	}
	for in, want := range cases {
		got, err := Coerce(TypeStr, in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestCoerceBool(t *testing.T) {
	truthy := []any{true, "true", "TRUE", "1", "yes", int64(1)}
	for _, in := range truthy {
		got, err := Coerce(TypeBool, in)
		require.NoError(t, err, "input %v", in)
		assert.Equal(t, true, got)
	}
	falsy := []any{false, "false", "0", "no", int64(0)}
	for _, in := range falsy {
		got, err := Coerce(TypeBool, in)
		require.NoError(t, err, "input %v", in)
		assert.Equal(t, false, got)
	}
	for _, in := range []any{"maybe", int64(2), 3.5} {
		_, err := Coerce(TypeBool, in)
		assert.Error(t, err, "input %v", in)
	}
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "42", FormatValue(int64(42)))
	assert.Equal(t, "true", FormatValue(true))
	assert.Equal(t, "Ada", FormatValue("Ada"))
	assert.Equal(t, "", FormatValue(nil))
}
