// FILE: flagini/coerce_test.go
package flagini

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"Plain", "42", 42, false},
		{"Negative", "-17", -17, false},
		{"ExplicitPlus", "+5", 5, false},
		{"Zero", "0", 0, false},
		{"Max32", "2147483647", 2147483647, false},
		{"Min32", "-2147483648", -2147483648, false},
		{"Empty", "", 0, true},
		{"Letters", "abc", 0, true},
		{"TrailingGarbage", "42abc", 0, true},
		{"Overflow32", "99999999999", 0, true},
		{"Underflow32", "-99999999999", 0, true},
		{"Hex", "0x10", 0, true},
		{"Float", "1.5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := coerceInt(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoerceFloat(t *testing.T) {
	t.Run("Float64", func(t *testing.T) {
		v, err := coerceFloat64("3.25")
		require.NoError(t, err)
		assert.Equal(t, 3.25, v)

		v, err = coerceFloat64("-1e3")
		require.NoError(t, err)
		assert.Equal(t, -1000.0, v)

		_, err = coerceFloat64("")
		assert.Error(t, err)

		_, err = coerceFloat64("1.5x")
		assert.Error(t, err)
	})

	t.Run("Float32", func(t *testing.T) {
		v, err := coerceFloat32("0.5")
		require.NoError(t, err)
		assert.Equal(t, float32(0.5), v)

		_, err = coerceFloat32("nope")
		assert.Error(t, err)
	})
}

// Boolean literals are exact and case-sensitive; prefixes and case variants
// that a looser comparison might admit all fail.
func TestCoerceBool(t *testing.T) {
	v, err := coerceBool("true")
	require.NoError(t, err)
	assert.True(t, v)

	v, err = coerceBool("false")
	require.NoError(t, err)
	assert.False(t, v)

	for _, bad := range []string{"", "True", "FALSE", "tr", "truex", "1", "0", "yes"} {
		_, err := coerceBool(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestCoerceTime(t *testing.T) {
	t.Run("DefaultLayout", func(t *testing.T) {
		v, err := coerceTime("2024-06-01T12:30:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 12, 30, 0, 0, time.Local), v)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, bad := range []string{"", "2024-06-01", "12:30:00", "junk", "2024-06-01T12:30:00Z"} {
			_, err := coerceTime(bad)
			assert.Error(t, err, "input %q", bad)
		}
	})

	t.Run("CustomLayout", func(t *testing.T) {
		old := TimeLayout
		TimeLayout = "2006-01-02"
		defer func() { TimeLayout = old }()

		v, err := coerceTime("2024-06-01")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), v)

		_, err = coerceTime("2024-06-01T12:30:00")
		assert.Error(t, err)
	})
}
