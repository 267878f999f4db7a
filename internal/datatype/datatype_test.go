package datatype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in   string
		want DataType
	}{
		{"qubit", Qubit},
		{"Qubit", Qubit},
		{"bit", Bit},
		{"BIT", Bit},
		{"u32", U32},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("unknown keyword", func(t *testing.T) {
		got, err := Parse("string")
		require.Error(t, err)
		assert.Equal(t, Invalid, got)
		assert.Contains(t, err.Error(), "bit, u32, qubit")
	})
}

func TestValidAndString(t *testing.T) {
	for _, dt := range All() {
		assert.True(t, dt.Valid(), dt.String())
		parsed, err := Parse(dt.Keyword())
		require.NoError(t, err)
		assert.Equal(t, dt, parsed)
	}
	assert.False(t, Invalid.Valid())
	assert.Equal(t, "DataType(0)", Invalid.String())
	assert.Equal(t, "Qubit", Qubit.String())
}
