package registry

import (
	"testing"

	"github.com/specialistvlad/circuitgraph/internal/datatype"
	"github.com/specialistvlad/circuitgraph/internal/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Builtin(t *testing.T) {
	r, err := New(Builtin())
	require.NoError(t, err)

	sig, err := r.Lookup("CX_gate")
	require.NoError(t, err)
	assert.Equal(t, "in{ctl:Qubit, tgt:Qubit} -> out{ctl:Qubit, tgt:Qubit}", sig.String())

	sig, err = r.Lookup("H_gate")
	require.NoError(t, err)
	got, ok := sig.Input("q")
	require.True(t, ok)
	assert.Equal(t, datatype.Qubit, got)

	assert.Equal(t, []string{"CX_gate", "H_gate", "Measure", "X_gate", "Z_gate"}, r.Operations())
	assert.Equal(t, 5, r.Len())
}

func TestLookup_Unknown(t *testing.T) {
	r, err := New(Builtin())
	require.NoError(t, err)

	_, err = r.Lookup("T_gate")
	require.ErrorIs(t, err, ErrUnknownOperation)
	assert.Contains(t, err.Error(), "T_gate")
}

func TestNew_MergesTables(t *testing.T) {
	extra := map[string]signature.Signature{
		"Pack_u32": signature.New(signature.Ports{"b": datatype.Bit}, signature.Ports{"v": datatype.U32}),
	}
	r, err := New(Builtin(), extra)
	require.NoError(t, err)
	_, err = r.Lookup("Pack_u32")
	assert.NoError(t, err)
}

func TestNew_Errors(t *testing.T) {
	t.Run("duplicate across tables", func(t *testing.T) {
		dup := map[string]signature.Signature{"H_gate": signature.Signature{}}
		_, err := New(Builtin(), dup)
		require.ErrorIs(t, err, ErrDuplicateOperation)
		assert.Contains(t, err.Error(), "'H_gate'")
	})

	t.Run("invalid signature", func(t *testing.T) {
		bad := map[string]signature.Signature{
			"Broken": signature.New(signature.Ports{"q": datatype.Invalid}, nil),
			"":       signature.Signature{},
		}
		_, err := New(bad)
		require.ErrorIs(t, err, ErrInvalidSignature)
		assert.Contains(t, err.Error(), "operation 'Broken'")
		assert.Contains(t, err.Error(), "operation with empty identifier")
	})
}

func TestBuiltin_ReturnsFreshTable(t *testing.T) {
	first := Builtin()
	delete(first, "H_gate")
	_, ok := Builtin()["H_gate"]
	assert.True(t, ok)
}
