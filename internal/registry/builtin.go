package registry

import (
	"github.com/specialistvlad/circuitgraph/internal/datatype"
	"github.com/specialistvlad/circuitgraph/internal/signature"
)

// Builtin returns a fresh copy of the fixed gate table that every registry
// starts from.
func Builtin() map[string]signature.Signature {
	qubit := signature.Ports{"q": datatype.Qubit}
	return map[string]signature.Signature{
		"H_gate": signature.New(qubit, qubit),
		"X_gate": signature.New(qubit, qubit),
		"Z_gate": signature.New(qubit, qubit),
		"CX_gate": signature.New(
			signature.Ports{"ctl": datatype.Qubit, "tgt": datatype.Qubit},
			signature.Ports{"ctl": datatype.Qubit, "tgt": datatype.Qubit},
		),
		"Measure": signature.New(
			qubit,
			signature.Ports{"q": datatype.Qubit, "c": datatype.Bit},
		),
	}
}
