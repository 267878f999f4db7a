// Package signature holds the immutable port signature of an operation or of
// a circuit boundary: a named set of typed input ports and output ports.
package signature

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/specialistvlad/circuitgraph/internal/datatype"
)

// ErrInvalid is returned by Validate for malformed signatures.
var ErrInvalid = errors.New("invalid signature")

// Ports maps a port name to the type of data flowing through it.
type Ports map[string]datatype.DataType

// Lookup returns the type declared for name.
func (p Ports) Lookup(name string) (datatype.DataType, bool) {
	t, ok := p[name]
	return t, ok
}

// Names returns the port names in sorted order.
func (p Ports) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (p Ports) clone() Ports {
	out := make(Ports, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// String renders the ports as `{a:Qubit, b:Bit}` with sorted names.
func (p Ports) String() string {
	parts := make([]string, 0, len(p))
	for _, name := range p.Names() {
		parts = append(parts, fmt.Sprintf("%s:%s", name, p[name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Signature is an immutable pair of input and output port maps. The zero value
// is a valid signature with no ports.
type Signature struct {
	inputs  Ports
	outputs Ports
}

// New copies in and out, so later changes to the caller's maps do not leak
// into the signature.
func New(in, out Ports) Signature {
	return Signature{inputs: in.clone(), outputs: out.clone()}
}

// Input returns the type of the named input port.
func (s Signature) Input(name string) (datatype.DataType, bool) {
	return s.inputs.Lookup(name)
}

// Output returns the type of the named output port.
func (s Signature) Output(name string) (datatype.DataType, bool) {
	return s.outputs.Lookup(name)
}

// Inputs returns a copy of the input port map.
func (s Signature) Inputs() Ports { return s.inputs.clone() }

// Outputs returns a copy of the output port map.
func (s Signature) Outputs() Ports { return s.outputs.clone() }

// String renders the signature as `in{...} -> out{...}`.
func (s Signature) String() string {
	return "in" + s.inputs.String() + " -> out" + s.outputs.String()
}

// Validate checks every port has a non-empty name and a valid type.
func (s Signature) Validate() error {
	var errs []string
	check := func(dir string, p Ports) {
		for _, name := range p.Names() {
			if strings.TrimSpace(name) == "" {
				errs = append(errs, fmt.Sprintf("%s port with empty name", dir))
				continue
			}
			if !p[name].Valid() {
				errs = append(errs, fmt.Sprintf("%s port '%s' has invalid type %s", dir, name, p[name]))
			}
		}
	}
	check("input", s.inputs)
	check("output", s.outputs)
	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(errs, "; "))
	}
	return nil
}
