package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/specialistvlad/circuitgraph/internal/signature"
)

var (
	// ErrUnknownOperation is returned by Lookup for identifiers not in the registry.
	ErrUnknownOperation = errors.New("unknown operation")
	// ErrDuplicateOperation is returned by New when two tables define the same identifier.
	ErrDuplicateOperation = errors.New("duplicate operation")
)

// Registry holds the signature of every known operation.
type Registry struct {
	signatures map[string]signature.Signature
}

// New merges the given tables into a validated Registry. Later tables may not
// redefine identifiers from earlier ones.
func New(tables ...map[string]signature.Signature) (*Registry, error) {
	r := &Registry{signatures: make(map[string]signature.Signature)}
	for _, table := range tables {
		for id, sig := range table {
			if _, exists := r.signatures[id]; exists {
				return nil, fmt.Errorf("%w: '%s' is defined more than once", ErrDuplicateOperation, id)
			}
			r.signatures[id] = sig
		}
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Lookup returns the signature registered for operationID.
func (r *Registry) Lookup(operationID string) (signature.Signature, error) {
	sig, ok := r.signatures[operationID]
	if !ok {
		return signature.Signature{}, fmt.Errorf("%w: '%s'", ErrUnknownOperation, operationID)
	}
	return sig, nil
}

// Operations returns every registered identifier in sorted order.
func (r *Registry) Operations() []string {
	ids := make([]string, 0, len(r.signatures))
	for id := range r.signatures {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered operations.
func (r *Registry) Len() int {
	return len(r.signatures)
}
