package registry

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSignature is returned by Validate when an operation's ports are malformed.
var ErrInvalidSignature = errors.New("invalid operation signature")

// Validate checks every identifier is non-empty and every signature is
// well formed. All problems are collected into a single error.
func (r *Registry) Validate() error {
	var errs []string

	for _, id := range r.Operations() {
		if strings.TrimSpace(id) == "" {
			errs = append(errs, "operation with empty identifier")
			continue
		}
		if err := r.signatures[id].Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("operation '%s': %v", id, err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidSignature, strings.Join(errs, "\n- "))
	}
	return nil
}
