// Package datatype defines the closed set of value kinds that ports and edges
// are typed over.
package datatype

import (
	"fmt"
	"strings"
)

// DataType is a tag from a fixed, closed set of value kinds. Equality is the
// only operation the edge validator relies on.
type DataType int

const (
	// Invalid is the zero value and never appears in a valid signature.
	Invalid DataType = iota
	// Bit is a single classical bit.
	Bit
	// U32 is a fixed-width 32-bit unsigned integer.
	U32
	// Qubit is a handle to a single quantum bit.
	Qubit
)

var names = map[DataType]string{
	Bit:   "Bit",
	U32:   "u32",
	Qubit: "Qubit",
}

// All returns every valid DataType in declaration order.
func All() []DataType {
	return []DataType{Bit, U32, Qubit}
}

// String returns the canonical spelling used in diagnostics and exports.
func (t DataType) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// Valid reports whether t is a member of the closed set.
func (t DataType) Valid() bool {
	_, ok := names[t]
	return ok
}

// Keyword returns the lower-case identifier used for t in HCL files.
func (t DataType) Keyword() string {
	return strings.ToLower(t.String())
}

// Parse resolves a type keyword case-insensitively, so both `qubit` and
// `Qubit` name the same type.
func Parse(s string) (DataType, error) {
	for t, name := range names {
		if strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return Invalid, fmt.Errorf("unknown data type %q (supported: %s)", s, strings.Join(Keywords(), ", "))
}

// Keywords lists the HCL keywords of all valid types.
func Keywords() []string {
	all := All()
	out := make([]string, 0, len(all))
	for _, t := range all {
		out = append(out, t.Keyword())
	}
	return out
}
