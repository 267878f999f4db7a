package graph

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/circuitgraph/internal/datatype"
	"github.com/specialistvlad/circuitgraph/internal/registry"
)

// Sentinel errors for programmatic checks via errors.Is. All of them describe
// caller mistakes and are never worth retrying.
var (
	// ErrUnknownOperation is the registry's error, re-exported so callers of
	// this package need not import the registry to check for it.
	ErrUnknownOperation = registry.ErrUnknownOperation

	// ErrDuplicateNode is returned when a node name is already taken,
	// including the reserved boundary names.
	ErrDuplicateNode = errors.New("duplicate node")

	// ErrUnknownNode is returned when an edge names a node that was never added.
	ErrUnknownNode = errors.New("unknown node")

	// ErrUnknownPort is returned when a port name is absent from the
	// relevant signature.
	ErrUnknownPort = errors.New("unknown port")

	// ErrMisusedBoundaryNode is returned when a boundary node is passed where
	// only operation nodes are allowed.
	ErrMisusedBoundaryNode = errors.New("misused boundary node")

	// ErrTypeMismatch is returned when the two ports of an edge declare
	// different types.
	ErrTypeMismatch = errors.New("type mismatch")
)

// PortError reports a port name that is not declared on the named node.
// Wraps ErrUnknownPort.
type PortError struct {
	Node string
	Port string
	// Direction is "input" or "output".
	Direction string
}

func (e *PortError) Error() string {
	return fmt.Sprintf("%s: node '%s' has no %s port '%s'", ErrUnknownPort, e.Node, e.Direction, e.Port)
}

func (e *PortError) Unwrap() error { return ErrUnknownPort }

// TypeMismatchError carries both resolved types for diagnostics.
// Wraps ErrTypeMismatch.
type TypeMismatchError struct {
	Source     string // "node.port"
	Target     string // "node.port"
	SourceType datatype.DataType
	TargetType datatype.DataType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: %s (%s) cannot feed %s (%s)", ErrTypeMismatch, e.Source, e.SourceType, e.Target, e.TargetType)
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// BoundaryError reports a boundary node used through the wrong entry point.
// Wraps ErrMisusedBoundaryNode.
type BoundaryError struct {
	Node string
	// Hint names the entry point the caller should have used, if any.
	Hint string
}

func (e *BoundaryError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s: '%s' cannot be used here", ErrMisusedBoundaryNode, e.Node)
	}
	return fmt.Sprintf("%s: '%s' cannot be used here, use %s", ErrMisusedBoundaryNode, e.Node, e.Hint)
}

func (e *BoundaryError) Unwrap() error { return ErrMisusedBoundaryNode }
