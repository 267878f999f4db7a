// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"github.com/specialistvlad/circuitgraph/internal/signature"
)

// Model is the unified, format-agnostic representation of everything read
// from configuration files: operation manifests and circuit definitions.
type Model struct {
	// Operations declared in manifests, keyed by operation identifier. They
	// are merged with the builtin table when the registry is created.
	Operations map[string]signature.Signature
	// Descriptions holds the optional description of each declared operation.
	Descriptions map[string]string
	// Circuits in the order they were read.
	Circuits []*Circuit
}

// NewModel returns an empty model with its maps initialised.
func NewModel() *Model {
	return &Model{
		Operations:   make(map[string]signature.Signature),
		Descriptions: make(map[string]string),
	}
}

// Circuit is the format-agnostic representation of one circuit definition.
type Circuit struct {
	Name      string
	Signature signature.Signature
	// Nodes in declaration order.
	Nodes []*NodeDecl
	// Connections in declaration order.
	Connections []*Connection
	// Source is the file the circuit came from, for error messages.
	Source string
}

// NodeDecl declares one operation node.
type NodeDecl struct {
	Name        string
	OperationID string
	Label       string
}

// Endpoint is one side of a connection. Boundary endpoints name a port of
// the circuit itself; Node is empty for them.
type Endpoint struct {
	Boundary bool
	Node     string
	Port     string
}

// Connection wires From to To. From may only be a boundary endpoint when it
// names a circuit input; To only when it names a circuit output.
type Connection struct {
	From Endpoint
	To   Endpoint
	// Pos is a human readable source position.
	Pos string
}

// String renders the connection the way it is written in circuit files,
// e.g. `input.q0 -> H.q`.
func (c *Connection) String() string {
	from := c.From.Node + "." + c.From.Port
	if c.From.Boundary {
		from = "input." + c.From.Port
	}
	to := c.To.Node + "." + c.To.Port
	if c.To.Boundary {
		to = "output." + c.To.Port
	}
	return from + " -> " + to
}

// Circuit returns the circuit with the given name.
func (m *Model) Circuit(name string) (*Circuit, bool) {
	for _, c := range m.Circuits {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}
