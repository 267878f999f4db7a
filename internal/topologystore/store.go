// Package topologystore defines the interface for storing the structure of a
// circuit graph: its nodes and its typed, port-labelled edges.
//
// # Why Topology Store Exists
//
// The graph package owns the validation rules (port lookups, type equality,
// boundary handling). The store owns nothing but the data. Keeping the two
// apart lets the builder be tested against any Store implementation and keeps
// the storage free of registry knowledge.
//
// # Lifecycle and Usage
//
// A store is:
//  1. **Created** once per graph (ephemeral, never shared between graphs)
//  2. **Appended to** while the graph is built (nodes, then edges)
//  3. **Read** when a snapshot is taken for export
//
// There is no removal API. Stores are append-only.
package topologystore

import (
	"context"
	"errors"

	"github.com/specialistvlad/circuitgraph/internal/datatype"
	"github.com/specialistvlad/circuitgraph/internal/node"
)

var (
	// ErrNodeExists is returned by AddNode when the name is already taken.
	ErrNodeExists = errors.New("node already exists")
	// ErrNodeNotFound is returned by AddEdge when an endpoint is missing.
	ErrNodeNotFound = errors.New("node not found")
)

// Edge is a directed, typed connection from an output port of Source to an
// input port of Target. Several edges may join the same pair of nodes.
type Edge struct {
	Source     string
	SourcePort string
	Target     string
	TargetPort string
	// Type is the data type both endpoints agreed on.
	Type datatype.DataType
}

// Store is the interface for managing the topology of a circuit multigraph.
//
// # Thread-Safety Requirements
//
// Implementations must tolerate concurrent readers of a finished graph. The
// builder never writes concurrently.
//
// # Typical Implementation
//
// See internal/inmemorytopology for the reference in-memory implementation.
type Store interface {
	// AddNode registers a new node. Unlike edges, node names are unique:
	// adding a name twice returns ErrNodeExists and leaves the first node
	// untouched.
	AddNode(ctx context.Context, n *node.Node) error

	// AddEdge appends an edge. Both endpoints must already exist, otherwise
	// ErrNodeNotFound is returned and nothing is stored. The store does not
	// look at ports or types; that is the caller's job.
	AddEdge(ctx context.Context, e Edge) error

	// GetNode retrieves a node by name.
	GetNode(ctx context.Context, name string) (*node.Node, bool)

	// AllNodes returns every node in insertion order.
	AllNodes(ctx context.Context) []*node.Node

	// AllEdges returns every edge in insertion order.
	AllEdges(ctx context.Context) []Edge

	// NodeCount and EdgeCount report the current sizes.
	NodeCount(ctx context.Context) int
	EdgeCount(ctx context.Context) int
}
