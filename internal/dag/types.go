package dag

import (
	"errors"
	"sync"
)

var (
	// ErrCycle is returned when the dependencies form a loop.
	ErrCycle = errors.New("cycle detected")
	// ErrSelfReference is returned by AddEdge for an edge from a node to itself.
	ErrSelfReference = errors.New("self-referential edge not allowed")
	// ErrNodeNotFound is returned when an edge names a node that was never added.
	ErrNodeNotFound = errors.New("node not found")
)

// Graph is a collection of nodes and their dependencies. All operations on
// the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// order holds node IDs in insertion order so traversals are deterministic.
	order []string
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string IDs),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the set of nodes that this node depends on (predecessors).
	deps map[string]*node
	// dependents holds the set of nodes that depend on this node (successors).
	dependents map[string]*node
}
