// Package graph implements the typed port-graph builder for circuits.
//
// A Graph is a directed multigraph whose vertices are operation nodes plus two
// synthetic boundary nodes, Start ("init") and End ("fin"), that stand for the
// circuit's own inputs and outputs. Every edge joins an output port of its
// source to an input port of its target and records the data type both ports
// declare.
//
// # Validation
//
// Nothing is type checked when a node is added. Every edge insertion is
// validated before the store is touched:
//
//  1. Boundary nodes may not appear in AddEdge at all. Edges leaving Start go
//     through AddBoundaryInputEdge, edges entering End through
//     AddBoundaryOutputEdge.
//  2. Both endpoint nodes must exist.
//  3. Both port names must exist in the relevant signature (the operation's
//     signature from the registry, or the circuit's own signature for the
//     boundary).
//  4. The two declared types must be equal.
//
// A rejected call leaves the graph exactly as it was, so the caller may keep
// building after an error.
//
// # Lifecycle
//
//  1. **Created** with New, which adds the Start and End nodes
//  2. **Built** through AddOperationNode and the three edge entry points
//  3. **Exported** through Export, which hands an immutable Snapshot to one
//     or more exporters
//
// Exporting does not close the graph. Insertions after Export are accepted
// and logged as a warning; the graph may be exported again.
//
// # Thread-Safety
//
// A Graph has a single owner while it is being built. Calls must not be
// interleaved from several goroutines without external locking.
package graph
