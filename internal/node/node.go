// Package node defines the vertices of a circuit graph.
package node

import "fmt"

// Reserved names of the two boundary nodes every graph starts with.
const (
	StartName = "init"
	EndName   = "fin"
)

// Kind distinguishes the synthetic boundary nodes from ordinary operations.
type Kind int

const (
	// Operation is an instance of an operation from the registry.
	Operation Kind = iota
	// Start represents the circuit's inputs. It is only ever an edge source.
	Start
	// End represents the circuit's outputs. It is only ever an edge target.
	End
)

func (k Kind) String() string {
	switch k {
	case Operation:
		return "operation"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a single vertex in the circuit graph. Nodes are never mutated once
// they are added to a graph.
type Node struct {
	// Name is unique within one graph.
	Name string
	Kind Kind
	// OperationID keys the registry. Empty for boundary nodes.
	OperationID string
	// Label is the display text used by exporters. May be empty.
	Label string
}

// IsBoundary reports whether n is the Start or End node.
func (n *Node) IsBoundary() bool {
	return n.Kind == Start || n.Kind == End
}

// DisplayLabel returns Label, falling back to Name for operation nodes.
// Boundary nodes keep an empty label unless one was set.
func (n *Node) DisplayLabel() string {
	if n.Label != "" || n.IsBoundary() {
		return n.Label
	}
	return n.Name
}

// NewStart creates the Start boundary node.
func NewStart() *Node {
	return &Node{Name: StartName, Kind: Start}
}

// NewEnd creates the End boundary node.
func NewEnd() *Node {
	return &Node{Name: EndName, Kind: End}
}

// NewOperation creates an operation node tagged with operationID.
func NewOperation(name, operationID, label string) *Node {
	return &Node{
		Name:        name,
		Kind:        Operation,
		OperationID: operationID,
		Label:       label,
	}
}
