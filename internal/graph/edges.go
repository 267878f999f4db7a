package graph

import (
	"context"
	"fmt"

	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/datatype"
	"github.com/specialistvlad/circuitgraph/internal/node"
	"github.com/specialistvlad/circuitgraph/internal/topologystore"
)

// endpoint is one resolved side of an edge request.
type endpoint struct {
	node string
	port string
	typ  datatype.DataType
}

func (e endpoint) String() string {
	return e.node + "." + e.port
}

// AddEdge connects an output port of one operation node to an input port of
// another. Neither endpoint may be a boundary node; use AddBoundaryInputEdge
// and AddBoundaryOutputEdge for those.
func (g *Graph) AddEdge(ctx context.Context, source, sourcePort, target, targetPort string) error {
	g.warnIfExported(ctx, "AddEdge")

	if err := g.rejectBoundary(ctx, source, node.Start); err != nil {
		return g.rejected(ctx, err)
	}
	if err := g.rejectBoundary(ctx, target, node.End); err != nil {
		return g.rejected(ctx, err)
	}

	src, err := g.operationPort(ctx, source, sourcePort, "output")
	if err != nil {
		return g.rejected(ctx, err)
	}
	tgt, err := g.operationPort(ctx, target, targetPort, "input")
	if err != nil {
		return g.rejected(ctx, err)
	}
	return g.connect(ctx, src, tgt)
}

// AddBoundaryInputEdge connects the circuit input port circuitInPort, which
// leaves the Start node, to an input port of an operation node.
func (g *Graph) AddBoundaryInputEdge(ctx context.Context, circuitInPort, target, targetPort string) error {
	g.warnIfExported(ctx, "AddBoundaryInputEdge")

	if err := g.rejectBoundary(ctx, target, node.Operation); err != nil {
		return g.rejected(ctx, err)
	}

	src, err := resolvePort(node.StartName, circuitInPort, "input", g.sig.Input)
	if err != nil {
		return g.rejected(ctx, err)
	}
	tgt, err := g.operationPort(ctx, target, targetPort, "input")
	if err != nil {
		return g.rejected(ctx, err)
	}
	return g.connect(ctx, src, tgt)
}

// AddBoundaryOutputEdge connects an output port of an operation node to the
// circuit output port circuitOutPort, which enters the End node.
func (g *Graph) AddBoundaryOutputEdge(ctx context.Context, source, sourcePort, circuitOutPort string) error {
	g.warnIfExported(ctx, "AddBoundaryOutputEdge")

	if err := g.rejectBoundary(ctx, source, node.Operation); err != nil {
		return g.rejected(ctx, err)
	}

	src, err := g.operationPort(ctx, source, sourcePort, "output")
	if err != nil {
		return g.rejected(ctx, err)
	}
	tgt, err := resolvePort(node.EndName, circuitOutPort, "output", g.sig.Output)
	if err != nil {
		return g.rejected(ctx, err)
	}
	return g.connect(ctx, src, tgt)
}

// connect is the only place an edge reaches the store. Everything before it is
// read-only, which is what makes failed calls side-effect free.
func (g *Graph) connect(ctx context.Context, src, tgt endpoint) error {
	if src.typ != tgt.typ {
		return g.rejected(ctx, &TypeMismatchError{
			Source:     src.String(),
			Target:     tgt.String(),
			SourceType: src.typ,
			TargetType: tgt.typ,
		})
	}

	e := topologystore.Edge{
		Source:     src.node,
		SourcePort: src.port,
		Target:     tgt.node,
		TargetPort: tgt.port,
		Type:       src.typ,
	}
	if err := g.store.AddEdge(ctx, e); err != nil {
		return g.rejected(ctx, fmt.Errorf("failed to store edge %s -> %s: %w", src, tgt, err))
	}

	ctxlog.FromContext(ctx).Debug("Edge added.", "graph", g.name, "from", src.String(), "to", tgt.String(), "type", e.Type.String())
	return nil
}

// boundaryHints names the call that accepts each boundary node.
var boundaryHints = map[node.Kind]string{
	node.Start: "AddBoundaryInputEdge",
	node.End:   "AddBoundaryOutputEdge",
}

// rejectBoundary fails if name refers to the Start or End node. The error
// suggests the boundary call only when the node sits where that call would
// accept it, which is the case when its kind equals hinted.
func (g *Graph) rejectBoundary(ctx context.Context, name string, hinted node.Kind) error {
	n, ok := g.store.GetNode(ctx, name)
	if !ok || !n.IsBoundary() {
		return nil
	}
	be := &BoundaryError{Node: name}
	if n.Kind == hinted {
		be.Hint = boundaryHints[n.Kind]
	}
	return be
}

// operationPort resolves the declared type of port on an operation node.
// direction selects the input or output side of its signature.
func (g *Graph) operationPort(ctx context.Context, name, port, direction string) (endpoint, error) {
	n, ok := g.store.GetNode(ctx, name)
	if !ok {
		return endpoint{}, fmt.Errorf("%w: '%s'", ErrUnknownNode, name)
	}
	sig, err := g.registry.Lookup(n.OperationID)
	if err != nil {
		return endpoint{}, fmt.Errorf("node '%s': %w", name, err)
	}

	lookup := sig.Input
	if direction == "output" {
		lookup = sig.Output
	}
	return resolvePort(name, port, direction, lookup)
}

// resolvePort resolves port through lookup, which is either side of a
// signature. name is only used for reporting.
func resolvePort(name, port, direction string, lookup func(string) (datatype.DataType, bool)) (endpoint, error) {
	typ, ok := lookup(port)
	if !ok {
		return endpoint{}, &PortError{Node: name, Port: port, Direction: direction}
	}
	return endpoint{node: name, port: port, typ: typ}, nil
}

func (g *Graph) rejected(ctx context.Context, err error) error {
	ctxlog.FromContext(ctx).Debug("Edge rejected.", "graph", g.name, "error", err)
	return err
}
