package builder

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/circuitgraph/internal/config"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/dag"
	"github.com/specialistvlad/circuitgraph/internal/graph"
	"github.com/specialistvlad/circuitgraph/internal/node"
	"github.com/specialistvlad/circuitgraph/internal/registry"
)

// Build constructs the graph described by circuit using the operations of reg.
func Build(ctx context.Context, circuit *config.Circuit, reg *registry.Registry, opts ...graph.Option) (*graph.Graph, error) {
	if circuit == nil {
		return nil, errors.New("cannot build a nil circuit")
	}
	logger := ctxlog.FromContext(ctx).With("circuit", circuit.Name)
	logger.Debug("Build: Starting graph construction.")

	g, err := graph.New(ctx, circuit.Name, circuit.Signature, reg, opts...)
	if err != nil {
		return nil, err
	}

	// First pass: create all operation nodes.
	for _, decl := range circuit.Nodes {
		if err := g.AddOperationNode(ctx, decl.Name, decl.OperationID, decl.Label); err != nil {
			return nil, fmt.Errorf("circuit '%s': %w", circuit.Name, err)
		}
	}
	logger.Debug("Build: Node creation complete.", "node_count", g.NodeCount(ctx))

	// Second pass: route connections.
	for _, conn := range circuit.Connections {
		if err := route(ctx, g, conn); err != nil {
			return nil, fmt.Errorf("circuit '%s': connection %s (%s): %w", circuit.Name, conn, conn.Pos, err)
		}
	}
	logger.Debug("Build: Connection routing complete.", "edge_count", g.EdgeCount(ctx))

	// Feedback loops are legal wiring but usually a mistake in a circuit.
	if err := detectFeedback(circuit); err != nil {
		logger.Warn("Build: Circuit contains a feedback loop.", "error", err)
	}

	logger.Info("Build: Graph construction successful.", "nodes", g.NodeCount(ctx), "edges", g.EdgeCount(ctx))
	return g, nil
}

// route dispatches conn to the graph operation matching its endpoints. A
// connection whose both sides are boundaries is handed to the graph as a
// boundary input edge into the End node, which rejects it.
func route(ctx context.Context, g *graph.Graph, conn *config.Connection) error {
	switch {
	case conn.From.Boundary:
		target := conn.To.Node
		if conn.To.Boundary {
			target = node.EndName
		}
		return g.AddBoundaryInputEdge(ctx, conn.From.Port, target, conn.To.Port)
	case conn.To.Boundary:
		return g.AddBoundaryOutputEdge(ctx, conn.From.Node, conn.From.Port, conn.To.Port)
	default:
		return g.AddEdge(ctx, conn.From.Node, conn.From.Port, conn.To.Node, conn.To.Port)
	}
}

// detectFeedback reports a cycle among the operation nodes of circuit.
func detectFeedback(circuit *config.Circuit) error {
	deps := dag.New()
	for _, decl := range circuit.Nodes {
		deps.AddNode(decl.Name)
	}
	for _, conn := range circuit.Connections {
		if conn.From.Boundary || conn.To.Boundary {
			continue
		}
		if err := deps.AddEdge(conn.From.Node, conn.To.Node); err != nil {
			return err
		}
	}
	return deps.DetectCycles()
}
