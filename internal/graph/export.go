package graph

import (
	"context"
	"fmt"

	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/node"
	"github.com/specialistvlad/circuitgraph/internal/signature"
	"github.com/specialistvlad/circuitgraph/internal/topologystore"
)

// Snapshot is an immutable copy of a graph, taken at export time.
type Snapshot struct {
	ID        string
	Name      string
	Signature signature.Signature
	// Nodes are copies, in insertion order, starting with Start and End.
	Nodes []node.Node
	// Edges are in insertion order.
	Edges []topologystore.Edge
}

// Exporter turns a snapshot into some artifact. Failures are the exporter's
// own; the graph does not interpret them.
type Exporter interface {
	Export(ctx context.Context, snap *Snapshot) error
}

// ExporterFunc adapts a plain function to the Exporter interface.
type ExporterFunc func(ctx context.Context, snap *Snapshot) error

func (f ExporterFunc) Export(ctx context.Context, snap *Snapshot) error {
	return f(ctx, snap)
}

// Snapshot copies the current nodes and edges.
func (g *Graph) Snapshot(ctx context.Context) *Snapshot {
	nodes := g.store.AllNodes(ctx)
	snap := &Snapshot{
		ID:        g.id,
		Name:      g.name,
		Signature: g.sig,
		Nodes:     make([]node.Node, 0, len(nodes)),
		Edges:     g.store.AllEdges(ctx),
	}
	for _, n := range nodes {
		snap.Nodes = append(snap.Nodes, *n)
	}
	return snap
}

// Export hands one snapshot to each exporter in order and stops at the first
// failure. The graph counts as exported from the moment Export is called.
func (g *Graph) Export(ctx context.Context, exporters ...Exporter) error {
	logger := ctxlog.FromContext(ctx).With("graph", g.name)
	g.exported = true

	snap := g.Snapshot(ctx)
	logger.Debug("Exporting graph.", "nodes", len(snap.Nodes), "edges", len(snap.Edges), "exporters", len(exporters))

	for i, exp := range exporters {
		if err := exp.Export(ctx, snap); err != nil {
			logger.Error("Exporter failed.", "index", i, "error", err)
			return fmt.Errorf("export of circuit '%s' failed: %w", g.name, err)
		}
	}
	return nil
}

// Node returns the snapshot node with the given name.
func (s *Snapshot) Node(name string) (node.Node, bool) {
	for _, n := range s.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return node.Node{}, false
}
