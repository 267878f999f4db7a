package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/inmemorytopology"
	"github.com/specialistvlad/circuitgraph/internal/node"
	"github.com/specialistvlad/circuitgraph/internal/registry"
	"github.com/specialistvlad/circuitgraph/internal/signature"
	"github.com/specialistvlad/circuitgraph/internal/topologystore"
)

// Graph is the port-graph builder for a single circuit.
type Graph struct {
	id       string
	name     string
	sig      signature.Signature
	registry *registry.Registry
	store    topologystore.Store
	exported bool
}

// Option customises a Graph at construction.
type Option func(*Graph)

// WithStore replaces the default in-memory store. The store must be empty.
func WithStore(s topologystore.Store) Option {
	return func(g *Graph) { g.store = s }
}

// WithID overrides the random instance identifier.
func WithID(id string) Option {
	return func(g *Graph) { g.id = id }
}

// New creates a graph named name whose boundary is described by sig. The
// Start and End nodes are added immediately.
func New(ctx context.Context, name string, sig signature.Signature, reg *registry.Registry, opts ...Option) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)

	if name == "" {
		return nil, errors.New("graph name must not be empty")
	}
	if reg == nil {
		return nil, errors.New("graph requires a registry")
	}
	if err := sig.Validate(); err != nil {
		return nil, fmt.Errorf("circuit '%s': %w", name, err)
	}

	g := &Graph{
		id:       uuid.NewString(),
		name:     name,
		sig:      sig,
		registry: reg,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.store == nil {
		g.store = inmemorytopology.New()
	}

	for _, n := range []*node.Node{node.NewStart(), node.NewEnd()} {
		if err := g.store.AddNode(ctx, n); err != nil {
			return nil, fmt.Errorf("circuit '%s': failed to add boundary node: %w", name, err)
		}
	}

	logger.Debug("Graph created.", "graph", name, "id", g.id, "signature", sig.String())
	return g, nil
}

// ID returns the random identifier of this graph instance.
func (g *Graph) ID() string { return g.id }

// Name returns the circuit name.
func (g *Graph) Name() string { return g.name }

// Signature returns the circuit's own boundary signature.
func (g *Graph) Signature() signature.Signature { return g.sig }

// Exported reports whether Export has been called at least once.
func (g *Graph) Exported() bool { return g.exported }

// Node looks a node up by name.
func (g *Graph) Node(ctx context.Context, name string) (*node.Node, bool) {
	return g.store.GetNode(ctx, name)
}

// NodeCount includes the two boundary nodes.
func (g *Graph) NodeCount(ctx context.Context) int {
	return g.store.NodeCount(ctx)
}

func (g *Graph) EdgeCount(ctx context.Context) int {
	return g.store.EdgeCount(ctx)
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges(ctx context.Context) []topologystore.Edge {
	return g.store.AllEdges(ctx)
}

func (g *Graph) warnIfExported(ctx context.Context, op string) {
	if g.exported {
		ctxlog.FromContext(ctx).Warn("Graph modified after export.", "graph", g.name, "operation", op)
	}
}
