package inmemorytopology

import (
	"context"
	"fmt"
	"sync"

	"github.com/specialistvlad/circuitgraph/internal/node"
	"github.com/specialistvlad/circuitgraph/internal/topologystore"
)

// Store implements the topologystore.Store interface using slices for
// insertion order and a map for name lookup.
type Store struct {
	mu     sync.RWMutex
	order  []*node.Node
	byName map[string]*node.Node
	edges  []topologystore.Edge
}

// New creates a new, empty in-memory topology store.
func New() topologystore.Store {
	return &Store{
		byName: make(map[string]*node.Node),
	}
}

// AddNode adds a new node to the store.
func (s *Store) AddNode(ctx context.Context, n *node.Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[n.Name]; exists {
		return fmt.Errorf("%w: '%s'", topologystore.ErrNodeExists, n.Name)
	}
	s.byName[n.Name] = n
	s.order = append(s.order, n)
	return nil
}

// AddEdge appends an edge between two existing nodes.
func (s *Store) AddEdge(ctx context.Context, e topologystore.Edge) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byName[e.Source]; !exists {
		return fmt.Errorf("edge source '%s': %w", e.Source, topologystore.ErrNodeNotFound)
	}
	if _, exists := s.byName[e.Target]; !exists {
		return fmt.Errorf("edge target '%s': %w", e.Target, topologystore.ErrNodeNotFound)
	}
	s.edges = append(s.edges, e)
	return nil
}

// GetNode retrieves a single node by its name.
func (s *Store) GetNode(ctx context.Context, name string) (*node.Node, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byName[name]
	return n, ok
}

// AllNodes returns a copy of the node list.
func (s *Store) AllNodes(ctx context.Context) []*node.Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	nodes := make([]*node.Node, len(s.order))
	copy(nodes, s.order)
	return nodes
}

// AllEdges returns a copy of the edge list.
func (s *Store) AllEdges(ctx context.Context) []topologystore.Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := make([]topologystore.Edge, len(s.edges))
	copy(edges, s.edges)
	return edges
}

func (s *Store) NodeCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *Store) EdgeCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}
