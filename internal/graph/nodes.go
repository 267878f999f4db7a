package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/node"
	"github.com/specialistvlad/circuitgraph/internal/topologystore"
)

// AddOperationNode adds a node that instantiates operationID. The operation
// must exist in the registry. Port types are not examined until edges are
// added.
func (g *Graph) AddOperationNode(ctx context.Context, name, operationID, label string) error {
	logger := ctxlog.FromContext(ctx).With("graph", g.name, "node", name, "operation", operationID)
	g.warnIfExported(ctx, "AddOperationNode")

	if _, exists := g.store.GetNode(ctx, name); exists {
		logger.Debug("Node rejected: name already taken.")
		return fmt.Errorf("%w: '%s'", ErrDuplicateNode, name)
	}
	if _, err := g.registry.Lookup(operationID); err != nil {
		logger.Debug("Node rejected: operation not in registry.")
		return fmt.Errorf("node '%s': %w", name, err)
	}

	if err := g.store.AddNode(ctx, node.NewOperation(name, operationID, label)); err != nil {
		if errors.Is(err, topologystore.ErrNodeExists) {
			return fmt.Errorf("%w: '%s'", ErrDuplicateNode, name)
		}
		return err
	}

	logger.Debug("Operation node added.")
	return nil
}
