package export

import (
	"github.com/specialistvlad/circuitgraph/internal/dag"
	"github.com/specialistvlad/circuitgraph/internal/graph"
	"github.com/specialistvlad/circuitgraph/internal/node"
)

// layers assigns every node a column: the Start node is column 0, the End
// node the last column, and each operation node the length of the longest
// path reaching it. Operation nodes with no placeable position, either
// because nothing feeds them or because they sit on or behind a feedback
// loop, go to column 1.
func layers(snap *graph.Snapshot) map[string]int {
	deps := dag.New()
	for _, n := range snap.Nodes {
		deps.AddNode(n.Name)
	}
	for _, e := range snap.Edges {
		if e.Target == node.EndName {
			continue
		}
		// Self-loops cannot be placed either way; they are simply not recorded.
		_ = deps.AddEdge(e.Source, e.Target)
	}

	// A cycle only removes the affected nodes from the result.
	placed, _ := deps.Layers()

	depth := make(map[string]int, len(snap.Nodes))
	depth[node.StartName] = 0
	last := 1
	for _, n := range snap.Nodes {
		if n.Kind != node.Operation {
			continue
		}
		col := max(placed[n.Name], 1)
		depth[n.Name] = col
		last = max(last, col+1)
	}
	depth[node.EndName] = last
	return depth
}
