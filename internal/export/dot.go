package export

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/graph"
)

// DOT writes a Graphviz digraph: one statement per node carrying its label,
// one per edge with the port names as tail and head labels.
type DOT struct {
	w io.Writer
}

// NewDOT creates a DOT exporter writing to w.
func NewDOT(w io.Writer) *DOT {
	return &DOT{w: w}
}

// Export implements graph.Exporter.
func (d *DOT) Export(ctx context.Context, snap *graph.Snapshot) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("digraph %s {\n", quoteDOT(snap.Name)))
	sb.WriteString("    rankdir=LR;\n")
	sb.WriteString("    node [shape=box];\n")
	sb.WriteString("\n")

	for _, n := range snap.Nodes {
		attrs := fmt.Sprintf("label=%s", quoteDOT(n.DisplayLabel()))
		if n.IsBoundary() {
			attrs += ", shape=point"
		}
		sb.WriteString(fmt.Sprintf("    %s [%s];\n", quoteDOT(n.Name), attrs))
	}

	sb.WriteString("\n")

	for _, e := range snap.Edges {
		sb.WriteString(fmt.Sprintf("    %s -> %s [taillabel=%s, headlabel=%s, tooltip=%s];\n",
			quoteDOT(e.Source), quoteDOT(e.Target),
			quoteDOT(e.SourcePort), quoteDOT(e.TargetPort),
			quoteDOT(e.Type.String())))
	}

	sb.WriteString("}\n")

	if _, err := io.WriteString(d.w, sb.String()); err != nil {
		return fmt.Errorf("failed to write DOT output: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("DOT export written.", "graph", snap.Name)
	return nil
}

// quoteDOT returns s as a double-quoted DOT ID.
func quoteDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
