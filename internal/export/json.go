package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/graph"
	"github.com/specialistvlad/circuitgraph/internal/signature"
)

// Document is the JSON form of a snapshot.
type Document struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Signature SignatureDocument `json:"signature"`
	Nodes     []NodeDocument    `json:"nodes"`
	Edges     []EdgeDocument    `json:"edges"`
}

// SignatureDocument maps port names to type names.
type SignatureDocument struct {
	Inputs  map[string]string `json:"inputs"`
	Outputs map[string]string `json:"outputs"`
}

type NodeDocument struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Operation string `json:"operation,omitempty"`
	Label     string `json:"label,omitempty"`
}

type EdgeDocument struct {
	Source     string `json:"source"`
	SourcePort string `json:"source_port"`
	Target     string `json:"target"`
	TargetPort string `json:"target_port"`
	Type       string `json:"type"`
}

// NewDocument converts snap into its JSON form.
func NewDocument(snap *graph.Snapshot) *Document {
	doc := &Document{
		ID:   snap.ID,
		Name: snap.Name,
		Signature: SignatureDocument{
			Inputs:  portNames(snap.Signature.Inputs()),
			Outputs: portNames(snap.Signature.Outputs()),
		},
		Nodes: make([]NodeDocument, 0, len(snap.Nodes)),
		Edges: make([]EdgeDocument, 0, len(snap.Edges)),
	}
	for _, n := range snap.Nodes {
		doc.Nodes = append(doc.Nodes, NodeDocument{
			Name:      n.Name,
			Kind:      n.Kind.String(),
			Operation: n.OperationID,
			Label:     n.Label,
		})
	}
	for _, e := range snap.Edges {
		doc.Edges = append(doc.Edges, EdgeDocument{
			Source:     e.Source,
			SourcePort: e.SourcePort,
			Target:     e.Target,
			TargetPort: e.TargetPort,
			Type:       e.Type.String(),
		})
	}
	return doc
}

func portNames(p signature.Ports) map[string]string {
	out := make(map[string]string, len(p))
	for name, t := range p {
		out[name] = t.String()
	}
	return out
}

// JSON writes the snapshot as an indented JSON document.
type JSON struct {
	w io.Writer
}

// NewJSON creates a JSON exporter writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

// Export implements graph.Exporter.
func (j *JSON) Export(ctx context.Context, snap *graph.Snapshot) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(snap)); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("JSON export written.", "graph", snap.Name)
	return nil
}
