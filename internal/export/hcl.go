package export

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/graph"
	"github.com/specialistvlad/circuitgraph/internal/node"
	"github.com/specialistvlad/circuitgraph/internal/signature"
	"github.com/zclconf/go-cty/cty"
)

// Roots used by circuit files to address the circuit's own ports.
const (
	hclInputRoot  = "input"
	hclOutputRoot = "output"
)

// HCL writes the snapshot back as a `circuit` block in the syntax the loader
// reads.
type HCL struct {
	w io.Writer
}

// NewHCL creates an HCL exporter writing to w.
func NewHCL(w io.Writer) *HCL {
	return &HCL{w: w}
}

// Export implements graph.Exporter. It fails for node or port names that
// cannot be written as HCL traversals.
func (h *HCL) Export(ctx context.Context, snap *graph.Snapshot) error {
	if err := checkHCLNames(snap); err != nil {
		return err
	}

	f := hclwrite.NewEmptyFile()
	circuit := f.Body().AppendNewBlock("circuit", []string{snap.Name}).Body()

	appendPorts(circuit, "input", snap.Signature.Inputs())
	appendPorts(circuit, "output", snap.Signature.Outputs())

	for _, n := range snap.Nodes {
		if n.IsBoundary() {
			continue
		}
		circuit.AppendNewline()
		body := circuit.AppendNewBlock("node", []string{n.Name}).Body()
		body.SetAttributeValue("op", cty.StringVal(n.OperationID))
		if n.Label != "" {
			body.SetAttributeValue("label", cty.StringVal(n.Label))
		}
	}

	for _, e := range snap.Edges {
		from, to := e.Source, e.Target
		if from == node.StartName {
			from = hclInputRoot
		}
		if to == node.EndName {
			to = hclOutputRoot
		}
		circuit.AppendNewline()
		body := circuit.AppendNewBlock("connect", nil).Body()
		body.SetAttributeTraversal("from", traversal(from, e.SourcePort))
		body.SetAttributeTraversal("to", traversal(to, e.TargetPort))
	}

	if _, err := f.WriteTo(h.w); err != nil {
		return fmt.Errorf("failed to write HCL output: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("HCL export written.", "graph", snap.Name)
	return nil
}

func appendPorts(body *hclwrite.Body, kind string, ports signature.Ports) {
	for _, name := range ports.Names() {
		block := body.AppendNewBlock(kind, []string{name}).Body()
		block.SetAttributeTraversal("type", hcl.Traversal{hcl.TraverseRoot{Name: ports[name].Keyword()}})
	}
}

func traversal(root, attr string) hcl.Traversal {
	return hcl.Traversal{
		hcl.TraverseRoot{Name: root},
		hcl.TraverseAttr{Name: attr},
	}
}

func checkHCLNames(snap *graph.Snapshot) error {
	for _, n := range snap.Nodes {
		if n.IsBoundary() {
			continue
		}
		if n.Name == hclInputRoot || n.Name == hclOutputRoot || !hclsyntax.ValidIdentifier(n.Name) {
			return fmt.Errorf("node '%s' cannot be written as an HCL identifier", n.Name)
		}
	}
	for _, e := range snap.Edges {
		for _, port := range []string{e.SourcePort, e.TargetPort} {
			if !hclsyntax.ValidIdentifier(port) {
				return fmt.Errorf("port '%s' cannot be written as an HCL identifier", port)
			}
		}
	}
	return nil
}
