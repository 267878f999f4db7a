package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/circuitgraph/internal/config"
	"github.com/specialistvlad/circuitgraph/internal/signature"
)

// Traversal roots that refer to the circuit's own ports.
const (
	inputRoot  = "input"
	outputRoot = "output"
)

var circuitSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
		{Type: "node", LabelNames: []string{"name"}},
		{Type: "connect"},
	},
}

// nodeBody is the decoded form of a `node` block.
type nodeBody struct {
	Op    string `hcl:"op"`
	Label string `hcl:"label,optional"`
}

// Both connection sides stay raw expressions so they can be read as
// traversals rather than evaluated.
var connectSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "from", Required: true},
		{Name: "to", Required: true},
	},
}

// translateCircuit converts a `circuit` block into its config representation.
func translateCircuit(block *hcl.Block, filename string) (*config.Circuit, hcl.Diagnostics) {
	content, diags := block.Body.Content(circuitSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	_, descDiags := optionalString(content.Attributes, "description")
	diags = append(diags, descDiags...)

	inputs, inDiags := translatePorts(content.Blocks.OfType("input"), "input")
	diags = append(diags, inDiags...)
	outputs, outDiags := translatePorts(content.Blocks.OfType("output"), "output")
	diags = append(diags, outDiags...)

	circuit := &config.Circuit{
		Name:      block.Labels[0],
		Signature: signature.New(inputs, outputs),
		Source:    filename,
	}

	for _, nodeBlock := range content.Blocks.OfType("node") {
		decl, nodeDiags := translateNode(nodeBlock)
		diags = append(diags, nodeDiags...)
		if decl != nil {
			circuit.Nodes = append(circuit.Nodes, decl)
		}
	}

	for _, connectBlock := range content.Blocks.OfType("connect") {
		conn, connDiags := translateConnection(connectBlock)
		diags = append(diags, connDiags...)
		if conn != nil {
			circuit.Connections = append(circuit.Connections, conn)
		}
	}

	return circuit, diags
}

func translateNode(block *hcl.Block) (*config.NodeDecl, hcl.Diagnostics) {
	name := block.Labels[0]
	if name == inputRoot || name == outputRoot {
		return nil, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Reserved node name",
			Detail:   fmt.Sprintf("'%s' refers to the circuit boundary in connections and cannot be used as a node name.", name),
			Subject:  &block.LabelRanges[0],
		}}
	}

	var body nodeBody
	// A nil eval context is used because node attributes must be literal values.
	diags := gohcl.DecodeBody(block.Body, nil, &body)
	if diags.HasErrors() {
		return nil, diags
	}
	if body.Op == "" {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing operation",
			Detail:   fmt.Sprintf("Node '%s' must name the operation it applies.", name),
			Subject:  &block.DefRange,
		})
	}

	return &config.NodeDecl{Name: name, OperationID: body.Op, Label: body.Label}, diags
}

func translateConnection(block *hcl.Block) (*config.Connection, hcl.Diagnostics) {
	content, diags := block.Body.Content(connectSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	from, fromDiags := endpointForExpr(content.Attributes["from"].Expr, inputRoot, outputRoot)
	diags = append(diags, fromDiags...)
	to, toDiags := endpointForExpr(content.Attributes["to"].Expr, outputRoot, inputRoot)
	diags = append(diags, toDiags...)
	if diags.HasErrors() {
		return nil, diags
	}

	return &config.Connection{From: from, To: to, Pos: block.DefRange.String()}, diags
}

// endpointForExpr reads `<node>.<port>` from expr. boundary is the root that
// denotes the circuit's own port on this side; forbidden is the boundary root
// of the opposite side.
func endpointForExpr(expr hcl.Expression, boundary, forbidden string) (config.Endpoint, hcl.Diagnostics) {
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return config.Endpoint{}, diags
	}

	invalid := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid connection endpoint",
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		}}
	}

	if len(traversal) != 2 {
		return config.Endpoint{}, invalid("A connection endpoint must have the form <node>.<port>.")
	}
	attr, ok := traversal[1].(hcl.TraverseAttr)
	if !ok {
		return config.Endpoint{}, invalid("A connection endpoint must have the form <node>.<port>.")
	}

	root := traversal.RootName()
	switch root {
	case boundary:
		return config.Endpoint{Boundary: true, Port: attr.Name}, nil
	case forbidden:
		return config.Endpoint{}, invalid(fmt.Sprintf("Circuit %ss cannot be used on this side of a connection.", forbidden))
	}
	return config.Endpoint{Node: root, Port: attr.Name}, nil
}
