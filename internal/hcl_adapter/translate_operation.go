package hcl_adapter

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/circuitgraph/internal/signature"
)

var operationSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "description"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "input", LabelNames: []string{"name"}},
		{Type: "output", LabelNames: []string{"name"}},
	},
}

// translateOperation converts an `operation` block into a signature and its
// description.
func translateOperation(block *hcl.Block) (signature.Signature, string, hcl.Diagnostics) {
	content, diags := block.Body.Content(operationSchema)
	if diags.HasErrors() {
		return signature.Signature{}, "", diags
	}

	description, descDiags := optionalString(content.Attributes, "description")
	diags = append(diags, descDiags...)

	inputs, inDiags := translatePorts(content.Blocks.OfType("input"), "input")
	diags = append(diags, inDiags...)
	outputs, outDiags := translatePorts(content.Blocks.OfType("output"), "output")
	diags = append(diags, outDiags...)

	return signature.New(inputs, outputs), description, diags
}
