package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/circuitgraph/internal/signature"
)

var portSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type", Required: true},
		{Name: "description"},
	},
}

// translatePorts reads every input or output block into a port map,
// rejecting duplicate names within the same direction.
func translatePorts(blocks hcl.Blocks, direction string) (signature.Ports, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	ports := make(signature.Ports, len(blocks))
	seen := make(map[string]*hcl.Block, len(blocks))

	for _, block := range blocks {
		name := block.Labels[0]
		if prev, exists := seen[name]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate %s port", direction),
				Detail:   fmt.Sprintf("The %s port '%s' was already declared at %s.", direction, name, prev.DefRange),
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[name] = block

		content, contentDiags := block.Body.Content(portSchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		// description is informational; it is still validated as a string.
		_, descDiags := optionalString(content.Attributes, "description")
		diags = append(diags, descDiags...)

		dt, typeDiags := typeExprToDataType(content.Attributes["type"].Expr)
		diags = append(diags, typeDiags...)
		if typeDiags.HasErrors() {
			continue
		}
		ports[name] = dt
	}
	return ports, diags
}
