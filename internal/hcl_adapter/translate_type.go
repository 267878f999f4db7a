// This file contains the logic for parsing HCL type expressions (e.g. `qubit`)
// into data types.

package hcl_adapter

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/circuitgraph/internal/datatype"
	"github.com/zclconf/go-cty/cty"
)

// typeExprToDataType converts a type expression into its DataType. The
// canonical form is a bare keyword; a quoted string is accepted as well.
func typeExprToDataType(expr hcl.Expression) (datatype.DataType, hcl.Diagnostics) {
	keyword, diags := typeKeyword(expr)
	if diags.HasErrors() {
		return datatype.Invalid, diags
	}

	dt, err := datatype.Parse(keyword)
	if err != nil {
		return datatype.Invalid, hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Unsupported type",
			Detail:   fmt.Sprintf("The keyword '%s' is not a valid type. Supported types are: %s.", keyword, strings.Join(datatype.Keywords(), ", ")),
			Subject:  expr.Range().Ptr(),
		}}
	}
	return dt, nil
}

func typeKeyword(expr hcl.Expression) (string, hcl.Diagnostics) {
	// We expect a simple identifier like `qubit`, not a complex expression.
	// AbsTraversalForExpr is the right tool to validate this structure.
	if traversal, diags := hcl.AbsTraversalForExpr(expr); !diags.HasErrors() && len(traversal) == 1 {
		return traversal.RootName(), nil
	}

	invalid := hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Invalid type specification",
		Detail:   "The 'type' attribute must be a simple type keyword like 'qubit', 'bit', or 'u32', not a complex expression.",
		Subject:  expr.Range().Ptr(),
	}}

	// A nil eval context: only literals can be evaluated here.
	val, valDiags := expr.Value(nil)
	if valDiags.HasErrors() || val.IsNull() || !val.Type().Equals(cty.String) {
		return "", invalid
	}
	return val.AsString(), nil
}
