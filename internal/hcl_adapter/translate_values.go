package hcl_adapter

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// stringAttr evaluates a literal attribute as a string. Numbers and bools are
// converted the way HCL would convert them for a string-typed argument.
func stringAttr(attr *hcl.Attribute) (string, hcl.Diagnostics) {
	// A nil eval context is used because these attributes must be literal values.
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}

	if val.IsNull() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid value",
			Detail:   fmt.Sprintf("The '%s' attribute must not be null.", attr.Name),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}

	str, err := convert.Convert(val, cty.String)
	if err != nil || !str.IsKnown() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid value",
			Detail:   fmt.Sprintf("The '%s' attribute must be a string, got %s.", attr.Name, val.Type().FriendlyName()),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}
	return str.AsString(), nil
}

// optionalString reads attribute name from attrs if present.
func optionalString(attrs hcl.Attributes, name string) (string, hcl.Diagnostics) {
	attr, ok := attrs[name]
	if !ok {
		return "", nil
	}
	return stringAttr(attr)
}
