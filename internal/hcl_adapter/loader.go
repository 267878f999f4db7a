package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/circuitgraph/internal/config"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// rootSchema lists every block allowed at the top level of a file.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "operation", LabelNames: []string{"id"}},
		{Type: "circuit", LabelNames: []string{"name"}},
	},
}

// Load parses every .hcl file under paths and merges all operations and
// circuits into one model. It is agnostic to whether a path holds manifests,
// circuits, or both.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.FindFilesByExtension(".hcl", paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		if diags := l.translateFile(ctx, hclFile, file, model); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}
	}

	logger.Debug("HCL loading complete.", "operations", len(model.Operations), "circuits", len(model.Circuits))
	return model, nil
}

// Parse translates a single in-memory source. filename is only used in
// diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL source %s: %w", filename, diags)
	}
	model := config.NewModel()
	if diags := l.translateFile(ctx, hclFile, filename, model); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL source %s: %w", filename, diags)
	}
	return model, nil
}

// translateFile merges the blocks of one file into model.
func (l *Loader) translateFile(ctx context.Context, file *hcl.File, filename string, model *config.Model) hcl.Diagnostics {
	logger := ctxlog.FromContext(ctx)

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return diags
	}

	for _, block := range content.Blocks.OfType("operation") {
		id := block.Labels[0]
		if _, exists := model.Operations[id]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate operation definition",
				Detail:   fmt.Sprintf("An operation named '%s' has already been defined.", id),
				Subject:  &block.DefRange,
			})
			continue
		}
		sig, description, opDiags := translateOperation(block)
		diags = append(diags, opDiags...)
		if opDiags.HasErrors() {
			continue
		}
		model.Operations[id] = sig
		if description != "" {
			model.Descriptions[id] = description
		}
		logger.Debug("Operation definition loaded.", "operation", id, "signature", sig.String())
	}

	for _, block := range content.Blocks.OfType("circuit") {
		name := block.Labels[0]
		if _, exists := model.Circuit(name); exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate circuit definition",
				Detail:   fmt.Sprintf("A circuit named '%s' has already been defined.", name),
				Subject:  &block.DefRange,
			})
			continue
		}
		circuit, circuitDiags := translateCircuit(block, filename)
		diags = append(diags, circuitDiags...)
		if circuitDiags.HasErrors() {
			continue
		}
		model.Circuits = append(model.Circuits, circuit)
		logger.Debug("Circuit definition loaded.", "circuit", name, "nodes", len(circuit.Nodes), "connections", len(circuit.Connections))
	}

	return diags
}
