package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/circuitgraph/internal/builder"
	"github.com/specialistvlad/circuitgraph/internal/config"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/export"
	"github.com/specialistvlad/circuitgraph/internal/graph"
	"github.com/specialistvlad/circuitgraph/internal/preview"
)

// Render builds every loaded circuit and exports it in each configured
// format. The first failing circuit aborts the run.
func (a *App) Render(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Render method started.")

	if len(a.model.Circuits) == 0 {
		a.logger.Warn("No circuits found, nothing to render.", "path", a.cfg.CircuitPath)
		return nil
	}

	var publisher *preview.Publisher
	if a.cfg.PreviewURL != "" {
		p, err := preview.NewPublisher(a.cfg.PreviewURL, a.cfg.PreviewNamespace)
		if err != nil {
			return fmt.Errorf("invalid preview configuration: %w", err)
		}
		publisher = p
	}

	if a.cfg.OutputDir != StdoutDir {
		if err := os.MkdirAll(a.cfg.OutputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for _, circuit := range a.model.Circuits {
		if err := a.renderCircuit(ctx, circuit, publisher); err != nil {
			return err
		}
	}

	a.logger.Info("Render finished.", "circuits", len(a.model.Circuits), "formats", a.cfg.Formats)
	return nil
}

// artifact is an exporter whose output is collected in memory and written
// out only after the whole export succeeded.
type artifact struct {
	format string
	buf    bytes.Buffer
}

func (a *App) renderCircuit(ctx context.Context, circuit *config.Circuit, publisher *preview.Publisher) error {
	logger := ctxlog.FromContext(ctx).With("circuit", circuit.Name)

	g, err := builder.Build(ctx, circuit, a.registry)
	if err != nil {
		return err
	}

	artifacts := make([]*artifact, 0, len(a.cfg.Formats))
	exporters := make([]graph.Exporter, 0, len(a.cfg.Formats)+1)
	for _, format := range a.cfg.Formats {
		art := &artifact{format: format}
		exp, err := export.ForFormat(format, &art.buf)
		if err != nil {
			return err
		}
		artifacts = append(artifacts, art)
		exporters = append(exporters, exp)
	}
	if publisher != nil {
		exporters = append(exporters, publisher)
	}

	if err := g.Export(ctx, exporters...); err != nil {
		return err
	}

	for _, art := range artifacts {
		if a.cfg.OutputDir == StdoutDir {
			if _, err := art.buf.WriteTo(a.outW); err != nil {
				return fmt.Errorf("failed to write %s output: %w", art.format, err)
			}
			continue
		}
		path := filepath.Join(a.cfg.OutputDir, circuit.Name+"."+art.format)
		if err := os.WriteFile(path, art.buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("Artifact written.", "path", path)
	}
	return nil
}
