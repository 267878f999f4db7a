package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/circuitgraph/internal/config"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	registry *registry.Registry
	model    *config.Model
}

// NewApp loads every operation manifest and circuit reachable from cfg and
// builds the registry from the builtin gates plus the loaded manifests.
// Logs go to logW; artifacts written to standard output go to outW.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	// A missing modules directory only means there are no extra operations,
	// but a circuit path is always named explicitly.
	if cfg.CircuitPath != "" {
		if _, err := os.Stat(cfg.CircuitPath); err != nil {
			return nil, fmt.Errorf("circuit path %s: %w", cfg.CircuitPath, err)
		}
	}

	// Merge all configuration paths into a single collection for the loader.
	var configPaths []string
	if cfg.CircuitPath != "" {
		configPaths = append(configPaths, cfg.CircuitPath)
	}
	if cfg.ModulesPath != "" {
		configPaths = append(configPaths, cfg.ModulesPath)
	}

	model, err := loader.Load(ctx, configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded.", "operations", len(model.Operations), "circuits", len(model.Circuits))

	reg, err := registry.New(registry.Builtin(), model.Operations)
	if err != nil {
		return nil, fmt.Errorf("failed to build operation registry: %w", err)
	}
	logger.Debug("Registry created.", "operations", reg.Len())

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		registry: reg,
		model:    model,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model.
func (a *App) Model() *config.Model {
	return a.model
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
