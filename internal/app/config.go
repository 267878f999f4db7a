package app

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/circuitgraph/internal/export"
)

// StdoutDir as OutputDir writes every artifact to the output stream instead
// of to files.
const StdoutDir = "-"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	CircuitPath string // hcl files with circuit blocks
	ModulesPath string // hcl files with operation manifests

	// Formats are export format names, see export.Formats.
	Formats   []string
	OutputDir string

	// PreviewURL enables publishing to a live preview server when set.
	PreviewURL       string
	PreviewNamespace string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"svg"}
	}
	formats := make([]string, 0, len(cfg.Formats))
	for _, f := range cfg.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if !slices.Contains(export.Formats(), f) {
			return nil, fmt.Errorf("invalid format '%s': must be one of %s", f, strings.Join(export.Formats(), ", "))
		}
		if !slices.Contains(formats, f) {
			formats = append(formats, f)
		}
	}
	cfg.Formats = formats

	if cfg.OutputDir == "" {
		return nil, errors.New("OutputDir cannot be empty, use '-' for standard output")
	}

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format '%s': must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level '%s': must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
