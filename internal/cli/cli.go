package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/circuitgraph/internal/app"
	"github.com/specialistvlad/circuitgraph/internal/export"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Command names the action selected on the command line.
type Command string

const (
	CommandRender     Command = "render"
	CommandOperations Command = "operations"
)

// Invocation is the parsed command line.
type Invocation struct {
	Command Command
	Config  *app.Config
}

type flags struct {
	modulesPath      string
	logFormat        string
	logLevel         string
	circuit          string
	formats          []string
	outputDir        string
	previewURL       string
	previewNamespace string
}

// Parse processes command-line arguments. It returns the selected command
// with its validated configuration, a boolean indicating if the program
// should exit cleanly (help or usage was printed), or an ExitError.
func Parse(args []string, output io.Writer) (*Invocation, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		f   flags
		inv *Invocation
	)

	root := &cobra.Command{
		Use:   "circuitgraph",
		Short: "Build and render typed quantum circuit graphs",
		Long: `circuitgraph - builds typed port graphs of quantum circuits from HCL
definitions, checks every connection against the operation signatures, and
renders the result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if args == nil {
		// cobra falls back to os.Args for a nil slice.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&f.modulesPath, "modules-path", "modules", "Path to the directory containing operation manifests.")
	pf.StringVar(&f.logFormat, "log-format", "json", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	render := &cobra.Command{
		Use:   "render [CIRCUIT_PATH]",
		Short: "Build every circuit found under CIRCUIT_PATH and export it",
		Long: `Build every circuit found under CIRCUIT_PATH and export it.

CIRCUIT_PATH is a single .hcl file or a directory containing .hcl files.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := f.circuit
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			slog.Debug("Circuit path determined.", "path", path)
			if path == "" {
				slog.Debug("No circuit path provided, printing usage and exiting.")
				return cmd.Usage()
			}

			cfg, err := newConfig(f, path)
			if err != nil {
				return err
			}
			inv = &Invocation{Command: CommandRender, Config: cfg}
			return nil
		},
	}
	rf := render.Flags()
	rf.StringVarP(&f.circuit, "circuit", "c", "", "Path to the circuit file or directory.")
	rf.StringSliceVarP(&f.formats, "format", "f", []string{"svg"},
		fmt.Sprintf("Export format, repeatable. Options: %s.", strings.Join(export.Formats(), ", ")))
	rf.StringVarP(&f.outputDir, "output-dir", "o", ".", "Directory for exported files, '-' writes to standard output.")
	rf.StringVar(&f.previewURL, "preview-url", "", "socket.io preview server to publish each circuit to.")
	rf.StringVar(&f.previewNamespace, "preview-namespace", "/", "socket.io namespace on the preview server.")

	operations := &cobra.Command{
		Use:   "operations",
		Short: "List every known operation with its signature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.outputDir = app.StdoutDir
			// Listing operations never publishes a preview.
			f.previewURL, f.previewNamespace = "", ""
			cfg, err := newConfig(f, "")
			if err != nil {
				return err
			}
			inv = &Invocation{Command: CommandOperations, Config: cfg}
			return nil
		},
	}

	root.AddCommand(render, operations)

	if err := root.Execute(); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if inv == nil {
		return nil, true, nil
	}
	slog.Debug("CLI parser finished successfully.", "command", inv.Command, "config", inv.Config)
	return inv, false, nil
}

func newConfig(f flags, circuitPath string) (*app.Config, error) {
	logFormat := strings.ToLower(f.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(f.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		CircuitPath:      circuitPath,
		ModulesPath:      f.modulesPath,
		Formats:          f.formats,
		OutputDir:        f.outputDir,
		PreviewURL:       f.previewURL,
		PreviewNamespace: f.previewNamespace,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return cfg, nil
}
