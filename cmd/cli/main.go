package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/circuitgraph/internal/app"
	"github.com/specialistvlad/circuitgraph/internal/cli"
	"github.com/specialistvlad/circuitgraph/internal/hcl_adapter"
)

// main is the entrypoint for the circuitgraph application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	inv, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl_adapter.NewLoader()
	circuitApp, err := app.NewApp(ctx, outW, logW, inv.Config, loader)
	if err != nil {
		return &cli.ExitError{Code: 1, Message: fmt.Sprintf("application startup failed: %v", err)}
	}

	switch inv.Command {
	case cli.CommandOperations:
		return circuitApp.ListOperations()
	default:
		return circuitApp.Render(ctx)
	}
}
