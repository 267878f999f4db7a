package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/circuitgraph/internal/app"
	"github.com/specialistvlad/circuitgraph/internal/hcl_adapter"
	"github.com/stretchr/testify/require"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Output is everything the app wrote as artifacts.
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context. See RunIntegrationTestWithContext.
func RunIntegrationTest(t *testing.T, files map[string]string, formats ...string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, formats...)
}

// RunIntegrationTestWithContext writes files under a temporary root, loads
// "circuits" as the circuit path and "modules" as the modules path, and
// renders every circuit to the captured output in the given formats (json
// when none are given). Startup and render errors both end up in Err.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, formats ...string) *HarnessResult {
	t.Helper()

	// 1. Create a temporary root directory for the test.
	tmpDir := t.TempDir()
	circuitsDir := filepath.Join(tmpDir, "circuits")
	modulesDir := filepath.Join(tmpDir, "modules")
	require.NoError(t, os.Mkdir(circuitsDir, 0755))
	require.NoError(t, os.Mkdir(modulesDir, 0755))

	// 2. Write all HCL files to the temporary directory.
	//    The test provides relative paths (e.g., "modules/x/manifest.hcl"),
	//    which naturally creates the subdirectory structure within tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	if len(formats) == 0 {
		formats = []string{"json"}
	}
	cfg, err := app.NewConfig(app.Config{
		CircuitPath: circuitsDir,
		ModulesPath: modulesDir,
		Formats:     formats,
		OutputDir:   app.StdoutDir,
		LogLevel:    "debug",
		LogFormat:   "text",
	})
	require.NoError(t, err)

	// 3. Create the app and render.
	out, logs := &app.SafeBuffer{}, &app.SafeBuffer{}
	result := &HarnessResult{}
	result.App, result.Err = app.NewApp(ctx, out, logs, cfg, hcl_adapter.NewLoader())
	if result.Err == nil {
		result.Err = result.App.Render(ctx)
	}

	result.Output = out.String()
	result.LogOutput = logs.String()

	t.Cleanup(func() {
		if os.Getenv("CIRCUITGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), result.LogOutput)
		}
	})
	return result
}
