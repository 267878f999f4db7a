package cli

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/circuitgraph/internal/app"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		args        []string
		expectExit  bool
		expectErr   bool
		expectCode  int
		expected    *Invocation
		checkOutput func(t *testing.T, output string)
	}{
		{
			name: "Render with all flags",
			args: []string{
				"render",
				"--circuit", "/test/circuits",
				"--modules-path=/test/modules",
				"--format=dot", "-f", "json",
				"--output-dir=/test/out",
				"--preview-url=http://localhost:3000",
				"--preview-namespace=/live",
				"--log-level=debug",
				"--log-format=text",
			},
			expected: &Invocation{
				Command: CommandRender,
				Config: &app.Config{
					CircuitPath:      "/test/circuits",
					ModulesPath:      "/test/modules",
					Formats:          []string{"dot", "json"},
					OutputDir:        "/test/out",
					PreviewURL:       "http://localhost:3000",
					PreviewNamespace: "/live",
					LogLevel:         "debug",
					LogFormat:        "text",
				},
			},
		},
		{
			name: "Positional path and defaults",
			args: []string{"render", "/positional/path"},
			expected: &Invocation{
				Command: CommandRender,
				Config: &app.Config{
					CircuitPath:      "/positional/path",
					ModulesPath:      "modules",
					Formats:          []string{"svg"},
					OutputDir:        ".",
					PreviewNamespace: "/",
					LogLevel:         "info",
					LogFormat:        "json",
				},
			},
		},
		{
			name: "Comma separated formats",
			args: []string{"render", "-c", "c.hcl", "--format=svg,hcl", "-o", "-"},
			expected: &Invocation{
				Command: CommandRender,
				Config: &app.Config{
					CircuitPath:      "c.hcl",
					ModulesPath:      "modules",
					Formats:          []string{"svg", "hcl"},
					OutputDir:        "-",
					PreviewNamespace: "/",
					LogLevel:         "info",
					LogFormat:        "json",
				},
			},
		},
		{
			name: "Operations listing",
			args: []string{"operations", "--modules-path", "/m", "--log-format", "TEXT"},
			expected: &Invocation{
				Command: CommandOperations,
				Config: &app.Config{
					ModulesPath: "/m",
					Formats:     []string{"svg"},
					OutputDir:   "-",
					LogLevel:    "info",
					LogFormat:   "text",
				},
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:", "Expected help text to be printed")
				require.Contains(t, output, "render")
			},
		},
		{
			name:       "No command triggers clean exit with help",
			args:       []string{},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:", "Expected help text to be printed")
			},
		},
		{
			name:       "Render without path prints usage",
			args:       []string{"render"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "--output-dir")
			},
		},
		{
			name:       "Unknown command returns an error",
			args:       []string{"simulate"},
			expectErr:  true,
			expectCode: 2,
		},
		{
			name:       "Invalid log level returns an error",
			args:       []string{"render", "--log-level=foo", "/path"},
			expectErr:  true,
			expectCode: 2,
		},
		{
			name:       "Invalid log format returns an error",
			args:       []string{"render", "--log-format=yaml", "/path"},
			expectErr:  true,
			expectCode: 2,
		},
		{
			name:       "Invalid export format returns an error",
			args:       []string{"render", "--format=png", "/path"},
			expectErr:  true,
			expectCode: 2,
		},
		{
			name:       "Too many paths returns an error",
			args:       []string{"render", "/a", "/b"},
			expectErr:  true,
			expectCode: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			inv, shouldExit, err := Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				exitErr, isExitError := err.(*ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				require.Equal(t, tc.expectCode, exitErr.Code)
				return
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expected != nil {
				if diff := cmp.Diff(tc.expected, inv); diff != "" {
					t.Errorf("Invocation mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}
