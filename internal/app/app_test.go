package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/circuitgraph/internal/hcl_adapter"
	"github.com/specialistvlad/circuitgraph/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bellHCL = `
circuit "bell" {
  input  "q0" { type = qubit }
  input  "q1" { type = qubit }
  output "q0" { type = qubit }
  output "q1" { type = qubit }

  node "H" {
    op    = "H_gate"
    label = "H"
  }
  node "CX" {
    op = "CX_gate"
  }

  connect {
    from = input.q0
    to   = H.q
  }
  connect {
    from = H.q
    to   = CX.ctl
  }
  connect {
    from = input.q1
    to   = CX.tgt
  }
  connect {
    from = CX.ctl
    to   = output.q0
  }
  connect {
    from = CX.tgt
    to   = output.q1
  }
}
`

const readoutManifest = `
operation "Readout" {
  description = "classical readout"
  input  "c" { type = bit }
  output "v" { type = u32 }
}
`

func TestNewConfig(t *testing.T) {
	testCases := []struct {
		name   string
		in     Config
		want   *Config
		errMsg string
	}{
		{
			name: "defaults",
			in:   Config{OutputDir: "out"},
			want: &Config{OutputDir: "out", Formats: []string{"svg"}},
		},
		{
			name: "formats are normalised and deduplicated",
			in:   Config{OutputDir: "-", Formats: []string{"DOT", " json", "dot"}},
			want: &Config{OutputDir: "-", Formats: []string{"dot", "json"}},
		},
		{
			name:   "unknown format",
			in:     Config{OutputDir: "out", Formats: []string{"png"}},
			errMsg: "invalid format 'png'",
		},
		{
			name:   "empty output dir",
			in:     Config{},
			errMsg: "OutputDir cannot be empty",
		},
		{
			name:   "bad log format",
			in:     Config{OutputDir: "out", LogFormat: "yaml"},
			errMsg: "invalid log-format",
		},
		{
			name:   "bad log level",
			in:     Config{OutputDir: "out", LogLevel: "trace"},
			errMsg: "invalid log-level",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConfig(tc.in)

			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewApp_MergesManifestOperations(t *testing.T) {
	root := WriteFiles(t, map[string]string{
		"circuits/bell.hcl":            bellHCL,
		"modules/readout/manifest.hcl": readoutManifest,
	})

	a, _, logs := SetupAppTest(t, Config{
		CircuitPath: filepath.Join(root, "circuits"),
		ModulesPath: filepath.Join(root, "modules"),
		OutputDir:   "-",
	})

	_, err := a.Registry().Lookup("Readout")
	assert.NoError(t, err)
	_, err = a.Registry().Lookup("H_gate")
	assert.NoError(t, err)
	assert.Len(t, a.Model().Circuits, 1)
	assert.Contains(t, logs.String(), "Configuration loaded.")
}

func TestNewApp_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		files   map[string]string
		wantErr error
		errMsg  string
	}{
		{
			name:   "invalid HCL",
			files:  map[string]string{"main.hcl": `circuit "x" {`},
			errMsg: "failed to load configuration",
		},
		{
			name:    "manifest redefines a builtin gate",
			files:   map[string]string{"h.hcl": `operation "H_gate" {}`},
			wantErr: registry.ErrDuplicateOperation,
			errMsg:  "failed to build operation registry",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := WriteFiles(t, tc.files)
			cfg, err := NewConfig(Config{CircuitPath: root, OutputDir: "-"})
			require.NoError(t, err)

			_, err = NewApp(context.Background(), &SafeBuffer{}, nil, cfg, hcl_adapter.NewLoader())

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestNewApp_MissingCircuitPath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist.hcl")
	cfg, err := NewConfig(Config{CircuitPath: missing, ModulesPath: filepath.Join(t.TempDir(), "modules"), OutputDir: "-"})
	require.NoError(t, err)

	_, err = NewApp(context.Background(), &SafeBuffer{}, nil, cfg, hcl_adapter.NewLoader())

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}

func TestRender_ToFiles(t *testing.T) {
	// --- Arrange ---
	root := WriteFiles(t, map[string]string{"bell.hcl": bellHCL})
	outDir := filepath.Join(t.TempDir(), "out")
	a, out, _ := SetupAppTest(t, Config{
		CircuitPath: root,
		OutputDir:   outDir,
		Formats:     []string{"svg", "dot", "json", "hcl"},
	})

	// --- Act ---
	err := a.Render(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, out.String())
	for _, ext := range []string{"svg", "dot", "json", "hcl"} {
		data, err := os.ReadFile(filepath.Join(outDir, "bell."+ext))
		require.NoError(t, err, "missing bell.%s", ext)
		assert.NotEmpty(t, data)
	}

	dot, err := os.ReadFile(filepath.Join(outDir, "bell.dot"))
	require.NoError(t, err)
	assert.Equal(t, 5, strings.Count(string(dot), " -> "))
}

func TestRender_ToStdout(t *testing.T) {
	root := WriteFiles(t, map[string]string{"bell.hcl": bellHCL})
	a, out, _ := SetupAppTest(t, Config{CircuitPath: root, OutputDir: StdoutDir, Formats: []string{"dot"}})

	require.NoError(t, a.Render(context.Background()))

	assert.True(t, strings.HasPrefix(out.String(), `digraph "bell" {`))
}

func TestRender_NoCircuits(t *testing.T) {
	root := WriteFiles(t, map[string]string{"readout.hcl": readoutManifest})
	a, out, logs := SetupAppTest(t, Config{CircuitPath: root, OutputDir: StdoutDir})

	require.NoError(t, a.Render(context.Background()))

	assert.Empty(t, out.String())
	assert.Contains(t, logs.String(), "No circuits found")
}

func TestRender_BuildErrorNamesConnection(t *testing.T) {
	broken := strings.Replace(bellHCL, "to   = CX.ctl", "to   = CX.control", 1)
	root := WriteFiles(t, map[string]string{"bell.hcl": broken})
	a, out, _ := SetupAppTest(t, Config{CircuitPath: root, OutputDir: StdoutDir})

	err := a.Render(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "H.q -> CX.control")
	assert.Contains(t, err.Error(), "unknown port")
	assert.Empty(t, out.String(), "nothing is written for a circuit that failed to build")
}

func TestRender_InvalidPreviewURL(t *testing.T) {
	root := WriteFiles(t, map[string]string{"bell.hcl": bellHCL})
	a, _, _ := SetupAppTest(t, Config{CircuitPath: root, OutputDir: StdoutDir, PreviewURL: "ftp://nowhere"})

	err := a.Render(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid preview configuration")
}

func TestListOperations(t *testing.T) {
	root := WriteFiles(t, map[string]string{"readout.hcl": readoutManifest})
	a, out, _ := SetupAppTest(t, Config{ModulesPath: root, OutputDir: StdoutDir})

	require.NoError(t, a.ListOperations())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+len(registry.Builtin())+1)
	assert.True(t, strings.HasPrefix(lines[0], "OPERATION"))
	assert.Contains(t, out.String(), "in{ctl:Qubit, tgt:Qubit} -> out{ctl:Qubit, tgt:Qubit}")
	assert.Regexp(t, `Readout\s+in\{c:Bit\} -> out\{v:u32\}\s+classical readout`, out.String())
}
