package builder

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/specialistvlad/circuitgraph/internal/config"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/datatype"
	"github.com/specialistvlad/circuitgraph/internal/graph"
	"github.com/specialistvlad/circuitgraph/internal/registry"
	"github.com/specialistvlad/circuitgraph/internal/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.New(registry.Builtin())
	require.NoError(t, err)
	return reg
}

// boundary names a circuit port; whether it is an input or an output
// depends on the side of the connection it is used on.
func boundary(port string) config.Endpoint { return config.Endpoint{Boundary: true, Port: port} }
func at(n, port string) config.Endpoint    { return config.Endpoint{Node: n, Port: port} }

func bellCircuit() *config.Circuit {
	qubits := signature.Ports{"q0": datatype.Qubit, "q1": datatype.Qubit}
	return &config.Circuit{
		Name:      "bell",
		Signature: signature.New(qubits, qubits),
		Nodes: []*config.NodeDecl{
			{Name: "H", OperationID: "H_gate", Label: "H"},
			{Name: "CX", OperationID: "CX_gate", Label: "CX"},
		},
		Connections: []*config.Connection{
			{From: boundary("q0"), To: at("H", "q")},
			{From: at("H", "q"), To: at("CX", "ctl")},
			{From: boundary("q1"), To: at("CX", "tgt")},
			{From: at("CX", "ctl"), To: boundary("q0")},
			{From: at("CX", "tgt"), To: boundary("q1")},
		},
	}
}

func TestBuild_Bell(t *testing.T) {
	// --- Arrange ---
	ctx := ctxlog.Discard(context.Background())

	// --- Act ---
	g, err := Build(ctx, bellCircuit(), newRegistry(t), graph.WithID("fixed"))

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, "bell", g.Name())
	assert.Equal(t, "fixed", g.ID())
	assert.Equal(t, 4, g.NodeCount(ctx))
	assert.Equal(t, 5, g.EdgeCount(ctx))
	for _, e := range g.Edges(ctx) {
		assert.Equal(t, datatype.Qubit, e.Type)
	}
}

func TestBuild_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *config.Circuit)
		wantErr error
		errMsg  string
	}{
		{
			name:    "unknown operation",
			mutate:  func(c *config.Circuit) { c.Nodes[0].OperationID = "T_gate" },
			wantErr: graph.ErrUnknownOperation,
			errMsg:  "circuit 'bell'",
		},
		{
			name:    "duplicate node",
			mutate:  func(c *config.Circuit) { c.Nodes[1].Name = "H" },
			wantErr: graph.ErrDuplicateNode,
		},
		{
			name:    "node shadows boundary",
			mutate:  func(c *config.Circuit) { c.Nodes[0].Name = "init" },
			wantErr: graph.ErrDuplicateNode,
		},
		{
			name:    "unknown node in connection",
			mutate:  func(c *config.Circuit) { c.Connections[1].To = at("CY", "ctl") },
			wantErr: graph.ErrUnknownNode,
			errMsg:  "H.q -> CY.ctl",
		},
		{
			name:    "unknown circuit input",
			mutate:  func(c *config.Circuit) { c.Connections[0].From = boundary("q9") },
			wantErr: graph.ErrUnknownPort,
			errMsg:  "input.q9 -> H.q",
		},
		{
			name:    "unknown circuit output",
			mutate:  func(c *config.Circuit) { c.Connections[4].To = boundary("q9") },
			wantErr: graph.ErrUnknownPort,
		},
		{
			name: "input wired straight to output",
			mutate: func(c *config.Circuit) {
				c.Connections = append(c.Connections, &config.Connection{From: boundary("q0"), To: boundary("q0")})
			},
			wantErr: graph.ErrMisusedBoundaryNode,
		},
		{
			name: "type mismatch",
			mutate: func(c *config.Circuit) {
				c.Signature = signature.New(
					signature.Ports{"q0": datatype.Bit, "q1": datatype.Qubit},
					c.Signature.Outputs(),
				)
			},
			wantErr: graph.ErrTypeMismatch,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			circuit := bellCircuit()
			circuit.Connections[0].Pos = "bell.hcl:1,1-8"
			tc.mutate(circuit)

			g, err := Build(ctxlog.Discard(context.Background()), circuit, newRegistry(t))

			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.errMsg != "" {
				assert.Contains(t, err.Error(), tc.errMsg)
			}
		})
	}
}

func TestBuild_NilCircuit(t *testing.T) {
	_, err := Build(context.Background(), nil, newRegistry(t))
	require.Error(t, err)
}

func TestBuild_InvalidSignature(t *testing.T) {
	circuit := bellCircuit()
	circuit.Signature = signature.New(signature.Ports{"": datatype.Qubit}, nil)

	_, err := Build(context.Background(), circuit, newRegistry(t))

	require.Error(t, err)
	assert.ErrorIs(t, err, signature.ErrInvalid)
}

func TestBuild_FeedbackLoopWarning(t *testing.T) {
	testCases := []struct {
		name     string
		extra    *config.Connection
		wantWarn bool
	}{
		{name: "acyclic", wantWarn: false},
		{name: "two node loop", extra: &config.Connection{From: at("CX", "ctl"), To: at("H", "q")}, wantWarn: true},
		{name: "self loop", extra: &config.Connection{From: at("H", "q"), To: at("H", "q")}, wantWarn: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var logs bytes.Buffer
			ctx := ctxlog.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&logs, nil)))
			circuit := bellCircuit()
			if tc.extra != nil {
				circuit.Connections = append(circuit.Connections, tc.extra)
			}

			g, err := Build(ctx, circuit, newRegistry(t))

			require.NoError(t, err, "feedback loops are not a build error")
			assert.NotNil(t, g)
			if tc.wantWarn {
				assert.Contains(t, logs.String(), "feedback loop")
			} else {
				assert.NotContains(t, logs.String(), "feedback loop")
			}
		})
	}
}
