package integration_tests

import (
	"strings"
	"testing"

	"github.com/specialistvlad/circuitgraph/internal/testutil"
)

// Test for: invalid hcl is rejected
func TestErrorHandling_InvalidHCL_IsRejected(t *testing.T) {
	// --- Arrange ---
	// Define an HCL string with a clear syntax error (a missing closing brace).
	invalidHCL := `
		circuit "broken" {
			node "H" {
		// Missing closing brace here
	`

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"circuits/main.hcl": invalidHCL})

	// --- Assert ---
	if result.Err == nil {
		t.Fatal("the run should have returned an error for invalid HCL, but it returned nil")
	}

	// Check for keywords that indicate a parsing or decoding error, which
	// confirms the failure happened at the expected stage.
	errMsg := result.Err.Error()
	if !strings.Contains(errMsg, "failed to parse") && !strings.Contains(errMsg, "failed to decode") {
		t.Errorf("expected error message to indicate an HCL parsing failure, but got: %s", errMsg)
	}
	if result.Output != "" {
		t.Errorf("expected no output, got: %s", result.Output)
	}
}
