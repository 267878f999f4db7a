package testutil

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/specialistvlad/circuitgraph/internal/export"
	"github.com/stretchr/testify/require"
)

// DecodeDocuments parses the concatenated JSON documents a render with the
// json format writes, one per circuit.
func DecodeDocuments(t *testing.T, output string) []export.Document {
	t.Helper()

	var docs []export.Document
	dec := json.NewDecoder(strings.NewReader(output))
	for dec.More() {
		var doc export.Document
		require.NoError(t, dec.Decode(&doc))
		docs = append(docs, doc)
	}
	return docs
}
