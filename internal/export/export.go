// Package export renders graph snapshots into files: Graphviz DOT, SVG, JSON
// and HCL. Every renderer implements graph.Exporter.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/circuitgraph/internal/graph"
)

type factory func(w io.Writer) graph.Exporter

var formats = map[string]factory{
	"dot":  func(w io.Writer) graph.Exporter { return NewDOT(w) },
	"svg":  func(w io.Writer) graph.Exporter { return NewSVG(w) },
	"json": func(w io.Writer) graph.Exporter { return NewJSON(w) },
	"hcl":  func(w io.Writer) graph.Exporter { return NewHCL(w) },
}

// Formats lists the supported format names in sorted order. The name doubles
// as the file extension.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ForFormat returns the exporter for the named format writing to w.
func ForFormat(name string, w io.Writer) (graph.Exporter, error) {
	f, ok := formats[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown export format '%s' (supported: %s)", name, strings.Join(Formats(), ", "))
	}
	return f(w), nil
}
