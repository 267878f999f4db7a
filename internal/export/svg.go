package export

import (
	"bytes"
	"context"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/specialistvlad/circuitgraph/internal/ctxlog"
	"github.com/specialistvlad/circuitgraph/internal/graph"
)

// Layout constants, in pixels.
const (
	svgMargin    = 20
	svgBoxWidth  = 120
	svgBoxHeight = 40
	svgColGap    = 80
	svgRowGap    = 30
	svgDotRadius = 8
)

const (
	svgBoxStyle   = "fill:#f5f5f5;stroke:#333333;stroke-width:1"
	svgDotStyle   = "fill:#333333"
	svgLineStyle  = "stroke:#555555;stroke-width:1.5;marker-end:url(#arrow)"
	svgLabelStyle = "font-family:sans-serif;font-size:14px;text-anchor:middle;dominant-baseline:middle"
	svgPortStyle  = "font-family:sans-serif;font-size:10px;fill:#777777"
)

// SVG draws the snapshot as a left-to-right layered diagram: boundary nodes
// as dots, operation nodes as labelled boxes, edges as arrows annotated with
// their port names.
type SVG struct {
	w io.Writer
}

// NewSVG creates an SVG exporter writing to w.
func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w}
}

type box struct {
	x, y     int
	boundary bool
}

func (b box) right() int {
	if b.boundary {
		return b.x + svgDotRadius
	}
	return b.x + svgBoxWidth
}

func (b box) left() int {
	if b.boundary {
		return b.x - svgDotRadius
	}
	return b.x
}

func (b box) middle() int {
	return b.y + svgBoxHeight/2
}

// Export implements graph.Exporter.
func (s *SVG) Export(ctx context.Context, snap *graph.Snapshot) error {
	depth := layers(snap)

	rows := make(map[int]int)
	boxes := make(map[string]box, len(snap.Nodes))
	maxCol, maxRow := 0, 0
	for _, n := range snap.Nodes {
		col := depth[n.Name]
		row := rows[col]
		rows[col]++

		b := box{
			x:        svgMargin + col*(svgBoxWidth+svgColGap),
			y:        svgMargin + row*(svgBoxHeight+svgRowGap),
			boundary: n.IsBoundary(),
		}
		if b.boundary {
			b.x += svgBoxWidth / 2
		}
		boxes[n.Name] = b

		maxCol = max(maxCol, col)
		maxRow = max(maxRow, row)
	}

	width := 2*svgMargin + (maxCol+1)*svgBoxWidth + maxCol*svgColGap
	height := 2*svgMargin + (maxRow+1)*svgBoxHeight + maxRow*svgRowGap

	// svgo does not report write errors.
	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(width, height)
	canvas.Title(snap.Name)

	canvas.Def()
	canvas.Marker("arrow", 10, 5, 10, 10, `orient="auto"`, `markerUnits="userSpaceOnUse"`)
	canvas.Path("M0,0 L10,5 L0,10 z", "fill:#555555")
	canvas.MarkerEnd()
	canvas.DefEnd()

	canvas.Gid("edges")
	for _, e := range snap.Edges {
		from, to := boxes[e.Source], boxes[e.Target]
		x1, y1 := from.right(), from.middle()
		x2, y2 := to.left(), to.middle()
		canvas.Line(x1, y1, x2, y2, svgLineStyle)
		canvas.Text(x1+4, y1-4, e.SourcePort, svgPortStyle)
		canvas.Text(x2-4, y2-4, e.TargetPort, svgPortStyle+";text-anchor:end")
	}
	canvas.Gend()

	canvas.Gid("nodes")
	for _, n := range snap.Nodes {
		b := boxes[n.Name]
		if b.boundary {
			canvas.Circle(b.x, b.middle(), svgDotRadius, svgDotStyle)
			continue
		}
		canvas.Roundrect(b.x, b.y, svgBoxWidth, svgBoxHeight, 6, 6, svgBoxStyle)
		canvas.Text(b.x+svgBoxWidth/2, b.middle(), n.DisplayLabel(), svgLabelStyle)
	}
	canvas.Gend()

	canvas.End()

	if _, err := buf.WriteTo(s.w); err != nil {
		return fmt.Errorf("failed to write SVG output: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("SVG export written.", "graph", snap.Name, "width", width, "height", height)
	return nil
}
