// Package render turns a computed lineage diagram into output artifacts.
//
// Three sinks are provided:
//
//   - SVG: the timeline diagram itself (cards, connectors, axis ticks,
//     focus labels), written with a plain bytes.Buffer.
//   - JSON: the full layout surface for hosting shells that draw
//     themselves (node boxes, edge paths, ticks, labels, quality score).
//   - DOT: the relationship graph as a Graphviz node-link diagram, an
//     alternative view that ignores geometry entirely.
package render

import (
	"github.com/zhengming-dev/schemeline/pkg/connector"
	"github.com/zhengming-dev/schemeline/pkg/layout"
	"github.com/zhengming-dev/schemeline/pkg/relate"
	"github.com/zhengming-dev/schemeline/pkg/timeline"
)

// Diagram is the complete output surface of the layout engine, consumed
// read-only by every sink.
type Diagram struct {
	Width  float64
	Height float64

	Nodes  []layout.Node
	Edges  []relate.Edge
	Curves []connector.Curve
	Labels []connector.Label
	Ticks  []timeline.Tick

	// Quality is the heuristic overlap score in [0, 100].
	Quality float64

	// Cyclic reports the cycle diagnostic over the edge list. Rendering
	// proceeds regardless; the flag is informational.
	Cyclic bool

	// Highlight lists feature tags the hosting shell wants emphasized.
	// The SVG sink marks matching cards with a highlight class.
	Highlight []string

	// Reverse indicates display order was flipped; sinks that emit node
	// lists honor it, geometry is unaffected.
	Reverse bool
}

// HighlightSet returns the highlight tags as a set for sink lookups.
func (d *Diagram) HighlightSet() map[string]struct{} {
	set := make(map[string]struct{}, len(d.Highlight))
	for _, tag := range d.Highlight {
		set[tag] = struct{}{}
	}
	return set
}
