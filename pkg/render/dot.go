package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/zhengming-dev/schemeline/pkg/relate"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
)

// edgeStyle maps edge kinds to DOT edge attributes.
var edgeStyle = map[string]string{
	relate.KindFeature: `color="#2563eb"`,
	relate.KindAuthor:  `color="#16a34a", style=dashed`,
	relate.KindSimilar: `color="#9333ea", style=dotted`,
}

// ToDOT converts the relationship graph to Graphviz DOT format, ignoring
// timeline geometry entirely. Useful for inspecting the inferred structure
// with standard graph tooling.
func ToDOT(schemes []scheme.Scheme, edges []relate.Edge) string {
	var buf bytes.Buffer
	buf.WriteString("digraph lineage {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	for i := range schemes {
		s := &schemes[i]
		label := s.Name
		if s.Deprecated {
			label += "\n(deprecated)"
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", s.ID, label)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		style, ok := edgeStyle[e.Kind]
		if !ok {
			style = `color="#9ca3af"`
		}
		fmt.Fprintf(&buf, "  %q -> %q [label=%q, %s];\n", e.From, e.To, e.Label, style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT graph to SVG using Graphviz.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
