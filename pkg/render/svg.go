package render

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/zhengming-dev/schemeline/pkg/layout"
	"github.com/zhengming-dev/schemeline/pkg/relate"
)

const cardInteractionCSS = `
    .card { transition: stroke-width 0.2s ease; }
    .card.highlight { stroke-width: 3; stroke: #d97706; }
    .connector { fill: none; opacity: 0.55; }
    .connector:hover { opacity: 1; stroke-width: 2.5; }
    .tick-line { stroke: #d4d4d4; stroke-dasharray: 4 4; }
    .tick-text { fill: #737373; font-size: 12px; }
    .edge-label rect { fill: #fffbeb; stroke: #f59e0b; }
    .edge-label text { font-size: 12px; fill: #78350f; }`

const cardInteractionJS = `
    document.querySelectorAll('.card').forEach(el => {
      el.addEventListener('mouseenter', () => el.classList.add('highlight'));
      el.addEventListener('mouseleave', () => {
        if (!el.dataset.pinned) el.classList.remove('highlight');
      });
    });`

// kindColor maps an edge kind to its connector stroke color.
var kindColor = map[string]string{
	relate.KindFeature: "#2563eb",
	relate.KindAuthor:  "#16a34a",
	relate.KindSimilar: "#9333ea",
}

// RenderSVG writes the lineage diagram as a standalone SVG document.
// Draw order: axis ticks, connectors, cards, then labels, so text is never
// buried under geometry.
func RenderSVG(d Diagram) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		d.Width, d.Height, d.Width, d.Height)

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", cardInteractionCSS)

	renderTicks(&buf, d)
	renderConnectors(&buf, d)
	renderCards(&buf, d)
	renderLabels(&buf, d)

	fmt.Fprintf(&buf, "  <script type=\"text/javascript\"><![CDATA[%s\n  ]]></script>\n", cardInteractionJS)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderTicks(buf *bytes.Buffer, d Diagram) {
	for _, t := range d.Ticks {
		fmt.Fprintf(buf, `  <line class="tick-line" x1="0" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n",
			t.Y, d.Width, t.Y)
		fmt.Fprintf(buf, `  <text class="tick-text" x="4" y="%.1f">%s</text>`+"\n",
			t.Y-4, escapeXML(t.Label))
	}
}

func renderConnectors(buf *bytes.Buffer, d Diagram) {
	for i := range d.Curves {
		c := &d.Curves[i]
		color, ok := kindColor[c.Edge.Kind]
		if !ok {
			color = "#9ca3af"
		}
		fmt.Fprintf(buf, `  <path class="connector" d="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			c.Path(), color)
	}
}

func renderCards(buf *bytes.Buffer, d Diagram) {
	highlight := d.HighlightSet()
	for i := range d.Nodes {
		n := &d.Nodes[i]
		class := "card"
		if hasHighlightedFeature(n, highlight) {
			class = "card highlight"
		}

		wrapURL(buf, n.Scheme.URL, func() {
			fmt.Fprintf(buf, `  <rect class="%s" id="card-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="6" fill="#ffffff" stroke="#404040"/>`+"\n",
				class, escapeXML(n.Scheme.ID), n.X, n.Y, n.Width, n.Height)
			renderCardText(buf, n)
		})
	}
}

func renderCardText(buf *bytes.Buffer, n *layout.Node) {
	lineY := n.Y + 20
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="14" font-weight="bold">%s</text>`+"\n",
		n.X+8, lineY, escapeXML(n.Scheme.Name))

	lineY += 18
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="12" fill="#525252">%s</text>`+"\n",
		n.X+8, lineY, escapeXML(joinNames(n.Scheme.Authors)))

	if len(n.Scheme.Maintainers) > 0 {
		lineY += 16
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="12" fill="#737373">%s</text>`+"\n",
			n.X+8, lineY, escapeXML(joinNames(n.Scheme.Maintainers)))
	}

	lineY += 16
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="11" fill="#a3a3a3">%s</text>`+"\n",
		n.X+8, lineY, escapeXML(n.Scheme.Date))
}

func renderLabels(buf *bytes.Buffer, d Diagram) {
	for i := range d.Labels {
		l := &d.Labels[i]
		buf.WriteString(`  <g class="edge-label">` + "\n")
		fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="4"/>`+"\n",
			l.X, l.Y, l.Width, l.Height)
		fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f">%s</text>`+"\n",
			l.X+4, l.Y+l.Height-5, escapeXML(l.Text))
		buf.WriteString("  </g>\n")
	}
}

func hasHighlightedFeature(n *layout.Node, highlight map[string]struct{}) bool {
	for _, f := range n.Scheme.Features {
		if _, ok := highlight[f]; ok {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	out := ""
	for i, name := range names {
		if i > 0 {
			out += "、"
		}
		out += name
	}
	return out
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func wrapURL(buf *bytes.Buffer, url string, fn func()) {
	if url != "" {
		fmt.Fprintf(buf, `  <a href="%s" target="_blank">`+"\n", escapeXML(url))
	}
	fn()
	if url != "" {
		buf.WriteString("  </a>\n")
	}
}
