package render

import (
	"strings"
	"testing"

	"github.com/zhengming-dev/schemeline/pkg/connector"
	"github.com/zhengming-dev/schemeline/pkg/layout"
	"github.com/zhengming-dev/schemeline/pkg/relate"
	"github.com/zhengming-dev/schemeline/pkg/scheme"
	"github.com/zhengming-dev/schemeline/pkg/timeline"
)

func testDiagram() Diagram {
	older := scheme.Scheme{
		ID: "cangjie", Name: "倉頡", Authors: []string{"朱邦復"},
		Date: "19760000", Features: []string{"形碼"}, URL: "https://example.org/cangjie",
	}
	newer := scheme.Scheme{
		ID: "wubi", Name: "五筆字型", Authors: []string{"王永民"},
		Maintainers: []string{"社區"}, Date: "19830000", Features: []string{"形碼"},
	}
	nodes := []layout.Node{
		{Scheme: &older, X: 100, Y: 50, Width: 140, Height: 64},
		{Scheme: &newer, X: 400, Y: 300, Width: 160, Height: 82},
	}
	edges := []relate.Edge{
		{From: "wubi", To: "cangjie", Kind: relate.KindFeature, Label: "形碼"},
	}
	curves := connector.Curves(edges, nodes)
	return Diagram{
		Width:  960,
		Height: 600,
		Nodes:  nodes,
		Edges:  edges,
		Curves: curves,
		Labels: connector.Labels(curves, "wubi"),
		Ticks: []timeline.Tick{
			{Year: 1976, Label: "1976", Y: 50},
			{Year: 1983, Label: "1983", Y: 300},
		},
		Quality: 100,
	}
}

func TestRenderSVG_Structure(t *testing.T) {
	svg := string(RenderSVG(testDiagram()))

	wantFragments := []string{
		`viewBox="0 0 960.0 600.0"`,
		`id="card-cangjie"`,
		`id="card-wubi"`,
		`class="connector"`,
		`class="tick-text"`,
		">1976</text>",
		"倉頡",
		"王永民",
		`href="https://example.org/cangjie"`,
		"</svg>",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(svg, frag) {
			t.Errorf("RenderSVG() output missing %q", frag)
		}
	}
}

func TestRenderSVG_FocusLabels(t *testing.T) {
	svg := string(RenderSVG(testDiagram()))
	if !strings.Contains(svg, `class="edge-label"`) {
		t.Error("RenderSVG() missing focus edge label group")
	}
	if !strings.Contains(svg, "形碼") {
		t.Error("RenderSVG() missing edge label text")
	}
}

func TestRenderSVG_HighlightClass(t *testing.T) {
	d := testDiagram()

	svg := string(RenderSVG(d))
	if strings.Contains(svg, "card highlight") {
		t.Error("highlight class present without highlight tags")
	}

	d.Highlight = []string{"形碼"}
	svg = string(RenderSVG(d))
	if !strings.Contains(svg, "card highlight") {
		t.Error("highlight class missing for matching feature tag")
	}
}

func TestRenderSVG_EscapesMarkup(t *testing.T) {
	hostile := scheme.Scheme{ID: "x", Name: `<script>"attack"</script>`, Date: "19900000"}
	d := Diagram{
		Width: 100, Height: 100,
		Nodes: []layout.Node{{Scheme: &hostile, X: 0, Y: 0, Width: 120, Height: 64}},
	}

	svg := string(RenderSVG(d))
	if strings.Contains(svg, "<script>\"attack\"") {
		t.Error("RenderSVG() emitted unescaped markup from record data")
	}
	if !strings.Contains(svg, "&lt;script&gt;") {
		t.Error("RenderSVG() missing escaped name text")
	}
}

func TestRenderSVG_EmptyDiagram(t *testing.T) {
	svg := string(RenderSVG(Diagram{Width: 960, Height: 600}))
	if !strings.HasPrefix(svg, "<svg") || !strings.Contains(svg, "</svg>") {
		t.Error("empty diagram did not produce a well-formed SVG shell")
	}
}

func TestJoinNames(t *testing.T) {
	if got := joinNames([]string{"甲", "乙"}); got != "甲、乙" {
		t.Errorf("joinNames() = %q, want 甲、乙", got)
	}
	if got := joinNames(nil); got != "" {
		t.Errorf("joinNames(nil) = %q, want empty", got)
	}
}
