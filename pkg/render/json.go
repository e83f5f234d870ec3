package render

import (
	"encoding/json"
	"slices"
)

// JSON document types. These are the wire shape consumed by hosting shells
// that draw the diagram themselves; field names are part of the contract.

// DiagramDoc is the serialized diagram.
type DiagramDoc struct {
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	Nodes   []NodeDoc  `json:"nodes"`
	Edges   []EdgeDoc  `json:"edges"`
	Ticks   []TickDoc  `json:"ticks"`
	Labels  []LabelDoc `json:"labels,omitempty"`
	Quality float64    `json:"quality"`
	Cyclic  bool       `json:"cyclic,omitempty"`
}

// NodeDoc is one scheme's box geometry.
type NodeDoc struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// EdgeDoc is one relationship with its drawable path.
type EdgeDoc struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Path  string `json:"path,omitempty"`
}

// TickDoc is one axis label.
type TickDoc struct {
	Year  int     `json:"year"`
	Label string  `json:"label"`
	Y     float64 `json:"y"`
}

// LabelDoc is one focus label box.
type LabelDoc struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Text   string  `json:"text"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RenderJSON serializes the diagram with indentation. Node order follows
// display order: chronological, reversed when the diagram was built with
// a reversed timeline.
func RenderJSON(d Diagram) ([]byte, error) {
	doc := DiagramDoc{
		Width:   d.Width,
		Height:  d.Height,
		Quality: d.Quality,
		Cyclic:  d.Cyclic,
	}

	doc.Nodes = make([]NodeDoc, 0, len(d.Nodes))
	for i := range d.Nodes {
		n := &d.Nodes[i]
		doc.Nodes = append(doc.Nodes, NodeDoc{
			ID:     n.Scheme.ID,
			Name:   n.Scheme.Name,
			X:      n.X,
			Y:      n.Y,
			Width:  n.Width,
			Height: n.Height,
		})
	}
	if d.Reverse {
		slices.Reverse(doc.Nodes)
	}

	// Edges that survived layout carry their curve path; the rest are
	// emitted bare so relationship data is never lost to filtering.
	paths := make(map[[2]string]string, len(d.Curves))
	for i := range d.Curves {
		c := &d.Curves[i]
		paths[[2]string{c.Edge.From, c.Edge.To}] = c.Path()
	}
	doc.Edges = make([]EdgeDoc, 0, len(d.Edges))
	for _, e := range d.Edges {
		doc.Edges = append(doc.Edges, EdgeDoc{
			From:  e.From,
			To:    e.To,
			Kind:  e.Kind,
			Label: e.Label,
			Path:  paths[[2]string{e.From, e.To}],
		})
	}

	doc.Ticks = make([]TickDoc, 0, len(d.Ticks))
	for _, t := range d.Ticks {
		doc.Ticks = append(doc.Ticks, TickDoc(t))
	}
	if d.Reverse {
		slices.Reverse(doc.Ticks)
	}

	for i := range d.Labels {
		l := &d.Labels[i]
		doc.Labels = append(doc.Labels, LabelDoc{
			From:   l.Curve.Edge.From,
			To:     l.Curve.Edge.To,
			Text:   l.Text,
			X:      l.X,
			Y:      l.Y,
			Width:  l.Width,
			Height: l.Height,
		})
	}

	return json.MarshalIndent(doc, "", "  ")
}
