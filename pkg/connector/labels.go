package connector

import "github.com/zhengming-dev/schemeline/pkg/layout"

// Label placement constants. The collision pass is a fixed-point loop with
// an explicit cap, not a search: it either settles or stops best-effort.
const (
	labelIterations = 24
	labelStep       = 0.05

	// Labels slide along their curve between these parameter bounds so
	// they never collapse onto a node anchor.
	labelMinT = 0.2
	labelMaxT = 0.8

	labelHeight  = 18.0
	labelPadding = 4.0
)

// Label is the transient box for one edge's text annotation. Created and
// discarded per render pass; never persisted.
type Label struct {
	Curve  *Curve
	Text   string
	X, Y   float64 // box top-left
	Width  float64
	Height float64
	T      float64 // position parameter along the curve, in [labelMinT, labelMaxT]
}

// reposition recomputes the box coordinates from the curve parameter.
func (l *Label) reposition() {
	cx, cy := l.Curve.PointAt(l.T)
	l.X = cx - l.Width/2
	l.Y = cy - l.Height/2
}

// Labels builds collision-resolved label boxes for the edges touching the
// focused scheme. Author edges carry no label (the person's name already
// appears on both cards), and an empty focus yields no labels at all.
func Labels(curves []Curve, focusID string) []Label {
	if focusID == "" {
		return nil
	}

	var labels []Label
	for i := range curves {
		c := &curves[i]
		if c.Edge.Kind == "author" {
			continue
		}
		if c.Edge.From != focusID && c.Edge.To != focusID {
			continue
		}
		l := Label{
			Curve:  c,
			Text:   c.Edge.Label,
			Width:  layout.TextWidth(c.Edge.Label) + 2*labelPadding,
			Height: labelHeight,
			T:      0.5,
		}
		l.reposition()
		labels = append(labels, l)
	}

	resolveCollisions(labels)
	return labels
}

// resolveCollisions nudges overlapping label pairs apart along their
// curves: one toward its line's start, the other toward its end. The
// iteration parity decides which of the pair moves first, so repeated
// collisions alternate direction instead of marching one label to a bound.
// Stops early when a full pass finds no collisions.
func resolveCollisions(labels []Label) {
	for iter := 0; iter < labelIterations; iter++ {
		collided := false
		for i := range labels {
			for j := i + 1; j < len(labels); j++ {
				a, b := &labels[i], &labels[j]
				if !labelsOverlap(a, b) {
					continue
				}
				collided = true
				if iter%2 == 1 {
					a, b = b, a
				}
				a.T = clampT(a.T - labelStep)
				b.T = clampT(b.T + labelStep)
				a.reposition()
				b.reposition()
			}
		}
		if !collided {
			return
		}
	}
}

func labelsOverlap(a, b *Label) bool {
	if a.X+a.Width+labelPadding <= b.X-labelPadding || b.X+b.Width+labelPadding <= a.X-labelPadding {
		return false
	}
	if a.Y+a.Height+labelPadding <= b.Y-labelPadding || b.Y+b.Height+labelPadding <= a.Y-labelPadding {
		return false
	}
	return true
}

func clampT(t float64) float64 {
	if t < labelMinT {
		return labelMinT
	}
	if t > labelMaxT {
		return labelMaxT
	}
	return t
}
