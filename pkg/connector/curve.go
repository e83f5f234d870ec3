// Package connector turns inferred relationship edges and laid-out nodes
// into curve geometry and collision-resolved label boxes.
package connector

import (
	"fmt"

	"github.com/zhengming-dev/schemeline/pkg/layout"
	"github.com/zhengming-dev/schemeline/pkg/relate"
)

// Curve is the drawable geometry of one relationship edge: a cubic Bézier
// from the later scheme's top edge down to the earlier scheme's bottom edge.
type Curve struct {
	Edge   relate.Edge
	X1, Y1 float64 // start: top-center of the derived (from) node
	X2, Y2 float64 // end: bottom-center of the origin (to) node
}

// Path returns the curve as an SVG path string. Control points sit
// directly above/below the endpoints at the vertical midpoint, giving a
// low-curvature "S" that reads naturally on a top-to-bottom timeline.
func (c *Curve) Path() string {
	midY := (c.Y1 + c.Y2) / 2
	return fmt.Sprintf("M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f",
		c.X1, c.Y1, c.X1, midY, c.X2, midY, c.X2, c.Y2)
}

// MidPoint returns the point at the parametric middle of the cubic, which
// is where labels naturally sit.
func (c *Curve) MidPoint() (float64, float64) {
	return c.PointAt(0.5)
}

// PointAt evaluates the cubic at parameter t in [0, 1].
func (c *Curve) PointAt(t float64) (float64, float64) {
	midY := (c.Y1 + c.Y2) / 2
	return cubic(c.X1, c.X1, c.X2, c.X2, t), cubic(c.Y1, midY, midY, c.Y2, t)
}

func cubic(p0, p1, p2, p3, t float64) float64 {
	u := 1 - t
	return u*u*u*p0 + 3*u*u*t*p1 + 3*u*t*t*p2 + t*t*t*p3
}

// Curves builds drawable geometry for every edge whose endpoints both
// survived layout. Edges referencing a filtered or unknown scheme are
// dropped silently; a dangling reference is expected after deprecation
// filtering, never an error.
func Curves(edges []relate.Edge, nodes []layout.Node) []Curve {
	byID := make(map[string]*layout.Node, len(nodes))
	for i := range nodes {
		byID[nodes[i].Scheme.ID] = &nodes[i]
	}

	curves := make([]Curve, 0, len(edges))
	for _, e := range edges {
		from, okFrom := byID[e.From]
		to, okTo := byID[e.To]
		if !okFrom || !okTo {
			continue
		}
		x1, y1 := from.TopCenter()
		x2, y2 := to.BottomCenter()
		curves = append(curves, Curve{Edge: e, X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	return curves
}
