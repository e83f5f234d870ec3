package layout

import "math"

// Refinement constants. The repulsion pass is a bounded relaxation, not a
// solver: it reduces residual overlap without guaranteeing zero overlap.
const (
	refineIterations = 30

	// DefaultNodeSpacing is the minimum center-to-center distance below
	// which nodes repel each other.
	DefaultNodeSpacing = 70.0

	forceScale = 900.0

	// Vertical movement is heavily damped so refinement cannot scramble
	// the chronological reading of the axis.
	verticalDamping   = 0.08
	horizontalDamping = 0.6

	overlapPadding = 6.0
)

// Refine runs a capped pairwise-repulsion pass over the nodes, updating
// positions in place. Node pairs closer than spacing (center-to-center)
// push each other apart with force inversely proportional to the squared
// distance. A spacing of zero uses DefaultNodeSpacing.
func Refine(nodes []Node, spacing float64) {
	if spacing == 0 {
		spacing = DefaultNodeSpacing
	}
	for iter := 0; iter < refineIterations; iter++ {
		moved := false
		for i := range nodes {
			for j := i + 1; j < len(nodes); j++ {
				if repel(&nodes[i], &nodes[j], spacing) {
					moved = true
				}
			}
		}
		if !moved {
			return
		}
	}
}

// repel pushes a and b apart when their centers are too close.
// Returns true if either node moved.
func repel(a, b *Node, spacing float64) bool {
	dx := b.CenterX() - a.CenterX()
	dy := b.CenterY() - a.CenterY()
	dist := math.Hypot(dx, dy)
	if dist >= spacing {
		return false
	}
	if dist < 1 {
		// Coincident centers: break the tie horizontally.
		dx, dy, dist = 1, 0, 1
	}

	force := forceScale / (dist * dist)
	fx := dx / dist * force * horizontalDamping
	fy := dy / dist * force * verticalDamping

	a.X -= fx
	a.Y -= fy
	b.X += fx
	b.Y += fy
	return true
}

// QualityScore grades a layout from 0 to 100 by the share of node pairs
// whose padded boxes intersect: 100 − 50·(overlapping / total). Diagnostic
// only; callers log it rather than gate on it.
func QualityScore(nodes []Node) float64 {
	total := len(nodes) * (len(nodes) - 1) / 2
	if total == 0 {
		return 100
	}
	overlapping := 0
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			if boxesOverlap(&nodes[i], &nodes[j], overlapPadding) {
				overlapping++
			}
		}
	}
	return 100 - 50*float64(overlapping)/float64(total)
}

// boxesOverlap reports whether the padded rectangles intersect on both axes.
func boxesOverlap(a, b *Node, pad float64) bool {
	if a.X+a.Width+pad <= b.X-pad || b.X+b.Width+pad <= a.X-pad {
		return false
	}
	if a.Y+a.Height+pad <= b.Y-pad || b.Y+b.Height+pad <= a.Y-pad {
		return false
	}
	return true
}
