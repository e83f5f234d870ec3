package layout

import "testing"

func TestRefine_SeparatesCloseNodes(t *testing.T) {
	nodes := []Node{
		{X: 100, Y: 100, Width: 120, Height: 64},
		{X: 110, Y: 105, Width: 120, Height: 64},
	}
	before := nodes[1].CenterX() - nodes[0].CenterX()

	Refine(nodes, 0)

	after := nodes[1].CenterX() - nodes[0].CenterX()
	if after <= before {
		t.Errorf("horizontal separation %v did not grow from %v", after, before)
	}
}

func TestRefine_CoincidentCentersBreakHorizontally(t *testing.T) {
	nodes := []Node{
		{X: 100, Y: 100, Width: 120, Height: 64},
		{X: 100, Y: 100, Width: 120, Height: 64},
	}

	Refine(nodes, 0)

	if nodes[0].X == nodes[1].X {
		t.Error("coincident nodes still share an X after refinement")
	}
	if nodes[0].Y != nodes[1].Y {
		t.Errorf("horizontal tiebreak moved nodes vertically: %v vs %v", nodes[0].Y, nodes[1].Y)
	}
}

func TestRefine_DistantNodesUntouched(t *testing.T) {
	nodes := []Node{
		{X: 0, Y: 0, Width: 120, Height: 64},
		{X: 600, Y: 800, Width: 120, Height: 64},
	}
	want := []Node{nodes[0], nodes[1]}

	Refine(nodes, 0)

	for i := range nodes {
		if nodes[i] != want[i] {
			t.Errorf("node %d moved: %+v, want %+v", i, nodes[i], want[i])
		}
	}
}

func TestRefine_VerticalMovementDamped(t *testing.T) {
	// Two nodes stacked vertically: the repulsion must move them much less
	// vertically than the same offset would move them horizontally.
	vertical := []Node{
		{X: 100, Y: 100, Width: 120, Height: 64},
		{X: 100, Y: 130, Width: 120, Height: 64},
	}
	horizontal := []Node{
		{X: 100, Y: 100, Width: 120, Height: 64},
		{X: 130, Y: 100, Width: 120, Height: 64},
	}
	v0, h0 := vertical[0].Y, horizontal[0].X

	Refine(vertical[:], 0)
	Refine(horizontal[:], 0)

	vMove := v0 - vertical[0].Y
	hMove := h0 - horizontal[0].X
	if vMove >= hMove {
		t.Errorf("vertical displacement %v not damped below horizontal %v", vMove, hMove)
	}
}

func TestQualityScore(t *testing.T) {
	tests := []struct {
		name  string
		nodes []Node
		want  float64
	}{
		{"no nodes", nil, 100},
		{"single node", []Node{{Width: 120, Height: 64}}, 100},
		{
			"two disjoint",
			[]Node{
				{X: 0, Y: 0, Width: 120, Height: 64},
				{X: 500, Y: 500, Width: 120, Height: 64},
			},
			100,
		},
		{
			"two overlapping",
			[]Node{
				{X: 0, Y: 0, Width: 120, Height: 64},
				{X: 10, Y: 10, Width: 120, Height: 64},
			},
			50,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := QualityScore(tt.nodes); got != tt.want {
				t.Errorf("QualityScore() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoxesOverlap_PaddingCounts(t *testing.T) {
	a := Node{X: 0, Y: 0, Width: 100, Height: 50}
	// Touching at x=100 exactly: with padding the rectangles intersect.
	b := Node{X: 100, Y: 0, Width: 100, Height: 50}
	if !boxesOverlap(&a, &b, overlapPadding) {
		t.Error("padded boxes sharing an edge reported as disjoint")
	}
	far := Node{X: 200, Y: 0, Width: 100, Height: 50}
	if boxesOverlap(&a, &far, overlapPadding) {
		t.Error("boxes 100px apart reported as overlapping")
	}
}
