package relate

// HasCycle reports whether the edge list contains a directed cycle.
//
// Edges only ever point backward in time, so a cycle indicates malformed
// input (typically duplicate dates producing an ambiguous order). This is
// a diagnostic, not a gate: the geometry layer tolerates arbitrary edges,
// so callers log the result and render anyway.
func HasCycle(edges []Edge) bool {
	adjacency := make(map[string][]string)
	for _, e := range edges {
		adjacency[e.From] = append(adjacency[e.From], e.To)
	}

	const (
		white = 0 // unvisited
		gray  = 1 // on the recursion stack
		black = 2 // fully explored
	)
	color := make(map[string]int)

	var visit func(id string) bool
	visit = func(id string) bool {
		color[id] = gray
		for _, next := range adjacency[id] {
			switch color[next] {
			case gray:
				return true
			case white:
				if visit(next) {
					return true
				}
			}
		}
		color[id] = black
		return false
	}

	for id := range adjacency {
		if color[id] == white && visit(id) {
			return true
		}
	}
	return false
}
