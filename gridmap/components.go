package gridmap

// Components finds all contiguous regions of non-blocked cells under
// 8-connectivity. Unknown cells count as open, matching how they are priced.
// Returns a slice of components; each component is a slice of row-major
// indices in BFS discovery order.
//
// To convert an index back to a Cell, use Coordinate(idx).
//
// Time:   O(R·C·8).
// Memory: O(R·C) for visited flags and output.
func (g *Grid) Components() [][]int {
	seen := make([]bool, g.Size())
	var comps [][]int

	for i0 := range g.terrain {
		if g.terrain[i0] == Blocked || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			uc := g.Coordinate(u)
			for _, d := range neighborOffsets {
				nr, nc := uc.Row+d[0], uc.Col+d[1]
				if !g.InBounds(nr, nc) {
					continue
				}
				vi := nr*g.cols + nc
				if g.terrain[vi] == Blocked || seen[vi] {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether a and b lie in the same open component.
// A blocked endpoint is never connected to anything.
func (g *Grid) Connected(a, b Cell) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	ai, bi := g.Index(a), g.Index(b)
	for _, comp := range g.Components() {
		var hasA, hasB bool
		for _, i := range comp {
			hasA = hasA || i == ai
			hasB = hasB || i == bi
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}

	return false
}
