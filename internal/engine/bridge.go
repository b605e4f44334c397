package engine

import "neutron-plotter/internal/catalog"

// bridge is a general star validated as making one neutron-to-neutron hop
// feasible, along with the minimum base range both its legs need.
type bridge struct {
	id      uint32
	legBase float32
}

// findBridge searches the general-star index for an intermediary making the
// hop src->dst feasible at the given base limit: the supercharged leg from
// src must be within limit*Boost of the general star, and the plain leg
// from the general star must reach dst within limit. Among the survivors it
// keeps the one needing the smallest base range; an incumbent is only
// replaced when beaten by more than the tolerance, so the first candidate
// encountered wins exact ties.
func (p *Planner) findBridge(src, dst uint32, limit float32) (bridge, bool) {
	srcCoord := p.store.Coord(src)
	boosted := limit * Boost
	boostedSq := boosted * boosted

	var best bridge
	found := false
	for _, nn := range p.general.Within(p.store.Coord(dst), limit*limit) {
		distSrcSq := catalog.DistSq(srcCoord, p.store.Coord(nn.ID))
		if distSrcSq > boostedSq {
			continue
		}
		distSrc := sqrt32(distSrcSq)
		distDst := sqrt32(nn.DistSq)
		legBase := max(distSrc/Boost, distDst)
		if legBase > limit+legTolerance {
			continue
		}
		if !found || legBase+legTolerance < best.legBase {
			best = bridge{id: nn.ID, legBase: legBase}
			found = true
		}
	}
	return best, found
}
