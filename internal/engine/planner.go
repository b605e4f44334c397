package engine

import (
	"fmt"
	"log"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"neutron-plotter/internal/catalog"
	"neutron-plotter/internal/spatial"
)

// Planner computes neutron-highway routes over a loaded star catalog.
// The catalog and both indices are read-only after construction, so a
// Planner may be shared; each Plan call keeps its search state local.
type Planner struct {
	store   *catalog.Store
	neutron *spatial.Index
	general *spatial.Index
}

// NewPlanner builds the neutron and general star indices from the store.
func NewPlanner(store *catalog.Store) *Planner {
	p := &Planner{store: store}

	// The two trees are independent, build them in parallel.
	var g errgroup.Group
	g.Go(func() error {
		p.neutron = spatial.Build(store, catalog.KindNeutron)
		return nil
	})
	g.Go(func() error {
		p.general = spatial.Build(store, catalog.KindGeneral)
		return nil
	})
	g.Wait()

	log.Printf("[Engine] Indexed %d neutron, %d general stars", p.neutron.Len(), p.general.Len())
	return p
}

// Plan computes a route from start to goal, both neutron star ids, using
// baseRange as the initial working jump limit in light-years.
//
// The search is a greedy, non-backtracking heuristic: at each position it
// tries the reachable neutron stars closest to the goal first and commits
// to the first one a bridge validates. When no candidate works, the working
// limit is raised by a fixed step and the iteration retried; the search
// fails with ErrNoRoute once the limit passes its hard ceiling. The
// returned route is feasible, not necessarily shortest.
//
// progress receives occasional human-readable status lines; it may be nil.
func (p *Planner) Plan(start, goal uint32, baseRange float32, progress func(string)) (*Route, error) {
	if progress == nil {
		progress = func(string) {}
	}
	if err := p.checkEndpoint(start); err != nil {
		return nil, err
	}
	if err := p.checkEndpoint(goal); err != nil {
		return nil, err
	}
	if start == goal {
		return &Route{}, nil
	}

	var (
		limit    = baseRange
		current  = start
		bridges  []uint32
		required float32
		steps    int
		stalls   int
	)
	goalCoord := p.store.Coord(goal)

	for current != goal {
		curGoal := catalog.Dist(p.store.Coord(current), goalCoord)

		// Generous over-approximation of any hop reachable at this limit:
		// a boosted leg plus a plain leg.
		edge := limit * (Boost + 1)
		type candidate struct {
			goalDist float32
			id       uint32
		}
		var candidates []candidate
		for _, nn := range p.neutron.Within(p.store.Coord(current), edge*edge) {
			if nn.ID == current {
				continue
			}
			goalDist := catalog.Dist(p.store.Coord(nn.ID), goalCoord)
			if goalDist+progressEpsilon < curGoal {
				candidates = append(candidates, candidate{goalDist: goalDist, id: nn.ID})
			}
		}
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].goalDist < candidates[j].goalDist
		})

		moved := false
		for _, cand := range candidates {
			br, ok := p.findBridge(current, cand.id, limit)
			if !ok {
				continue
			}
			if br.legBase > required {
				required = br.legBase
			}
			bridges = append(bridges, br.id)
			current = cand.id
			steps++
			moved = true
			stalls = 0
			break
		}

		if !moved {
			limit += limitStep
			stalls++
			if stalls%stallNoticeEvery == 0 {
				progress(fmt.Sprintf("Raised limit to %.3f ly after %d stalls (at %s)",
					limit, stalls, p.store.Name(current)))
			}
			if limit > limitCeiling {
				log.Printf("[Engine] Limit exceeded %.0f ly at %s, aborting", limitCeiling, p.store.Name(current))
				return nil, ErrNoRoute
			}
		}
	}

	return &Route{
		Bridges:       bridges,
		RequiredRange: required,
		Jumps:         steps * 2,
	}, nil
}

func (p *Planner) checkEndpoint(id uint32) error {
	if int(id) >= p.store.Count() {
		return fmt.Errorf("star id %d out of range", id)
	}
	if p.store.Kind(id) != catalog.KindNeutron {
		return &NotNeutronError{Name: p.store.Name(id)}
	}
	return nil
}

func sqrt32(v float32) float32 {
	return float32(math.Sqrt(float64(v)))
}
