// Package spatial provides exact radius queries over the star catalog,
// one KD-tree per star kind. Indices are derived data: rebuilt from the
// store on each run and read-only afterwards, so they are safe to share.
package spatial

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"neutron-plotter/internal/catalog"
)

// Neighbor is a single radius-query hit.
type Neighbor struct {
	ID     uint32
	DistSq float32
}

// Index holds the stars of exactly one kind. Stars of other kinds are
// invisible to its queries.
type Index struct {
	tree *kdtree.Tree
	size int
}

// Build indexes every star of the given kind in the store.
func Build(store *catalog.Store, kind catalog.StarKind) *Index {
	pts := make(starPoints, 0, store.CountByKind(kind))
	for id := uint32(0); int(id) < store.Count(); id++ {
		if store.Kind(id) != kind {
			continue
		}
		c := store.Coord(id)
		pts = append(pts, starPoint{
			x:  float64(c[0]),
			y:  float64(c[1]),
			z:  float64(c[2]),
			id: id,
		})
	}
	ix := &Index{size: len(pts)}
	if len(pts) > 0 {
		ix.tree = kdtree.New(pts, false)
	}
	return ix
}

// Len returns the number of indexed stars.
func (ix *Index) Len() int { return ix.size }

// Within returns the stars inside the closed ball of the given squared
// radius around p, in no particular order.
func (ix *Index) Within(p catalog.Point, radiusSq float32) []Neighbor {
	if ix.size == 0 {
		return nil
	}
	q := starPoint{x: float64(p[0]), y: float64(p[1]), z: float64(p[2])}
	keep := kdtree.NewDistKeeper(float64(radiusSq))
	ix.tree.NearestSet(keep, q)

	out := make([]Neighbor, 0, keep.Len())
	for _, c := range keep.Heap {
		// The keeper seeds its heap with a sentinel carrying no point.
		pt, ok := c.Comparable.(starPoint)
		if !ok {
			continue
		}
		out = append(out, Neighbor{ID: pt.id, DistSq: float32(c.Dist)})
	}
	return out
}

// starPoint adapts a catalog star to the kdtree interfaces. Distances are
// squared Euclidean, as the kdtree package expects.
type starPoint struct {
	x, y, z float64
	id      uint32
}

func (p starPoint) Dims() int { return 3 }

func (p starPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(starPoint)
	switch d {
	case 0:
		return p.x - q.x
	case 1:
		return p.y - q.y
	default:
		return p.z - q.z
	}
}

func (p starPoint) Distance(c kdtree.Comparable) float64 {
	q := c.(starPoint)
	dx := p.x - q.x
	dy := p.y - q.y
	dz := p.z - q.z
	return dx*dx + dy*dy + dz*dz
}

type starPoints []starPoint

func (p starPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p starPoints) Len() int                      { return len(p) }
func (p starPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}
func (p starPoints) Pivot(d kdtree.Dim) int {
	return plane{starPoints: p, Dim: d}.Pivot()
}

// plane sorts starPoints along a single dimension for tree construction.
type plane struct {
	kdtree.Dim
	starPoints
}

func (p plane) Less(i, j int) bool {
	switch p.Dim {
	case 0:
		return p.starPoints[i].x < p.starPoints[j].x
	case 1:
		return p.starPoints[i].y < p.starPoints[j].y
	default:
		return p.starPoints[i].z < p.starPoints[j].z
	}
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.starPoints = p.starPoints[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.starPoints[i], p.starPoints[j] = p.starPoints[j], p.starPoints[i]
}
