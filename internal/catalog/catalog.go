package catalog

import "math"

// Point is a position in 3-D space, in light-years.
type Point [3]float32

// StarKind classifies a catalog entry. The byte values match the wire format.
type StarKind byte

const (
	KindUnknown StarKind = 0
	KindGeneral StarKind = 1
	KindNeutron StarKind = 2
)

func (k StarKind) String() string {
	switch k {
	case KindGeneral:
		return "general"
	case KindNeutron:
		return "neutron"
	default:
		return "unknown"
	}
}

// Entry is one star as it appears in the catalog.
type Entry struct {
	Coord Point
	Name  string
	Kind  StarKind
}

// Store is the in-memory star catalog: parallel slices indexed by a dense
// id (position = id) plus a derived name lookup. It is built once and never
// mutated afterwards, so it is safe to share without locking.
type Store struct {
	coords   []Point
	names    []string
	kinds    []StarKind
	nameToID map[string]uint32
}

// New builds a Store from entries. Ids are assigned by position. Duplicate
// names are not an error; the last one wins in the name lookup.
func New(entries []Entry) *Store {
	s := &Store{
		coords:   make([]Point, len(entries)),
		names:    make([]string, len(entries)),
		kinds:    make([]StarKind, len(entries)),
		nameToID: make(map[string]uint32, len(entries)),
	}
	for i, e := range entries {
		s.coords[i] = e.Coord
		s.names[i] = e.Name
		s.kinds[i] = e.Kind
	}
	for i, name := range s.names {
		s.nameToID[name] = uint32(i)
	}
	return s
}

// Count returns the number of stars in the catalog.
func (s *Store) Count() int { return len(s.coords) }

// Coord returns the position of the star with the given id.
func (s *Store) Coord(id uint32) Point { return s.coords[id] }

// Name returns the display name of the star with the given id.
func (s *Store) Name(id uint32) string { return s.names[id] }

// Kind returns the classification of the star with the given id.
func (s *Store) Kind(id uint32) StarKind { return s.kinds[id] }

// IDByName resolves an exact star name to its id.
func (s *Store) IDByName(name string) (uint32, bool) {
	id, ok := s.nameToID[name]
	return id, ok
}

// Distance returns the distance in light-years between two stars.
func (s *Store) Distance(a, b uint32) float32 {
	return Dist(s.coords[a], s.coords[b])
}

// CountByKind returns how many stars have the given kind.
func (s *Store) CountByKind(kind StarKind) int {
	n := 0
	for _, k := range s.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// DistSq returns the squared Euclidean distance between two points.
func DistSq(a, b Point) float32 {
	dx := float64(a[0] - b[0])
	dy := float64(a[1] - b[1])
	dz := float64(a[2] - b[2])
	return float32(dx*dx + dy*dy + dz*dz)
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Point) float32 {
	return float32(math.Sqrt(float64(DistSq(a, b))))
}
