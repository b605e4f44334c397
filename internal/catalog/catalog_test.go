package catalog

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

// encodeCatalog serializes entries into the binary wire layout.
func encodeCatalog(t *testing.T, version uint32, entries []Entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, version)
	binary.Write(&buf, binary.LittleEndian, uint32(len(entries)))
	for _, e := range entries {
		binary.Write(&buf, binary.LittleEndian, e.Coord[0])
		binary.Write(&buf, binary.LittleEndian, e.Coord[1])
		binary.Write(&buf, binary.LittleEndian, e.Coord[2])
		buf.WriteByte(byte(e.Kind))
		binary.Write(&buf, binary.LittleEndian, uint32(len(e.Name)))
		buf.WriteString(e.Name)
	}
	return buf.Bytes()
}

func TestLoad_RoundTrip(t *testing.T) {
	entries := []Entry{
		{Coord: Point{0, 0, 0}, Name: "Jackson's Lighthouse", Kind: KindNeutron},
		{Coord: Point{25.5, -3.25, 100}, Name: "HD 12345", Kind: KindGeneral},
		{Coord: Point{-1, -2, -3}, Name: "Sagittarius A*", Kind: KindUnknown},
	}
	store, err := Load(bytes.NewReader(encodeCatalog(t, 1, entries)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Count() != len(entries) {
		t.Fatalf("Count = %d, want %d", store.Count(), len(entries))
	}
	for i, e := range entries {
		id := uint32(i)
		if store.Coord(id) != e.Coord {
			t.Errorf("Coord(%d) = %v, want %v", id, store.Coord(id), e.Coord)
		}
		if store.Name(id) != e.Name {
			t.Errorf("Name(%d) = %q, want %q", id, store.Name(id), e.Name)
		}
		if store.Kind(id) != e.Kind {
			t.Errorf("Kind(%d) = %v, want %v", id, store.Kind(id), e.Kind)
		}
		got, ok := store.IDByName(e.Name)
		if !ok || got != id {
			t.Errorf("IDByName(%q) = %d,%v, want %d,true", e.Name, got, ok, id)
		}
	}
}

func TestLoad_UnknownKindByte(t *testing.T) {
	raw := encodeCatalog(t, 1, []Entry{{Name: "Weird", Kind: StarKind(7)}})
	store, err := Load(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if store.Kind(0) != KindUnknown {
		t.Errorf("Kind(0) = %v, want KindUnknown", store.Kind(0))
	}
}

func TestLoad_Malformed(t *testing.T) {
	good := encodeCatalog(t, 1, []Entry{
		{Coord: Point{1, 2, 3}, Name: "Sol", Kind: KindNeutron},
	})

	badName := encodeCatalog(t, 1, []Entry{{Name: "??", Kind: KindNeutron}})
	// Overwrite the two name bytes with an invalid UTF-8 sequence.
	copy(badName[len(badName)-2:], []byte{0xff, 0xfe})

	hugeLen := encodeCatalog(t, 1, []Entry{{Name: "Sol", Kind: KindNeutron}})
	// Patch the name length prefix (last 4 bytes before the name) to run
	// far past the buffer.
	binary.LittleEndian.PutUint32(hugeLen[len(hugeLen)-7:], 0xffffffff)

	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "empty stream", raw: nil},
		{name: "truncated header", raw: good[:6]},
		{name: "truncated record", raw: good[:12]},
		{name: "truncated name", raw: good[:len(good)-1]},
		{name: "name length past buffer", raw: good[:len(good)-2]},
		{name: "oversized name length", raw: hugeLen},
		{name: "invalid utf8 name", raw: badName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Load(bytes.NewReader(tt.raw))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			if store != nil {
				t.Error("expected no partial store on failure")
			}
		})
	}
}

func TestLoad_VersionIgnored(t *testing.T) {
	raw := encodeCatalog(t, 999, []Entry{{Name: "Sol", Kind: KindNeutron}})
	if _, err := Load(bytes.NewReader(raw)); err != nil {
		t.Fatalf("Load with unusual version: %v", err)
	}
}

func TestNew_DuplicateNamesLastWins(t *testing.T) {
	store := New([]Entry{
		{Name: "Twin", Kind: KindNeutron},
		{Name: "Twin", Kind: KindGeneral},
	})
	id, ok := store.IDByName("Twin")
	if !ok || id != 1 {
		t.Errorf("IDByName(Twin) = %d,%v, want 1,true", id, ok)
	}
}

func TestDistance(t *testing.T) {
	a := Point{0, 0, 0}
	b := Point{3, 4, 0}
	if got := DistSq(a, b); got != 25 {
		t.Errorf("DistSq = %v, want 25", got)
	}
	if got := Dist(a, b); math.Abs(float64(got)-5) > 1e-6 {
		t.Errorf("Dist = %v, want 5", got)
	}

	store := New([]Entry{{Coord: a}, {Coord: b}})
	if got := store.Distance(0, 1); math.Abs(float64(got)-5) > 1e-6 {
		t.Errorf("Distance(0,1) = %v, want 5", got)
	}
}

func TestCountByKind(t *testing.T) {
	store := New([]Entry{
		{Name: "a", Kind: KindNeutron},
		{Name: "b", Kind: KindNeutron},
		{Name: "c", Kind: KindGeneral},
		{Name: "d", Kind: KindUnknown},
	})
	if got := store.CountByKind(KindNeutron); got != 2 {
		t.Errorf("CountByKind(neutron) = %d, want 2", got)
	}
	if got := store.CountByKind(KindGeneral); got != 1 {
		t.Errorf("CountByKind(general) = %d, want 1", got)
	}
}
