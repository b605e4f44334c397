package catalog

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"neutron-plotter/internal/logger"
)

// ErrMalformed indicates a truncated or otherwise invalid catalog stream.
// No partial store is ever returned alongside it.
var ErrMalformed = errors.New("malformed catalog")

// Binary catalog layout, all little-endian:
//
//	u32 version
//	u32 count
//	count times:
//	  f32 x, f32 y, f32 z
//	  u8  kind          (0=unknown, 1=general, 2=neutron)
//	  u32 nameLen
//	  u8[nameLen] name  (UTF-8, not null-terminated)

// maxNameLen bounds a single name record so a corrupt length prefix fails
// fast instead of attempting a huge allocation.
const maxNameLen = 1 << 20

// Load deserializes a binary star catalog. It reads the whole stream in one
// pass and fails with an error wrapping ErrMalformed on truncation, a name
// length running past the buffer, or name bytes that are not valid UTF-8.
func Load(r io.Reader) (*Store, error) {
	var header struct {
		Version uint32
		Count   uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}

	entries := make([]Entry, 0, header.Count)
	for i := uint32(0); i < header.Count; i++ {
		var rec struct {
			X, Y, Z float32
			Kind    byte
			NameLen uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformed, i, err)
		}
		if rec.NameLen > maxNameLen {
			return nil, fmt.Errorf("%w: record %d: name length %d out of bounds", ErrMalformed, i, rec.NameLen)
		}
		name := make([]byte, rec.NameLen)
		if _, err := io.ReadFull(r, name); err != nil {
			return nil, fmt.Errorf("%w: record %d: name: %v", ErrMalformed, i, err)
		}
		if !utf8.Valid(name) {
			return nil, fmt.Errorf("%w: record %d: name is not valid UTF-8", ErrMalformed, i)
		}

		kind := KindUnknown
		switch rec.Kind {
		case 1:
			kind = KindGeneral
		case 2:
			kind = KindNeutron
		}
		entries = append(entries, Entry{
			Coord: Point{rec.X, rec.Y, rec.Z},
			Name:  string(name),
			Kind:  kind,
		})
	}

	return New(entries), nil
}

// LoadFile loads a binary star catalog from disk and logs load statistics.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	store, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}

	logger.Section("Catalog Statistics")
	logger.Stats("Stars", store.Count())
	logger.Stats("Neutron stars", store.CountByKind(KindNeutron))
	logger.Stats("General stars", store.CountByKind(KindGeneral))
	return store, nil
}
