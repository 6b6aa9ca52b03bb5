// Package snapshot reads alignment snapshots: YAML (or JSON) documents
// holding the entity records and geometry point stations of one alignment,
// as exported from a civil engineering data store.
//
// A snapshot looks like this:
//
//	name: Main Street
//	entities:
//	  - kind: Line
//	    fields: {EntityId: 1, StartStation: 0, EndStation: 50}
//	  - kind: CRC
//	    fields: {EntityId: 2, StartStation: 50, EndStation: 120}
//	    subs:
//	      Arc1: {kind: Arc, fields: {Radius: 300}}
//	      Arc2: {kind: Arc, fields: {Radius: 250}}
//	stations:
//	  - {raw: 50, x: 10, y: 4, type: PI, station: 1050, offset: 0}
//
// Records are adapted to the source interfaces of package alignment
// according to their kind, so they can be passed to alignment.ClassifyAll
// directly.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/roadgeom/alignment"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingSub is returned by the sub-record accessors of adapted
	// records for slots the snapshot doesn't fill.
	ErrMissingSub = errors.New("sub-entity not in snapshot")
	// ErrNoStation is returned by the offsetter for locations without a
	// recorded station.
	ErrNoStation = errors.New("no recorded station at location")
)

type Snapshot struct {
	Name     string    `yaml:"name"`
	Entities []*Record `yaml:"entities"`
	Stations []Sample  `yaml:"stations"`
}

// Sample is a geometry point station. Station and Offset are the corrected
// values the store reported for the location, if any.
type Sample struct {
	Raw     float64  `yaml:"raw"`
	X       float64  `yaml:"x"`
	Y       float64  `yaml:"y"`
	Z       float64  `yaml:"z"`
	Type    string   `yaml:"type"`
	Station *float64 `yaml:"station"`
	Offset  *float64 `yaml:"offset"`
}

// Load reads the snapshot at path. The file is closed before Load returns.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Decode parses a snapshot. Unknown keys are rejected.
func Decode(r io.Reader) (*Snapshot, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Snapshot
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	for i, st := range s.Stations {
		if _, err := parseStationType(st.Type); err != nil {
			return nil, fmt.Errorf("station %d: %w", i, err)
		}
	}
	return &s, nil
}

// Records returns the entities adapted to the source interfaces of package
// alignment, in snapshot order.
func (s *Snapshot) Records() []any {
	out := make([]any, len(s.Entities))
	for i, r := range s.Entities {
		out[i] = Adapt(r)
	}
	return out
}

// Samples returns the station samples, in snapshot order.
func (s *Snapshot) Samples() []alignment.StationSample {
	out := make([]alignment.StationSample, len(s.Stations))
	for i, st := range s.Stations {
		// Types were checked by Decode.
		typ, _ := parseStationType(st.Type)
		out[i] = alignment.StationSample{
			RawStation: st.Raw,
			Location:   alignment.Pt(st.X, st.Y, st.Z),
			Type:       typ,
		}
	}
	return out
}

func parseStationType(s string) (alignment.StationType, error) {
	switch strings.ToLower(s) {
	case "", "plain":
		return alignment.StationPlain, nil
	case "pi":
		return alignment.StationPI, nil
	case "other":
		return alignment.StationOther, nil
	default:
		return 0, fmt.Errorf("unknown station type %q", s)
	}
}

type location struct{ x, y float64 }

// recordedStation is the corrected station and offset at a location.
type recordedStation struct{ station, offset float64 }

// Offsetter returns a station corrector that replays the corrected
// stations recorded in the snapshot, matching samples by location.
// Locations without a recorded station yield ErrNoStation.
func (s *Snapshot) Offsetter() alignment.StationOffsetter {
	table := make(map[location]recordedStation, len(s.Stations))
	for _, st := range s.Stations {
		if st.Station == nil {
			continue
		}
		rs := recordedStation{station: *st.Station}
		if st.Offset != nil {
			rs.offset = *st.Offset
		}
		table[location{st.X, st.Y}] = rs
	}
	return alignment.StationOffsetFunc(func(x, y float64) (float64, float64, error) {
		rs, ok := table[location{x, y}]
		if !ok {
			return 0, 0, fmt.Errorf("(%g, %g): %w", x, y, ErrNoStation)
		}
		return rs.station, rs.offset, nil
	})
}
