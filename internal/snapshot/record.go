package snapshot

import (
	"fmt"
	"strings"

	"github.com/roadgeom/alignment"
)

// Record is one entity record of a snapshot. Kind names the store's entity
// kind, using the names of alignment.CurveKind. Subs holds the nested
// records of compound kinds by accessor name, and Segments those of
// MultipleSegments groups.
type Record struct {
	Kind     string             `yaml:"kind"`
	Fields   map[string]any     `yaml:"fields"`
	Subs     map[string]*Record `yaml:"subs"`
	Segments []*Record          `yaml:"segments"`
}

var _ alignment.FieldSource = (*Record)(nil)

// Field returns the field called name, ignoring case. A MultipleSegments
// record without a SubEntityCount field reports the number of its segments.
func (r *Record) Field(name string) (any, error) {
	for k, v := range r.Fields {
		if strings.EqualFold(k, name) {
			return v, nil
		}
	}
	if strings.EqualFold(name, "SubEntityCount") && r.Segments != nil {
		return len(r.Segments), nil
	}
	return nil, fmt.Errorf("%s record has no field %q", r.Kind, name)
}

func (r *Record) sub(name string) (any, error) {
	s, ok := r.Subs[name]
	if !ok || s == nil {
		return nil, fmt.Errorf("%s.%s: %w", r.Kind, name, ErrMissingSub)
	}
	return Adapt(s), nil
}

// Adapt wraps r in a type implementing the source interface of its kind.
// Records of unknown kind are returned as they are and classify as generic
// curves.
func Adapt(r *Record) any {
	if r == nil {
		return nil
	}
	kind, ok := alignment.ParseCurveKind(r.Kind)
	if !ok {
		return r
	}
	switch kind {
	case alignment.LineKind:
		return lineRecord{r}
	case alignment.ArcKind:
		return arcRecord{r}
	case alignment.SpiralKind:
		return spiralRecord{r}
	case alignment.MultipleSegmentsKind:
		return multipleSegmentsRecord{r}
	case alignment.SCSKind:
		return scsRecord{r}
	case alignment.SCSCSKind:
		return scscsRecord{r}
	case alignment.SCSSCSKind:
		return scsscsRecord{scscsRecord{r}}
	case alignment.SSCSSKind:
		return sscssRecord{r}
	case alignment.CCRCKind:
		return ccrcRecord{crcRecord{r}}
	case alignment.CRCKind:
		return crcRecord{r}
	case alignment.CTCKind:
		return ctcRecord{crcRecord{r}}
	case alignment.STSKind:
		return stsRecord{r}
	default:
		return r
	}
}

var (
	_ alignment.LineEntity             = lineRecord{}
	_ alignment.ArcEntity              = arcRecord{}
	_ alignment.SpiralEntity           = spiralRecord{}
	_ alignment.MultipleSegmentsEntity = multipleSegmentsRecord{}
	_ alignment.SCSEntity              = scsRecord{}
	_ alignment.SCSCSEntity            = scscsRecord{}
	_ alignment.SCSSCSEntity           = scsscsRecord{}
	_ alignment.SSCSSEntity            = sscssRecord{}
	_ alignment.CCRCEntity             = ccrcRecord{}
	_ alignment.CRCEntity              = crcRecord{}
	_ alignment.CTCEntity              = ctcRecord{}
	_ alignment.STSEntity              = stsRecord{}
)

type lineRecord struct{ *Record }

func (lineRecord) AlignmentLine() {}

type arcRecord struct{ *Record }

func (arcRecord) AlignmentArc() {}

type spiralRecord struct{ *Record }

func (spiralRecord) AlignmentSpiral() {}

type multipleSegmentsRecord struct{ *Record }

func (r multipleSegmentsRecord) SubEntity(i int) (any, error) {
	if i < 0 || i >= len(r.Segments) || r.Segments[i] == nil {
		return nil, fmt.Errorf("%s segment %d: %w", r.Kind, i, ErrMissingSub)
	}
	return Adapt(r.Segments[i]), nil
}

type scsRecord struct{ *Record }

func (r scsRecord) SpiralIn() (any, error)  { return r.sub("SpiralIn") }
func (r scsRecord) Arc() (any, error)       { return r.sub("Arc") }
func (r scsRecord) SpiralOut() (any, error) { return r.sub("SpiralOut") }

type scscsRecord struct{ *Record }

func (r scscsRecord) Spiral1() (any, error) { return r.sub("Spiral1") }
func (r scscsRecord) Arc1() (any, error)    { return r.sub("Arc1") }
func (r scscsRecord) Spiral2() (any, error) { return r.sub("Spiral2") }
func (r scscsRecord) Arc2() (any, error)    { return r.sub("Arc2") }
func (r scscsRecord) Spiral3() (any, error) { return r.sub("Spiral3") }

type scsscsRecord struct{ scscsRecord }

func (r scsscsRecord) Spiral4() (any, error) { return r.sub("Spiral4") }

type sscssRecord struct{ *Record }

func (r sscssRecord) Spiral1() (any, error) { return r.sub("Spiral1") }
func (r sscssRecord) Spiral2() (any, error) { return r.sub("Spiral2") }
func (r sscssRecord) Arc() (any, error)     { return r.sub("Arc") }
func (r sscssRecord) Spiral3() (any, error) { return r.sub("Spiral3") }
func (r sscssRecord) Spiral4() (any, error) { return r.sub("Spiral4") }

type crcRecord struct{ *Record }

func (r crcRecord) Arc1() (any, error) { return r.sub("Arc1") }
func (r crcRecord) Arc2() (any, error) { return r.sub("Arc2") }

type ccrcRecord struct{ crcRecord }

func (r ccrcRecord) Arc3() (any, error) { return r.sub("Arc3") }

type ctcRecord struct{ crcRecord }

func (r ctcRecord) Tangent() (any, error) { return r.sub("Tangent") }

type stsRecord struct{ *Record }

func (r stsRecord) SpiralIn() (any, error)  { return r.sub("SpiralIn") }
func (r stsRecord) Tangent() (any, error)   { return r.sub("Tangent") }
func (r stsRecord) SpiralOut() (any, error) { return r.sub("SpiralOut") }
