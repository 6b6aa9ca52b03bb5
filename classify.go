package alignment

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
)

// Classifier builds curves from source records. The zero value is ready to
// use.
type Classifier struct {
	// Log receives a debug entry for every sub-curve that couldn't be built.
	// If nil, logrus.StandardLogger() is used.
	Log logrus.FieldLogger
}

var defaultClassifier Classifier

// Classify builds the curve for a single source record using a zero
// [Classifier].
func Classify(src any) Curve {
	return defaultClassifier.Classify(src)
}

// ClassifyAll builds one curve per entity using a zero [Classifier]. See
// [Classifier.ClassifyAll].
func ClassifyAll[E any](entities []E) []Curve {
	out := make([]Curve, len(entities))
	for i, ent := range entities {
		out[i] = defaultClassifier.Classify(ent)
	}
	return out
}

func (cl *Classifier) log() logrus.FieldLogger {
	if cl.Log == nil {
		return logrus.StandardLogger()
	}
	return cl.Log
}

// ClassifyAll builds one curve per entity, in the order given. This is the
// entry point for building an alignment's curve decomposition. Entities
// must be passed in the store's own order: EntityBefore and EntityAfter
// refer to that order, not to station order. Use [SortByStation] on the
// result for display purposes.
func (cl *Classifier) ClassifyAll(entities []any) []Curve {
	out := make([]Curve, len(entities))
	for i, ent := range entities {
		out[i] = cl.Classify(ent)
	}
	return out
}

// Classify builds the curve for a single top-level source record. The kind
// is determined by the source interfaces src implements, checking more
// specific kinds before the kinds they specialize. Records that match no
// known kind, including nil, become a [Generic].
//
// Sub-curves of compound kinds are built one slot at a time. A slot whose
// record is missing, or whose construction fails, is left nil without
// affecting the other slots.
func (cl *Classifier) Classify(src any) Curve {
	if isNilRecord(src) {
		return newGeneric(nil)
	}
	switch src := src.(type) {
	case SCSSCSEntity:
		return cl.newSCSSCS(src)
	case SCSCSEntity:
		return cl.newSCSCS(src)
	case SSCSSEntity:
		return cl.newSSCSS(src)
	case CCRCEntity:
		return cl.newCCRC(src)
	case CTCEntity:
		return cl.newCTC(src)
	case CRCEntity:
		return cl.newCRC(src)
	case STSEntity:
		return cl.newSTS(src)
	case SCSEntity:
		return cl.newSCS(src)
	case MultipleSegmentsEntity:
		return cl.newMultipleSegments(src)
	case SpiralEntity:
		return newSpiral(src, false)
	case ArcEntity:
		return newArc(src, false)
	case LineEntity:
		return newLine(src, false)
	default:
		return newGeneric(src)
	}
}

// buildSlot builds one sub-curve slot of a compound curve. It returns nil
// if the record can't be obtained or if building it panics.
func buildSlot[T any](
	cl *Classifier,
	parent CurveKind,
	slot string,
	get func() (any, error),
	build func(src any, sub bool) *T,
) (out *T) {
	log := cl.log().WithFields(logrus.Fields{
		"kind": parent,
		"slot": slot,
	})
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).Debug("building sub-curve failed")
			out = nil
		}
	}()

	rec, err := get()
	if err != nil {
		log.WithError(err).Debug("sub-curve is unavailable")
		return nil
	}
	if isNilRecord(rec) {
		log.Debug("sub-curve is missing")
		return nil
	}
	return build(rec, true)
}

func isNilRecord(rec any) bool {
	if rec == nil {
		return true
	}
	rv := reflect.ValueOf(rec)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func (cl *Classifier) newMultipleSegments(src MultipleSegmentsEntity) *MultipleSegments {
	m := &MultipleSegments{
		Entity:             newEntity(src, MultipleSegmentsKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
	}
	for i, n := 0, m.subEntityCount; i < n; i++ {
		if seg, ok := cl.segment(src, i); ok {
			m.Segments = append(m.Segments, seg)
		}
	}
	return m
}

// segment builds the i'th sub-entity of a MultipleSegments group. It
// reports false for sub-entities that are neither lines nor arcs, which are
// not part of the group's segments.
func (cl *Classifier) segment(src MultipleSegmentsEntity, i int) (c Curve, ok bool) {
	log := cl.log().WithFields(logrus.Fields{
		"kind": MultipleSegmentsKind,
		"slot": i,
	})
	defer func() {
		if r := recover(); r != nil {
			log.WithField("panic", fmt.Sprint(r)).Debug("building sub-curve failed")
			c, ok = nil, true
		}
	}()

	rec, err := src.SubEntity(i)
	if err != nil {
		log.WithError(err).Debug("sub-curve is unavailable")
		return nil, true
	}
	if isNilRecord(rec) {
		log.Debug("sub-curve is missing")
		return nil, true
	}
	switch rec := rec.(type) {
	case LineEntity:
		return newLine(rec, true), true
	case ArcEntity:
		return newArc(rec, true), true
	default:
		log.WithField("type", fmt.Sprintf("%T", rec)).Debug("skipping sub-entity that is neither line nor arc")
		return nil, false
	}
}

func (cl *Classifier) newSCS(src SCSEntity) *SCS {
	return &SCS{
		Entity:             newEntity(src, SCSKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		SpiralIn:           buildSlot(cl, SCSKind, "SpiralIn", src.SpiralIn, newSpiral),
		Arc:                buildSlot(cl, SCSKind, "Arc", src.Arc, newArc),
		SpiralOut:          buildSlot(cl, SCSKind, "SpiralOut", src.SpiralOut, newSpiral),
	}
}

func (cl *Classifier) newSCSCS(src SCSCSEntity) *SCSCS {
	return &SCSCS{
		Entity:             newEntity(src, SCSCSKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		Spiral1:            buildSlot(cl, SCSCSKind, "Spiral1", src.Spiral1, newSpiral),
		Arc1:               buildSlot(cl, SCSCSKind, "Arc1", src.Arc1, newArc),
		Spiral2:            buildSlot(cl, SCSCSKind, "Spiral2", src.Spiral2, newSpiral),
		Arc2:               buildSlot(cl, SCSCSKind, "Arc2", src.Arc2, newArc),
		Spiral3:            buildSlot(cl, SCSCSKind, "Spiral3", src.Spiral3, newSpiral),
	}
}

func (cl *Classifier) newSCSSCS(src SCSSCSEntity) *SCSSCS {
	return &SCSSCS{
		Entity:             newEntity(src, SCSSCSKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		Spiral1:            buildSlot(cl, SCSSCSKind, "Spiral1", src.Spiral1, newSpiral),
		Arc1:               buildSlot(cl, SCSSCSKind, "Arc1", src.Arc1, newArc),
		Spiral2:            buildSlot(cl, SCSSCSKind, "Spiral2", src.Spiral2, newSpiral),
		Spiral3:            buildSlot(cl, SCSSCSKind, "Spiral3", src.Spiral3, newSpiral),
		Arc2:               buildSlot(cl, SCSSCSKind, "Arc2", src.Arc2, newArc),
		Spiral4:            buildSlot(cl, SCSSCSKind, "Spiral4", src.Spiral4, newSpiral),
	}
}

func (cl *Classifier) newSSCSS(src SSCSSEntity) *SSCSS {
	return &SSCSS{
		Entity:             newEntity(src, SSCSSKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		Spiral1:            buildSlot(cl, SSCSSKind, "Spiral1", src.Spiral1, newSpiral),
		Spiral2:            buildSlot(cl, SSCSSKind, "Spiral2", src.Spiral2, newSpiral),
		Arc:                buildSlot(cl, SSCSSKind, "Arc", src.Arc, newArc),
		Spiral3:            buildSlot(cl, SSCSSKind, "Spiral3", src.Spiral3, newSpiral),
		Spiral4:            buildSlot(cl, SSCSSKind, "Spiral4", src.Spiral4, newSpiral),
	}
}

func (cl *Classifier) newCCRC(src CCRCEntity) *CCRC {
	return &CCRC{
		Entity:             newEntity(src, CCRCKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		Arc1:               buildSlot(cl, CCRCKind, "Arc1", src.Arc1, newArc),
		Arc2:               buildSlot(cl, CCRCKind, "Arc2", src.Arc2, newArc),
		Arc3:               buildSlot(cl, CCRCKind, "Arc3", src.Arc3, newArc),
	}
}

func (cl *Classifier) newCRC(src CRCEntity) *CRC {
	return &CRC{
		Entity:             newEntity(src, CRCKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		Arc1:               buildSlot(cl, CRCKind, "Arc1", src.Arc1, newArc),
		Arc2:               buildSlot(cl, CRCKind, "Arc2", src.Arc2, newArc),
	}
}

func (cl *Classifier) newCTC(src CTCEntity) *CTC {
	return &CTC{
		Entity:             newEntity(src, CTCKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		Arc1:               buildSlot(cl, CTCKind, "Arc1", src.Arc1, newArc),
		Tangent:            buildSlot(cl, CTCKind, "Tangent", src.Tangent, newLine),
		Arc2:               buildSlot(cl, CTCKind, "Arc2", src.Arc2, newArc),
	}
}

func (cl *Classifier) newSTS(src STSEntity) *STS {
	return &STS{
		Entity:             newEntity(src, STSKind, false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		SpiralIn:           buildSlot(cl, STSKind, "SpiralIn", src.SpiralIn, newSpiral),
		Tangent:            buildSlot(cl, STSKind, "Tangent", src.Tangent, newLine),
		SpiralOut:          buildSlot(cl, STSKind, "SpiralOut", src.SpiralOut, newSpiral),
	}
}
