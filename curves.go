package alignment

import "math"

// Curve is one entity of an alignment's curve decomposition. It acts as a
// tagged union over [Line], [Arc], [Spiral], [MultipleSegments], [SCS],
// [SCSCS], [SCSSCS], [SSCSS], [CCRC], [CRC], [CTC], [STS], and [Generic],
// all of which are used by pointer.
//
// Curves are read-only views of the source records they were built from.
type Curve interface {
	// Kind returns the kind determined at construction.
	Kind() CurveKind
	// Base returns the attributes shared by all kinds.
	Base() *Entity
	// SubCurves returns the sub-curves of a compound curve in order along
	// the alignment. Its length is the kind's arity; slots whose sub-curve
	// couldn't be built are nil. Simple curves have no sub-curves.
	SubCurves() []Curve
}

var (
	_ Curve = (*Line)(nil)
	_ Curve = (*Arc)(nil)
	_ Curve = (*Spiral)(nil)
	_ Curve = (*MultipleSegments)(nil)
	_ Curve = (*SCS)(nil)
	_ Curve = (*SCSCS)(nil)
	_ Curve = (*SCSSCS)(nil)
	_ Curve = (*SSCSS)(nil)
	_ Curve = (*CCRC)(nil)
	_ Curve = (*CRC)(nil)
	_ Curve = (*CTC)(nil)
	_ Curve = (*STS)(nil)
	_ Curve = (*Generic)(nil)
)

func (e *Entity) Base() *Entity { return e }

// Generic is a curve of a kind this package doesn't model.
type Generic struct {
	Entity
}

func (*Generic) Kind() CurveKind     { return GenericKind }
func (*Generic) SubCurves() []Curve { return nil }

func newGeneric(src any) *Generic {
	return &Generic{Entity: newEntity(src, GenericKind, false)}
}

// Line is a straight tangent.
type Line struct {
	Entity
	Direction float64
	// KindConstraintType is one of TwoPoints, ThroughPoint, Length,
	// NoConstraint, BestFit.
	KindConstraintType string

	midPoint option[Point]
}

func (*Line) Kind() CurveKind     { return LineKind }
func (*Line) SubCurves() []Curve { return nil }

// MidPoint returns the middle point of the line.
func (l *Line) MidPoint() (Point, bool) { return l.midPoint.get() }

// newLine builds a line. Its length is the distance between its own end
// points, whatever the source reported.
func newLine(src any, sub bool) *Line {
	l := &Line{
		Entity:             newEntity(src, LineKind, sub),
		Direction:          Extract(src, "Direction", math.NaN()),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		midPoint:           projectField(src, "MidPoint"),
	}
	l.Length = math.NaN()
	start, ok1 := l.StartPoint()
	end, ok2 := l.EndPoint()
	if ok1 && ok2 {
		l.Length = start.Distance(end)
	}
	return l
}

// NonLinear holds the attributes shared by arcs and spirals.
type NonLinear struct {
	StartDirection float64
	EndDirection   float64
	Delta          float64
}

func newNonLinear(src any) NonLinear {
	return NonLinear{
		StartDirection: Extract(src, "StartDirection", math.NaN()),
		EndDirection:   Extract(src, "EndDirection", math.NaN()),
		Delta:          Extract(src, "Delta", math.NaN()),
	}
}

// Arc is a circular arc.
type Arc struct {
	Entity
	NonLinear

	ChordDirection float64
	ChordLength    float64
	Clockwise      bool
	// KindConstraintType is one of ThreePoints, CenterRadius,
	// CenterPassThroughPoint, PassThroughRadius, PassThroughHoldEnd,
	// PassThroughDirection, Radius, PassThrough, RadiusAndLength, BestFitArc.
	KindConstraintType string
	DeflectedAngle     float64
	ExternalSecant     float64
	ExternalTangent    float64
	GreaterThan180     bool
	MidOrdinate        float64
	// MinimumRadius is the minimum radius according to the design speed
	// check.
	MinimumRadius float64
	PIStation     float64
	Radius        float64
	ReverseCurve  bool

	centerPoint option[Point]
	piPoint     option[Point]
}

func (*Arc) Kind() CurveKind     { return ArcKind }
func (*Arc) SubCurves() []Curve { return nil }

func (a *Arc) CenterPoint() (Point, bool) { return a.centerPoint.get() }
func (a *Arc) PIPoint() (Point, bool)     { return a.piPoint.get() }

func newArc(src any, sub bool) *Arc {
	return &Arc{
		Entity:             newEntity(src, ArcKind, sub),
		NonLinear:          newNonLinear(src),
		ChordDirection:     Extract(src, "ChordDirection", math.NaN()),
		ChordLength:        Extract(src, "ChordLength", math.NaN()),
		Clockwise:          Extract(src, "Clockwise", false),
		KindConstraintType: Extract(src, "Constraint2", NoType),
		DeflectedAngle:     Extract(src, "DeflectedAngle", math.NaN()),
		ExternalSecant:     Extract(src, "ExternalSecant", math.NaN()),
		ExternalTangent:    Extract(src, "ExternalTangent", math.NaN()),
		GreaterThan180:     Extract(src, "GreaterThan180", false),
		MidOrdinate:        Extract(src, "MidOrdinate", math.NaN()),
		MinimumRadius:      Extract(src, "MinimumRadius", math.NaN()),
		PIStation:          Extract(src, "PIStation", math.NaN()),
		Radius:             Extract(src, "Radius", math.NaN()),
		ReverseCurve:       Extract(src, "ReverseCurve", false),
		centerPoint:        projectField(src, "CenterPoint"),
		piPoint:            projectField(src, "PIPoint"),
	}
}

// Spiral is a transition spiral.
type Spiral struct {
	Entity
	NonLinear

	A        float64
	K        float64
	P        float64
	Compound bool
	// CurveType is InCurve or OutCurve.
	CurveType string
	// Direction is DirectionLeft or DirectionRight.
	Direction               string
	LongTangent             float64
	ShortTangent            float64
	MinimumTransitionLength float64
	RadiusIn                float64
	RadiusOut               float64
	SPIAngle                float64
	SPIStation              float64
	// SpiralDefinition names the spiral's construction method, such as
	// Clothoid or SineHalfWave.
	SpiralDefinition string
	TotalX           float64
	TotalY           float64

	radialPoint option[Point]
	spiPoint    option[Point]
}

func (*Spiral) Kind() CurveKind     { return SpiralKind }
func (*Spiral) SubCurves() []Curve { return nil }

func (s *Spiral) RadialPoint() (Point, bool) { return s.radialPoint.get() }
func (s *Spiral) SPIPoint() (Point, bool)    { return s.spiPoint.get() }

func newSpiral(src any, sub bool) *Spiral {
	return &Spiral{
		Entity:                  newEntity(src, SpiralKind, sub),
		NonLinear:               newNonLinear(src),
		A:                       Extract(src, "A", math.NaN()),
		K:                       Extract(src, "K", math.NaN()),
		P:                       Extract(src, "P", math.NaN()),
		Compound:                Extract(src, "Compound", false),
		CurveType:               Extract(src, "CurveType", "InCurve"),
		Direction:               Extract(src, "Direction", "DirectionRight"),
		LongTangent:             Extract(src, "LongTangent", math.NaN()),
		ShortTangent:            Extract(src, "ShortTangent", math.NaN()),
		MinimumTransitionLength: Extract(src, "MinimumTransitionLength", math.NaN()),
		RadiusIn:                Extract(src, "RadiusIn", math.NaN()),
		RadiusOut:               Extract(src, "RadiusOut", math.NaN()),
		SPIAngle:                Extract(src, "SPIAngle", math.NaN()),
		SPIStation:              Extract(src, "SPIStation", math.NaN()),
		SpiralDefinition:        Extract(src, "SpiralDefinition", "Clothoid"),
		TotalX:                  Extract(src, "TotalX", math.NaN()),
		TotalY:                  Extract(src, "TotalY", math.NaN()),
		radialPoint:             projectField(src, "RadialPoint"),
		spiPoint:                projectField(src, "SPIPoint"),
	}
}

// MultipleSegments is a group of line and arc sub-entities.
type MultipleSegments struct {
	Entity
	// KindConstraintType is one of RadiiAndLengths, RatiosAndLengths,
	// KeyPoints.
	KindConstraintType string
	// Segments holds *Line and *Arc sub-curves in source order. A
	// sub-entity that couldn't be built is nil.
	Segments []Curve
}

func (*MultipleSegments) Kind() CurveKind       { return MultipleSegmentsKind }
func (m *MultipleSegments) SubCurves() []Curve { return m.Segments }

// SCS is a spiral-curve-spiral group.
type SCS struct {
	Entity
	KindConstraintType string

	SpiralIn  *Spiral
	Arc       *Arc
	SpiralOut *Spiral
}

func (*SCS) Kind() CurveKind { return SCSKind }
func (c *SCS) SubCurves() []Curve {
	return slots(c.SpiralIn, c.Arc, c.SpiralOut)
}

// SCSCS is a spiral-curve-spiral-curve-spiral group.
type SCSCS struct {
	Entity
	KindConstraintType string

	Spiral1 *Spiral
	Arc1    *Arc
	Spiral2 *Spiral
	Arc2    *Arc
	Spiral3 *Spiral
}

func (*SCSCS) Kind() CurveKind { return SCSCSKind }
func (c *SCSCS) SubCurves() []Curve {
	return slots(c.Spiral1, c.Arc1, c.Spiral2, c.Arc2, c.Spiral3)
}

// SCSSCS is an in spiral, an arc, two spirals, an arc, and an out spiral.
type SCSSCS struct {
	Entity
	KindConstraintType string

	Spiral1 *Spiral
	Arc1    *Arc
	Spiral2 *Spiral
	Spiral3 *Spiral
	Arc2    *Arc
	Spiral4 *Spiral
}

func (*SCSSCS) Kind() CurveKind { return SCSSCSKind }
func (c *SCSSCS) SubCurves() []Curve {
	return slots(c.Spiral1, c.Arc1, c.Spiral2, c.Spiral3, c.Arc2, c.Spiral4)
}

// SSCSS is two spirals, an arc, and two spirals.
type SSCSS struct {
	Entity
	KindConstraintType string

	Spiral1 *Spiral
	Spiral2 *Spiral
	Arc     *Arc
	Spiral3 *Spiral
	Spiral4 *Spiral
}

func (*SSCSS) Kind() CurveKind { return SSCSSKind }
func (c *SSCSS) SubCurves() []Curve {
	return slots(c.Spiral1, c.Spiral2, c.Arc, c.Spiral3, c.Spiral4)
}

// CCRC is a curve, a curve, and a reverse curve.
type CCRC struct {
	Entity
	KindConstraintType string

	Arc1 *Arc
	Arc2 *Arc
	Arc3 *Arc
}

func (*CCRC) Kind() CurveKind { return CCRCKind }
func (c *CCRC) SubCurves() []Curve {
	return slots(c.Arc1, c.Arc2, c.Arc3)
}

// CRC is a curve and a reverse curve.
type CRC struct {
	Entity
	KindConstraintType string

	Arc1 *Arc
	Arc2 *Arc
}

func (*CRC) Kind() CurveKind { return CRCKind }
func (c *CRC) SubCurves() []Curve {
	return slots(c.Arc1, c.Arc2)
}

// CTC is a curve, a tangent, and a curve.
type CTC struct {
	Entity
	KindConstraintType string

	Arc1    *Arc
	Tangent *Line
	Arc2    *Arc
}

func (*CTC) Kind() CurveKind { return CTCKind }
func (c *CTC) SubCurves() []Curve {
	return slots(c.Arc1, c.Tangent, c.Arc2)
}

// STS is a spiral, a tangent, and a spiral.
type STS struct {
	Entity
	KindConstraintType string

	SpiralIn  *Spiral
	Tangent   *Line
	SpiralOut *Spiral
}

func (*STS) Kind() CurveKind { return STSKind }
func (c *STS) SubCurves() []Curve {
	return slots(c.SpiralIn, c.Tangent, c.SpiralOut)
}

// slots converts sub-curve pointers to a slice of Curve, mapping nil
// pointers to nil interfaces rather than to typed nils.
func slots(cs ...Curve) []Curve {
	out := make([]Curve, len(cs))
	for i, c := range cs {
		if isNilCurve(c) {
			continue
		}
		out[i] = c
	}
	return out
}

func isNilCurve(c Curve) bool {
	switch c := c.(type) {
	case nil:
		return true
	case *Line:
		return c == nil
	case *Arc:
		return c == nil
	case *Spiral:
		return c == nil
	default:
		return false
	}
}
