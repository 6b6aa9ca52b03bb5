package alignment

import "strings"

type CurveKind int

const (
	// A curve of a kind this package doesn't know. Only the common
	// attributes are available.
	GenericKind CurveKind = iota + 1
	// A straight tangent.
	LineKind
	// A circular arc.
	ArcKind
	// A transition spiral.
	SpiralKind
	// A group of line and arc sub-entities.
	MultipleSegmentsKind
	// Spiral, curve, spiral.
	SCSKind
	// Spiral, curve, spiral, curve, spiral.
	SCSCSKind
	// Spiral, curve, spiral, spiral, curve, spiral.
	SCSSCSKind
	// Spiral, spiral, curve, spiral, spiral.
	SSCSSKind
	// Curve, curve, reverse curve.
	CCRCKind
	// Curve, reverse curve.
	CRCKind
	// Curve, tangent, curve.
	CTCKind
	// Spiral, tangent, spiral.
	STSKind
)

var kindNames = [...]string{
	GenericKind:          "Generic",
	LineKind:             "Line",
	ArcKind:              "Arc",
	SpiralKind:           "Spiral",
	MultipleSegmentsKind: "MultipleSegments",
	SCSKind:              "SCS",
	SCSCSKind:            "SCSCS",
	SCSSCSKind:           "SCSSCS",
	SSCSSKind:            "SSCSS",
	CCRCKind:             "CCRC",
	CRCKind:              "CRC",
	CTCKind:              "CTC",
	STSKind:              "STS",
}

func (k CurveKind) String() string {
	if k < GenericKind || k > STSKind {
		return "InvalidCurveKind"
	}
	return kindNames[k]
}

// ParseCurveKind returns the kind called name, ignoring case. It reports
// false for names it doesn't know.
func ParseCurveKind(name string) (CurveKind, bool) {
	for k := GenericKind; k <= STSKind; k++ {
		if strings.EqualFold(kindNames[k], name) {
			return k, true
		}
	}
	return 0, false
}
