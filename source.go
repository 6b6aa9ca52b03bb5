package alignment

// The interfaces in this file describe the native entity kinds of the
// source data store. A source record announces its kind by the methods it
// implements; all other attributes are read through [Lookup].
//
// Sub-record accessors return the nested record, or an error if the store
// couldn't produce it. A nil record counts as missing, too.
//
// Several kinds are structural supersets of others: a record implementing
// CCRCEntity also implements CRCEntity, and an SCSSCSEntity is also an
// SCSCSEntity. [Classify] checks the more specific kinds first.

// LineEntity is implemented by straight tangent records, both top-level
// and nested.
type LineEntity interface {
	AlignmentLine()
}

// ArcEntity is implemented by circular arc records, both top-level and
// nested.
type ArcEntity interface {
	AlignmentArc()
}

// SpiralEntity is implemented by spiral records, both top-level and nested.
type SpiralEntity interface {
	AlignmentSpiral()
}

// MultipleSegmentsEntity is implemented by groups of line and arc
// sub-entities. The number of sub-entities is read from the record's
// SubEntityCount field.
type MultipleSegmentsEntity interface {
	SubEntity(i int) (any, error)
}

type SCSEntity interface {
	SpiralIn() (any, error)
	Arc() (any, error)
	SpiralOut() (any, error)
}

type SCSCSEntity interface {
	Spiral1() (any, error)
	Arc1() (any, error)
	Spiral2() (any, error)
	Arc2() (any, error)
	Spiral3() (any, error)
}

type SCSSCSEntity interface {
	SCSCSEntity
	Spiral4() (any, error)
}

type SSCSSEntity interface {
	Spiral1() (any, error)
	Spiral2() (any, error)
	Arc() (any, error)
	Spiral3() (any, error)
	Spiral4() (any, error)
}

type CRCEntity interface {
	Arc1() (any, error)
	Arc2() (any, error)
}

type CCRCEntity interface {
	CRCEntity
	Arc3() (any, error)
}

type CTCEntity interface {
	CRCEntity
	Tangent() (any, error)
}

type STSEntity interface {
	SpiralIn() (any, error)
	Tangent() (any, error)
	SpiralOut() (any, error)
}
