package alignment

import (
	"errors"
	"fmt"
	"math"
)

// NoType is the label reported for type and constraint fields the source
// didn't provide.
const NoType = "NO_TYPE"

// ErrSubEntity is wrapped by the errors returned when a field that only
// exists on top-level entities is read from a sub-entity.
var ErrSubEntity = errors.New("field is not available on a sub-entity")

// FieldAccessError reports a read of a top-level-only field on a curve
// that is nested inside a compound curve. It indicates a misuse of the API,
// not bad source data.
type FieldAccessError struct {
	Kind  CurveKind
	Field string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("%s.%s: %s", e.Kind, e.Field, ErrSubEntity)
}

func (e *FieldAccessError) Unwrap() error { return ErrSubEntity }

// Entity holds the attributes shared by all curve kinds. Every [Curve]
// embeds one; use [Curve.Base] to get at it through the interface.
//
// Numeric fields are NaN when the source didn't provide them.
type Entity struct {
	// Type is the source's own name for the entity type, or NoType.
	Type string
	// ConstraintType describes which parameters define the curve (Fixed,
	// Float, Free). It is passed through uninterpreted.
	ConstraintType string

	StartStation float64
	EndStation   float64
	Length       float64

	CurveGroupIndex          string
	CurveGroupSubEntityIndex string

	kind        CurveKind
	isSubEntity bool
	startPoint  option[Point]
	endPoint    option[Point]

	// Only meaningful if !isSubEntity.
	entityID           int
	entityAfter        int
	entityBefore       int
	highestDesignSpeed float64
	subEntityCount     int
}

func newEntity(src any, kind CurveKind, sub bool) Entity {
	e := Entity{
		ConstraintType:           Extract(src, "Constraint1", NoType),
		StartStation:             Extract(src, "StartStation", math.NaN()),
		EndStation:               Extract(src, "EndStation", math.NaN()),
		Length:                   Extract(src, "Length", math.NaN()),
		CurveGroupIndex:          Extract(src, "CurveGroupIndex", ""),
		CurveGroupSubEntityIndex: Extract(src, "CurveGroupSubEntityIndex", ""),

		kind:        kind,
		isSubEntity: sub,
		startPoint:  projectField(src, "StartPoint"),
		endPoint:    projectField(src, "EndPoint"),
	}
	if sub {
		e.Type = Extract(src, "SubEntityType", NoType)
		return e
	}
	e.Type = Extract(src, "EntityType", NoType)
	e.entityID = Extract(src, "EntityId", -1)
	e.entityAfter = Extract(src, "EntityAfter", -1)
	e.entityBefore = Extract(src, "EntityBefore", -1)
	e.highestDesignSpeed = Extract(src, "HighestDesignSpeed", math.NaN())
	e.subEntityCount = Extract(src, "SubEntityCount", 0)
	return e
}

// StartPoint returns the start point of the curve. It reports false if the
// source's start point couldn't be resolved.
func (e *Entity) StartPoint() (Point, bool) { return e.startPoint.get() }

// EndPoint returns the end point of the curve. It reports false if the
// source's end point couldn't be resolved.
func (e *Entity) EndPoint() (Point, bool) { return e.endPoint.get() }

// IsSubEntity reports whether the curve is nested inside a compound curve.
func (e *Entity) IsSubEntity() bool { return e.isSubEntity }

func (e *Entity) checkTopLevel(field string) error {
	if e.isSubEntity {
		return &FieldAccessError{Kind: e.kind, Field: field}
	}
	return nil
}

// EntityID returns the id that uniquely identifies the entity within its
// alignment, or -1 if the source didn't report one.
func (e *Entity) EntityID() (int, error) {
	if err := e.checkTopLevel("EntityID"); err != nil {
		return 0, err
	}
	return e.entityID, nil
}

// EntityBefore returns the id of the preceding entity in source order. It
// is -1 for the first entity of the alignment.
func (e *Entity) EntityBefore() (int, error) {
	if err := e.checkTopLevel("EntityBefore"); err != nil {
		return 0, err
	}
	return e.entityBefore, nil
}

// EntityAfter returns the id of the following entity in source order. It
// is -1 for the last entity of the alignment.
func (e *Entity) EntityAfter() (int, error) {
	if err := e.checkTopLevel("EntityAfter"); err != nil {
		return 0, err
	}
	return e.entityAfter, nil
}

// HighestDesignSpeed returns the highest design speed of the curve.
func (e *Entity) HighestDesignSpeed() (float64, error) {
	if err := e.checkTopLevel("HighestDesignSpeed"); err != nil {
		return 0, err
	}
	return e.highestDesignSpeed, nil
}

// SubEntityCount returns the number of sub-entities the source reports for
// the curve, or 0 if it reported none.
func (e *Entity) SubEntityCount() (int, error) {
	if err := e.checkTopLevel("SubEntityCount"); err != nil {
		return 0, err
	}
	return e.subEntityCount, nil
}
