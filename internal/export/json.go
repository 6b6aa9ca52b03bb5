package export

import (
	"encoding/json"
	"io"

	"github.com/roadgeom/alignment"
)

type document struct {
	Name     string       `json:"name,omitempty"`
	Curves   []*curveJSON `json:"curves"`
	PIPoints []pointJSON  `json:"pi_points"`
}

type curveJSON struct {
	Kind           string     `json:"kind"`
	Type           string     `json:"type"`
	ConstraintType string     `json:"constraint_type"`
	EntityID       *int       `json:"entity_id,omitempty"`
	StartStation   *float64   `json:"start_station"`
	EndStation     *float64   `json:"end_station"`
	Length         *float64   `json:"length"`
	StartPoint     *pointJSON `json:"start_point"`
	EndPoint       *pointJSON `json:"end_point"`
	// Missing sub-curves are null.
	SubCurves []*curveJSON `json:"sub_curves,omitempty"`
}

type pointJSON struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

func toPoint(pt alignment.Point) pointJSON {
	return pointJSON{X: number(pt.X), Y: number(pt.Y), Z: number(pt.Z)}
}

func toOptionalPoint(pt alignment.Point, ok bool) *pointJSON {
	if !ok {
		return nil
	}
	p := toPoint(pt)
	return &p
}

func toCurve(c alignment.Curve) *curveJSON {
	if c == nil {
		return nil
	}
	e := c.Base()
	out := &curveJSON{
		Kind:           c.Kind().String(),
		Type:           e.Type,
		ConstraintType: e.ConstraintType,
		StartStation:   number(e.StartStation),
		EndStation:     number(e.EndStation),
		Length:         number(e.Length),
		StartPoint:     toOptionalPoint(e.StartPoint()),
		EndPoint:       toOptionalPoint(e.EndPoint()),
	}
	if id, err := e.EntityID(); err == nil && id >= 0 {
		out.EntityID = &id
	}
	for _, sub := range c.SubCurves() {
		out.SubCurves = append(out.SubCurves, toCurve(sub))
	}
	return out
}

// JSON writes r as an indented JSON document. Values the source didn't
// provide are null.
func JSON(w io.Writer, r Result) error {
	doc := document{
		Name:     r.Name,
		Curves:   make([]*curveJSON, 0, len(r.Curves)),
		PIPoints: make([]pointJSON, 0, len(r.PIPoints)),
	}
	for _, c := range r.Curves {
		doc.Curves = append(doc.Curves, toCurve(c))
	}
	for _, pt := range r.PIPoints {
		doc.PIPoints = append(doc.PIPoints, toPoint(pt))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
