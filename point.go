package alignment

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Point is a point in the drawing's coordinate system. Sources that only
// carry plan coordinates produce points with Z == 0.
type Point struct {
	X float64
	Y float64
	Z float64
}

// Pt returns the point (x, y, z).
func Pt(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

func (pt Point) Splat() (float64, float64, float64) {
	return pt.X, pt.Y, pt.Z
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{
		X: 0.5 * (pt.X + o.X),
		Y: 0.5 * (pt.Y + o.Y),
		Z: 0.5 * (pt.Z + o.Z),
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return floats.Distance(
		[]float64{pt.X, pt.Y, pt.Z},
		[]float64{o.X, o.Y, o.Z},
		2,
	)
}

// IsInf reports whether at least one of x, y and z is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) || math.IsInf(pt.Z, 0)
}

// IsNaN reports whether at least one of x, y and z is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsNaN(pt.Z)
}

// ProjectPoint reads a coordinate-bearing source value, such as a 2D or 3D
// point record, into a Point.
//
// X and Y are required. Z defaults to 0, so plan-only sources yield valid
// points. The second return value is false if src is nil or any coordinate
// could not be resolved; callers must not treat such a value as the origin.
func ProjectPoint(src any) (Point, bool) {
	if src == nil {
		return Point{}, false
	}
	pt := Point{
		X: Extract(src, "X", math.NaN()),
		Y: Extract(src, "Y", math.NaN()),
		Z: Extract(src, "Z", 0.0),
	}
	if pt.IsNaN() {
		return Point{}, false
	}
	return pt, true
}

// projectField projects the point stored in the named field of src.
func projectField(src any, name string) option[Point] {
	var opt option[Point]
	v, ok := Lookup(src, name)
	if !ok {
		return opt
	}
	if pt, ok := ProjectPoint(v); ok {
		opt.set(pt)
	}
	return opt
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt option[T]) get() (T, bool) {
	return opt.value, opt.isSet
}
