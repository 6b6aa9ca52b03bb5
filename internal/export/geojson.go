package export

import (
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/roadgeom/alignment"
)

// GeoJSON writes r as a feature collection. Every curve and sub-curve
// with both end points becomes a LineString feature from its start to its
// end point, and every PI point with finite coordinates a Point feature.
// Coordinates are planar;
// elevations are carried in the "z" property of PI features.
func GeoJSON(w io.Writer, r Result) error {
	fc := geojson.NewFeatureCollection()
	for i, c := range r.Curves {
		if f := chord(c); f != nil {
			f.Properties["index"] = i
			fc.Append(f)
		}
		for j, sub := range c.SubCurves() {
			f := chord(sub)
			if f == nil {
				continue
			}
			f.Properties["index"] = i
			f.Properties["slot"] = j
			fc.Append(f)
		}
	}
	for i, pt := range r.PIPoints {
		if pt.IsNaN() {
			continue
		}
		f := geojson.NewFeature(orb.Point{pt.X, pt.Y})
		f.Properties["pi"] = i
		f.Properties["z"] = number(pt.Z)
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// chord returns the straight line between the end points of c, or nil if c
// is missing or lacks an end point.
func chord(c alignment.Curve) *geojson.Feature {
	if c == nil {
		return nil
	}
	e := c.Base()
	start, ok1 := e.StartPoint()
	end, ok2 := e.EndPoint()
	if !ok1 || !ok2 {
		return nil
	}
	f := geojson.NewFeature(orb.LineString{
		{start.X, start.Y},
		{end.X, end.Y},
	})
	f.Properties["kind"] = c.Kind().String()
	f.Properties["type"] = e.Type
	f.Properties["start_station"] = number(e.StartStation)
	f.Properties["end_station"] = number(e.EndStation)
	return f
}
