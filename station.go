package alignment

import (
	"cmp"
	"slices"

	"github.com/sirupsen/logrus"
)

// StationType tags a geometry point station.
type StationType int

const (
	// The sample carries no particular tag.
	StationPlain StationType = iota
	// The sample is a curve group's point of intersection.
	StationPI
	// The sample is some other geometry change point.
	StationOther
)

func (t StationType) String() string {
	switch t {
	case StationPlain:
		return "Plain"
	case StationPI:
		return "PI"
	case StationOther:
		return "Other"
	default:
		return "InvalidStationType"
	}
}

// StationSample is a geometry point station as reported by the store.
type StationSample struct {
	RawStation float64
	Location   Point
	Type       StationType
}

// StationOffsetter projects a location onto an alignment, returning the
// station and offset it corresponds to. Implementations account for
// station equations.
type StationOffsetter interface {
	StationOffset(x, y float64) (station, offset float64, err error)
}

// StationOffsetFunc adapts a function to [StationOffsetter].
type StationOffsetFunc func(x, y float64) (station, offset float64, err error)

func (f StationOffsetFunc) StationOffset(x, y float64) (float64, float64, error) {
	return f(x, y)
}

// StationProjector places station samples on the curves of an alignment.
type StationProjector struct {
	// Offsetter corrects sample stations. If nil, raw stations are used
	// unchanged.
	Offsetter StationOffsetter
	// Log receives a debug entry for every sample that had to be dropped.
	// If nil, logrus.StandardLogger() is used.
	Log logrus.FieldLogger
}

// AssignPIPoints is a shorthand for
// (&StationProjector{Offsetter: so}).AssignPIPoints(curves, samples).
func AssignPIPoints(curves []Curve, samples []StationSample, so StationOffsetter) []Point {
	p := StationProjector{Offsetter: so}
	return p.AssignPIPoints(curves, samples)
}

type normalizedSample struct {
	station float64
	sample  StationSample
}

// AssignPIPoints returns the PI points of curves, in curve order.
//
// Each sample's station is first corrected through the offsetter; samples
// that can't be corrected are dropped. A curve owns the samples whose
// station lies within [StartStation, EndStation], bounds included. A simple
// curve, with at most one sub-entity, yields its first sample in input
// order, whatever its type. A compound curve yields its first sample of
// type [StationPI], and nothing if it has none, as its other samples are
// internal joints. Curves without samples yield nothing.
func (p *StationProjector) AssignPIPoints(curves []Curve, samples []StationSample) []Point {
	norm := p.normalize(samples)

	var out []Point
	for _, c := range curves {
		if c == nil {
			continue
		}
		if pt, ok := piPoint(c, norm); ok {
			out = append(out, pt)
		}
	}
	return out
}

func (p *StationProjector) normalize(samples []StationSample) []normalizedSample {
	out := make([]normalizedSample, 0, len(samples))
	for _, s := range samples {
		if p.Offsetter == nil {
			out = append(out, normalizedSample{s.RawStation, s})
			continue
		}
		station, _, err := p.Offsetter.StationOffset(s.Location.X, s.Location.Y)
		if err != nil {
			p.log().WithError(err).WithFields(logrus.Fields{
				"raw_station": s.RawStation,
				"location":    s.Location,
			}).Debug("dropping station sample")
			continue
		}
		out = append(out, normalizedSample{station, s})
	}
	return out
}

func (p *StationProjector) log() logrus.FieldLogger {
	if p.Log == nil {
		return logrus.StandardLogger()
	}
	return p.Log
}

func piPoint(c Curve, samples []normalizedSample) (Point, bool) {
	base := c.Base()
	compound := subEntityCount(c) > 1
	for _, s := range samples {
		// NaN stations and bounds match nothing.
		if !(s.station >= base.StartStation && s.station <= base.EndStation) {
			continue
		}
		if !compound || s.sample.Type == StationPI {
			return s.sample.Location, true
		}
	}
	return Point{}, false
}

// subEntityCount returns the number of sub-entities the store reports for a
// top-level curve, falling back to the number of sub-curve slots.
func subEntityCount(c Curve) int {
	if n, err := c.Base().SubEntityCount(); err == nil && n > 0 {
		return n
	}
	return len(c.SubCurves())
}

// SortByStation returns a copy of curves ordered by start station, for
// display. Curves with equal start stations keep their relative order. The
// store's own entity order, which EntityBefore and EntityAfter refer to, is
// that of the input.
func SortByStation(curves []Curve) []Curve {
	out := slices.Clone(curves)
	slices.SortStableFunc(out, func(a, b Curve) int {
		return cmp.Compare(a.Base().StartStation, b.Base().StartStation)
	})
	return out
}

// GeometryPoints returns the locations of samples.
func GeometryPoints(samples []StationSample) []Point {
	out := make([]Point, len(samples))
	for i, s := range samples {
		out[i] = s.Location
	}
	return out
}

// Stations returns the raw stations of samples.
func Stations(samples []StationSample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = s.RawStation
	}
	return out
}
