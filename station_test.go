package alignment

import (
	"errors"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func sample(station float64, typ StationType, x float64) StationSample {
	return StationSample{RawStation: station, Location: Pt(x, 0, 0), Type: typ}
}

func ccrcAt(start, end float64) Curve {
	return Classify(ccrcRec{crcRec{newCompound(
		rec{"StartStation": start, "EndStation": end, "SubEntityCount": 3},
		map[string]any{
			"Arc1": arcAt(start, start+(end-start)/3),
			"Arc2": arcAt(start+(end-start)/3, start+2*(end-start)/3),
			"Arc3": arcAt(start+2*(end-start)/3, end),
		},
	)}})
}

func TestAssignPIPointsAlignment(t *testing.T) {
	curves := []Curve{
		Classify(lineAt(0, 50)),
		Classify(arcAt(50, 120)),
		ccrcAt(120, 300),
	}

	samples := []StationSample{
		sample(50, StationPlain, 1),
		sample(150, StationOther, 2),
		sample(200, StationPI, 3),
		sample(260, StationOther, 4),
	}

	// The sample at 50 lies on both the line and the arc, and simple curves
	// take their first sample whatever its type. The CCRC skips its joints.
	got := AssignPIPoints(curves, samples, nil)
	diff(t, []Point{Pt(1, 0, 0), Pt(1, 0, 0), Pt(3, 0, 0)}, got)
}

func TestAssignPIPointsSimpleCurveTakesFirst(t *testing.T) {
	curves := []Curve{Classify(arcAt(0, 100))}
	samples := []StationSample{
		sample(-10, StationPI, 9),
		sample(40, StationOther, 1),
		sample(60, StationPI, 2),
	}
	diff(t, []Point{Pt(1, 0, 0)}, AssignPIPoints(curves, samples, nil))
}

func TestAssignPIPointsBoundsInclusive(t *testing.T) {
	curves := []Curve{Classify(lineAt(10, 20))}
	diff(t, []Point{Pt(1, 0, 0)}, AssignPIPoints(curves, []StationSample{sample(20, StationPlain, 1)}, nil))
	diff(t, []Point{Pt(2, 0, 0)}, AssignPIPoints(curves, []StationSample{sample(10, StationPlain, 2)}, nil))
	if got := AssignPIPoints(curves, []StationSample{sample(20.001, StationPlain, 3)}, nil); len(got) != 0 {
		t.Errorf("got %v for a sample past the end", got)
	}
}

func TestAssignPIPointsCompoundWithoutPI(t *testing.T) {
	curves := []Curve{ccrcAt(0, 90)}
	samples := []StationSample{
		sample(30, StationOther, 1),
		sample(60, StationPlain, 2),
	}
	if got := AssignPIPoints(curves, samples, nil); len(got) != 0 {
		t.Errorf("got %v, want no points", got)
	}
}

func TestAssignPIPointsCompoundBySlotCount(t *testing.T) {
	// The source doesn't report a sub-entity count, so the number of slots
	// decides.
	crc := Classify(crcRec{newCompound(span(0, 100), nil)})
	samples := []StationSample{
		sample(10, StationOther, 1),
		sample(50, StationPI, 2),
	}
	diff(t, []Point{Pt(2, 0, 0)}, AssignPIPoints([]Curve{crc}, samples, nil))
}

func TestAssignPIPointsEmpty(t *testing.T) {
	if got := AssignPIPoints(nil, []StationSample{sample(0, StationPI, 1)}, nil); len(got) != 0 {
		t.Errorf("got %v without curves", got)
	}
	if got := AssignPIPoints([]Curve{Classify(lineAt(0, 10))}, nil, nil); len(got) != 0 {
		t.Errorf("got %v without samples", got)
	}
	if got := AssignPIPoints([]Curve{nil, Classify(nil)}, []StationSample{sample(0, StationPI, 1)}, nil); len(got) != 0 {
		t.Errorf("got %v for nil and generic curves", got)
	}
}

func TestAssignPIPointsNaN(t *testing.T) {
	curves := []Curve{Classify(lineAt(0, 10)), Classify(lineAt(math.NaN(), 10))}
	samples := []StationSample{
		sample(math.NaN(), StationPlain, 1),
		sample(5, StationPlain, 2),
	}
	diff(t, []Point{Pt(2, 0, 0)}, AssignPIPoints(curves, samples, nil))
}

func TestAssignPIPointsOffsetter(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	// Stations are ten times the x coordinate; raw stations are wrong.
	errOff := errors.New("location is off the alignment")
	so := StationOffsetFunc(func(x, y float64) (float64, float64, error) {
		if x < 0 {
			return 0, 0, errOff
		}
		return 10 * x, y, nil
	})
	p := StationProjector{Offsetter: so, Log: logger}

	curves := []Curve{Classify(lineAt(0, 50)), Classify(arcAt(50, 100))}
	samples := []StationSample{
		sample(1000, StationPlain, -1),
		sample(0, StationPlain, 7),
		sample(3, StationPlain, 2),
	}
	diff(t, []Point{Pt(2, 0, 0), Pt(7, 0, 0)}, p.AssignPIPoints(curves, samples))

	entries := hook.AllEntries()
	if len(entries) != 1 {
		t.Fatalf("got %d log entries, want 1", len(entries))
	}
	if err, _ := entries[0].Data[logrus.ErrorKey].(error); !errors.Is(err, errOff) {
		t.Errorf("logged error %v, want %v", err, errOff)
	}
}

func TestSortByStation(t *testing.T) {
	curves := []Curve{
		Classify(arcAt(50, 120)),
		Classify(lineAt(0, 50)),
		Classify(spiralAt(50, 60)),
		Classify(lineAt(120, 200)),
	}
	sorted := SortByStation(curves)

	kinds := func(cs []Curve) []CurveKind {
		var out []CurveKind
		for _, c := range cs {
			out = append(out, c.Kind())
		}
		return out
	}
	diff(t, []CurveKind{LineKind, ArcKind, SpiralKind, LineKind}, kinds(sorted))
	diff(t, []CurveKind{ArcKind, LineKind, SpiralKind, LineKind}, kinds(curves))
	if sorted[1] != curves[0] || sorted[2] != curves[2] {
		t.Error("curves with equal start stations changed order")
	}
}

func TestSampleAccessors(t *testing.T) {
	samples := []StationSample{
		sample(0, StationPlain, 1),
		sample(25, StationPI, 2),
	}
	diff(t, []Point{Pt(1, 0, 0), Pt(2, 0, 0)}, GeometryPoints(samples))
	diff(t, []float64{0, 25}, Stations(samples))
	diff(t, []float64{}, Stations(nil))
}

func TestStationTypeString(t *testing.T) {
	diff(t,
		[]string{"Plain", "PI", "Other", "InvalidStationType"},
		[]string{StationPlain.String(), StationPI.String(), StationOther.String(), StationType(9).String()},
	)
}
