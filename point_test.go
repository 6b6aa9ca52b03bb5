package alignment

import (
	"math"
	"testing"
)

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10, 0)
	p2 := Pt(0, 5, 0)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1, 0)
	p4 := Pt(-7, -2, 0)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	if d := Pt(0, 0, 0).Distance(Pt(1, 2, 2)); math.Abs(d-3) > 1e-12 {
		t.Errorf("got distance %v, want 3", d)
	}
}

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(1, 2, 3), Pt(0, 0, 0).Midpoint(Pt(2, 4, 6)))
}

func TestProjectPoint(t *testing.T) {
	tests := []struct {
		name string
		src  any
		want Point
		ok   bool
	}{
		{"2D", xy(3, 4), Pt(3, 4, 0), true},
		{"3D", rec{"x": 3, "y": 4, "z": 5}, Pt(3, 4, 5), true},
		{"struct", struct{ X, Y, Z float64 }{1, 2, 3}, Pt(1, 2, 3), true},
		{"Point", Pt(7, 8, 9), Pt(7, 8, 9), true},
		{"origin", xy(0, 0), Pt(0, 0, 0), true},
		{"missing Y", rec{"X": 1.0}, Point{}, false},
		{"unresolvable X", rec{"X": "east", "Y": 1.0}, Point{}, false},
		{"NaN Z", rec{"X": 1.0, "Y": 1.0, "Z": math.NaN()}, Point{}, false},
		{"nil", nil, Point{}, false},
		{"number", 12.0, Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProjectPoint(tt.src)
			if ok != tt.ok {
				t.Fatalf("got ok = %t, want %t", ok, tt.ok)
			}
			diff(t, tt.want, got)
		})
	}
}

func TestPointIsNaN(t *testing.T) {
	if Pt(1, 2, 3).IsNaN() {
		t.Error("point is NaN but shouldn't be")
	}
	if !Pt(1, math.NaN(), 3).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
	if !Pt(1, 2, math.Inf(-1)).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
}
