package alignment

import (
	"errors"
	"fmt"
	"strings"
)

// rec is a source record backed by a map.
type rec map[string]any

func (r rec) Field(name string) (any, error) {
	for k, v := range r {
		if strings.EqualFold(k, name) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("no field %q", name)
}

func xy(x, y float64) rec { return rec{"X": x, "Y": y} }

func span(start, end float64) rec {
	return rec{"StartStation": start, "EndStation": end}
}

type lineRec struct{ rec }

func (lineRec) AlignmentLine() {}

type arcRec struct{ rec }

func (arcRec) AlignmentArc() {}

type spiralRec struct{ rec }

func (spiralRec) AlignmentSpiral() {}

// panicSlot makes a sub-record accessor panic.
type panicSlot string

var errNoSlot = errors.New("sub-entity not available")

// compound is the base of all fake compound records. Each entry of subs is
// returned by the accessor of the same name. Missing entries are reported
// as errNoSlot, error values are returned as errors, and panicSlot values
// make the accessor panic.
type compound struct {
	rec
	subs map[string]any
}

func (c compound) sub(name string) (any, error) {
	v, ok := c.subs[name]
	if !ok {
		return nil, errNoSlot
	}
	switch v := v.(type) {
	case error:
		return nil, v
	case panicSlot:
		panic(string(v))
	}
	return v, nil
}

type scsRec struct{ compound }

func (r scsRec) SpiralIn() (any, error)  { return r.sub("SpiralIn") }
func (r scsRec) Arc() (any, error)       { return r.sub("Arc") }
func (r scsRec) SpiralOut() (any, error) { return r.sub("SpiralOut") }

type scscsRec struct{ compound }

func (r scscsRec) Spiral1() (any, error) { return r.sub("Spiral1") }
func (r scscsRec) Arc1() (any, error)    { return r.sub("Arc1") }
func (r scscsRec) Spiral2() (any, error) { return r.sub("Spiral2") }
func (r scscsRec) Arc2() (any, error)    { return r.sub("Arc2") }
func (r scscsRec) Spiral3() (any, error) { return r.sub("Spiral3") }

type scsscsRec struct{ scscsRec }

func (r scsscsRec) Spiral4() (any, error) { return r.sub("Spiral4") }

type sscssRec struct{ compound }

func (r sscssRec) Spiral1() (any, error) { return r.sub("Spiral1") }
func (r sscssRec) Spiral2() (any, error) { return r.sub("Spiral2") }
func (r sscssRec) Arc() (any, error)     { return r.sub("Arc") }
func (r sscssRec) Spiral3() (any, error) { return r.sub("Spiral3") }
func (r sscssRec) Spiral4() (any, error) { return r.sub("Spiral4") }

type crcRec struct{ compound }

func (r crcRec) Arc1() (any, error) { return r.sub("Arc1") }
func (r crcRec) Arc2() (any, error) { return r.sub("Arc2") }

type ccrcRec struct{ crcRec }

func (r ccrcRec) Arc3() (any, error) { return r.sub("Arc3") }

type ctcRec struct{ crcRec }

func (r ctcRec) Tangent() (any, error) { return r.sub("Tangent") }

type stsRec struct{ compound }

func (r stsRec) SpiralIn() (any, error)  { return r.sub("SpiralIn") }
func (r stsRec) Tangent() (any, error)   { return r.sub("Tangent") }
func (r stsRec) SpiralOut() (any, error) { return r.sub("SpiralOut") }

type multiRec struct {
	rec
	segs []any
}

func (r multiRec) SubEntity(i int) (any, error) {
	switch v := r.segs[i].(type) {
	case error:
		return nil, v
	case panicSlot:
		panic(string(v))
	default:
		return v, nil
	}
}

func newCompound(fields rec, subs map[string]any) compound {
	return compound{rec: fields, subs: subs}
}
