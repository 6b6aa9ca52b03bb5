// Package export writes curve decompositions as text tables, JSON, or
// GeoJSON.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/roadgeom/alignment"
	"github.com/roadgeom/alignment/internal/config"
)

// Result is what gets exported for one alignment.
type Result struct {
	Name     string
	Curves   []alignment.Curve
	PIPoints []alignment.Point
}

// Write writes r to w in the named format, one of the config.Format
// constants.
func Write(w io.Writer, format string, r Result) error {
	switch format {
	case config.FormatText:
		return Text(w, r)
	case config.FormatJSON:
		return JSON(w, r)
	case config.FormatGeoJSON:
		return GeoJSON(w, r)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// number maps NaN, which JSON can't represent, to nil.
func number(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}
