package export

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/roadgeom/alignment"
)

// Text writes r as an aligned table of curves followed by the list of PI
// points. Sub-curves are indented under their parent; missing sub-curves
// are shown as such.
func Text(w io.Writer, r Result) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if r.Name != "" {
		fmt.Fprintf(tw, "# %s\n", r.Name)
	}
	fmt.Fprintln(tw, "KIND\tTYPE\tSTART\tEND\tLENGTH")
	for _, c := range r.Curves {
		writeRow(tw, c, "")
		for i, sub := range c.SubCurves() {
			if sub == nil {
				fmt.Fprintf(tw, "  %d: missing\t\t\t\t\n", i)
				continue
			}
			writeRow(tw, sub, fmt.Sprintf("  %d: ", i))
		}
	}
	fmt.Fprintf(tw, "\nPI points: %d\n", len(r.PIPoints))
	for _, pt := range r.PIPoints {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", formatNumber(pt.X), formatNumber(pt.Y), formatNumber(pt.Z))
	}
	return tw.Flush()
}

func writeRow(w io.Writer, c alignment.Curve, prefix string) {
	e := c.Base()
	fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\t%s\n",
		prefix, c.Kind(), e.Type,
		formatNumber(e.StartStation), formatNumber(e.EndStation), formatNumber(e.Length))
}

func formatNumber(f float64) string {
	if math.IsNaN(f) {
		return "-"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
