// Package figure turns a telemetry log into the run plot: three labelled line
// series on shared axes with a grid.
package figure

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"

	"github.com/bbdrive/runplot/pkg/telemetry"
)

// Series labels, in legend order.
const (
	Goal        = "goal"
	Position    = "position"
	Orientation = "orientation"
)

// Series is one named line.
type Series struct {
	Label string
	XYs   plotter.XYs
}

// Len returns the number of points in the series.
func (s Series) Len() int {
	return len(s.XYs)
}

// Figure is the plot of one run.
type Figure struct {
	Title  string
	XLabel string
	YLabel string
	Grid   bool
	Series []Series
}

// New builds the figure for a run log.
//
// Orientation is plotted against px, not against the sample index.
func New(log *telemetry.Log) *Figure {
	return &Figure{
		Title:  "Run",
		XLabel: "x (mm)",
		YLabel: "y (mm) / phi (rad)",
		Grid:   true,
		Series: []Series{
			{Label: Goal, XYs: zip(log.GX, log.GY)},
			{Label: Position, XYs: zip(log.PX, log.PY)},
			{Label: Orientation, XYs: zip(log.PX, log.Phi)},
		},
	}
}

func zip(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range pts {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}

// Labels returns the series labels in legend order.
func (f *Figure) Labels() []string {
	labels := make([]string, 0, len(f.Series))
	for _, s := range f.Series {
		labels = append(labels, s.Label)
	}
	return labels
}

// Empty reports whether no series has any points.
func (f *Figure) Empty() bool {
	for _, s := range f.Series {
		if s.Len() > 0 {
			return false
		}
	}
	return true
}

// Bounds returns the extent of all points in the figure.
// An empty figure spans the unit square.
func (f *Figure) Bounds() (minX, maxX, minY, maxY float64) {
	var xs, ys []float64
	for _, s := range f.Series {
		for _, p := range s.XYs {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
		}
	}
	if len(xs) == 0 {
		return 0, 1, 0, 1
	}
	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys)
}

// SeriesBounds returns the extent of a single series, or false if it is empty.
func SeriesBounds(s Series) (minX, maxX, minY, maxY float64, ok bool) {
	if s.Len() == 0 {
		return 0, 0, 0, 0, false
	}
	xs := make([]float64, s.Len())
	ys := make([]float64, s.Len())
	for i, p := range s.XYs {
		xs[i] = p.X
		ys[i] = p.Y
	}
	return floats.Min(xs), floats.Max(xs), floats.Min(ys), floats.Max(ys), true
}
