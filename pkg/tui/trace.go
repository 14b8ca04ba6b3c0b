package tui

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

const traceRune = '•'

// cell is a position in the graph area, col 0 at the left and row 0 at the bottom.
type cell struct {
	col, row int
}

// plotArea maps data coordinates onto a cols x rows grid of cells.
type plotArea struct {
	minX, maxX float64
	minY, maxY float64
	cols, rows int
}

func scale(v, lo, hi float64, n int) int {
	if n <= 1 || hi == lo {
		return 0
	}
	i := int(math.Round((v - lo) / (hi - lo) * float64(n-1)))
	return min(max(i, 0), n-1)
}

func (a plotArea) cell(p plotter.XY) cell {
	return cell{
		col: scale(p.X, a.minX, a.maxX, a.cols),
		row: scale(p.Y, a.minY, a.maxY, a.rows),
	}
}

// trace returns the cells covered by the polyline through pts, in sample
// order. A single point covers one cell.
func (a plotArea) trace(pts plotter.XYs) []cell {
	if len(pts) == 0 || a.cols <= 0 || a.rows <= 0 {
		return nil
	}
	cells := []cell{a.cell(pts[0])}
	for i := 1; i < len(pts); i++ {
		seg := segment(a.cell(pts[i-1]), a.cell(pts[i]))
		cells = append(cells, seg[1:]...)
	}
	return cells
}

// segment returns the cells on the line from a to b, both included (Bresenham).
func segment(a, b cell) []cell {
	dx := abs(b.col - a.col)
	dy := -abs(b.row - a.row)
	sx, sy := 1, 1
	if a.col > b.col {
		sx = -1
	}
	if a.row > b.row {
		sy = -1
	}

	cells := make([]cell, 0, max(dx, -dy)+1)
	err := dx + dy
	c := a
	for {
		cells = append(cells, c)
		if c == b {
			return cells
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c.col += sx
		}
		if e2 <= dx {
			err += dx
			c.row += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
