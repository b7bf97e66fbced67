package main

import (
	"math"
	"strings"

	"github.com/go-drift/expanding/pkg/layout"
	"github.com/go-drift/expanding/pkg/widgets"
)

// Label glyphs are 7x13 pixels, so one glyph is one terminal cell.
const (
	cellWidth  = 7
	cellHeight = 13
)

type rect struct {
	x0, y0, x1, y1 float64
}

func (r rect) intersect(o rect) rect {
	return rect{
		x0: math.Max(r.x0, o.x0), y0: math.Max(r.y0, o.y0),
		x1: math.Min(r.x1, o.x1), y1: math.Min(r.y1, o.y1),
	}
}

func (r rect) contains(x, y float64) bool {
	return x >= r.x0 && x < r.x1 && y >= r.y0 && y < r.y1
}

// canvas is a grid of terminal cells.
type canvas struct {
	cols, rows int
	cells      [][]rune
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: cols, rows: rows, cells: make([][]rune, rows)}
	for i := range c.cells {
		c.cells[i] = []rune(strings.Repeat(" ", cols))
	}
	return c
}

func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for i, row := range c.cells {
		lines[i] = strings.TrimRight(string(row), " ")
	}
	return strings.Join(lines, "\n")
}

// rasterize paints the laid-out tree rooted at root onto a cols x rows grid.
// Every object clips its descendants to its own bounds.
func rasterize(root layout.RenderObject, cols, rows int) string {
	c := newCanvas(cols, rows)
	clip := rect{x1: float64(cols * cellWidth), y1: float64(rows * cellHeight)}
	c.paint(root, layout.Offset{}, clip)
	return c.String()
}

func (c *canvas) paint(obj layout.RenderObject, origin layout.Offset, clip rect) {
	if obj.Visibility() != layout.Visible {
		return
	}
	pos := origin.Add(obj.Offset()).Add(obj.Translation())
	size := obj.Size()
	clip = clip.intersect(rect{x0: pos.X, y0: pos.Y, x1: pos.X + size.Width, y1: pos.Y + size.Height})
	if clip.x0 >= clip.x1 || clip.y0 >= clip.y1 {
		return
	}

	if label, ok := obj.(*widgets.Label); ok {
		c.drawLabel(label, pos, clip)
	}
	if parent, ok := obj.(layout.ChildVisitor); ok {
		parent.VisitChildren(func(child layout.RenderObject) {
			c.paint(child, pos, clip)
		})
	}
}

func (c *canvas) drawLabel(l *widgets.Label, pos layout.Offset, clip rect) {
	for i, line := range l.Lines() {
		row := int(math.Round((pos.Y + float64(i)*l.LineHeight()) / cellHeight))
		if row < 0 || row >= c.rows {
			continue
		}
		for j, r := range []rune(line) {
			col := int(math.Round(pos.X/cellWidth)) + j
			if col < 0 || col >= c.cols {
				continue
			}
			// Sample the glyph's center against the clip.
			cx := float64(col)*cellWidth + cellWidth/2.0
			cy := float64(row)*cellHeight + cellHeight/2.0
			if clip.contains(cx, cy) {
				c.cells[row][col] = r
			}
		}
	}
}
