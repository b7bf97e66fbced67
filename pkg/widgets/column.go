package widgets

import (
	"math"

	"github.com/go-drift/expanding/pkg/layout"
)

// Column places its children one below the other. Gone children take no
// space, so a collapsed expanding host closes its gap.
type Column struct {
	layout.RenderBoxBase
	children []layout.RenderObject
}

// NewColumn creates a column of children.
func NewColumn(children ...layout.RenderObject) *Column {
	c := &Column{}
	c.SetSelf(c)
	for _, child := range children {
		c.AddChild(child)
	}
	return c
}

// AddChild appends child at the bottom.
func (c *Column) AddChild(child layout.RenderObject) {
	c.children = append(c.children, child)
	layout.SetParentOnChild(child, c)
	c.MarkNeedsLayout()
}

// Children returns the children from top to bottom.
func (c *Column) Children() []layout.RenderObject {
	return c.children
}

func (c *Column) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range c.children {
		visitor(child)
	}
}

func (c *Column) PerformLayout() {
	constraints := c.Constraints()
	childConstraints := constraints.Loosen().WithMaxHeight(math.Inf(1))
	var width, y float64
	for _, child := range c.children {
		s := layoutChild(child, childConstraints)
		child.SetOffset(layout.Offset{Y: y})
		y += s.Height
		width = math.Max(width, s.Width)
	}
	c.SetSize(constraints.Constrain(layout.Size{Width: width, Height: y}))
}
