package widgets

import (
	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
)

// ExpandingBox stacks its children at its origin and resizes between
// collapsed and its natural size, the size of its largest child.
type ExpandingBox struct {
	layout.RenderBoxBase
	Expandable

	children []layout.RenderObject
}

// NewExpandingBox creates an empty box. Without options it starts expanded.
func NewExpandingBox(opts ...expanding.Option) (*ExpandingBox, error) {
	b := &ExpandingBox{}
	b.SetSelf(b)
	if err := b.init(b, nil, opts); err != nil {
		return nil, err
	}
	return b, nil
}

// AddChild appends child on top of the existing children.
func (b *ExpandingBox) AddChild(child layout.RenderObject) {
	b.children = append(b.children, child)
	layout.SetParentOnChild(child, b)
}

// RemoveChild detaches child if present.
func (b *ExpandingBox) RemoveChild(child layout.RenderObject) {
	n := len(b.children)
	b.children = removeChild(b.children, child)
	if len(b.children) != n {
		layout.SetParentOnChild(child, nil)
		b.MarkNeedsLayout()
	}
}

// Children returns the children in paint order.
func (b *ExpandingBox) Children() []layout.RenderObject {
	return b.children
}

func (b *ExpandingBox) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range b.children {
		visitor(child)
	}
}

// PerformLayout measures the children and trims the result to the current
// expansion fraction.
func (b *ExpandingBox) PerformLayout() {
	natural := stackChildren(b.children, b.Constraints())
	b.SetSize(b.measure(natural, b.children))
}

// SaveState returns the persisted form of the box.
func (b *ExpandingBox) SaveState() ([]byte, error) {
	return expanding.SaveState(b.Controller, nil)
}

// RestoreState applies a blob from SaveState without animation.
func (b *ExpandingBox) RestoreState(data []byte) error {
	return expanding.RestoreState(b.Controller, data, nil)
}
