package widgets

import (
	"math"

	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
)

// ScrollState is the scroll view's own persisted state.
type ScrollState struct {
	Offset float64 `yaml:"offset"`
}

// ExpandingScrollView scrolls a single child vertically and resizes between
// collapsed and its natural viewport size.
//
// Nested scrolling is enabled by default and suspended while collapsed.
type ExpandingScrollView struct {
	layout.RenderBoxBase
	Expandable

	child     layout.RenderObject
	offset    float64
	maxOffset float64
	nested    nestedScrolling
}

// NewExpandingScrollView creates a scroll view with no child.
func NewExpandingScrollView(opts ...expanding.Option) (*ExpandingScrollView, error) {
	s := &ExpandingScrollView{nested: nestedScrolling{enabled: true}}
	s.SetSelf(s)
	if err := s.init(s, &s.nested, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// SetChild replaces the scrolled child.
func (s *ExpandingScrollView) SetChild(child layout.RenderObject) {
	if s.child != nil {
		layout.SetParentOnChild(s.child, nil)
	}
	s.child = child
	if child != nil {
		layout.SetParentOnChild(child, s)
	}
	s.MarkNeedsLayout()
}

// Child returns the scrolled child.
func (s *ExpandingScrollView) Child() layout.RenderObject {
	return s.child
}

func (s *ExpandingScrollView) VisitChildren(visitor func(layout.RenderObject)) {
	if s.child != nil {
		visitor(s.child)
	}
}

// NestedScrollingEnabled reports whether the view currently takes part in
// nested scrolling. It is false while collapsed.
func (s *ExpandingScrollView) NestedScrollingEnabled() bool {
	return s.nested.enabled
}

// SetNestedScrollingEnabled sets nested scrolling participation. While
// collapsed the value is kept and takes effect once the view expands.
func (s *ExpandingScrollView) SetNestedScrollingEnabled(enabled bool) {
	s.nested.set(enabled)
}

// ScrollOffset returns the current scroll position.
func (s *ExpandingScrollView) ScrollOffset() float64 {
	return s.offset
}

// MaxScrollOffset returns the scroll extent from the last layout.
func (s *ExpandingScrollView) MaxScrollOffset() float64 {
	return s.maxOffset
}

// ScrollTo moves to offset. The value is clamped to the scroll extent at
// the next layout.
func (s *ExpandingScrollView) ScrollTo(offset float64) {
	if offset == s.offset {
		return
	}
	s.offset = math.Max(0, offset)
	s.MarkNeedsLayout()
}

// ScrollBy moves the scroll position by delta.
func (s *ExpandingScrollView) ScrollBy(delta float64) {
	s.ScrollTo(s.offset + delta)
}

// PerformLayout lays the child out with unbounded height, sizes the viewport
// from the constraints and trims it to the current expansion fraction.
func (s *ExpandingScrollView) PerformLayout() {
	constraints := s.Constraints()
	var content layout.Size
	if s.child != nil {
		content = layoutChild(s.child, constraints.Loosen().WithMaxHeight(math.Inf(1)))
	}
	viewport := constraints.Constrain(content)

	s.maxOffset = math.Max(0, content.Height-viewport.Height)
	s.offset = math.Min(s.offset, s.maxOffset)

	var children []layout.RenderObject
	if s.child != nil {
		s.child.SetOffset(layout.Offset{Y: -s.offset})
		children = []layout.RenderObject{s.child}
	}
	s.SetSize(s.measure(viewport, children))
}

// SaveState returns the persisted form of the view, scroll offset included.
func (s *ExpandingScrollView) SaveState() ([]byte, error) {
	return expanding.SaveState(s.Controller, ScrollState{Offset: s.offset})
}

// RestoreState applies a blob from SaveState without animation.
func (s *ExpandingScrollView) RestoreState(data []byte) error {
	var st ScrollState
	st.Offset = s.offset
	if err := expanding.RestoreState(s.Controller, data, &st); err != nil {
		return err
	}
	s.ScrollTo(st.Offset)
	return nil
}
