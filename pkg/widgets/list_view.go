package widgets

import (
	"math"
	"sort"

	"github.com/go-drift/expanding/pkg/errors"
	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
)

// Adapter supplies the items of an ExpandingListView.
type Adapter interface {
	// ItemCount returns the number of items.
	ItemCount() int
	// CreateItem returns a new, unbound item node.
	CreateItem() layout.RenderObject
	// BindItem fills item with the content at index. Items are rebound
	// when they are reused for another index.
	BindItem(item layout.RenderObject, index int)
}

// ListState is the list view's own persisted state.
type ListState struct {
	Offset float64 `yaml:"offset"`
}

// ExpandingListView shows adapter items at a fixed extent in a vertical
// viewport and resizes between collapsed and its natural viewport size.
//
// Only items inside the viewport plus CacheExtent are kept; the rest are
// returned to a pool and rebound on reuse. Nested scrolling is enabled by
// default and suspended while collapsed.
type ExpandingListView struct {
	layout.RenderBoxBase
	Expandable

	adapter     Adapter
	itemExtent  float64
	cacheExtent float64
	maxViewport float64
	offset      float64
	maxOffset   float64
	active      map[int]layout.RenderObject
	pool        []layout.RenderObject
	nested      nestedScrolling
}

// NewExpandingListView creates a list view that lays out items at
// itemExtent each. itemExtent must be positive.
func NewExpandingListView(itemExtent float64, opts ...expanding.Option) (*ExpandingListView, error) {
	if !(itemExtent > 0) {
		return nil, errors.InvalidArgument("widgets.NewExpandingListView", "item extent %v must be positive", itemExtent)
	}
	l := &ExpandingListView{
		itemExtent: itemExtent,
		active:     make(map[int]layout.RenderObject),
		nested:     nestedScrolling{enabled: true},
	}
	l.SetSelf(l)
	if err := l.init(l, &l.nested, opts); err != nil {
		return nil, err
	}
	return l, nil
}

// SetAdapter replaces the adapter. All items are discarded.
func (l *ExpandingListView) SetAdapter(a Adapter) {
	l.adapter = a
	for index, item := range l.active {
		layout.SetParentOnChild(item, nil)
		delete(l.active, index)
	}
	l.pool = nil
	l.MarkNeedsLayout()
}

// NotifyDataSetChanged rebinds every item at the next layout.
func (l *ExpandingListView) NotifyDataSetChanged() {
	for index, item := range l.active {
		l.recycle(index, item)
	}
	l.MarkNeedsLayout()
}

// ItemExtent returns the height of every item.
func (l *ExpandingListView) ItemExtent() float64 {
	return l.itemExtent
}

// SetCacheExtent sets how far beyond the viewport items are kept.
func (l *ExpandingListView) SetCacheExtent(extent float64) {
	l.cacheExtent = math.Max(0, extent)
	l.MarkNeedsLayout()
}

// SetMaxViewportHeight caps the natural viewport height. Zero removes the
// cap, leaving the viewport as tall as the constraints allow.
func (l *ExpandingListView) SetMaxViewportHeight(h float64) {
	l.maxViewport = math.Max(0, h)
	l.MarkNeedsLayout()
}

// NestedScrollingEnabled reports whether the list currently takes part in
// nested scrolling. It is false while collapsed.
func (l *ExpandingListView) NestedScrollingEnabled() bool {
	return l.nested.enabled
}

// SetNestedScrollingEnabled sets nested scrolling participation. While
// collapsed the value is kept and takes effect once the list expands.
func (l *ExpandingListView) SetNestedScrollingEnabled(enabled bool) {
	l.nested.set(enabled)
}

// ScrollOffset returns the current scroll position.
func (l *ExpandingListView) ScrollOffset() float64 {
	return l.offset
}

// MaxScrollOffset returns the scroll extent from the last layout.
func (l *ExpandingListView) MaxScrollOffset() float64 {
	return l.maxOffset
}

// ScrollTo moves to offset, clamped at the next layout.
func (l *ExpandingListView) ScrollTo(offset float64) {
	if offset == l.offset {
		return
	}
	l.offset = math.Max(0, offset)
	l.MarkNeedsLayout()
}

// ScrollBy moves the scroll position by delta.
func (l *ExpandingListView) ScrollBy(delta float64) {
	l.ScrollTo(l.offset + delta)
}

// ActiveIndices returns the indices of the items currently laid out, in
// ascending order.
func (l *ExpandingListView) ActiveIndices() []int {
	indices := make([]int, 0, len(l.active))
	for index := range l.active {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

// Item returns the item laid out at index, if any.
func (l *ExpandingListView) Item(index int) (layout.RenderObject, bool) {
	item, ok := l.active[index]
	return item, ok
}

// PoolSize returns the number of items waiting for reuse.
func (l *ExpandingListView) PoolSize() int {
	return len(l.pool)
}

func (l *ExpandingListView) VisitChildren(visitor func(layout.RenderObject)) {
	for _, index := range l.ActiveIndices() {
		visitor(l.active[index])
	}
}

// PerformLayout sizes the viewport, binds the items it shows and trims the
// viewport to the current expansion fraction.
func (l *ExpandingListView) PerformLayout() {
	constraints := l.Constraints()
	count := 0
	if l.adapter != nil {
		count = l.adapter.ItemCount()
	}
	content := float64(count) * l.itemExtent
	viewportHeight := math.Min(content, constraints.MaxHeight)
	if l.maxViewport > 0 {
		viewportHeight = math.Min(viewportHeight, l.maxViewport)
	}

	l.maxOffset = math.Max(0, content-viewportHeight)
	l.offset = math.Min(l.offset, l.maxOffset)

	first, last := l.visibleRange(count, viewportHeight)
	for index, item := range l.active {
		if index < first || index > last {
			l.recycle(index, item)
		}
	}

	itemConstraints := layout.Constraints{
		MaxWidth:  constraints.MaxWidth,
		MinHeight: l.itemExtent,
		MaxHeight: l.itemExtent,
	}
	width := 0.0
	children := make([]layout.RenderObject, 0, last-first+1)
	for index := first; index <= last; index++ {
		item := l.obtain(index)
		s := layoutChild(item, itemConstraints)
		item.SetOffset(layout.Offset{Y: float64(index)*l.itemExtent - l.offset})
		width = math.Max(width, s.Width)
		children = append(children, item)
	}
	width = finiteOr(constraints.MaxWidth, width)

	viewport := constraints.Constrain(layout.Size{Width: width, Height: viewportHeight})
	l.SetSize(l.measure(viewport, children))
}

func (l *ExpandingListView) visibleRange(count int, viewportHeight float64) (int, int) {
	if count == 0 {
		return 0, -1
	}
	top := math.Max(0, l.offset-l.cacheExtent)
	bottom := l.offset + viewportHeight + l.cacheExtent
	first := int(math.Floor(top / l.itemExtent))
	last := int(math.Ceil(bottom/l.itemExtent)) - 1
	if last >= count {
		last = count - 1
	}
	if first > last {
		return 0, -1
	}
	return first, last
}

func (l *ExpandingListView) obtain(index int) layout.RenderObject {
	if item, ok := l.active[index]; ok {
		return item
	}
	var item layout.RenderObject
	if n := len(l.pool); n > 0 {
		item = l.pool[n-1]
		l.pool = l.pool[:n-1]
	} else {
		item = l.adapter.CreateItem()
	}
	l.adapter.BindItem(item, index)
	item.MarkNeedsLayout()
	l.active[index] = item
	layout.SetParentOnChild(item, l)
	return item
}

func (l *ExpandingListView) recycle(index int, item layout.RenderObject) {
	delete(l.active, index)
	layout.SetParentOnChild(item, nil)
	l.pool = append(l.pool, item)
}

// SaveState returns the persisted form of the list, scroll offset included.
func (l *ExpandingListView) SaveState() ([]byte, error) {
	return expanding.SaveState(l.Controller, ListState{Offset: l.offset})
}

// RestoreState applies a blob from SaveState without animation.
func (l *ExpandingListView) RestoreState(data []byte) error {
	st := ListState{Offset: l.offset}
	if err := expanding.RestoreState(l.Controller, data, &st); err != nil {
		return err
	}
	l.ScrollTo(st.Offset)
	return nil
}
