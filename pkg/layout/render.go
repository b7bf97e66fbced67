package layout

import "fmt"

// Visibility controls whether a render object is drawn and whether it
// occupies space.
type Visibility int

const (
	// Visible objects are drawn and occupy space.
	Visible Visibility = iota
	// Invisible objects occupy space but are not drawn.
	Invisible
	// Gone objects are not drawn and lay out at zero size.
	Gone
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	default:
		return fmt.Sprintf("Visibility(%d)", int(v))
	}
}

// TextDirection is the reading direction of a layout.
type TextDirection int

const (
	LTR TextDirection = iota
	RTL
)

// RenderObject handles layout for one node of the view tree.
type RenderObject interface {
	Layout(constraints Constraints)
	Size() Size
	MarkNeedsLayout()
	SetOwner(owner *PipelineOwner)
	Parent() RenderObject
	SetParent(parent RenderObject)
	// Offset is the position assigned by the parent.
	Offset() Offset
	SetOffset(offset Offset)
	// Translation is a draw-time displacement on top of Offset.
	Translation() Offset
	SetTranslation(translation Offset)
	Visibility() Visibility
	SetVisibility(v Visibility)
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	VisitChildren(visitor func(RenderObject))
}

// RenderBoxBase provides base behavior for render objects.
// Embedders call SetSelf with the concrete object and implement
// PerformLayout.
type RenderBoxBase struct {
	self        RenderObject
	parent      RenderObject
	owner       *PipelineOwner
	size        Size
	constraints Constraints
	laidOut     bool
	needsLayout bool
	inLayout    bool
	offset      Offset
	translation Offset
	visibility  Visibility
}

// SetSelf registers the concrete render object for scheduling.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
}

// Size returns the size from the last layout.
func (r *RenderBoxBase) Size() Size { return r.size }

// SetSize records the size. Call from PerformLayout.
func (r *RenderBoxBase) SetSize(size Size) { r.size = size }

// Constraints returns the constraints from the last layout.
func (r *RenderBoxBase) Constraints() Constraints { return r.constraints }

// NeedsLayout reports whether the object is dirty.
func (r *RenderBoxBase) NeedsLayout() bool { return r.needsLayout }

// InLayout reports whether PerformLayout is running.
func (r *RenderBoxBase) InLayout() bool { return r.inLayout }

// SetOwner assigns the pipeline owner used to schedule layout.
func (r *RenderBoxBase) SetOwner(owner *PipelineOwner) { r.owner = owner }

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject { return r.parent }

// SetParent sets the parent render object.
func (r *RenderBoxBase) SetParent(parent RenderObject) { r.parent = parent }

// Offset returns the position assigned by the parent.
func (r *RenderBoxBase) Offset() Offset { return r.offset }

// SetOffset records the position assigned by the parent.
func (r *RenderBoxBase) SetOffset(offset Offset) { r.offset = offset }

// Translation returns the draw-time displacement.
func (r *RenderBoxBase) Translation() Offset { return r.translation }

// SetTranslation sets the draw-time displacement. Translation does not
// affect layout.
func (r *RenderBoxBase) SetTranslation(translation Offset) { r.translation = translation }

// Visibility returns the current visibility.
func (r *RenderBoxBase) Visibility() Visibility { return r.visibility }

// SetVisibility changes visibility. Entering or leaving Gone changes the
// space the object occupies, so layout is requested.
func (r *RenderBoxBase) SetVisibility(v Visibility) {
	if r.visibility == v {
		return
	}
	wasGone := r.visibility == Gone
	r.visibility = v
	if wasGone || v == Gone {
		r.MarkNeedsLayout()
	}
}

// RequestLayout is MarkNeedsLayout under the name view hosts expect.
func (r *RenderBoxBase) RequestLayout() { r.MarkNeedsLayout() }

// MarkNeedsLayout marks this object and its ancestors dirty and schedules
// the root with the pipeline owner. Requests made while the object is
// laying itself out are dropped.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.inLayout || r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
		return
	}
	if r.owner != nil && r.self != nil {
		r.owner.ScheduleLayout(r.self)
	}
}

// Layout skips clean objects whose constraints are unchanged and otherwise
// delegates to the concrete PerformLayout.
func (r *RenderBoxBase) Layout(constraints Constraints) {
	if r.laidOut && !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.laidOut = true
	r.inLayout = true
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
	r.inLayout = false
	r.needsLayout = false
}

// SetParentOnChild sets the parent reference on child.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil || child.Parent() == parent {
		return
	}
	child.SetParent(parent)
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}
