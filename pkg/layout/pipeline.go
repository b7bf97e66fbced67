package layout

// PipelineOwner tracks whether the tree needs layout and runs it.
//
// MarkNeedsLayout walks to the root, which schedules itself here. The host
// frame loop calls FlushLayout once per frame after animations have stepped,
// so every fraction change made during a frame is measured in the same frame.
type PipelineOwner struct {
	scheduled   map[RenderObject]bool
	needsLayout bool
	passes      int
}

// ScheduleLayout records that root needs layout.
func (p *PipelineOwner) ScheduleLayout(root RenderObject) {
	if p.scheduled == nil {
		p.scheduled = make(map[RenderObject]bool)
	}
	p.scheduled[root] = true
	p.needsLayout = true
}

// NeedsLayout reports if any render objects need layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// Passes returns how many layout passes have run.
func (p *PipelineOwner) Passes() int {
	return p.passes
}

// FlushLayout lays out root with constraints if anything is scheduled.
// Clean subtrees with unchanged constraints are skipped by Layout.
func (p *PipelineOwner) FlushLayout(root RenderObject, constraints Constraints) {
	if !p.needsLayout || root == nil {
		return
	}
	p.scheduled = nil
	p.needsLayout = false
	root.Layout(constraints)
	p.passes++
}

// Attach sets owner on root and schedules its first layout.
func (p *PipelineOwner) Attach(root RenderObject) {
	root.SetOwner(p)
	p.ScheduleLayout(root)
}
