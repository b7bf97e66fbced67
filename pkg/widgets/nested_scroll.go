package widgets

// nestedScrolling tracks whether a scrollable host takes part in nested
// scrolling.
//
// While the host is collapsed participation is suspended. The value in force
// when the collapsed state is first measured is saved, and a set made while
// suspended replaces the saved value, so it is what comes back once the host
// is measured in any other state.
type nestedScrolling struct {
	enabled   bool
	saved     bool
	suspended bool
}

func (n *nestedScrolling) set(enabled bool) {
	if n.suspended {
		n.saved = enabled
		return
	}
	n.enabled = enabled
}

func (n *nestedScrolling) sync(collapsed bool) {
	switch {
	case collapsed && !n.suspended:
		n.saved = n.enabled
		n.enabled = false
		n.suspended = true
	case !collapsed && n.suspended:
		n.enabled = n.saved
		n.suspended = false
	}
}
