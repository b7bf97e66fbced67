package expanding

// StateChangedListener observes every accepted fraction change.
// fraction is normalized to [0, 1].
type StateChangedListener interface {
	ExpansionStateChanged(fraction float64, state State)
}

// StateChangedFunc adapts a function to StateChangedListener.
type StateChangedFunc func(fraction float64, state State)

// ExpansionStateChanged calls f.
func (f StateChangedFunc) ExpansionStateChanged(fraction float64, state State) {
	f(fraction, state)
}

// AnimationListener observes driver-run transitions. It is never called for
// direct changes such as SetExpandState or Expand(false).
type AnimationListener interface {
	OnStart(state State)
	OnEnd(state State)
	OnCancel(state State)
}

// AnimationListenerFuncs adapts optional functions to AnimationListener.
// Nil fields are skipped.
type AnimationListenerFuncs struct {
	Start  func(State)
	End    func(State)
	Cancel func(State)
}

func (f AnimationListenerFuncs) OnStart(state State) {
	if f.Start != nil {
		f.Start(state)
	}
}

func (f AnimationListenerFuncs) OnEnd(state State) {
	if f.End != nil {
		f.End(state)
	}
}

func (f AnimationListenerFuncs) OnCancel(state State) {
	if f.Cancel != nil {
		f.Cancel(state)
	}
}

// SetOnStateChangedListener installs l, replacing any previous listener.
// A nil l removes it.
func (c *Controller) SetOnStateChangedListener(l StateChangedListener) {
	c.stateListener = l
}

// RemoveOnStateChangedListener removes the state listener.
func (c *Controller) RemoveOnStateChangedListener() {
	c.stateListener = nil
}

// SetAnimationListener installs l, replacing any previous listener.
// A nil l removes it.
func (c *Controller) SetAnimationListener(l AnimationListener) {
	c.animListener = l
}

// RemoveAnimationListener removes the animation listener.
func (c *Controller) RemoveAnimationListener() {
	c.animListener = nil
}

func (c *Controller) notifyStateChanged() {
	if c.stateListener != nil {
		c.stateListener.ExpansionStateChanged(c.fraction/FractionExpanded, c.state)
	}
}

func (c *Controller) notifyStart() {
	if c.animListener != nil {
		c.animListener.OnStart(c.state)
	}
}

func (c *Controller) notifyEnd() {
	if c.animListener != nil {
		c.animListener.OnEnd(c.state)
	}
}

func (c *Controller) notifyCancel() {
	if c.animListener != nil {
		c.animListener.OnCancel(c.state)
	}
}
