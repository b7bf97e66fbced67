package animation

import "time"

// TweenAnimator moves a value from From to To over Duration, shaped by Curve.
//
// Lifecycle callbacks follow the frame loop:
//
//   - OnStart fires on the first frame after Start, not inside Start.
//   - OnUpdate fires on every intermediate frame with the eased value.
//     The completion frame does not call OnUpdate; OnEnd fires instead and
//     the owner is expected to apply To itself.
//   - OnCancel fires synchronously from Cancel if the animator was running.
//     A tween canceled before its first frame never reports OnStart.
//
// A TweenAnimator runs once; create a new one for each transition.
type TweenAnimator struct {
	From     float64
	To       float64
	Duration time.Duration
	// Curve shapes progress. Nil means linear.
	Curve Curve

	OnStart  func()
	OnUpdate func(value float64)
	OnEnd    func()
	OnCancel func()

	ticker  *Ticker
	running bool
	started bool
}

// Start schedules the tween on the frame loop. Calling Start on a running
// or finished animator does nothing.
func (a *TweenAnimator) Start() {
	if a.running || a.ticker != nil {
		return
	}
	a.running = true
	a.ticker = NewTicker(a.tick)
	a.ticker.Start()
}

// Cancel stops the tween where it is and fires OnCancel.
func (a *TweenAnimator) Cancel() {
	if !a.running {
		return
	}
	a.halt()
	if a.OnCancel != nil {
		a.OnCancel()
	}
}

// IsRunning reports whether the tween is scheduled or in flight. A tween
// whose ticker was stopped externally is not running.
func (a *TweenAnimator) IsRunning() bool {
	return a.running && a.ticker != nil && a.ticker.IsActive()
}

// IsStarted reports whether OnStart has been delivered.
func (a *TweenAnimator) IsStarted() bool {
	return a.started
}

// Value returns the eased value at the given elapsed time.
func (a *TweenAnimator) Value(elapsed time.Duration) float64 {
	progress := a.progress(elapsed)
	eased := progress
	if a.Curve != nil {
		eased = a.Curve(progress)
	}
	return a.From + (a.To-a.From)*eased
}

func (a *TweenAnimator) progress(elapsed time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(a.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func (a *TweenAnimator) tick(elapsed time.Duration) {
	if !a.started {
		a.started = true
		if a.OnStart != nil {
			a.OnStart()
		}
		// OnStart may cancel.
		if !a.running {
			return
		}
	}

	if a.progress(elapsed) >= 1 {
		a.halt()
		if a.OnEnd != nil {
			a.OnEnd()
		}
		return
	}
	if a.OnUpdate != nil {
		a.OnUpdate(a.Value(elapsed))
	}
}

func (a *TweenAnimator) halt() {
	a.running = false
	if a.ticker != nil {
		a.ticker.Stop()
	}
}
