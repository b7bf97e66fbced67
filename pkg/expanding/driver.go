package expanding

import (
	"time"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/errors"
)

// Sink receives a driver's output. The controller hands each driver a Sink
// so that every backend feeds the same state, visibility, layout and
// listener path.
type Sink interface {
	// ExpansionState returns the current fraction in internal units.
	ExpansionState() float64
	// SetFraction applies an intermediate value. Values outside
	// [FractionCollapsed, FractionExpanded] are clamped.
	SetFraction(units float64)
	// Begin marks the transition toward target as in flight and reports
	// OnStart.
	Begin(target float64)
	// Settle resolves the final state from value, applies value exactly and
	// reports OnEnd.
	Settle(value float64)
	// Abort reports OnCancel with the current state.
	Abort()
}

// Driver animates the fraction toward a target.
type Driver interface {
	// AnimateTo starts or redirects an animation toward target.
	AnimateTo(sink Sink, target float64)
	// Cancel stops any running animation. The sink's Abort is called only if
	// something was running.
	Cancel()
	// Running reports whether an animation is in flight.
	Running() bool
}

// TweenTiming supplies the duration and curve for each new tween.
type TweenTiming interface {
	Duration() time.Duration
	Curve() animation.Curve
}

type tweenDriver struct {
	timing TweenTiming
	active *animation.TweenAnimator
}

// NewTweenDriver returns a driver that runs one duration-based tween at a
// time. Each AnimateTo cancels the previous tween before starting its own.
func NewTweenDriver(timing TweenTiming) Driver {
	return &tweenDriver{timing: timing}
}

func (d *tweenDriver) AnimateTo(sink Sink, target float64) {
	// The previous tween's Abort runs before any state of the new one.
	d.Cancel()

	tw := &animation.TweenAnimator{
		From:     sink.ExpansionState(),
		To:       target,
		Duration: d.timing.Duration(),
		Curve:    d.timing.Curve(),
	}
	tw.OnStart = func() { sink.Begin(target) }
	tw.OnUpdate = sink.SetFraction
	tw.OnEnd = func() {
		d.release(tw)
		sink.Settle(target)
	}
	tw.OnCancel = func() {
		d.release(tw)
		sink.Abort()
	}
	d.active = tw
	tw.Start()
}

func (d *tweenDriver) release(tw *animation.TweenAnimator) {
	if d.active == tw {
		d.active = nil
	}
}

func (d *tweenDriver) Cancel() {
	if d.active != nil {
		d.active.Cancel()
	}
}

func (d *tweenDriver) Running() bool {
	return d.active != nil && d.active.IsRunning()
}

// SpringParams configures the spring driver.
type SpringParams struct {
	// Stiffness of the spring for unit mass. Must be positive.
	Stiffness float64 `yaml:"stiffness" toml:"stiffness"`
	// DampingRatio is 1 for critical damping; lower values bounce.
	// Must not be negative.
	DampingRatio float64 `yaml:"damping_ratio" toml:"damping_ratio"`
}

// DefaultSpring is a low-stiffness spring without bounce.
var DefaultSpring = SpringParams{
	Stiffness:    animation.StiffnessLow,
	DampingRatio: animation.DampingNoBounce,
}

// Validate rejects non-positive stiffness and negative damping.
func (p SpringParams) Validate() error {
	if !(p.Stiffness > 0) {
		return errors.InvalidArgument("expanding.SpringParams", "stiffness must be positive, got %v", p.Stiffness)
	}
	if !(p.DampingRatio >= 0) {
		return errors.InvalidArgument("expanding.SpringParams", "damping ratio must not be negative, got %v", p.DampingRatio)
	}
	return nil
}

// SpringDriver is a persistent spring-physics driver. One instance is reused
// for every transition; a new target redirects the motion without a cancel.
type SpringDriver struct {
	animator *animation.SpringAnimator
	sink     Sink
}

// NewSpringDriver creates a spring driver with the given parameters.
func NewSpringDriver(p SpringParams) *SpringDriver {
	d := &SpringDriver{
		animator: animation.NewSpringAnimator(p.Stiffness, p.DampingRatio),
	}
	d.animator.OnUpdate = func(value float64) {
		if d.sink != nil {
			d.sink.SetFraction(value)
		}
	}
	d.animator.OnEnd = func(canceled bool, value float64) {
		if d.sink == nil {
			return
		}
		if canceled {
			d.sink.Abort()
		} else {
			d.sink.Settle(value)
		}
	}
	return d
}

// AnimateTo reports Begin immediately and moves the spring's final position.
func (d *SpringDriver) AnimateTo(sink Sink, target float64) {
	d.sink = sink
	sink.Begin(target)
	d.animator.AnimateToFinalPosition(target, sink.ExpansionState())
}

// SetSpring replaces the force parameters, including mid-flight.
func (d *SpringDriver) SetSpring(p SpringParams) {
	d.animator.SetSpring(p.Stiffness, p.DampingRatio)
}

// Cancel stops the spring if it is moving.
func (d *SpringDriver) Cancel() {
	d.animator.Cancel()
}

// Running reports whether the spring is moving.
func (d *SpringDriver) Running() bool {
	return d.animator.IsRunning()
}

// driverSink is the controller's Sink. It keeps the sink methods off the
// controller's public surface.
type driverSink struct {
	c *Controller
}

func (s driverSink) ExpansionState() float64 {
	return s.c.fraction
}

func (s driverSink) SetFraction(units float64) {
	s.c.applyFraction(clamp(units, FractionCollapsed, FractionExpanded), false)
}

func (s driverSink) Begin(target float64) {
	s.c.state = resolveInFlight(target)
	s.c.notifyStart()
}

func (s driverSink) Settle(value float64) {
	c := s.c
	c.state = resolveSettled(value)
	if c.fraction == value {
		// applyFraction would short-circuit; the host still needs to see
		// the resolved state.
		c.host.SetVisibility(visibilityFor(c.state))
		c.host.RequestLayout()
	} else {
		c.applyFraction(value, false)
	}
	c.notifyEnd()
}

func (s driverSink) Abort() {
	s.c.notifyCancel()
}
