package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Spring presets, expressed as stiffness (unit mass) and damping ratio.
const (
	StiffnessHigh     = 10000.0
	StiffnessMedium   = 1500.0
	StiffnessLow      = 200.0
	StiffnessVeryLow  = 50.0
	DampingHighBounce = 0.2
	DampingMedium     = 0.5
	DampingLowBounce  = 0.75
	DampingNoBounce   = 1.0
)

// Settling thresholds for values measured in whole units.
const (
	springValueThreshold    = 0.75
	springVelocityThreshold = springValueThreshold * 62.5
)

// SpringAnimator drives a value toward a final position with damped
// harmonic motion.
//
// Unlike [TweenAnimator] a SpringAnimator is long-lived: it is retargeted
// with AnimateToFinalPosition and reconfigured with SetSpring, both of which
// take effect on the next frame even while the spring is moving. OnEnd fires
// exactly once per run, either when the motion settles (canceled=false) or
// from Cancel (canceled=true). On settle the value snaps to the final
// position and OnEnd receives it without a preceding OnUpdate.
type SpringAnimator struct {
	OnUpdate func(value float64)
	OnEnd    func(canceled bool, value float64)

	stiffness    float64
	dampingRatio float64

	value    float64
	velocity float64
	target   float64

	ticker      *Ticker
	running     bool
	lastElapsed time.Duration

	spring      harmonica.Spring
	springDelta time.Duration
}

// NewSpringAnimator creates an idle spring with the given stiffness and
// damping ratio.
func NewSpringAnimator(stiffness, dampingRatio float64) *SpringAnimator {
	return &SpringAnimator{
		stiffness:    stiffness,
		dampingRatio: dampingRatio,
	}
}

// SetSpring replaces the force parameters. A running spring keeps its
// position and velocity and continues under the new parameters.
func (s *SpringAnimator) SetSpring(stiffness, dampingRatio float64) {
	s.stiffness = stiffness
	s.dampingRatio = dampingRatio
	s.springDelta = 0
}

// Spring returns the current stiffness and damping ratio.
func (s *SpringAnimator) Spring() (stiffness, dampingRatio float64) {
	return s.stiffness, s.dampingRatio
}

// AnimateToFinalPosition sets the target. If the spring is idle it starts
// from current with zero velocity; if it is running only the target moves.
func (s *SpringAnimator) AnimateToFinalPosition(target, current float64) {
	s.target = target
	if s.IsRunning() {
		return
	}
	// The ticker may have been stopped from outside, by a recovered panic
	// or StopAllTickers. Start over from current.
	s.halt()
	s.value = current
	s.velocity = 0
	s.running = true
	s.lastElapsed = 0
	s.ticker = NewTicker(s.tick)
	s.ticker.Start()
}

// Cancel stops a running spring at its current value and fires OnEnd with
// canceled=true. An idle spring ignores Cancel.
func (s *SpringAnimator) Cancel() {
	if !s.IsRunning() {
		s.halt()
		return
	}
	s.halt()
	if s.OnEnd != nil {
		s.OnEnd(true, s.value)
	}
}

// IsRunning reports whether the spring is in motion. A spring whose ticker
// was stopped externally is not running.
func (s *SpringAnimator) IsRunning() bool {
	return s.running && s.ticker != nil && s.ticker.IsActive()
}

// FinalPosition returns the current target.
func (s *SpringAnimator) FinalPosition() float64 {
	return s.target
}

// Value returns the current simulated position.
func (s *SpringAnimator) Value() float64 {
	return s.value
}

func (s *SpringAnimator) tick(elapsed time.Duration) {
	dt := elapsed - s.lastElapsed
	if dt <= 0 {
		return
	}
	s.lastElapsed = elapsed

	if s.springDelta != dt {
		s.spring = harmonica.NewSpring(dt.Seconds(), math.Sqrt(s.stiffness), s.dampingRatio)
		s.springDelta = dt
	}
	s.value, s.velocity = s.spring.Update(s.value, s.velocity, s.target)

	if s.settled() {
		s.value = s.target
		s.velocity = 0
		s.halt()
		if s.OnEnd != nil {
			s.OnEnd(false, s.value)
		}
		return
	}
	if s.OnUpdate != nil {
		s.OnUpdate(s.value)
	}
}

func (s *SpringAnimator) settled() bool {
	return math.Abs(s.value-s.target) < springValueThreshold &&
		math.Abs(s.velocity) < springVelocityThreshold
}

func (s *SpringAnimator) halt() {
	s.running = false
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
}
