package expanding

import (
	"log/slog"
	"math"
	"time"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/errors"
	"github.com/go-drift/expanding/pkg/layout"
	"github.com/go-drift/expanding/pkg/logging"
)

// Host is the view a Controller resizes.
type Host interface {
	// SetVisibility shows or hides the host. Collapsed hosts are Gone.
	SetVisibility(v layout.Visibility)
	// RequestLayout schedules a new layout pass for the host.
	RequestLayout()
}

// Controller is the expansion state machine bound to one host.
//
// The zero value is not usable; create controllers with NewController.
type Controller struct {
	host Host
	log  *slog.Logger
	sink driverSink

	fraction float64
	state    State

	duration    time.Duration
	parallax    float64
	curve       animation.Curve
	usingSpring bool
	spring      SpringParams

	tween  Driver
	physic Driver

	stateListener StateChangedListener
	animListener  AnimationListener
}

// Option configures a Controller at construction.
type Option func(*Controller) error

// WithInitialFraction sets the starting fraction in [0, 1], clamped.
// No listener is notified.
func WithInitialFraction(f float64) Option {
	return func(c *Controller) error {
		c.fraction = clamp(f, 0, 1) * FractionExpanded
		c.state = resolveDirect(c.fraction)
		return nil
	}
}

// WithExpanded starts the controller fully expanded or fully collapsed.
func WithExpanded(expanded bool) Option {
	if expanded {
		return WithInitialFraction(1)
	}
	return WithInitialFraction(0)
}

// WithDuration sets the tween duration. Negative durations are rejected.
func WithDuration(d time.Duration) Option {
	return func(c *Controller) error {
		return c.SetDuration(d)
	}
}

// WithParallax sets the parallax factor, clamped to [0, 1].
func WithParallax(p float64) Option {
	return func(c *Controller) error {
		c.SetParallax(p)
		return nil
	}
}

// WithCurve sets the tween curve.
func WithCurve(curve animation.Curve) Option {
	return func(c *Controller) error {
		c.SetCurve(curve)
		return nil
	}
}

// WithUsingSpring selects the spring driver for animated transitions.
func WithUsingSpring(using bool) Option {
	return func(c *Controller) error {
		c.usingSpring = using
		return nil
	}
}

// WithSpring sets the spring parameters.
func WithSpring(p SpringParams) Option {
	return func(c *Controller) error {
		if err := p.Validate(); err != nil {
			return err
		}
		c.spring = p
		return nil
	}
}

// WithTweenDriver replaces the duration-based driver.
func WithTweenDriver(d Driver) Option {
	return func(c *Controller) error {
		c.tween = d
		return nil
	}
}

// WithSpringDriver replaces the spring driver. If d has a
// SetSpring(SpringParams) method, SetSpring calls are forwarded to it.
func WithSpringDriver(d Driver) Option {
	return func(c *Controller) error {
		c.physic = d
		return nil
	}
}

// WithLogger sets the controller's logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) error {
		c.log = l
		return nil
	}
}

// NewController creates a controller for host. The host's visibility is
// synchronized with the initial state; no listener is notified.
func NewController(host Host, opts ...Option) (*Controller, error) {
	c := &Controller{
		host:     host,
		fraction: DefaultFraction,
		state:    resolveDirect(DefaultFraction),
		duration: DefaultDuration,
		parallax: DefaultParallax,
		curve:    animation.FastOutSlowIn,
		spring:   DefaultSpring,
	}
	c.sink = driverSink{c: c}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	if c.log == nil {
		c.log = logging.New("expanding")
	}
	if c.tween == nil {
		c.tween = NewTweenDriver(c)
	}
	if c.physic == nil {
		c.physic = NewSpringDriver(c.spring)
	}
	host.SetVisibility(visibilityFor(c.state))
	return c, nil
}

// State returns the discrete state.
func (c *Controller) State() State { return c.state }

// Duration returns the tween duration.
func (c *Controller) Duration() time.Duration { return c.duration }

// Parallax returns the parallax factor in [0, 1].
func (c *Controller) Parallax() float64 { return c.parallax }

// Curve returns the tween curve.
func (c *Controller) Curve() animation.Curve { return c.curve }

// UsingSpring reports whether animated transitions use the spring driver.
func (c *Controller) UsingSpring() bool { return c.usingSpring }

// Spring returns the spring parameters.
func (c *Controller) Spring() SpringParams { return c.spring }

// ExpansionState returns the fraction in internal units, [0, 1000].
// SetExpandState takes [0, 1]; the getter is not normalized.
func (c *Controller) ExpansionState() float64 { return c.fraction }

// IsExpanded reports true for Expanded, Expanding and FixedSize. A FixedSize
// controller counts as expanded whatever its fraction, so Toggle collapses it.
func (c *Controller) IsExpanded() bool {
	return c.state == Expanded || c.state == Expanding || c.state == FixedSize
}

// SetDuration sets the tween duration used by subsequent animations.
func (c *Controller) SetDuration(d time.Duration) error {
	if d < 0 {
		return errors.InvalidArgument("expanding.SetDuration", "duration %v is negative", d)
	}
	c.duration = d
	return nil
}

// SetParallax sets the parallax factor, clamped to [0, 1].
func (c *Controller) SetParallax(p float64) {
	c.parallax = clamp(p, 0, 1)
}

// SetCurve sets the tween curve. Nil restores FastOutSlowIn.
func (c *Controller) SetCurve(curve animation.Curve) {
	if curve == nil {
		curve = animation.FastOutSlowIn
	}
	c.curve = curve
}

// SetUsingSpring selects the driver for subsequent animated transitions.
func (c *Controller) SetUsingSpring(using bool) {
	c.usingSpring = using
}

// SetSpring replaces the spring parameters. A spring already in motion
// continues under the new parameters.
func (c *Controller) SetSpring(p SpringParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.spring = p
	if s, ok := c.physic.(interface{ SetSpring(SpringParams) }); ok {
		s.SetSpring(p)
	}
	return nil
}

// Expand moves to fully expanded, animated or at once.
func (c *Controller) Expand(animate bool) {
	c.moveTo(FractionExpanded, animate)
}

// Collapse moves to fully collapsed, animated or at once.
func (c *Controller) Collapse(animate bool) {
	c.moveTo(FractionCollapsed, animate)
}

// Toggle collapses when IsExpanded reports true, otherwise expands.
func (c *Controller) Toggle(animate bool) {
	if c.IsExpanded() {
		c.Collapse(animate)
	} else {
		c.Expand(animate)
	}
}

// ExpandAnimated is Expand(true).
func (c *Controller) ExpandAnimated() { c.Expand(true) }

// CollapseAnimated is Collapse(true).
func (c *Controller) CollapseAnimated() { c.Collapse(true) }

// ToggleAnimated is Toggle(true).
func (c *Controller) ToggleAnimated() { c.Toggle(true) }

// SetExpandState applies f in [0, 1] (clamped) without animation. The state
// becomes Collapsed at 0, Expanded at 1 and FixedSize otherwise.
// A running animation is not canceled.
func (c *Controller) SetExpandState(f float64) {
	c.applyFraction(clamp(f, 0, 1)*FractionExpanded, true)
}

// OnConfigurationChanged cancels both drivers. Hosts call it when their
// configuration changes (rotation, resize) so no frame lands on a view that
// is being rebuilt.
func (c *Controller) OnConfigurationChanged() {
	tweening, springing := c.tween.Running(), c.physic.Running()
	c.tween.Cancel()
	c.physic.Cancel()
	if tweening || springing {
		c.log.Debug("animations canceled on configuration change",
			"tween", tweening, "spring", springing, "state", c.state.String())
	}
}

// Save returns the fraction to persist, rounded up to a whole unit.
func (c *Controller) Save() float64 {
	return math.Ceil(c.fraction)
}

// Restore applies a persisted fraction in internal units without animation
// and re-derives the state from it.
func (c *Controller) Restore(units float64) {
	c.applyFraction(clamp(units, FractionCollapsed, FractionExpanded), true)
}

func (c *Controller) driver() Driver {
	if c.usingSpring {
		return c.physic
	}
	return c.tween
}

func (c *Controller) moveTo(target float64, animate bool) {
	if animate {
		c.driver().AnimateTo(c.sink, target)
		return
	}
	c.applyFraction(target, true)
}

// applyFraction is the single sink for fraction changes. An exact match with
// the current fraction is a no-op, listeners included.
func (c *Controller) applyFraction(target float64, direct bool) {
	if target == c.fraction {
		return
	}
	if direct {
		c.state = resolveDirect(target)
	}
	c.host.SetVisibility(visibilityFor(c.state))
	c.fraction = target
	c.host.RequestLayout()
	c.notifyStateChanged()
}
