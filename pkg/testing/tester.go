package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/layout"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// FrameTester runs the frame loop of a host without a display: each frame
// steps the animation tickers and then flushes layout, the same order the
// demo program uses.
type FrameTester struct {
	root      layout.RenderObject
	owner     *layout.PipelineOwner
	clock     *FakeClock
	prevClock animation.Clock
	size      layout.Size
	frames    int
}

// NewFrameTester installs a fake animation clock and attaches root to a
// fresh pipeline owner. Call Cleanup() when done, or use
// NewFrameTesterWithT() instead.
func NewFrameTester(root layout.RenderObject) *FrameTester {
	clk := NewFakeClock()
	t := &FrameTester{
		root:  root,
		owner: &layout.PipelineOwner{},
		clock: clk,
		size:  layout.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
	t.prevClock = animation.SetClock(clk)
	t.owner.Attach(root)
	return t
}

// NewFrameTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewFrameTesterWithT(t *testing.T, root layout.RenderObject) *FrameTester {
	tester := NewFrameTester(root)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup stops every ticker and restores the previous animation clock.
func (t *FrameTester) Cleanup() {
	animation.StopAllTickers()
	animation.SetClock(t.prevClock)
}

// SetSize sets the logical surface size. The root is laid out with loose
// constraints of this size so expanding roots can shrink.
func (t *FrameTester) SetSize(size layout.Size) {
	t.size = size
	t.owner.ScheduleLayout(t.root)
}

// Clock returns the fake clock for advancing time in tests.
func (t *FrameTester) Clock() *FakeClock {
	return t.clock
}

// Owner returns the pipeline owner the root is attached to.
func (t *FrameTester) Owner() *layout.PipelineOwner {
	return t.owner
}

// Frames returns how many frames have been pumped.
func (t *FrameTester) Frames() int {
	return t.frames
}

// Pump runs a single frame: tickers, then layout. The clock is not moved.
func (t *FrameTester) Pump() {
	animation.StepTickers()
	t.owner.FlushLayout(t.root, layout.Loose(t.size))
	t.frames++
}

// PumpFrames advances the clock one frame and pumps, n times.
func (t *FrameTester) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		t.clock.Step()
		t.Pump()
	}
}

// PumpAndSettle runs frames until no ticker is active and no layout is
// pending, or the timeout is reached. Each frame advances the fake clock
// by FrameDuration.
func (t *FrameTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !t.needsWork() {
			return nil
		}
		t.clock.Step()
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

func (t *FrameTester) needsWork() bool {
	return animation.HasActiveTickers() || t.owner.NeedsLayout()
}
