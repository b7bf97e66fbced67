package animation

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/expanding/pkg/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func useFakeClock(t *testing.T) *fakeClock {
	t.Helper()
	c := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := SetClock(c)
	t.Cleanup(func() {
		StopAllTickers()
		SetClock(prev)
	})
	return c
}

// frame advances the clock by d and runs one frame.
func frame(c *fakeClock, d time.Duration) {
	c.now = c.now.Add(d)
	StepTickers()
}

type panicCatcher struct {
	panics []*errors.PanicError
}

func (p *panicCatcher) HandleError(*errors.ExpandError) {}
func (p *panicCatcher) HandlePanic(err *errors.PanicError) {
	p.panics = append(p.panics, err)
}

func TestTickerElapsed(t *testing.T) {
	clk := useFakeClock(t)

	var seen []time.Duration
	ticker := NewTicker(func(elapsed time.Duration) {
		seen = append(seen, elapsed)
	})
	ticker.Start()
	frame(clk, 16*time.Millisecond)
	frame(clk, 16*time.Millisecond)
	ticker.Stop()
	frame(clk, 16*time.Millisecond)

	want := []time.Duration{16 * time.Millisecond, 32 * time.Millisecond}
	if len(seen) != len(want) {
		t.Fatalf("ticks = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("tick %d elapsed = %v, want %v", i, seen[i], want[i])
		}
	}
	if HasActiveTickers() {
		t.Error("expected no active tickers after Stop")
	}
}

func TestStepTickersRecoversPanics(t *testing.T) {
	clk := useFakeClock(t)
	catcher := &panicCatcher{}
	prev := errors.DefaultHandler
	errors.SetHandler(catcher)
	defer errors.SetHandler(prev)

	bad := NewTicker(func(time.Duration) { panic("bad frame") })
	bad.Start()
	frame(clk, 16*time.Millisecond)

	if len(catcher.panics) != 1 {
		t.Fatalf("reported panics = %d, want 1", len(catcher.panics))
	}
	if catcher.panics[0].Op != "animation.StepTickers" {
		t.Errorf("Op = %q, want animation.StepTickers", catcher.panics[0].Op)
	}
	if bad.IsActive() {
		t.Error("panicking ticker should be stopped")
	}
}

func TestSpringRestartsAfterRecoveredPanic(t *testing.T) {
	clk := useFakeClock(t)
	prev := errors.DefaultHandler
	errors.SetHandler(&panicCatcher{})
	defer errors.SetHandler(prev)

	fail := true
	var ends []float64
	s := NewSpringAnimator(StiffnessLow, DampingNoBounce)
	s.OnUpdate = func(float64) {
		if fail {
			fail = false
			panic("listener")
		}
	}
	s.OnEnd = func(canceled bool, v float64) {
		if !canceled {
			ends = append(ends, v)
		}
	}

	s.AnimateToFinalPosition(1000, 0)
	frame(clk, 0)
	frame(clk, 16*time.Millisecond)
	if s.IsRunning() {
		t.Fatal("spring reports running after its ticker was stopped")
	}

	stuck := s.Value()
	s.AnimateToFinalPosition(0, stuck)
	runSpring(clk, s, 5*time.Second)

	if len(ends) != 1 || ends[0] != 0 {
		t.Errorf("OnEnd values = %v, want [0]", ends)
	}
}

func TestSpringNotRunningAfterStopAllTickers(t *testing.T) {
	clk := useFakeClock(t)

	s := NewSpringAnimator(StiffnessLow, DampingNoBounce)
	s.AnimateToFinalPosition(1000, 0)
	frame(clk, 16*time.Millisecond)
	StopAllTickers()

	if s.IsRunning() {
		t.Fatal("IsRunning() = true after StopAllTickers")
	}
	s.AnimateToFinalPosition(1000, s.Value())
	if !HasActiveTickers() {
		t.Error("AnimateToFinalPosition did not reschedule the spring")
	}
}

func TestCurveEndpoints(t *testing.T) {
	curves := map[string]Curve{
		"linear":           LinearCurve,
		"ease":             Ease,
		"ease_in":          EaseIn,
		"ease_out":         EaseOut,
		"ease_in_out":      EaseInOut,
		"fast_out_slow_in": FastOutSlowIn,
	}
	for name, c := range curves {
		if got := c(0); got != 0 {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := c(1); got != 1 {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			v := c(float64(i) / 20)
			if v < prev-1e-9 {
				t.Errorf("%s is not monotonic at %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}

func TestCurveByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"fast_out_slow_in", true},
		{"Fast-Out-Slow-In", true},
		{" linear ", true},
		{"bounce", false},
	}
	for _, tt := range tests {
		if _, ok := CurveByName(tt.name); ok != tt.ok {
			t.Errorf("CurveByName(%q) ok = %v, want %v", tt.name, ok, tt.ok)
		}
	}
}

func TestTweenStartsOnFirstFrame(t *testing.T) {
	clk := useFakeClock(t)

	var events []string
	var values []float64
	tw := &TweenAnimator{
		From:     0,
		To:       100,
		Duration: 100 * time.Millisecond,
		OnStart:  func() { events = append(events, "start") },
		OnUpdate: func(v float64) { values = append(values, v) },
		OnEnd:    func() { events = append(events, "end") },
	}
	tw.Start()
	if len(events) != 0 {
		t.Fatalf("events before first frame = %v, want none", events)
	}

	frame(clk, 0)
	if len(events) != 1 || events[0] != "start" {
		t.Fatalf("events after first frame = %v, want [start]", events)
	}
	for range 4 {
		frame(clk, 25*time.Millisecond)
	}

	if tw.IsRunning() {
		t.Error("tween should finish after its duration")
	}
	if got := events[len(events)-1]; got != "end" {
		t.Errorf("last event = %q, want end", got)
	}
	wantValues := []float64{0, 25, 50, 75}
	if len(values) != len(wantValues) {
		t.Fatalf("values = %v, want %v", values, wantValues)
	}
	for i, v := range wantValues {
		if math.Abs(values[i]-v) > 1e-9 {
			t.Errorf("value %d = %v, want %v", i, values[i], v)
		}
	}
}

func TestTweenCancel(t *testing.T) {
	clk := useFakeClock(t)

	t.Run("before first frame", func(t *testing.T) {
		var events []string
		tw := &TweenAnimator{
			To:       1,
			Duration: time.Second,
			OnStart:  func() { events = append(events, "start") },
			OnCancel: func() { events = append(events, "cancel") },
		}
		tw.Start()
		tw.Cancel()
		frame(clk, 16*time.Millisecond)

		if len(events) != 1 || events[0] != "cancel" {
			t.Errorf("events = %v, want [cancel]", events)
		}
	})

	t.Run("in flight", func(t *testing.T) {
		var events []string
		tw := &TweenAnimator{
			To:       1,
			Duration: time.Second,
			OnStart:  func() { events = append(events, "start") },
			OnEnd:    func() { events = append(events, "end") },
			OnCancel: func() { events = append(events, "cancel") },
		}
		tw.Start()
		frame(clk, 16*time.Millisecond)
		tw.Cancel()
		tw.Cancel()
		frame(clk, 2*time.Second)

		want := []string{"start", "cancel"}
		if len(events) != len(want) || events[0] != want[0] || events[1] != want[1] {
			t.Errorf("events = %v, want %v", events, want)
		}
		if HasActiveTickers() {
			t.Error("canceled tween left an active ticker")
		}
	})
}

func TestTweenZeroDuration(t *testing.T) {
	clk := useFakeClock(t)

	var updates, ends int
	tw := &TweenAnimator{
		To:       1,
		OnUpdate: func(float64) { updates++ },
		OnEnd:    func() { ends++ },
	}
	tw.Start()
	frame(clk, 16*time.Millisecond)

	if updates != 0 || ends != 1 {
		t.Errorf("updates=%d ends=%d, want 0 and 1", updates, ends)
	}
}

func runSpring(clk *fakeClock, s *SpringAnimator, limit time.Duration) time.Duration {
	var elapsed time.Duration
	frame(clk, 0)
	for s.IsRunning() && elapsed < limit {
		frame(clk, 16*time.Millisecond)
		elapsed += 16 * time.Millisecond
	}
	return elapsed
}

func TestSpringSettlesOnTarget(t *testing.T) {
	clk := useFakeClock(t)

	var ends int
	var endValue float64
	var last float64
	s := NewSpringAnimator(StiffnessLow, DampingNoBounce)
	s.OnUpdate = func(v float64) {
		if v < last {
			t.Errorf("critically damped spring moved backwards: %v < %v", v, last)
		}
		last = v
	}
	s.OnEnd = func(canceled bool, v float64) {
		if canceled {
			t.Error("unexpected cancel")
		}
		ends++
		endValue = v
	}
	s.AnimateToFinalPosition(1000, 0)
	elapsed := runSpring(clk, s, 5*time.Second)

	if s.IsRunning() {
		t.Fatalf("spring still running after %v", elapsed)
	}
	if ends != 1 {
		t.Errorf("OnEnd calls = %d, want 1", ends)
	}
	if endValue != 1000 {
		t.Errorf("settled value = %v, want exactly 1000", endValue)
	}
}

func TestSpringRetargetWhileRunning(t *testing.T) {
	clk := useFakeClock(t)

	var ends []float64
	s := NewSpringAnimator(StiffnessMedium, DampingNoBounce)
	s.OnEnd = func(canceled bool, v float64) { ends = append(ends, v) }

	s.AnimateToFinalPosition(1000, 0)
	frame(clk, 0)
	frame(clk, 16*time.Millisecond)
	s.AnimateToFinalPosition(0, 12345)
	if s.Value() == 12345 {
		t.Fatal("retarget must not reset the current value")
	}
	runSpring(clk, s, 5*time.Second)

	if len(ends) != 1 || ends[0] != 0 {
		t.Errorf("OnEnd values = %v, want [0]", ends)
	}
}

func TestSpringSetSpringMidFlight(t *testing.T) {
	clk := useFakeClock(t)

	s := NewSpringAnimator(StiffnessVeryLow, DampingNoBounce)
	s.AnimateToFinalPosition(1000, 0)
	frame(clk, 0)
	frame(clk, 16*time.Millisecond)
	slow := s.Value()

	s.SetSpring(StiffnessHigh, DampingNoBounce)
	if k, d := s.Spring(); k != StiffnessHigh || d != DampingNoBounce {
		t.Errorf("Spring() = (%v, %v), want (%v, %v)", k, d, StiffnessHigh, DampingNoBounce)
	}
	frame(clk, 16*time.Millisecond)
	if s.Value()-slow <= slow {
		t.Errorf("stiffer spring should cover more ground: first step %v, second step %v", slow, s.Value()-slow)
	}
}

func TestSpringCancel(t *testing.T) {
	clk := useFakeClock(t)

	var calls []bool
	s := NewSpringAnimator(StiffnessLow, DampingNoBounce)
	s.OnEnd = func(canceled bool, _ float64) { calls = append(calls, canceled) }

	s.Cancel()
	if len(calls) != 0 {
		t.Fatalf("idle Cancel fired OnEnd")
	}

	s.AnimateToFinalPosition(1000, 0)
	frame(clk, 16*time.Millisecond)
	s.Cancel()
	frame(clk, 16*time.Millisecond)

	if len(calls) != 1 || !calls[0] {
		t.Errorf("OnEnd calls = %v, want [true]", calls)
	}
	if HasActiveTickers() {
		t.Error("canceled spring left an active ticker")
	}
}
