// Package animation provides the frame-driven animation primitives used by
// expanding containers.
//
// # Core Components
//
//   - [Ticker]: a per-frame callback registered with the package frame loop.
//     The host calls [StepTickers] once per frame.
//
//   - [TweenAnimator]: moves a value between two endpoints over a fixed
//     duration, shaped by a [Curve].
//
//   - [SpringAnimator]: a persistent physics animation that chases a final
//     position using stiffness and damping ratio. It can be retargeted and
//     reconfigured while running.
//
//   - [Curve]: easing functions such as [FastOutSlowIn] and [CubicBezier].
//
// Time comes from the package [Clock], which tests replace with a fake.
package animation

import (
	"sync"
	"time"

	"github.com/go-drift/expanding/pkg/errors"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. Tickers are
// driven by the host frame loop via [StepTickers].
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. The first frame after Start sees an elapsed
// time measured from this call.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker. Safe to call from inside its own callback.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers.
// This should be called once per frame from the host frame loop.
// A ticker whose callback panics is stopped and the panic is reported
// through errors.ReportPanic.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		// A callback earlier in this frame may have stopped this ticker.
		if ticker.isActive && ticker.callback != nil {
			stepTicker(ticker, now)
		}
	}
}

func stepTicker(t *Ticker, now time.Time) {
	defer errors.RecoverWithCallback("animation.StepTickers", func(any) {
		t.Stop()
	})
	t.callback(now.Sub(t.start))
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// StopAllTickers deactivates every ticker without invoking callbacks.
// Test harnesses use it to isolate cases from one another.
func StopAllTickers() {
	tickerMu.Lock()
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()
	for _, ticker := range tickers {
		ticker.Stop()
	}
}
