package testing

import (
	"testing"
	"time"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/layout"
)

type fixedBox struct {
	layout.RenderBoxBase
	natural layout.Size
	layouts int
}

func newFixedBox(w, h float64) *fixedBox {
	b := &fixedBox{natural: layout.Size{Width: w, Height: h}}
	b.SetSelf(b)
	return b
}

func (b *fixedBox) PerformLayout() {
	b.layouts++
	b.SetSize(b.Constraints().Constrain(b.natural))
}

func TestNewFrameTester_InstallsClock(t *testing.T) {
	tester := NewFrameTesterWithT(t, newFixedBox(10, 10))

	before := animation.Now()
	tester.Clock().Advance(time.Second)
	if got := animation.Now().Sub(before); got != time.Second {
		t.Errorf("animation clock moved %v, want 1s", got)
	}
}

func TestPump_LaysOutRoot(t *testing.T) {
	root := newFixedBox(1000, 20)
	tester := NewFrameTesterWithT(t, root)
	tester.SetSize(layout.Size{Width: 300, Height: 200})

	tester.Pump()

	want := layout.Size{Width: 300, Height: 20}
	if root.Size() != want {
		t.Errorf("Size() = %v, want %v", root.Size(), want)
	}
	if root.layouts != 1 {
		t.Errorf("layouts = %d, want 1", root.layouts)
	}

	tester.Pump()
	if root.layouts != 1 {
		t.Errorf("clean root laid out again: layouts = %d", root.layouts)
	}

	root.MarkNeedsLayout()
	tester.Pump()
	if root.layouts != 2 {
		t.Errorf("layouts after MarkNeedsLayout = %d, want 2", root.layouts)
	}
}

func TestPumpAndSettle_WaitsForTickers(t *testing.T) {
	tester := NewFrameTesterWithT(t, newFixedBox(10, 10))

	var ticker *animation.Ticker
	ticker = animation.NewTicker(func(elapsed time.Duration) {
		if elapsed >= 100*time.Millisecond {
			ticker.Stop()
		}
	})
	ticker.Start()

	if err := tester.PumpAndSettle(50 * time.Millisecond); err != ErrSettleTimeout {
		t.Fatalf("PumpAndSettle(50ms) = %v, want ErrSettleTimeout", err)
	}
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatalf("PumpAndSettle(1s) = %v", err)
	}
	if ticker.IsActive() {
		t.Error("expected ticker to have stopped itself")
	}
}

func TestCleanup_StopsTickers(t *testing.T) {
	tester := NewFrameTester(newFixedBox(10, 10))
	animation.NewTicker(func(time.Duration) {}).Start()

	tester.Cleanup()

	if animation.HasActiveTickers() {
		t.Error("expected no active tickers after Cleanup")
	}
}
