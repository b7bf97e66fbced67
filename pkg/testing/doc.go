// Package testing drives expanding hosts frame by frame without a real
// display.
//
// # Quick Start
//
// Attach a root render object, change its state and run frames until the
// animations finish:
//
//	func TestCollapse(t *testing.T) {
//	    box, _ := widgets.NewExpandingBox()
//	    tester := exptest.NewFrameTesterWithT(t, box)
//	    tester.Pump()
//
//	    box.CollapseAnimated()
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Animation Testing
//
// The tester installs a FakeClock as the animation clock. Advance it by
// hand for exact control over a tween's progress:
//
//	tester.Clock().Advance(150 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import exptest "github.com/go-drift/expanding/pkg/testing"
package testing
