// Package expanding implements the expansion-state controller behind
// expanding containers.
//
// A [Controller] owns one container's expansion fraction, stored internally
// in the range [0, 1000] where 1000 is fully expanded, and its discrete
// [State]. Operations move the fraction either directly or through one of
// two animation drivers:
//
//   - the tween driver, which interpolates over a duration with a curve and
//     is replaced (canceling the previous tween) on every new request;
//   - the spring driver, a persistent physics animation that is retargeted
//     rather than restarted.
//
// Every value change, whichever driver produced it, goes through the same
// path: the host is shown or hidden, asked to lay out again, and the
// [StateChangedListener] is notified. During layout the host calls [Measure]
// to turn the fraction into a trimmed size and a parallax translation for
// its children.
//
// Controllers are not safe for concurrent use. All calls, animation frames
// and layout passes are expected on the single UI goroutine.
package expanding
