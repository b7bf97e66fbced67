package animation

import (
	"math"
	"strings"
)

// Curve maps linear progress t in [0, 1] to eased progress.
// Curves must return 0 at t=0 and 1 at t=1.
type Curve func(t float64) float64

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// Ease is a standard cubic bezier curve for general-purpose easing.
// Equivalent to CSS ease.
var Ease = CubicBezier(0.25, 0.1, 0.25, 1.0)

// EaseIn starts slowly and accelerates.
var EaseIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

// EaseOut starts quickly and decelerates.
var EaseOut = CubicBezier(0.0, 0.0, 0.2, 1.0)

// EaseInOut starts and ends slowly with acceleration in the middle.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// FastOutSlowIn is the Material standard curve and the default for
// expand/collapse tweens.
var FastOutSlowIn = CubicBezier(0.4, 0.0, 0.2, 1.0)

// LinearOutSlowIn is the Material deceleration curve.
var LinearOutSlowIn = CubicBezier(0.0, 0.0, 0.2, 1.0)

// FastOutLinearIn is the Material acceleration curve.
var FastOutLinearIn = CubicBezier(0.4, 0.0, 1.0, 1.0)

var namedCurves = map[string]Curve{
	"linear":             LinearCurve,
	"ease":               Ease,
	"ease_in":            EaseIn,
	"ease_out":           EaseOut,
	"ease_in_out":        EaseInOut,
	"fast_out_slow_in":   FastOutSlowIn,
	"linear_out_slow_in": LinearOutSlowIn,
	"fast_out_linear_in": FastOutLinearIn,
}

// CurveByName looks up a curve by its snake_case name ("fast_out_slow_in",
// "linear", ...). Hyphens are accepted in place of underscores.
func CurveByName(name string) (Curve, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	c, ok := namedCurves[key]
	return c, ok
}

// CubicBezier returns a cubic-bezier easing function matching CSS cubic-bezier().
// The parameters define the two control points (x1,y1) and (x2,y2) of the curve.
// The curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback keeps the solution inside [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 12 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}

		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
