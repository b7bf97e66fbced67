package expanding

import (
	"math"

	"github.com/go-drift/expanding/pkg/layout"
)

// Measurement is the result of mapping a fraction onto a host's natural size.
type Measurement struct {
	// Size is the host's final size: the natural size with the controlling
	// axis trimmed by Delta.
	Size layout.Size
	// Delta is the amount trimmed from the controlling axis.
	Delta float64
	// Parallax reports whether children should be translated. When false
	// the host leaves child translations untouched.
	Parallax bool
	// Translation is the offset applied to every direct child.
	Translation layout.Offset
}

// Measure maps fraction (internal units) onto natural.
//
// The controlling axis is the width for Horizontal and the height for
// Vertical; the cross axis is unchanged. With parallax > 0 children move
// by Delta*parallax: up for Vertical, toward the leading edge for
// Horizontal (left under LTR, right under RTL).
func Measure(natural layout.Size, fraction, parallax float64, o Orientation, dir layout.TextDirection) Measurement {
	size := natural.Height
	if o == Horizontal {
		size = natural.Width
	}

	delta := size - math.RoundToEven(size*fraction/FractionExpanded)
	m := Measurement{Size: natural, Delta: delta}
	if o == Horizontal {
		m.Size.Width -= delta
	} else {
		m.Size.Height -= delta
	}

	if parallax > 0 {
		offset := delta * parallax
		m.Parallax = true
		if o == Horizontal {
			m.Translation = layout.Offset{X: ParallaxDirection(dir) * offset}
		} else {
			m.Translation = layout.Offset{Y: -offset}
		}
	}
	return m
}

// ParallaxDirection returns +1 for right-to-left layouts and -1 otherwise,
// including unknown directions.
func ParallaxDirection(dir layout.TextDirection) float64 {
	if dir == layout.RTL {
		return 1
	}
	return -1
}
