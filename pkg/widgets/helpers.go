package widgets

import (
	"math"

	"github.com/go-drift/expanding/pkg/layout"
)

// layoutChild lays out child and returns the space it occupies. Gone
// children are still laid out so they can track their own state, but
// occupy nothing.
func layoutChild(child layout.RenderObject, constraints layout.Constraints) layout.Size {
	child.Layout(constraints)
	if child.Visibility() == layout.Gone {
		return layout.Size{}
	}
	return child.Size()
}

// stackChildren lays every child out at the origin and returns the
// constrained size of the largest.
func stackChildren(children []layout.RenderObject, constraints layout.Constraints) layout.Size {
	var size layout.Size
	loose := constraints.Loosen()
	for _, child := range children {
		s := layoutChild(child, loose)
		child.SetOffset(layout.Offset{})
		size.Width = math.Max(size.Width, s.Width)
		size.Height = math.Max(size.Height, s.Height)
	}
	return constraints.Constrain(size)
}

func removeChild(children []layout.RenderObject, child layout.RenderObject) []layout.RenderObject {
	for i, c := range children {
		if c == child {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}

func finiteOr(v, fallback float64) float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fallback
	}
	return v
}
