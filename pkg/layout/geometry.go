package layout

import "math"

// Size is a width and height in logical pixels.
type Size struct {
	Width, Height float64
}

// Offset is a 2D displacement in logical pixels.
type Offset struct {
	X, Y float64
}

// Add returns the sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Constraints bound the size a render object may take.
type Constraints struct {
	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64
}

// Tight returns constraints that admit exactly size.
func Tight(size Size) Constraints {
	return Constraints{
		MinWidth: size.Width, MaxWidth: size.Width,
		MinHeight: size.Height, MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to size.
func Loose(size Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unbounded returns constraints with no upper limit.
func Unbounded() Constraints {
	return Constraints{MaxWidth: math.Inf(1), MaxHeight: math.Inf(1)}
}

// Loosen drops the minimums.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Constrain clamps size into the constraints.
func (c Constraints) Constrain(size Size) Size {
	return Size{
		Width:  math.Max(c.MinWidth, math.Min(c.MaxWidth, size.Width)),
		Height: math.Max(c.MinHeight, math.Min(c.MaxHeight, size.Height)),
	}
}

// WithMaxHeight returns c with the height unbounded (max = +Inf) or
// replaced.
func (c Constraints) WithMaxHeight(h float64) Constraints {
	c.MaxHeight = h
	if c.MinHeight > h {
		c.MinHeight = h
	}
	return c
}

// WithMaxWidth returns c with MaxWidth replaced.
func (c Constraints) WithMaxWidth(w float64) Constraints {
	c.MaxWidth = w
	if c.MinWidth > w {
		c.MinWidth = w
	}
	return c
}
