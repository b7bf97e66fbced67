package widgets

import "github.com/go-drift/expanding/pkg/layout"

// SizedBox is a leaf with a fixed natural size.
type SizedBox struct {
	layout.RenderBoxBase
	natural layout.Size
}

// NewSizedBox creates a box of width by height.
func NewSizedBox(width, height float64) *SizedBox {
	b := &SizedBox{natural: layout.Size{Width: width, Height: height}}
	b.SetSelf(b)
	return b
}

// SetNaturalSize changes the preferred size.
func (b *SizedBox) SetNaturalSize(size layout.Size) {
	if b.natural == size {
		return
	}
	b.natural = size
	b.MarkNeedsLayout()
}

func (b *SizedBox) PerformLayout() {
	b.SetSize(b.Constraints().Constrain(b.natural))
}
