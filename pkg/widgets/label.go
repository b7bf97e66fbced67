package widgets

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/go-drift/expanding/pkg/layout"
)

// Label is a leaf that sizes itself to its text, one line per newline,
// measured in the 7x13 basic bitmap font.
type Label struct {
	layout.RenderBoxBase

	text  string
	lines []string
	face  font.Face
}

// NewLabel creates a label showing text.
func NewLabel(text string) *Label {
	l := &Label{face: basicfont.Face7x13}
	l.SetSelf(l)
	l.setText(text)
	return l
}

// Text returns the label's text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text and requests layout if it changed.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.setText(text)
	l.MarkNeedsLayout()
}

func (l *Label) setText(text string) {
	l.text = text
	l.lines = strings.Split(text, "\n")
}

// Lines returns the text split into lines.
func (l *Label) Lines() []string {
	return l.lines
}

// LineHeight returns the height of one line in logical pixels.
func (l *Label) LineHeight() float64 {
	return float64(l.face.Metrics().Height.Ceil())
}

// PerformLayout sizes the label to its widest line and its line count.
func (l *Label) PerformLayout() {
	var width int
	for _, line := range l.lines {
		if w := font.MeasureString(l.face, line).Ceil(); w > width {
			width = w
		}
	}
	natural := layout.Size{
		Width:  float64(width),
		Height: float64(len(l.lines)) * l.LineHeight(),
	}
	l.SetSize(l.Constraints().Constrain(natural))
}
