package widgets

import (
	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
)

// Expandable is the expansion behavior every expanding host embeds. It
// embeds the controller, so the host exposes its whole surface, and adds
// orientation, layout direction and the measure step.
type Expandable struct {
	*expanding.Controller

	host        layout.RenderObject
	nested      *nestedScrolling
	orientation expanding.Orientation
	direction   layout.TextDirection
	last        expanding.Measurement
}

type expandableHost interface {
	layout.RenderObject
	RequestLayout()
}

func (e *Expandable) init(host expandableHost, nested *nestedScrolling, opts []expanding.Option) error {
	c, err := expanding.NewController(host, opts...)
	if err != nil {
		return err
	}
	e.Controller = c
	e.host = host
	e.nested = nested
	e.orientation = expanding.DefaultOrientation
	return nil
}

// Orientation returns the controlling axis.
func (e *Expandable) Orientation() expanding.Orientation {
	return e.orientation
}

// SetOrientation selects the controlling axis. Values other than Horizontal
// and Vertical are rejected and leave the host unchanged.
func (e *Expandable) SetOrientation(o expanding.Orientation) error {
	if err := expanding.CheckOrientation("widgets.SetOrientation", o); err != nil {
		return err
	}
	if e.orientation != o {
		e.orientation = o
		e.host.MarkNeedsLayout()
	}
	return nil
}

// TextDirection returns the layout direction used for horizontal parallax.
func (e *Expandable) TextDirection() layout.TextDirection {
	return e.direction
}

// SetTextDirection sets the layout direction used for horizontal parallax.
func (e *Expandable) SetTextDirection(d layout.TextDirection) {
	if e.direction != d {
		e.direction = d
		e.host.MarkNeedsLayout()
	}
}

// LastMeasurement returns the result of the most recent measure.
func (e *Expandable) LastMeasurement() expanding.Measurement {
	return e.last
}

// ApplyConfig writes the set attributes of cfg to the host. Nothing is
// applied if any attribute is invalid.
func (e *Expandable) ApplyConfig(cfg *expanding.Config) error {
	return cfg.Apply(e)
}

// measure trims natural to the current fraction and translates children for
// parallax. Visibility and nested scrolling follow the measured state.
func (e *Expandable) measure(natural layout.Size, children []layout.RenderObject) layout.Size {
	collapsed := e.State() == expanding.Collapsed
	if collapsed {
		e.host.SetVisibility(layout.Gone)
	} else {
		e.host.SetVisibility(layout.Visible)
	}
	if e.nested != nil {
		e.nested.sync(collapsed)
	}

	m := expanding.Measure(natural, e.ExpansionState(), e.Parallax(), e.orientation, e.direction)
	if m.Parallax {
		for _, child := range children {
			child.SetTranslation(m.Translation)
		}
	}
	e.last = m
	if collapsed {
		return layout.Size{}
	}
	return m.Size
}
