package main

import (
	"fmt"

	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
	"github.com/go-drift/expanding/pkg/widgets"
)

const details = `An expanding box resizes between collapsed
and its natural size. Children slide with
parallax as the box shrinks.`

// host is the part of an expanding host the demo drives.
type host interface {
	layout.RenderObject
	Toggle(animate bool)
	Expand(animate bool)
	Collapse(animate bool)
	SetExpandState(f float64)
	State() expanding.State
	ExpansionState() float64
	UsingSpring() bool
	SetUsingSpring(using bool)
	Orientation() expanding.Orientation
	SetOrientation(o expanding.Orientation) error
	TextDirection() layout.TextDirection
	SetTextDirection(d layout.TextDirection)
	SaveState() ([]byte, error)
	RestoreState(data []byte) error
	OnConfigurationChanged()
}

// scene is the demo's render tree.
type scene struct {
	root  *widgets.Column
	box   *widgets.ExpandingBox
	list  *widgets.ExpandingListView
	hosts []namedHost
}

type namedHost struct {
	name  string
	host  host
	saved []byte
}

type rowAdapter struct {
	count int
}

func (a rowAdapter) ItemCount() int { return a.count }

func (a rowAdapter) CreateItem() layout.RenderObject {
	return widgets.NewLabel("")
}

func (a rowAdapter) BindItem(item layout.RenderObject, index int) {
	item.(*widgets.Label).SetText(fmt.Sprintf("  row %02d", index+1))
}

func newScene(cfg *expanding.Config, items int) (*scene, error) {
	box, err := widgets.NewExpandingBox()
	if err != nil {
		return nil, err
	}
	box.AddChild(widgets.NewLabel(details))
	if cfg != nil {
		if err := box.ApplyConfig(cfg); err != nil {
			return nil, err
		}
	}

	list, err := widgets.NewExpandingListView(13, expanding.WithUsingSpring(true))
	if err != nil {
		return nil, err
	}
	list.SetAdapter(rowAdapter{count: items})
	list.SetMaxViewportHeight(8 * 13)

	root := widgets.NewColumn(
		widgets.NewLabel("[details]"),
		box,
		widgets.NewLabel("[rows]"),
		list,
		widgets.NewLabel("[end]"),
	)
	return &scene{
		root: root,
		box:  box,
		list: list,
		hosts: []namedHost{
			{name: "details", host: box},
			{name: "rows", host: list},
		},
	}, nil
}

// onConfigurationChanged forwards a surface change to every host.
func (s *scene) onConfigurationChanged() {
	for _, h := range s.hosts {
		h.host.OnConfigurationChanged()
	}
}
