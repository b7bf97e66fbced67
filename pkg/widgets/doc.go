// Package widgets provides the expanding host containers and the small set
// of leaf render objects they are tested and demonstrated with.
//
// # Hosts
//
// Three hosts share one expansion behavior through the embedded
// [Expandable]:
//
//   - [ExpandingBox] stacks its children on top of each other.
//   - [ExpandingScrollView] scrolls a single child vertically.
//   - [ExpandingListView] shows adapter items at a fixed extent and
//     recycles the ones that leave the viewport.
//
// Every host exposes the full controller surface (Expand, Collapse, Toggle,
// SetExpandState, listeners, duration, parallax, spring) together with
// orientation, layout direction and state persistence:
//
//	box, err := widgets.NewExpandingBox(expanding.WithExpanded(false))
//	if err != nil {
//	    return err
//	}
//	box.AddChild(widgets.NewLabel("details"))
//	box.ExpandAnimated()
//
// # Leaves
//
// [Label] sizes itself from a fixed-width bitmap font, [SizedBox] has a
// fixed natural size and [Column] stacks children vertically.
package widgets
