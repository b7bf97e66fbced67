package widgets

import (
	goerrors "errors"
	"testing"
	"time"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/errors"
	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
	exptest "github.com/go-drift/expanding/pkg/testing"
)

func newBox(t *testing.T, opts ...expanding.Option) *ExpandingBox {
	t.Helper()
	b, err := NewExpandingBox(opts...)
	if err != nil {
		t.Fatalf("NewExpandingBox: %v", err)
	}
	return b
}

func TestExpandingBox_NaturalSize(t *testing.T) {
	box := newBox(t)
	box.AddChild(NewSizedBox(100, 200))
	box.AddChild(NewSizedBox(150, 50))
	tester := exptest.NewFrameTesterWithT(t, box)

	tester.Pump()

	want := layout.Size{Width: 150, Height: 200}
	if box.Size() != want {
		t.Errorf("Size() = %v, want %v", box.Size(), want)
	}
	if box.Visibility() != layout.Visible {
		t.Errorf("Visibility() = %v, want visible", box.Visibility())
	}
}

func TestExpandingBox_ParallaxVertical(t *testing.T) {
	box := newBox(t)
	child := NewSizedBox(100, 200)
	box.AddChild(child)
	tester := exptest.NewFrameTesterWithT(t, box)
	tester.Pump()

	box.SetExpandState(0.5)
	tester.Pump()

	if box.Size().Height != 100 || box.Size().Width != 100 {
		t.Errorf("Size() = %v, want 100x100", box.Size())
	}
	if got := child.Translation(); got != (layout.Offset{Y: -50}) {
		t.Errorf("child Translation() = %v, want {0 -50}", got)
	}
	if box.LastMeasurement().Delta != 100 {
		t.Errorf("Delta = %v, want 100", box.LastMeasurement().Delta)
	}
}

func TestExpandingBox_ParallaxHorizontal(t *testing.T) {
	tests := []struct {
		name string
		dir  layout.TextDirection
		want layout.Offset
	}{
		{"ltr", layout.LTR, layout.Offset{X: -50}},
		{"rtl", layout.RTL, layout.Offset{X: 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := newBox(t, expanding.WithInitialFraction(0.5))
			if err := box.SetOrientation(expanding.Horizontal); err != nil {
				t.Fatal(err)
			}
			box.SetTextDirection(tt.dir)
			child := NewSizedBox(200, 40)
			box.AddChild(child)
			tester := exptest.NewFrameTesterWithT(t, box)

			tester.Pump()

			if box.Size() != (layout.Size{Width: 100, Height: 40}) {
				t.Errorf("Size() = %v, want 100x40", box.Size())
			}
			if got := child.Translation(); got != tt.want {
				t.Errorf("child Translation() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpandingBox_ZeroParallaxLeavesTranslation(t *testing.T) {
	box := newBox(t, expanding.WithParallax(0))
	child := NewSizedBox(100, 100)
	child.SetTranslation(layout.Offset{X: 3, Y: 4})
	box.AddChild(child)
	tester := exptest.NewFrameTesterWithT(t, box)

	box.SetExpandState(0.25)
	tester.Pump()

	if got := child.Translation(); got != (layout.Offset{X: 3, Y: 4}) {
		t.Errorf("child Translation() = %v, want untouched", got)
	}
	if box.Size().Height != 25 {
		t.Errorf("Height = %v, want 25", box.Size().Height)
	}
}

func TestExpandingBox_CollapsedIsGone(t *testing.T) {
	box := newBox(t)
	box.AddChild(NewLabel("details"))
	footer := NewLabel("footer")
	col := NewColumn(box, footer)
	tester := exptest.NewFrameTesterWithT(t, col)
	tester.Pump()

	if footer.Offset().Y != 13 {
		t.Fatalf("footer Y = %v, want 13", footer.Offset().Y)
	}

	box.Collapse(false)
	tester.Pump()

	if box.Visibility() != layout.Gone {
		t.Errorf("Visibility() = %v, want gone", box.Visibility())
	}
	if box.Size() != (layout.Size{}) {
		t.Errorf("Size() = %v, want zero", box.Size())
	}
	if footer.Offset().Y != 0 {
		t.Errorf("footer Y = %v, want 0 once the box is gone", footer.Offset().Y)
	}

	box.Expand(false)
	tester.Pump()
	if box.Visibility() != layout.Visible || footer.Offset().Y != 13 {
		t.Errorf("after expand: visibility %v, footer Y %v", box.Visibility(), footer.Offset().Y)
	}
}

func TestExpandingBox_SetOrientationRejectsInvalid(t *testing.T) {
	box := newBox(t)

	err := box.SetOrientation(expanding.Orientation(2))
	if !goerrors.Is(err, errors.ErrInvalidArgument) {
		t.Fatalf("SetOrientation(2) = %v, want invalid argument", err)
	}
	if box.Orientation() != expanding.Vertical {
		t.Errorf("Orientation() = %v, want vertical", box.Orientation())
	}
}

func TestExpandingBox_AnimatedCollapse(t *testing.T) {
	box := newBox(t)
	box.AddChild(NewSizedBox(100, 200))
	tester := exptest.NewFrameTesterWithT(t, box)
	tester.Pump()

	var heights []float64
	var events []string
	box.SetOnStateChangedListener(expanding.StateChangedFunc(func(fraction float64, state expanding.State) {
		events = append(events, state.String())
	}))
	box.SetAnimationListener(expanding.AnimationListenerFuncs{
		Start: func(s expanding.State) { events = append(events, "start:"+s.String()) },
		End:   func(s expanding.State) { events = append(events, "end:"+s.String()) },
	})

	box.CollapseAnimated()
	for i := 0; i < 40 && box.State() != expanding.Collapsed; i++ {
		tester.PumpFrames(1)
		heights = append(heights, box.Size().Height)
	}
	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}

	if box.State() != expanding.Collapsed {
		t.Fatalf("State() = %v, want collapsed", box.State())
	}
	for i := 1; i < len(heights); i++ {
		if heights[i] > heights[i-1] {
			t.Fatalf("height grew during collapse: %v", heights)
		}
	}
	if events[0] != "start:collapsing" || events[len(events)-1] != "end:collapsed" {
		t.Errorf("events = %v", events)
	}
	if box.Size() != (layout.Size{}) {
		t.Errorf("Size() = %v, want zero", box.Size())
	}
}

func TestExpandingBox_SpringExpand(t *testing.T) {
	box := newBox(t, expanding.WithExpanded(false), expanding.WithUsingSpring(true))
	box.AddChild(NewSizedBox(100, 200))
	tester := exptest.NewFrameTesterWithT(t, box)
	tester.Pump()

	box.ExpandAnimated()
	if box.State() != expanding.Expanding {
		t.Fatalf("State() = %v, want expanding right after the call", box.State())
	}
	if err := tester.PumpAndSettle(5 * time.Second); err != nil {
		t.Fatal(err)
	}
	if box.State() != expanding.Expanded || box.Size().Height != 200 {
		t.Errorf("State() = %v, Height = %v", box.State(), box.Size().Height)
	}
}

func TestExpandingBox_OnConfigurationChanged(t *testing.T) {
	box := newBox(t, expanding.WithExpanded(false))
	box.AddChild(NewSizedBox(10, 10))
	tester := exptest.NewFrameTesterWithT(t, box)
	tester.Pump()

	cancels := 0
	box.SetAnimationListener(expanding.AnimationListenerFuncs{
		Cancel: func(expanding.State) { cancels++ },
	})
	box.ExpandAnimated()
	tester.PumpFrames(3)

	box.OnConfigurationChanged()

	if cancels != 1 {
		t.Errorf("cancels = %d, want 1", cancels)
	}
	if animation.HasActiveTickers() {
		t.Error("expected no scheduled ticks after configuration change")
	}
}

func TestExpandingBox_SaveRestore(t *testing.T) {
	box := newBox(t)
	box.SetExpandState(0.4242)

	data, err := box.SaveState()
	if err != nil {
		t.Fatal(err)
	}

	restored := newBox(t)
	if err := restored.RestoreState(data); err != nil {
		t.Fatal(err)
	}
	if got := restored.ExpansionState(); got != 425 {
		t.Errorf("ExpansionState() = %v, want 425", got)
	}
	if restored.State() != expanding.FixedSize {
		t.Errorf("State() = %v, want fixed_size", restored.State())
	}
}

func TestExpandingBox_ApplyConfig(t *testing.T) {
	box := newBox(t)
	cfg, err := expanding.ParseConfig([]byte("orientation = \"horizontal\"\nexpanded = false\nparallax = 0.2\n"), expanding.FormatTOML)
	if err != nil {
		t.Fatal(err)
	}

	if err := box.ApplyConfig(cfg); err != nil {
		t.Fatal(err)
	}

	if box.Orientation() != expanding.Horizontal {
		t.Errorf("Orientation() = %v", box.Orientation())
	}
	if box.State() != expanding.Collapsed || box.Visibility() != layout.Gone {
		t.Errorf("State() = %v, Visibility() = %v", box.State(), box.Visibility())
	}
	if box.Parallax() != 0.2 {
		t.Errorf("Parallax() = %v", box.Parallax())
	}

	bad, err := expanding.ParseConfig([]byte("parallax: 0.9\ncurve: wobbly\n"), expanding.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	if err := box.ApplyConfig(bad); err == nil {
		t.Fatal("expected error for unknown curve")
	}
	if box.Parallax() != 0.2 {
		t.Errorf("Parallax() = %v after rejected config, want 0.2", box.Parallax())
	}
}

func TestLabel_Size(t *testing.T) {
	tests := []struct {
		text string
		want layout.Size
	}{
		{"hello", layout.Size{Width: 35, Height: 13}},
		{"ab\nabcd", layout.Size{Width: 28, Height: 26}},
		{"", layout.Size{Width: 0, Height: 13}},
	}
	for _, tt := range tests {
		l := NewLabel(tt.text)
		l.Layout(layout.Unbounded())
		if l.Size() != tt.want {
			t.Errorf("NewLabel(%q).Size() = %v, want %v", tt.text, l.Size(), tt.want)
		}
	}
}

func TestLabel_SetTextRelayouts(t *testing.T) {
	l := NewLabel("a")
	l.Layout(layout.Unbounded())

	l.SetText("abc")
	l.Layout(layout.Unbounded())

	if l.Size().Width != 21 {
		t.Errorf("Width = %v, want 21", l.Size().Width)
	}
}
