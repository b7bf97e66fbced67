package main

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/errors"
	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
	exptest "github.com/go-drift/expanding/pkg/testing"
	"github.com/go-drift/expanding/pkg/widgets"
)

func newTestModel(t *testing.T) (*model, *exptest.FakeClock) {
	t.Helper()
	clk := exptest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() {
		animation.StopAllTickers()
		animation.SetClock(prev)
	})

	sc, err := newScene(nil, 20)
	if err != nil {
		t.Fatal(err)
	}
	m := newModel(sc)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 40})
	return m, clk
}

func runFrames(m *model, clk *exptest.FakeClock, n int) {
	for i := 0; i < n; i++ {
		clk.Advance(frameInterval)
		m.Update(frameMsg(time.Time{}))
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestRasterize(t *testing.T) {
	col := widgets.NewColumn(widgets.NewLabel("hello"), widgets.NewLabel("a\nb"))
	col.Layout(layout.Loose(layout.Size{Width: 70, Height: 130}))

	got := rasterize(col, 10, 4)

	want := "hello\na\nb\n"
	if got != want {
		t.Errorf("rasterize = %q, want %q", got, want)
	}
}

func TestRasterize_ClipsToTrimmedHost(t *testing.T) {
	box, err := widgets.NewExpandingBox(expanding.WithParallax(0))
	if err != nil {
		t.Fatal(err)
	}
	box.AddChild(widgets.NewLabel("one\ntwo\nthree"))
	box.SetExpandState(1.0 / 3)
	box.Layout(layout.Loose(layout.Size{Width: 140, Height: 130}))

	got := rasterize(box, 20, 3)

	if got != "one\n\n" {
		t.Errorf("rasterize = %q, want only the first line", got)
	}
}

func TestModel_ToggleCollapsesDetails(t *testing.T) {
	m, clk := newTestModel(t)
	if !strings.Contains(m.View(), "An expanding box") {
		t.Fatal("expected details in the first view")
	}

	m.Update(keyPress("t"))
	runFrames(m, clk, 40)

	if m.scene.box.State() != expanding.Collapsed {
		t.Fatalf("box State() = %v, want collapsed", m.scene.box.State())
	}
	if strings.Contains(m.View(), "An expanding box") {
		t.Error("collapsed details still drawn")
	}
}

func TestModel_FocusAndSpring(t *testing.T) {
	m, clk := newTestModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focused().name != "rows" {
		t.Fatalf("focused = %q, want rows", m.focused().name)
	}
	m.Update(keyPress("s"))
	if m.scene.list.UsingSpring() {
		t.Error("expected the list to switch to the tween driver")
	}

	m.Update(keyPress("c"))
	runFrames(m, clk, 40)
	if m.scene.list.State() != expanding.Collapsed {
		t.Errorf("list State() = %v", m.scene.list.State())
	}
	if m.scene.box.State() != expanding.Expanded {
		t.Errorf("box State() = %v, want untouched", m.scene.box.State())
	}
}

func TestModel_SaveRestore(t *testing.T) {
	m, clk := newTestModel(t)

	m.Update(keyPress("h"))
	m.Update(keyPress("w"))
	m.Update(keyPress("e"))
	runFrames(m, clk, 40)
	if m.scene.box.State() != expanding.Expanded {
		t.Fatalf("State() = %v", m.scene.box.State())
	}

	m.Update(keyPress("r"))
	if m.scene.box.ExpansionState() != 500 || m.scene.box.State() != expanding.FixedSize {
		t.Errorf("restored to %v %v", m.scene.box.ExpansionState(), m.scene.box.State())
	}
	if !strings.Contains(m.message, "restored details") {
		t.Errorf("message = %q", m.message)
	}
}

type errorLog struct {
	errs []*errors.ExpandError
}

func (l *errorLog) HandleError(err *errors.ExpandError) { l.errs = append(l.errs, err) }
func (l *errorLog) HandlePanic(*errors.PanicError)      {}

func TestModel_RestoreFailureIsReported(t *testing.T) {
	m, _ := newTestModel(t)
	logged := &errorLog{}
	prev := errors.DefaultHandler
	errors.SetHandler(logged)
	defer errors.SetHandler(prev)

	m.focused().saved = []byte("expansion_fraction: [1, 2")
	before := m.scene.box.ExpansionState()
	m.Update(keyPress("r"))

	if m.scene.box.ExpansionState() != before {
		t.Errorf("ExpansionState() = %v, want %v", m.scene.box.ExpansionState(), before)
	}
	if !strings.HasPrefix(m.message, "restore failed") {
		t.Errorf("message = %q", m.message)
	}
	if len(logged.errs) != 1 || logged.errs[0].Kind != errors.KindDecode {
		t.Fatalf("reported %v, want one decode error", logged.errs)
	}
	if logged.errs[0].Timestamp.IsZero() {
		t.Error("reported error has no timestamp")
	}
}

func TestModel_ResizeCancelsAnimations(t *testing.T) {
	m, clk := newTestModel(t)

	m.Update(keyPress("c"))
	runFrames(m, clk, 3)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	if animation.HasActiveTickers() {
		t.Error("resize left animations running")
	}
	if m.scene.box.State() != expanding.Collapsing {
		t.Errorf("State() = %v, want the state at cancel", m.scene.box.State())
	}
}
