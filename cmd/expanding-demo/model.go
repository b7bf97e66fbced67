package main

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/expanding/pkg/animation"
	"github.com/go-drift/expanding/pkg/errors"
	"github.com/go-drift/expanding/pkg/expanding"
	"github.com/go-drift/expanding/pkg/layout"
	"github.com/go-drift/expanding/pkg/logging"
)

const frameInterval = 16 * time.Millisecond

type frameMsg time.Time

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// model runs the frame loop: every frame steps the animation tickers, then
// flushes layout for the scene at the current surface size.
type model struct {
	scene   *scene
	owner   *layout.PipelineOwner
	keys    keyMap
	help    help.Model
	log     *slog.Logger
	focus   int
	width   int
	height  int
	message string
}

func newModel(sc *scene) *model {
	owner := &layout.PipelineOwner{}
	owner.Attach(sc.root)
	return &model{
		scene: sc,
		owner: owner,
		keys:  newKeyMap(),
		help:  help.New(),
		log:   logging.New("demo"),
	}
}

func (m *model) Init() tea.Cmd {
	return frameCmd()
}

// surface returns the canvas size in cells: the window minus title, border,
// status line, message and help.
func (m *model) surface() (cols, rows int) {
	cols = m.width - 2
	rows = m.height - 7
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	return cols, rows
}

func (m *model) frame() {
	defer errors.Recover("demo.frame")
	animation.StepTickers()
	cols, rows := m.surface()
	m.owner.FlushLayout(m.scene.root, layout.Loose(layout.Size{
		Width:  float64(cols * cellWidth),
		Height: float64(rows * cellHeight),
	}))
}

// fail shows err on the message line and reports it to the error handler.
func (m *model) fail(op, what string, err error) {
	m.message = fmt.Sprintf("%s failed: %v", what, err)
	var ee *errors.ExpandError
	if !goerrors.As(err, &ee) {
		ee = &errors.ExpandError{Op: op, Kind: errors.KindUnknown, Err: err}
	}
	errors.Report(ee)
}

func (m *model) focused() *namedHost {
	return &m.scene.hosts[m.focus]
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame()
		return m, frameCmd()

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		// A resize is a configuration change; hosts drop in-flight
		// animations and the tree is laid out again at the new size.
		m.scene.onConfigurationChanged()
		m.owner.ScheduleLayout(m.scene.root)
		m.frame()
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	h := m.focused()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		h.host.Toggle(true)
	case key.Matches(msg, m.keys.Expand):
		h.host.Expand(true)
	case key.Matches(msg, m.keys.Collapse):
		h.host.Collapse(true)
	case key.Matches(msg, m.keys.Half):
		h.host.SetExpandState(0.5)
	case key.Matches(msg, m.keys.Spring):
		h.host.SetUsingSpring(!h.host.UsingSpring())
	case key.Matches(msg, m.keys.Orientation):
		next := expanding.Horizontal
		if h.host.Orientation() == expanding.Horizontal {
			next = expanding.Vertical
		}
		if err := h.host.SetOrientation(next); err != nil {
			m.fail("demo.orientation", "orientation", err)
		}
	case key.Matches(msg, m.keys.Direction):
		if h.host.TextDirection() == layout.RTL {
			h.host.SetTextDirection(layout.LTR)
		} else {
			h.host.SetTextDirection(layout.RTL)
		}
	case key.Matches(msg, m.keys.Focus):
		m.focus = (m.focus + 1) % len(m.scene.hosts)
	case key.Matches(msg, m.keys.ScrollUp):
		m.scene.list.ScrollBy(-cellHeight)
	case key.Matches(msg, m.keys.ScrollDown):
		m.scene.list.ScrollBy(cellHeight)
	case key.Matches(msg, m.keys.Save):
		data, err := h.host.SaveState()
		if err != nil {
			m.fail("demo.save", "save", err)
			return nil
		}
		h.saved = data
		m.message = fmt.Sprintf("saved %s at %.0f", h.name, h.host.ExpansionState())
		m.log.Debug("state saved", "host", h.name, "bytes", len(data))
	case key.Matches(msg, m.keys.Restore):
		if h.saved == nil {
			m.message = "nothing saved yet"
			return nil
		}
		if err := h.host.RestoreState(h.saved); err != nil {
			m.fail("demo.restore", "restore", err)
			return nil
		}
		m.message = fmt.Sprintf("restored %s to %.0f", h.name, h.host.ExpansionState())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return nil
}

func (m *model) status() string {
	var parts []string
	for i, nh := range m.scene.hosts {
		driver := "tween"
		if nh.host.UsingSpring() {
			driver = "spring"
		}
		dir := "ltr"
		if nh.host.TextDirection() == layout.RTL {
			dir = "rtl"
		}
		s := fmt.Sprintf("%s: %s %.2f %s %s %s", nh.name, nh.host.State(),
			nh.host.ExpansionState()/expanding.FractionExpanded, driver, nh.host.Orientation(), dir)
		if i == m.focus {
			s = focusStyle.Render("> " + s)
		} else {
			s = statusStyle.Render("  " + s)
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "   ")
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	cols, rows := m.surface()
	canvas := rasterize(m.scene.root, cols, rows)

	var b strings.Builder
	b.WriteString(titleStyle.Render("expanding demo"))
	b.WriteString("\n")
	b.WriteString(panelStyle.Width(cols).Height(rows).Render(canvas))
	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(messageStyle.Render(m.message))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
