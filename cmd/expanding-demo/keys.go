package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle      key.Binding
	Expand      key.Binding
	Collapse    key.Binding
	Half        key.Binding
	Spring      key.Binding
	Orientation key.Binding
	Direction   key.Binding
	Focus       key.Binding
	ScrollUp    key.Binding
	ScrollDown  key.Binding
	Save        key.Binding
	Restore     key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Toggle:      key.NewBinding(key.WithKeys("t", " ", "space"), key.WithHelp("space/t", "toggle")),
		Expand:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "expand")),
		Collapse:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "collapse")),
		Half:        key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "half")),
		Spring:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "tween/spring")),
		Orientation: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "orientation")),
		Direction:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "ltr/rtl")),
		Focus:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		ScrollUp:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		ScrollDown:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		Save:        key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "save")),
		Restore:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restore")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Spring, k.Focus, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Expand, k.Collapse, k.Half},
		{k.Spring, k.Orientation, k.Direction},
		{k.Focus, k.ScrollUp, k.ScrollDown},
		{k.Save, k.Restore, k.Help, k.Quit},
	}
}
