package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	extendUp    key.Binding
	extendDown  key.Binding
	extendLeft  key.Binding
	extendRight key.Binding
	click       key.Binding
	toggle      key.Binding
	clear       key.Binding
	filter      key.Binding
	overlay     key.Binding
	back        key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		extendUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend")),
		extendDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend")),
		extendLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend")),
		extendRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend")),
		click:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		toggle:      key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space/x", "toggle")),
		clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		overlay:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "annotations")),
		back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.click, k.toggle, k.extendRight, k.overlay, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.left, k.right},
		{k.extendUp, k.extendDown, k.extendLeft, k.extendRight},
		{k.click, k.toggle, k.clear},
		{k.filter, k.overlay, k.quit},
	}
}
