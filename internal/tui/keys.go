package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	version   key.Binding
	logout    key.Binding
	location  key.Binding
	scenario  key.Binding
	chat      key.Binding
	advice    key.Binding
	layers    key.Binding
	language  key.Binding
	copyReply key.Binding
	speak     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	version:   key.NewBinding(key.WithKeys("v")),
	logout:    key.NewBinding(key.WithKeys("o")),
	location:  key.NewBinding(key.WithKeys("g")),
	scenario:  key.NewBinding(key.WithKeys("s")),
	chat:      key.NewBinding(key.WithKeys("c")),
	advice:    key.NewBinding(key.WithKeys("r")),
	layers:    key.NewBinding(key.WithKeys("m")),
	language:  key.NewBinding(key.WithKeys("t")),
	copyReply: key.NewBinding(key.WithKeys("ctrl+y")),
	speak:     key.NewBinding(key.WithKeys("ctrl+s")),
}
