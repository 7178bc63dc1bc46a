package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	increase key.Binding
	decrease key.Binding
	remove   key.Binding
	clear    key.Binding
	wishlist key.Binding
	copy     key.Binding
	refresh  key.Binding
	version  key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	increase: key.NewBinding(key.WithKeys("+", "=")),
	decrease: key.NewBinding(key.WithKeys("-")),
	remove:   key.NewBinding(key.WithKeys("x", "delete")),
	clear:    key.NewBinding(key.WithKeys("c")),
	wishlist: key.NewBinding(key.WithKeys("w")),
	copy:     key.NewBinding(key.WithKeys("y")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	version:  key.NewBinding(key.WithKeys("v")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
