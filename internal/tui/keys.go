package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the bindings shared across pages. Screen-specific
// single-letter hotkeys are matched inline in the page models.
type keyMap struct {
	up    key.Binding
	down  key.Binding
	enter key.Binding
	quit  key.Binding
	retry key.Binding
}

var keys = keyMap{
	up:    key.NewBinding(key.WithKeys("up", "k")),
	down:  key.NewBinding(key.WithKeys("down", "j")),
	enter: key.NewBinding(key.WithKeys("enter")),
	quit:  key.NewBinding(key.WithKeys("ctrl+c")),
	retry: key.NewBinding(key.WithKeys("r")),
}
