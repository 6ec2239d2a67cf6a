// Package screen provides modal overlays drawn above the picker.
package screen

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen is an overlay that takes over keyboard input while open.
type Screen interface {
	// Update handles a key. A nil Screen result closes the overlay.
	Update(msg tea.KeyMsg) (Screen, tea.Cmd)
	View() string
	Type() Type
}

// Resizer is implemented by screens that follow the window size.
type Resizer interface {
	SetSize(width, height int)
}

// Type names an overlay kind, mostly for logging.
type Type int

const (
	TypeNone Type = iota
	TypeHelp
)

var typeNames = map[Type]string{
	TypeNone: "none",
	TypeHelp: "help",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}
