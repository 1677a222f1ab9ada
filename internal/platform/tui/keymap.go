package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snek/internal/core"
)

// KeyMapper translates Bubble Tea key messages to commands.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game command.
// Arrows, vi-style h/j/k/l and WASD steer; Enter/Space play; Esc, Q and Ctrl+C quit.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Command {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.CommandQuit
	case "enter", " ", "space":
		return core.CommandPlay
	case "up", "k", "w":
		return core.CommandGoUp
	case "down", "j", "s":
		return core.CommandGoDown
	case "left", "h", "a":
		return core.CommandGoLeft
	case "right", "l", "d":
		return core.CommandGoRight
	}
	return core.CommandNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if msg.String() == "tab" {
		return MenuActionScoreboard
	}

	switch km.MapKey(msg) {
	case core.CommandQuit:
		return MenuActionQuit
	case core.CommandGoUp:
		return MenuActionUp
	case core.CommandGoDown:
		return MenuActionDown
	case core.CommandPlay:
		return MenuActionSelect
	}
	return MenuActionNone
}
