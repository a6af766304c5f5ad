package tui

import tea "github.com/charmbracelet/bubbletea"

// Action represents a semantic studio action, abstracted from physical key
// presses. This centralizes key bindings and makes them testable.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionRotateCCW
	ActionRotateCW
	ActionScaleUp
	ActionScaleDown
	ActionStampLine
	ActionStampCircle
	ActionStampPolygon
	ActionFloodFill
	ActionBoundaryFill
	ActionSaveScene
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to studio actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a studio action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "esc":
		return ActionQuit
	case "a", "left":
		return ActionMoveLeft
	case "d", "right":
		return ActionMoveRight
	case "w", "up":
		return ActionMoveUp
	case "s", "down":
		return ActionMoveDown
	case "q":
		return ActionRotateCCW
	case "e":
		return ActionRotateCW
	case "z":
		return ActionScaleUp
	case "x":
		return ActionScaleDown
	case "l":
		return ActionStampLine
	case "c":
		return ActionStampCircle
	case "p":
		return ActionStampPolygon
	case "f":
		return ActionFloodFill
	case "g":
		return ActionBoundaryFill
	case "ctrl+s":
		return ActionSaveScene
	}
	return ActionNone
}
