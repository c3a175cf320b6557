// Package input maps logical actions onto ebitengine keys, mouse buttons,
// touches and gamepads.
package input

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionHold
	ActionBack
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionFullscreen
	ActionPause
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// Binding represents a single key or button binding for an action
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
	Touch                  bool // Any active touch counts as pressed
}

// Bindings maps every action onto its devices
var Bindings map[ActionID]Binding

func init() {
	Bindings = map[ActionID]Binding{
		ActionHold: {
			Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp},
			MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
			Touch: true,
		},
		ActionBack: {
			Keys: []ebiten.Key{ebiten.KeyEscape},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterRight,
			},
		},
		ActionMenuUp: {
			Keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftTop,
			},
		},
		ActionMenuDown: {
			Keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonLeftBottom,
			},
		},
		ActionMenuSelect: {
			Keys: []ebiten.Key{ebiten.KeyEnter},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonRightBottom,
			},
		},
		ActionFullscreen: {
			Keys: []ebiten.Key{ebiten.KeyF},
		},
		ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyP},
			// Back / Share button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{
				ebiten.StandardGamepadButtonCenterLeft,
			},
		},
		ActionDebug: {
			Keys: []ebiten.Key{ebiten.KeyF1},
		},
	}
}
