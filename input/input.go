package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// IsPressed reports whether any binding of action is currently held.
func IsPressed(action ActionID) bool {
	binding, ok := Bindings[action]
	if !ok {
		return false
	}

	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if ebiten.IsMouseButtonPressed(btn) {
			return true
		}
	}
	if binding.Touch {
		touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
		if len(touchIDs) > 0 {
			return true
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// IsJustPressed reports whether any binding of action went down this frame.
func IsJustPressed(action ActionID) bool {
	binding, ok := Bindings[action]
	if !ok {
		return false
	}

	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	for _, btn := range binding.MouseButtons {
		if inpututil.IsMouseButtonJustPressed(btn) {
			return true
		}
	}
	if binding.Touch {
		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) > 0 {
			return true
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if inpututil.IsStandardGamepadButtonJustPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}
