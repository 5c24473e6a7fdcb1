package input

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// JustPressedPositions returns the screen positions of the mouse clicks and
// touches that started during this tick.
func JustPressedPositions() []image.Point {
	var points []image.Point
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		points = append(points, image.Pt(x, y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		points = append(points, image.Pt(x, y))
	}
	return points
}

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and gamepad inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	for _, g := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			// The button 0 might not be the A button.
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsGrantMercyJustPressed matches the "(A)" choice of the mercy prompt.
func IsGrantMercyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyA)
}

// IsDenyMercyJustPressed matches the "(B)" choice of the mercy prompt.
func IsDenyMercyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyB)
}

var digitKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// DigitJustPressed returns the zero-based index of the digit key 1-9 that
// was just pressed.
func DigitJustPressed() (int, bool) {
	for i, k := range digitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return i, true
		}
	}
	return 0, false
}
