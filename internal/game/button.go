package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type button struct {
	label  string
	x, y   int
	w, h   int
	action func()

	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

// update tracks hover/press and reports a click on release over the button.
func (b *button) update(mouseX, mouseY int, justPressed, justReleased bool) bool {
	b.hovered = b.contains(mouseX, mouseY)
	if b.hovered && justPressed {
		b.pressed = true
	}
	clicked := false
	if justReleased {
		clicked = b.pressed && b.hovered
		b.pressed = false
	}
	return clicked
}

func (b *button) draw(screen *ebiten.Image, enabled bool) {
	// Button background
	var bgColor color.Color
	switch {
	case !enabled:
		bgColor = color.RGBA{R: 70, G: 75, B: 90, A: 255} // Disabled
	case b.pressed:
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	case b.hovered:
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	default:
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), bgColor, false)

	borderColor := color.RGBA{R: 150, G: 170, B: 200, A: 255}
	vector.StrokeRect(screen, float32(b.x), float32(b.y), float32(b.w), float32(b.h), 2, borderColor, false)

	textWidth := len(b.label) * 6 // debug font glyphs are 6px wide
	textX := b.x + (b.w-textWidth)/2
	textY := b.y + (b.h-16)/2
	ebitenutil.DebugPrintAt(screen, b.label, textX, textY)
}
