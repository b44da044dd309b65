package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/wheel-of-fortune/internal/config"
)

func TestHsvToRgb(t *testing.T) {
	tests := []struct {
		h, s, v float64
		r, g, b uint8
	}{
		{0, 1, 1, 255, 0, 0},
		{120, 1, 1, 0, 255, 0},
		{240, 1, 1, 0, 0, 255},
		{360, 1, 1, 255, 0, 0},
		{-120, 1, 1, 0, 0, 255},
		{0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := hsvToRgb(tt.h, tt.s, tt.v)
		assert.Equal(t, []uint8{tt.r, tt.g, tt.b}, []uint8{r, g, b}, "h=%v s=%v v=%v", tt.h, tt.s, tt.v)
	}
}

func TestColorByName(t *testing.T) {
	for _, name := range config.DefaultPalette {
		assert.NotEqual(t, fallbackColor, colorByName(name), name)
	}
	assert.Equal(t, color.RGBA{R: 0x90, G: 0xee, B: 0x90, A: 0xff}, colorByName("LightGreen"))
	assert.Equal(t, fallbackColor, colorByName("not-a-colour"))
}
