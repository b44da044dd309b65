package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/wheel-of-fortune/internal/config"
	"github.com/iburimskiy/wheel-of-fortune/internal/wheel"
)

func TestWedges_StartAtTopClockwise(t *testing.T) {
	assert.Nil(t, wedges(0))

	ws := wedges(4)
	require.Len(t, ws, 4)
	assert.InDelta(t, -math.Pi/2, ws[0].start, 1e-12)
	for i, w := range ws {
		assert.InDelta(t, math.Pi/2, w.arc(), 1e-12)
		if i > 0 {
			assert.InDelta(t, ws[i-1].end, w.start, 1e-12)
		}
	}
	assert.InDelta(t, 3*math.Pi/2, ws[3].end, 1e-12)
	assert.InDelta(t, -math.Pi/4, ws[0].mid(), 1e-12)
}

// The wedge drawn at index i must be the one the resolver picks when the
// wheel is turned so that wedge's middle sits under the pointer.
func TestWedges_AgreeWithResolver(t *testing.T) {
	for n := 1; n <= 9; n++ {
		for i, w := range wedges(n) {
			midFromTop := (w.mid() + math.Pi/2) * 180 / math.Pi
			rotation := wheel.NormalizeAngle(360 - midFromTop)
			got, ok := wheel.Resolve(rotation, n)
			require.True(t, ok)
			assert.Equal(t, i, got, "n=%d", n)
		}
	}
}

func TestLabelAnchor(t *testing.T) {
	w := wedges(4)[1] // 0 to 90 degrees, mid at 45
	x, y := labelAnchor(150, w)
	r := (150.0 - config.LabelInset) / 2
	assert.InDelta(t, r*math.Cos(math.Pi/4), x, 1e-9)
	assert.InDelta(t, r*math.Sin(math.Pi/4), y, 1e-9)
}

func TestFitFontSize(t *testing.T) {
	// 1px per character per point of font size.
	measure := func(s string, size float64) float64 { return float64(len(s)) * size }

	tests := []struct {
		name     string
		label    string
		maxWidth float64
		want     float64
	}{
		{"fits at max", "abc", 100, config.MaxFontSize},
		{"shrinks", "abcdefghij", 120, 12},
		{"exact fit", "abcd", 40, 10},
		{"floor", "a very long label indeed", 10, config.MinFontSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fitFontSize(tt.label, tt.maxWidth, measure))
		})
	}
}

func TestMaxLabelWidthShrinksWithSegments(t *testing.T) {
	few := maxLabelWidth(150, wedges(3)[0])
	many := maxLabelWidth(150, wedges(12)[0])
	assert.Greater(t, few, many)
	assert.InDelta(t, (150-config.LabelInset)*2*math.Pi/12, many, 1e-9)
}
