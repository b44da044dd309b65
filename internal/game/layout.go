package game

import (
	"math"

	"github.com/iburimskiy/wheel-of-fortune/internal/config"
)

// wedge is the angular span of one segment, in radians, in screen space
// (0 points right, angles grow clockwise).
type wedge struct {
	start, end float64
}

func (w wedge) mid() float64 { return w.start + (w.end-w.start)/2 }
func (w wedge) arc() float64 { return w.end - w.start }

// wedges splits the circle into n equal spans starting at 12 o'clock.
func wedges(n int) []wedge {
	if n <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(n)
	out := make([]wedge, n)
	start := -math.Pi / 2
	for i := range out {
		out[i] = wedge{start: start, end: start + step}
		start += step
	}
	return out
}

// labelAnchor is where a wedge's label is centred, relative to the wheel centre.
func labelAnchor(radius float64, w wedge) (x, y float64) {
	r := (radius - config.LabelInset) / 2
	return r * math.Cos(w.mid()), r * math.Sin(w.mid())
}

// maxLabelWidth approximates the room a label has: the wedge's arc length on
// the ring the labels sit on.
func maxLabelWidth(radius float64, w wedge) float64 {
	return (radius - config.LabelInset) * w.arc()
}

// measureFunc returns the rendered width of s at the given font size.
type measureFunc func(s string, size float64) float64

// fitFontSize shrinks from MaxFontSize one step at a time until label fits
// within maxWidth. It stops at MinFontSize even if the label still overflows.
func fitFontSize(label string, maxWidth float64, measure measureFunc) float64 {
	size := float64(config.MaxFontSize)
	for measure(label, size) > maxWidth && size > config.MinFontSize {
		size--
	}
	return size
}
