package wheel

import "math"

// Resolve returns the index of the wedge under the pointer at 12 o'clock
// after the wheel has turned clockwise by rotation degrees. ok is false when
// there are no segments.
func Resolve(rotation float64, n int) (index int, ok bool) {
	if n <= 0 {
		return 0, false
	}
	wedge := 360 / float64(n)
	pointed := math.Mod(360-NormalizeAngle(rotation), 360)
	index = int(math.Floor(pointed / wedge))
	if index >= n {
		index = n - 1
	}
	if index < 0 {
		index = 0
	}
	return index, true
}

// NormalizeAngle maps any angle in degrees into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
