package wheel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Empty(t *testing.T) {
	_, ok := Resolve(123, 0)
	assert.False(t, ok)
}

func TestResolve_Cases(t *testing.T) {
	tests := []struct {
		rotation float64
		n        int
		want     int
	}{
		{90, 4, 3},
		{0, 4, 0},
		{360, 4, 0},
		{270, 4, 1},
		{180, 4, 2},
		{1, 4, 3},
		{359.999, 4, 0},
		{45, 1, 0},
		{-90, 4, 1},
		{720 + 90, 4, 3},
		{10, 3, 2},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.rotation, tt.n)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "rotation=%v n=%d", tt.rotation, tt.n)
	}
}

func TestResolve_MatchesFormulaAndRange(t *testing.T) {
	for n := 1; n <= 13; n++ {
		for r := 0.0; r < 1080; r += 7.3 {
			got, ok := Resolve(r, n)
			assert.True(t, ok)
			assert.GreaterOrEqual(t, got, 0)
			assert.Less(t, got, n)

			want := int(math.Floor(math.Mod(360-math.Mod(r, 360), 360) / (360 / float64(n))))
			assert.Equal(t, want, got, "rotation=%v n=%d", r, n)
		}
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeAngle(0))
	assert.Equal(t, 0.0, NormalizeAngle(360))
	assert.Equal(t, 10.0, NormalizeAngle(370))
	assert.Equal(t, 350.0, NormalizeAngle(-10))
	assert.Equal(t, 0.0, NormalizeAngle(-720))
}
