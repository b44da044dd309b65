package sound

import (
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(st beep.Streamer) ([][2]float64, int) {
	var all [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := st.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			return all, len(all)
		}
	}
}

func TestTone_LengthAndFade(t *testing.T) {
	sr := beep.SampleRate(1000)
	samples, n := drain(Tone(sr, 50, 100*time.Millisecond))
	assert.Equal(t, 100, n)

	for _, s := range samples {
		assert.LessOrEqual(t, s[0], 0.4)
		assert.GreaterOrEqual(t, s[0], -0.4)
		assert.Equal(t, s[0], s[1])
	}
	assert.InDelta(t, 0, samples[0][0], 1e-12)
}

func TestChime_IsTwoTones(t *testing.T) {
	sr := beep.SampleRate(1000)
	_, n := drain(Chime(sr))
	assert.Equal(t, 120+250, n)
}

func TestDecoderFor(t *testing.T) {
	for _, p := range []string{"a.wav", "b.MP3", "c.flac"} {
		d, err := decoderFor(p)
		require.NoError(t, err, p)
		assert.NotNil(t, d)
	}
	_, err := decoderFor("song.ogg")
	assert.ErrorContains(t, err, "unsupported file type: .ogg")
}

func TestNop(t *testing.T) {
	var p Player = Nop{}
	p.Tick()
	p.Win()
	assert.NoError(t, p.Close())
}
