// Package sound plays the spin feedback: a short tick each time a wedge
// boundary passes the pointer and a chime (or a user-supplied file) when the
// wheel stops.
package sound

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// SampleRate is the speaker rate; decoded files are resampled to it.
const SampleRate = beep.SampleRate(44100)

// Player is the feedback the game needs.
type Player interface {
	Tick()
	Win()
	Close() error
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Tick()        {}
func (Nop) Win()         {}
func (Nop) Close() error { return nil }

// Speaker plays through the system audio device.
type Speaker struct {
	volume  float64
	winFile string
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
}

// NewSpeaker initialises the audio device. winFile may be empty.
func NewSpeaker(volume float64, winFile string, logger *slog.Logger) (*Speaker, error) {
	if winFile != "" {
		if _, err := decoderFor(winFile); err != nil {
			return nil, err
		}
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	return &Speaker{volume: volume, winFile: winFile, logger: logger}, nil
}

// Tick plays a short click.
func (s *Speaker) Tick() {
	s.play(Tone(SampleRate, 1200, 15*time.Millisecond))
}

// Win plays the configured file, falling back to a two-note chime.
func (s *Speaker) Win() {
	if s.winFile != "" {
		st, err := s.loadFile(s.winFile)
		if err == nil {
			s.play(st)
			return
		}
		s.logger.Warn("win sound unavailable, using chime", "file", s.winFile, "err", err)
	}
	s.play(Chime(SampleRate))
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	speaker.Clear()
	speaker.Close()
	return nil
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	speaker.Play(&effects.Volume{Streamer: st, Base: 2, Volume: s.volume})
}

func (s *Speaker) loadFile(path string) (beep.Streamer, error) {
	decode, err := decoderFor(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	var st beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		st = beep.Resample(4, format.SampleRate, SampleRate, streamer)
	}
	return beep.Seq(st, beep.Callback(func() {
		// On end: close resources
		_ = streamer.Close()
	})), nil
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

// decoderFor picks a decoder from the file extension.
func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return wav.Decode(f) }, nil
	case ".mp3":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return mp3.Decode(f) }, nil
	case ".flac":
		return func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) { return flac.Decode(f) }, nil
	default:
		return nil, errors.New("unsupported file type: " + ext)
	}
}

// Tone is a sine wave at freq with a linear fade-out over d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	total := sr.N(d)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			env := 1 - float64(pos)/float64(total)
			v := 0.4 * env * math.Sin(2*math.Pi*freq*float64(pos)/float64(sr))
			samples[i][0], samples[i][1] = v, v
			pos++
		}
		return len(samples), true
	})
}

// Chime is the default result sound.
func Chime(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		Tone(sr, 660, 120*time.Millisecond),
		Tone(sr, 990, 250*time.Millisecond),
	)
}
