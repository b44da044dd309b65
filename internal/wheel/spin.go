package wheel

import (
	"math/rand/v2"
	"time"
)

// SpinState is the spinner's phase.
type SpinState int

const (
	Idle SpinState = iota
	Spinning
)

func (s SpinState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Spinning:
		return "spinning"
	}
	return "unknown"
}

// Spinner animates the wheel from its current angle to a randomly overshot
// target over a fixed duration. It is advanced once per frame by the caller.
type Spinner struct {
	duration time.Duration
	minTurns int
	rng      *rand.Rand

	state     SpinState
	rotation  float64
	from      float64
	target    float64
	startedAt time.Time
}

// NewSpinner returns an idle spinner at rotation 0. A nil rng uses a
// time-seeded source.
func NewSpinner(duration time.Duration, minTurns int, rng *rand.Rand) *Spinner {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	return &Spinner{duration: duration, minTurns: minTurns, rng: rng}
}

// NewSeededRand returns a deterministic source for the spinner.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// State reports whether a spin is running.
func (s *Spinner) State() SpinState { return s.state }

// Rotation returns the current wheel angle in [0, 360).
func (s *Spinner) Rotation() float64 { return NormalizeAngle(s.rotation) }

// Target returns the absolute target of the running or last spin.
func (s *Spinner) Target() float64 { return s.target }

// Start begins a spin at now. It refuses to start while another spin runs.
func (s *Spinner) Start(now time.Time) bool {
	if s.state == Spinning {
		return false
	}
	overshoot := float64(360*s.minTurns + s.rng.IntN(360))
	s.from = s.rotation
	s.target = s.from + overshoot
	s.startedAt = now
	s.state = Spinning
	return true
}

// Advance moves the animation to now. It returns true on the frame the spin
// completes; the rotation is then normalised and the spinner is idle again.
func (s *Spinner) Advance(now time.Time) bool {
	if s.state != Spinning {
		return false
	}
	progress := 1.0
	if s.duration > 0 {
		progress = clamp01(float64(now.Sub(s.startedAt)) / float64(s.duration))
	}
	s.rotation = s.from + progress*(s.target-s.from)
	if progress < 1 {
		return false
	}
	s.rotation = NormalizeAngle(s.target)
	s.state = Idle
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
