package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 640
	WindowHeight = 480

	// Button dimensions
	ButtonWidth  = 100
	ButtonHeight = 36
	ButtonX      = 20
	ButtonY      = 40
	ButtonGap    = 10

	// Wheel geometry
	WheelCenterX = 390
	WheelCenterY = 250
	LabelInset   = 20
	MaxFontSize  = 16
	MinFontSize  = 8
	BaseStroke   = 5
	WedgeStroke  = 2
	PointerSize  = 14

	// Background animation
	ColorShiftSpeed = 0.01
)

// DefaultPalette is the colour cycle used for new segments.
var DefaultPalette = []string{"lightgreen", "lightcoral", "lightblue", "lightgoldenrodyellow", "lightpink", "lightgray"}

// Sound controls audio feedback.
type Sound struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	WinFile string  `yaml:"win_file"`
}

// Settings holds everything that can be tuned from the config file or flags.
type Settings struct {
	Radius       float64       `yaml:"radius"`
	SpinDuration time.Duration `yaml:"spin_duration"`
	MinTurns     int           `yaml:"min_turns"`
	Palette      []string      `yaml:"palette"`
	DataDir      string        `yaml:"data_dir"`
	StorageKey   string        `yaml:"storage_key"`
	HistorySize  int           `yaml:"history_size"`
	Seed         uint64        `yaml:"seed"`
	LogLevel     string        `yaml:"log_level"`
	Sound        Sound         `yaml:"sound"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Radius:       150,
		SpinDuration: 2000 * time.Millisecond,
		MinTurns:     5,
		Palette:      append([]string(nil), DefaultPalette...),
		DataDir:      defaultDataDir(),
		StorageKey:   "wheelSegments",
		HistorySize:  5,
		LogLevel:     "info",
		Sound:        Sound{Enabled: true, Volume: 0},
	}
}

// Load overlays the YAML file at path onto the defaults. A missing file is
// not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the wheel cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Radius <= LabelInset:
		return fmt.Errorf("radius must be greater than %d", LabelInset)
	case s.SpinDuration <= 0:
		return errors.New("spin_duration must be positive")
	case s.MinTurns < 0:
		return errors.New("min_turns must not be negative")
	case len(s.Palette) == 0:
		return errors.New("palette must not be empty")
	case s.StorageKey == "":
		return errors.New("storage_key must not be empty")
	case s.HistorySize < 1:
		return errors.New("history_size must be at least 1")
	}
	return nil
}

// DefaultPath is where the config file is looked up when no -config flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "wheel-of-fortune", "config.yaml")
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", ".wheel-of-fortune")
	}
	return filepath.Join(dir, "wheel-of-fortune")
}
