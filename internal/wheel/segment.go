// Package wheel holds the wheel's state: the ordered segment list and its
// persistence, the spin state machine and the pointer-to-segment mapping.
package wheel

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/iburimskiy/wheel-of-fortune/internal/log"
)

var (
	ErrEmptyLabel      = errors.New("segment label must not be empty")
	ErrIndexOutOfRange = errors.New("segment index out of range")
	ErrInvalidIndex    = errors.New("segment index is not a number")
)

// Segment is one labeled, coloured wedge of the wheel.
type Segment struct {
	Label string `json:"text"`
	Color string `json:"color"`
}

// KV is the persistent key-value storage the segment list is written to.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Store is the ordered segment list. Insertion order is draw order.
type Store struct {
	kv      KV
	key     string
	palette []string
	logger  *slog.Logger

	segments   []Segment
	colorIndex int
	revision   uint64
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the store logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore returns an empty store persisting under key. Call Load to read
// the saved list.
func NewStore(kv KV, key string, palette []string, opts ...Option) *Store {
	s := &Store{
		kv:      kv,
		key:     key,
		palette: append([]string(nil), palette...),
		logger:  log.Discard(),
	}
	if len(s.palette) == 0 {
		s.palette = []string{"lightgray"}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Revision changes after every successful mutation or load. Renderers
// compare it to know when the wheel must be redrawn.
func (s *Store) Revision() uint64 { return s.revision }

// Len returns the number of segments.
func (s *Store) Len() int { return len(s.segments) }

// Segments returns a copy of the segment list.
func (s *Store) Segments() []Segment {
	return append([]Segment(nil), s.segments...)
}

// At returns the segment at index.
func (s *Store) At(index int) (Segment, error) {
	if err := s.checkIndex(index); err != nil {
		return Segment{}, err
	}
	return s.segments[index], nil
}

// Add appends a segment with the next palette colour.
func (s *Store) Add(label string) (Segment, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Segment{}, ErrEmptyLabel
	}
	seg := Segment{Label: label, Color: s.palette[s.colorIndex%len(s.palette)]}

	next := make([]Segment, 0, len(s.segments)+1)
	next = append(next, s.segments...)
	next = append(next, seg)
	if err := s.commit(next); err != nil {
		return Segment{}, err
	}
	s.colorIndex++
	s.logger.Debug("segment added", "label", seg.Label, "color", seg.Color, "count", len(s.segments))
	return seg, nil
}

// Edit replaces the label of the segment at index. The colour is kept.
func (s *Store) Edit(index int, label string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	next := s.Segments()
	next[index].Label = label
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("segment edited", "index", index, "label", label)
	return nil
}

// Delete removes the segment at index and shifts the rest down. The palette
// counter is left alone.
func (s *Store) Delete(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	removed := s.segments[index]
	next := make([]Segment, 0, len(s.segments)-1)
	next = append(next, s.segments[:index]...)
	next = append(next, s.segments[index+1:]...)
	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Debug("segment deleted", "index", index, "label", removed.Label, "count", len(s.segments))
	return nil
}

// Load reads the persisted list. Absent or unreadable data leaves the wheel
// empty; only storage access failures are returned.
func (s *Store) Load() error {
	data, ok, err := s.kv.Get(s.key)
	if err != nil {
		return fmt.Errorf("load segments: %w", err)
	}
	var segments []Segment
	if ok {
		if err := json.Unmarshal(data, &segments); err != nil {
			s.logger.Warn("stored segments are corrupt, starting empty", "key", s.key, "err", err)
			segments = nil
		}
	}
	s.segments = segments
	s.colorIndex = len(segments)
	s.logger.Info("segments loaded", "count", len(segments))
	s.changed()
	return nil
}

// Save writes the whole list under the store key.
func (s *Store) Save() error {
	return s.save(s.segments)
}

// commit persists next and only then makes it the current list.
func (s *Store) commit(next []Segment) error {
	if err := s.save(next); err != nil {
		return err
	}
	s.segments = next
	s.changed()
	return nil
}

func (s *Store) save(segments []Segment) error {
	if segments == nil {
		segments = []Segment{}
	}
	data, err := json.Marshal(segments)
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}
	if err := s.kv.Put(s.key, data); err != nil {
		return fmt.Errorf("save segments: %w", err)
	}
	return nil
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.segments) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(s.segments))
	}
	return nil
}

func (s *Store) changed() {
	s.revision++
}
