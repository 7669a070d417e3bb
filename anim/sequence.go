package anim

import "fmt"

// DefaultSequenceName is the sequence every manager guarantees to have: if
// the atlas defines no sequence with this name, the manager synthesizes one
// spanning every atlas cell.
const DefaultSequenceName = "default"

// DefaultFrameDuration is the seconds-per-frame used for synthesized
// sequences.
const DefaultFrameDuration = 0.1

// Sequence is an immutable, named, ordered list of atlas cell indices with
// per-frame timing and a loop flag. Sequences are owned by the atlas they
// were authored on and shared read-only by every Animation wrapping them.
type Sequence struct {
	name          string
	cells         []int
	frameDuration float64
	loop          bool
}

// NewSequence validates and builds a Sequence. cells must hold at least one
// non-negative atlas cell index and frameDuration (seconds per frame) must
// be positive.
func NewSequence(name string, cells []int, frameDuration float64, loop bool) (*Sequence, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("anim: sequence %q: cells must not be empty", name)
	}
	if frameDuration <= 0 {
		return nil, fmt.Errorf("anim: sequence %q: frame duration must be positive, got %v", name, frameDuration)
	}
	for i, c := range cells {
		if c < 0 {
			return nil, fmt.Errorf("anim: sequence %q: cell %d is negative (%d)", name, i, c)
		}
	}
	return &Sequence{
		name:          name,
		cells:         append([]int(nil), cells...),
		frameDuration: frameDuration,
		loop:          loop,
	}, nil
}

// Name returns the sequence's identifier within its atlas.
func (s *Sequence) Name() string { return s.name }

// Len returns the number of frames.
func (s *Sequence) Len() int { return len(s.cells) }

// Cell returns the atlas cell index at frame i.
func (s *Sequence) Cell(i int) int { return s.cells[i] }

// Cells returns a copy of the cell list.
func (s *Sequence) Cells() []int { return append([]int(nil), s.cells...) }

// FrameDuration returns the seconds each frame is held for.
func (s *Sequence) FrameDuration() float64 { return s.frameDuration }

// Loop reports whether playback wraps past the last frame.
func (s *Sequence) Loop() bool { return s.loop }
