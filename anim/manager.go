// Package anim drives per-entity sprite animation over a shared texture
// atlas. A Sequence names an ordered list of atlas cell indices with timing
// metadata, an Animation plays one Sequence against delta time, and a
// Manager owns an entity's Animations, forwards transport commands to the
// current one, and pushes the active cell back to the entity each tick.
//
// Everything here is single-threaded and tick-driven: exactly one caller
// invokes Manager.Update once per logical frame, and transport commands are
// issued from the same tick context. Nothing blocks or runs in the
// background, so the package does no locking of its own.
package anim

import "fmt"

// Host is the owning entity's view of the player: it receives the active
// atlas cell index whenever the displayed frame changes.
type Host interface {
	SetCell(index int)
}

// Atlas is the externally owned texture atlas the manager reads sequences
// and cell geometry from. Append mutates the atlas's shared sequence
// collection, a side effect visible to every manager reading the same
// atlas; callers sharing an atlas across goroutines must serialize access
// themselves.
type Atlas interface {
	CellCount() int
	Sequences() []*Sequence
	Append(seq *Sequence)
}

// Updatable is the tick capability a host schedules each frame.
type Updatable interface {
	Update()
}

// Destroyable is the teardown capability a host invokes when it is
// destroyed.
type Destroyable interface {
	Destroy()
}

var (
	_ Updatable   = (*Manager)(nil)
	_ Destroyable = (*Manager)(nil)
)

// Manager is the animation façade one visual entity owns. It keeps a
// name-keyed registry of Animations over one atlas, tracks the single
// current Animation, and propagates the displayed cell to the host. Only
// the current Animation's playback state is meaningful; the others stay
// stopped.
type Manager struct {
	host  Host
	atlas Atlas
	clock Clock

	animations  *registry
	current     *Animation
	currentName string
	destroyed   bool
}

// NewManager builds a manager bound to one host entity and one atlas,
// wrapping every sequence already defined on the atlas. If none of them is
// named "default", a non-looping sequence spanning every atlas cell is
// synthesized under that name. The default sequence becomes current, and
// its first cell is pushed to the host.
func NewManager(host Host, atlas Atlas, clock Clock) (*Manager, error) {
	if host == nil {
		return nil, fmt.Errorf("anim: manager requires a host")
	}
	if atlas == nil {
		return nil, fmt.Errorf("anim: manager requires an atlas")
	}
	if clock == nil {
		return nil, fmt.Errorf("anim: manager requires a clock")
	}

	m := &Manager{
		host:       host,
		atlas:      atlas,
		clock:      clock,
		animations: newRegistry(),
	}
	for _, seq := range atlas.Sequences() {
		m.animations.put(seq.Name(), NewAnimation(seq))
	}
	if _, ok := m.animations.get(DefaultSequenceName); !ok {
		cells := make([]int, atlas.CellCount())
		for i := range cells {
			cells[i] = i
		}
		seq, err := NewSequence(DefaultSequenceName, cells, DefaultFrameDuration, false)
		if err != nil {
			return nil, fmt.Errorf("anim: synthesize default sequence: %w", err)
		}
		m.animations.put(DefaultSequenceName, NewAnimation(seq))
	}
	cur, _ := m.animations.get(DefaultSequenceName)
	m.current = cur
	m.currentName = DefaultSequenceName
	m.syncCell()
	return m, nil
}

// Add authors a new Sequence, appends it to the atlas's shared sequence
// collection, and registers an Animation for it. With play set, the new
// Animation becomes current and starts playing.
func (m *Manager) Add(name string, cells []int, frameDuration float64, loop, play bool) (*Animation, error) {
	if m.destroyed {
		return nil, fmt.Errorf("anim: manager is destroyed")
	}
	seq, err := NewSequence(name, cells, frameDuration, loop)
	if err != nil {
		return nil, err
	}
	m.atlas.Append(seq)
	return m.CreateFromSequence(seq, play), nil
}

// CreateFromSequence registers an Animation wrapping seq, stopping and
// replacing any Animation already registered under the same name. With play
// set, the Animation becomes current and starts playing.
func (m *Manager) CreateFromSequence(seq *Sequence, play bool) *Animation {
	if m.destroyed || seq == nil {
		return nil
	}
	a := NewAnimation(seq)
	m.animations.put(seq.Name(), a)
	if m.currentName == seq.Name() {
		m.current = a
	}
	if play {
		m.SwitchTo(ByName(seq.Name()), PlayStart)
	}
	return a
}

// Play switches to the named Animation and starts it from the beginning (or
// resumes it, if it is the paused current one). An empty name targets the
// current Animation. Reports whether the name was found.
func (m *Manager) Play(name string) bool {
	if m.destroyed {
		return false
	}
	if name == "" {
		name = m.currentName
	}
	return m.SwitchTo(ByName(name), PlayStart)
}

// PlayAt switches to the named Animation and starts it at the given frame,
// clamped into range. An empty name targets the current Animation.
func (m *Manager) PlayAt(index int, name string) bool {
	if m.destroyed {
		return false
	}
	if name == "" {
		name = m.currentName
	}
	if !m.selectByName(name) {
		return false
	}
	m.current.PlayAt(index)
	m.syncCell()
	return true
}

// Stop halts the current Animation and rewinds it to its first frame.
func (m *Manager) Stop() {
	if m.destroyed || m.current == nil {
		return
	}
	m.current.Stop()
	m.syncCell()
}

// Pause freezes the current Animation in place.
func (m *Manager) Pause() {
	if m.destroyed || m.current == nil {
		return
	}
	m.current.Pause()
}

// Resume continues the current Animation if it is paused.
func (m *Manager) Resume() {
	if m.destroyed || m.current == nil {
		return
	}
	m.current.Resume()
}

// SwitchTo resolves sel and applies policy. Selecting a name stops the
// previously current Animation before handing over; selecting a name that
// is not registered reports false and changes nothing. Selecting a frame
// index seeks the current Animation, clamping out-of-range values. The
// policy then decides playback: PlayStart plays, PlayStop stops what was
// playing, and PlayKeep carries the previous playing state over.
func (m *Manager) SwitchTo(sel Selector, policy PlayPolicy) bool {
	if m.destroyed || m.current == nil {
		return false
	}
	wasPlaying := m.current.State() == Playing
	switch sel.kind {
	case selectByName:
		if !m.selectByName(sel.name) {
			return false
		}
	case selectByIndex:
		m.current.seek(sel.index)
	}
	switch policy {
	case PlayStart:
		m.current.Play()
	case PlayKeep:
		if wasPlaying {
			m.current.Play()
		}
	case PlayStop:
		if wasPlaying {
			m.current.Stop()
		}
	}
	m.syncCell()
	return true
}

// NextFrame manually steps the current Animation forward one frame and
// refreshes the host's displayed cell.
func (m *Manager) NextFrame() {
	if m.destroyed || m.current == nil {
		return
	}
	m.current.NextFrame()
	m.syncCell()
}

// PrevFrame manually steps the current Animation back one frame and
// refreshes the host's displayed cell.
func (m *Manager) PrevFrame() {
	if m.destroyed || m.current == nil {
		return
	}
	m.current.PrevFrame()
	m.syncCell()
}

// Get looks up a registered Animation by name. An absent name is an
// expected authoring condition, reported through ok.
func (m *Manager) Get(name string) (*Animation, bool) {
	if m.destroyed {
		return nil, false
	}
	return m.animations.get(name)
}

// Names returns the registered Animation names in registration order.
func (m *Manager) Names() []string {
	if m.destroyed {
		return nil
	}
	return m.animations.names()
}

// CurrentName returns the name of the current Animation.
func (m *Manager) CurrentName() string { return m.currentName }

// Update ticks the current Animation with the clock's delta and writes the
// resulting cell to the host only when the displayed frame changed. The
// clock is read every tick so wall-time clocks don't accumulate pauses.
func (m *Manager) Update() {
	if m.destroyed || m.current == nil {
		return
	}
	dt := m.clock.DeltaTime()
	if m.current.State() != Playing {
		return
	}
	if m.current.Update(dt) {
		m.syncCell()
	}
}

// IsPlaying reports whether the current Animation is playing.
func (m *Manager) IsPlaying() bool {
	return !m.destroyed && m.current != nil && m.current.State() == Playing
}

// CurrentCell returns the atlas cell the current Animation displays, or
// zero after Destroy.
func (m *Manager) CurrentCell() int {
	if m.destroyed || m.current == nil {
		return 0
	}
	return m.current.CurrentCell()
}

// FrameIndex returns the current Animation's frame index.
func (m *Manager) FrameIndex() int {
	if m.destroyed || m.current == nil {
		return 0
	}
	return m.current.Frame()
}

// Length returns the cell count of the current Animation's Sequence.
func (m *Manager) Length() int {
	if m.destroyed || m.current == nil {
		return 0
	}
	return m.current.Sequence().Len()
}

// Destroy stops playback, releases every Animation along with the atlas and
// host references, and leaves the manager inert. Calling it again is a safe
// no-op.
func (m *Manager) Destroy() {
	if m.destroyed {
		return
	}
	m.animations.clear()
	m.current = nil
	m.currentName = ""
	m.atlas = nil
	m.host = nil
	m.clock = nil
	m.destroyed = true
}

func (m *Manager) selectByName(name string) bool {
	if name == m.currentName {
		return true
	}
	next, ok := m.animations.get(name)
	if !ok {
		return false
	}
	m.current.Stop()
	m.current = next
	m.currentName = name
	return true
}

func (m *Manager) syncCell() {
	if m.host != nil && m.current != nil {
		m.host.SetCell(m.current.CurrentCell())
	}
}
