package anim

// FrameFunc runs when playback lands on the frame it was registered for.
type FrameFunc func(a *Animation, frame int)

// Animation plays one Sequence against caller-supplied delta time. It is a
// plain state machine over {Stopped, Playing, Paused}: every transport
// operation is total, so no invalid state is reachable through the public
// API. Animations are not safe for concurrent use; they are driven from a
// single tick context.
type Animation struct {
	seq        *Sequence
	frame      int
	elapsed    float64
	state      State
	frameFuncs map[int][]FrameFunc
}

// NewAnimation wraps seq in a stopped Animation cued at frame zero.
func NewAnimation(seq *Sequence) *Animation {
	return &Animation{seq: seq}
}

// Sequence returns the wrapped Sequence.
func (a *Animation) Sequence() *Sequence { return a.seq }

// Frame returns the current frame index.
func (a *Animation) Frame() int { return a.frame }

// Elapsed returns the time accumulated since the last frame advance. It is
// always in [0, FrameDuration).
func (a *Animation) Elapsed() float64 { return a.elapsed }

// State returns the playback state.
func (a *Animation) State() State { return a.state }

// CurrentCell returns the atlas cell the current frame maps to.
func (a *Animation) CurrentCell() int { return a.seq.Cell(a.frame) }

// OnFrame registers fn to run whenever playback lands on frame, including
// every intermediate frame crossed during a large Update delta.
func (a *Animation) OnFrame(frame int, fn FrameFunc) {
	if frame < 0 || fn == nil {
		return
	}
	if a.frameFuncs == nil {
		a.frameFuncs = make(map[int][]FrameFunc)
	}
	a.frameFuncs[frame] = append(a.frameFuncs[frame], fn)
}

// Play starts playback. From Stopped it rewinds to frame zero; from Paused
// it resumes in place; while Playing it is a no-op.
func (a *Animation) Play() {
	switch a.state {
	case Stopped:
		a.frame = 0
		a.elapsed = 0
		a.state = Playing
	case Paused:
		a.state = Playing
	}
}

// PlayAt cues playback at the given frame, clamping out-of-range indices
// into [0, Len-1], and starts playing regardless of prior state.
func (a *Animation) PlayAt(frame int) {
	a.seek(frame)
	a.state = Playing
}

// Pause freezes a playing Animation in place. From other states it is a
// no-op.
func (a *Animation) Pause() {
	if a.state == Playing {
		a.state = Paused
	}
}

// Resume continues a paused Animation where it left off. From other states
// it is a no-op.
func (a *Animation) Resume() {
	if a.state == Paused {
		a.state = Playing
	}
}

// Stop halts playback and rewinds to frame zero.
func (a *Animation) Stop() {
	a.state = Stopped
	a.frame = 0
	a.elapsed = 0
}

// NextFrame manually steps forward one frame with wraparound. The playback
// state is left alone; the frame timer restarts.
func (a *Animation) NextFrame() {
	a.elapsed = 0
	a.setFrame((a.frame + 1) % a.seq.Len())
}

// PrevFrame manually steps back one frame with wraparound.
func (a *Animation) PrevFrame() {
	n := a.seq.Len()
	a.elapsed = 0
	a.setFrame((a.frame - 1 + n) % n)
}

// seek cues the clamped frame without touching the playback state.
func (a *Animation) seek(frame int) {
	a.elapsed = 0
	a.setFrame(clampFrame(frame, a.seq.Len()))
}

// Update advances playback by dt seconds and reports whether the frame
// index changed. Only a playing Animation advances. Frame counting is
// exact: every frame boundary within dt is crossed, so a large dt advances
// multiple frames. A non-looping Animation that would advance past its last
// frame clamps there and stops.
func (a *Animation) Update(dt float64) bool {
	if a.state != Playing || dt <= 0 {
		return false
	}
	start := a.frame
	a.elapsed += dt
	d := a.seq.FrameDuration()
	n := a.seq.Len()
	for a.elapsed >= d {
		a.elapsed -= d
		if a.frame == n-1 {
			if !a.seq.Loop() {
				a.frame = n - 1
				a.elapsed = 0
				a.state = Stopped
				break
			}
			a.setFrame(0)
		} else {
			a.setFrame(a.frame + 1)
		}
	}
	return a.frame != start
}

func (a *Animation) setFrame(frame int) {
	if frame == a.frame {
		return
	}
	a.frame = frame
	for _, fn := range a.frameFuncs[frame] {
		fn(a, frame)
	}
}

func clampFrame(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
