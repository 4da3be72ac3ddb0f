package trplot

// Playback tracks the displayed frame of an Animation.
type Playback struct {
	Anim   *Animation
	Frame  int
	Paused bool
}

// Seek moves to frame and reports whether it changed.
func (p *Playback) Seek(frame int) bool {
	if frame == p.Frame {
		return false
	}
	p.Frame = frame
	return true
}

// Tick advances one frame unless paused, looping at the end.
func (p *Playback) Tick() bool {
	if p.Paused {
		return false
	}
	return p.Seek(p.Anim.NextFrame(p.Frame))
}

// Step moves delta frames in either direction, wrapping around.
func (p *Playback) Step(delta int) bool {
	n := p.Anim.FrameCount()
	if n == 0 {
		return false
	}
	return p.Seek(((p.Frame+delta)%n + n) % n)
}

// Progress is the fraction of the animation shown so far, including the current frame.
func (p *Playback) Progress() float64 {
	n := p.Anim.FrameCount()
	if n == 0 {
		return 0
	}
	return float64(p.Frame+1) / float64(n)
}
