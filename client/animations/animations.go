package animations

type Animation struct {
	// frameCount is the number of frames in the animation.
	frameCount int
	// frameSpeed is the number of updates before the frame index is incremented.
	frameSpeed int
	// loop restarts the animation after the last frame.
	loop bool

	// updateCount is the number of times the animation has been updated.
	updateCount int
	// frameIndex is the current frame index.
	frameIndex int
}

type NewAnimationOptions struct {
	FrameCount int
	FrameSpeed int
	Loop       bool
}

func NewAnimation(opts NewAnimationOptions) *Animation {
	frameCount, frameSpeed := opts.FrameCount, opts.FrameSpeed
	if frameCount < 1 {
		frameCount = 1
	}
	if frameSpeed < 1 {
		frameSpeed = 1
	}
	return &Animation{
		frameCount: frameCount,
		frameSpeed: frameSpeed,
		loop:       opts.Loop,
	}
}

func (a *Animation) Update() {
	if a.Done() {
		return
	}
	a.updateCount++
	frame := a.updateCount / a.frameSpeed
	if a.loop {
		a.frameIndex = frame % a.frameCount
		return
	}
	if frame >= a.frameCount {
		frame = a.frameCount - 1
	}
	a.frameIndex = frame
}

func (a *Animation) Reset() {
	a.updateCount = 0
	a.frameIndex = 0
}

// Frame returns the current frame index.
func (a *Animation) Frame() int {
	return a.frameIndex
}

// Done reports whether a non-looping animation has played its last frame.
func (a *Animation) Done() bool {
	return !a.loop && a.updateCount >= a.frameCount*a.frameSpeed
}

// Progress returns how far through the current cycle the animation is, in [0, 1].
func (a *Animation) Progress() float64 {
	total := a.frameCount * a.frameSpeed
	if a.loop {
		return float64(a.updateCount%total) / float64(total)
	}
	if a.updateCount >= total {
		return 1
	}
	return float64(a.updateCount) / float64(total)
}
