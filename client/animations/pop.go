package animations

import "math"

// Ticks converts a duration in milliseconds to updates at the given TPS.
func Ticks(ms, tps int) int {
	n := ms * tps / 1000
	if n < 1 {
		return 1
	}
	return n
}

// NewPopInAnimation scales a popup in over the given number of updates.
func NewPopInAnimation(ticks int) *Animation {
	return NewAnimation(NewAnimationOptions{
		FrameCount: ticks,
		FrameSpeed: 1,
	})
}

// PopScale maps the progress of a pop-in to a scale that overshoots a
// little before settling at 1.
func PopScale(progress float64) float64 {
	if progress >= 1 {
		return 1
	}
	const overshoot = 1.70158
	p := progress - 1
	return 1 + p*p*((overshoot+1)*p+overshoot)
}

// NewPulseAnimation loops forever over the given number of updates.
func NewPulseAnimation(ticks int) *Animation {
	return NewAnimation(NewAnimationOptions{
		FrameCount: ticks,
		FrameSpeed: 1,
		Loop:       true,
	})
}

// PulseScale oscillates around 1 by amplitude over one cycle.
func PulseScale(progress, amplitude float64) float64 {
	return 1 + amplitude*math.Sin(progress*2*math.Pi)
}

// Shake returns a horizontal offset that wobbles by amplitude pixels.
func Shake(progress, amplitude float64) float64 {
	return amplitude * math.Sin(progress*6*math.Pi)
}
