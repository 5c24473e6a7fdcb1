package haptics

import (
	"time"

	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

const magnitude = 1.0

// pulse vibrates the device and every connected gamepad for d.
var pulse = func(d time.Duration) {
	ebiten.Vibrate(&ebiten.VibrateOptions{
		Duration:  d,
		Magnitude: magnitude,
	})
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		ebiten.VibrateGamepad(id, &ebiten.VibrateGamepadOptions{
			Duration:        d,
			StrongMagnitude: magnitude,
			WeakMagnitude:   magnitude,
		})
	}
}

// Vibrator plays a vibration pattern of alternating on and off durations,
// starting with on. Pulses are timed by the scheduler so they follow the
// game clock.
type Vibrator struct {
	scheduler bag.Scheduler
	pending   []bag.Timer
}

var _ bag.Haptics = &Vibrator{}

func NewVibrator(scheduler bag.Scheduler) *Vibrator {
	return &Vibrator{
		scheduler: scheduler,
	}
}

// Vibrate replaces any pattern still playing.
func (v *Vibrator) Vibrate(pattern []time.Duration) {
	v.Stop()
	log.Trace("Vibrating pattern %v", pattern)

	var offset time.Duration
	for i, d := range pattern {
		if i%2 == 0 && d > 0 {
			d := d
			v.pending = append(v.pending, v.scheduler.After(offset, func() {
				pulse(d)
			}))
		}
		offset += d
	}
}

// Stop cancels the pulses that have not started yet.
func (v *Vibrator) Stop() {
	for _, t := range v.pending {
		t.Stop()
	}
	v.pending = nil
}
