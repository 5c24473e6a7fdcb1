package bag

import "time"

// Cue names a sound effect.
type Cue string

const (
	CueSnap      Cue = "snap"
	CueExplosion Cue = "explosion"
)

// SoundPlayer plays fire-and-forget audio cues.
// Implementations must swallow their own failures.
type SoundPlayer interface {
	PlayCue(cue Cue)
}

// Haptics triggers a best-effort vibration. The pattern alternates between
// vibrating and pausing, starting with a vibration.
type Haptics interface {
	Vibrate(pattern []time.Duration)
}

// Random is the source used to pick phrases. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

type nopSound struct{}

func (nopSound) PlayCue(Cue) {}

type nopHaptics struct{}

func (nopHaptics) Vibrate([]time.Duration) {}
