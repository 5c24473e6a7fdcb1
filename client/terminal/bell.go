package terminal

import (
	"io"

	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/log"
)

// Bell rings the terminal bell for each cue.
type Bell struct {
	out io.Writer
}

var _ bag.SoundPlayer = &Bell{}

func NewBell(out io.Writer) *Bell {
	return &Bell{out: out}
}

func (b *Bell) PlayCue(cue bag.Cue) {
	rings := "\a"
	if cue == bag.CueExplosion {
		rings = "\a\a\a"
	}
	if _, err := io.WriteString(b.out, rings); err != nil {
		log.Warn("Failed to ring bell for %s: %v", cue, err)
	}
}
