package bag

// Phase is the stage of the game that governs which inputs are accepted.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseMercyCheck
	PhaseExploded
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhaseMercyCheck:
		return "Mercy Check"
	case PhaseExploded:
		return "Exploded"
	}
	return "Unknown"
}
