package bag

// View is a snapshot of everything a renderer needs.
type View struct {
	// SessionID is empty on the start screen.
	SessionID string
	Phase     Phase
	// Cords are copies ordered by ID.
	Cords []Cord
	// ShowMercy is true while the mercy prompt is displayed for MercyCordID.
	ShowMercy   bool
	MercyCordID int
	// Fusing is true between the last snap and the deferred explosion.
	Fusing bool
	// ShowPlayAgain is true once the bag has exploded.
	ShowPlayAgain bool
	// Difficulties are the cord counts offered on the start screen.
	Difficulties []int
}

// View returns the current state for rendering. The result does not alias
// the controller's state.
func (c *Controller) View() View {
	v := View{
		Phase:         c.phase,
		MercyCordID:   -1,
		Fusing:        c.fuse != nil,
		ShowPlayAgain: c.phase == PhaseExploded,
		Difficulties:  append([]int(nil), c.cfg.Difficulties...),
	}
	if c.session == nil {
		return v
	}

	v.SessionID = c.session.ID
	v.Cords = append([]Cord(nil), c.session.Cords...)
	if c.phase == PhaseMercyCheck {
		v.ShowMercy = true
		v.MercyCordID = c.session.PendingCordID
	}
	return v
}

// Unbroken returns the number of intact cords in the view.
func (v View) Unbroken() int {
	n := 0
	for _, c := range v.Cords {
		if !c.Broken {
			n++
		}
	}
	return n
}
