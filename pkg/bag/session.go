package bag

import (
	"time"

	"github.com/google/uuid"
)

const (
	// cordTopPercent is where the first cord sits on the bag neck.
	cordTopPercent = 15.0
	// cordSpanPercent is the distance between the first and the last cord.
	cordSpanPercent = 30.0
)

// Cord is one breakable strand of the bag.
type Cord struct {
	// ID is the stable identity of the cord within its session (0..N-1).
	ID int
	// Broken flips to true exactly once.
	Broken bool
	// Word is the phrase shown once the cord has been snapped.
	Word string
	// PositionY is the vertical position of the cord as a percentage of the bag height.
	PositionY float64
}

// Session is one play-through, from cord creation to explosion or restart.
type Session struct {
	// ID identifies the session in logs and owns any deferred callbacks.
	ID string
	// Cords are ordered by ID.
	Cords []Cord
	// PendingCordID is the cord awaiting the mercy check, or -1.
	PendingCordID int
	// CreatedAt is when the cords were generated.
	CreatedAt time.Time
}

func newSession(count int) *Session {
	cords := make([]Cord, count)
	for i := range cords {
		cords[i] = Cord{
			ID:        i,
			PositionY: cordPositionY(i, count),
		}
	}
	return &Session{
		ID:            uuid.NewString(),
		Cords:         cords,
		PendingCordID: -1,
		CreatedAt:     time.Now(),
	}
}

func cordPositionY(id, count int) float64 {
	if count < 2 {
		return cordTopPercent
	}
	return cordTopPercent + (cordSpanPercent/float64(count-1))*float64(id)
}

// cord returns the cord with the given id, or nil.
func (s *Session) cord(id int) *Cord {
	if id < 0 || id >= len(s.Cords) {
		return nil
	}
	return &s.Cords[id]
}

// Unbroken returns the number of cords that are still intact.
func (s *Session) Unbroken() int {
	n := 0
	for _, c := range s.Cords {
		if !c.Broken {
			n++
		}
	}
	return n
}
