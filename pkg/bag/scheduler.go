package bag

import (
	"sort"
	"time"
)

// Scheduler runs one-shot callbacks after a delay.
type Scheduler interface {
	// After schedules fn to run once d has elapsed.
	After(d time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop prevents the callback from running. It returns false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// TickScheduler is a Scheduler driven by the caller's frame loop.
// Callbacks run on the goroutine that calls Advance, so a game loop that
// owns all state never has to synchronize with them.
type TickScheduler struct {
	now     time.Duration
	seq     uint64
	pending []*tickTimer
}

type tickTimer struct {
	s   *TickScheduler
	due time.Duration
	seq uint64
	fn  func()
	// done is set once the timer fired or was stopped.
	done bool
}

var _ Scheduler = &TickScheduler{}

func NewTickScheduler() *TickScheduler {
	return &TickScheduler{}
}

func (s *TickScheduler) After(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &tickTimer{
		s:   s,
		due: s.now + d,
		seq: s.seq,
		fn:  fn,
	}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the scheduler clock forward by dt and runs every callback
// that became due, in due order. While a callback runs the clock reads its
// due time, so callbacks it schedules are timed from that point and run in
// the same call if they are already due.
func (s *TickScheduler) Advance(dt time.Duration) {
	target := s.now
	if dt > 0 {
		target += dt
	}
	for {
		t := s.nextDue(target)
		if t == nil {
			s.now = target
			return
		}
		if t.due > s.now {
			s.now = t.due
		}
		t.done = true
		s.remove(t)
		t.fn()
	}
}

// Now returns the scheduler clock.
func (s *TickScheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of callbacks that have not run yet.
func (s *TickScheduler) Pending() int {
	return len(s.pending)
}

func (s *TickScheduler) nextDue(until time.Duration) *tickTimer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.SliceStable(s.pending, func(i, j int) bool {
		if s.pending[i].due == s.pending[j].due {
			return s.pending[i].seq < s.pending[j].seq
		}
		return s.pending[i].due < s.pending[j].due
	})
	if s.pending[0].due > until {
		return nil
	}
	return s.pending[0]
}

func (s *TickScheduler) remove(t *tickTimer) {
	for i, p := range s.pending {
		if p == t {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return
		}
	}
}

func (t *tickTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.s.remove(t)
	return true
}
