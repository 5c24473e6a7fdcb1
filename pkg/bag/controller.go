package bag

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/patiencebag/pkg/config"
	"github.com/cbodonnell/patiencebag/pkg/log"
)

var (
	// ErrWrongPhase is returned when an operation is attempted in a phase that does not accept it.
	ErrWrongPhase = errors.New("operation not allowed in current phase")
	// ErrCountNotAllowed is returned when the chosen cord count is not configured.
	ErrCountNotAllowed = errors.New("cord count not allowed")
	// ErrUnknownCord is returned when a cord id does not exist in the session.
	ErrUnknownCord = errors.New("unknown cord")
	// ErrCordBroken is returned when a cord that is already broken is clicked.
	ErrCordBroken = errors.New("cord already broken")
)

// Controller owns the session and applies every phase transition.
// It is not safe for concurrent use; all calls, including the callbacks run
// by its Scheduler, must happen on the same goroutine.
type Controller struct {
	cfg       *config.Config
	random    Random
	scheduler Scheduler
	sound     SoundPlayer
	haptics   Haptics

	phase   Phase
	session *Session
	// fuse is the deferred explosion of the current session, if burning.
	fuse Timer
}

// NewControllerOptions contains options for creating a new Controller.
type NewControllerOptions struct {
	// Config holds the allowed cord counts, phrases and timings.
	Config *config.Config
	// Random picks the phrase of each snapped cord.
	Random Random
	// Scheduler runs the deferred explosion.
	Scheduler Scheduler
	// Sound plays audio cues. Optional.
	Sound SoundPlayer
	// Haptics plays the explosion vibration. Optional.
	Haptics Haptics
}

func NewController(opts NewControllerOptions) (*Controller, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	if opts.Random == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("scheduler is required")
	}

	c := &Controller{
		cfg:       opts.Config,
		random:    opts.Random,
		scheduler: opts.Scheduler,
		sound:     opts.Sound,
		haptics:   opts.Haptics,
		phase:     PhaseStart,
	}
	if c.sound == nil {
		c.sound = nopSound{}
	}
	if c.haptics == nil {
		c.haptics = nopHaptics{}
	}

	return c, nil
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Choose starts a new session with count cords.
func (c *Controller) Choose(count int) error {
	if c.phase != PhaseStart {
		return fmt.Errorf("choose %d in phase %s: %w", count, c.phase, ErrWrongPhase)
	}
	if !c.cfg.AllowsDifficulty(count) {
		return fmt.Errorf("choose %d: %w", count, ErrCountNotAllowed)
	}

	c.session = newSession(count)
	c.setPhase(PhasePlaying)
	log.Info("Session %s started with %d cords at %s", c.session.ID, count, c.session.CreatedAt.Format(time.RFC3339))
	return nil
}

// ClickCord snaps the cord with the given id, unless it is the last intact
// cord, in which case the mercy check is opened instead.
func (c *Controller) ClickCord(id int) error {
	if c.phase != PhasePlaying || c.fuse != nil {
		return fmt.Errorf("click cord %d in phase %s: %w", id, c.phase, ErrWrongPhase)
	}
	cord := c.session.cord(id)
	if cord == nil {
		return fmt.Errorf("click cord %d: %w", id, ErrUnknownCord)
	}
	if cord.Broken {
		return fmt.Errorf("click cord %d: %w", id, ErrCordBroken)
	}

	if c.session.Unbroken() == 1 {
		c.session.PendingCordID = id
		c.setPhase(PhaseMercyCheck)
		return nil
	}

	c.snap(id, 0)
	return nil
}

// ResolveMercy answers the mercy check. Granting mercy discards the session;
// refusing it snaps the last cord and lights the fuse.
func (c *Controller) ResolveMercy(grant bool) error {
	if c.phase != PhaseMercyCheck {
		return fmt.Errorf("resolve mercy in phase %s: %w", c.phase, ErrWrongPhase)
	}

	pending := c.session.PendingCordID
	c.session.PendingCordID = -1

	if grant {
		log.Debug("Session %s: mercy granted", c.session.ID)
		c.discard()
		return nil
	}

	log.Debug("Session %s: mercy refused for cord %d", c.session.ID, pending)
	c.setPhase(PhasePlaying)
	c.snap(pending, c.cfg.ExplosionDelay)
	return nil
}

// Reset returns to the start screen after an explosion.
func (c *Controller) Reset() error {
	if c.phase != PhaseExploded {
		return fmt.Errorf("reset in phase %s: %w", c.phase, ErrWrongPhase)
	}
	c.discard()
	return nil
}

// Abandon drops the current session from any phase and returns to the
// start screen. A burning fuse is put out.
func (c *Controller) Abandon() error {
	if c.phase == PhaseStart {
		return fmt.Errorf("abandon in phase %s: %w", c.phase, ErrWrongPhase)
	}
	log.Debug("Session %s abandoned", c.session.ID)
	c.discard()
	return nil
}

// snap breaks the cord and then checks whether the bag should explode,
// either right away or once fuse has elapsed.
func (c *Controller) snap(id int, fuse time.Duration) {
	cord := c.session.cord(id)
	if cord == nil || cord.Broken {
		return
	}

	cord.Word = c.cfg.Words[c.random.Intn(len(c.cfg.Words))]
	cord.Broken = true
	log.Trace("Session %s: cord %d snapped: %s", c.session.ID, id, cord.Word)
	c.sound.PlayCue(CueSnap)

	c.settle(fuse)
}

func (c *Controller) settle(fuse time.Duration) {
	if c.session.Unbroken() > 0 || c.fuse != nil {
		return
	}
	if fuse <= 0 {
		c.explode()
		return
	}

	sessionID := c.session.ID
	c.fuse = c.scheduler.After(fuse, func() {
		if c.session == nil || c.session.ID != sessionID {
			return
		}
		c.fuse = nil
		c.explode()
	})
}

func (c *Controller) explode() {
	if c.phase == PhaseExploded {
		return
	}
	c.setPhase(PhaseExploded)
	log.Info("Session %s exploded", c.session.ID)
	c.sound.PlayCue(CueExplosion)
	pattern := make([]time.Duration, len(c.cfg.HapticPattern))
	copy(pattern, c.cfg.HapticPattern)
	c.haptics.Vibrate(pattern)
}

func (c *Controller) discard() {
	if c.fuse != nil {
		c.fuse.Stop()
		c.fuse = nil
	}
	c.session = nil
	c.setPhase(PhaseStart)
}

func (c *Controller) setPhase(p Phase) {
	if c.phase == p {
		return
	}
	log.Debug("Phase %s -> %s", c.phase, p)
	c.phase = p
}
