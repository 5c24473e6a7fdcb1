package game

import (
	"fmt"
	"time"

	"github.com/cbodonnell/patiencebag/client/input"
	"github.com/cbodonnell/patiencebag/client/objects"
	"github.com/cbodonnell/patiencebag/client/scenes"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/cbodonnell/patiencebag/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// controller owns the session and its phase.
	controller *bag.Controller
	// scheduler runs the deferred explosion and haptic pulses. It is
	// advanced once per update.
	scheduler *bag.TickScheduler
	// events collects the input of the scenes until the controller applies it.
	events queue.Queue[bag.Event]
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type GameMode int

const (
	GameModeStart GameMode = iota
	GameModePlay
)

func (m GameMode) String() string {
	switch m {
	case GameModeStart:
		return "Start"
	case GameModePlay:
		return "Play"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug      bool
	Controller *bag.Controller
	Scheduler  *bag.TickScheduler
	// Events is optional; a new in-memory queue is used when nil.
	Events queue.Queue[bag.Event]
}

func NewGame(opts NewGameOptions) (*Game, error) {
	if opts.Controller == nil {
		return nil, fmt.Errorf("controller is required")
	}
	if opts.Scheduler == nil {
		return nil, fmt.Errorf("scheduler is required")
	}
	events := opts.Events
	if events == nil {
		events = queue.NewInMemoryQueue[bag.Event](queue.DefaultBufferSize)
	}

	g := &Game{
		debug:      opts.Debug,
		controller: opts.Controller,
		scheduler:  opts.Scheduler,
		events:     events,
	}

	if err := g.loadStart(); err != nil {
		return nil, fmt.Errorf("failed to load start scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}
	// input aimed at the previous scene no longer applies
	g.events.Clear()

	return nil
}

func (g *Game) loadStart() error {
	view := g.controller.View()
	start, err := scenes.NewStartScene(scenes.StartSceneOptions{
		Events:       g.events,
		Difficulties: view.Difficulties,
	})
	if err != nil {
		return fmt.Errorf("failed to create start scene: %v", err)
	}
	if err := g.SetScene(start); err != nil {
		return fmt.Errorf("failed to set start scene: %v", err)
	}
	g.mode = GameModeStart
	return nil
}

func (g *Game) loadPlay(view bag.View) error {
	play, err := scenes.NewPlayScene(scenes.PlaySceneOptions{
		Events:       g.events,
		View:         view,
		ScreenWidth:  DefaultScreenWidth,
		ScreenHeight: DefaultScreenHeight,
		TPS:          ebiten.TPS(),
	})
	if err != nil {
		return fmt.Errorf("failed to create play scene: %v", err)
	}
	if err := g.SetScene(play); err != nil {
		return fmt.Errorf("failed to set play scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) Update() error {
	g.scheduler.Advance(time.Second / time.Duration(ebiten.TPS()))

	// Handle input
	if g.mode == GameModePlay && input.IsNegativeJustPressed() {
		g.events.Enqueue(bag.Abandon())
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return g.applyEvents()
}

// applyEvents hands the queued input to the controller and brings the
// scene up to date with the result.
func (g *Game) applyEvents() error {
	for _, e := range g.events.ReadAll() {
		if err := g.controller.Dispatch(e); err != nil {
			// late clicks and double presses are expected
			log.Debug("Ignored %s event: %v", e.Kind, err)
		}
	}
	return g.syncScene()
}

func (g *Game) syncScene() error {
	view := g.controller.View()
	switch {
	case view.SessionID == "" && g.mode != GameModeStart:
		if err := g.loadStart(); err != nil {
			return fmt.Errorf("failed to load start scene: %v", err)
		}
	case view.SessionID != "" && view.SessionID != g.sessionID():
		if err := g.loadPlay(view); err != nil {
			return fmt.Errorf("failed to load play scene: %v", err)
		}
	}

	if err := g.scene.Sync(view); err != nil {
		return fmt.Errorf("failed to sync scene: %v", err)
	}
	return nil
}

// sessionID returns the session the current scene shows, if any.
func (g *Game) sessionID() string {
	if play, ok := g.scene.(*scenes.PlayScene); ok {
		return play.SessionID()
	}
	return ""
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(objects.ColorBackground)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	view := g.controller.View()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Phase: %s", view.Phase))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Timers: %d  Queued: %d", g.scheduler.Pending(), g.events.Size()))

	if view.SessionID == "" {
		return
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Session: %s", view.SessionID))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Unbroken: %d/%d", view.Unbroken(), len(view.Cords)))
}

const (
	DefaultScreenWidth  = 480
	DefaultScreenHeight = 800
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}
