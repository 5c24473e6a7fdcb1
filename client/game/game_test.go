package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/cbodonnell/patiencebag/client/scenes"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	cfg, err := config.Default()
	require.NoError(t, err)

	scheduler := bag.NewTickScheduler()
	controller, err := bag.NewController(bag.NewControllerOptions{
		Config:    cfg,
		Random:    rand.New(rand.NewSource(1)),
		Scheduler: scheduler,
	})
	require.NoError(t, err)

	g, err := NewGame(NewGameOptions{
		Controller: controller,
		Scheduler:  scheduler,
	})
	require.NoError(t, err)
	return g
}

func TestNewGame_RequiresController(t *testing.T) {
	_, err := NewGame(NewGameOptions{Scheduler: bag.NewTickScheduler()})
	assert.Error(t, err)
}

func TestGame_SceneFollowsSession(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, GameModeStart, g.mode)
	assert.IsType(t, &scenes.StartScene{}, g.scene)

	g.events.Enqueue(bag.Choose(3))
	require.NoError(t, g.applyEvents())
	assert.Equal(t, GameModePlay, g.mode)
	require.IsType(t, &scenes.PlayScene{}, g.scene)
	first := g.sessionID()
	assert.NotEmpty(t, first)

	g.events.Enqueue(bag.ClickCord(0))
	g.events.Enqueue(bag.ClickCord(1))
	g.events.Enqueue(bag.ClickCord(2))
	g.events.Enqueue(bag.DenyMercy())
	require.NoError(t, g.applyEvents())
	assert.Equal(t, first, g.sessionID())

	g.scheduler.Advance(600 * time.Millisecond)
	require.NoError(t, g.applyEvents())
	assert.Equal(t, bag.PhaseExploded, g.controller.Phase())

	g.events.Enqueue(bag.Reset())
	require.NoError(t, g.applyEvents())
	assert.Equal(t, GameModeStart, g.mode)
	assert.Empty(t, g.sessionID())

	g.events.Enqueue(bag.Choose(4))
	require.NoError(t, g.applyEvents())
	assert.NotEqual(t, first, g.sessionID())
}

func TestGame_RejectedEventsAreIgnored(t *testing.T) {
	g := newTestGame(t)

	g.events.Enqueue(bag.ClickCord(0))
	g.events.Enqueue(bag.Choose(99))
	require.NoError(t, g.applyEvents())
	assert.Equal(t, GameModeStart, g.mode)
	assert.Equal(t, bag.PhaseStart, g.controller.Phase())
}

func TestGameMode_String(t *testing.T) {
	assert.Equal(t, "Start", GameModeStart.String())
	assert.Equal(t, "Play", GameModePlay.String())
	assert.Equal(t, "Unknown", GameMode(9).String())
}

func TestGame_SceneChangeDropsQueuedInput(t *testing.T) {
	g := newTestGame(t)
	g.events.Enqueue(bag.ClickCord(0))
	require.Equal(t, 1, g.events.Size())

	require.NoError(t, g.loadStart())
	assert.Equal(t, 0, g.events.Size())
	assert.Empty(t, g.sessionID())
}
