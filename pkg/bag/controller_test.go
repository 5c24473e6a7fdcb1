package bag_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	mocks "github.com/cbodonnell/patiencebag/mocks/github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/config"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDelay = 600 * time.Millisecond

var testPattern = []time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 200 * time.Millisecond}

func testConfig() *config.Config {
	return &config.Config{
		Difficulties:   []int{3, 4, 5},
		Words:          []string{"チッ", "は？", "虚無", "寝ろ", "大丈夫"},
		ExplosionDelay: testDelay,
		HapticPattern:  testPattern,
	}
}

// recorder collects every side effect in order.
type recorder struct {
	cues     []bag.Cue
	patterns [][]time.Duration
}

func (r *recorder) PlayCue(cue bag.Cue) { r.cues = append(r.cues, cue) }

func (r *recorder) Vibrate(pattern []time.Duration) { r.patterns = append(r.patterns, pattern) }

func (r *recorder) count(cue bag.Cue) int {
	n := 0
	for _, c := range r.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type harness struct {
	c         *bag.Controller
	scheduler *bag.TickScheduler
	rec       *recorder
}

func newHarness(t *testing.T, cfg *config.Config, seed int64) *harness {
	t.Helper()
	rec := &recorder{}
	scheduler := bag.NewTickScheduler()
	c, err := bag.NewController(bag.NewControllerOptions{
		Config:    cfg,
		Random:    rand.New(rand.NewSource(seed)),
		Scheduler: scheduler,
		Sound:     rec,
		Haptics:   rec,
	})
	require.NoError(t, err)
	return &harness{c: c, scheduler: scheduler, rec: rec}
}

// assertInvariants checks the session rules that must hold after every transition.
func assertInvariants(t *testing.T, v bag.View) {
	t.Helper()

	allBroken := len(v.Cords) > 0 && v.Unbroken() == 0
	if !v.Fusing {
		assert.Equal(t, allBroken, v.Phase == bag.PhaseExploded, "exploded iff all cords broken")
	} else {
		assert.True(t, allBroken, "fuse only burns once every cord is broken")
		assert.Equal(t, bag.PhasePlaying, v.Phase)
	}

	assert.Equal(t, v.Phase == bag.PhaseMercyCheck, v.ShowMercy)
	if v.ShowMercy {
		require.True(t, v.MercyCordID >= 0 && v.MercyCordID < len(v.Cords))
		assert.False(t, v.Cords[v.MercyCordID].Broken, "pending cord must be intact")
	} else {
		assert.Equal(t, -1, v.MercyCordID)
	}

	assert.Equal(t, v.Phase == bag.PhaseStart, v.SessionID == "")
	assert.Equal(t, v.Phase == bag.PhaseExploded, v.ShowPlayAgain)

	for i, c := range v.Cords {
		assert.Equal(t, i, c.ID)
		assert.Equal(t, c.Broken, c.Word != "", "word is set exactly when broken")
	}
}

func TestNewController(t *testing.T) {
	valid := testConfig()
	tests := []struct {
		name    string
		opts    bag.NewControllerOptions
		wantErr bool
	}{
		{
			name: "valid",
			opts: bag.NewControllerOptions{Config: valid, Random: rand.New(rand.NewSource(1)), Scheduler: bag.NewTickScheduler()},
		},
		{
			name:    "missing config",
			opts:    bag.NewControllerOptions{Random: rand.New(rand.NewSource(1)), Scheduler: bag.NewTickScheduler()},
			wantErr: true,
		},
		{
			name:    "degenerate config",
			opts:    bag.NewControllerOptions{Config: &config.Config{Difficulties: []int{1}}, Random: rand.New(rand.NewSource(1)), Scheduler: bag.NewTickScheduler()},
			wantErr: true,
		},
		{
			name:    "missing random",
			opts:    bag.NewControllerOptions{Config: valid, Scheduler: bag.NewTickScheduler()},
			wantErr: true,
		},
		{
			name:    "missing scheduler",
			opts:    bag.NewControllerOptions{Config: valid, Random: rand.New(rand.NewSource(1))},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := bag.NewController(tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, bag.PhaseStart, c.Phase())
			assertInvariants(t, c.View())
		})
	}
}

func TestController_ChooseCreatesFreshCords(t *testing.T) {
	for _, n := range testConfig().Difficulties {
		h := newHarness(t, testConfig(), 1)
		require.NoError(t, h.c.Choose(n))

		v := h.c.View()
		assert.Equal(t, bag.PhasePlaying, v.Phase)
		require.Len(t, v.Cords, n)
		for i, c := range v.Cords {
			assert.Equal(t, i, c.ID)
			assert.False(t, c.Broken)
			assert.Empty(t, c.Word)
		}
		assertInvariants(t, v)
	}
}

func TestController_LastCordAlwaysAsksForMercy(t *testing.T) {
	for _, n := range testConfig().Difficulties {
		for last := 0; last < n; last++ {
			h := newHarness(t, testConfig(), int64(n*10+last))
			require.NoError(t, h.c.Choose(n))
			for id := 0; id < n; id++ {
				if id == last {
					continue
				}
				require.NoError(t, h.c.ClickCord(id))
				assertInvariants(t, h.c.View())
			}

			require.NoError(t, h.c.ClickCord(last))
			v := h.c.View()
			assert.Equal(t, bag.PhaseMercyCheck, v.Phase, "n=%d last=%d", n, last)
			assert.Equal(t, last, v.MercyCordID)
			assert.False(t, v.Cords[last].Broken)
			assert.Equal(t, n-1, h.rec.count(bag.CueSnap))
			assertInvariants(t, v)
		}
	}
}

func TestController_DenyMercyScenario(t *testing.T) {
	sound := mocks.NewSoundPlayer(t)
	haptics := mocks.NewHaptics(t)
	scheduler := bag.NewTickScheduler()
	cfg := testConfig()
	c, err := bag.NewController(bag.NewControllerOptions{
		Config:    cfg,
		Random:    rand.New(rand.NewSource(7)),
		Scheduler: scheduler,
		Sound:     sound,
		Haptics:   haptics,
	})
	require.NoError(t, err)

	sound.EXPECT().PlayCue(bag.CueSnap).Times(3)
	sound.EXPECT().PlayCue(bag.CueExplosion).Once()
	haptics.EXPECT().Vibrate(testPattern).Once()

	require.NoError(t, c.Choose(3))
	require.NoError(t, c.ClickCord(0))
	require.NoError(t, c.ClickCord(1))
	assert.Equal(t, 1, c.View().Unbroken())

	require.NoError(t, c.ClickCord(2))
	v := c.View()
	assert.Equal(t, bag.PhaseMercyCheck, v.Phase)
	assert.Equal(t, 2, v.MercyCordID)

	require.NoError(t, c.ResolveMercy(false))
	v = c.View()
	assert.True(t, v.Cords[2].Broken)
	assert.Contains(t, cfg.Words, v.Cords[2].Word)
	assert.Equal(t, bag.PhasePlaying, v.Phase)
	assert.True(t, v.Fusing)
	assertInvariants(t, v)

	// clicks during the fuse are rejected
	assert.ErrorIs(t, c.ClickCord(2), bag.ErrWrongPhase)

	scheduler.Advance(testDelay - time.Millisecond)
	assert.Equal(t, bag.PhasePlaying, c.Phase())

	scheduler.Advance(time.Millisecond)
	v = c.View()
	assert.Equal(t, bag.PhaseExploded, v.Phase)
	assert.False(t, v.Fusing)
	assert.True(t, v.ShowPlayAgain)
	assertInvariants(t, v)

	// nothing else may fire
	scheduler.Advance(10 * time.Second)
	assert.Equal(t, bag.PhaseExploded, c.Phase())
	assert.Equal(t, 0, scheduler.Pending())
}

func TestController_GrantMercyScenario(t *testing.T) {
	h := newHarness(t, testConfig(), 3)

	require.NoError(t, h.c.Choose(3))
	require.NoError(t, h.c.ClickCord(0))
	require.NoError(t, h.c.ClickCord(1))
	require.NoError(t, h.c.ClickCord(2))
	previous := h.c.View().SessionID

	require.NoError(t, h.c.ResolveMercy(true))
	v := h.c.View()
	assert.Equal(t, bag.PhaseStart, v.Phase)
	assert.Empty(t, v.Cords)
	assertInvariants(t, v)
	assert.Equal(t, 0, h.rec.count(bag.CueExplosion))
	assert.Empty(t, h.rec.patterns)

	require.NoError(t, h.c.Choose(4))
	v = h.c.View()
	assert.NotEqual(t, previous, v.SessionID)
	require.Len(t, v.Cords, 4)
	for i, c := range v.Cords {
		assert.Equal(t, i, c.ID)
		assert.False(t, c.Broken)
		assert.Empty(t, c.Word)
	}
	assertInvariants(t, v)
}

func TestController_ResetAfterExplosion(t *testing.T) {
	h := newHarness(t, testConfig(), 5)
	require.NoError(t, h.c.Choose(3))
	for _, id := range []int{2, 0, 1} {
		require.NoError(t, h.c.ClickCord(id))
	}
	require.NoError(t, h.c.ResolveMercy(false))
	h.scheduler.Advance(testDelay)
	require.Equal(t, bag.PhaseExploded, h.c.Phase())
	assert.Equal(t, [][]time.Duration{testPattern}, h.rec.patterns)
	assert.Equal(t, []bag.Cue{bag.CueSnap, bag.CueSnap, bag.CueSnap, bag.CueExplosion}, h.rec.cues)

	require.NoError(t, h.c.Reset())
	assert.Equal(t, bag.PhaseStart, h.c.Phase())
	assertInvariants(t, h.c.View())
}

func TestController_ZeroDelayExplodesImmediately(t *testing.T) {
	cfg := testConfig()
	cfg.ExplosionDelay = 0
	h := newHarness(t, cfg, 1)

	require.NoError(t, h.c.Choose(3))
	require.NoError(t, h.c.ClickCord(0))
	require.NoError(t, h.c.ClickCord(1))
	require.NoError(t, h.c.ClickCord(2))
	require.NoError(t, h.c.ResolveMercy(false))

	v := h.c.View()
	assert.Equal(t, bag.PhaseExploded, v.Phase)
	assert.False(t, v.Fusing)
	assert.Equal(t, 1, h.rec.count(bag.CueExplosion))
	assertInvariants(t, v)
}

func TestController_SnapIsIdempotent(t *testing.T) {
	h := newHarness(t, testConfig(), 11)
	require.NoError(t, h.c.Choose(4))
	require.NoError(t, h.c.ClickCord(1))
	before := h.c.View()

	err := h.c.ClickCord(1)
	assert.ErrorIs(t, err, bag.ErrCordBroken)

	after := h.c.View()
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("View() changed after clicking a broken cord (-before +after):\n%s", diff)
	}
	assert.Equal(t, 1, h.rec.count(bag.CueSnap))
	assert.Equal(t, 0, h.rec.count(bag.CueExplosion))
}

func TestController_RejectsContractViolations(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *bag.Controller)
		op      func(c *bag.Controller) error
		wantErr error
	}{
		{
			name:    "choose a count that is not configured",
			setup:   func(c *bag.Controller) {},
			op:      func(c *bag.Controller) error { return c.Choose(7) },
			wantErr: bag.ErrCountNotAllowed,
		},
		{
			name:    "choose while playing",
			setup:   func(c *bag.Controller) { _ = c.Choose(3) },
			op:      func(c *bag.Controller) error { return c.Choose(4) },
			wantErr: bag.ErrWrongPhase,
		},
		{
			name:    "click on the start screen",
			setup:   func(c *bag.Controller) {},
			op:      func(c *bag.Controller) error { return c.ClickCord(0) },
			wantErr: bag.ErrWrongPhase,
		},
		{
			name:    "click an unknown cord",
			setup:   func(c *bag.Controller) { _ = c.Choose(3) },
			op:      func(c *bag.Controller) error { return c.ClickCord(3) },
			wantErr: bag.ErrUnknownCord,
		},
		{
			name:    "click a negative cord id",
			setup:   func(c *bag.Controller) { _ = c.Choose(3) },
			op:      func(c *bag.Controller) error { return c.ClickCord(-1) },
			wantErr: bag.ErrUnknownCord,
		},
		{
			name: "click during the mercy check",
			setup: func(c *bag.Controller) {
				_ = c.Choose(3)
				_ = c.ClickCord(0)
				_ = c.ClickCord(1)
				_ = c.ClickCord(2)
			},
			op:      func(c *bag.Controller) error { return c.ClickCord(2) },
			wantErr: bag.ErrWrongPhase,
		},
		{
			name:    "resolve mercy while playing",
			setup:   func(c *bag.Controller) { _ = c.Choose(3) },
			op:      func(c *bag.Controller) error { return c.ResolveMercy(false) },
			wantErr: bag.ErrWrongPhase,
		},
		{
			name:    "reset while playing",
			setup:   func(c *bag.Controller) { _ = c.Choose(3) },
			op:      func(c *bag.Controller) error { return c.Reset() },
			wantErr: bag.ErrWrongPhase,
		},
		{
			name:    "abandon on the start screen",
			setup:   func(c *bag.Controller) {},
			op:      func(c *bag.Controller) error { return c.Abandon() },
			wantErr: bag.ErrWrongPhase,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testConfig(), 1)
			tt.setup(h.c)
			before := h.c.View()
			cues := len(h.rec.cues)

			err := tt.op(h.c)
			assert.ErrorIs(t, err, tt.wantErr)

			if diff := cmp.Diff(before, h.c.View()); diff != "" {
				t.Errorf("View() changed after a rejected operation (-before +after):\n%s", diff)
			}
			assert.Len(t, h.rec.cues, cues)
			assertInvariants(t, h.c.View())
		})
	}
}

func TestController_AbandonDuringFuseLeavesNextSessionAlone(t *testing.T) {
	h := newHarness(t, testConfig(), 9)
	require.NoError(t, h.c.Choose(3))
	require.NoError(t, h.c.ClickCord(0))
	require.NoError(t, h.c.ClickCord(1))
	require.NoError(t, h.c.ClickCord(2))
	require.NoError(t, h.c.ResolveMercy(false))
	require.True(t, h.c.View().Fusing)

	require.NoError(t, h.c.Abandon())
	assert.Equal(t, 0, h.scheduler.Pending())

	require.NoError(t, h.c.Choose(3))
	h.scheduler.Advance(10 * testDelay)

	v := h.c.View()
	assert.Equal(t, bag.PhasePlaying, v.Phase)
	assert.Equal(t, 3, v.Unbroken())
	assert.Equal(t, 0, h.rec.count(bag.CueExplosion))
	assertInvariants(t, v)
}

// stubbornScheduler hands out timers that cannot be stopped.
type stubbornScheduler struct {
	*bag.TickScheduler
}

type stubbornTimer struct{}

func (stubbornTimer) Stop() bool { return false }

func (s stubbornScheduler) After(d time.Duration, fn func()) bag.Timer {
	s.TickScheduler.After(d, fn)
	return stubbornTimer{}
}

func TestController_StaleFuseIgnoredByNewSession(t *testing.T) {
	rec := &recorder{}
	scheduler := stubbornScheduler{TickScheduler: bag.NewTickScheduler()}
	c, err := bag.NewController(bag.NewControllerOptions{
		Config:    testConfig(),
		Random:    rand.New(rand.NewSource(2)),
		Scheduler: scheduler,
		Sound:     rec,
		Haptics:   rec,
	})
	require.NoError(t, err)

	require.NoError(t, c.Choose(3))
	require.NoError(t, c.ClickCord(0))
	require.NoError(t, c.ClickCord(1))
	require.NoError(t, c.ClickCord(2))
	require.NoError(t, c.ResolveMercy(false))
	require.NoError(t, c.Abandon())
	require.NoError(t, c.Choose(4))

	scheduler.Advance(testDelay)

	v := c.View()
	assert.Equal(t, bag.PhasePlaying, v.Phase)
	assert.Len(t, v.Cords, 4)
	assert.Equal(t, 0, rec.count(bag.CueExplosion))
	assertInvariants(t, v)
}

func TestController_SameSeedSameWords(t *testing.T) {
	play := func() []string {
		h := newHarness(t, testConfig(), 1234)
		require.NoError(t, h.c.Choose(5))
		for id := 0; id < 4; id++ {
			require.NoError(t, h.c.ClickCord(id))
		}
		var words []string
		for _, c := range h.c.View().Cords[:4] {
			words = append(words, c.Word)
		}
		return words
	}

	assert.Equal(t, play(), play())
}

func TestController_EveryWordReachable(t *testing.T) {
	cfg := testConfig()
	h := newHarness(t, cfg, 42)
	seen := map[string]int{}

	for round := 0; round < 200; round++ {
		require.NoError(t, h.c.Choose(3))
		require.NoError(t, h.c.ClickCord(0))
		require.NoError(t, h.c.ClickCord(1))
		require.NoError(t, h.c.ClickCord(2))
		require.NoError(t, h.c.ResolveMercy(false))
		h.scheduler.Advance(testDelay)
		for _, c := range h.c.View().Cords {
			seen[c.Word]++
		}
		require.NoError(t, h.c.Reset())
	}

	for _, w := range cfg.Words {
		assert.Greater(t, seen[w], 0, "word %q never drawn", w)
	}
	assert.Len(t, seen, len(cfg.Words))
	assert.Equal(t, 200, h.rec.count(bag.CueExplosion))
}

func TestController_Dispatch(t *testing.T) {
	h := newHarness(t, testConfig(), 8)
	events := []bag.Event{
		bag.Choose(3),
		bag.ClickCord(1),
		bag.ClickCord(0),
		bag.ClickCord(2),
		bag.DenyMercy(),
	}
	for _, e := range events {
		require.NoError(t, h.c.Dispatch(e), e.Kind.String())
		assertInvariants(t, h.c.View())
	}

	h.scheduler.Advance(testDelay)
	require.NoError(t, h.c.Dispatch(bag.Reset()))
	require.NoError(t, h.c.Dispatch(bag.Choose(5)))
	require.NoError(t, h.c.Dispatch(bag.Abandon()))
	assert.Equal(t, bag.PhaseStart, h.c.Phase())

	assert.ErrorIs(t, h.c.Dispatch(bag.GrantMercy()), bag.ErrWrongPhase)
	assert.Error(t, h.c.Dispatch(bag.Event{Kind: bag.EventKind(99)}))
}

func TestView_DoesNotAlias(t *testing.T) {
	h := newHarness(t, testConfig(), 1)
	require.NoError(t, h.c.Choose(3))

	v := h.c.View()
	v.Cords[0].Broken = true
	v.Difficulties[0] = 99

	fresh := h.c.View()
	assert.False(t, fresh.Cords[0].Broken)
	assert.Equal(t, 3, fresh.Difficulties[0])
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Start", bag.PhaseStart.String())
	assert.Equal(t, "Playing", bag.PhasePlaying.String())
	assert.Equal(t, "Mercy Check", bag.PhaseMercyCheck.String())
	assert.Equal(t, "Exploded", bag.PhaseExploded.String())
	assert.Equal(t, "Unknown", bag.Phase(42).String())
}

func TestController_ChooseLogsSessionStart(t *testing.T) {
	buf := &bytes.Buffer{}
	log.SetDefaultLogger(log.New(buf, "", 0, log.LogLevelInfo))
	t.Cleanup(func() {
		log.SetDefaultLogger(log.New(os.Stdout, "", log.DefaultLoggerFlag, log.LogLevelInfo))
	})

	h := newHarness(t, testConfig(), 1)
	before := time.Now().Truncate(time.Second)
	require.NoError(t, h.c.Choose(3))
	after := time.Now()

	var entry struct {
		Level string `json:"level"`
		Msg   string `json:"msg"`
	}
	line, err := buf.ReadString('\n')
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "info", entry.Level)

	prefix := fmt.Sprintf("Session %s started with 3 cords at ", h.c.View().SessionID)
	require.True(t, strings.HasPrefix(entry.Msg, prefix), entry.Msg)
	createdAt, err := time.Parse(time.RFC3339, strings.TrimPrefix(entry.Msg, prefix))
	require.NoError(t, err)
	assert.False(t, createdAt.Before(before))
	assert.False(t, createdAt.After(after))
}
