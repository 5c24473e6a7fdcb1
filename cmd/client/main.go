package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cbodonnell/patiencebag/client/audio"
	"github.com/cbodonnell/patiencebag/client/game"
	"github.com/cbodonnell/patiencebag/client/haptics"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/config"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/cbodonnell/patiencebag/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	logLevel := flag.String("log-level", "info", "Log level")
	seed := flag.Int64("seed", 0, "Seed for picking phrases (0 uses the clock)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Debug("Using seed %d", *seed)

	sound := audio.NewPlayer(ebitenaudio.NewContext(audio.SampleRate), cfg.Sounds)

	scheduler := bag.NewTickScheduler()
	controller, err := bag.NewController(bag.NewControllerOptions{
		Config:    cfg,
		Random:    rand.New(rand.NewSource(*seed)),
		Scheduler: scheduler,
		Sound:     sound,
		Haptics:   haptics.NewVibrator(scheduler),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create controller: %v", err))
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:      *debug,
		Controller: controller,
		Scheduler:  scheduler,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("堪忍袋の緒")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(*fullscreen)
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
