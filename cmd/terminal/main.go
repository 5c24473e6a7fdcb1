package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/cbodonnell/patiencebag/client/terminal"
	"github.com/cbodonnell/patiencebag/pkg/bag"
	"github.com/cbodonnell/patiencebag/pkg/config"
	"github.com/cbodonnell/patiencebag/pkg/log"
	"github.com/cbodonnell/patiencebag/pkg/version"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	configPath string
	logLevel   string
	logFile    string
	seed       int64
)

var rootCmd = &cobra.Command{
	Use:     "patiencebag",
	Short:   "Snap the cords of the patience bag in your terminal",
	Version: version.Get(),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "log level")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file (logs are discarded when empty)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "seed for picking phrases (0 uses the clock)")
}

func run() error {
	parsedLogLevel, err := log.ParseLogLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}

	// the terminal belongs to the UI, so logs only go to a file
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %v", err)
		}
		defer f.Close()
		out = f
	}
	log.SetDefaultLogger(log.New(out, "", log.DefaultLoggerFlag, parsedLogLevel))
	log.Info("Starting terminal client version %s", version.Get())

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scheduler := bag.NewTickScheduler()
	controller, err := bag.NewController(bag.NewControllerOptions{
		Config:    cfg,
		Random:    rand.New(rand.NewSource(seed)),
		Scheduler: scheduler,
		Sound:     terminal.NewBell(os.Stderr),
	})
	if err != nil {
		return fmt.Errorf("failed to create controller: %v", err)
	}

	model, err := terminal.NewModel(terminal.NewModelOptions{
		Controller: controller,
		Scheduler:  scheduler,
	})
	if err != nil {
		return fmt.Errorf("failed to create model: %v", err)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("failed to run terminal client: %v", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
