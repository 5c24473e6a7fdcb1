package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// MinCords is the smallest cord count that leaves room for a mercy check.
const MinCords = 2

// Config holds the load-time constants of the game.
type Config struct {
	// Difficulties are the cord counts the player can choose from.
	Difficulties []int `yaml:"difficulties"`
	// Words are the phrases shown when a cord is snapped.
	Words []string `yaml:"words"`
	// Sounds are the audio files played for each cue.
	Sounds Sounds `yaml:"sounds"`
	// ExplosionDelay is the pause between the final snap and the explosion
	// when mercy is refused.
	ExplosionDelay time.Duration `yaml:"explosionDelay"`
	// HapticPattern alternates vibration and pause durations.
	HapticPattern []time.Duration `yaml:"hapticPattern"`
}

// Sounds maps cues to file paths. An empty path means the cue is silent.
type Sounds struct {
	Snap      string `yaml:"snap"`
	Explosion string `yaml:"explosion"`
}

// ValidationError lists every problem found in a configuration.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s", strings.Join(e.Problems, "; "))
}

// Default returns the built-in configuration.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultYAML, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %v", err)
	}
	return cfg, nil
}

// Load reads the configuration file at path on top of the defaults.
// Keys missing from the file keep their default value. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the game cannot be played with.
func (c *Config) Validate() error {
	var problems []string

	if len(c.Difficulties) == 0 {
		problems = append(problems, "at least one difficulty is required")
	}
	seen := make(map[int]bool, len(c.Difficulties))
	for _, n := range c.Difficulties {
		if n < MinCords {
			problems = append(problems, fmt.Sprintf("difficulty %d is below the minimum of %d cords", n, MinCords))
		}
		if seen[n] {
			problems = append(problems, fmt.Sprintf("difficulty %d is listed more than once", n))
		}
		seen[n] = true
	}

	if len(c.Words) == 0 {
		problems = append(problems, "at least one word is required")
	}
	for i, w := range c.Words {
		if strings.TrimSpace(w) == "" {
			problems = append(problems, fmt.Sprintf("word %d is blank", i))
		}
	}

	if c.ExplosionDelay < 0 {
		problems = append(problems, "explosion delay must not be negative")
	}
	for i, d := range c.HapticPattern {
		if d < 0 {
			problems = append(problems, fmt.Sprintf("haptic pattern step %d must not be negative", i))
		}
	}

	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// AllowsDifficulty reports whether count is one of the configured cord counts.
func (c *Config) AllowsDifficulty(count int) bool {
	for _, n := range c.Difficulties {
		if n == count {
			return true
		}
	}
	return false
}
