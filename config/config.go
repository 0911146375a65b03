// Package config loads the game settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"sweeper/board"
	"sweeper/stage"
	"sweeper/theme"
)

const DifficultyCustom = "custom"

// Custom sizes the board when Difficulty is "custom".
type Custom struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

type Config struct {
	// beginner, intermediate, expert or custom
	Difficulty string `yaml:"difficulty"`
	Custom     Custom `yaml:"custom,omitempty"`

	// hex encoded, random when empty
	Seed string `yaml:"seed,omitempty"`

	LogLevel string `yaml:"log_level"`

	RingDelayMs         int `yaml:"ring_delay_ms"`
	CelebrationJitterMs int `yaml:"celebration_jitter_ms"`

	// color table overrides, by name
	Colors map[string]string `yaml:"colors,omitempty"`
}

func Default() Config {
	return Config{
		Difficulty:          "beginner",
		LogLevel:            "info",
		RingDelayMs:         int(stage.DefaultRingDelay / time.Millisecond),
		CelebrationJitterMs: int(stage.DefaultCelebrationJitter / time.Millisecond),
	}
}

// Load reads the file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are an error. An empty document yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := c.Params(); err != nil {
		return err
	}
	if _, err := c.GameSeed(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if _, err := c.ColorTable(); err != nil {
		return err
	}
	if c.RingDelayMs <= 0 {
		return fmt.Errorf("ring_delay_ms must be positive, got %d", c.RingDelayMs)
	}
	if c.CelebrationJitterMs < 0 {
		return fmt.Errorf("celebration_jitter_ms must not be negative, got %d", c.CelebrationJitterMs)
	}
	return nil
}

func (c Config) Params() (board.Params, error) {
	if strings.EqualFold(c.Difficulty, DifficultyCustom) {
		params := board.Params{
			Width:     c.Custom.Width,
			Height:    c.Custom.Height,
			MineCount: c.Custom.Mines,
		}
		if err := params.Validate(); err != nil {
			return board.Params{}, fmt.Errorf("custom board: %w", err)
		}
		// the first click and its neighbours are kept clear, fewer than
		// nine tiles on boards under three wide or tall
		opening := min(3, params.Width) * min(3, params.Height)
		if room := params.TileCount() - opening; params.MineCount > room {
			return board.Params{}, fmt.Errorf(
				"custom board: %w: %d mines leave no room for the opening on %s",
				board.ErrInvalidParams, params.MineCount, params)
		}
		return params, nil
	}

	return board.PresetByName(c.Difficulty)
}

// GameSeed returns the configured seed, or a fresh one when unset.
func (c Config) GameSeed() (stage.Seed, error) {
	if c.Seed == "" {
		return stage.NewSeed(), nil
	}
	return stage.ParseSeed(c.Seed)
}

func (c Config) Level() (logrus.Level, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return level, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}

func (c Config) ColorTable() (theme.ColorTable, error) {
	table := theme.DefaultColorTable()
	if err := table.Apply(c.Colors); err != nil {
		return table, fmt.Errorf("colors: %w", err)
	}
	return table, nil
}

// StageConfig builds the controller settings. The seed is drawn anew
// on every call when none is configured.
func (c Config) StageConfig() (stage.Config, error) {
	params, err := c.Params()
	if err != nil {
		return stage.Config{}, err
	}
	seed, err := c.GameSeed()
	if err != nil {
		return stage.Config{}, err
	}

	return stage.Config{
		Params:            params,
		Layout:            stage.DefaultLayout(),
		Seed:              seed,
		RingDelay:         time.Duration(c.RingDelayMs) * time.Millisecond,
		CelebrationJitter: time.Duration(c.CelebrationJitterMs) * time.Millisecond,
	}, nil
}

// Marshal renders the config as YAML, with every color of the
// effective table spelled out.
func (c Config) Marshal() ([]byte, error) {
	table, err := c.ColorTable()
	if err != nil {
		return nil, err
	}
	c.Colors = table.Strings()

	return yaml.Marshal(c)
}
