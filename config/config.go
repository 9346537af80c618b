package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultLEDCount is used for zones missing from LEDCounts
const DefaultLEDCount = 10

// MaxTrackMinutes bounds TrackMinutes so the timeline length fits an int
const MaxTrackMinutes = 1_000_000

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// RunConfig sets how a zone's timeline is cut into runs. All values are in
// timeline units (see TrackMinutes).
type RunConfig struct {
	FrameLength int `json:"frameLength" yaml:"frameLength"`
	BodyRun     int `json:"bodyRun" yaml:"bodyRun"`
	EffectsMin  int `json:"effectsMin" yaml:"effectsMin"`
	EffectsMax  int `json:"effectsMax" yaml:"effectsMax"` // exclusive
}

// Config is the main configuration structure
type Config struct {
	LEDCounts map[string]int `json:"ledCounts" yaml:"ledCounts"`

	// Costume editor file whose leds_count values override LEDCounts
	CostumeFile string `json:"costumeFile,omitempty" yaml:"costumeFile,omitempty"`

	// Timeline length is TrackMinutes*60 units. The default of 30000 gives
	// 1800000 units, thirty minutes when players read the unit as
	// milliseconds.
	TrackMinutes float64 `json:"trackMinutes" yaml:"trackMinutes"`

	Runs        RunConfig `json:"runs" yaml:"runs"`
	CurrentTime int       `json:"currentTime" yaml:"currentTime"`

	MusicFile  string `json:"musicFile" yaml:"musicFile"`
	OutputFile string `json:"outputFile" yaml:"outputFile"`

	// Optional .gpl files replacing the built-in palettes
	StartPalette string `json:"startPalette,omitempty" yaml:"startPalette,omitempty"`
	EndPalette   string `json:"endPalette,omitempty" yaml:"endPalette,omitempty"`

	Seed  uint64 `json:"seed,omitempty" yaml:"seed,omitempty"` // 0 = random
	Debug bool   `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		LEDCounts: map[string]int{
			"head_front":       10,
			"head_back":        10,
			"body_front":       5,
			"body_back":        5,
			"left_hand_front":  10,
			"left_hand_back":   10,
			"right_hand_front": 10,
			"right_hand_back":  10,
			"left_leg_front":   8,
			"left_leg_back":    8,
			"right_leg_front":  8,
			"right_leg_back":   8,
		},
		TrackMinutes: 30000,
		Runs: RunConfig{
			FrameLength: 500,
			BodyRun:     5000,
			EffectsMin:  3000,
			EffectsMax:  6000,
		},
		CurrentTime: 10,
		MusicFile:   "music.mp3",
		OutputFile:  "led_sequences.json",
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-costume"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cfg, err
}

// LoadFile reads a JSON or YAML (.yaml/.yml) config. Fields the file leaves
// out keep their defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	// an explicit ledCounts map replaces the defaults rather than merging
	cfg.LEDCounts = nil

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if cfg.LEDCounts == nil {
		cfg.LEDCounts = DefaultConfig().LEDCounts
	}
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// LEDCount returns the configured LED count for a zone
func (c *Config) LEDCount(zone string) int {
	if n, ok := c.LEDCounts[zone]; ok {
		return n
	}
	return DefaultLEDCount
}

// Validate reports every problem at once
func (c *Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if !(c.TrackMinutes > 0) || c.TrackMinutes > MaxTrackMinutes {
		fail("trackMinutes must be in (0, %d], got %v", MaxTrackMinutes, c.TrackMinutes)
	}
	for zone, n := range c.LEDCounts {
		if n < 0 {
			fail("ledCounts[%s] must be >= 0, got %d", zone, n)
		}
	}

	r := c.Runs
	if r.FrameLength <= 0 {
		fail("runs.frameLength must be > 0, got %d", r.FrameLength)
	} else {
		if r.BodyRun < r.FrameLength {
			fail("runs.bodyRun (%d) must be at least one frame (%d)", r.BodyRun, r.FrameLength)
		}
		if r.EffectsMin < r.FrameLength {
			fail("runs.effectsMin (%d) must be at least one frame (%d)", r.EffectsMin, r.FrameLength)
		}
	}
	if r.EffectsMax <= r.EffectsMin {
		fail("runs.effectsMax (%d) must be > effectsMin (%d)", r.EffectsMax, r.EffectsMin)
	}

	if c.MusicFile == "" {
		fail("musicFile is empty")
	}
	if c.OutputFile == "" {
		fail("outputFile is empty")
	}

	return errors.Join(errs...)
}
