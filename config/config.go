// Package config loads the optional star-rating YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/star-rating/animation"
	"github.com/lixenwraith/star-rating/rating"
	"github.com/lixenwraith/star-rating/widget"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config represents the star-rating.yaml file
type Config struct {
	InitialValue int             `yaml:"initial_value"`
	DragNotify   string          `yaml:"drag_notify"`
	Colors       ColorConfig     `yaml:"colors"`
	Terminal     TerminalConfig  `yaml:"terminal"`
	Animation    AnimationConfig `yaml:"animation"`
	Audio        AudioConfig     `yaml:"audio"`
	Log          LogConfig       `yaml:"log"`
	LogEvents    []string        `yaml:"log_events,omitempty"`
}

// ColorConfig holds tcell colour names or #rrggbb values
type ColorConfig struct {
	Active   string `yaml:"active"`
	Inactive string `yaml:"inactive"`
}

// TerminalConfig places the widget on the cell grid
type TerminalConfig struct {
	OriginX    int     `yaml:"origin_x"`
	OriginY    int     `yaml:"origin_y"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// AnimationConfig controls the selection flare
type AnimationConfig struct {
	Scale  float64       `yaml:"scale"`
	Grow   time.Duration `yaml:"grow"`
	Shrink time.Duration `yaml:"shrink"`
}

// AudioConfig controls the selection chime
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// LogConfig controls the debug log file
type LogConfig struct {
	Debug      bool   `yaml:"debug"`
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		InitialValue: 1,
		DragNotify:   "on_change",
		Colors: ColorConfig{
			Active:   "gold",
			Inactive: "gray",
		},
		Terminal: TerminalConfig{
			OriginX:    2,
			OriginY:    2,
			CellWidth:  rating.SymbolMargin,
			CellHeight: rating.SymbolDimension,
		},
		Animation: AnimationConfig{
			Scale:  animation.DefaultFlare.Scale,
			Grow:   animation.DefaultFlare.Grow,
			Shrink: animation.DefaultFlare.Shrink,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Log: LogConfig{
			Dir:        "logs",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// LoadOptional reads path over the defaults; a missing file yields defaults
func LoadOptional(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	var problems []string

	if c.InitialValue < 1 || c.InitialValue > rating.SymbolCount {
		problems = append(problems, fmt.Sprintf("initial_value %d outside 1..%d", c.InitialValue, rating.SymbolCount))
	}
	if _, ok := widget.ParseNotifyPolicy(c.DragNotify); !ok {
		problems = append(problems, fmt.Sprintf("drag_notify %q (want on_change or every_tick)", c.DragNotify))
	}
	if tcell.GetColor(c.Colors.Active) == tcell.ColorDefault {
		problems = append(problems, fmt.Sprintf("colors.active %q is not a colour", c.Colors.Active))
	}
	if tcell.GetColor(c.Colors.Inactive) == tcell.ColorDefault {
		problems = append(problems, fmt.Sprintf("colors.inactive %q is not a colour", c.Colors.Inactive))
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		problems = append(problems, "terminal cell size must be positive")
	}
	if c.Terminal.OriginX < 0 || c.Terminal.OriginY < 2 {
		problems = append(problems, "terminal origin must leave two rows for the title")
	}
	if c.Animation.Scale < 1 {
		problems = append(problems, fmt.Sprintf("animation.scale %v below 1", c.Animation.Scale))
	}
	if c.Animation.Grow < 0 || c.Animation.Shrink < 0 {
		problems = append(problems, "animation durations must not be negative")
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		problems = append(problems, fmt.Sprintf("audio.volume %v outside 0..1", c.Audio.Volume))
	}
	if c.Log.MaxSizeMB <= 0 {
		problems = append(problems, "log.max_size_mb must be positive")
	}
	for _, name := range c.LogEvents {
		if _, ok := eventName(name); !ok {
			problems = append(problems, fmt.Sprintf("log_events: unknown notification %q", name))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
