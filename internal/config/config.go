// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	Snake      SnakeSettings    `yaml:"snake"`
	Timing     TimingConfig     `yaml:"timing"`
	Colors     ColorsConfig     `yaml:"colors"`
	Sound      SoundConfig      `yaml:"sound"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	Rows      int `yaml:"rows"`
	Cols      int `yaml:"cols"`
	BlockSize int `yaml:"block_size"`
}

// SnakeSettings defines the initial snake.
type SnakeSettings struct {
	InitialLength int `yaml:"initial_length"`
}

// TimingConfig defines how often the snake moves.
type TimingConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // Simulation ticks per snake step
}

// ColorsConfig names palette colors for each element.
type ColorsConfig struct {
	SnakeFg string `yaml:"snake_fg"`
	SnakeBg string `yaml:"snake_bg"`
	Food    string `yaml:"food"`
	HUD     string `yaml:"hud"`
	Border  string `yaml:"border"`
}

// SoundConfig toggles sound cues.
type SoundConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyConfig defines the speed progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed factor at max difficulty
}

// Palette is the resolved set of color attributes used for rendering.
type Palette struct {
	Snake  core.ColorCode
	Food   core.ColorCode
	HUD    core.ColorCode
	Border core.ColorCode
}

// Palette resolves the configured color names.
func (c ColorsConfig) Palette() (Palette, error) {
	names := []string{c.SnakeFg, c.SnakeBg, c.Food, c.HUD, c.Border}
	colors := make([]core.Color, len(names))
	for i, n := range names {
		col, err := core.ParseColor(n)
		if err != nil {
			return Palette{}, fmt.Errorf("config: colors: %w", err)
		}
		colors[i] = col
	}
	bg := colors[1]
	return Palette{
		Snake:  core.NewColorCode(colors[0], bg),
		Food:   core.NewColorCode(colors[2], bg),
		HUD:    core.NewColorCode(colors[3], bg),
		Border: core.NewColorCode(colors[4], bg),
	}, nil
}

// EngineConfig converts the grid and snake settings to an engine configuration.
func (c SnakeConfig) EngineConfig() (engine.Config, error) {
	dims := []struct {
		name string
		v    int
	}{
		{"rows", c.Grid.Rows},
		{"cols", c.Grid.Cols},
		{"block_size", c.Grid.BlockSize},
	}
	for _, d := range dims {
		if d.v <= 0 || d.v > math.MaxUint16 {
			return engine.Config{}, fmt.Errorf("config: grid.%s out of range: %d", d.name, d.v)
		}
	}
	return engine.Config{
		Grid: engine.Grid{
			Rows:      engine.Coord(c.Grid.Rows),
			Cols:      engine.Coord(c.Grid.Cols),
			BlockSize: engine.Coord(c.Grid.BlockSize),
		},
		InitialLength: c.Snake.InitialLength,
	}, nil
}

// Validate checks every section of the configuration.
func (c SnakeConfig) Validate() error {
	ec, err := c.EngineConfig()
	if err != nil {
		return err
	}
	if err := ec.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Timing.MoveEveryTicks < 1 {
		return fmt.Errorf("config: timing.move_every_ticks must be >= 1, got %d", c.Timing.MoveEveryTicks)
	}
	if _, err := c.Colors.Palette(); err != nil {
		return err
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		return fmt.Errorf("config: unknown progression type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is allowed and means
// "leave the configuration alone".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
