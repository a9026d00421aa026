package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Rows:      20,
			Cols:      40,
			BlockSize: 1,
		},
		Snake: SnakeSettings{
			InitialLength: 10,
		},
		Timing: TimingConfig{
			MoveEveryTicks: 6, // 10 steps per second at 60 FPS
		},
		Colors: ColorsConfig{
			SnakeFg: "light_green",
			SnakeBg: "black",
			Food:    "red",
			HUD:     "white",
			Border:  "dark_gray",
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
