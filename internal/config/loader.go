package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// UserConfigDir is the per-user directory searched for snake.yaml.
const UserConfigDir = ".tui-snake"

// Load loads the snake configuration.
// Search order: customPath -> ~/.tui-snake/snake.yaml -> ./configs/snake.yaml -> embedded default.
// Files are overlaid on the defaults, so a file only needs the keys it changes.
func Load(customPath string) (SnakeConfig, error) {
	cfg, _, err := LoadWithSource(customPath)
	return cfg, err
}

// LoadWithSource is Load that also reports which file the configuration came
// from ("embedded" for the built-in default).
func LoadWithSource(customPath string) (SnakeConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, cfg.Validate()
		}
	}

	// Use embedded default YAML
	cfg := DefaultSnakeConfig()
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		return DefaultSnakeConfig(), "embedded", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", cfg.Validate()
}

// loadFile reads a YAML file over the default configuration.
func loadFile(path string) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, UserConfigDir, filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}

// Marshal renders the configuration as YAML.
func Marshal(cfg SnakeConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
