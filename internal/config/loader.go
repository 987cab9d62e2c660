package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := load(customPath, "breakout.yaml", defaultBreakoutYAML, DefaultBreakoutConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateBreakout(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefense loads Tower Defense configuration.
// Search order: customPath -> ~/.arcade/configs/defense.yaml -> ./configs/defense.yaml -> embedded default
func LoadDefense(customPath string) (DefenseConfig, error) {
	cfg, err := load(customPath, "defense.yaml", defaultDefenseYAML, DefaultDefenseConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateDefense(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSnake loads Snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, err := load(customPath, "snake.yaml", defaultSnakeYAML, DefaultSnakeConfig)
	if err != nil {
		return cfg, err
	}
	if err := ValidateSnake(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load resolves a config file along the search order. Files are decoded on
// top of the hardcoded defaults so partial YAML files only override what
// they mention.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	candidate := defaults()
	if err := yaml.Unmarshal(embedded, &candidate); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return candidate, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Breakout has no progression; presets only change the starting rules.
// The paddle is scaled from the loaded width, and easy never grows it past
// half the world.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = max(cfg.Paddle.Width, min(cfg.Paddle.Width*1.4, cfg.World.Width/2))
		cfg.Ball.BaseSpeed = 3
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width *= 0.7
		cfg.Ball.BaseSpeed = 5
	}
}

// ApplyDefensePreset modifies the config based on a difficulty preset.
func ApplyDefensePreset(cfg *DefenseConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	switch preset {
	case DifficultyEasy:
		cfg.Meter.Start = cfg.Meter.Cost
	case DifficultyHard:
		cfg.Enemy.Reward = max(1, cfg.Enemy.Reward*3/4)
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Only the pace changes.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Snake.MoveEvery = cfg.Snake.MoveEvery * 3 / 2
	case DifficultyHard:
		cfg.Snake.MoveEvery = max(1, cfg.Snake.MoveEvery*2/3)
	}
}
