package config

import "math"

// DifficultyManager scales enemy stats from the elapsed score or ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Health returns the scaled enemy health.
func (d *DifficultyManager) Health(baseHealth int, score int, ticks int) int {
	level := d.Level(score, ticks)
	return int(math.Round(float64(baseHealth) * (1.0 + level*d.cfg.Scaling.HealthMultiplier)))
}

// Speed returns the scaled enemy speed.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnInterval returns the ticks between spawns, shrinking with difficulty.
func (d *DifficultyManager) SpawnInterval(baseInterval int, score int, ticks int) int {
	level := d.Level(score, ticks)
	result := baseInterval - int(level*float64(d.cfg.Scaling.SpawnReduction))
	if result < 10 { // Keep enemies from stacking on the spawn point
		result = 10
	}
	if result > baseInterval {
		result = baseInterval
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
