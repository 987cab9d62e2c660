package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/defense.yaml
var defaultDefenseYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		World: WorldConfig{Width: 800, Height: 600},
		Ball: BreakoutBall{
			Radius:       10,
			BaseSpeed:    4,
			RowSpeedStep: 0.5,
			StartDX:      4,
			StartDY:      -4,
			StartOffset:  30,
		},
		Paddle: BreakoutPaddle{
			Width:        100,
			Height:       10,
			BottomOffset: 20,
			Speed:        8,
			Reflect:      ReflectAngle,
			MaxAngleDeg:  60,
		},
		Bricks: BreakoutBricks{
			Rows:       5,
			Columns:    9,
			Width:      75,
			Height:     20,
			Padding:    10,
			OffsetTop:  30,
			OffsetLeft: 30,
			Points:     1,
		},
		Gameplay: BreakoutGameplay{
			Lives: 3,
		},
	}
}

// DefaultDefenseConfig returns the default Tower Defense configuration.
func DefaultDefenseConfig() DefenseConfig {
	return DefenseConfig{
		Map: DefenseMap{
			TileSize: 50,
			Rows: []string{
				"..#.........",
				"..########..",
				".........#..",
				".........#..",
				"....######..",
				"....#.......",
				"....########",
				"...........#",
			},
			Waypoints: []Waypoint{
				{X: 2, Y: -1},
				{X: 2, Y: 1},
				{X: 9, Y: 1},
				{X: 9, Y: 4},
				{X: 4, Y: 4},
				{X: 4, Y: 6},
				{X: 11, Y: 6},
				{X: 11, Y: 8},
			},
		},
		Enemy: DefenseEnemy{
			Speed:  2,
			Health: 100,
			Reward: 10,
			Radius: 10,
		},
		Tower: DefenseTower{
			Range:           150,
			FireRate:        60,
			Damage:          25,
			ProjectileSpeed: 5,
			Targeting:       TargetNearest,
		},
		Meter: DefenseMeter{
			Start: 0,
			Cost:  50,
		},
		Waves: DefenseWaves{
			Count:          10,
			Size:           6,
			SpawnInterval:  45,
			Gap:            300,
			HealthGrowth:   0.15,
			FirstWaveDelay: 60,
		},
		Gameplay: DefenseGameplay{
			Lives:         0,
			InitialTowers: []TileSpot{{X: 3, Y: 2}},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 36000, // 10 minutes at 60fps
			},
			Scaling: ScalingConfig{
				HealthMultiplier: 1.0,
				SpeedMultiplier:  0.25,
				SpawnReduction:   15,
			},
		},
	}
}

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{Columns: 36, Rows: 20},
		Snake: SnakeBody{
			StartX:    10,
			StartY:    5,
			Length:    3,
			Direction: DirRight,
			MoveEvery: 4, // 15 moves per second at 60fps
		},
		Food: SnakeFood{Points: 10},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "defense":
		return defaultDefenseYAML
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
