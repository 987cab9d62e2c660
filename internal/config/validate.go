package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Paddle reflection policies.
const (
	ReflectAngle  = "angle"
	ReflectInvert = "invert"
)

// Snake headings.
const (
	DirUp    = "up"
	DirDown  = "down"
	DirLeft  = "left"
	DirRight = "right"
)

// Tower targeting policies.
const (
	TargetNearest = "nearest"
	TargetWeakest = "weakest"
)

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// ValidateBreakout checks a Breakout config for values the simulation
// cannot run with.
func ValidateBreakout(cfg BreakoutConfig) error {
	switch {
	case cfg.World.Width <= 0 || cfg.World.Height <= 0:
		return invalid("world", "size must be positive, got %gx%g", cfg.World.Width, cfg.World.Height)
	case cfg.Ball.Radius <= 0:
		return invalid("ball.radius", "must be positive, got %g", cfg.Ball.Radius)
	case cfg.Ball.BaseSpeed <= 0:
		return invalid("ball.base_speed", "must be positive, got %g", cfg.Ball.BaseSpeed)
	case cfg.Ball.StartDX == 0 && cfg.Ball.StartDY == 0:
		return invalid("ball.start_dx/start_dy", "start velocity cannot be zero")
	case cfg.Paddle.Width <= 0 || cfg.Paddle.Width >= cfg.World.Width:
		return invalid("paddle.width", "must be in (0, %g), got %g", cfg.World.Width, cfg.Paddle.Width)
	case cfg.Paddle.Reflect != ReflectAngle && cfg.Paddle.Reflect != ReflectInvert:
		return invalid("paddle.reflect", "must be %q or %q, got %q", ReflectAngle, ReflectInvert, cfg.Paddle.Reflect)
	case cfg.Paddle.MaxAngleDeg <= 0 || cfg.Paddle.MaxAngleDeg >= 90:
		return invalid("paddle.max_angle_deg", "must be in (0, 90), got %g", cfg.Paddle.MaxAngleDeg)
	case len(cfg.Bricks.Layout) == 0 && (cfg.Bricks.Rows <= 0 || cfg.Bricks.Columns <= 0):
		return invalid("bricks", "grid must have rows and columns, got %dx%d", cfg.Bricks.Rows, cfg.Bricks.Columns)
	case len(cfg.Bricks.Layout) > 0 && !hasBrick(cfg.Bricks.Layout):
		return invalid("bricks.layout", "layout has no bricks; use digits 1-9")
	case cfg.Bricks.Width <= 0 || cfg.Bricks.Height <= 0:
		return invalid("bricks", "brick size must be positive")
	case cfg.Gameplay.Lives <= 0:
		return invalid("gameplay.lives", "must be positive, got %d", cfg.Gameplay.Lives)
	}
	return nil
}

// hasBrick reports whether any layout cell holds a health digit.
func hasBrick(layout []string) bool {
	for _, line := range layout {
		if strings.ContainsAny(line, "123456789") {
			return true
		}
	}
	return false
}

// ValidateDefense checks a Tower Defense config for values the simulation
// cannot run with.
func ValidateDefense(cfg DefenseConfig) error {
	if cfg.Map.TileSize <= 0 {
		return invalid("map.tile_size", "must be positive, got %g", cfg.Map.TileSize)
	}
	if len(cfg.Map.Rows) == 0 {
		return invalid("map.rows", "map is empty")
	}
	width := len(cfg.Map.Rows[0])
	for i, row := range cfg.Map.Rows {
		if len(row) != width {
			return invalid("map.rows", "row %d has width %d, expected %d", i, len(row), width)
		}
	}
	if len(cfg.Map.Waypoints) < 2 {
		return invalid("map.waypoints", "need at least 2 waypoints, got %d", len(cfg.Map.Waypoints))
	}

	switch {
	case cfg.Enemy.Speed <= 0:
		return invalid("enemy.speed", "must be positive, got %g", cfg.Enemy.Speed)
	case cfg.Enemy.Health <= 0:
		return invalid("enemy.health", "must be positive, got %d", cfg.Enemy.Health)
	case cfg.Enemy.Reward < 0:
		return invalid("enemy.reward", "cannot be negative, got %d", cfg.Enemy.Reward)
	case cfg.Tower.Range <= 0:
		return invalid("tower.range", "must be positive, got %g", cfg.Tower.Range)
	case cfg.Tower.FireRate <= 0:
		return invalid("tower.fire_rate", "must be positive, got %d", cfg.Tower.FireRate)
	case cfg.Tower.ProjectileSpeed <= 0:
		return invalid("tower.projectile_speed", "must be positive, got %g", cfg.Tower.ProjectileSpeed)
	case cfg.Tower.Targeting != TargetNearest && cfg.Tower.Targeting != TargetWeakest:
		return invalid("tower.targeting", "must be %q or %q, got %q", TargetNearest, TargetWeakest, cfg.Tower.Targeting)
	case cfg.Meter.Cost <= 0:
		return invalid("meter.cost", "must be positive, got %d", cfg.Meter.Cost)
	case cfg.Waves.Count < 0 || cfg.Waves.Size < 0:
		return invalid("waves", "count and size cannot be negative")
	case cfg.Waves.SpawnInterval <= 0:
		return invalid("waves.spawn_interval", "must be positive, got %d", cfg.Waves.SpawnInterval)
	case cfg.Gameplay.Lives < 0:
		return invalid("gameplay.lives", "cannot be negative, got %d", cfg.Gameplay.Lives)
	}
	return nil
}

// ValidateSnake checks a Snake config for values the simulation cannot run
// with. The starting body trails behind the head, away from the heading, and
// must fit on the grid.
func ValidateSnake(cfg SnakeConfig) error {
	g, b := cfg.Grid, cfg.Snake
	switch {
	case g.Columns < 4 || g.Rows < 4:
		return invalid("grid", "need at least 4x4 cells, got %dx%d", g.Columns, g.Rows)
	case b.Length < 1:
		return invalid("snake.length", "must be positive, got %d", b.Length)
	case b.Length >= g.Columns*g.Rows:
		return invalid("snake.length", "%d leaves no room for food", b.Length)
	case b.MoveEvery < 1:
		return invalid("snake.move_every", "must be positive, got %d", b.MoveEvery)
	case cfg.Food.Points <= 0:
		return invalid("food.points", "must be positive, got %d", cfg.Food.Points)
	}

	var dx, dy int
	switch b.Direction {
	case DirUp:
		dy = -1
	case DirDown:
		dy = 1
	case DirLeft:
		dx = -1
	case DirRight:
		dx = 1
	default:
		return invalid("snake.direction", "must be up, down, left or right, got %q", b.Direction)
	}

	tailX, tailY := b.StartX-dx*(b.Length-1), b.StartY-dy*(b.Length-1)
	for _, p := range [][2]int{{b.StartX, b.StartY}, {tailX, tailY}} {
		if p[0] < 0 || p[0] >= g.Columns || p[1] < 0 || p[1] >= g.Rows {
			return invalid("snake", "body from (%d,%d) to (%d,%d) leaves the %dx%d grid",
				b.StartX, b.StartY, tailX, tailY, g.Columns, g.Rows)
		}
	}
	return nil
}
