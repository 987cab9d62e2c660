// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// BreakoutConfig contains all configuration for the Breakout game.
type BreakoutConfig struct {
	World    WorldConfig      `yaml:"world"`
	Ball     BreakoutBall     `yaml:"ball"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
}

// WorldConfig is the size of the simulated canvas in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutBall defines ball physics.
type BreakoutBall struct {
	Radius       float64 `yaml:"radius"`
	BaseSpeed    float64 `yaml:"base_speed"`     // Speed floor used by the brick rescale rule
	RowSpeedStep float64 `yaml:"row_speed_step"` // Extra speed per row of depth
	StartDX      float64 `yaml:"start_dx"`
	StartDY      float64 `yaml:"start_dy"`
	StartOffset  float64 `yaml:"start_offset"` // Distance of the serve point above the bottom edge
}

// BreakoutPaddle defines paddle geometry and reflection policy.
type BreakoutPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance of the paddle top above the bottom edge
	Speed        float64 `yaml:"speed"`         // Keyboard movement per tick
	Reflect      string  `yaml:"reflect"`       // "angle" or "invert"
	MaxAngleDeg  float64 `yaml:"max_angle_deg"`
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Rows       int      `yaml:"rows"`
	Columns    int      `yaml:"columns"`
	Width      float64  `yaml:"width"`
	Height     float64  `yaml:"height"`
	Padding    float64  `yaml:"padding"`
	OffsetTop  float64  `yaml:"offset_top"`
	OffsetLeft float64  `yaml:"offset_left"`
	Points     int      `yaml:"points"`
	Layout     []string `yaml:"layout,omitempty"` // Optional: '1'-'9' health, '.' empty
}

// BreakoutGameplay defines rules outside the physics step.
type BreakoutGameplay struct {
	Lives int `yaml:"lives"`
}

// DefenseConfig contains all configuration for the Tower Defense game.
type DefenseConfig struct {
	Map        DefenseMap       `yaml:"map"`
	Enemy      DefenseEnemy     `yaml:"enemy"`
	Tower      DefenseTower     `yaml:"tower"`
	Meter      DefenseMeter     `yaml:"meter"`
	Waves      DefenseWaves     `yaml:"waves"`
	Gameplay   DefenseGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// DefenseMap defines the tile grid and the enemy path.
// Rows use '.' for buildable tiles, '#' for path and 'X' for blocked tiles.
// Waypoints are tile coordinates; the world position is the tile center, so
// {x: 2, y: -1} is half a tile above the top edge.
type DefenseMap struct {
	TileSize  float64    `yaml:"tile_size"`
	Rows      []string   `yaml:"rows"`
	Waypoints []Waypoint `yaml:"waypoints"`
}

// Waypoint is a point of the enemy path in tile units. Fractions are kept,
// so {x: 2.5, y: 0} sits on the border between columns 2 and 3.
type Waypoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// TileSpot is a tile coordinate.
type TileSpot struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DefenseEnemy defines enemy stats.
type DefenseEnemy struct {
	Speed  float64 `yaml:"speed"`
	Health int     `yaml:"health"`
	Reward int     `yaml:"reward"`
	Radius float64 `yaml:"radius"`
}

// DefenseTower defines tower stats.
type DefenseTower struct {
	Range           float64 `yaml:"range"`
	FireRate        int     `yaml:"fire_rate"` // Ticks between shots
	Damage          int     `yaml:"damage"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	Targeting       string  `yaml:"targeting"` // "nearest" or "weakest"
}

// DefenseMeter defines the build meter.
type DefenseMeter struct {
	Start int `yaml:"start"`
	Cost  int `yaml:"cost"`
}

// DefenseWaves defines periodic enemy spawning.
type DefenseWaves struct {
	Count          int     `yaml:"count"`
	Size           int     `yaml:"size"`
	SpawnInterval  int     `yaml:"spawn_interval"` // Ticks between spawns within a wave
	Gap            int     `yaml:"gap"`            // Ticks between waves
	HealthGrowth   float64 `yaml:"health_growth"`  // Extra health fraction per wave
	FirstWaveDelay int     `yaml:"first_wave_delay"`
}

// DefenseGameplay defines rules outside the simulation step.
type DefenseGameplay struct {
	// Lives is the number of escaped enemies tolerated. Zero disables the
	// rule: escapes are counted but never end the game.
	Lives         int        `yaml:"lives"`
	InitialTowers []TileSpot `yaml:"initial_towers"`
}

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid  SnakeGrid `yaml:"grid"`
	Snake SnakeBody `yaml:"snake"`
	Food  SnakeFood `yaml:"food"`
}

// SnakeGrid is the playfield size in cells. Leaving it is fatal.
type SnakeGrid struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// SnakeBody defines the starting snake and its pace.
type SnakeBody struct {
	StartX    int    `yaml:"start_x"` // Head cell
	StartY    int    `yaml:"start_y"`
	Length    int    `yaml:"length"`
	Direction string `yaml:"direction"`  // "up", "down", "left" or "right"
	MoveEvery int    `yaml:"move_every"` // Ticks between moves
}

// SnakeFood defines the reward for eating.
type SnakeFood struct {
	Points int `yaml:"points"`
}

// DifficultyConfig defines the difficulty progression system.
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
	HealthMultiplier float64 `yaml:"health_multiplier"` // Extra enemy health fraction at max difficulty
	SpeedMultiplier  float64 `yaml:"speed_multiplier"`  // Extra enemy speed fraction at max difficulty
	SpawnReduction   int     `yaml:"spawn_reduction"`   // Spawn interval reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
