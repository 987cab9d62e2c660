package defense

import (
	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// Spot is a tile coordinate on the map.
type Spot struct {
	Col, Row int
}

// Rules are the fixed parameters of a match, derived from config.
type Rules struct {
	Map        Map
	Enemy      config.DefenseEnemy
	Tower      Tower // Template for new towers
	Waves      config.DefenseWaves
	Lives      int // Escapes tolerated; 0 disables the rule
	Difficulty *config.DifficultyManager
}

// State is the complete simulation state of one Tower Defense match.
type State struct {
	Rules Rules

	Enemies     EnemyPool
	Towers      []Tower
	Projectiles []Projectile
	Meter       Meter
	Spawner     Spawner

	Defeated int
	Escaped  int
	Won      bool
	Lost     bool
	Tick     int
}

// NewState builds the initial state for a match. Initial towers from config
// are free; invalid spots are skipped.
func NewState(cfg config.DefenseConfig, targeting Targeting) State {
	m := NewMap(cfg.Map)
	s := State{
		Rules: Rules{
			Map:   m,
			Enemy: cfg.Enemy,
			Tower: Tower{
				Range:           cfg.Tower.Range,
				FireRate:        cfg.Tower.FireRate,
				Damage:          cfg.Tower.Damage,
				ProjectileSpeed: cfg.Tower.ProjectileSpeed,
				Targeting:       targeting,
			},
			Waves:      cfg.Waves,
			Lives:      cfg.Gameplay.Lives,
			Difficulty: config.NewDifficultyManager(cfg.Difficulty),
		},
		Meter:   Meter{Value: cfg.Meter.Start, Cost: cfg.Meter.Cost},
		Spawner: NewSpawner(cfg.Waves),
	}

	for _, spot := range cfg.Gameplay.InitialTowers {
		if s.CanBuild(Spot{Col: spot.X, Row: spot.Y}) {
			s.Towers = append(s.Towers, s.newTower(Spot{Col: spot.X, Row: spot.Y}))
		}
	}
	return s
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Enemies = s.Enemies.Clone()
	s.Towers = append([]Tower(nil), s.Towers...)
	s.Projectiles = append([]Projectile(nil), s.Projectiles...)
	return s
}

// Over reports whether the match has ended.
func (s State) Over() bool {
	return s.Won || s.Lost
}

// Score is the total reward earned.
func (s State) Score() int {
	return s.Meter.Earned
}

// LivesLeft returns the remaining escapes, or -1 when lives are disabled.
func (s State) LivesLeft() int {
	if s.Rules.Lives <= 0 {
		return -1
	}
	return max(0, s.Rules.Lives-s.Escaped)
}

// CanBuild reports whether a tower may stand on spot: the tile must be in
// bounds, buildable and free. The meter is not checked.
func (s State) CanBuild(spot Spot) bool {
	if s.Rules.Map.TileAt(spot.Col, spot.Row) != TileBuildable {
		return false
	}
	for _, t := range s.Towers {
		if t.Col == spot.Col && t.Row == spot.Row {
			return false
		}
	}
	return true
}

// newTower creates a tower from the template at spot.
func (s State) newTower(spot Spot) Tower {
	t := s.Rules.Tower
	t.Col, t.Row = spot.Col, spot.Row
	t.Pos = s.Rules.Map.TileCenter(spot.Col, spot.Row)
	t.Cooldown = 0
	return t
}

// spawnEnemy adds an enemy at the first waypoint, scaled for the current
// wave and difficulty.
func (s *State) spawnEnemy() Handle {
	base := s.Rules.Enemy
	health := waveHealth(base.Health, s.Spawner.Wave, s.Rules.Waves.HealthGrowth)
	speed := base.Speed
	if d := s.Rules.Difficulty; d != nil {
		health = d.Health(health, s.Score(), s.Tick)
		speed = d.Speed(speed, s.Score(), s.Tick)
	}

	var start core.Vec
	if len(s.Rules.Map.Waypoints) > 0 {
		start = s.Rules.Map.Waypoints[0]
	}

	return s.Enemies.Spawn(Enemy{
		Pos:       start,
		Speed:     speed,
		Health:    health,
		MaxHealth: health,
		Reward:    base.Reward,
		Radius:    base.Radius,
	})
}

// spawnInterval returns the spacing between spawns for the current tick.
func (s State) spawnInterval() int {
	if d := s.Rules.Difficulty; d != nil {
		return d.SpawnInterval(s.Rules.Waves.SpawnInterval, s.Score(), s.Tick)
	}
	return s.Rules.Waves.SpawnInterval
}
