package defense

import "math"

// Snapshot is a flat copy of the match state for determinism checks.
type Snapshot struct {
	Tick     int
	Score    int
	Meter    int
	Defeated int
	Escaped  int
	Wave     int
	Won      bool
	Lost     bool

	// Each enemy is 5 values: X, Y, Health, Waypoint, slot index
	EnemyData []float64
	// Each tower is 3 ints: Col, Row, Cooldown
	TowerData []int
	// Each projectile is 3 values: X, Y, target slot index
	ProjectileData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return snapshotOf(g.state)
}

func snapshotOf(s State) Snapshot {
	snap := Snapshot{
		Tick:     s.Tick,
		Score:    s.Score(),
		Meter:    s.Meter.Value,
		Defeated: s.Defeated,
		Escaped:  s.Escaped,
		Wave:     s.Spawner.Wave,
		Won:      s.Won,
		Lost:     s.Lost,
	}

	s.Enemies.Each(func(h Handle, e *Enemy) {
		snap.EnemyData = append(snap.EnemyData,
			e.Pos.X, e.Pos.Y, float64(e.Health), float64(e.Waypoint), float64(h.Index))
	})
	for _, t := range s.Towers {
		snap.TowerData = append(snap.TowerData, t.Col, t.Row, t.Cooldown)
	}
	for _, p := range s.Projectiles {
		snap.ProjectileData = append(snap.ProjectileData, p.Pos.X, p.Pos.Y, float64(p.Target.Index))
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)            //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Meter)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Defeated)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Escaped)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Wave)      //#nosec G115 -- hash computation
	if snap.Won {
		h = h*31 + 1
	}
	if snap.Lost {
		h = h*31 + 2
	}

	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.TowerData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
