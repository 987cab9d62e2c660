package defense

import (
	"testing"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// quietConfig returns the default config with no waves due, no free towers
// and no difficulty scaling.
func quietConfig() config.DefenseConfig {
	cfg := config.DefaultDefenseConfig()
	cfg.Waves.FirstWaveDelay = 1_000_000
	cfg.Gameplay.InitialTowers = nil
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.InitialLevel = 0
	return cfg
}

func quietState(targeting Targeting) State {
	return NewState(quietConfig(), targeting)
}

// still is a stationary enemy at p.
func still(p core.Vec, health int) Enemy {
	return Enemy{Pos: p, Health: health, MaxHealth: health, Reward: 10}
}

func hasEvent(events []core.Event, typ core.EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func TestNewMapFractionalWaypoints(t *testing.T) {
	cfg := config.DefaultDefenseConfig().Map
	cfg.Waypoints = []config.Waypoint{{X: 2.5, Y: -0.5}, {X: 2, Y: 1}}
	m := NewMap(cfg)

	want := []core.Vec{core.V(150, 0), core.V(125, 75)}
	for i, w := range want {
		if m.Waypoints[i] != w {
			t.Errorf("waypoint %d = %v, want %v", i, m.Waypoints[i], w)
		}
	}
}

func TestNewMap(t *testing.T) {
	m := NewMap(config.DefaultDefenseConfig().Map)

	if m.Cols != 12 || m.Rows != 8 {
		t.Fatalf("map = %dx%d, want 12x8", m.Cols, m.Rows)
	}
	if m.Width() != 600 || m.Height() != 400 {
		t.Errorf("world = %vx%v, want 600x400", m.Width(), m.Height())
	}
	if m.Waypoints[0] != core.V(125, -25) || m.Waypoints[len(m.Waypoints)-1] != core.V(575, 425) {
		t.Errorf("waypoints = %v", m.Waypoints)
	}

	tests := []struct {
		col, row int
		want     Tile
	}{
		{0, 0, TileBuildable},
		{2, 0, TilePath},
		{9, 3, TilePath},
		{-1, 0, TileBlocked},
		{12, 0, TileBlocked},
		{0, 8, TileBlocked},
	}
	for _, tt := range tests {
		if got := m.TileAt(tt.col, tt.row); got != tt.want {
			t.Errorf("TileAt(%d,%d) = %v, want %v", tt.col, tt.row, got, tt.want)
		}
	}

	// Every waypoint inside the grid sits on a path tile.
	for _, wp := range m.Waypoints {
		if col, row, ok := m.TileOf(wp); ok && m.TileAt(col, row) != TilePath {
			t.Errorf("waypoint %v is on tile (%d,%d) which is not path", wp, col, row)
		}
	}
}

func TestEnemyFollowsPath(t *testing.T) {
	m := NewMap(config.DefaultDefenseConfig().Map)
	e := Enemy{Pos: m.Waypoints[0], Speed: 2, Health: 100}

	last := e.Waypoint
	for i := 0; i < 5000 && !e.ReachedGoal(m.Waypoints); i++ {
		before := e
		var distBefore float64
		if e.Waypoint < len(m.Waypoints) {
			distBefore = e.Pos.Dist(m.Waypoints[e.Waypoint])
		}

		stepEnemy(&e, m.Waypoints)

		if e.Waypoint < last {
			t.Fatalf("waypoint index went back: %d -> %d", last, e.Waypoint)
		}
		if e.Waypoint != before.Waypoint {
			if e.Pos != before.Pos {
				t.Fatalf("enemy moved on the tick its index advanced")
			}
			if distBefore >= e.Speed {
				t.Fatalf("index advanced %v away from waypoint", distBefore)
			}
		} else if d := e.Pos.Dist(m.Waypoints[e.Waypoint]); d >= distBefore {
			t.Fatalf("distance to waypoint did not shrink: %v -> %v", distBefore, d)
		}
		last = e.Waypoint
	}

	if !e.ReachedGoal(m.Waypoints) {
		t.Fatal("enemy never reached the goal")
	}
	if d := e.Pos.Dist(m.Waypoints[len(m.Waypoints)-1]); d >= e.Speed {
		t.Errorf("enemy finished %v away from the last waypoint", d)
	}
}

func TestTowerHoldsFireWithoutTarget(t *testing.T) {
	s := quietState(TargetNearest)
	s.Towers = append(s.Towers, s.newTower(Spot{Col: 3, Row: 2}))
	if s.Towers[0].FireRate != 60 {
		t.Fatalf("FireRate = %d, want 60", s.Towers[0].FireRate)
	}

	for i := 0; i < 120; i++ {
		var events []core.Event
		s, events = Tick(s, Intent{})
		if len(s.Projectiles) != 0 || hasEvent(events, core.EventProjectileFired) {
			t.Fatalf("tick %d: fired with no target", i)
		}
		if s.Towers[0].Cooldown != 0 {
			t.Fatalf("tick %d: cooldown = %d, want 0", i, s.Towers[0].Cooldown)
		}
	}

	// An enemy inside range is shot on the very next tick.
	s.Enemies.Spawn(still(s.Towers[0].Pos.Add(core.V(100, 0)), 100))
	s, events := Tick(s, Intent{})
	if len(s.Projectiles) != 1 || !hasEvent(events, core.EventProjectileFired) {
		t.Fatalf("projectiles = %d, want 1", len(s.Projectiles))
	}
	if s.Towers[0].Cooldown != 60 {
		t.Errorf("cooldown = %d, want 60", s.Towers[0].Cooldown)
	}

	// The next shot comes exactly fire-rate ticks later.
	for i := 1; i <= 60; i++ {
		s, events = Tick(s, Intent{})
		fired := hasEvent(events, core.EventProjectileFired)
		if fired != (i == 60) {
			t.Fatalf("tick %d after first shot: fired = %v", i, fired)
		}
	}
}

func TestTowerIgnoresEnemyAtRangeEdge(t *testing.T) {
	s := quietState(TargetNearest)
	tower := s.newTower(Spot{Col: 3, Row: 2})

	var p EnemyPool
	p.Spawn(still(tower.Pos.Add(core.V(150, 0)), 100))
	if _, ok := selectTarget(tower, &p); ok {
		t.Error("an enemy exactly at range should not be targeted")
	}
}

func TestTargetSelection(t *testing.T) {
	s := quietState(TargetNearest)
	tower := s.newTower(Spot{Col: 3, Row: 2})
	at := func(d float64) core.Vec { return tower.Pos.Add(core.V(0, d)) }

	var p EnemyPool
	near := p.Spawn(still(at(50), 100))
	weakClose := p.Spawn(still(at(100), 40))
	p.Spawn(still(at(120), 40))
	p.Spawn(still(at(200), 5)) // Out of range

	tests := []struct {
		name      string
		targeting Targeting
		want      Handle
	}{
		{"nearest", TargetNearest, near},
		{"weakest breaks ties by distance", TargetWeakest, weakClose},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := tower
			tw.Targeting = tt.targeting
			got, ok := selectTarget(tw, &p)
			if !ok || got != tt.want {
				t.Errorf("target = %v, %v; want %v", got, ok, tt.want)
			}
		})
	}
}

func TestTargetTiesUsePoolOrder(t *testing.T) {
	s := quietState(TargetWeakest)
	tower := s.newTower(Spot{Col: 3, Row: 2})

	var p EnemyPool
	first := p.Spawn(still(tower.Pos.Add(core.V(30, 0)), 50))
	p.Spawn(still(tower.Pos.Add(core.V(-30, 0)), 50))

	for _, targeting := range []Targeting{TargetNearest, TargetWeakest} {
		tower.Targeting = targeting
		if got, _ := selectTarget(tower, &p); got != first {
			t.Errorf("%v: target = %v, want first slot %v", targeting, got, first)
		}
	}
}

func TestProjectileStaleTarget(t *testing.T) {
	var p EnemyPool
	gone := p.Spawn(still(core.V(10, 10), 100))
	p.Remove(gone)
	other := p.Spawn(still(core.V(10, 10), 100))

	proj := Projectile{Pos: core.V(12, 10), Target: gone, Speed: 5, Damage: 25}
	_, landed := stepProjectile(&proj, &p)

	if landed || !proj.Dead {
		t.Errorf("landed=%v dead=%v, want expired without effect", landed, proj.Dead)
	}
	if e, _ := p.Get(other); e.Health != 100 {
		t.Errorf("new occupant took damage: health %d", e.Health)
	}
}

func TestProjectileHomesAndKills(t *testing.T) {
	s := quietState(TargetNearest)
	target := s.Enemies.Spawn(still(core.V(300, 300), 25))
	s.Projectiles = []Projectile{
		{Pos: core.V(297, 300), Target: target, Speed: 5, Damage: 25},
		{Pos: core.V(303, 300), Target: target, Speed: 5, Damage: 25},
		{Pos: core.V(200, 300), Target: target, Speed: 5, Damage: 25},
	}

	next, events := Tick(s, Intent{})

	if next.Meter.Earned != 10 || next.Meter.Value != 10 {
		t.Errorf("meter = %+v, want exactly one reward", next.Meter)
	}
	if next.Defeated != 1 || !hasEvent(events, core.EventEnemyDefeated) {
		t.Errorf("Defeated = %d, want 1", next.Defeated)
	}
	if next.Enemies.Len() != 0 {
		t.Errorf("dead enemy should be removed, %d left", next.Enemies.Len())
	}
	if len(next.Projectiles) != 0 {
		t.Errorf("all projectiles should be spent, %d left", len(next.Projectiles))
	}
}

func TestProjectileMovesBySpeed(t *testing.T) {
	var p EnemyPool
	h := p.Spawn(still(core.V(100, 0), 100))
	proj := Projectile{Pos: core.V(0, 0), Target: h, Speed: 5, Damage: 25}

	stepProjectile(&proj, &p)
	if proj.Pos != core.V(5, 0) || proj.Dead {
		t.Errorf("projectile = %+v, want moved to (5,0)", proj)
	}
}

func TestMeterGate(t *testing.T) {
	m := Meter{Cost: 50}
	tests := []struct {
		value int
		want  bool
	}{
		{0, false},
		{49, false},
		{50, true},
		{120, true},
	}
	for _, tt := range tests {
		m.Value = tt.value
		if got := m.PlacementMode(); got != tt.want {
			t.Errorf("PlacementMode(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}

	m = Meter{Cost: 50}
	m.Credit(30)
	if m.Spend() || m.Value != 30 {
		t.Errorf("Spend below cost should fail and keep value, got %d", m.Value)
	}
	m.Credit(30)
	if !m.Spend() || m.Value != 10 || m.Earned != 60 {
		t.Errorf("meter = %+v, want value 10 earned 60", m)
	}
}

func TestPlacementGate(t *testing.T) {
	spot := func(c, r int) *Spot { return &Spot{Col: c, Row: r} }

	tests := []struct {
		name      string
		meter     int
		place     *Spot
		wantTower bool
		wantMeter int
	}{
		{"below cost", 49, spot(0, 0), false, 49},
		{"exact cost", 50, spot(0, 0), true, 0},
		{"surplus", 120, spot(0, 0), true, 70},
		{"path tile", 120, spot(2, 0), false, 120},
		{"left of map", 120, spot(-1, 0), false, 120},
		{"right of map", 120, spot(12, 0), false, 120},
		{"below map", 120, spot(0, 8), false, 120},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := quietState(TargetNearest)
			s.Meter.Value = tt.meter

			next, events := Tick(s, Intent{Place: tt.place})

			if got := len(next.Towers) == 1; got != tt.wantTower {
				t.Errorf("tower placed = %v, want %v", got, tt.wantTower)
			}
			if next.Meter.Value != tt.wantMeter {
				t.Errorf("meter = %d, want %d", next.Meter.Value, tt.wantMeter)
			}
			if hasEvent(events, core.EventTowerPlaced) != tt.wantTower {
				t.Errorf("tower event mismatch: %v", events)
			}
		})
	}
}

func TestPlacementOnOccupiedTile(t *testing.T) {
	s := quietState(TargetNearest)
	s.Meter.Value = 200

	s, _ = Tick(s, Intent{Place: &Spot{Col: 0, Row: 0}})
	s, _ = Tick(s, Intent{Place: &Spot{Col: 0, Row: 0}})

	if len(s.Towers) != 1 {
		t.Errorf("towers = %d, want 1", len(s.Towers))
	}
	if s.Meter.Value != 150 {
		t.Errorf("meter = %d, want 150", s.Meter.Value)
	}
	if !s.Meter.PlacementMode() {
		t.Error("placement mode should still be on")
	}
}

func TestSpawnerSchedule(t *testing.T) {
	cfg := config.DefenseWaves{Count: 2, Size: 3, SpawnInterval: 5, Gap: 20}
	sp := NewSpawner(cfg)

	var spawns, starts []int
	for tick := 1; tick <= 100; tick++ {
		out := sp.step(cfg, cfg.SpawnInterval)
		if out.spawn {
			spawns = append(spawns, tick)
		}
		if out.waveStart {
			starts = append(starts, tick)
		}
	}

	wantSpawns := []int{1, 6, 11, 31, 36, 41}
	if len(spawns) != len(wantSpawns) {
		t.Fatalf("spawns at %v, want %v", spawns, wantSpawns)
	}
	for i := range wantSpawns {
		if spawns[i] != wantSpawns[i] {
			t.Fatalf("spawns at %v, want %v", spawns, wantSpawns)
		}
	}
	if len(starts) != 2 || starts[0] != 1 || starts[1] != 31 {
		t.Errorf("waves started at %v, want [1 31]", starts)
	}
	if !sp.Done {
		t.Error("spawner should be done")
	}
}

func TestWaveHealthGrowth(t *testing.T) {
	if got := waveHealth(100, 1, 0.15); got != 100 {
		t.Errorf("wave 1 health = %d, want 100", got)
	}
	if got := waveHealth(100, 3, 0.15); got != 130 {
		t.Errorf("wave 3 health = %d, want 130", got)
	}
}

func runUntilOver(t *testing.T, s State, limit int) (State, []core.Event) {
	t.Helper()
	var all []core.Event
	for i := 0; i < limit && !s.Over(); i++ {
		var events []core.Event
		s, events = Tick(s, Intent{})
		all = append(all, events...)
	}
	if !s.Over() {
		t.Fatalf("match not over after %d ticks", limit)
	}
	return s, all
}

func TestEscapesWithLives(t *testing.T) {
	cfg := quietConfig()
	cfg.Waves = config.DefenseWaves{Count: 1, Size: 2, SpawnInterval: 1}
	cfg.Enemy.Speed = 50
	cfg.Gameplay.Lives = 2

	s, events := runUntilOver(t, NewState(cfg, TargetNearest), 1000)

	if !s.Lost || s.Won {
		t.Errorf("Won=%v Lost=%v, want lost", s.Won, s.Lost)
	}
	if s.Escaped != 2 || s.LivesLeft() != 0 {
		t.Errorf("Escaped=%d LivesLeft=%d", s.Escaped, s.LivesLeft())
	}
	if !hasEvent(events, core.EventEnemyEscaped) || !hasEvent(events, core.EventLost) {
		t.Error("expected escape and loss events")
	}
}

func TestEscapesWithoutLives(t *testing.T) {
	cfg := quietConfig()
	cfg.Waves = config.DefenseWaves{Count: 1, Size: 2, SpawnInterval: 1}
	cfg.Enemy.Speed = 50
	cfg.Gameplay.Lives = 0

	s, _ := runUntilOver(t, NewState(cfg, TargetNearest), 1000)

	if !s.Won {
		t.Error("with lives disabled the match ends when the waves are spent")
	}
	if s.Escaped != 2 || s.LivesLeft() != -1 || s.Score() != 0 {
		t.Errorf("Escaped=%d LivesLeft=%d Score=%d", s.Escaped, s.LivesLeft(), s.Score())
	}
}

func TestTowerDefendsAndWins(t *testing.T) {
	cfg := quietConfig()
	cfg.Waves = config.DefenseWaves{Count: 1, Size: 1, SpawnInterval: 1}
	cfg.Enemy.Health = 25
	cfg.Gameplay.InitialTowers = []config.TileSpot{{X: 3, Y: 2}}

	s, events := runUntilOver(t, NewState(cfg, TargetNearest), 2000)

	if !s.Won {
		t.Fatal("tower should have stopped the only enemy")
	}
	if s.Defeated != 1 || s.Escaped != 0 {
		t.Errorf("Defeated=%d Escaped=%d", s.Defeated, s.Escaped)
	}
	if s.Score() != cfg.Enemy.Reward || s.Meter.Value != cfg.Enemy.Reward {
		t.Errorf("meter = %+v, want one reward", s.Meter)
	}
	if !hasEvent(events, core.EventWaveStarted) || !hasEvent(events, core.EventEnemySpawned) {
		t.Error("expected wave and spawn events")
	}
}

func TestTickDoesNotMutatePrev(t *testing.T) {
	s := quietState(TargetNearest)
	s.Towers = append(s.Towers, s.newTower(Spot{Col: 3, Row: 2}))
	h := s.Enemies.Spawn(Enemy{Pos: core.V(300, 125), Speed: 2, Health: 100, MaxHealth: 100})
	s.Projectiles = append(s.Projectiles, Projectile{Pos: core.V(180, 125), Target: h, Speed: 5, Damage: 25})
	s.Meter.Value = 50
	before := snapshotOf(s)

	next, _ := Tick(s, Intent{Place: &Spot{Col: 0, Row: 0}})

	if after := snapshotOf(s); after.Hash() != before.Hash() {
		t.Error("Tick modified its input state")
	}
	if len(s.Towers) != 1 || len(next.Towers) != 2 {
		t.Errorf("towers prev=%d next=%d, want 1/2", len(s.Towers), len(next.Towers))
	}
}

func TestNewStateSkipsBadInitialTowers(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.InitialTowers = []config.TileSpot{{X: 3, Y: 2}, {X: 2, Y: 0}, {X: 3, Y: 2}, {X: 40, Y: 40}}

	s := NewState(cfg, TargetNearest)
	if len(s.Towers) != 1 {
		t.Errorf("towers = %d, want 1", len(s.Towers))
	}
	if s.Meter.Value != cfg.Meter.Start {
		t.Errorf("initial towers should be free, meter = %d", s.Meter.Value)
	}
}
