package defense

import "github.com/vovakirdan/frame-arcade/internal/core"

// Intent is the player input for one tick.
type Intent struct {
	Place *Spot // Tile clicked this tick, if any
}

// Tick advances the match by one step. prev is never modified.
// Terminal states are returned unchanged.
//
// Order: spawner, placement, towers, projectiles, enemies, removal of dead
// and escaped enemies and spent projectiles, terminal check.
func Tick(prev State, in Intent) (State, []core.Event) {
	if prev.Over() {
		return prev, nil
	}

	s := prev.Clone()
	var events []core.Event
	s.Tick++

	events = runSpawner(&s, events)

	if in.Place != nil {
		events = place(&s, *in.Place, events)
	}

	for i := range s.Towers {
		if p, fired := stepTower(&s.Towers[i], &s.Enemies); fired {
			s.Projectiles = append(s.Projectiles, p)
			events = append(events, core.Event{Type: core.EventProjectileFired, Value: i})
		}
	}

	for i := range s.Projectiles {
		h, landed := stepProjectile(&s.Projectiles[i], &s.Enemies)
		if landed && h.killed {
			s.Meter.Credit(h.reward)
			s.Defeated++
			events = append(events, core.Event{Type: core.EventEnemyDefeated, Value: h.reward})
		}
	}

	waypoints := s.Rules.Map.Waypoints
	s.Enemies.Each(func(_ Handle, e *Enemy) {
		stepEnemy(e, waypoints)
	})

	events = sweep(&s, events)
	events = checkEnd(&s, events)
	return s, events
}

// runSpawner releases the next enemy when one is due.
func runSpawner(s *State, events []core.Event) []core.Event {
	out := s.Spawner.step(s.Rules.Waves, s.spawnInterval())
	if out.waveStart {
		events = append(events, core.Event{Type: core.EventWaveStarted, Value: s.Spawner.Wave})
	}
	if out.spawn {
		s.spawnEnemy()
		events = append(events, core.Event{Type: core.EventEnemySpawned, Value: s.Spawner.Wave})
	}
	return events
}

// place builds a tower at spot when the tile allows it and the meter is in
// placement mode. Anything else is ignored.
func place(s *State, spot Spot, events []core.Event) []core.Event {
	if !s.Meter.PlacementMode() || !s.CanBuild(spot) {
		return events
	}
	s.Meter.Spend()
	s.Towers = append(s.Towers, s.newTower(spot))
	return append(events, core.Event{Type: core.EventTowerPlaced, Value: s.Meter.Cost})
}

// sweep removes dead and escaped enemies and spent projectiles.
func sweep(s *State, events []core.Event) []core.Event {
	waypoints := s.Rules.Map.Waypoints
	var gone []Handle
	s.Enemies.Each(func(h Handle, e *Enemy) {
		switch {
		case !e.Alive():
			gone = append(gone, h)
		case e.ReachedGoal(waypoints):
			gone = append(gone, h)
			s.Escaped++
			events = append(events, core.Event{Type: core.EventEnemyEscaped, Value: s.Escaped})
		}
	})
	for _, h := range gone {
		s.Enemies.Remove(h)
	}

	live := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if !p.Dead {
			live = append(live, p)
		}
	}
	s.Projectiles = live
	return events
}

// checkEnd sets the terminal flags.
func checkEnd(s *State, events []core.Event) []core.Event {
	if s.Rules.Lives > 0 && s.Escaped >= s.Rules.Lives {
		s.Lost = true
		return append(events, core.Event{Type: core.EventLost, Value: s.Score()})
	}
	if s.Spawner.Done && s.Enemies.Len() == 0 {
		s.Won = true
		return append(events, core.Event{Type: core.EventWon, Value: s.Score()})
	}
	return events
}
