package defense

import "github.com/vovakirdan/frame-arcade/internal/core"

// Enemy walks the waypoint path.
type Enemy struct {
	Pos       core.Vec
	Speed     float64 // Step length per tick
	Health    int
	MaxHealth int
	Reward    int
	Radius    float64
	Waypoint  int // Index of the waypoint being approached; never decreases
}

// ReachedGoal reports whether the enemy has passed the last waypoint.
func (e Enemy) ReachedGoal(waypoints []core.Vec) bool {
	return e.Waypoint >= len(waypoints)
}

// Alive reports whether the enemy still has health.
func (e Enemy) Alive() bool {
	return e.Health > 0
}

// stepEnemy moves e one tick along the path. When the current waypoint is
// closer than one step the index advances and the enemy stays put.
func stepEnemy(e *Enemy, waypoints []core.Vec) {
	if e.ReachedGoal(waypoints) {
		return
	}
	target := waypoints[e.Waypoint]
	if e.Pos.Dist(target) < e.Speed {
		e.Waypoint++
		return
	}
	e.Pos = e.Pos.StepToward(target, e.Speed)
}
