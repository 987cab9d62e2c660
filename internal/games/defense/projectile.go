package defense

import "github.com/vovakirdan/frame-arcade/internal/core"

// Projectile homes in on a single enemy.
type Projectile struct {
	Pos    core.Vec
	Target Handle
	Speed  float64
	Damage int
	Dead   bool
}

// hit describes a projectile impact.
type hit struct {
	killed bool
	reward int
}

// stepProjectile moves p toward its target and applies damage on arrival.
// A projectile whose target is gone or already dead expires without effect.
func stepProjectile(p *Projectile, pool *EnemyPool) (hit, bool) {
	e, ok := pool.Get(p.Target)
	if !ok || !e.Alive() {
		p.Dead = true
		return hit{}, false
	}

	if p.Pos.Dist(e.Pos) < p.Speed {
		before := e.Health
		e.Health -= p.Damage
		p.Dead = true
		return hit{killed: before > 0 && e.Health <= 0, reward: e.Reward}, true
	}

	p.Pos = p.Pos.StepToward(e.Pos, p.Speed)
	return hit{}, false
}
