package defense

import (
	"math"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// Targeting selects which enemy in range a tower shoots at.
type Targeting int

const (
	TargetNearest Targeting = iota // Closest enemy
	TargetWeakest                  // Lowest health, then closest, then oldest slot
)

// ParseTargeting converts a config value to a Targeting rule.
func ParseTargeting(s string) Targeting {
	if s == config.TargetWeakest {
		return TargetWeakest
	}
	return TargetNearest
}

// String returns the config name of the rule.
func (t Targeting) String() string {
	if t == TargetWeakest {
		return config.TargetWeakest
	}
	return config.TargetNearest
}

// Tower is a stationary turret on a buildable tile.
type Tower struct {
	Col, Row        int
	Pos             core.Vec
	Range           float64
	FireRate        int // Ticks between shots
	Cooldown        int
	Damage          int
	ProjectileSpeed float64
	Targeting       Targeting
}

// selectTarget returns the enemy t would shoot at, if any is strictly
// within range.
func selectTarget(t Tower, pool *EnemyPool) (Handle, bool) {
	var (
		best     Handle
		found    bool
		bestDist = math.Inf(1)
		bestHP   int
	)

	pool.Each(func(h Handle, e *Enemy) {
		if !e.Alive() {
			return
		}
		d := t.Pos.Dist(e.Pos)
		if d >= t.Range {
			return
		}

		better := !found
		if found {
			switch t.Targeting {
			case TargetWeakest:
				better = e.Health < bestHP || (e.Health == bestHP && d < bestDist)
			default:
				better = d < bestDist
			}
		}
		if better {
			best, found, bestDist, bestHP = h, true, d, e.Health
		}
	})

	return best, found
}

// stepTower cools t down and fires when it is ready and has a target.
func stepTower(t *Tower, pool *EnemyPool) (Projectile, bool) {
	if t.Cooldown > 0 {
		t.Cooldown--
	}
	if t.Cooldown != 0 {
		return Projectile{}, false
	}

	target, ok := selectTarget(*t, pool)
	if !ok {
		return Projectile{}, false
	}

	t.Cooldown = t.FireRate
	return Projectile{
		Pos:    t.Pos,
		Target: target,
		Speed:  t.ProjectileSpeed,
		Damage: t.Damage,
	}, true
}
