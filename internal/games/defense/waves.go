package defense

import (
	"math"

	"github.com/vovakirdan/frame-arcade/internal/config"
)

// Spawner releases enemies in waves.
type Spawner struct {
	Wave  int // Waves started so far
	Left  int // Enemies still to spawn in the current wave
	Timer int // Ticks until the next spawn or wave
	Done  bool
}

// NewSpawner creates a spawner that starts its first wave after the
// configured delay.
func NewSpawner(cfg config.DefenseWaves) Spawner {
	return Spawner{
		Timer: max(0, cfg.FirstWaveDelay),
		Done:  cfg.Count <= 0 || cfg.Size <= 0,
	}
}

// spawnTick is the outcome of one spawner step.
type spawnTick struct {
	spawn     bool
	waveStart bool
}

// step advances the spawner by one tick. interval is the current spacing
// between spawns within a wave.
func (sp *Spawner) step(cfg config.DefenseWaves, interval int) spawnTick {
	var out spawnTick
	if sp.Done {
		return out
	}
	if sp.Timer > 0 {
		sp.Timer--
		return out
	}

	if sp.Left == 0 {
		sp.Wave++
		sp.Left = cfg.Size
		out.waveStart = true
	}

	out.spawn = true
	sp.Left--
	switch {
	case sp.Left > 0:
		sp.Timer = max(0, interval-1)
	case sp.Wave >= cfg.Count:
		sp.Done = true
	default:
		sp.Timer = max(0, cfg.Gap-1)
	}
	return out
}

// waveHealth returns enemy health for the given 1-based wave.
func waveHealth(base int, wave int, growth float64) int {
	return int(math.Round(float64(base) * (1 + float64(wave-1)*growth)))
}
