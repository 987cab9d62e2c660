package breakout

import "math"

// Snapshot is a flat copy of the match state for determinism checks.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick      int
	Score     int
	Lives     int
	Destroyed int
	Won       bool
	Lost      bool

	PaddleX float64
	BallX   float64
	BallY   float64
	BallDX  float64
	BallDY  float64

	// Brick states, row-major: Health, with 0 for inactive bricks
	BrickData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return snapshotOf(g.state)
}

func snapshotOf(s State) Snapshot {
	bricks := make([]int, len(s.Grid.Bricks))
	for i, b := range s.Grid.Bricks {
		if b.Active {
			bricks[i] = b.Health
		}
	}

	return Snapshot{
		Tick:      s.Tick,
		Score:     s.Score,
		Lives:     s.Lives,
		Destroyed: s.Destroyed,
		Won:       s.Won,
		Lost:      s.Lost,
		PaddleX:   s.Paddle.X,
		BallX:     s.Ball.Pos.X,
		BallY:     s.Ball.Pos.Y,
		BallDX:    s.Ball.Vel.X,
		BallDY:    s.Ball.Vel.Y,
		BrickData: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                 //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed)      //#nosec G115 -- hash computation
	h = h*31 + boolBit(snap.Won)<<1 + boolBit(snap.Lost)

	for _, f := range []float64{snap.PaddleX, snap.BallX, snap.BallY, snap.BallDX, snap.BallDY} {
		h = h*31 + math.Float64bits(f)
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
