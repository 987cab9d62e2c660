package breakout

import (
	"math"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// Intent is the player input for one tick, already in world units.
type Intent struct {
	PointerX *float64 // Last pointer x, if the pointer moved
	Left     bool
	Right    bool
}

// Tick advances the match by one step. prev is never modified.
// Terminal states are returned unchanged.
func Tick(prev State, in Intent) (State, []core.Event) {
	if prev.Over() {
		return prev, nil
	}

	s := prev.Clone()
	var events []core.Event

	s.Tick++
	movePaddle(&s, in)
	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel)

	events = hitBricks(&s, events)
	bounceWalls(&s)
	events = paddleLine(&s, events)

	return s, events
}

// movePaddle applies pointer and keyboard intent. The pointer only moves the
// paddle while it is strictly inside the world; the keyboard is clamped.
func movePaddle(s *State, in Intent) {
	if in.PointerX != nil {
		px := *in.PointerX
		if px > 0 && px < s.Rules.WorldW {
			s.Paddle.X = px - s.Paddle.Width/2
		}
	}

	if in.Left == in.Right {
		return
	}
	step := s.Rules.PaddleSpeed
	if in.Left {
		step = -step
	}
	s.Paddle.X = core.ClampF(s.Paddle.X+step, 0, s.Rules.WorldW-s.Paddle.Width)
}

// hitBricks resolves at most one brick hit per tick.
func hitBricks(s *State, events []core.Event) []core.Event {
	i := s.Grid.hitTest(s.Ball.Pos)
	if i < 0 {
		return events
	}

	b := &s.Grid.Bricks[i]
	s.Ball.Vel.Y = -s.Ball.Vel.Y
	b.Health--
	events = append(events, core.Event{Type: core.EventBrickHit, Value: b.Row})

	if b.Health <= 0 {
		b.Active = false
		s.Score += b.Points
		s.Destroyed++
		events = append(events, core.Event{Type: core.EventBrickDestroyed, Value: b.Points})
	}

	s.Ball.Speed = s.Rules.BaseSpeed + float64(s.Grid.Rows-b.Row)*s.Rules.RowSpeedStep
	s.Ball.Vel = s.Ball.Vel.WithLen(s.Ball.Speed)

	if s.Destroyed == s.Total {
		s.Won = true
		events = append(events, core.Event{Type: core.EventWon, Value: s.Score})
	}
	return events
}

// bounceWalls reflects the ball off the side and top walls and pushes it
// back inside the world.
func bounceWalls(s *State) {
	b := &s.Ball
	switch {
	case b.Pos.X+b.Radius > s.Rules.WorldW:
		b.Pos.X = s.Rules.WorldW - b.Radius
		b.Vel.X = -math.Abs(b.Vel.X)
	case b.Pos.X-b.Radius < 0:
		b.Pos.X = b.Radius
		b.Vel.X = math.Abs(b.Vel.X)
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y = math.Abs(b.Vel.Y)
	}
}

// paddleLine handles the ball reaching the paddle's height: a bounce when
// the paddle is under the ball, a lost life otherwise.
func paddleLine(s *State, events []core.Event) []core.Event {
	b := &s.Ball
	if s.Won || b.Vel.Y <= 0 || b.Pos.Y+b.Radius < s.Paddle.Y {
		return events
	}

	if b.Pos.X >= s.Paddle.X && b.Pos.X <= s.Paddle.X+s.Paddle.Width {
		b.Vel = reflectOffPaddle(b.Vel, b.Pos.X, s.Paddle, s.Rules)
		b.Pos.Y = s.Paddle.Y - b.Radius
		return events
	}

	s.Lives--
	events = append(events, core.Event{Type: core.EventLifeLost, Value: s.Lives})
	if s.Lives <= 0 {
		s.Lives = 0
		s.Lost = true
		return append(events, core.Event{Type: core.EventLost, Value: s.Score})
	}
	s.serve()
	return events
}

// reflectOffPaddle returns the ball velocity after a paddle bounce.
// Speed magnitude is preserved under both policies.
func reflectOffPaddle(vel core.Vec, x float64, p Paddle, r Rules) core.Vec {
	if r.Reflect == ReflectInvert {
		return core.V(vel.X, -math.Abs(vel.Y))
	}

	offset := core.ClampF((x-p.CenterX())/(p.Width/2), -1, 1)
	angle := offset * r.MaxAngle
	speed := vel.Len()
	return core.V(speed*math.Sin(angle), -speed*math.Cos(angle))
}
