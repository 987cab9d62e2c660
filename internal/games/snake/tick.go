package snake

import (
	"math/rand/v2"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// foodStream separates food placement from any other use of the seed.
const foodStream = 0x5eed_f00d

// Intent is the player input for one tick.
type Intent struct {
	Turn Direction // DirNone keeps the queued heading
}

// Tick advances the match by one step. prev is never modified.
// Terminal states are returned unchanged.
//
// A turn is queued on any tick, but the snake only moves every
// Rules.MoveEvery ticks. Turning straight back is ignored.
func Tick(prev State, in Intent) (State, []core.Event) {
	if prev.Over() {
		return prev, nil
	}

	s := prev.Clone()
	s.Tick++

	if in.Turn != DirNone && !in.Turn.Opposite(s.Heading) {
		s.Queued = in.Turn
	}
	if s.Tick%s.Rules.MoveEvery != 0 {
		return s, nil
	}
	return move(s)
}

// move advances the snake one cell. The tail leaves its cell in the same
// move, so the head may enter it unless the snake is growing.
func move(s State) (State, []core.Event) {
	s.Heading = s.Queued
	head := s.Head().Step(s.Heading)

	if !s.Rules.InBounds(head) {
		s.Lost = true
		return s, []core.Event{{Type: core.EventLost, Value: s.Score}}
	}

	eating := s.HasFood && head == s.Food
	body := s.Body
	if !eating {
		body = body[:len(body)-1]
	}
	for _, c := range body {
		if c == head {
			s.Lost = true
			return s, []core.Event{{Type: core.EventLost, Value: s.Score}}
		}
	}

	s.Body = append([]Cell{head}, body...)
	if !eating {
		return s, nil
	}

	s.Score += s.Rules.Points
	s.Eaten++
	events := []core.Event{{Type: core.EventFoodEaten, Value: s.Rules.Points}}

	if !s.placeFood() {
		s.Won = true
		events = append(events, core.Event{Type: core.EventWon, Value: s.Score})
	}
	return s, events
}

// placeFood puts food on a uniformly chosen free cell and advances the seed.
// Reports false when the snake covers the whole grid.
func (s *State) placeFood() bool {
	free := make([]Cell, 0, max(0, s.Rules.Cols*s.Rules.Rows-len(s.Body)))
	for y := range s.Rules.Rows {
		for x := range s.Rules.Cols {
			if c := (Cell{X: x, Y: y}); !s.Occupies(c) {
				free = append(free, c)
			}
		}
	}
	if len(free) == 0 {
		s.HasFood = false
		return false
	}

	r := rand.New(rand.NewPCG(s.Seed, foodStream))
	s.Food = free[r.IntN(len(free))]
	s.HasFood = true
	s.Seed = r.Uint64()
	return true
}
