package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// testState is the default match with food parked in a far corner and one
// move per tick.
func testState() State {
	s := NewState(config.DefaultSnakeConfig(), 7)
	s.Food = Cell{X: 0, Y: 19}
	s.Rules.MoveEvery = 1
	return s
}

func hasEvent(events []core.Event, typ core.EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

func TestNewState(t *testing.T) {
	s := NewState(config.DefaultSnakeConfig(), 7)

	want := []Cell{{10, 5}, {9, 5}, {8, 5}}
	if !slices.Equal(s.Body, want) {
		t.Errorf("body = %v, want %v", s.Body, want)
	}
	if s.Heading != DirRight || s.Queued != DirRight {
		t.Errorf("heading = %v/%v, want right", s.Heading, s.Queued)
	}
	if !s.HasFood || s.Occupies(s.Food) || !s.Rules.InBounds(s.Food) {
		t.Errorf("food at %v is not on a free cell", s.Food)
	}
}

func TestNewStateHeadings(t *testing.T) {
	tests := []struct {
		dir  string
		tail Cell
	}{
		{config.DirRight, Cell{8, 5}},
		{config.DirLeft, Cell{12, 5}},
		{config.DirUp, Cell{10, 7}},
		{config.DirDown, Cell{10, 3}},
	}
	for _, tt := range tests {
		cfg := config.DefaultSnakeConfig()
		cfg.Snake.Direction = tt.dir
		s := NewState(cfg, 1)
		if tail := s.Body[len(s.Body)-1]; tail != tt.tail {
			t.Errorf("%s: tail = %v, want %v", tt.dir, tail, tt.tail)
		}
	}
}

func TestMovesEveryNTicks(t *testing.T) {
	s := testState()
	s.Rules.MoveEvery = 4

	for i := 1; i <= 3; i++ {
		s, _ = Tick(s, Intent{})
		if s.Head() != (Cell{10, 5}) {
			t.Fatalf("tick %d: head moved to %v before its turn", i, s.Head())
		}
	}
	s, _ = Tick(s, Intent{})
	if s.Head() != (Cell{11, 5}) || len(s.Body) != 3 {
		t.Errorf("after 4 ticks: head %v, length %d, want (11,5) and 3", s.Head(), len(s.Body))
	}
}

func TestTurning(t *testing.T) {
	tests := []struct {
		name  string
		turns []Direction // One per tick; the move happens on the last
		head  Cell
		dir   Direction
	}{
		{"straight", []Direction{DirNone}, Cell{11, 5}, DirRight},
		{"turn up", []Direction{DirUp}, Cell{10, 4}, DirUp},
		{"turn down", []Direction{DirDown}, Cell{10, 6}, DirDown},
		{"reverse ignored", []Direction{DirLeft}, Cell{11, 5}, DirRight},
		{"last turn wins", []Direction{DirUp, DirDown}, Cell{10, 6}, DirDown},
		{"reverse after queue ignored", []Direction{DirUp, DirLeft}, Cell{10, 4}, DirUp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState()
			s.Rules.MoveEvery = len(tt.turns)
			for _, d := range tt.turns {
				s, _ = Tick(s, Intent{Turn: d})
			}
			if s.Head() != tt.head || s.Heading != tt.dir {
				t.Errorf("head %v heading %v, want %v heading %v", s.Head(), s.Heading, tt.head, tt.dir)
			}
		})
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	s := testState()
	s.Food = Cell{11, 5}
	seed := s.Seed

	s, events := Tick(s, Intent{})

	if len(s.Body) != 4 || s.Head() != (Cell{11, 5}) {
		t.Errorf("body = %v, want 4 cells headed at (11,5)", s.Body)
	}
	if s.Score != 10 || s.Eaten != 1 {
		t.Errorf("score %d eaten %d, want 10 and 1", s.Score, s.Eaten)
	}
	if len(events) != 1 || events[0].Type != core.EventFoodEaten || events[0].Value != 10 {
		t.Errorf("events = %v, want one food_eaten worth 10", events)
	}
	if !s.HasFood || s.Occupies(s.Food) {
		t.Errorf("new food at %v overlaps the snake", s.Food)
	}
	if s.Seed == seed {
		t.Error("placing food should advance the seed")
	}

	// The tail stays put only on the move that eats.
	s.Food = Cell{0, 19}
	s, _ = Tick(s, Intent{})
	if len(s.Body) != 4 {
		t.Errorf("length = %d after a plain move, want 4", len(s.Body))
	}
}

func TestDeaths(t *testing.T) {
	tests := []struct {
		name string
		body []Cell
		dir  Direction
		turn Direction
	}{
		{"right wall", []Cell{{35, 5}, {34, 5}, {33, 5}}, DirRight, DirNone},
		{"top wall", []Cell{{4, 0}, {4, 1}, {4, 2}}, DirUp, DirNone},
		{"left wall", []Cell{{0, 3}, {1, 3}, {2, 3}}, DirLeft, DirNone},
		{"bottom wall", []Cell{{4, 19}, {4, 18}, {4, 17}}, DirDown, DirNone},
		{"own body", []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {6, 4}}, DirUp, DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testState()
			s.Body = tt.body
			s.Heading, s.Queued = tt.dir, tt.dir
			s.Score = 30

			next, events := Tick(s, Intent{Turn: tt.turn})
			if !next.Lost || !next.Over() || next.Won {
				t.Fatalf("expected a loss, got lost=%v won=%v", next.Lost, next.Won)
			}
			if !hasEvent(events, core.EventLost) || events[0].Value != 30 {
				t.Errorf("events = %v, want lost with score 30", events)
			}

			after, events := Tick(next, Intent{Turn: DirUp})
			if after.Tick != next.Tick || events != nil {
				t.Error("finished match should not advance")
			}
		})
	}
}

func TestHeadMayFollowTail(t *testing.T) {
	s := testState()
	s.Body = []Cell{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	s.Heading, s.Queued = DirUp, DirUp

	s, _ = Tick(s, Intent{Turn: DirRight})
	if s.Lost {
		t.Fatal("moving into the vacated tail cell should be safe")
	}
	want := []Cell{{6, 5}, {5, 5}, {5, 6}, {6, 6}}
	if !slices.Equal(s.Body, want) {
		t.Errorf("body = %v, want %v", s.Body, want)
	}
}

func TestFillingTheGridWins(t *testing.T) {
	s := State{
		Rules: Rules{Cols: 4, Rows: 4, MoveEvery: 1, Points: 10},
		Body: []Cell{
			{1, 3}, {2, 3}, {3, 3}, {3, 2}, {2, 2}, {1, 2}, {0, 2}, {0, 1},
			{1, 1}, {2, 1}, {3, 1}, {3, 0}, {2, 0}, {1, 0}, {0, 0},
		},
		Heading: DirLeft,
		Queued:  DirLeft,
		Food:    Cell{0, 3},
		HasFood: true,
	}

	s, events := Tick(s, Intent{})
	if !s.Won || s.Lost || s.HasFood {
		t.Fatalf("won=%v lost=%v hasFood=%v, want a win with no food left", s.Won, s.Lost, s.HasFood)
	}
	if len(s.Body) != 16 || s.Score != 10 {
		t.Errorf("length %d score %d, want 16 and 10", len(s.Body), s.Score)
	}
	if !hasEvent(events, core.EventFoodEaten) || !hasEvent(events, core.EventWon) {
		t.Errorf("events = %v, want food_eaten and won", events)
	}
}

func TestFoodPlacement(t *testing.T) {
	cfg := config.DefaultSnakeConfig()

	for seed := range uint64(200) {
		a := NewState(cfg, seed)
		if a.Occupies(a.Food) || !a.Rules.InBounds(a.Food) {
			t.Fatalf("seed %d: food at %v", seed, a.Food)
		}
		if b := NewState(cfg, seed); b.Food != a.Food || b.Seed != a.Seed {
			t.Fatalf("seed %d: placements differ: %v vs %v", seed, a.Food, b.Food)
		}
	}
}

func TestTickDoesNotMutatePrev(t *testing.T) {
	prev := testState()
	prev.Food = Cell{11, 5}
	body := slices.Clone(prev.Body)

	next, _ := Tick(prev, Intent{Turn: DirDown})

	if !slices.Equal(prev.Body, body) || prev.Score != 0 || prev.Tick != 0 {
		t.Errorf("prev changed: %+v", prev)
	}
	if next.Tick != 1 {
		t.Errorf("next tick = %d, want 1", next.Tick)
	}
}
