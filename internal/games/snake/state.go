package snake

import (
	"slices"

	"github.com/vovakirdan/frame-arcade/internal/config"
)

// Direction is the snake's heading.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirRight
	DirDown
	DirLeft
)

// ParseDirection converts a config heading. Unknown values head right.
func ParseDirection(s string) Direction {
	switch s {
	case config.DirUp:
		return DirUp
	case config.DirDown:
		return DirDown
	case config.DirLeft:
		return DirLeft
	default:
		return DirRight
	}
}

// Delta returns the cell offset of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite reports whether d points straight back along o.
func (d Direction) Opposite(o Direction) bool {
	dx, dy := d.Delta()
	ox, oy := o.Delta()
	return d != DirNone && dx == -ox && dy == -oy
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// Step returns the neighbouring cell in direction d.
func (c Cell) Step(d Direction) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Rules are the fixed parameters of a match, derived from config.
type Rules struct {
	Cols, Rows int
	MoveEvery  int
	Points     int
}

// InBounds reports whether c lies on the grid.
func (r Rules) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < r.Cols && c.Y >= 0 && c.Y < r.Rows
}

// State is the complete simulation state of one Snake match.
type State struct {
	Rules Rules

	Body    []Cell    // Head first
	Heading Direction // Direction of the last move
	Queued  Direction // Applied on the next move
	Food    Cell
	HasFood bool   // False only once the snake fills the grid
	Seed    uint64 // Food placement stream; advanced on every placement

	Score int
	Eaten int
	Won   bool
	Lost  bool
	Tick  int
}

// NewState builds the initial state for a match. seed fixes every food
// placement of the match.
func NewState(cfg config.SnakeConfig, seed uint64) State {
	dir := ParseDirection(cfg.Snake.Direction)
	dx, dy := dir.Delta()

	body := make([]Cell, cfg.Snake.Length)
	for i := range body {
		body[i] = Cell{X: cfg.Snake.StartX - dx*i, Y: cfg.Snake.StartY - dy*i}
	}

	s := State{
		Rules: Rules{
			Cols:      cfg.Grid.Columns,
			Rows:      cfg.Grid.Rows,
			MoveEvery: cfg.Snake.MoveEvery,
			Points:    cfg.Food.Points,
		},
		Body:    body,
		Heading: dir,
		Queued:  dir,
		Seed:    seed,
	}
	s.placeFood()
	return s
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Body = slices.Clone(s.Body)
	return s
}

// Over reports whether the match has ended.
func (s State) Over() bool {
	return s.Won || s.Lost
}

// Head returns the head cell.
func (s State) Head() Cell {
	return s.Body[0]
}

// Occupies reports whether any body segment covers c.
func (s State) Occupies(c Cell) bool {
	return slices.Contains(s.Body, c)
}
