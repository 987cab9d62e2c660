package breakout

import (
	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// Brick is a single cell of the brick grid.
type Brick struct {
	Row, Col  int
	Rect      core.RectF
	Active    bool
	Health    int // Hits remaining; row 0 is the toughest
	MaxHealth int // Health at reset
	Points    int
}

// Grid is the brick field. Bricks are stored row-major.
type Grid struct {
	Rows   int
	Cols   int
	Bricks []Brick
}

// NewGrid builds the brick field from config.
// Without a layout every cell holds a brick with health rows-row.
// A layout row uses '1'-'9' for a brick with that health and any other
// character for an empty cell.
func NewGrid(cfg config.BreakoutBricks) Grid {
	rows, cols := cfg.Rows, cfg.Columns
	if len(cfg.Layout) > 0 {
		rows, cols = len(cfg.Layout), 0
		for _, line := range cfg.Layout {
			cols = max(cols, len(line))
		}
	}

	g := Grid{
		Rows:   rows,
		Cols:   cols,
		Bricks: make([]Brick, 0, rows*cols),
	}

	for r := range rows {
		for c := range cols {
			health := rows - r
			if len(cfg.Layout) > 0 {
				health = layoutHealth(cfg.Layout[r], c)
			}
			g.Bricks = append(g.Bricks, Brick{
				Row: r,
				Col: c,
				Rect: core.RectF{
					X: float64(c)*(cfg.Width+cfg.Padding) + cfg.OffsetLeft,
					Y: float64(r)*(cfg.Height+cfg.Padding) + cfg.OffsetTop,
					W: cfg.Width,
					H: cfg.Height,
				},
				Active:    health > 0,
				Health:    health,
				MaxHealth: health,
				Points:    cfg.Points,
			})
		}
	}

	return g
}

// layoutHealth reads the health digit at column c of a layout line.
func layoutHealth(line string, c int) int {
	if c >= len(line) {
		return 0
	}
	ch := line[c]
	if ch < '1' || ch > '9' {
		return 0
	}
	return int(ch - '0')
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	clone := g
	clone.Bricks = make([]Brick, len(g.Bricks))
	copy(clone.Bricks, g.Bricks)
	return clone
}

// At returns the brick at row r, column c.
func (g Grid) At(r, c int) Brick {
	return g.Bricks[r*g.Cols+c]
}

// ActiveCount returns the number of bricks still standing.
func (g Grid) ActiveCount() int {
	count := 0
	for _, b := range g.Bricks {
		if b.Active {
			count++
		}
	}
	return count
}

// hitTest returns the index of the first active brick whose rect strictly
// contains p, or -1.
func (g Grid) hitTest(p core.Vec) int {
	for i := range g.Bricks {
		if g.Bricks[i].Active && g.Bricks[i].Rect.ContainsStrict(p) {
			return i
		}
	}
	return -1
}
