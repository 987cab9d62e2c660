package defense

import (
	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// Tile is the kind of a map cell.
type Tile uint8

const (
	TileBuildable Tile = iota
	TilePath
	TileBlocked
)

// Tile characters in map rows
const (
	buildableRune = '.'
	pathRune      = '#'
	blockedRune   = 'X'
)

// Map is the tile grid plus the enemy path.
type Map struct {
	Cols, Rows int
	TileSize   float64
	Tiles      []Tile     // Row-major
	Waypoints  []core.Vec // World units
}

// NewMap builds the map from config. Waypoint tile coordinates may lie
// outside the grid; they map to the centers of those virtual tiles.
func NewMap(cfg config.DefenseMap) Map {
	m := Map{
		Rows:     len(cfg.Rows),
		TileSize: cfg.TileSize,
	}
	for _, row := range cfg.Rows {
		m.Cols = max(m.Cols, len(row))
	}

	m.Tiles = make([]Tile, m.Cols*m.Rows)
	for r, row := range cfg.Rows {
		for c := range m.Cols {
			t := TileBlocked
			if c < len(row) {
				switch row[c] {
				case buildableRune:
					t = TileBuildable
				case pathRune:
					t = TilePath
				}
			}
			m.Tiles[r*m.Cols+c] = t
		}
	}

	m.Waypoints = make([]core.Vec, len(cfg.Waypoints))
	for i, wp := range cfg.Waypoints {
		m.Waypoints[i] = core.V((wp.X+0.5)*m.TileSize, (wp.Y+0.5)*m.TileSize)
	}
	return m
}

// Width returns the map width in world units.
func (m Map) Width() float64 {
	return float64(m.Cols) * m.TileSize
}

// Height returns the map height in world units.
func (m Map) Height() float64 {
	return float64(m.Rows) * m.TileSize
}

// InBounds reports whether (col, row) is a tile of the grid.
func (m Map) InBounds(col, row int) bool {
	return col >= 0 && col < m.Cols && row >= 0 && row < m.Rows
}

// TileAt returns the tile at (col, row). Out-of-bounds tiles are blocked.
func (m Map) TileAt(col, row int) Tile {
	if !m.InBounds(col, row) {
		return TileBlocked
	}
	return m.Tiles[row*m.Cols+col]
}

// TileCenter returns the world position of the center of (col, row).
func (m Map) TileCenter(col, row int) core.Vec {
	return core.V((float64(col)+0.5)*m.TileSize, (float64(row)+0.5)*m.TileSize)
}

// TileOf returns the tile containing world position p.
func (m Map) TileOf(p core.Vec) (col, row int, ok bool) {
	if p.X < 0 || p.Y < 0 || m.TileSize <= 0 {
		return 0, 0, false
	}
	col, row = int(p.X/m.TileSize), int(p.Y/m.TileSize)
	return col, row, m.InBounds(col, row)
}
