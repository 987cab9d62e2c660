package core

import "math"

// Viewport maps a world rectangle (simulation units) onto a rectangle of
// screen cells. Games simulate in world units and only touch cells when
// rendering or reading pointer input.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// NewViewport creates a viewport mapping a worldW x worldH world onto area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

func (v Viewport) sx() float64 {
	if v.WorldW <= 0 {
		return 0
	}
	return float64(v.Area.W) / v.WorldW
}

func (v Viewport) sy() float64 {
	if v.WorldH <= 0 {
		return 0
	}
	return float64(v.Area.H) / v.WorldH
}

// ToCell converts a world position to the screen cell containing it.
func (v Viewport) ToCell(p Vec) (int, int) {
	x := v.Area.X + int(math.Floor(p.X*v.sx()))
	y := v.Area.Y + int(math.Floor(p.Y*v.sy()))
	return x, y
}

// ToWorld converts a screen cell to the world position of its center.
// ok is false when the cell lies outside the viewport area.
func (v Viewport) ToWorld(cellX, cellY int) (p Vec, ok bool) {
	if !v.Area.Contains(cellX, cellY) || v.Area.W == 0 || v.Area.H == 0 {
		return Vec{}, false
	}
	x := (float64(cellX-v.Area.X) + 0.5) / v.sx()
	y := (float64(cellY-v.Area.Y) + 0.5) / v.sy()
	return Vec{X: x, Y: y}, true
}

// RectToCells converts a world rectangle to the covering cell rectangle.
// The result is at least one cell wide and tall.
func (v Viewport) RectToCells(r RectF) Rect {
	x0, y0 := v.ToCell(Vec{X: r.X, Y: r.Y})
	x1 := v.Area.X + int(math.Ceil(r.Right()*v.sx()))
	y1 := v.Area.Y + int(math.Ceil(r.Bottom()*v.sy()))
	return NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}
