package breakout

import (
	"math"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
)

// Reflect selects how the paddle bounces the ball.
type Reflect int

const (
	ReflectAngle  Reflect = iota // Bounce angle follows the hit offset
	ReflectInvert                // Vertical velocity is flipped
)

// ParseReflect converts a config value to a Reflect policy.
func ParseReflect(s string) Reflect {
	if s == config.ReflectInvert {
		return ReflectInvert
	}
	return ReflectAngle
}

// Rules are the fixed parameters of a match, derived from config.
type Rules struct {
	WorldW, WorldH float64
	BaseSpeed      float64 // Speed floor of the per-row rescale
	RowSpeedStep   float64
	ServeVel       core.Vec // Ball velocity after a reset
	ServeOffset    float64  // Serve point distance above the bottom edge
	PaddleSpeed    float64  // Keyboard step per tick
	Reflect        Reflect
	MaxAngle       float64 // Radians
}

// Ball is the moving ball. Pos is its center.
type Ball struct {
	Pos    core.Vec
	Vel    core.Vec
	Radius float64
	Speed  float64 // Target speed set by the last rescale
}

// Paddle is the player's bat. X is the left edge, Y the top.
type Paddle struct {
	X, Y   float64
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the paddle.
func (p Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Rect returns the paddle bounds.
func (p Paddle) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// State is the complete simulation state of one Breakout match.
type State struct {
	Rules  Rules
	Ball   Ball
	Paddle Paddle
	Grid   Grid

	Score     int
	Lives     int
	Destroyed int
	Total     int // Active bricks at reset
	Won       bool
	Lost      bool
	Tick      int
}

// NewState builds the initial state for a match.
func NewState(cfg config.BreakoutConfig, reflect Reflect) State {
	rules := Rules{
		WorldW:       cfg.World.Width,
		WorldH:       cfg.World.Height,
		BaseSpeed:    cfg.Ball.BaseSpeed,
		RowSpeedStep: cfg.Ball.RowSpeedStep,
		ServeVel:     core.V(cfg.Ball.StartDX, cfg.Ball.StartDY),
		ServeOffset:  cfg.Ball.StartOffset,
		PaddleSpeed:  cfg.Paddle.Speed,
		Reflect:      reflect,
		MaxAngle:     cfg.Paddle.MaxAngleDeg * math.Pi / 180,
	}

	grid := NewGrid(cfg.Bricks)
	s := State{
		Rules: rules,
		Ball:  Ball{Radius: cfg.Ball.Radius},
		Paddle: Paddle{
			Y:      cfg.World.Height - cfg.Paddle.BottomOffset,
			Width:  cfg.Paddle.Width,
			Height: cfg.Paddle.Height,
		},
		Grid:  grid,
		Lives: cfg.Gameplay.Lives,
		Total: grid.ActiveCount(),
	}
	s.serve()
	return s
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Grid = s.Grid.Clone()
	return s
}

// Over reports whether the match has ended.
func (s State) Over() bool {
	return s.Won || s.Lost
}

// serve puts the ball back at the serve point and centers the paddle.
func (s *State) serve() {
	s.Ball.Pos = core.V(s.Rules.WorldW/2, s.Rules.WorldH-s.Rules.ServeOffset)
	s.Ball.Vel = s.Rules.ServeVel
	s.Ball.Speed = s.Rules.ServeVel.Len()
	s.Paddle.X = (s.Rules.WorldW - s.Paddle.Width) / 2
}
