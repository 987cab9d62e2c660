// Package breakout implements a Breakout brick breaker with speed that
// depends on the depth of the last brick hit.
package breakout

import (
	"fmt"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
	CrackChar  = '▓' // Brick that has taken a hit
)

// Brick colors by row, deepest row first.
var rowColors = []core.Color{
	core.ColorPurple,
	core.ColorPink,
	core.ColorBlue,
	core.ColorGreen,
	core.ColorOrange,
}

// Minimum terminal size for a playable field
const (
	minScreenW = 30
	minScreenH = 15
)

// Game adapts the Breakout simulation to the platform game interface.
type Game struct {
	id      string
	title   string
	reflect Reflect // Forced policy; -1 uses the config value

	cfg        config.BreakoutConfig
	configured bool

	runtime  core.RuntimeConfig
	state    State
	paused   bool
	best     int
	viewport core.Viewport

	screenTooSmall bool
}

// New creates a Breakout game whose paddle reflection follows the config
// (hit-angle by default).
func New() *Game {
	return &Game{id: "breakout", title: "Breakout", reflect: -1}
}

// NewClassic creates a Breakout game that always bounces by inverting the
// vertical velocity.
func NewClassic() *Game {
	return &Game{id: "breakout_classic", title: "Breakout (Classic Bounce)", reflect: ReflectInvert}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Configure loads the config file and applies a difficulty preset.
func (g *Game) Configure(path string, preset string) error {
	cfg, err := config.LoadBreakout(path)
	if err != nil {
		return err
	}
	if p := config.ParsePreset(preset); p != "" {
		config.ApplyBreakoutPreset(&cfg, p)
		if err := config.ValidateBreakout(cfg); err != nil {
			return fmt.Errorf("difficulty %s: %w", p, err)
		}
	}
	g.cfg = cfg
	g.configured = true
	return nil
}

// SetBestScore sets the persisted best score shown in the HUD.
func (g *Game) SetBestScore(best int) {
	g.best = best
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.configured {
		cfg, err := config.LoadBreakout("")
		if err != nil {
			cfg = config.DefaultBreakoutConfig()
		}
		g.cfg = cfg
		g.configured = true
	}

	reflect := g.reflect
	if reflect < 0 {
		reflect = ParseReflect(g.cfg.Paddle.Reflect)
	}

	g.state = NewState(g.cfg, reflect)
	g.paused = false
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	// HUD takes the top row
	g.viewport = core.NewViewport(g.cfg.World.Width, g.cfg.World.Height,
		core.NewRect(0, 1, runtime.ScreenW, runtime.ScreenH-1))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.state.Over() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.state.Over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	next, events := Tick(g.state, g.intent(in))
	g.state = next

	return core.StepResult{State: g.State(), Events: events}
}

// intent translates platform input into world-space intent.
func (g *Game) intent(in core.InputFrame) Intent {
	intent := Intent{
		Left:  in.Has(core.ActionLeft),
		Right: in.Has(core.ActionRight),
	}
	if in.Pointer != nil {
		if p, ok := g.viewport.ToWorld(in.Pointer.X, in.Pointer.Y); ok {
			intent.PointerX = &p.X
		}
	}
	return intent
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws score, lives and best score on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.state.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", g.state.Lives))

	best := fmt.Sprintf("Best: %d", max(g.best, g.state.Score))
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)
}

// renderBricks draws all active bricks, scaled into the viewport.
func (g *Game) renderBricks(dst *core.Screen) {
	for _, b := range g.state.Grid.Bricks {
		if !b.Active {
			continue
		}
		glyph := BrickChar
		if b.Health < b.MaxHealth {
			glyph = CrackChar
		}
		color := rowColors[b.Row%len(rowColors)]

		r := g.viewport.RectToCells(b.Rect)
		// Keep a one-cell gap between neighbours when there is room
		if r.W > 2 {
			r.W--
		}
		dst.FillRect(r, glyph, color)
	}
}

// renderPaddle draws the player's paddle.
func (g *Game) renderPaddle(dst *core.Screen) {
	r := g.viewport.RectToCells(g.state.Paddle.Rect())
	r.H = 1
	dst.FillRect(r, PaddleChar, core.ColorCyan)
}

// renderBall draws the ball.
func (g *Game) renderBall(dst *core.Screen) {
	x, y := g.viewport.ToCell(g.state.Ball.Pos)
	dst.SetColored(x, y, BallChar, core.ColorWhite)
}

// renderOverlay draws pause and end-of-game messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state.Won:
		dst.DrawMessageBox("YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.state.Score))
	case g.state.Lost:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Over(),
		Won:      g.state.Won,
		Paused:   g.paused,
	}
}

// Sim returns a copy of the simulation state.
func (g *Game) Sim() State {
	return g.state.Clone()
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_classic", func() registry.Game {
		return NewClassic()
	})
}
