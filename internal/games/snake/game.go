// Package snake implements Snake on a bounded grid: the snake grows on
// every food it eats and dies on the edge or its own body.
package snake

import (
	"fmt"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

// Visual characters for rendering. Each grid cell is two columns wide so
// the board looks square in a terminal.
const (
	SegmentChar = '█'
	FoodChar    = '●'
)

// Game adapts the Snake simulation to the platform game interface.
type Game struct {
	cfg        config.SnakeConfig
	configured bool

	runtime core.RuntimeConfig
	state   State
	paused  bool
	best    int
	board   core.Rect // Screen area inside the border

	screenTooSmall bool
}

// New creates a Snake game.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Snake"
}

// Configure loads the config file and applies a difficulty preset.
func (g *Game) Configure(path string, preset string) error {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		return err
	}
	if p := config.ParsePreset(preset); p != "" {
		config.ApplySnakePreset(&cfg, p)
		if err := config.ValidateSnake(cfg); err != nil {
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

// Reset initializes or restarts the game. The runtime seed fixes food
// placement, so equal seeds and inputs replay the same match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.configured {
		cfg, err := config.LoadSnake("")
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		g.cfg = cfg
		g.configured = true
	}

	g.state = NewState(g.cfg, uint64(runtime.Seed)) //#nosec G115 -- seed bits are reused as-is
	g.paused = false

	w, h := g.cfg.Grid.Columns*2+2, g.cfg.Grid.Rows+2
	g.screenTooSmall = runtime.ScreenW < w || runtime.ScreenH < h+1

	// HUD takes the top row; the board is centered below it
	x := (runtime.ScreenW - w) / 2
	y := 1 + (runtime.ScreenH-1-h)/2
	g.board = core.NewRect(x+1, y+1, w-2, h-2)
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

// intent picks the first pressed direction that is not a reversal, so
// holding two keys still turns.
func (g *Game) intent(in core.InputFrame) Intent {
	keys := []struct {
		action core.Action
		dir    Direction
	}{
		{core.ActionUp, DirUp},
		{core.ActionDown, DirDown},
		{core.ActionLeft, DirLeft},
		{core.ActionRight, DirRight},
	}
	for _, k := range keys {
		if in.Has(k.action) && !k.dir.Opposite(g.state.Heading) {
			return Intent{Turn: k.dir}
		}
	}
	return Intent{}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need %dx%d", g.cfg.Grid.Columns*2+2, g.cfg.Grid.Rows+3))
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(g.board.X-1, g.board.Y-1, g.board.W+2, g.board.H+2))

	if g.state.HasFood {
		x, y := g.toScreen(g.state.Food)
		dst.SetColored(x, y, FoodChar, core.ColorRed)
	}
	for i, c := range g.state.Body {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorYellow
		}
		x, y := g.toScreen(c)
		dst.SetColored(x, y, SegmentChar, color)
		dst.SetColored(x+1, y, SegmentChar, color)
	}

	g.renderOverlay(dst)
}

// toScreen returns the left screen column and row of grid cell c.
func (g *Game) toScreen(c Cell) (x, y int) {
	return g.board.X + c.X*2, g.board.Y + c.Y
}

// renderHUD draws score, length and best score on the top row.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.state.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Length: %d", len(g.state.Body)))

	best := fmt.Sprintf("Best: %d", max(g.best, g.state.Score))
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)
}

// renderOverlay draws pause and end-of-game messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state.Won:
		dst.DrawMessageBox("BOARD CLEARED!", fmt.Sprintf("Final Score: %d  |  Press R to restart", g.state.Score))
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

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}
