// Package defense implements a tower defense game: enemies follow a
// waypoint path, towers shoot homing projectiles, and rewards fill a build
// meter that pays for new towers.
package defense

import (
	"fmt"

	"github.com/vovakirdan/frame-arcade/internal/config"
	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

// Visual characters for rendering
const (
	BuildableChar  = '·'
	PathChar       = '░'
	BlockedChar    = '▓'
	TowerChar      = 'T'
	EnemyChar      = '●'
	WeakEnemyChar  = '○' // Below half health
	ProjectileChar = '•'
)

// Minimum terminal size for a playable field
const (
	minScreenW = 36
	minScreenH = 14
)

// Game adapts the Tower Defense simulation to the platform game interface.
type Game struct {
	id        string
	title     string
	targeting Targeting // Forced rule; -1 uses the config value

	cfg        config.DefenseConfig
	configured bool

	runtime  core.RuntimeConfig
	state    State
	paused   bool
	best     int
	cursor   Spot
	viewport core.Viewport

	screenTooSmall bool
}

// New creates a Tower Defense game whose targeting follows the config
// (nearest enemy by default).
func New() *Game {
	return &Game{id: "defense", title: "Tower Defense", targeting: -1}
}

// NewWeakest creates a Tower Defense game whose towers shoot the enemy with
// the least health.
func NewWeakest() *Game {
	return &Game{id: "defense_weakest", title: "Tower Defense (Weakest First)", targeting: TargetWeakest}
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
	cfg, err := config.LoadDefense(path)
	if err != nil {
		return err
	}
	if p := config.ParsePreset(preset); p != "" {
		config.ApplyDefensePreset(&cfg, p)
		if err := config.ValidateDefense(cfg); err != nil {
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
		cfg, err := config.LoadDefense("")
		if err != nil {
			cfg = config.DefaultDefenseConfig()
		}
		g.cfg = cfg
		g.configured = true
	}

	targeting := g.targeting
	if targeting < 0 {
		targeting = ParseTargeting(g.cfg.Tower.Targeting)
	}

	g.state = NewState(g.cfg, targeting)
	g.paused = false
	g.cursor = Spot{Col: g.state.Rules.Map.Cols / 2, Row: g.state.Rules.Map.Rows / 2}
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	// HUD on the top row, hints on the bottom row
	m := g.state.Rules.Map
	g.viewport = core.NewViewport(m.Width(), m.Height(),
		core.NewRect(0, 1, runtime.ScreenW, runtime.ScreenH-2))
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

// intent moves the cursor and turns clicks or confirm into a placement.
func (g *Game) intent(in core.InputFrame) Intent {
	m := g.state.Rules.Map

	if in.Has(core.ActionLeft) {
		g.cursor.Col--
	}
	if in.Has(core.ActionRight) {
		g.cursor.Col++
	}
	if in.Has(core.ActionUp) {
		g.cursor.Row--
	}
	if in.Has(core.ActionDown) {
		g.cursor.Row++
	}
	if in.Pointer != nil {
		if spot, ok := g.spotAt(*in.Pointer); ok {
			g.cursor = spot
		}
	}
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, m.Cols-1)
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, m.Rows-1)

	var intent Intent
	switch {
	case in.Click != nil:
		if spot, ok := g.spotAt(*in.Click); ok {
			intent.Place = &spot
		}
	case in.Has(core.ActionConfirm) || in.Has(core.ActionJump):
		spot := g.cursor
		intent.Place = &spot
	}
	return intent
}

// spotAt maps a screen cell to the map tile under it.
func (g *Game) spotAt(p core.Point) (Spot, bool) {
	world, ok := g.viewport.ToWorld(p.X, p.Y)
	if !ok {
		return Spot{}, false
	}
	col, row, ok := g.state.Rules.Map.TileOf(world)
	return Spot{Col: col, Row: row}, ok
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderMap(dst)
	g.renderCursor(dst)
	g.renderTowers(dst)
	g.renderEnemies(dst)
	g.renderProjectiles(dst)
	g.renderHUD(dst)
	g.renderOverlay(dst)
}

// tileCells returns the screen cells covered by a tile.
func (g *Game) tileCells(col, row int) core.Rect {
	ts := g.state.Rules.Map.TileSize
	return g.viewport.RectToCells(core.RectF{
		X: float64(col) * ts,
		Y: float64(row) * ts,
		W: ts,
		H: ts,
	})
}

// renderMap draws the tile grid.
func (g *Game) renderMap(dst *core.Screen) {
	m := g.state.Rules.Map
	for row := range m.Rows {
		for col := range m.Cols {
			r := g.tileCells(col, row)
			switch m.TileAt(col, row) {
			case TilePath:
				dst.FillRect(r, PathChar, core.ColorGray)
			case TileBlocked:
				dst.FillRect(r, BlockedChar, core.ColorDarkGray)
			default:
				dst.FillRect(r, BuildableChar, core.ColorDarkGray)
			}
		}
	}
}

// renderCursor outlines the tile under the cursor. Green means a tower can
// be built there right now.
func (g *Game) renderCursor(dst *core.Screen) {
	color := core.ColorRed
	if g.state.Meter.PlacementMode() && g.state.CanBuild(g.cursor) {
		color = core.ColorGreen
	}
	r := g.tileCells(g.cursor.Col, g.cursor.Row)
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			cell := dst.GetCell(x, y)
			dst.SetColored(x, y, cell.Rune, color)
		}
	}
}

// renderTowers draws every tower at its tile center.
func (g *Game) renderTowers(dst *core.Screen) {
	for _, t := range g.state.Towers {
		x, y := g.viewport.ToCell(t.Pos)
		color := core.ColorBlue
		if t.Cooldown > 0 {
			color = core.ColorCyan
		}
		dst.SetColored(x, y, TowerChar, color)
	}
}

// renderEnemies draws enemies that are on the field.
func (g *Game) renderEnemies(dst *core.Screen) {
	g.state.Enemies.Each(func(_ Handle, e *Enemy) {
		x, y := g.viewport.ToCell(e.Pos)
		if !g.viewport.Area.Contains(x, y) {
			return
		}
		glyph := EnemyChar
		if e.Health*2 < e.MaxHealth {
			glyph = WeakEnemyChar
		}
		dst.SetColored(x, y, glyph, core.ColorBrightRed)
	})
}

// renderProjectiles draws projectiles in flight.
func (g *Game) renderProjectiles(dst *core.Screen) {
	for _, p := range g.state.Projectiles {
		x, y := g.viewport.ToCell(p.Pos)
		dst.SetColored(x, y, ProjectileChar, core.ColorYellow)
	}
}

// renderHUD draws the meter, wave and score on the top row and a hint on
// the bottom row.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state

	meterColor := core.ColorWhite
	if s.Meter.PlacementMode() {
		meterColor = core.ColorBrightGreen
	}
	dst.DrawTextColored(1, 0, fmt.Sprintf("Build: %d/%d", s.Meter.Value, s.Meter.Cost), meterColor)

	status := fmt.Sprintf("Wave %d/%d  Score: %d", s.Spawner.Wave, s.Rules.Waves.Count, s.Score())
	if lives := s.LivesLeft(); lives >= 0 {
		status += fmt.Sprintf("  Lives: %d", lives)
	} else {
		status += fmt.Sprintf("  Escaped: %d", s.Escaped)
	}
	dst.DrawTextCentered(0, status)

	best := fmt.Sprintf("Best: %d", max(g.best, s.Score()))
	dst.DrawTextColored(dst.Width()-len(best)-1, 0, best, core.ColorYellow)

	hint := "Arrows/mouse: aim  Enter/click: build  P: pause"
	if s.Meter.PlacementMode() {
		hint = "Ready to build! Enter or click a free tile"
	}
	dst.DrawTextCentered(dst.Height()-1, hint)
}

// renderOverlay draws pause and end-of-game messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.state.Won:
		dst.DrawMessageBox("DEFENDED!", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score()))
	case g.state.Lost:
		dst.DrawMessageBox("OVERRUN", fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score()))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.state.Score(),
		GameOver: g.state.Over(),
		Won:      g.state.Won,
		Paused:   g.paused,
	}
}

// Sim returns a copy of the simulation state.
func (g *Game) Sim() State {
	return g.state.Clone()
}

// Cursor returns the tile under the keyboard cursor.
func (g *Game) Cursor() Spot {
	return g.cursor
}

// Register the games with the registry
func init() {
	registry.Register("defense", func() registry.Game {
		return New()
	})
	registry.Register("defense_weakest", func() registry.Game {
		return NewWeakest()
	})
}
