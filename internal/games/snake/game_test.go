package snake

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/frame-arcade/internal/core"
	"github.com/vovakirdan/frame-arcade/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Box the snake around the field so it lives for a while
	turns := []core.Action{core.ActionDown, core.ActionLeft, core.ActionUp, core.ActionRight}
	inputSequence := make([]core.InputFrame, 900)
	for i := range inputSequence {
		inputSequence[i] = core.NewInputFrame()
		if i%40 == 0 {
			inputSequence[i].Set(turns[(i/40)%len(turns)])
		}
	}

	run := func(seed int64) []Snapshot {
		g := New()
		g.Reset(testRuntime(seed))
		var snaps []Snapshot
		for _, in := range inputSequence {
			g.Step(in)
			snaps = append(snaps, g.Snapshot())
		}
		return snaps
	}

	a, b := run(99), run(99)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tick %d: runs diverged: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGameSeedFixesFood(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	first := g.Sim().Food

	g.Reset(testRuntime(5))
	if got := g.Sim().Food; got != first {
		t.Errorf("food after reset with the same seed = %v, want %v", got, first)
	}
}

func TestGameIntentSkipsReversal(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.Set(core.ActionLeft)
	in.Set(core.ActionUp)
	if got := g.intent(in); got.Turn != DirUp {
		t.Errorf("turn = %v, want up", got.Turn)
	}

	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	if got := g.intent(in); got.Turn != DirNone {
		t.Errorf("turn = %v, want none while heading right", got.Turn)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	if !g.Step(pause).State.Paused {
		t.Fatal("game should be paused")
	}
	tick := g.Snapshot().Tick
	g.Step(core.NewInputFrame())
	if g.Snapshot().Tick != tick {
		t.Error("paused game should not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestGameRestartAfterLoss(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	g.state.Body = []Cell{{35, 5}, {34, 5}, {33, 5}}
	g.state.Food = Cell{0, 0}
	for i := 0; i < 4; i++ {
		g.Step(core.NewInputFrame())
	}
	if st := g.State(); !st.GameOver || st.Won {
		t.Fatalf("expected a loss, got %+v", st)
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	if g.Step(restart).State.GameOver {
		t.Error("restart should start a new match")
	}
	if snap := g.Snapshot(); snap.Length != 3 || snap.Tick != 0 {
		t.Errorf("restart snapshot = %+v", snap)
	}
}

func TestConfigureDifficulty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("snake:\n  move_every: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := New()
	if err := g.Configure(path, "hard"); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	g.Reset(testRuntime(1))
	if got := g.Sim().Rules.MoveEvery; got != 4 {
		t.Errorf("hard move_every = %d, want 4", got)
	}

	if err := g.Configure(filepath.Join(t.TempDir(), "missing.yaml"), ""); err == nil {
		t.Error("missing config should fail")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.SetBestScore(17)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"Score: 0", "Length: 3", "Best: 17"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD = %q, missing %q", hud, want)
		}
	}
	out := screen.String()
	if !strings.ContainsRune(out, SegmentChar) || !strings.ContainsRune(out, FoodChar) {
		t.Error("snake and food should be drawn")
	}

	// Board is 74x22 centered under the HUD; head cell (10,5) is two columns wide.
	x, y := 3+1+10*2, 1+1+5
	if screen.Get(x, y) != SegmentChar || screen.Get(x+1, y) != SegmentChar {
		t.Errorf("head not drawn at (%d,%d)", x, y)
	}
	if screen.Get(3, 1) != '┌' {
		t.Errorf("border corner = %q, want box corner", screen.Get(3, 1))
	}
}

func TestGameTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60})

	screen := core.NewScreen(60, 20)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should show a warning")
	}
	if g.Step(core.NewInputFrame()).State.GameOver || g.Snapshot().Tick != 0 {
		t.Error("too-small game should not advance")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.Create("snake")
	if err != nil {
		t.Fatalf("Create(snake): %v", err)
	}
	if g.ID() != "snake" || g.Title() != "Snake" {
		t.Errorf("game = %s/%s", g.ID(), g.Title())
	}
	if _, ok := g.(registry.BestScoreAware); !ok {
		t.Error("snake should accept a best score")
	}
	if _, ok := g.(registry.Configurable); !ok {
		t.Error("snake should accept a config file")
	}
}
