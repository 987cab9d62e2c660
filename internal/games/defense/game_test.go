package defense

import (
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
	cfg := testRuntime(7)

	inputs := make([]core.InputFrame, 1500)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%97 == 0:
			inputs[i].ClickAt(i%80, 2+i%20)
		case i%13 == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%7 == 0:
			inputs[i].Set(core.ActionDown)
		case i%5 == 0:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(cfg)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1 := run()
	snap2 := run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Tick == 0 {
		t.Error("simulation did not advance")
	}
}

func TestGameClickPlacesTower(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	towers := len(g.Sim().Towers)

	// Cell (5,3) lies in tile (0,0): x 5.5/80*600, y 2.5/22*400.
	in := core.NewInputFrame()
	in.ClickAt(5, 3)
	g.Step(in)
	if len(g.Sim().Towers) != towers {
		t.Fatal("click with an empty meter should be ignored")
	}

	g.state.Meter.Value = g.state.Meter.Cost
	in = core.NewInputFrame()
	in.ClickAt(5, 3)
	g.Step(in)

	s := g.Sim()
	if len(s.Towers) != towers+1 {
		t.Fatalf("towers = %d, want %d", len(s.Towers), towers+1)
	}
	last := s.Towers[len(s.Towers)-1]
	if last.Col != 0 || last.Row != 0 {
		t.Errorf("tower at (%d,%d), want (0,0)", last.Col, last.Row)
	}
	if s.Meter.Value != 0 {
		t.Errorf("meter = %d, want 0", s.Meter.Value)
	}
}

func TestGameClickOnHUDIgnored(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.state.Meter.Value = 500
	towers := len(g.Sim().Towers)

	in := core.NewInputFrame()
	in.ClickAt(5, 0)
	g.Step(in)

	if len(g.Sim().Towers) != towers || g.Sim().Meter.Value != 500 {
		t.Error("click outside the map should be ignored")
	}
}

func TestGameCursorConfirm(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	for i := 0; i < 20; i++ {
		in := core.NewInputFrame()
		in.Set(core.ActionLeft)
		in.Set(core.ActionDown)
		g.Step(in)
	}
	if c := g.Cursor(); c.Col != 0 || c.Row != 7 {
		t.Fatalf("cursor = %+v, want clamped to (0,7)", c)
	}

	g.state.Meter.Value = g.state.Meter.Cost
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	result := g.Step(confirm)

	found := false
	for _, e := range result.Events {
		if e.Type == core.EventTowerPlaced {
			found = true
		}
	}
	if !found {
		t.Error("confirm on a free buildable tile should place a tower")
	}
}

func TestGamePointerMovesCursor(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	in := core.NewInputFrame()
	in.MovePointer(79, 22)
	g.Step(in)

	if c := g.Cursor(); c.Col != 11 || c.Row != 7 {
		t.Errorf("cursor = %+v, want (11,7)", c)
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
}

func TestWeakestVariant(t *testing.T) {
	g := NewWeakest()
	g.Reset(testRuntime(1))
	if g.Sim().Rules.Tower.Targeting != TargetWeakest {
		t.Error("weakest variant should target by health")
	}

	g = New()
	g.Reset(testRuntime(1))
	if g.Sim().Rules.Tower.Targeting != TargetNearest {
		t.Error("default variant should target the nearest enemy")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))
	g.SetBestScore(90)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "Build: 0/50") || !strings.Contains(hud, "Best: 90") {
		t.Errorf("HUD = %q", hud)
	}
	out := screen.String()
	if !strings.ContainsRune(out, PathChar) || !strings.ContainsRune(out, TowerChar) {
		t.Error("map and initial tower should be drawn")
	}
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"defense", "defense_weakest"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID = %q, want %q", g.ID(), id)
		}
		if _, ok := g.(registry.Configurable); !ok {
			t.Errorf("%s should be configurable", id)
		}
	}
}
