package bricks

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/brickfield/internal/core"
	"github.com/vovakirdan/brickfield/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     42,
	}
}

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(testRuntime())
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameDeterminism(t *testing.T) {
	inputSequence := make([]core.InputFrame, 600)
	for i := range inputSequence {
		switch {
		case i == 10:
			inputSequence[i] = input(core.ActionLaunch)
		case i > 10 && i%7 < 3:
			inputSequence[i] = input(core.ActionRight)
		case i > 10 && i%7 > 4:
			inputSequence[i] = input(core.ActionLeft)
		default:
			inputSequence[i] = input()
		}
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputSequence {
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
	if snap1.Score != snap2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", snap1.Score, snap2.Score)
	}
	if snap1.BallX != snap2.BallX || snap1.BallY != snap2.BallY {
		t.Errorf("Determinism failed: ball positions differ")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)

	if g.Phase() != StateServe {
		t.Errorf("Reset should set state to serve, got %s", g.Phase())
	}
	state := g.State()
	if state.Score != 0 || state.Lives != 3 || state.GameOver || state.Paused {
		t.Errorf("unexpected state after Reset: %+v", state)
	}
	if n := len(g.Model().Bricks()); n != 100 {
		t.Errorf("Reset should build 100 bricks, got %d", n)
	}
	if g.Model().Ball().Live {
		t.Error("Reset should leave the ball resting")
	}
}

func TestGameServeFollowsPaddle(t *testing.T) {
	g := newTestGame(t)
	startX := g.Model().Paddle().X

	for range 5 {
		g.Step(input(core.ActionRight))
	}

	paddle := g.Model().Paddle()
	if paddle.X <= startX {
		t.Fatalf("paddle should move right, X %v -> %v", startX, paddle.X)
	}
	ball := g.Model().Ball()
	if ball.Live {
		t.Error("ball should stay at rest until launched")
	}
	if ball.Center.X != paddle.X+paddle.Width/2 {
		t.Errorf("resting ball X = %v, expected paddle center %v", ball.Center.X, paddle.X+paddle.Width/2)
	}
	if g.Phase() != StateServe {
		t.Errorf("state = %s, expected serve", g.Phase())
	}
}

func TestGameLaunch(t *testing.T) {
	g := newTestGame(t)
	before := g.Model().Ball()

	g.Step(input(core.ActionLaunch))

	if g.Phase() != StatePlaying {
		t.Errorf("state = %s, expected playing", g.Phase())
	}
	ball := g.Model().Ball()
	if !ball.Live {
		t.Fatal("ball should be live after launch")
	}
	if ball.Center.Y >= before.Center.Y {
		t.Errorf("ball should move up after launch, Y %v -> %v", before.Center.Y, ball.Center.Y)
	}
}

func TestGamePaddleClampedToScene(t *testing.T) {
	g := newTestGame(t)

	for range 200 {
		g.Step(input(core.ActionLeft))
	}
	if x := g.Model().Paddle().X; x != 0 {
		t.Errorf("paddle X = %v, expected 0 at the left wall", x)
	}

	for range 200 {
		g.Step(input(core.ActionRight))
	}
	if x := g.Model().Paddle().X; x != 924 {
		t.Errorf("paddle X = %v, expected 924 at the right wall", x)
	}
}

func TestGamePointerCentersPaddle(t *testing.T) {
	tests := []struct {
		name     string
		col      int
		expected float64
	}{
		{"middle", 40, 40.5*1024/80 - 50},
		{"far left", 0, 0},
		{"far right", 79, 924},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			in := input()
			in.PointAt(tc.col)
			g.Step(in)

			if x := g.Model().Paddle().X; math.Abs(x-tc.expected) > 1e-9 {
				t.Errorf("paddle X = %v, expected %v", x, tc.expected)
			}
		})
	}
}

// dropBall puts a live ball just above the bottom, falling.
func dropBall(g *Game) {
	g.model.ball = Ball{
		Center:   core.Position{X: 500, Y: 760},
		Radius:   5,
		Velocity: core.Velocity{DX: 0, DY: 200},
		Live:     true,
	}
	g.state = StatePlaying
}

func TestGameLosesLives(t *testing.T) {
	g := newTestGame(t)

	dropBall(g)
	result := g.Step(input())

	if !result.Has(core.EventMiss) {
		t.Errorf("expected a miss event, got %v", result.Events)
	}
	if result.State.Lives != 2 {
		t.Errorf("Lives = %d, expected 2", result.State.Lives)
	}
	if g.Phase() != StateServe {
		t.Errorf("state = %s, expected serve after a miss", g.Phase())
	}
	if g.Model().Ball().Live {
		t.Error("ball should be back on the paddle")
	}

	dropBall(g)
	g.Step(input())
	dropBall(g)
	result = g.Step(input())

	if !result.State.GameOver || result.State.Won {
		t.Errorf("expected game over without a win, got %+v", result.State)
	}
	if result.State.Lives != 0 {
		t.Errorf("Lives = %d, expected 0", result.State.Lives)
	}

	// Game over ignores play input until restart.
	g.Step(input(core.ActionLaunch))
	if g.Phase() != StateGameOver {
		t.Errorf("state = %s, expected gameover", g.Phase())
	}

	g.Step(input(core.ActionRestart))
	if g.Phase() != StateServe || g.State().Lives != 3 {
		t.Errorf("restart should start a new game, got %s %+v", g.Phase(), g.State())
	}
}

func TestGameScoresAndWins(t *testing.T) {
	g := newTestGame(t)
	g.model.bricks = Bricks{{X: 500, Y: 100, Width: 50, Height: 20}}
	g.model.ball = Ball{
		Center:   core.Position{X: 520, Y: 125},
		Radius:   5,
		Velocity: core.Velocity{DX: 0, DY: -200},
		Live:     true,
	}
	g.state = StatePlaying

	result := g.Step(input())

	if !result.Has(core.EventBrick) || !result.Has(core.EventWin) {
		t.Errorf("expected brick and win events, got %v", result.Events)
	}
	if result.State.Score != 10 {
		t.Errorf("Score = %d, expected 10", result.State.Score)
	}
	if !result.State.GameOver || !result.State.Won {
		t.Errorf("expected a won game, got %+v", result.State)
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionLaunch))

	g.Step(input(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	snap := g.Snapshot()
	for range 10 {
		g.Step(input(core.ActionRight))
	}
	after := g.Snapshot()
	if snap.Hash() != after.Hash() {
		t.Error("paused game should not change")
	}

	g.Step(input(core.ActionPause))
	if g.Phase() != StatePlaying {
		t.Errorf("state = %s, expected playing after unpause", g.Phase())
	}
}

func TestGamePauseIgnoredWhileServing(t *testing.T) {
	g := newTestGame(t)
	g.Step(input(core.ActionPause))
	if g.State().Paused {
		t.Error("serving game should not pause")
	}
}

func TestGameSnapshotRoundTrip(t *testing.T) {
	g1 := newTestGame(t)
	g1.Step(input(core.ActionLaunch))
	for i := range 300 {
		if i%4 == 0 {
			g1.Step(input(core.ActionLeft))
		} else {
			g1.Step(input())
		}
	}

	g2 := newTestGame(t)
	g2.ApplySnapshot(g1.Snapshot())

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Fatalf("restored snapshot differs: %+v vs %+v", s1, s2)
	}

	for range 300 {
		g1.Step(input())
		g2.Step(input())
	}
	s1, s2 = g1.Snapshot(), g2.Snapshot()
	if s1.Hash() != s2.Hash() {
		t.Errorf("games diverged after restore: score %d vs %d", s1.Score, s2.Score)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if row := screen.Row(0); !strings.Contains(row, "Score: 0") || !strings.Contains(row, "Lives: 3") {
		t.Errorf("HUD row = %q", row)
	}
	out := screen.String()
	for _, want := range []string{string(PaddleChar), string(BallChar), string(BrickChar), "Press SPACE to launch"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	// Bricks in the first grid row use the first color.
	brick := g.Model().Bricks()[0]
	r := g.blockRect(brick)
	if c := screen.GetCell(r.X, r.Y); c.Rune != BrickChar || c.Color != core.ColorRed {
		t.Errorf("top-left brick cell = %+v, expected red brick", c)
	}
}

func TestGameScreenTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	g.Step(input(core.ActionLaunch))
	if g.Model().Ball().Live {
		t.Error("game should not run on a too small screen")
	}

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected a too small message")
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("easy")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newTestGame(t)
	if lives := g.State().Lives; lives != 5 {
		t.Errorf("easy Lives = %d, expected 5", lives)
	}
	if w := g.Model().Paddle().Width; w != 140 {
		t.Errorf("easy paddle width = %v, expected 140", w)
	}
}

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create("bricks")
	if err != nil {
		t.Fatalf("Create(bricks) error: %v", err)
	}
	if g.Title() != "Brickfield" {
		t.Errorf("Title() = %q, expected Brickfield", g.Title())
	}
}
