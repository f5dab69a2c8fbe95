package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickfield/internal/core"
	"github.com/vovakirdan/brickfield/internal/storage"
)

// scriptedGame ends after a fixed number of steps and records its input.
type scriptedGame struct {
	steps    int
	endAfter int
	score    int
	paused   bool
	resets   int
	runtime  core.RuntimeConfig
	actions  []core.Action
	pointer  int
	pointed  bool
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.runtime = cfg
	g.steps = 0
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.actions = g.actions[:0]
	for a, on := range in.Actions {
		if on {
			g.actions = append(g.actions, a)
		}
	}
	g.pointer, g.pointed = in.Pointer, in.HasPointer
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	var events []core.Event
	if g.steps == g.endAfter {
		events = append(events, core.EventMiss)
	}
	return core.StepResult{State: g.State(), Events: events}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.steps >= g.endAfter,
		Paused:   g.paused,
		Bricks:   3,
		Ticks:    g.steps,
	}
}

func (g *scriptedGame) saw(a core.Action) bool {
	for _, got := range g.actions {
		if got == a {
			return true
		}
	}
	return false
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func step(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runes("a"), core.ActionLeft},
		{runes("h"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runes("d"), core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch},
		{runes("p"), core.ActionPause},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{runes("r"), core.ActionRestart},
		{runes("q"), core.ActionNone},
		{runes("x"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.msg.String(), func(t *testing.T) {
			if got := keys.ActionFor(tc.msg); got != tc.expected {
				t.Errorf("ActionFor(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestGameModelRoutesInput(t *testing.T) {
	game := &scriptedGame{endAfter: 1000}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	if game.runtime.ScreenH != 23 {
		t.Errorf("game height = %d, expected 23 (one row for help)", game.runtime.ScreenH)
	}

	m = step(t, m, runes("a"))
	m = step(t, m, TickMsg{})
	if !game.saw(core.ActionLeft) {
		t.Errorf("expected Left, got %v", game.actions)
	}

	// Input is cleared between ticks.
	m = step(t, m, TickMsg{})
	if len(game.actions) != 0 {
		t.Errorf("expected no actions, got %v", game.actions)
	}

	m = step(t, m, tea.MouseMsg{X: 12, Action: tea.MouseActionMotion})
	m = step(t, m, TickMsg{})
	if !game.pointed || game.pointer != 12 {
		t.Errorf("pointer = %d (%v), expected 12", game.pointer, game.pointed)
	}
	if game.saw(core.ActionLaunch) {
		t.Error("motion should not launch")
	}

	m = step(t, m, tea.MouseMsg{X: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = step(t, m, TickMsg{})
	if !game.saw(core.ActionLaunch) {
		t.Error("left click should launch")
	}

	m = step(t, m, runes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestGameModelResizeResets(t *testing.T) {
	game := &scriptedGame{endAfter: 1000}
	m := NewGameModel(game, testConfig(), Options{})
	m.Init()

	m = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resets != 2 {
		t.Errorf("resets = %d, expected 2", game.resets)
	}
	if game.runtime.ScreenW != 100 || game.runtime.ScreenH != 39 {
		t.Errorf("runtime = %+v, expected 100x39", game.runtime)
	}
	if !strings.Contains(m.View(), "scripted") {
		t.Error("view should contain the game")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{endAfter: 3, score: 40}
	m := NewGameModel(game, testConfig(), Options{Store: store, Player: "alice"})
	m.Init()

	for range 10 {
		m = step(t, m, TickMsg{})
	}
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}

	runs, err := store.AllRuns("scripted")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.Score != 40 || r.Player != "alice" || r.Bricks != 3 || r.Seed != 7 {
		t.Errorf("unexpected run: %+v", r)
	}
}

func TestGameModelSkipsEmptyRuns(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{endAfter: 1}
	m := NewGameModel(game, testConfig(), Options{Store: store})
	m.Init()
	step(t, m, TickMsg{})

	runs, err := store.AllRuns("scripted")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs for a zero score, got %d", len(runs))
	}
}

func TestSessionOpensScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	game := &scriptedGame{endAfter: 1000}
	var s tea.Model = NewSessionModel(game, testConfig(), Options{Store: store})
	s.Init()

	update := func(msg tea.Msg) {
		s, _ = s.Update(msg)
	}

	// Scores are only offered while paused or after the game.
	update(tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(s.View(), "HIGH SCORES") {
		t.Fatal("scoreboard should not open during play")
	}

	update(runes("p"))
	update(TickMsg{})
	update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(s.View(), "HIGH SCORES - Scripted") {
		t.Fatalf("scoreboard should open while paused, view:\n%s", s.View())
	}

	update(tea.KeyMsg{Type: tea.KeyEsc})
	if strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("esc should close the scoreboard")
	}
}

func TestRunRows(t *testing.T) {
	rows := runRows([]storage.Run{
		{Score: 90, Won: true, Bricks: 100, Player: "bob"},
		{Score: 40, Bricks: 4},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "90" || rows[0][2] != "cleared" || rows[0][4] != "bob" {
		t.Errorf("row 0 = %v", rows[0])
	}
	if rows[1][2] != "lost" || rows[1][4] != "-" {
		t.Errorf("row 1 = %v", rows[1])
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 0, '█', core.ColorRed)
	s.SetColored(4, 1, '●', core.ColorWhite)

	out := RenderScreen(s)
	if lines := strings.Split(out, "\n"); len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "█", "●"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText() = %q, expected %q", got, "  ab")
	}
	if got := centerText("abcdef", 4); got != "abcdef" {
		t.Errorf("centerText() = %q, expected unchanged", got)
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "nope"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	if _, err := NewSSHServer(cfg, nil, nil); err == nil {
		t.Error("expected error for an unregistered game")
	}
}
