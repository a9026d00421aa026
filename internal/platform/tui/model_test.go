package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

type recordingPlayer struct {
	events []core.Event
}

func (p *recordingPlayer) Play(ev core.Event) { p.events = append(p.events, ev) }
func (p *recordingPlayer) Close() error       { return nil }

func newTestModel(t *testing.T) (Model, *storage.Store, *recordingPlayer) {
	t.Helper()
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	player := &recordingPlayer{}
	m := NewModel(snake.New(), core.DefaultConfig(), Options{Store: store, Sound: player})
	m.Init()
	return m, store, player
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm
}

// crash reverses the snake into its own neck and ticks until the game ends.
func crash(t *testing.T, m Model) Model {
	t.Helper()
	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for i := 0; i < 100 && !m.gameState.GameOver; i++ {
		m = update(t, m, TickMsg{})
	}
	if !m.gameState.GameOver {
		t.Fatal("game did not end")
	}
	return m
}

func TestModelRecordsRunOnce(t *testing.T) {
	m, store, player := newTestModel(t)

	m = crash(t, m)
	for range 10 {
		m = update(t, m, TickMsg{})
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("RunCount() = %d, expected 1", n)
	}

	runs, err := store.TopRuns(m.game.ID(), 1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("TopRuns() = %v, %v", runs, err)
	}
	if runs[0].Reason != "self" || runs[0].Length != 10 {
		t.Errorf("run = %+v, expected self collision at length 10", runs[0])
	}

	if len(player.events) != 1 || player.events[0] != core.EventCrash {
		t.Errorf("sound events = %v, expected one crash", player.events)
	}
}

func TestModelRestart(t *testing.T) {
	m, store, player := newTestModel(t)
	m = crash(t, m)

	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg{})
	if m.gameState.GameOver {
		t.Fatal("expected a fresh game after restart")
	}
	if m.runSaved {
		t.Error("runSaved should reset on restart")
	}

	m = crash(t, m)
	if n, _ := store.RunCount(); n != 2 {
		t.Errorf("RunCount() = %d, expected 2", n)
	}
	if got := player.events[len(player.events)-1]; got != core.EventCrash {
		t.Errorf("last sound = %v, expected crash", got)
	}
}

func TestModelHistoryView(t *testing.T) {
	m, _, _ := newTestModel(t)

	// Tab does nothing while the game is running
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.inHistory {
		t.Fatal("history opened while running")
	}

	m = crash(t, m)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.inHistory {
		t.Fatal("history should open after game over")
	}
	view := m.View()
	if !strings.Contains(view, "RUN HISTORY") || !strings.Contains(view, "self") {
		t.Errorf("View() = %q, expected history table", view)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.inHistory {
		t.Error("tab should close the history")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
	if next.View() != "" {
		t.Error("View() should be empty after quit")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, _, _ := newTestModel(t)
	for range 30 {
		m = update(t, m, TickMsg{})
	}
	before := m.game.(*snake.Game).Engine().Ticks()
	if before == 0 {
		t.Fatal("snake never moved")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if got := m.game.(*snake.Game).Engine().Ticks(); got != before {
		t.Errorf("Ticks() = %d after resize, expected %d", got, before)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}
