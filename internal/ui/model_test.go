package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"petpal/internal/game"
	"petpal/internal/pet"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func newTestModel() Model {
	return NewModel(game.New(nil, game.NewLayout(1500, 1000)), 60)
}

func startedModel(t *testing.T) Model {
	t.Helper()
	m := newTestModel()
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.App.Screen() != game.ScreenGame {
		t.Fatalf("Expected game screen, got %v", m.App.Screen())
	}
	return m
}

func TestNewModelTickRate(t *testing.T) {
	if m := NewModel(game.New(nil, game.NewLayout(1500, 1000)), 0); m.interval <= 0 {
		t.Errorf("Expected a positive tick interval, got %v", m.interval)
	}
	if m := newTestModel(); m.Init() == nil {
		t.Error("Expected Init to schedule a tick")
	}
}

func TestActionKeys(t *testing.T) {
	tests := []struct {
		key      string
		wantAnim AnimationType
		check    func(p *pet.Pet) bool
	}{
		{"f", AnimFeed, func(p *pet.Pet) bool { return p.Hunger == pet.StartingStat-pet.FeedHungerDecrease }},
		{"F", AnimFeed, func(p *pet.Pet) bool { return p.Hunger == pet.StartingStat-pet.FeedHungerDecrease }},
		{"p", AnimPlay, func(p *pet.Pet) bool { return p.Energy == pet.StartingStat-pet.PlayEnergyDecrease }},
		{"s", AnimSleep, func(p *pet.Pet) bool { return p.Energy == pet.StartingStat+pet.SleepEnergyIncrease }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := startedModel(t)
			m = press(t, m, runeKey(tt.key))

			if m.Animation.Type != tt.wantAnim {
				t.Errorf("Expected animation %v, got %v", tt.wantAnim, m.Animation.Type)
			}
			if !tt.check(m.App.Pet()) {
				t.Errorf("Unexpected stats after %q: %+v", tt.key, m.App.Pet())
			}
			if !m.App.Pet().SpeechVisible() {
				t.Error("Expected the pet to react")
			}
		})
	}
}

func TestActionKeysIgnoredOffGame(t *testing.T) {
	m := newTestModel()
	m = press(t, m, runeKey("f"))

	if m.App.Screen() != game.ScreenLanding {
		t.Errorf("Expected landing screen, got %v", m.App.Screen())
	}
	if m.Animation.Type != AnimNone {
		t.Errorf("Expected no animation, got %v", m.Animation.Type)
	}
	if m.App.Pet().Hunger != pet.StartingStat {
		t.Errorf("Expected hunger untouched, got %v", m.App.Pet().Hunger)
	}
}

func TestRestartKey(t *testing.T) {
	m := startedModel(t)
	m = press(t, m, runeKey("p"))
	m = press(t, m, runeKey("r"))

	if m.App.Screen() != game.ScreenLanding {
		t.Errorf("Expected landing screen after restart, got %v", m.App.Screen())
	}
	if m.Animation.Type != AnimNone {
		t.Error("Expected restart to drop the animation")
	}
}

func TestTickAdvances(t *testing.T) {
	m := startedModel(t)
	m = press(t, m, runeKey("f"))

	next, cmd := m.Update(tickMsg{})
	m = next.(Model)
	if cmd == nil {
		t.Error("Expected tick to re-arm")
	}
	if m.App.Pet().Hunger <= pet.StartingStat-pet.FeedHungerDecrease {
		t.Errorf("Expected hunger to rise after a tick, got %v", m.App.Pet().Hunger)
	}
	if m.Animation.ticks != 1 {
		t.Errorf("Expected animation to advance one tick, got %d", m.Animation.ticks)
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyMsg{runeKey("q"), {Type: tea.KeyCtrlC}} {
		t.Run(key.String(), func(t *testing.T) {
			next, cmd := newTestModel().Update(key)
			m := next.(Model)
			if !m.Quitting {
				t.Error("Expected quitting")
			}
			if cmd == nil {
				t.Error("Expected a quit command")
			}
			if m.View() != "Thanks for playing!\n" {
				t.Errorf("Unexpected goodbye: %q", m.View())
			}
		})
	}
}

func TestView(t *testing.T) {
	m := newTestModel()
	if view := m.View(); !strings.Contains(view, game.Title) || !strings.Contains(view, "PLAY") {
		t.Errorf("Expected landing view, got %q", view)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if view := m.View(); !strings.Contains(view, "How to Play") || !strings.Contains(view, "START GAME") {
		t.Errorf("Expected tutorial view, got %q", view)
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	for _, want := range []string{pet.DefaultPetName, "Hunger:", "Energy:", "Happiness:", "Mood:", "Feed", "Play", "Sleep", "Restart"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in game view", want)
		}
	}
	if strings.Contains(view, pet.MessageFed) {
		t.Error("Speech bubble shown before anything was said")
	}

	m = press(t, m, runeKey("f"))
	if view := m.View(); !strings.Contains(view, pet.MessageFed) {
		t.Errorf("Expected speech bubble with %q", pet.MessageFed)
	}
}

func TestCongratsView(t *testing.T) {
	app := game.New(func() *pet.Pet { return pet.New(pet.WithStats(50, 80, 90)) }, game.NewLayout(1500, 1000))
	m := NewModel(app, 60)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = press(t, m, runeKey("p"))

	view := m.View()
	for _, want := range []string{"CONGRATULATIONS!", "Max Friendship Achieved!", "Best friends"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view", want)
		}
	}
}

func TestMakeBar(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "░░░░░░░░░░"},
		{50, "█████░░░░░"},
		{100, "██████████"},
		{-5, "░░░░░░░░░░"},
		{150, "██████████"},
	}
	for _, tt := range tests {
		if got := makeBar(tt.value, pet.MaxStat); got != tt.want {
			t.Errorf("makeBar(%v): expected %q, got %q", tt.value, tt.want, got)
		}
	}
}
