package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petpal/internal/game"
	"petpal/internal/pet"
)

// Model is the terminal frontend over a game.App
type Model struct {
	App       *game.App
	Animation Animation
	Quitting  bool

	interval time.Duration
}

type tickMsg time.Time

// NewModel creates a terminal model ticking tickRate times per second
func NewModel(app *game.App, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = pet.ReferenceTickRate
	}
	return Model{
		App:      app,
		interval: time.Second / time.Duration(tickRate),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// keyBindings maps terminal keys to game keys
var keyBindings = map[string]game.Key{
	"f":     game.KeyFeed,
	"p":     game.KeyPlay,
	"s":     game.KeySleep,
	"r":     game.KeyRestart,
	"enter": game.KeyConfirm,
	" ":     game.KeyConfirm,
}

// keyActions are the game keys that play an animation
var keyActions = map[game.Key]pet.Action{
	game.KeyFeed:  pet.ActionFed,
	game.KeyPlay:  pet.ActionPlayed,
	game.KeySleep: pet.ActionSlept,
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		}

		key, ok := keyBindings[strings.ToLower(msg.String())]
		if !ok {
			return m, nil
		}
		onGame := m.App.Screen() == game.ScreenGame
		m.App.KeyDown(key)

		switch {
		case !onGame || m.App.Screen() != game.ScreenGame:
			m.Animation = Animation{}
		case keyActions[key] != pet.ActionNone:
			m.Animation = NewAnimation(AnimationFor(keyActions[key]))
		}
		return m, nil

	case tickMsg:
		m.App.Tick()
		m.Animation.Advance()
		return m, tick(m.interval)
	}

	return m, nil
}

// Run starts the terminal frontend and blocks until the user quits
func Run(app *game.App, tickRate int) error {
	p := tea.NewProgram(NewModel(app, tickRate), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
