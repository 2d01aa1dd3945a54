package game

import (
	"log/slog"

	"petpal/internal/pet"
)

// Screen is one of the three full-window views.
type Screen int

const (
	ScreenLanding Screen = iota
	ScreenTutorial
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenLanding:
		return "landing"
	case ScreenTutorial:
		return "tutorial"
	case ScreenGame:
		return "game"
	default:
		return "unknown"
	}
}

// Key is a frontend-independent key press.
type Key int

const (
	KeyNone Key = iota
	KeyFeed
	KeyPlay
	KeySleep
	KeyRestart
	KeyConfirm // enter or space
)

// Title is shown on the landing screen.
const Title = "Pet Pal"

// TutorialLines are shown on the tutorial screen. Empty strings are spacers.
var TutorialLines = []string{
	"Welcome to Pet Pal! Your virtual pet needs your care.",
	"Your pet has three important stats:",
	"• HUNGER - Feed your pet when it gets hungry",
	"• ENERGY - Let your pet sleep to restore energy",
	"• HAPPINESS - Play with your pet to keep it happy",
	"",
	"Controls:",
	"• Press F to FEED your pet",
	"• Press P to PLAY with your pet",
	"• Press S to let your pet SLEEP",
	"",
	"Keep your pet healthy and happy by monitoring its stats!",
	"Stats will slowly decrease over time, so check on your pet regularly.",
}

// Factory builds a fresh pet for a new game.
type Factory func() *pet.Pet

// App routes input between the screens and owns the current pet.
// It is not safe for concurrent use; frontends call it from their loop.
type App struct {
	screen Screen
	pet    *pet.Pet
	newPet Factory
	layout Layout
}

// New starts on the landing screen with a pet from newPet.
func New(newPet Factory, layout Layout) *App {
	if newPet == nil {
		newPet = func() *pet.Pet { return pet.New() }
	}
	return &App{
		screen: ScreenLanding,
		pet:    newPet(),
		newPet: newPet,
		layout: layout,
	}
}

func (a *App) Screen() Screen { return a.screen }
func (a *App) Pet() *pet.Pet  { return a.pet }
func (a *App) Layout() Layout { return a.layout }

// Tick advances the pet by one tick, only while the game screen is shown.
func (a *App) Tick() {
	if a.screen == ScreenGame {
		a.pet.Advance(1)
	}
}

// PointerDown handles a click or tap at logical coordinates.
func (a *App) PointerDown(x, y int) {
	switch a.screen {
	case ScreenLanding:
		if a.layout.Play.Contains(x, y) {
			a.setScreen(ScreenTutorial)
		}
	case ScreenTutorial:
		if a.layout.StartGame.Contains(x, y) {
			a.setScreen(ScreenGame)
		}
	case ScreenGame:
		if action, ok := a.layout.ActionAt(x, y); ok {
			a.pet.Do(action)
			return
		}
		if a.layout.PlayAgain.Contains(x, y) {
			a.Restart()
		}
	}
}

// KeyDown handles a key press. Action keys only work on the game screen.
func (a *App) KeyDown(k Key) {
	switch a.screen {
	case ScreenLanding:
		if k == KeyConfirm {
			a.setScreen(ScreenTutorial)
		}
	case ScreenTutorial:
		if k == KeyConfirm {
			a.setScreen(ScreenGame)
		}
	case ScreenGame:
		switch k {
		case KeyFeed:
			a.pet.Feed()
		case KeyPlay:
			a.pet.Play()
		case KeySleep:
			a.pet.Sleep()
		case KeyRestart:
			a.Restart()
		}
	}
}

// Restart drops the current pet and goes back to the landing screen.
func (a *App) Restart() {
	a.pet.Close()
	a.pet = a.newPet()
	a.setScreen(ScreenLanding)
	slog.Info("game: restarted", "pet", a.pet.Name)
}

// Close releases the current pet.
func (a *App) Close() {
	a.pet.Close()
}

func (a *App) setScreen(s Screen) {
	slog.Debug("game: screen changed", "from", a.screen, "to", s)
	a.screen = s
}
