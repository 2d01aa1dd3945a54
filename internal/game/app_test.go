package game

import (
	"testing"

	"petpal/internal/pet"
)

func newTestApp() *App {
	return New(nil, NewLayout(1500, 1000))
}

func startGame(t *testing.T, a *App) {
	t.Helper()
	a.PointerDown(a.Layout().Play.Center())
	a.PointerDown(a.Layout().StartGame.Center())
	if a.Screen() != ScreenGame {
		t.Fatalf("Expected game screen, got %s", a.Screen())
	}
}

func TestNewLayout(t *testing.T) {
	l := NewLayout(1500, 1000)

	tests := []struct {
		name     string
		got      Rect
		expected Rect
	}{
		{"Play", l.Play, Rect{650, 600, 200, 80}},
		{"StartGame", l.StartGame, Rect{625, 750, 250, 90}},
		{"Feed", l.Actions[0], Rect{1380, 380, 100, 100}},
		{"Play action", l.Actions[1], Rect{1380, 500, 100, 100}},
		{"Sleep", l.Actions[2], Rect{1380, 620, 100, 100}},
		{"Pet", l.Pet, Rect{600, 550, 300, 300}},
		{"Bubble", l.Bubble, Rect{625, 450, 250, 80}},
		{"Popup", l.Popup, Rect{450, 350, 600, 300}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, tt.got)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 30, 40}

	tests := []struct {
		x, y     int
		expected bool
	}{
		{10, 20, true},
		{39, 59, true},
		{40, 30, false},
		{20, 60, false},
		{9, 30, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.expected {
			t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestScreenTransitions(t *testing.T) {
	a := newTestApp()
	if a.Screen() != ScreenLanding {
		t.Fatalf("Expected landing screen, got %s", a.Screen())
	}

	// Misses do nothing
	a.PointerDown(0, 0)
	if a.Screen() != ScreenLanding {
		t.Errorf("Click outside PLAY changed screen to %s", a.Screen())
	}

	a.PointerDown(a.Layout().Play.Center())
	if a.Screen() != ScreenTutorial {
		t.Fatalf("Expected tutorial screen, got %s", a.Screen())
	}

	// The PLAY rect means nothing on the tutorial screen
	a.PointerDown(a.Layout().Play.X+1, a.Layout().Play.Y+1)
	if a.Screen() != ScreenTutorial {
		t.Errorf("Expected to stay on tutorial, got %s", a.Screen())
	}

	a.PointerDown(a.Layout().StartGame.Center())
	if a.Screen() != ScreenGame {
		t.Fatalf("Expected game screen, got %s", a.Screen())
	}
}

func TestTickOnlyOnGameScreen(t *testing.T) {
	a := newTestApp()

	for i := 0; i < 100; i++ {
		a.Tick()
	}
	if a.Pet().Hunger != pet.StartingStat {
		t.Errorf("Pet should not change before the game starts, hunger=%f", a.Pet().Hunger)
	}

	startGame(t, a)
	a.Tick()
	if a.Pet().Hunger <= pet.StartingStat {
		t.Errorf("Expected pet to decay on the game screen, hunger=%f", a.Pet().Hunger)
	}
}

func TestActionButtons(t *testing.T) {
	tests := []struct {
		name   string
		button int
		check  func(p *pet.Pet) bool
	}{
		{"Feed", 0, func(p *pet.Pet) bool { return p.Hunger == 30 }},
		{"Play", 1, func(p *pet.Pet) bool { return p.Happiness == 65 && p.Energy == 40 }},
		{"Sleep", 2, func(p *pet.Pet) bool { return p.Energy == 75 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp()
			startGame(t, a)
			a.PointerDown(a.Layout().Actions[tt.button].Center())
			p := a.Pet()
			if !tt.check(p) {
				t.Errorf("Unexpected stats after %s: hunger=%f energy=%f happiness=%f", tt.name, p.Hunger, p.Energy, p.Happiness)
			}
		})
	}
}

func TestActionButtonsIgnoredOffGameScreen(t *testing.T) {
	a := newTestApp()
	a.PointerDown(a.Layout().Actions[0].Center())
	a.KeyDown(KeyFeed)
	if a.Pet().Hunger != pet.StartingStat {
		t.Errorf("Feed should be ignored on the landing screen, hunger=%f", a.Pet().Hunger)
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name  string
		key   Key
		check func(p *pet.Pet) bool
	}{
		{"F feeds", KeyFeed, func(p *pet.Pet) bool { return p.Hunger == 30 }},
		{"P plays", KeyPlay, func(p *pet.Pet) bool { return p.Happiness == 65 }},
		{"S sleeps", KeySleep, func(p *pet.Pet) bool { return p.Energy == 75 }},
		{"Other keys do nothing", KeyNone, func(p *pet.Pet) bool { return p.Hunger == 50 && p.Energy == 50 && p.Happiness == 50 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestApp()
			startGame(t, a)
			a.KeyDown(tt.key)
			if !tt.check(a.Pet()) {
				t.Errorf("Unexpected pet state after key %d", tt.key)
			}
		})
	}
}

func TestConfirmKeyAdvancesMenus(t *testing.T) {
	a := newTestApp()

	a.KeyDown(KeyConfirm)
	if a.Screen() != ScreenTutorial {
		t.Fatalf("Expected tutorial, got %s", a.Screen())
	}
	a.KeyDown(KeyConfirm)
	if a.Screen() != ScreenGame {
		t.Fatalf("Expected game, got %s", a.Screen())
	}

	a.KeyDown(KeyConfirm)
	if a.Screen() != ScreenGame {
		t.Errorf("Confirm should do nothing in game, got %s", a.Screen())
	}
}

func TestRestart(t *testing.T) {
	built := 0
	a := New(func() *pet.Pet {
		built++
		return pet.New()
	}, NewLayout(1500, 1000))
	startGame(t, a)

	for i := 0; i < 4; i++ {
		a.KeyDown(KeyPlay)
	}
	old := a.Pet()
	if !old.MaxFriendship {
		t.Fatal("Expected latch before restart")
	}

	a.PointerDown(a.Layout().PlayAgain.Center())

	if a.Screen() != ScreenLanding {
		t.Errorf("Expected landing after restart, got %s", a.Screen())
	}
	if a.Pet() == old {
		t.Fatal("Expected a fresh pet")
	}
	if a.Pet().MaxFriendship || a.Pet().Happiness != pet.StartingStat {
		t.Errorf("Fresh pet carried state over: latch=%v happiness=%f", a.Pet().MaxFriendship, a.Pet().Happiness)
	}
	if built != 2 {
		t.Errorf("Expected factory to be called twice, got %d", built)
	}

	startGame(t, a)
	a.KeyDown(KeyRestart)
	if a.Screen() != ScreenLanding || built != 3 {
		t.Errorf("Expected R to restart, screen=%s built=%d", a.Screen(), built)
	}
}

func TestScreenString(t *testing.T) {
	names := map[Screen]string{
		ScreenLanding:  "landing",
		ScreenTutorial: "tutorial",
		ScreenGame:     "game",
		Screen(7):      "unknown",
	}
	for s, want := range names {
		if s.String() != want {
			t.Errorf("Screen(%d).String() = %q, want %q", int(s), s.String(), want)
		}
	}
}
