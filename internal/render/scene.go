package render

import (
	"fmt"
	"image/color"
	"math"

	"petpal/internal/game"
	"petpal/internal/pet"
)

// Font sizes in logical pixels
const (
	SizeTitle  = 56
	SizeButton = 36
	SizeStat   = 28
	SizeSmall  = 24
)

// Colors
var (
	ColorBlack  = color.RGBA{0, 0, 0, 255}
	ColorWhite  = color.RGBA{255, 255, 255, 255}
	ColorButton = color.RGBA{100, 200, 100, 255}
	ColorGold   = color.RGBA{255, 215, 0, 255}
	ColorSky    = color.RGBA{135, 190, 235, 255}
	ColorGrass  = color.RGBA{120, 190, 110, 255}
	ColorAction = color.RGBA{240, 240, 240, 255}

	shadeTitle    = color.RGBA{0, 0, 0, 100}
	shadeTutorial = color.RGBA{0, 0, 0, 120}
	shadePopup    = color.RGBA{0, 0, 0, 150}
)

// moodColors tint the drawn pet when no pet picture is loaded.
var moodColors = map[pet.Mood]color.RGBA{
	pet.MoodHappy:   {250, 200, 120, 255},
	pet.MoodHungry:  {230, 150, 110, 255},
	pet.MoodTired:   {170, 160, 200, 255},
	pet.MoodSad:     {150, 170, 200, 255},
	pet.MoodExcited: {255, 170, 190, 255},
}

// Scene draws whichever screen the app is showing.
type Scene struct {
	Assets Assets
}

// NewScene creates a scene with the given pictures.
func NewScene(assets Assets) *Scene {
	return &Scene{Assets: assets}
}

// Draw paints one frame.
func (s *Scene) Draw(r Renderer, app *game.App) {
	l := app.Layout()
	switch app.Screen() {
	case game.ScreenLanding:
		s.drawLanding(r, l)
	case game.ScreenTutorial:
		s.drawTutorial(r, l)
	case game.ScreenGame:
		s.drawGame(r, l, app.Pet())
	}
}

func (s *Scene) drawBackdrop(r Renderer, img Image, l game.Layout) {
	w, h := float32(l.Width), float32(l.Height)
	if img != nil {
		r.DrawImage(img, 0, 0, w, h)
		return
	}
	r.FillRect(0, 0, w, h, ColorSky)
	r.FillRect(0, h*2/3, w, h/3, ColorGrass)
}

func (s *Scene) drawLanding(r Renderer, l game.Layout) {
	s.drawBackdrop(r, s.Assets.Landing, l)

	cx, cy := float32(l.Width)/2, float32(l.Height)/2-100
	r.FillRect(cx-200, cy-60, 400, 120, shadeTitle)
	r.DrawText(game.Title, cx, cy, SizeTitle, ColorWhite, AlignCenter)

	drawButton(r, l.Play, "PLAY")
}

func (s *Scene) drawTutorial(r Renderer, l game.Layout) {
	s.drawBackdrop(r, s.Assets.Landing, l)

	cx := float32(l.Width) / 2
	r.FillRect(cx-500, 400-325, 1000, 650, shadeTutorial)
	r.DrawText("How to Play", cx, 100, SizeTitle, ColorWhite, AlignCenter)

	y := float32(200)
	for _, line := range game.TutorialLines {
		if line != "" {
			r.DrawText(line, cx, y, SizeSmall, ColorWhite, AlignCenter)
		}
		y += 40
	}

	drawButton(r, l.StartGame, "START GAME")
}

func (s *Scene) drawGame(r Renderer, l game.Layout, p *pet.Pet) {
	s.drawBackdrop(r, s.Assets.Background, l)
	s.drawPet(r, l.Pet, p)

	r.DrawText(fmt.Sprintf("Hunger: %d", int(p.Hunger)), 20, 20, SizeStat, ColorBlack, AlignTopLeft)
	r.DrawText(fmt.Sprintf("Energy: %d", int(p.Energy)), 20, 60, SizeStat, ColorBlack, AlignTopLeft)
	r.DrawText(fmt.Sprintf("Happiness: %d", int(p.Happiness)), 20, 100, SizeStat, ColorBlack, AlignTopLeft)
	r.DrawText("Mood: "+p.Mood().Title(), 20, 140, SizeStat, ColorBlack, AlignTopLeft)

	for i, def := range pet.GetActionDefinitions() {
		s.drawAction(r, l.Actions[i], s.Assets.Actions[i], def.Label)
	}
	drawButton(r, l.PlayAgain, "PLAY AGAIN")

	if p.SpeechVisible() {
		drawSpeechBubble(r, l.Bubble, p.SpeechText)
	}
	// Popup goes on top of everything
	if p.CongratsVisible() {
		drawCongratulations(r, l)
	}
}

func (s *Scene) drawPet(r Renderer, box game.Rect, p *pet.Pet) {
	x, y, w, h := rectF(box)
	if s.Assets.Pet != nil {
		r.DrawImage(s.Assets.Pet, x, y, w, h)
		return
	}

	body, ok := moodColors[p.Mood()]
	if !ok {
		body = moodColors[pet.MoodHappy]
	}
	cx, cy := x+w/2, y+h*0.55
	r.FillEllipse(cx, cy, w*0.4, h*0.38, body)
	r.StrokeEllipse(cx, cy, w*0.4, h*0.38, 3, ColorBlack)

	// Ears
	r.FillPolygon([]Point{{cx - w*0.3, cy - h*0.22}, {cx - w*0.22, cy - h*0.48}, {cx - w*0.08, cy - h*0.33}}, body)
	r.FillPolygon([]Point{{cx + w*0.3, cy - h*0.22}, {cx + w*0.22, cy - h*0.48}, {cx + w*0.08, cy - h*0.33}}, body)

	eyeY := cy - h*0.08
	if p.Mood() == pet.MoodTired {
		r.FillRect(cx-w*0.16, eyeY, w*0.1, 4, ColorBlack)
		r.FillRect(cx+w*0.06, eyeY, w*0.1, 4, ColorBlack)
	} else {
		r.FillEllipse(cx-w*0.11, eyeY, 10, 12, ColorBlack)
		r.FillEllipse(cx+w*0.11, eyeY, 10, 12, ColorBlack)
	}

	mouthY := cy + h*0.1
	switch p.Mood() {
	case pet.MoodSad, pet.MoodHungry:
		r.StrokePolygon([]Point{{cx - 20, mouthY + 10}, {cx, mouthY}, {cx + 20, mouthY + 10}}, 3, ColorBlack)
	default:
		r.StrokePolygon([]Point{{cx - 20, mouthY}, {cx, mouthY + 10}, {cx + 20, mouthY}}, 3, ColorBlack)
	}
}

func (s *Scene) drawAction(r Renderer, box game.Rect, icon Image, label string) {
	x, y, w, h := rectF(box)
	if icon != nil {
		r.DrawImage(icon, x, y, w, h)
		return
	}
	r.FillRect(x, y, w, h, ColorAction)
	r.StrokeRect(x, y, w, h, 3, ColorBlack)
	r.DrawText(label, x+w/2, y+h/2, SizeSmall, ColorBlack, AlignCenter)
}

func drawButton(r Renderer, box game.Rect, label string) {
	x, y, w, h := rectF(box)
	r.FillRect(x, y, w, h, ColorButton)
	r.StrokeRect(x, y, w, h, 3, ColorWhite)
	r.DrawText(label, x+w/2, y+h/2, SizeButton, ColorWhite, AlignCenter)
}

func drawSpeechBubble(r Renderer, box game.Rect, text string) {
	x, y, w, h := rectF(box)
	cx, cy := x+w/2, y+h/2

	r.FillEllipse(cx, cy, w/2, h/2, ColorWhite)
	r.StrokeEllipse(cx, cy, w/2, h/2, 3, ColorBlack)

	// Tail pointing down at the pet
	tail := []Point{{cx - 15, y + h}, {cx, y + h + 20}, {cx + 15, y + h}}
	r.FillPolygon(tail, ColorWhite)
	r.StrokePolygon(tail, 3, ColorBlack)

	r.DrawText(text, cx, cy, SizeSmall, ColorBlack, AlignCenter)
}

func drawCongratulations(r Renderer, l game.Layout) {
	r.FillRect(0, 0, float32(l.Width), float32(l.Height), shadePopup)

	x, y, w, h := rectF(l.Popup)
	r.FillRect(x, y, w, h, ColorGold)
	r.StrokeRect(x, y, w, h, 5, ColorWhite)

	cx := float32(l.Width) / 2
	r.DrawText("CONGRATULATIONS!", cx, y+80, SizeTitle, ColorWhite, AlignCenter)
	r.DrawText("Max Friendship Achieved!", cx, y+140, SizeButton, ColorWhite, AlignCenter)
	r.DrawText("Your pet loves you very much!", cx, y+180, SizeSmall, ColorWhite, AlignCenter)

	stars := []Point{
		{x + 50, y + 50},
		{x + w - 50, y + 50},
		{x + 50, y + h - 50},
		{x + w - 50, y + h - 50},
		{x + w/2, y + 30},
		{x + w/2, y + h - 30},
	}
	for _, c := range stars {
		r.FillPolygon(Star(c.X, c.Y, 16, 7), ColorWhite)
	}
}

// Star returns the ten vertices of a five-pointed star, top point first.
func Star(cx, cy, outer, inner float32) []Point {
	pts := make([]Point, 0, 10)
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := -math.Pi/2 + float64(i)*math.Pi/5
		pts = append(pts, Point{
			X: cx + radius*float32(math.Cos(angle)),
			Y: cy + radius*float32(math.Sin(angle)),
		})
	}
	return pts
}

func rectF(r game.Rect) (x, y, w, h float32) {
	return float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
}
