package render

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"petpal/internal/game"
	"petpal/internal/pet"
)

type fakeImage struct{ name string }

func (fakeImage) Size() (int, int) { return 10, 10 }

// recorder logs every call as a short string
type recorder struct {
	ops   []string
	texts []string
}

func (r *recorder) FillRect(x, y, w, h float32, _ color.Color) {
	r.ops = append(r.ops, "fillrect")
}

func (r *recorder) StrokeRect(x, y, w, h, width float32, _ color.Color) {
	r.ops = append(r.ops, "strokerect")
}

func (r *recorder) FillEllipse(cx, cy, rx, ry float32, _ color.Color) {
	r.ops = append(r.ops, "fillellipse")
}

func (r *recorder) StrokeEllipse(cx, cy, rx, ry, width float32, _ color.Color) {
	r.ops = append(r.ops, "strokeellipse")
}

func (r *recorder) FillPolygon(points []Point, _ color.Color) {
	r.ops = append(r.ops, "fillpolygon")
}

func (r *recorder) StrokePolygon(points []Point, width float32, _ color.Color) {
	r.ops = append(r.ops, "strokepolygon")
}

func (r *recorder) DrawText(text string, x, y float32, size float64, _ color.Color, _ Align) {
	r.ops = append(r.ops, "text:"+text)
	r.texts = append(r.texts, text)
}

func (r *recorder) DrawImage(img Image, x, y, w, h float32) {
	r.ops = append(r.ops, "image:"+img.(fakeImage).name)
}

func (r *recorder) hasText(s string) bool {
	for _, t := range r.texts {
		if t == s {
			return true
		}
	}
	return false
}

func (r *recorder) count(op string) int {
	n := 0
	for _, o := range r.ops {
		if o == op {
			n++
		}
	}
	return n
}

func (r *recorder) index(op string) int {
	for i, o := range r.ops {
		if o == op {
			return i
		}
	}
	return -1
}

func gameApp(p *pet.Pet) *game.App {
	app := game.New(func() *pet.Pet { return p }, game.NewLayout(1500, 1000))
	app.KeyDown(game.KeyConfirm)
	app.KeyDown(game.KeyConfirm)
	return app
}

func TestDrawLanding(t *testing.T) {
	app := game.New(nil, game.NewLayout(1500, 1000))
	r := &recorder{}

	NewScene(Assets{}).Draw(r, app)

	for _, want := range []string{"Pet Pal", "PLAY"} {
		if !r.hasText(want) {
			t.Errorf("Expected landing to draw %q, got %v", want, r.texts)
		}
	}
	if r.count("fillrect") < 3 {
		t.Errorf("Expected drawn backdrop without assets, got %v", r.ops)
	}
}

func TestDrawTutorial(t *testing.T) {
	app := game.New(nil, game.NewLayout(1500, 1000))
	app.KeyDown(game.KeyConfirm)
	r := &recorder{}

	NewScene(Assets{}).Draw(r, app)

	if !r.hasText("How to Play") || !r.hasText("START GAME") {
		t.Errorf("Missing tutorial heading or button: %v", r.texts)
	}
	lines := 0
	for _, line := range game.TutorialLines {
		if line == "" {
			if r.hasText("") {
				t.Error("Empty tutorial lines should be skipped")
			}
			continue
		}
		lines++
		if !r.hasText(line) {
			t.Errorf("Missing tutorial line %q", line)
		}
	}
	if lines != 11 {
		t.Errorf("Expected 11 tutorial lines, got %d", lines)
	}
}

func TestDrawGameStats(t *testing.T) {
	p := pet.New(pet.WithStats(80.9, 10.2, 20.7))
	r := &recorder{}

	NewScene(Assets{}).Draw(r, gameApp(p))

	for _, want := range []string{"Hunger: 80", "Energy: 10", "Happiness: 20", "Mood: Hungry", "Feed", "Play", "Sleep", "PLAY AGAIN"} {
		if !r.hasText(want) {
			t.Errorf("Expected %q in %v", want, r.texts)
		}
	}
	if r.count("fillellipse") == 0 {
		t.Error("Expected a drawn pet without a pet picture")
	}
}

func TestDrawSpeechBubble(t *testing.T) {
	p := pet.New()
	app := gameApp(p)

	r := &recorder{}
	NewScene(Assets{}).Draw(r, app)
	if r.hasText(pet.MessageFed) {
		t.Fatal("Speech bubble drawn before anything was said")
	}

	app.KeyDown(game.KeyFeed)
	r = &recorder{}
	NewScene(Assets{}).Draw(r, app)
	if !r.hasText(pet.MessageFed) {
		t.Errorf("Expected speech bubble text, got %v", r.texts)
	}
	if r.count("strokepolygon") < 2 {
		t.Error("Expected the bubble tail outline")
	}

	p.Advance(pet.SpeechBubbleTicks)
	r = &recorder{}
	NewScene(Assets{}).Draw(r, app)
	if r.hasText(pet.MessageFed) {
		t.Error("Speech bubble still drawn after its timer ran out")
	}
}

func TestDrawCongratulations(t *testing.T) {
	p := pet.New(pet.WithStats(50, 80, 90))
	app := gameApp(p)
	app.KeyDown(game.KeyPlay)

	r := &recorder{}
	NewScene(Assets{}).Draw(r, app)

	for _, want := range []string{"CONGRATULATIONS!", "Max Friendship Achieved!", "Your pet loves you very much!"} {
		if !r.hasText(want) {
			t.Errorf("Expected %q in popup", want)
		}
	}
	if r.index("text:CONGRATULATIONS!") < r.index("text:"+pet.MessagePlayed) {
		t.Error("Popup should be drawn after the speech bubble")
	}

	p.Advance(pet.CongratsPopupTicks)
	r = &recorder{}
	NewScene(Assets{}).Draw(r, app)
	if r.hasText("CONGRATULATIONS!") {
		t.Error("Popup still drawn after its timer ran out")
	}
}

func TestDrawWithAssets(t *testing.T) {
	assets := Assets{
		Landing:    fakeImage{"landing"},
		Background: fakeImage{"bg"},
		Pet:        fakeImage{"pet"},
		Actions:    [3]Image{fakeImage{"feed"}, fakeImage{"play"}, fakeImage{"sleep"}},
	}
	r := &recorder{}

	NewScene(assets).Draw(r, gameApp(pet.New()))

	want := []string{"image:bg", "image:pet", "image:feed", "image:play", "image:sleep"}
	got := []string{}
	for _, op := range r.ops {
		if strings.HasPrefix(op, "image:") {
			got = append(got, op)
		}
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Expected images %v, got %v", want, got)
	}
	if r.hasText("Feed") {
		t.Error("Action labels should not be drawn over icons")
	}
}

func TestStar(t *testing.T) {
	pts := Star(100, 100, 20, 8)
	if len(pts) != 10 {
		t.Fatalf("Expected 10 points, got %d", len(pts))
	}
	if math.Abs(float64(pts[0].X-100)) > 1e-3 || math.Abs(float64(pts[0].Y-80)) > 1e-3 {
		t.Errorf("Expected top point at (100, 80), got %+v", pts[0])
	}
	for i, p := range pts {
		d := math.Hypot(float64(p.X-100), float64(p.Y-100))
		want := 20.0
		if i%2 == 1 {
			want = 8
		}
		if math.Abs(d-want) > 1e-3 {
			t.Errorf("Point %d at distance %f, want %f", i, d, want)
		}
	}
}
