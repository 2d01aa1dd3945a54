package ebiten

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"petpal/internal/game"
	"petpal/internal/render"
)

// ellipseSegments is how many edges approximate an ellipse
const ellipseSegments = 48

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// EbitenRenderer implements render.Renderer on top of an ebiten screen.
type EbitenRenderer struct {
	dst   *ebiten.Image
	font  *text.GoTextFaceSource
	faces map[float64]*text.GoTextFace
	white *ebiten.Image
}

// NewRenderer creates a renderer using the Go Regular font.
func NewRenderer() (*EbitenRenderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}

	// Solid white source for DrawTriangles, inset to avoid edge bleeding
	base := ebiten.NewImage(3, 3)
	base.Fill(color.White)

	return &EbitenRenderer{
		font:  src,
		faces: make(map[float64]*text.GoTextFace),
		white: base.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// SetTarget sets the image drawn on by the following calls.
func (r *EbitenRenderer) SetTarget(dst *ebiten.Image) {
	r.dst = dst
}

// FillRect draws a filled rectangle.
func (r *EbitenRenderer) FillRect(x, y, w, h float32, clr color.Color) {
	vector.DrawFilledRect(r.dst, x, y, w, h, clr, false)
}

// StrokeRect draws a rectangle outline.
func (r *EbitenRenderer) StrokeRect(x, y, w, h, width float32, clr color.Color) {
	vector.StrokeRect(r.dst, x, y, w, h, width, clr, false)
}

// FillEllipse draws a filled ellipse. Circles use the vector fast path.
func (r *EbitenRenderer) FillEllipse(cx, cy, rx, ry float32, clr color.Color) {
	if rx == ry {
		vector.DrawFilledCircle(r.dst, cx, cy, rx, clr, true)
		return
	}
	r.FillPolygon(ellipsePoints(cx, cy, rx, ry), clr)
}

// StrokeEllipse draws an ellipse outline.
func (r *EbitenRenderer) StrokeEllipse(cx, cy, rx, ry, width float32, clr color.Color) {
	if rx == ry {
		vector.StrokeCircle(r.dst, cx, cy, rx, width, clr, true)
		return
	}
	r.strokeLoop(ellipsePoints(cx, cy, rx, ry), width, clr)
}

// FillPolygon fills a closed polygon.
func (r *EbitenRenderer) FillPolygon(points []render.Point, clr color.Color) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		path.LineTo(p.X, p.Y)
	}
	path.Close()

	vertices, indices := path.AppendVerticesAndIndicesForFilling(nil, nil)

	cr, cg, cb, ca := clr.RGBA()
	for i := range vertices {
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
		vertices[i].ColorR = float32(cr) / 0xffff
		vertices[i].ColorG = float32(cg) / 0xffff
		vertices[i].ColorB = float32(cb) / 0xffff
		vertices[i].ColorA = float32(ca) / 0xffff
	}

	r.dst.DrawTriangles(vertices, indices, r.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// StrokePolygon draws the outline of a closed polygon.
func (r *EbitenRenderer) StrokePolygon(points []render.Point, width float32, clr color.Color) {
	r.strokeLoop(points, width, clr)
}

func (r *EbitenRenderer) strokeLoop(points []render.Point, width float32, clr color.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(r.dst, p.X, p.Y, q.X, q.Y, width, clr, true)
	}
}

// DrawText draws text at the given size, anchored by align.
func (r *EbitenRenderer) DrawText(str string, x, y float32, size float64, clr color.Color, align render.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	if align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(r.dst, str, r.face(size), op)
}

func (r *EbitenRenderer) face(size float64) *text.GoTextFace {
	f, ok := r.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: r.font, Size: size}
		r.faces[size] = f
	}
	return f
}

// DrawImage stretches img over the rect.
func (r *EbitenRenderer) DrawImage(img render.Image, x, y, w, h float32) {
	src, ok := img.(*EbitenImage)
	if !ok || src == nil {
		return
	}
	iw, ih := src.Size()
	if iw == 0 || ih == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(iw), float64(h)/float64(ih))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterLinear
	r.dst.DrawImage(src.img, op)
}

func ellipsePoints(cx, cy, rx, ry float32) []render.Point {
	pts := make([]render.Point, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = render.Point{
			X: cx + rx*float32(math.Cos(a)),
			Y: cy + ry*float32(math.Sin(a)),
		}
	}
	return pts
}

// LoadAssets reads the scene pictures from dir. Missing or unreadable files
// are logged and left nil.
func LoadAssets(dir string) render.Assets {
	var a render.Assets
	a.Landing = loadImage(dir, render.AssetFiles.Landing)
	a.Background = loadImage(dir, render.AssetFiles.Background)
	a.Pet = loadImage(dir, render.AssetFiles.Pet)
	for i, name := range render.AssetFiles.Actions {
		a.Actions[i] = loadImage(dir, name)
	}
	return a
}

func loadImage(dir, name string) render.Image {
	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		slog.Warn("ebiten: asset not loaded, drawing a stand-in", "path", path, "err", err)
		return nil
	}
	return &EbitenImage{img: img}
}

// Options configure the desktop window.
type Options struct {
	Title    string
	TickRate int
}

// Engine adapts game.App to ebiten.Game.
type Engine struct {
	app      *game.App
	scene    *render.Scene
	renderer *EbitenRenderer
}

// NewEngine wires the app and scene to a new renderer.
func NewEngine(app *game.App, scene *render.Scene) (*Engine, error) {
	r, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	return &Engine{app: app, scene: scene, renderer: r}, nil
}

// Run opens the window and blocks until it is closed.
func (e *Engine) Run(opts Options) error {
	l := e.app.Layout()
	ebiten.SetWindowSize(l.Width, l.Height)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	return ebiten.RunGame(e)
}

var keyMap = map[ebiten.Key]game.Key{
	ebiten.KeyF:           game.KeyFeed,
	ebiten.KeyP:           game.KeyPlay,
	ebiten.KeyS:           game.KeySleep,
	ebiten.KeyR:           game.KeyRestart,
	ebiten.KeyEnter:       game.KeyConfirm,
	ebiten.KeyNumpadEnter: game.KeyConfirm,
	ebiten.KeySpace:       game.KeyConfirm,
}

// Update implements ebiten.Game.
func (e *Engine) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.app.PointerDown(ebiten.CursorPosition())
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		e.app.PointerDown(ebiten.TouchPosition(id))
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if key, ok := keyMap[k]; ok {
			e.app.KeyDown(key)
		}
	}

	e.app.Tick()
	return nil
}

// Draw implements ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.renderer.SetTarget(screen)
	e.scene.Draw(e.renderer, e.app)
}

// Layout implements ebiten.Game. The logical size never changes; ebiten
// scales it to the window.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	l := e.app.Layout()
	return l.Width, l.Height
}
