package render

import "image/color"

// Renderer is the drawing surface the scene paints on. It abstracts the
// underlying graphics engine so screens can be drawn and tested without a
// window.
type Renderer interface {
	// Shapes
	FillRect(x, y, w, h float32, clr color.Color)
	StrokeRect(x, y, w, h, width float32, clr color.Color)
	FillEllipse(cx, cy, rx, ry float32, clr color.Color)
	StrokeEllipse(cx, cy, rx, ry, width float32, clr color.Color)
	FillPolygon(points []Point, clr color.Color)
	StrokePolygon(points []Point, width float32, clr color.Color)

	// Text operations
	DrawText(text string, x, y float32, size float64, clr color.Color, align Align)

	// Images are stretched to fill the rect
	DrawImage(img Image, x, y, w, h float32)
}

// Image is an opaque, backend-specific picture.
type Image interface {
	Size() (width, height int)
}

// Point is a polygon vertex in logical pixels.
type Point struct {
	X, Y float32
}

// Align says which point of the text (x, y) refers to.
type Align int

const (
	AlignTopLeft Align = iota
	AlignCenter
)

// Assets are the optional pictures used by the scene. Any of them may be nil,
// in which case a drawn stand-in is used.
type Assets struct {
	Landing    Image
	Background Image
	Pet        Image

	// Feed, play and sleep icons
	Actions [3]Image
}

// AssetFiles are the file names looked up in the assets directory.
var AssetFiles = struct {
	Landing    string
	Background string
	Pet        string
	Actions    [3]string
}{
	Landing:    "landing.jpg",
	Background: "bg.png",
	Pet:        "pet_happy-.png",
	Actions:    [3]string{"feed.jpg", "play.jpg", "sleep.jpg"},
}
