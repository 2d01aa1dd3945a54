package game

import "petpal/internal/pet"

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rect. The right and
// bottom edges are exclusive.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the rect's midpoint.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Element sizes
const (
	buttonWidth       = 200
	buttonHeight      = 80
	largeButtonWidth  = 250
	largeButtonHeight = 90
	actionButtonSize  = 100
	actionSpacing     = 120
	petSize           = 300
	bubbleWidth       = 250
	bubbleHeight      = 80
	popupWidth        = 600
	popupHeight       = 300
)

// Layout holds every hit area and drawing anchor for one screen size.
type Layout struct {
	Width, Height int

	Play      Rect // landing
	StartGame Rect // tutorial
	PlayAgain Rect // game, lower left

	// Feed, play and sleep buttons, top to bottom
	Actions [3]Rect

	Pet    Rect
	Bubble Rect
	Popup  Rect
}

// NewLayout places everything for a width x height screen.
func NewLayout(width, height int) Layout {
	l := Layout{Width: width, Height: height}

	l.Play = Rect{(width - buttonWidth) / 2, height/2 + 100, buttonWidth, buttonHeight}
	l.StartGame = Rect{(width - largeButtonWidth) / 2, height - 250, largeButtonWidth, largeButtonHeight}
	l.PlayAgain = Rect{20, height - buttonHeight - 20, buttonWidth, buttonHeight}

	for i := range l.Actions {
		l.Actions[i] = Rect{width - 120, height/2 - 120 + i*actionSpacing, actionButtonSize, actionButtonSize}
	}

	l.Pet = Rect{(width - petSize) / 2, height - 450, petSize, petSize}
	l.Bubble = Rect{l.Pet.X + petSize/2 - bubbleWidth/2, l.Pet.Y - 100, bubbleWidth, bubbleHeight}
	l.Popup = Rect{(width - popupWidth) / 2, (height - popupHeight) / 2, popupWidth, popupHeight}
	return l
}

// ActionAt returns the action whose button contains the point.
func (l Layout) ActionAt(x, y int) (pet.Action, bool) {
	for i, def := range pet.GetActionDefinitions() {
		if i < len(l.Actions) && l.Actions[i].Contains(x, y) {
			return def.Action, true
		}
	}
	return pet.ActionNone, false
}
