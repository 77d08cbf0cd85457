// Package host defines the capabilities the navigation core needs from the
// rendering engine: image, shape and text primitives, opacity tweens, pointer
// activation and viewport resize notification.
//
// All callbacks (activations, tween completions, resizes) must be delivered on
// the single goroutine that runs the game loop.
package host

import (
	"image/color"
	"time"

	"github.com/younwookim/starmap/internal/domain/entity"
)

// Host is the rendering engine the navigation core draws into
type Host interface {
	// LoadImage registers the image at path under id
	LoadImage(id, path string) error

	// DrawImage adds an image showing texture id, centered on its position
	DrawImage(id string) Image

	// DrawRectangle adds a filled rectangle anchored at its top-left corner
	DrawRectangle(x, y, w, h float64, c color.Color) Rect

	// DrawText adds a text label centered on (x, y)
	DrawText(x, y float64, content string, style TextStyle) Text

	// DrawCircle adds a filled circle
	DrawCircle(x, y, r float64, c color.Color, alpha float64) Circle

	// Animate tweens target's opacity from -> to over duration and calls
	// onComplete exactly once when the tween finishes
	Animate(target Fader, from, to float64, duration time.Duration, onComplete func())

	// OnViewportResize registers fn to be called after every viewport size change
	OnViewportResize(fn func(entity.Viewport))

	// ViewportSize returns the current render surface size
	ViewportSize() entity.Viewport
}

// Positioner can be moved
type Positioner interface {
	SetPosition(x, y float64)
	Position() (x, y float64)
}

// Fader has an animatable opacity in [0, 1]
type Fader interface {
	SetAlpha(a float64)
	Alpha() float64
}

// Toggler can be shown and hidden
type Toggler interface {
	SetVisible(v bool)
	Visible() bool
}

// Activatable delivers pointer activation (click) events while visible
type Activatable interface {
	OnActivate(fn func())
}

// Image is a drawn image (the background)
type Image interface {
	Positioner
	SetDisplaySize(w, h float64)
	DisplaySize() (w, h float64)
	SetTexture(id string)
	Texture() string
}

// Rect is a drawn rectangle (the warp overlay)
type Rect interface {
	Positioner
	Fader
	SetSize(w, h float64)
	Size() (w, h float64)
}

// Text is a drawn, clickable label (the return button)
type Text interface {
	Positioner
	Toggler
	Activatable
}

// Circle is a drawn, clickable circle (a starmap region)
type Circle interface {
	Positioner
	Toggler
	Activatable
}

// TextStyle describes how a label is drawn
type TextStyle struct {
	FontSize   float64
	Color      color.Color
	Background color.Color
	PaddingX   float64
	PaddingY   float64
}
