// Package hosttest provides an in-memory host.Host for tests. It records
// geometry and visibility and holds tweens until the test completes them.
package hosttest

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// Animation is a tween waiting for the test to finish it
type Animation struct {
	Target     host.Fader
	From, To   float64
	Duration   time.Duration
	elapsed    time.Duration
	onComplete func()
}

// Host is a fake host.Host
type Host struct {
	Images    map[string]string
	FailLoads map[string]bool

	Background []*Image
	Rects      []*Rect
	Texts      []*Text
	Circles    []*Circle

	pending       []*Animation
	started       int
	viewport      entity.Viewport
	pendingResize *entity.Viewport
	listeners     []func(entity.Viewport)
}

// New creates a fake host with the given viewport
func New(w, h int) *Host {
	return &Host{
		Images:    make(map[string]string),
		FailLoads: make(map[string]bool),
		viewport:  entity.Viewport{Width: w, Height: h},
	}
}

func (h *Host) LoadImage(id, path string) error {
	if h.FailLoads[id] {
		return fmt.Errorf("load %s: file does not exist", path)
	}
	h.Images[id] = path
	return nil
}

func (h *Host) DrawImage(id string) host.Image {
	img := &Image{texture: id}
	h.Background = append(h.Background, img)
	return img
}

func (h *Host) DrawRectangle(x, y, w, hh float64, c color.Color) host.Rect {
	r := &Rect{x: x, y: y, w: w, h: hh, alpha: 1, Color: c}
	h.Rects = append(h.Rects, r)
	return r
}

func (h *Host) DrawText(x, y float64, content string, style host.TextStyle) host.Text {
	t := &Text{handle: handle{x: x, y: y, visible: true}, Content: content, Style: style}
	h.Texts = append(h.Texts, t)
	return t
}

func (h *Host) DrawCircle(x, y, r float64, c color.Color, alpha float64) host.Circle {
	ci := &Circle{handle: handle{x: x, y: y, visible: true}, Radius: r, Color: c, Alpha: alpha}
	h.Circles = append(h.Circles, ci)
	return ci
}

func (h *Host) Animate(target host.Fader, from, to float64, d time.Duration, onComplete func()) {
	target.SetAlpha(from)
	h.pending = append(h.pending, &Animation{Target: target, From: from, To: to, Duration: d, onComplete: onComplete})
	h.started++
}

func (h *Host) OnViewportResize(fn func(entity.Viewport)) {
	h.listeners = append(h.listeners, fn)
}

func (h *Host) ViewportSize() entity.Viewport {
	return h.viewport
}

// Resize records a new viewport; listeners hear about it on the next Update,
// as with the ebiten host. An unchanged size is not an event.
func (h *Host) Resize(w, hh int) {
	vp := entity.Viewport{Width: w, Height: hh}
	if vp == h.viewport {
		h.pendingResize = nil
		return
	}
	h.pendingResize = &vp
}

// Pending returns the number of unfinished animations
func (h *Host) Pending() int {
	return len(h.pending)
}

// Started returns the number of animations ever started
func (h *Host) Started() int {
	return h.started
}

// Peek returns the oldest unfinished animation, or nil
func (h *Host) Peek() *Animation {
	if len(h.pending) == 0 {
		return nil
	}
	return h.pending[0]
}

// CompleteNext finishes the oldest animation and runs its callback.
// Returns false if nothing was pending.
func (h *Host) CompleteNext() bool {
	if len(h.pending) == 0 {
		return false
	}
	a := h.pending[0]
	h.pending = h.pending[1:]
	a.Target.SetAlpha(a.To)
	if a.onComplete != nil {
		a.onComplete()
	}
	return true
}

// CompleteAll finishes animations until none are pending, including ones
// started by completion callbacks
func (h *Host) CompleteAll() {
	for i := 0; i < 64 && h.CompleteNext(); i++ {
	}
}

// Update delivers a pending resize, then advances animations by dt seconds
// and completes, in start order, those that have run their full duration
func (h *Host) Update(dt float64) {
	if h.pendingResize != nil {
		h.viewport = *h.pendingResize
		h.pendingResize = nil
		for _, fn := range h.listeners {
			fn(h.viewport)
		}
	}

	step := time.Duration(dt * float64(time.Second))
	current := h.pending
	h.pending = nil
	var done []*Animation
	for _, a := range current {
		a.elapsed += step
		if a.elapsed >= a.Duration {
			done = append(done, a)
		} else {
			h.pending = append(h.pending, a)
		}
	}
	for _, a := range done {
		a.Target.SetAlpha(a.To)
		if a.onComplete != nil {
			a.onComplete()
		}
	}
}

// TextHitHalfWidth and TextHitHalfHeight size the fake click box of labels
const (
	TextHitHalfWidth  = 80
	TextHitHalfHeight = 16
)

// Click delivers an activation to the topmost visible circle or label under
// (x, y), circles being drawn after labels in the real scene
func (h *Host) Click(x, y float64) bool {
	for i := len(h.Circles) - 1; i >= 0; i-- {
		c := h.Circles[i]
		dx, dy := x-c.x, y-c.y
		if c.visible && dx*dx+dy*dy <= c.Radius*c.Radius && len(c.handlers) > 0 {
			return c.Click()
		}
	}
	for i := len(h.Texts) - 1; i >= 0; i-- {
		t := h.Texts[i]
		if t.visible && math.Abs(x-t.x) <= TextHitHalfWidth && math.Abs(y-t.y) <= TextHitHalfHeight && len(t.handlers) > 0 {
			return t.Click()
		}
	}
	return false
}

// Draw does nothing
func (h *Host) Draw(*ebiten.Image) {}

type handle struct {
	x, y     float64
	visible  bool
	handlers []func()
}

func (b *handle) SetPosition(x, y float64)     { b.x, b.y = x, y }
func (b *handle) Position() (float64, float64) { return b.x, b.y }
func (b *handle) SetVisible(v bool)            { b.visible = v }
func (b *handle) Visible() bool                { return b.visible }
func (b *handle) OnActivate(fn func())         { b.handlers = append(b.handlers, fn) }

// Click delivers an activation the way the real host does: hidden handles
// receive nothing. Returns whether the click was delivered.
func (b *handle) Click() bool {
	if !b.visible {
		return false
	}
	for _, fn := range b.handlers {
		fn()
	}
	return true
}

// Image is a fake background image
type Image struct {
	x, y, w, h float64
	texture    string
}

func (i *Image) SetPosition(x, y float64)        { i.x, i.y = x, y }
func (i *Image) Position() (float64, float64)    { return i.x, i.y }
func (i *Image) SetDisplaySize(w, h float64)     { i.w, i.h = w, h }
func (i *Image) DisplaySize() (float64, float64) { return i.w, i.h }
func (i *Image) SetTexture(id string)            { i.texture = id }
func (i *Image) Texture() string                 { return i.texture }

// Rect is a fake rectangle
type Rect struct {
	x, y, w, h float64
	alpha      float64
	Color      color.Color
}

func (r *Rect) SetPosition(x, y float64)     { r.x, r.y = x, y }
func (r *Rect) Position() (float64, float64) { return r.x, r.y }
func (r *Rect) SetSize(w, h float64)         { r.w, r.h = w, h }
func (r *Rect) Size() (float64, float64)     { return r.w, r.h }
func (r *Rect) SetAlpha(a float64)           { r.alpha = a }
func (r *Rect) Alpha() float64               { return r.alpha }

// Text is a fake label
type Text struct {
	handle
	Content string
	Style   host.TextStyle
}

// Circle is a fake circle
type Circle struct {
	handle
	Radius float64
	Color  color.Color
	Alpha  float64
}
