package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/starmap/internal/application/host"
)

// basic carries position, visibility and click handlers
type basic struct {
	x, y     float64
	visible  bool
	handlers []func()
}

func (b *basic) SetPosition(x, y float64)     { b.x, b.y = x, y }
func (b *basic) Position() (float64, float64) { return b.x, b.y }
func (b *basic) SetVisible(v bool)            { b.visible = v }
func (b *basic) Visible() bool                { return b.visible }
func (b *basic) OnActivate(fn func())         { b.handlers = append(b.handlers, fn) }
func (b *basic) isVisible() bool              { return b.visible }

func (b *basic) fire() bool {
	if len(b.handlers) == 0 {
		return false
	}
	for _, fn := range b.handlers {
		fn()
	}
	return true
}

// --- image ---

type imageNode struct {
	host    *Host
	x, y    float64
	w, h    float64
	texture string
}

func (n *imageNode) SetPosition(x, y float64)        { n.x, n.y = x, y }
func (n *imageNode) Position() (float64, float64)    { return n.x, n.y }
func (n *imageNode) SetDisplaySize(w, h float64)     { n.w, n.h = w, h }
func (n *imageNode) DisplaySize() (float64, float64) { return n.w, n.h }
func (n *imageNode) SetTexture(id string)            { n.texture = id }
func (n *imageNode) Texture() string                 { return n.texture }
func (n *imageNode) isVisible() bool                 { return true }
func (n *imageNode) activate(_, _ float64) bool      { return false }

func (n *imageNode) draw(screen *ebiten.Image) {
	tex := n.host.texture(n.texture)
	if tex == nil || n.w <= 0 || n.h <= 0 {
		return
	}
	b := tex.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.w/float64(b.Dx()), n.h/float64(b.Dy()))
	op.GeoM.Translate(n.x-n.w/2, n.y-n.h/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

// --- rectangle ---

type rectNode struct {
	x, y, w, h float64
	color      color.Color
	alpha      float64
}

func (n *rectNode) SetPosition(x, y float64)     { n.x, n.y = x, y }
func (n *rectNode) Position() (float64, float64) { return n.x, n.y }
func (n *rectNode) SetSize(w, h float64)         { n.w, n.h = w, h }
func (n *rectNode) Size() (float64, float64)     { return n.w, n.h }
func (n *rectNode) SetAlpha(a float64)           { n.alpha = clamp01(a) }
func (n *rectNode) Alpha() float64               { return n.alpha }
func (n *rectNode) isVisible() bool              { return n.alpha > 0 }
func (n *rectNode) activate(_, _ float64) bool   { return false }

func (n *rectNode) draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, float32(n.x), float32(n.y), float32(n.w), float32(n.h), fade(n.color, n.alpha), false)
}

// --- circle ---

type circleNode struct {
	basic
	r     float64
	color color.Color
	alpha float64
}

func (n *circleNode) draw(screen *ebiten.Image) {
	vector.DrawFilledCircle(screen, float32(n.x), float32(n.y), float32(n.r), fade(n.color, n.alpha), true)
}

func (n *circleNode) activate(x, y float64) bool {
	dx, dy := x-n.x, y-n.y
	if dx*dx+dy*dy > n.r*n.r {
		return false
	}
	return n.fire()
}

// --- text ---

type textNode struct {
	basic
	content string
	style   host.TextStyle
	face    *text.GoTextFace

	textW, textH float64
}

func (n *textNode) measure() {
	m := n.face.Metrics()
	n.textW, n.textH = text.Measure(n.content, n.face, m.HAscent+m.HDescent+m.HLineGap)
}

// box returns the background rectangle, centered on the node position
func (n *textNode) box() (x, y, w, h float64) {
	w = n.textW + 2*n.style.PaddingX
	h = n.textH + 2*n.style.PaddingY
	return n.x - w/2, n.y - h/2, w, h
}

func (n *textNode) draw(screen *ebiten.Image) {
	x, y, w, h := n.box()
	if n.style.Background != nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), n.style.Background, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x+n.style.PaddingX, y+n.style.PaddingY)
	if n.style.Color != nil {
		op.ColorScale.ScaleWithColor(n.style.Color)
	}
	text.Draw(screen, n.content, n.face, op)
}

func (n *textNode) activate(px, py float64) bool {
	x, y, w, h := n.box()
	if px < x || px > x+w || py < y || py > y+h {
		return false
	}
	return n.fire()
}

// fade scales a color's (premultiplied) components by alpha
func fade(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	k := clamp01(alpha)
	return color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
