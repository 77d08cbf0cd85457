// Package render implements host.Host on top of Ebitengine: images,
// vector shapes and text/v2 labels drawn in creation order, gween tweens,
// pointer hit-testing and deferred viewport resize delivery.
//
// Everything runs on the game loop goroutine. Resize, tween completion and
// activation callbacks are all invoked from Update or Click.
package render

import (
	"bytes"
	"fmt"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// placeholderColor fills textures whose image could not be loaded
var placeholderColor = color.RGBA{26, 26, 46, 255}

// node is anything drawn by the host
type node interface {
	draw(screen *ebiten.Image)
	isVisible() bool
	// activate fires click handlers if (x, y) hits the node; reports whether it did
	activate(x, y float64) bool
}

// tween animates one Fader's opacity
type tween struct {
	tween      *gween.Tween
	target     host.Fader
	onComplete func()
}

// Host is an Ebitengine-backed host.Host
type Host struct {
	assets fs.FS
	logger *log.Logger

	images map[string]*ebiten.Image
	nodes  []node
	tweens []*tween

	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace

	viewport      entity.Viewport
	pendingResize *entity.Viewport
	listeners     []func(entity.Viewport)
}

var _ host.Host = (*Host)(nil)

// New creates a host reading images from assets, with an initial viewport
func New(assets fs.FS, vp entity.Viewport, logger *log.Logger) (*Host, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Host{
		assets:     assets,
		logger:     logger,
		images:     make(map[string]*ebiten.Image),
		fontSource: source,
		faces:      make(map[float64]*text.GoTextFace),
		viewport:   vp,
	}, nil
}

// LoadImage decodes path from the assets filesystem and registers it as id.
// On failure a placeholder texture is registered so id stays drawable, and
// the error is returned for the caller to report.
func (h *Host) LoadImage(id, path string) error {
	img, err := h.decode(path)
	if err != nil {
		placeholder := ebiten.NewImage(1, 1)
		placeholder.Fill(placeholderColor)
		h.images[id] = placeholder
		return fmt.Errorf("failed to load image %s for %s: %w", path, id, err)
	}
	h.images[id] = img
	return nil
}

func (h *Host) decode(path string) (*ebiten.Image, error) {
	f, err := h.assets.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

// DrawImage adds an image centered on its position
func (h *Host) DrawImage(id string) host.Image {
	n := &imageNode{host: h, texture: id}
	if tex, ok := h.images[id]; ok {
		b := tex.Bounds()
		n.w, n.h = float64(b.Dx()), float64(b.Dy())
	}
	h.nodes = append(h.nodes, n)
	return n
}

// DrawRectangle adds a filled rectangle anchored at its top-left corner
func (h *Host) DrawRectangle(x, y, w, hh float64, c color.Color) host.Rect {
	n := &rectNode{x: x, y: y, w: w, h: hh, color: c, alpha: 1}
	h.nodes = append(h.nodes, n)
	return n
}

// DrawText adds a padded label with a background box, centered on (x, y)
func (h *Host) DrawText(x, y float64, content string, style host.TextStyle) host.Text {
	n := &textNode{
		basic:   basic{x: x, y: y, visible: true},
		content: content,
		style:   style,
		face:    h.face(style.FontSize),
	}
	n.measure()
	h.nodes = append(h.nodes, n)
	return n
}

// DrawCircle adds a filled circle
func (h *Host) DrawCircle(x, y, r float64, c color.Color, alpha float64) host.Circle {
	n := &circleNode{basic: basic{x: x, y: y, visible: true}, r: r, color: c, alpha: alpha}
	h.nodes = append(h.nodes, n)
	return n
}

// Animate starts a linear opacity tween. onComplete runs exactly once, from
// the Update call in which the tween finishes.
func (h *Host) Animate(target host.Fader, from, to float64, duration time.Duration, onComplete func()) {
	target.SetAlpha(from)
	h.tweens = append(h.tweens, &tween{
		tween:      gween.New(float32(from), float32(to), float32(duration.Seconds()), ease.Linear),
		target:     target,
		onComplete: onComplete,
	})
}

// OnViewportResize registers fn to run after each delivered resize
func (h *Host) OnViewportResize(fn func(entity.Viewport)) {
	h.listeners = append(h.listeners, fn)
}

// ViewportSize returns the last delivered viewport
func (h *Host) ViewportSize() entity.Viewport {
	return h.viewport
}

// Resize records a new surface size; listeners hear about it on the next Update
func (h *Host) Resize(w, hh int) {
	vp := entity.Viewport{Width: w, Height: hh}
	if vp == h.viewport {
		h.pendingResize = nil
		return
	}
	h.pendingResize = &vp
}

// Update delivers a pending resize, then advances tweens by dt seconds and
// runs the completion callbacks of the ones that finished
func (h *Host) Update(dt float64) {
	if h.pendingResize != nil {
		h.viewport = *h.pendingResize
		h.pendingResize = nil
		for _, fn := range h.listeners {
			fn(h.viewport)
		}
	}

	active := h.tweens
	h.tweens = nil
	var finished []*tween
	for _, tw := range active {
		v, done := tw.tween.Update(float32(dt))
		tw.target.SetAlpha(float64(v))
		if done {
			finished = append(finished, tw)
		} else {
			h.tweens = append(h.tweens, tw)
		}
	}

	// Callbacks may start new tweens; those begin advancing next tick
	for _, tw := range finished {
		if tw.onComplete != nil {
			tw.onComplete()
		}
	}
}

// Animating reports whether any tween is running
func (h *Host) Animating() bool {
	return len(h.tweens) > 0
}

// Click delivers a pointer activation to the topmost visible interactive
// node under (x, y). Hidden nodes never receive clicks.
func (h *Host) Click(x, y float64) bool {
	for i := len(h.nodes) - 1; i >= 0; i-- {
		n := h.nodes[i]
		if !n.isVisible() {
			continue
		}
		if n.activate(x, y) {
			return true
		}
	}
	return false
}

// Draw renders every visible node in creation order
func (h *Host) Draw(screen *ebiten.Image) {
	for _, n := range h.nodes {
		if n.isVisible() {
			n.draw(screen)
		}
	}
}

func (h *Host) face(size float64) *text.GoTextFace {
	if size <= 0 {
		size = 24
	}
	if f, ok := h.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: h.fontSource, Size: size}
	h.faces[size] = f
	return f
}

func (h *Host) texture(id string) *ebiten.Image {
	return h.images[id]
}
