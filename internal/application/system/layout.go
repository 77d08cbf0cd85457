package system

import (
	"github.com/younwookim/starmap/internal/application/host"
	"github.com/younwookim/starmap/internal/domain/entity"
)

// DefaultReturnOffset is the return button's distance from the bottom edge
const DefaultReturnOffset = 50

// LayoutManager pushes screen-space geometry for the current viewport.
// It only touches positions and sizes, never visibility or world identity,
// so it is safe to call at any point of a warp.
type LayoutManager struct {
	background   host.Image
	overlay      host.Rect
	returnButton host.Text
	regions      *RegionController
	returnOffset float64

	last entity.Viewport
}

// NewLayoutManager creates a layout manager for the given handles
func NewLayoutManager(background host.Image, overlay host.Rect, returnButton host.Text, regions *RegionController, returnOffset float64) *LayoutManager {
	return &LayoutManager{
		background:   background,
		overlay:      overlay,
		returnButton: returnButton,
		regions:      regions,
		returnOffset: returnOffset,
	}
}

// Apply lays everything out for vp
func (l *LayoutManager) Apply(vp entity.Viewport) {
	w, h := float64(vp.Width), float64(vp.Height)
	cx, cy := vp.Center()

	// Background is stretched to fill; aspect distortion over cropping
	l.background.SetPosition(cx, cy)
	l.background.SetDisplaySize(w, h)

	l.CoverOverlay(vp)

	l.returnButton.SetPosition(cx, h-l.returnOffset)

	if l.regions != nil {
		l.regions.Reposition()
	}

	l.last = vp
}

// CoverOverlay anchors the warp overlay at the origin and sizes it to vp
func (l *LayoutManager) CoverOverlay(vp entity.Viewport) {
	l.overlay.SetPosition(0, 0)
	l.overlay.SetSize(float64(vp.Width), float64(vp.Height))
}

// Last returns the viewport of the most recent Apply
func (l *LayoutManager) Last() entity.Viewport {
	return l.last
}
