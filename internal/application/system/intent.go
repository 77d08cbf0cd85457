package system

import "github.com/younwookim/starmap/internal/domain/entity"

// Intent represents a navigation request raised by user input
type Intent interface {
	isIntent()
}

// WarpIntent asks to travel to a world (a region was clicked)
type WarpIntent struct {
	Target entity.WorldID
}

func (WarpIntent) isIntent() {}

// ReturnIntent asks to travel back to the starmap (return button or Escape)
type ReturnIntent struct{}

func (ReturnIntent) isIntent() {}
