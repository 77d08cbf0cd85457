package entity

import "errors"

var (
	// ErrUnknownWorld is returned when an identifier is absent from the world registry.
	ErrUnknownWorld = errors.New("unknown world")

	// ErrTransitionInProgress is returned when a warp is requested while another is running.
	ErrTransitionInProgress = errors.New("transition in progress")
)
