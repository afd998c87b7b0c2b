//go:build !ebiten

package ui

import "lifelab/internal/core"

// Frame mirrors the GUI build's overlay inputs.
type Frame struct {
	Selection *core.Rect
	CellSize  float64
	OriginX   float64
	OriginY   float64
	Status    string
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any, Frame) {}
