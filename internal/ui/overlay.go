//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"lifelab/internal/core"
)

// Frame carries the per-frame overlay inputs. Coordinates are board cells;
// the overlay projects them through CellSize and the view origin.
type Frame struct {
	Selection *core.Rect
	CellSize  float64
	OriginX   float64
	OriginY   float64
	Status    string
}

// Overlay draws the selection rectangle and the status line on top of the
// board view.
type Overlay struct{}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{} }

// Draw renders the overlay for the current frame.
func (o *Overlay) Draw(screen *ebiten.Image, f Frame) {
	if o == nil {
		return
	}
	if f.Selection != nil && f.CellSize > 0 {
		sel := *f.Selection
		x := float32(f.OriginX + float64(sel.Min.X)*f.CellSize)
		y := float32(f.OriginY + float64(sel.Min.Y)*f.CellSize)
		w := float32(float64(sel.Max.X-sel.Min.X+1) * f.CellSize)
		h := float32(float64(sel.Max.Y-sel.Min.Y+1) * f.CellSize)
		vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{R: 255, G: 255, B: 0, A: 200}, false)
	}
	if f.Status != "" {
		h := screen.Bounds().Dy()
		text.Draw(screen, f.Status, basicfont.Face7x13, 8, h-8, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	}
}
