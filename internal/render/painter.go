//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"lifelab/internal/core"
)

// GridPainter updates a single RGBA image from dense cell bytes and draws it
// scaled to the destination.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the provided cells into the painter image and draws it so the
// full grid covers viewW×viewH pixels on dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, viewW, viewH int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.ReplacePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(viewW)/float64(gp.w), float64(viewH)/float64(gp.h))
	dst.DrawImage(gp.img, op)
}

// Resize reallocates the painter for new grid dimensions.
func (gp *GridPainter) Resize(w, h int) {
	if w == gp.w && h == gp.h {
		return
	}
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	gp.img = ebiten.NewImage(w, h)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

// ScatterPainter draws an unbounded board's live cells through a camera
// transform, culling everything outside the destination.
type ScatterPainter struct{}

// Scatter draws each live cell as a filled square of cell size cs (screen
// pixels) using the world-to-screen transform fn.
func (ScatterPainter) Scatter(dst *ebiten.Image, board core.LiveLister, fn func(x, y int) (float64, float64), cs float64, col color.Color) {
	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	board.EachLive(func(p core.Point) {
		sx, sy := fn(p.X, p.Y)
		if sx+cs < 0 || sy+cs < 0 || sx > w || sy > h {
			return
		}
		vector.DrawFilledRect(dst, float32(sx), float32(sy), float32(cs), float32(cs), col, false)
	})
}
