package dense

import "lifelab/internal/core"

// CopyRegion returns the live cells inside the inclusive rectangle as offsets
// from the rectangle's min corner, scanned row by row.
func (b *Board) CopyRegion(r core.Rect) []core.Point {
	var pattern []core.Point
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if b.Alive(x, y) {
				pattern = append(pattern, core.Point{X: x - r.Min.X, Y: y - r.Min.Y})
			}
		}
	}
	return pattern
}

// CutRegion copies the rectangle and then clears every cell inside it.
func (b *Board) CutRegion(r core.Rect) []core.Point {
	pattern := b.CopyRegion(r)
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			b.SetCell(x, y, false)
		}
	}
	return pattern
}

// PasteAt stamps the pattern with its origin at (x, y). Offsets landing
// outside the board are silently dropped.
func (b *Board) PasteAt(x, y int, pattern []core.Point) {
	for _, p := range pattern {
		b.SetCell(x+p.X, y+p.Y, true)
	}
}
