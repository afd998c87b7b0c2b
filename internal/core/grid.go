package core

// ByteGrid stores a 2D grid of byte-sized cell states in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *ByteGrid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// CopyOverlap copies the region shared with src into this grid. Cells outside
// the overlap keep their current value.
func (g *ByteGrid) CopyOverlap(src *ByteGrid) {
	if src == nil {
		return
	}
	w := g.W
	if src.W < w {
		w = src.W
	}
	h := g.H
	if src.H < h {
		h = src.H
	}
	for y := 0; y < h; y++ {
		copy(g.data[g.Index(0, y):g.Index(0, y)+w], src.data[src.Index(0, y):src.Index(0, y)+w])
	}
}
