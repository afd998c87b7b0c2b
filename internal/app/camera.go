package app

import "math"

// Camera zoom bounds in screen pixels per cell.
const (
	MinCellSize = 1.0
	MaxCellSize = 48.0
)

// Camera maps unbounded world cell coordinates to screen pixels. X and Y are
// the world position of the screen's top-left corner; CellSize is the zoom in
// pixels per cell.
type Camera struct {
	X, Y     float64
	CellSize float64
}

// NewCamera returns a camera centered on the origin for a view of the given
// pixel dimensions.
func NewCamera(viewW, viewH int, cellSize float64) *Camera {
	c := &Camera{CellSize: cellSize}
	if c.CellSize <= 0 {
		c.CellSize = 8
	}
	c.CenterOn(0, 0, viewW, viewH)
	return c
}

// WorldToScreen converts a cell coordinate to the screen position of its
// top-left corner.
func (c *Camera) WorldToScreen(x, y int) (float64, float64) {
	return (float64(x) - c.X) * c.CellSize, (float64(y) - c.Y) * c.CellSize
}

// ScreenToCell converts a screen position to the cell under it.
func (c *Camera) ScreenToCell(sx, sy float64) (int, int) {
	return int(math.Floor(sx/c.CellSize + c.X)), int(math.Floor(sy/c.CellSize + c.Y))
}

// Pan shifts the view by a screen-pixel delta.
func (c *Camera) Pan(dx, dy float64) {
	c.X -= dx / c.CellSize
	c.Y -= dy / c.CellSize
}

// ZoomAt scales the cell size by factor, keeping the world point under the
// screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(sx, sy, factor float64) {
	next := c.CellSize * factor
	if next < MinCellSize {
		next = MinCellSize
	}
	if next > MaxCellSize {
		next = MaxCellSize
	}
	// Anchor: world coordinate under the cursor must not move.
	wx := sx/c.CellSize + c.X
	wy := sy/c.CellSize + c.Y
	c.CellSize = next
	c.X = wx - sx/c.CellSize
	c.Y = wy - sy/c.CellSize
}

// CenterOn places the world point (wx, wy) at the middle of the view.
func (c *Camera) CenterOn(wx, wy float64, viewW, viewH int) {
	c.X = wx - float64(viewW)/(2*c.CellSize)
	c.Y = wy - float64(viewH)/(2*c.CellSize)
}
