package app

import (
	"math"
	"testing"
)

func TestCameraCenterOnOrigin(t *testing.T) {
	c := NewCamera(800, 800, 8)
	x, y := c.ScreenToCell(400, 400)
	if x != 0 || y != 0 {
		t.Fatalf("view center maps to cell (%d,%d), want (0,0)", x, y)
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera(800, 600, 10)
	c.Pan(-123, 45)
	sx, sy := c.WorldToScreen(7, -9)
	x, y := c.ScreenToCell(sx+0.5, sy+0.5)
	if x != 7 || y != -9 {
		t.Fatalf("round trip gave (%d,%d), want (7,-9)", x, y)
	}
}

func TestCameraZoomAnchorsCursor(t *testing.T) {
	c := NewCamera(800, 800, 8)
	const sx, sy = 200.0, 300.0
	wx := sx/c.CellSize + c.X
	wy := sy/c.CellSize + c.Y

	c.ZoomAt(sx, sy, 1.5)

	gotX := sx/c.CellSize + c.X
	gotY := sy/c.CellSize + c.Y
	if math.Abs(gotX-wx) > 1e-9 || math.Abs(gotY-wy) > 1e-9 {
		t.Fatalf("world point under cursor moved: (%v,%v) -> (%v,%v)", wx, wy, gotX, gotY)
	}
}

func TestCameraZoomClamped(t *testing.T) {
	c := NewCamera(800, 800, 8)
	for i := 0; i < 100; i++ {
		c.ZoomAt(0, 0, 0.5)
	}
	if c.CellSize < MinCellSize {
		t.Fatalf("cell size %v below minimum %v", c.CellSize, MinCellSize)
	}
	for i := 0; i < 100; i++ {
		c.ZoomAt(0, 0, 2)
	}
	if c.CellSize > MaxCellSize {
		t.Fatalf("cell size %v above maximum %v", c.CellSize, MaxCellSize)
	}
}

func TestCameraPan(t *testing.T) {
	c := NewCamera(800, 800, 8)
	before := c.X
	c.Pan(80, 0) // drag right by 80px moves the view left by 10 cells
	if math.Abs((before-c.X)-10) > 1e-9 {
		t.Fatalf("pan moved X by %v cells, want 10", before-c.X)
	}
}
