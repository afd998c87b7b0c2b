package core

import "testing"

func TestByteGridWrap(t *testing.T) {
	g := NewByteGrid(10, 5)
	cases := []struct{ x, y, wx, wy int }{
		{0, 0, 0, 0},
		{-1, -1, 9, 4},
		{10, 5, 0, 0},
		{23, -7, 3, 3},
	}
	for _, c := range cases {
		if wx, wy := g.Wrap(c.x, c.y); wx != c.wx || wy != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), want (%d,%d)", c.x, c.y, wx, wy, c.wx, c.wy)
		}
	}
}

func TestByteGridCopyOverlap(t *testing.T) {
	src := NewByteGrid(4, 4)
	src.Cells()[src.Index(1, 1)] = 1
	src.Cells()[src.Index(3, 3)] = 1

	dst := NewByteGrid(2, 2)
	dst.CopyOverlap(src)
	if dst.Cells()[dst.Index(1, 1)] != 1 {
		t.Fatal("overlap cell not copied")
	}

	big := NewByteGrid(6, 6)
	big.CopyOverlap(src)
	if big.Cells()[big.Index(3, 3)] != 1 {
		t.Fatal("cell lost when growing")
	}
	if big.Cells()[big.Index(5, 5)] != 0 {
		t.Fatal("cell invented outside the overlap")
	}
}

func TestByteGridMinimumSize(t *testing.T) {
	g := NewByteGrid(0, -3)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("degenerate grid = %dx%d, want 1x1", g.W, g.H)
	}
}
