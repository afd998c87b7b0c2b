package dense

import (
	"testing"

	"lifelab/internal/core"
)

func expectCells(t *testing.T, b *Board, expects map[[2]int]bool) {
	t.Helper()
	size := b.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := b.Alive(x, y); alive != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	b := New(5, 5, EdgeWrap)
	b.SetCell(2, 1, true)
	b.SetCell(2, 2, true)
	b.SetCell(2, 3, true)

	b.Step()
	expectCells(t, b, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	b.Step()
	expectCells(t, b, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockStillLife(t *testing.T) {
	for _, edge := range []EdgePolicy{EdgeWrap, EdgeClamp} {
		b := New(6, 6, edge)
		b.SetCell(2, 2, true)
		b.SetCell(3, 2, true)
		b.SetCell(2, 3, true)
		b.SetCell(3, 3, true)

		b.Step()
		expectCells(t, b, map[[2]int]bool{
			{2, 2}: true,
			{3, 2}: true,
			{2, 3}: true,
			{3, 3}: true,
		})
	}
}

func TestLoneCellDies(t *testing.T) {
	b := New(5, 5, EdgeClamp)
	b.SetCell(2, 2, true)
	b.Step()
	if b.Population() != 0 {
		t.Fatalf("lone cell survived, population=%d", b.Population())
	}
}

func TestBirthOnExactlyThreeNeighbors(t *testing.T) {
	b := New(6, 6, EdgeClamp)
	// L tromino: (3,3) is dead with exactly 3 live neighbors.
	b.SetCell(2, 3, true)
	b.SetCell(2, 2, true)
	b.SetCell(3, 2, true)
	if n := b.NeighborCount(3, 3); n != 3 {
		t.Fatalf("neighbor count = %d, want 3", n)
	}
	b.Step()
	if !b.Alive(3, 3) {
		t.Fatal("cell with three neighbors was not born")
	}
}

func TestOvercrowdedCellDies(t *testing.T) {
	b := New(6, 6, EdgeClamp)
	b.SetCell(2, 2, true)
	b.SetCell(1, 1, true)
	b.SetCell(3, 1, true)
	b.SetCell(1, 3, true)
	b.SetCell(3, 3, true)
	if n := b.NeighborCount(2, 2); n != 4 {
		t.Fatalf("neighbor count = %d, want 4", n)
	}
	b.Step()
	if b.Alive(2, 2) {
		t.Fatal("cell with four neighbors survived")
	}
}

func TestWrapAcrossSeam(t *testing.T) {
	// Horizontal blinker straddling the vertical seam of a toroidal board.
	b := New(5, 5, EdgeWrap)
	b.SetCell(4, 2, true)
	b.SetCell(0, 2, true)
	b.SetCell(1, 2, true)

	b.Step()
	expectCells(t, b, map[[2]int]bool{
		{0, 1}: true,
		{0, 2}: true,
		{0, 3}: true,
	})
}

func TestBoundedEdgeTreatsOutsideAsDead(t *testing.T) {
	b := New(5, 5, EdgeClamp)
	b.SetCell(4, 2, true)
	b.SetCell(0, 2, true)
	b.SetCell(1, 2, true)

	b.Step()
	// The two cells near the left edge each had one in-board neighbor; the
	// seam does not connect them to (4,2), so everything dies.
	if b.Population() != 0 {
		t.Fatalf("bounded board leaked neighbors across the edge, population=%d", b.Population())
	}
}

func TestEdgePoliciesAgreeAwayFromBoundary(t *testing.T) {
	wrap := New(12, 12, EdgeWrap)
	clamp := New(12, 12, EdgeClamp)
	// R-pentomino well clear of every edge.
	cells := [][2]int{{5, 4}, {6, 4}, {4, 5}, {5, 5}, {5, 6}}
	for _, c := range cells {
		wrap.SetCell(c[0], c[1], true)
		clamp.SetCell(c[0], c[1], true)
	}

	for step := 0; step < 2; step++ {
		wrap.Step()
		clamp.Step()
		for y := 0; y < 12; y++ {
			for x := 0; x < 12; x++ {
				if wrap.Alive(x, y) != clamp.Alive(x, y) {
					t.Fatalf("step %d: policies disagree at (%d,%d)", step+1, x, y)
				}
			}
		}
	}
}

func TestResizePreservesOverlap(t *testing.T) {
	b := New(10, 10, EdgeWrap)
	b.SetCell(2, 2, true)
	b.SetCell(8, 8, true)

	b.Resize(5, 5)
	if size := b.Size(); size.W != 5 || size.H != 5 {
		t.Fatalf("size after shrink = %dx%d, want 5x5", size.W, size.H)
	}
	if !b.Alive(2, 2) {
		t.Fatal("in-range cell lost during shrink")
	}
	if b.Population() != 1 {
		t.Fatalf("population after shrink = %d, want 1", b.Population())
	}

	b.Resize(10, 10)
	if !b.Alive(2, 2) {
		t.Fatal("cell lost during grow")
	}
	if b.Alive(8, 8) {
		t.Fatal("discarded cell came back after grow")
	}
}

func TestClearResetsGeneration(t *testing.T) {
	b := New(5, 5, EdgeWrap)
	b.SetCell(1, 1, true)
	b.Step()
	b.Step()
	if b.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", b.Generation())
	}
	b.Clear()
	if b.Generation() != 0 {
		t.Fatalf("generation after clear = %d, want 0", b.Generation())
	}
	if b.Population() != 0 {
		t.Fatalf("population after clear = %d, want 0", b.Population())
	}
}

func TestOutOfRangeEditsIgnored(t *testing.T) {
	b := New(5, 5, EdgeClamp)
	b.SetCell(-1, 2, true)
	b.SetCell(2, 9, true)
	b.ToggleCell(7, 7)
	if b.Population() != 0 {
		t.Fatalf("out-of-range edit mutated the board, population=%d", b.Population())
	}
	if b.Alive(-3, 0) {
		t.Fatal("out-of-range read returned alive")
	}
}

func TestRegistryFactory(t *testing.T) {
	factory, ok := core.Boards()["dense"]
	if !ok {
		t.Fatal("dense board not registered")
	}
	board := factory(map[string]string{"width": "20", "height": "30", "edge": "bounded"})
	rs, ok := board.(core.Resizer)
	if !ok {
		t.Fatal("dense board does not expose Resizer")
	}
	if size := rs.Size(); size.W != 20 || size.H != 30 {
		t.Fatalf("factory size = %dx%d, want 20x30", size.W, size.H)
	}
	if board.Name() != "dense-bounded" {
		t.Fatalf("factory edge policy: name = %q", board.Name())
	}
}
