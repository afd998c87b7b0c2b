// Package dense implements a fixed-size Game of Life board with a
// configurable edge policy and double-buffered synchronous updates.
package dense

import (
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"

	"lifelab/internal/core"
)

// EdgePolicy selects how neighbor lookups treat the board boundary.
type EdgePolicy int

const (
	// EdgeWrap folds coordinates modulo the board size, making the board
	// toroidal.
	EdgeWrap EdgePolicy = iota
	// EdgeClamp treats off-board neighbors as permanently dead.
	EdgeClamp
)

// Board is a W×H binary life board. All reads during Step observe only the
// previous generation; the scratch buffer is swapped in after the full pass.
type Board struct {
	cur  *core.ByteGrid
	nxt  *core.ByteGrid
	edge EdgePolicy
	rule core.Rule
	gen  int
}

// New returns a board with the provided dimensions and edge policy.
func New(w, h int, edge EdgePolicy) *Board {
	return &Board{
		cur:  core.NewByteGrid(w, h),
		nxt:  core.NewByteGrid(w, h),
		edge: edge,
		rule: core.StandardLife(),
	}
}

// Name returns the board identifier.
func (b *Board) Name() string {
	if b.edge == EdgeClamp {
		return "dense-bounded"
	}
	return "dense-wrap"
}

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cur.W, H: b.cur.H} }

// Cells exposes the current generation's row-major cell bytes.
func (b *Board) Cells() []uint8 { return b.cur.Cells() }

// Edge returns the active edge policy.
func (b *Board) Edge() EdgePolicy { return b.edge }

// Generation returns the number of completed steps since the last clear.
func (b *Board) Generation() int { return b.gen }

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cur.Cells() {
		n += int(c)
	}
	return n
}

// Alive reports whether the cell at (x, y) is live. Out-of-range coordinates
// read as dead.
func (b *Board) Alive(x, y int) bool {
	if !b.cur.In(x, y) {
		return false
	}
	return b.cur.Cells()[b.cur.Index(x, y)] != 0
}

// SetCell sets the cell at (x, y); out-of-range coordinates are ignored.
func (b *Board) SetCell(x, y int, alive bool) {
	if !b.cur.In(x, y) {
		return
	}
	v := uint8(0)
	if alive {
		v = 1
	}
	b.cur.Cells()[b.cur.Index(x, y)] = v
}

// ToggleCell flips the cell at (x, y); out-of-range coordinates are ignored.
func (b *Board) ToggleCell(x, y int) {
	if !b.cur.In(x, y) {
		return
	}
	b.cur.Cells()[b.cur.Index(x, y)] ^= 1
}

// Clear kills every cell and rewinds the generation counter. Dimensions are
// unchanged.
func (b *Board) Clear() {
	b.cur.Clear()
	b.nxt.Clear()
	b.gen = 0
}

// Resize reallocates both buffers to the new dimensions. Cells inside the
// overlap of the old and new bounds keep their state; the rest start dead.
func (b *Board) Resize(w, h int) {
	if w == b.cur.W && h == b.cur.H {
		return
	}
	cur := core.NewByteGrid(w, h)
	cur.CopyOverlap(b.cur)
	b.cur = cur
	b.nxt = core.NewByteGrid(w, h)
}

// NeighborCount sums the Moore neighborhood of (x, y) under the board's edge
// policy.
func (b *Board) NeighborCount(x, y int) int {
	cells := b.cur.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if b.edge == EdgeWrap {
				nx, ny = b.cur.Wrap(nx, ny)
			} else if !b.cur.In(nx, ny) {
				continue
			}
			n += int(cells[b.cur.Index(nx, ny)])
		}
	}
	return n
}

// Step advances the board by one generation. The pass is split into row bands
// run concurrently, but every band reads only the current buffer; the swap
// happens after all bands have joined, so callers see a fully synchronous
// update.
func (b *Board) Step() {
	w, h := b.cur.W, b.cur.H
	src := b.cur.Cells()
	dst := b.nxt.Cells()

	var eg errgroup.Group
	workers := runtime.NumCPU()
	band := (h + workers - 1) / workers
	for i := 0; i < workers; i++ {
		start := i * band
		if start >= h {
			break
		}
		end := start + band
		if end > h {
			end = h
		}
		eg.Go(func() error {
			for y := start; y < end; y++ {
				for x := 0; x < w; x++ {
					idx := y*w + x
					dst[idx] = 0
					if b.rule.Next(src[idx] != 0, b.NeighborCount(x, y)) {
						dst[idx] = 1
					}
				}
			}
			return nil
		})
	}
	// Workers never return errors; Wait is only the join point.
	_ = eg.Wait()

	b.cur, b.nxt = b.nxt, b.cur
	b.gen++
}

func init() {
	core.Register("dense", func(cfg map[string]string) core.Board {
		w, h := 100, 100
		if v, err := strconv.Atoi(cfg["width"]); err == nil && v > 0 {
			w = v
		}
		if v, err := strconv.Atoi(cfg["height"]); err == nil && v > 0 {
			h = v
		}
		edge := EdgeWrap
		if cfg["edge"] == "bounded" {
			edge = EdgeClamp
		}
		return New(w, h, edge)
	})
}
