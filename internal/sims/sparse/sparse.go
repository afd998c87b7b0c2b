// Package sparse implements an unbounded Game of Life board backed by a hash
// set of live coordinates.
package sparse

import (
	"lifelab/internal/core"
)

// World is an unbounded life board. Absence from the live set means dead;
// there are no bounds checks anywhere.
type World struct {
	live map[core.Point]struct{}
	rule core.Rule
	gen  int
}

// New returns an empty world.
func New() *World {
	return &World{
		live: make(map[core.Point]struct{}),
		rule: core.StandardLife(),
	}
}

// Name returns the board identifier.
func (w *World) Name() string { return "sparse" }

// Generation returns the number of completed steps since the last clear.
func (w *World) Generation() int { return w.gen }

// Population returns the number of live cells.
func (w *World) Population() int { return len(w.live) }

// Alive reports whether the cell at (x, y) is live.
func (w *World) Alive(x, y int) bool {
	_, ok := w.live[core.Point{X: x, Y: y}]
	return ok
}

// SetCell sets or clears the cell at (x, y).
func (w *World) SetCell(x, y int, alive bool) {
	p := core.Point{X: x, Y: y}
	if alive {
		w.live[p] = struct{}{}
	} else {
		delete(w.live, p)
	}
}

// ToggleCell flips the cell at (x, y).
func (w *World) ToggleCell(x, y int) {
	p := core.Point{X: x, Y: y}
	if _, ok := w.live[p]; ok {
		delete(w.live, p)
	} else {
		w.live[p] = struct{}{}
	}
}

// Clear empties the live set and rewinds the generation counter.
func (w *World) Clear() {
	w.live = make(map[core.Point]struct{})
	w.gen = 0
}

// EachLive visits every live cell exactly once, in no particular order.
func (w *World) EachLive(fn func(core.Point)) {
	for p := range w.live {
		fn(p)
	}
}

// Bounds returns the bounding box of the live set, or false when the world is
// empty.
func (w *World) Bounds() (core.Rect, bool) {
	var r core.Rect
	first := true
	for p := range w.live {
		if first {
			r = core.Rect{Min: p, Max: p}
			first = false
			continue
		}
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r, !first
}

// NeighborCounts maps every cell adjacent to at least one live cell to its
// live-neighbor count. Cells with zero live neighbors never enter the map.
func (w *World) NeighborCounts() map[core.Point]int {
	counts := make(map[core.Point]int, len(w.live)*3)
	for p := range w.live {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				counts[core.Point{X: p.X + dx, Y: p.Y + dy}]++
			}
		}
	}
	return counts
}

// Step advances the world by one generation. Only neighbors of live cells are
// candidates; a live cell that appears in no candidate's count has zero
// neighbors and dies by omission. The live set is replaced wholesale so no
// generation mixes old and new state.
func (w *World) Step() {
	counts := w.NeighborCounts()
	next := make(map[core.Point]struct{}, len(w.live))
	for p, n := range counts {
		_, alive := w.live[p]
		if w.rule.Next(alive, n) {
			next[p] = struct{}{}
		}
	}
	w.live = next
	w.gen++
}

// Sprinkle seeds a random soup inside a disc of the given radius around the
// origin. Deterministic for a fixed seed.
func (w *World) Sprinkle(seed int64, radius int, density float64) {
	if radius <= 0 {
		return
	}
	rng := core.NewRNG(seed)
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y > radius*radius {
				continue
			}
			if rng.Chance(density) {
				w.live[core.Point{X: x, Y: y}] = struct{}{}
			}
		}
	}
}

func init() {
	core.Register("sparse", func(cfg map[string]string) core.Board {
		return New()
	})
}
