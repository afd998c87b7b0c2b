package core

// Point is an integer cell coordinate.
type Point struct {
	X int
	Y int
}

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Rect is an inclusive cell rectangle with Min.X <= Max.X and Min.Y <= Max.Y
// once normalized.
type Rect struct {
	Min Point
	Max Point
}

// NewRect builds a rectangle from two arbitrary corners, swapping coordinates
// so that Min holds the smaller pair.
func NewRect(a, b Point) Rect {
	r := Rect{Min: a, Max: b}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Board is the minimal contract every life engine implements. Optional
// capabilities (resizing, clipboard, unbounded iteration) are discovered via
// type assertion against the interfaces below.
type Board interface {
	Name() string
	Step()
	Clear()
	Generation() int
	Population() int
}

// Resizer is implemented by fixed-size boards whose dimensions can change.
type Resizer interface {
	Size() Size
	Resize(w, h int)
}

// CellEditor is the pointer-editing surface shared by both board kinds.
type CellEditor interface {
	Alive(x, y int) bool
	SetCell(x, y int, alive bool)
	ToggleCell(x, y int)
}

// ClipboardOps is implemented by boards that support region copy/cut/paste.
type ClipboardOps interface {
	CopyRegion(r Rect) []Point
	CutRegion(r Rect) []Point
	PasteAt(x, y int, pattern []Point)
}

// DenseCells exposes row-major cell bytes for blit-style rendering.
type DenseCells interface {
	Size() Size
	Cells() []uint8
}

// LiveLister is implemented by unbounded boards; the visitor sees every live
// cell exactly once, in no particular order.
type LiveLister interface {
	EachLive(func(Point))
	Bounds() (Rect, bool)
}

// Factory constructs a Board using an optional configuration map.
type Factory func(cfg map[string]string) Board

var boards = map[string]Factory{}

// Register adds a board factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	boards[name] = f
}

// Boards exposes the registry of available board factories.
func Boards() map[string]Factory {
	return boards
}
