//go:build ebiten

package app

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifelab/internal/core"
	"lifelab/internal/render"
	"lifelab/internal/ui"
)

var (
	colorBackground = color.RGBA{R: 26, G: 26, B: 30, A: 255}
	colorCellOn     = color.RGBA{R: 50, G: 255, B: 50, A: 255}
	colorCellOff    = color.RGBA{R: 26, G: 26, B: 30, A: 255}
)

// Fixed logical layout: square board view with the HUD panel on the right.
const (
	BoardViewW = 800
	BoardViewH = 800
	PanelW     = 220
)

// Boards advertise optional seeding surfaces; the app discovers them the same
// way it discovers editing and clipboard support.
type randomizer interface {
	Randomize(seed int64, density float64)
}

type noiseFiller interface {
	NoiseFill(seed int64, scale, threshold float64)
}

type sprinkler interface {
	Sprinkle(seed int64, radius int, density float64)
}

// Game adapts a life board to the ebiten.Game interface: input mapping, edit
// gestures, run/step pacing and drawing.
type Game struct {
	board   core.Board
	editor  core.CellEditor
	dense   core.DenseCells
	resizer core.Resizer
	clip    core.ClipboardOps
	lister  core.LiveLister

	painter *render.GridPainter
	scatter render.ScatterPainter
	cam     *Camera
	pacer   *core.FixedStep
	hud     *ui.HUD
	overlay *ui.Overlay

	settings Settings
	seed     int64
	rate     float64
	running  bool
	stepOnce bool

	selecting bool
	selAnchor core.Point
	selRect   core.Rect
	hasSel    bool
	clipboard []core.Point

	painting   bool
	paintAlive bool
	lastMX     int
	lastMY     int
}

// New constructs a Game for the provided board.
func New(board core.Board, cfg *Config, settings Settings) *Game {
	g := &Game{
		board:    board,
		overlay:  ui.NewOverlay(),
		settings: settings,
		seed:     cfg.Seed,
		rate:     settings.Rate,
		pacer:    core.NewFixedStep(settings.Rate),
	}
	g.editor, _ = board.(core.CellEditor)
	g.dense, _ = board.(core.DenseCells)
	g.resizer, _ = board.(core.Resizer)
	g.clip, _ = board.(core.ClipboardOps)
	g.lister, _ = board.(core.LiveLister)

	if g.dense != nil {
		size := g.dense.Size()
		g.painter = render.NewGridPainter(size.W, size.H)
	}
	if g.lister != nil {
		g.cam = NewCamera(BoardViewW, BoardViewH, 8)
	}
	g.hud = ui.NewHUD(g, g.buildActions(), PanelW, board.Name()+" controls")
	return g
}

// Update handles per-frame input and advances the board when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.handleKeys()
	g.hud.Update(BoardViewW)
	g.handleMouse()

	if g.running && g.pacer.ShouldStep() {
		g.board.Step()
	}
	if g.stepOnce {
		g.board.Step()
		g.stepOnce = false
	}
	return nil
}

// Draw renders the board view, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	view := screen.SubImage(image.Rect(0, 0, BoardViewW, BoardViewH)).(*ebiten.Image)
	view.Fill(colorBackground)

	frame := ui.Frame{Status: g.status()}
	switch {
	case g.dense != nil:
		size := g.dense.Size()
		cs := g.denseCellSize()
		g.painter.Blit(view, g.dense.Cells(), colorCellOn, colorCellOff, int(float64(size.W)*cs), int(float64(size.H)*cs))
		frame.CellSize = cs
		if g.hasSel {
			sel := g.selRect
			frame.Selection = &sel
		}
	case g.lister != nil:
		g.scatter.Scatter(view, g.lister, g.cam.WorldToScreen, g.cam.CellSize, colorCellOn)
		frame.CellSize = g.cam.CellSize
		frame.OriginX, frame.OriginY = g.cam.WorldToScreen(0, 0)
	}
	g.overlay.Draw(view, frame)
	g.hud.Draw(screen, BoardViewW, BoardViewH)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return BoardViewW + PanelW, BoardViewH
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggleRun()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.board.Clear()
		g.hasSel = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.soup()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.noiseSoup()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.fitView()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.cutSelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		mx, my := ebiten.CursorPosition()
		if x, y, ok := g.cellAt(mx, my); ok {
			g.paste(x, y)
		}
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	inBoard := mx >= 0 && mx < BoardViewW && my >= 0 && my < BoardViewH

	// Left button paints; Shift held turns the brush into an eraser.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && inBoard {
		g.painting = true
		g.paintAlive = !ebiten.IsKeyPressed(ebiten.KeyShiftLeft) && !ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	}
	if g.painting && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if x, y, ok := g.cellAt(mx, my); ok && g.editor != nil {
			g.editor.SetCell(x, y, g.paintAlive)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.painting = false
	}

	// Right button: selection gesture on dense boards, camera pan on sparse.
	switch {
	case g.clip != nil:
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && inBoard {
			if x, y, ok := g.cellAt(mx, my); ok {
				g.selecting = true
				g.selAnchor = core.Point{X: x, Y: y}
				g.selRect = core.NewRect(g.selAnchor, g.selAnchor)
				g.hasSel = true
			}
		}
		if g.selecting && ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			if x, y, ok := g.cellAt(mx, my); ok {
				g.selRect = core.NewRect(g.selAnchor, core.Point{X: x, Y: y})
			}
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
			g.selecting = false
		}
	case g.cam != nil:
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			g.cam.Pan(float64(mx-g.lastMX), float64(my-g.lastMY))
		}
		if _, wheelY := ebiten.Wheel(); wheelY != 0 && inBoard {
			g.cam.ZoomAt(float64(mx), float64(my), math.Pow(1.1, wheelY))
		}
	}
	g.lastMX, g.lastMY = mx, my
}

func (g *Game) toggleRun() {
	g.running = !g.running
	if g.running {
		// Drop time accumulated while idle so resuming does not burst.
		g.pacer.Reset()
	}
}

// denseCellSize returns the board view pixels per cell, fitting the whole
// grid into the square view.
func (g *Game) denseCellSize() float64 {
	size := g.dense.Size()
	longest := size.W
	if size.H > longest {
		longest = size.H
	}
	if longest <= 0 {
		return 1
	}
	return float64(BoardViewW) / float64(longest)
}

// cellAt maps a screen position inside the board view to cell coordinates.
func (g *Game) cellAt(mx, my int) (int, int, bool) {
	if mx < 0 || mx >= BoardViewW || my < 0 || my >= BoardViewH {
		return 0, 0, false
	}
	if g.cam != nil {
		x, y := g.cam.ScreenToCell(float64(mx), float64(my))
		return x, y, true
	}
	cs := g.denseCellSize()
	x := int(float64(mx) / cs)
	y := int(float64(my) / cs)
	size := g.dense.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return 0, 0, false
	}
	return x, y, true
}

func (g *Game) copySelection() {
	if g.clip == nil || !g.hasSel {
		return
	}
	g.clipboard = g.clip.CopyRegion(g.selRect)
}

func (g *Game) cutSelection() {
	if g.clip == nil || !g.hasSel {
		return
	}
	g.clipboard = g.clip.CutRegion(g.selRect)
}

func (g *Game) paste(x, y int) {
	if g.clip == nil || len(g.clipboard) == 0 {
		return
	}
	g.clip.PasteAt(x, y, g.clipboard)
}

func (g *Game) soup() {
	g.seed++
	if r, ok := g.board.(randomizer); ok {
		r.Randomize(g.seed, g.settings.Density)
		return
	}
	if s, ok := g.board.(sprinkler); ok {
		g.board.Clear()
		s.Sprinkle(g.seed, g.settings.SoupRadius, g.settings.Density)
	}
}

func (g *Game) noiseSoup() {
	if n, ok := g.board.(noiseFiller); ok {
		g.seed++
		n.NoiseFill(g.seed, g.settings.NoiseScale, g.settings.NoiseThreshold)
	}
}

func (g *Game) fitView() {
	if g.lister == nil || g.cam == nil {
		return
	}
	bounds, ok := g.lister.Bounds()
	if !ok {
		g.cam.CellSize = 8
		g.cam.CenterOn(0, 0, BoardViewW, BoardViewH)
		return
	}
	cx := float64(bounds.Min.X+bounds.Max.X+1) / 2
	cy := float64(bounds.Min.Y+bounds.Max.Y+1) / 2
	g.cam.CenterOn(cx, cy, BoardViewW, BoardViewH)
}

func (g *Game) status() string {
	state := "idle"
	if g.running {
		state = "running"
	}
	return fmt.Sprintf("gen %d | pop %d | %.1f gen/s | %s", g.board.Generation(), g.board.Population(), g.rate, state)
}

func (g *Game) buildActions() []ui.Action {
	actions := []ui.Action{
		{Label: g.runLabel, Do: g.toggleRun},
		{Label: label("Step"), Do: func() { g.stepOnce = true }},
		{Label: label("Clear"), Do: func() { g.board.Clear(); g.hasSel = false }},
		{Label: label("Soup"), Do: g.soup},
	}
	if _, ok := g.board.(noiseFiller); ok {
		actions = append(actions, ui.Action{Label: label("Noise soup"), Do: g.noiseSoup})
	}
	if g.clip != nil {
		actions = append(actions,
			ui.Action{Label: label("Copy"), Do: g.copySelection},
			ui.Action{Label: label("Cut"), Do: g.cutSelection},
			ui.Action{Label: label("Paste"), Do: func() {
				if g.hasSel {
					g.paste(g.selRect.Min.X, g.selRect.Min.Y)
				}
			}},
		)
	}
	if g.lister != nil {
		actions = append(actions, ui.Action{Label: label("Fit view"), Do: g.fitView})
	}
	return actions
}

func (g *Game) runLabel() string {
	if g.running {
		return "Pause"
	}
	return "Run"
}

func label(s string) func() string {
	return func() string { return s }
}
