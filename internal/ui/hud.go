//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifelab/internal/core"
)

// Session is the surface the HUD drives: readable parameters plus setters.
type Session interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// Action is a HUD push button. Label is re-evaluated every frame so buttons
// like Run/Pause can relabel themselves.
type Action struct {
	Label func() string
	Do    func()
}

// HUD renders the control panel to the right of the board view and routes
// clicks back into the session.
type HUD struct {
	session Session
	actions []Action
	width   int
	title   string

	panel      *ebiten.Image
	lastHeight int

	controls    []hudControlState
	actionRects []image.Rectangle
	offsetX     int
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding = 12
	titleTop     = 24
	controlsTop  = 44
	lineHeight   = 36
	buttonSize   = 24
	buttonGap    = 6
	actionHeight = 26
	actionGap    = 8
)

// NewHUD constructs a HUD of the given pixel width for the session.
func NewHUD(session Session, actions []Action, width int, title string) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{session: session, actions: actions, width: width, title: title}
	controls := session.ParameterControls()
	h.controls = make([]hudControlState, len(controls))
	for i, ctrl := range controls {
		h.controls[i] = hudControlState{control: ctrl, value: "--"}
	}
	h.layout()
	return h
}

// Update refreshes control values from the session and handles clicks. The
// offset is the screen x where the panel begins.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	h.refreshValues()
	h.handleInput()
}

// Draw paints the panel anchored at offsetX with the given pixel height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.title, face, panelPadding, titleTop, color.RGBA{R: 230, G: 230, B: 240, A: 255})

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + lineHeight/2 + 4
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 180, G: 185, B: 195, A: 255})
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, color.White)
		h.drawButton(state.minusRect, "-", state.hasValue)
		h.drawButton(state.plusRect, "+", state.hasValue)
	}
	for i, rect := range h.actionRects {
		h.drawButton(rect, h.actions[i].Label(), true)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refreshValues() {
	snapshot := h.session.Parameters()
	byKey := map[string]core.Parameter{}
	for _, p := range snapshot.Params {
		byKey[p.Key] = p
	}
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := byKey[state.control.Key]
		if !ok {
			state.hasValue = false
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.intValue = parsed
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				state.hasValue = false
				state.value = "--"
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		default:
			state.hasValue = false
			state.value = "--"
		}
	}
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return
	}
	px := mx - h.offsetX
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			h.adjust(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			h.adjust(state, 1)
			return
		}
	}
	for i, rect := range h.actionRects {
		if pointInRect(px, my, rect) {
			h.actions[i].Do()
			return
		}
	}
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		step := int(math.Round(state.control.Step))
		if step <= 0 {
			step = 1
		}
		target := clampInt(state.intValue+direction*step, int(state.control.Min), int(state.control.Max))
		h.session.SetIntParameter(state.control.Key, target)
	case core.ParamTypeFloat:
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		target := state.floatValue + float64(direction)*step
		if target < state.control.Min {
			target = state.control.Min
		}
		if target > state.control.Max {
			target = state.control.Max
		}
		h.session.SetFloatParameter(state.control.Key, target)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	sub := h.panel.SubImage(rect).(*ebiten.Image)
	sub.Fill(bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
	actionsTop := controlsTop + len(h.controls)*lineHeight + actionGap
	h.actionRects = make([]image.Rectangle, len(h.actions))
	for i := range h.actions {
		top := actionsTop + i*(actionHeight+actionGap)
		h.actionRects[i] = image.Rect(panelPadding, top, h.width-panelPadding, top+actionHeight)
	}
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	if step < 0.1 {
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
