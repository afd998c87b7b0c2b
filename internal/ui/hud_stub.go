//go:build !ebiten

package ui

import "lifelab/internal/core"

// Session mirrors the GUI build's HUD surface.
type Session interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.FloatParameterSetter
}

// Action is a HUD push button.
type Action struct {
	Label func() string
	Do    func()
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Session, []Action, int, string) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
