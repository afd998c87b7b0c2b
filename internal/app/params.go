//go:build ebiten

package app

import (
	"strconv"

	"lifelab/internal/core"
)

// ParameterControls lists the HUD-adjustable tunables for this session.
// Resizable boards expose their dimensions; every board exposes the rate.
func (g *Game) ParameterControls() []core.ParameterControl {
	var controls []core.ParameterControl
	if g.resizer != nil {
		controls = append(controls,
			core.ParameterControl{Key: "width", Label: "Width", Type: core.ParamTypeInt, Step: 10, Min: MinBoardSize, Max: MaxBoardSize},
			core.ParameterControl{Key: "height", Label: "Height", Type: core.ParamTypeInt, Step: 10, Min: MinBoardSize, Max: MaxBoardSize},
		)
	}
	controls = append(controls,
		core.ParameterControl{Key: "rate", Label: "Speed (gen/s)", Type: core.ParamTypeFloat, Step: 1, Min: MinRate, Max: MaxRate},
	)
	return controls
}

// Parameters reports the current parameter values.
func (g *Game) Parameters() core.ParameterSnapshot {
	var params []core.Parameter
	if g.resizer != nil {
		size := g.resizer.Size()
		params = append(params,
			core.Parameter{Key: "width", Value: strconv.Itoa(size.W)},
			core.Parameter{Key: "height", Value: strconv.Itoa(size.H)},
		)
	}
	params = append(params, core.Parameter{Key: "rate", Value: strconv.FormatFloat(g.rate, 'f', 2, 64)})
	return core.ParameterSnapshot{Params: params}
}

// SetIntParameter applies a HUD adjustment to an integer parameter.
func (g *Game) SetIntParameter(key string, value int) bool {
	if g.resizer == nil {
		return false
	}
	value = clampInt(value, MinBoardSize, MaxBoardSize)
	size := g.resizer.Size()
	switch key {
	case "width":
		g.resizer.Resize(value, size.H)
	case "height":
		g.resizer.Resize(size.W, value)
	default:
		return false
	}
	size = g.resizer.Size()
	if g.painter != nil {
		g.painter.Resize(size.W, size.H)
	}
	g.hasSel = false
	return true
}

// SetFloatParameter applies a HUD adjustment to a float parameter.
func (g *Game) SetFloatParameter(key string, value float64) bool {
	if key != "rate" {
		return false
	}
	if value < MinRate {
		value = MinRate
	}
	if value > MaxRate {
		value = MaxRate
	}
	g.rate = value
	g.pacer.SetRate(value)
	return true
}
