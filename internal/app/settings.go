package app

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Board and pacing limits enforced by the UI. The engines trust their
// callers; clamping happens here.
const (
	MinBoardSize = 10
	MaxBoardSize = 1000
	MinRate      = 0.1
	MaxRate      = 60.0
)

// Settings holds the tunables that are not worth a command-line flag each.
type Settings struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Rate           float64 `json:"rate"`
	Density        float64 `json:"density"`
	NoiseScale     float64 `json:"noise_scale"`
	NoiseThreshold float64 `json:"noise_threshold"`
	SoupRadius     int     `json:"soup_radius"`
}

// DefaultSettings returns sensible defaults.
func DefaultSettings() Settings {
	return Settings{
		Width:          100,
		Height:         100,
		Rate:           10,
		Density:        0.15,
		NoiseScale:     16,
		NoiseThreshold: 0.2,
		SoupRadius:     40,
	}
}

// LoadSettings reads a JSON settings file layered over the defaults. On error
// the defaults are returned alongside the wrapped error so the caller can
// fall back.
func LoadSettings(filename string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(filename)
	if err != nil {
		return s, errors.Wrapf(err, "[LoadSettings] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "[LoadSettings] failed to unmarshal data from file: %+v", filename)
	}

	return s, nil
}

// Clamped returns a copy with every field forced into its legal range.
func (s Settings) Clamped() Settings {
	s.Width = clampInt(s.Width, MinBoardSize, MaxBoardSize)
	s.Height = clampInt(s.Height, MinBoardSize, MaxBoardSize)
	if s.Rate < MinRate {
		s.Rate = MinRate
	}
	if s.Rate > MaxRate {
		s.Rate = MaxRate
	}
	if s.Density <= 0 || s.Density > 1 {
		s.Density = 0.15
	}
	if s.NoiseScale <= 0 {
		s.NoiseScale = 16
	}
	if s.SoupRadius <= 0 {
		s.SoupRadius = 40
	}
	return s
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
