package app

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"width": 200, "rate": 30.5, "density": 0.4}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Width != 200 {
		t.Fatalf("width = %d, want 200", s.Width)
	}
	if s.Rate != 30.5 {
		t.Fatalf("rate = %v, want 30.5", s.Rate)
	}
	if s.Density != 0.4 {
		t.Fatalf("density = %v, want 0.4", s.Density)
	}
	// Fields absent from the file keep their defaults.
	if s.Height != DefaultSettings().Height {
		t.Fatalf("height = %d, want default %d", s.Height, DefaultSettings().Height)
	}
}

func TestLoadSettingsMissingFileFallsBack(t *testing.T) {
	s, err := LoadSettings(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if s != DefaultSettings() {
		t.Fatalf("fallback settings = %+v, want defaults", s)
	}
}

func TestLoadSettingsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestSettingsClamped(t *testing.T) {
	s := Settings{Width: 5, Height: 5000, Rate: 500, Density: 2, NoiseScale: -1, SoupRadius: 0}.Clamped()
	if s.Width != MinBoardSize {
		t.Fatalf("width = %d, want %d", s.Width, MinBoardSize)
	}
	if s.Height != MaxBoardSize {
		t.Fatalf("height = %d, want %d", s.Height, MaxBoardSize)
	}
	if s.Rate != MaxRate {
		t.Fatalf("rate = %v, want %v", s.Rate, MaxRate)
	}
	if s.Density <= 0 || s.Density > 1 {
		t.Fatalf("density = %v, want a value in (0,1]", s.Density)
	}
	if s.NoiseScale <= 0 || s.SoupRadius <= 0 {
		t.Fatalf("noise scale/soup radius not repaired: %+v", s)
	}
}
