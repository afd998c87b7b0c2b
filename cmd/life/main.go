//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"strconv"

	"lifelab/internal/app"
	"lifelab/internal/core"
	_ "lifelab/internal/sims/dense"
	_ "lifelab/internal/sims/sparse"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings := app.DefaultSettings()
	if cfg.Settings != "" {
		loaded, err := app.LoadSettings(cfg.Settings)
		if err != nil {
			log.Printf("using default settings: %v", err)
		}
		settings = loaded
	}
	settings = settings.Clamped()

	factory, ok := core.Boards()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown board %q", cfg.Sim)
	}
	board := factory(map[string]string{
		"width":  strconv.Itoa(settings.Width),
		"height": strconv.Itoa(settings.Height),
		"edge":   cfg.Edge,
	})

	game := app.New(board, cfg, settings)

	ebiten.SetWindowTitle("lifelab — " + board.Name())
	ebiten.SetWindowSize(app.BoardViewW+app.PanelW, app.BoardViewH)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
