//go:build ebiten

// Command noiseview opens an interactive window for exploring noise
// generators, projections and color gradients.
package main

import (
	"errors"
	"flag"
	"log"

	"noisefield/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	viewer := app.NewViewer(cfg)

	ebiten.SetWindowTitle("noisefield — " + cfg.Generator)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
