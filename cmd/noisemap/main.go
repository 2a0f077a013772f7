// Command noisemap renders a noise map to a PNG file without a GUI.
//
//	noisemap -gen ridged -proj sphere -seed 7 -gradient terrain -o world.png
package main

import (
	"flag"
	"log"

	"noisefield/internal/app"
	"noisefield/internal/render"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	out := flag.String("o", "noise.png", "output PNG path")
	flag.Parse()

	m, err := cfg.BuildMap()
	if err != nil {
		log.Fatal(err)
	}

	img, err := cfg.Render(m)
	if err != nil {
		log.Fatal(err)
	}

	if err := render.WritePNG(*out, img); err != nil {
		log.Fatal(err)
	}

	min, max := m.MinMax()
	log.Printf("wrote %s (%dx%d, %s/%s, values %.3f..%.3f)", *out, cfg.Width, cfg.Height, cfg.Generator, cfg.Projection, min, max)
}
