// Package app wires noise sources, projections and renderers together
// behind a flag-bindable configuration, shared by the headless and GUI
// front ends.
package app

import (
	"flag"
	"fmt"
	"image"

	"noisefield/internal/mapbuilder"
	"noisefield/internal/render"
	"noisefield/pkg/noise"
)

// GeneratorNames lists the selectable generators in GUI cycle order.
var GeneratorNames = []string{
	"perlin", "opensimplex", "ridged", "fbm", "billow", "turbulence",
	"cylinders", "checkerboard",
}

// Config selects what to generate and how to draw it.
type Config struct {
	Generator  string
	Projection string
	Gradient   string
	Seed       uint
	Width      int
	Height     int
	Octaves    int
	Extent     float64
}

// NewConfig returns the default configuration: seeded Perlin on a
// plane, rendered grayscale.
func NewConfig() Config {
	return Config{
		Generator:  "perlin",
		Projection: "plane",
		Gradient:   "gray",
		Seed:       uint(noise.DefaultSeed),
		Width:      512,
		Height:     512,
		Octaves:    6,
		Extent:     4.0,
	}
}

// Bind registers the config's fields on a flag set.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Generator, "gen", c.Generator, "noise generator (perlin|opensimplex|ridged|fbm|billow|turbulence|cylinders|checkerboard)")
	fs.StringVar(&c.Projection, "proj", c.Projection, "projection (plane|cylinder|sphere)")
	fs.StringVar(&c.Gradient, "gradient", c.Gradient, "color mapping (gray|terrain|rainbow)")
	fs.UintVar(&c.Seed, "seed", c.Seed, "generator seed")
	fs.IntVar(&c.Width, "width", c.Width, "output width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "output height in pixels")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "octave count for fractal generators")
	fs.Float64Var(&c.Extent, "extent", c.Extent, "half-width of the sampled plane region")
}

// Source constructs the configured noise source.
func (c Config) Source() (noise.FieldFn, error) {
	seed := uint32(c.Seed)
	switch c.Generator {
	case "perlin":
		return noise.NewPerlinSeed(seed), nil
	case "opensimplex":
		return noise.NewOpenSimplexSeed(seed), nil
	case "ridged":
		return noise.NewRidgedMultiSeed(seed).SetOctaves(c.Octaves), nil
	case "fbm":
		return noise.NewFbmSeed(seed).SetOctaves(c.Octaves), nil
	case "billow":
		return noise.NewBillowSeed(seed).SetOctaves(c.Octaves), nil
	case "turbulence":
		return noise.NewTurbulenceSeed(noise.NewPerlinSeed(seed), seed+100), nil
	case "cylinders":
		return noise.NewCylinders(), nil
	case "checkerboard":
		return noise.Checkerboard{}, nil
	}
	return nil, fmt.Errorf("unknown generator %q", c.Generator)
}

// BuildMap samples the configured source through the configured
// projection.
func (c Config) BuildMap() (*mapbuilder.NoiseMap, error) {
	source, err := c.Source()
	if err != nil {
		return nil, err
	}

	switch c.Projection {
	case "plane":
		b := mapbuilder.NewPlaneBuilder(source)
		b.XBounds = noise.Bounds{Min: -c.Extent, Max: c.Extent}
		b.YBounds = noise.Bounds{Min: -c.Extent, Max: c.Extent}
		return b.Build(c.Width, c.Height)
	case "cylinder":
		b := mapbuilder.NewCylinderBuilder(source)
		b.HeightBounds = noise.Bounds{Min: -c.Extent, Max: c.Extent}
		return b.Build(c.Width, c.Height)
	case "sphere":
		return mapbuilder.NewSphereBuilder(source).Build(c.Width, c.Height)
	}
	return nil, fmt.Errorf("unknown projection %q", c.Projection)
}

// Render rasterizes a built map with the configured color mapping.
func (c Config) Render(m *mapbuilder.NoiseMap) (*image.RGBA, error) {
	switch c.Gradient {
	case "gray":
		return render.Grayscale(m), nil
	case "terrain":
		return render.WithGradient(m, render.TerrainGradient()), nil
	case "rainbow":
		return render.WithGradient(m, render.RainbowGradient()), nil
	}
	return nil, fmt.Errorf("unknown gradient %q", c.Gradient)
}
