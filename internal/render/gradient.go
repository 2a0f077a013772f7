package render

import (
	"image/color"
	"sort"
)

// GradientPoint anchors a color at a noise value in [-1, 1].
type GradientPoint struct {
	Pos   float64
	Color color.RGBA
}

// ColorGradient maps noise values to colors by linear interpolation
// between anchor points. Values outside the anchored range take the
// nearest end color.
type ColorGradient struct {
	points []GradientPoint
}

// NewColorGradient builds a gradient from anchor points, sorting them
// by position.
func NewColorGradient(points ...GradientPoint) *ColorGradient {
	sorted := make([]GradientPoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })
	return &ColorGradient{points: sorted}
}

// Color resolves a noise value to a color.
func (g *ColorGradient) Color(v float64) color.RGBA {
	if len(g.points) == 0 {
		return color.RGBA{A: 0xff}
	}
	if v <= g.points[0].Pos {
		return g.points[0].Color
	}
	last := len(g.points) - 1
	if v >= g.points[last].Pos {
		return g.points[last].Color
	}
	for i := 1; i <= last; i++ {
		if v < g.points[i].Pos {
			lo, hi := g.points[i-1], g.points[i]
			t := (v - lo.Pos) / (hi.Pos - lo.Pos)
			return lerpColor(lo.Color, hi.Color, t)
		}
	}
	return g.points[last].Color
}

// TerrainGradient is a classic elevation palette: deep water through
// shores, grass, rock and snow.
func TerrainGradient() *ColorGradient {
	return NewColorGradient(
		GradientPoint{-1.00, color.RGBA{0, 0, 128, 255}},
		GradientPoint{-0.25, color.RGBA{0, 0, 255, 255}},
		GradientPoint{0.00, color.RGBA{0, 128, 255, 255}},
		GradientPoint{0.0625, color.RGBA{240, 240, 64, 255}},
		GradientPoint{0.125, color.RGBA{32, 160, 0, 255}},
		GradientPoint{0.75, color.RGBA{128, 128, 128, 255}},
		GradientPoint{1.00, color.RGBA{255, 255, 255, 255}},
	)
}

// RainbowGradient sweeps the hue circle from blue to red.
func RainbowGradient() *ColorGradient {
	return NewColorGradient(
		GradientPoint{-1.0, color.RGBA{0, 0, 255, 255}},
		GradientPoint{-0.5, color.RGBA{0, 255, 255, 255}},
		GradientPoint{0.0, color.RGBA{0, 255, 0, 255}},
		GradientPoint{0.5, color.RGBA{255, 255, 0, 255}},
		GradientPoint{1.0, color.RGBA{255, 0, 0, 255}},
	)
}
