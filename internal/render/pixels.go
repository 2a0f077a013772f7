// Package render rasterizes noise maps into images, either as plain
// grayscale or through a color gradient keyed on the noise value.
package render

import (
	"image"
	"image/color"

	"noisefield/internal/mapbuilder"
)

// clampUnit folds a noise value into [-1, 1] before color mapping.
func clampUnit(v float64) float64 {
	if v < -1.0 {
		return -1.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// fillGrayRGBA writes one grayscale pixel per noise value into buf,
// mapping [-1, 1] to [0, 255].
func fillGrayRGBA(buf []byte, values []float64) {
	for i, v := range values {
		g := uint8((clampUnit(v) + 1.0) * 0.5 * 255.0)
		base := i * 4
		buf[base+0] = g
		buf[base+1] = g
		buf[base+2] = g
		buf[base+3] = 0xff
	}
}

// fillGradientRGBA writes one gradient-mapped pixel per noise value
// into buf.
func fillGradientRGBA(buf []byte, values []float64, gradient *ColorGradient) {
	for i, v := range values {
		col := gradient.Color(clampUnit(v))
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// Grayscale renders a noise map as a grayscale image.
func Grayscale(m *mapbuilder.NoiseMap) *image.RGBA {
	w, h := m.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillGrayRGBA(img.Pix, m.Values())
	return img
}

// WithGradient renders a noise map through a color gradient.
func WithGradient(m *mapbuilder.NoiseMap, gradient *ColorGradient) *image.RGBA {
	w, h := m.Size()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillGradientRGBA(img.Pix, m.Values(), gradient)
	return img
}

// lerpColor blends two colors channel-wise.
func lerpColor(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + t*(float64(y)-float64(x)))
	}
	return color.RGBA{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}
