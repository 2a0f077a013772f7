// Package mapbuilder turns noise sources into flat raster maps by
// projecting a 2D output grid onto a plane, a cylinder or a sphere and
// sampling the source over the projected coordinates.
package mapbuilder

import (
	"fmt"
	"math"

	"noisefield/pkg/noise"
)

// NoiseMap is a finished raster of noise values, stored row-major with
// x varying fastest.
type NoiseMap struct {
	width  int
	height int
	values []float64
}

// Size returns the raster dimensions.
func (m *NoiseMap) Size() (width, height int) { return m.width, m.height }

// Values exposes the backing value buffer.
func (m *NoiseMap) Values() []float64 { return m.values }

// At returns the value at raster position (x, y).
func (m *NoiseMap) At(x, y int) float64 { return m.values[x+m.width*y] }

// MinMax returns the smallest and largest value in the map.
func (m *NoiseMap) MinMax() (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range m.values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

func checkBounds(name string, b noise.Bounds) error {
	if b.Min >= b.Max {
		return fmt.Errorf("mapbuilder: %s bounds [%v, %v) are empty", name, b.Min, b.Max)
	}
	return nil
}

// PlaneBuilder samples a source directly over an axis-aligned rectangle
// of the xy plane.
type PlaneBuilder struct {
	Source  noise.FieldFn2D
	XBounds noise.Bounds
	YBounds noise.Bounds
}

// NewPlaneBuilder returns a plane builder sampling source over
// [-1, 1) x [-1, 1).
func NewPlaneBuilder(source noise.FieldFn2D) PlaneBuilder {
	return PlaneBuilder{
		Source:  source,
		XBounds: noise.Bounds{Min: -1, Max: 1},
		YBounds: noise.Bounds{Min: -1, Max: 1},
	}
}

// Build samples the source over a width x height grid.
func (b PlaneBuilder) Build(width, height int) (*NoiseMap, error) {
	if err := checkBounds("x", b.XBounds); err != nil {
		return nil, err
	}
	if err := checkBounds("y", b.YBounds); err != nil {
		return nil, err
	}

	field, err := noise.NewNoiseField2D(width, height)
	if err != nil {
		return nil, err
	}
	field.BuildField(b.XBounds, b.YBounds)

	out := b.Source.ProcessField2D(field)
	m := &NoiseMap{width: width, height: height, values: make([]float64, width*height)}
	copy(m.values, out.Values())
	return m, nil
}

// CylinderBuilder wraps the raster around a unit-radius cylinder: x
// maps to the angle around the axis and y to the height along it, so
// the left and right map edges tile seamlessly when the angle bounds
// span a full turn.
type CylinderBuilder struct {
	Source noise.FieldFn3D
	// AngleBounds is in degrees.
	AngleBounds  noise.Bounds
	HeightBounds noise.Bounds
}

// NewCylinderBuilder returns a cylinder builder covering the full turn
// and heights [-1, 1).
func NewCylinderBuilder(source noise.FieldFn3D) CylinderBuilder {
	return CylinderBuilder{
		Source:       source,
		AngleBounds:  noise.Bounds{Min: 0, Max: 360},
		HeightBounds: noise.Bounds{Min: -1, Max: 1},
	}
}

// Build samples the source over a width x height grid.
func (b CylinderBuilder) Build(width, height int) (*NoiseMap, error) {
	if err := checkBounds("angle", b.AngleBounds); err != nil {
		return nil, err
	}
	if err := checkBounds("height", b.HeightBounds); err != nil {
		return nil, err
	}

	field, err := noise.NewNoiseField3D(width, height, 1)
	if err != nil {
		return nil, err
	}

	angleStep := (b.AngleBounds.Max - b.AngleBounds.Min) / float64(width)
	heightStep := (b.HeightBounds.Max - b.HeightBounds.Min) / float64(height)
	for yi := 0; yi < height; yi++ {
		h := b.HeightBounds.Min + float64(yi)*heightStep
		for xi := 0; xi < width; xi++ {
			angle := (b.AngleBounds.Min + float64(xi)*angleStep) * math.Pi / 180.0
			field.SetCoordAtPoint(xi, yi, 0, [3]float64{math.Cos(angle), h, math.Sin(angle)})
		}
	}

	out := b.Source.ProcessField3D(field)
	m := &NoiseMap{width: width, height: height, values: make([]float64, width*height)}
	copy(m.values, out.Values())
	return m, nil
}

// SphereBuilder maps the raster onto a unit sphere as an
// equirectangular projection: x is longitude, y is latitude, both in
// degrees.
type SphereBuilder struct {
	Source    noise.FieldFn3D
	LonBounds noise.Bounds
	LatBounds noise.Bounds
}

// NewSphereBuilder returns a sphere builder covering the whole sphere.
func NewSphereBuilder(source noise.FieldFn3D) SphereBuilder {
	return SphereBuilder{
		Source:    source,
		LonBounds: noise.Bounds{Min: -180, Max: 180},
		LatBounds: noise.Bounds{Min: -90, Max: 90},
	}
}

// latLonToXYZ projects a latitude/longitude pair (degrees) onto the
// unit sphere.
func latLonToXYZ(lat, lon float64) [3]float64 {
	latRad := lat * math.Pi / 180.0
	lonRad := lon * math.Pi / 180.0
	r := math.Cos(latRad)
	return [3]float64{r * math.Cos(lonRad), math.Sin(latRad), r * math.Sin(lonRad)}
}

// Build samples the source over a width x height grid.
func (b SphereBuilder) Build(width, height int) (*NoiseMap, error) {
	if err := checkBounds("longitude", b.LonBounds); err != nil {
		return nil, err
	}
	if err := checkBounds("latitude", b.LatBounds); err != nil {
		return nil, err
	}

	field, err := noise.NewNoiseField3D(width, height, 1)
	if err != nil {
		return nil, err
	}

	lonStep := (b.LonBounds.Max - b.LonBounds.Min) / float64(width)
	latStep := (b.LatBounds.Max - b.LatBounds.Min) / float64(height)
	for yi := 0; yi < height; yi++ {
		lat := b.LatBounds.Min + float64(yi)*latStep
		for xi := 0; xi < width; xi++ {
			lon := b.LonBounds.Min + float64(xi)*lonStep
			field.SetCoordAtPoint(xi, yi, 0, latLonToXYZ(lat, lon))
		}
	}

	out := b.Source.ProcessField3D(field)
	m := &NoiseMap{width: width, height: height, values: make([]float64, width*height)}
	copy(m.values, out.Values())
	return m, nil
}
