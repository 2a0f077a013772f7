package noise

import "fmt"

// Grid dimensions must stay below this bound so row-major indices fit
// comfortably in an int on every platform.
const maxGridSize = 32767

// Bounds is the sampling interval for one field axis. BuildField treats
// it as half-open: with n grid points the step is (Max-Min)/n, so Max
// itself is never sampled. This keeps adjacent fields tileable.
type Bounds struct {
	Min float64
	Max float64
}

func checkGridDimension(name string, v int) error {
	if v < 1 || v >= maxGridSize {
		return fmt.Errorf("noise: grid %s %d out of range [1, %d)", name, v, maxGridSize)
	}
	return nil
}

// NoiseField2D is a rectangular grid of sample coordinates and output
// values, both stored row-major with x varying fastest. Coordinates and
// values are parallel buffers of length width*height.
type NoiseField2D struct {
	width  int
	height int

	coords [][2]float64
	values []float64
}

// NewNoiseField2D allocates a zeroed field. Dimensions outside
// [1, 32767) are rejected, never clamped.
func NewNoiseField2D(width, height int) (*NoiseField2D, error) {
	if err := checkGridDimension("width", width); err != nil {
		return nil, err
	}
	if err := checkGridDimension("height", height); err != nil {
		return nil, err
	}
	n := width * height
	return &NoiseField2D{
		width:  width,
		height: height,
		coords: make([][2]float64, n),
		values: make([]float64, n),
	}, nil
}

// Size returns the grid dimensions.
func (f *NoiseField2D) Size() (width, height int) { return f.width, f.height }

// Coordinates exposes the backing coordinate buffer.
func (f *NoiseField2D) Coordinates() [][2]float64 { return f.coords }

// Values exposes the backing value buffer.
func (f *NoiseField2D) Values() []float64 { return f.values }

// SetValues replaces the value buffer contents.
func (f *NoiseField2D) SetValues(values []float64) {
	if len(values) != len(f.values) {
		panic(fmt.Sprintf("noise: value buffer length %d does not match field size %d", len(values), len(f.values)))
	}
	copy(f.values, values)
}

// BuildField fills the coordinate buffer with a uniform linear mapping
// of the grid onto the given per-axis bounds.
func (f *NoiseField2D) BuildField(x, y Bounds) {
	xStep := (x.Max - x.Min) / float64(f.width)
	yStep := (y.Max - y.Min) / float64(f.height)

	i := 0
	for yi := 0; yi < f.height; yi++ {
		cy := y.Min + float64(yi)*yStep
		for xi := 0; xi < f.width; xi++ {
			f.coords[i] = [2]float64{x.Min + float64(xi)*xStep, cy}
			i++
		}
	}
}

func (f *NoiseField2D) index(x, y int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		panic(fmt.Sprintf("noise: grid point (%d, %d) out of range for %dx%d field", x, y, f.width, f.height))
	}
	return x + f.width*y
}

// CoordAtPoint returns the sample coordinate at grid point (x, y).
func (f *NoiseField2D) CoordAtPoint(x, y int) [2]float64 { return f.coords[f.index(x, y)] }

// SetCoordAtPoint assigns the sample coordinate at grid point (x, y).
func (f *NoiseField2D) SetCoordAtPoint(x, y int, coord [2]float64) {
	f.coords[f.index(x, y)] = coord
}

// ValueAtPoint returns the output value at grid point (x, y).
func (f *NoiseField2D) ValueAtPoint(x, y int) float64 { return f.values[f.index(x, y)] }

// ValueAtIndex returns the output value at a row-major index.
func (f *NoiseField2D) ValueAtIndex(i int) float64 { return f.values[i] }

// Clone returns an independent deep copy of the field.
func (f *NoiseField2D) Clone() *NoiseField2D {
	out := &NoiseField2D{
		width:  f.width,
		height: f.height,
		coords: make([][2]float64, len(f.coords)),
		values: make([]float64, len(f.values)),
	}
	copy(out.coords, f.coords)
	copy(out.values, f.values)
	return out
}

// ScaleCoordinates returns a copy of the field with every coordinate
// multiplied by factor. Fractal octave stacking uses this to re-sample
// the same grid shape at a higher frequency.
func (f *NoiseField2D) ScaleCoordinates(factor float64) *NoiseField2D {
	out := f.Clone()
	for i := range out.coords {
		out.coords[i][0] *= factor
		out.coords[i][1] *= factor
	}
	return out
}

// NoiseField3D is the volumetric counterpart of NoiseField2D, indexed
// x + width*y + width*height*z.
type NoiseField3D struct {
	width  int
	height int
	depth  int

	coords [][3]float64
	values []float64
}

// NewNoiseField3D allocates a zeroed volumetric field with the same
// dimension constraints as NewNoiseField2D.
func NewNoiseField3D(width, height, depth int) (*NoiseField3D, error) {
	if err := checkGridDimension("width", width); err != nil {
		return nil, err
	}
	if err := checkGridDimension("height", height); err != nil {
		return nil, err
	}
	if err := checkGridDimension("depth", depth); err != nil {
		return nil, err
	}
	n := width * height * depth
	return &NoiseField3D{
		width:  width,
		height: height,
		depth:  depth,
		coords: make([][3]float64, n),
		values: make([]float64, n),
	}, nil
}

// Size returns the grid dimensions.
func (f *NoiseField3D) Size() (width, height, depth int) { return f.width, f.height, f.depth }

// Coordinates exposes the backing coordinate buffer.
func (f *NoiseField3D) Coordinates() [][3]float64 { return f.coords }

// Values exposes the backing value buffer.
func (f *NoiseField3D) Values() []float64 { return f.values }

// SetValues replaces the value buffer contents.
func (f *NoiseField3D) SetValues(values []float64) {
	if len(values) != len(f.values) {
		panic(fmt.Sprintf("noise: value buffer length %d does not match field size %d", len(values), len(f.values)))
	}
	copy(f.values, values)
}

// BuildField fills the coordinate buffer with a uniform linear mapping
// of the grid onto the given per-axis bounds.
func (f *NoiseField3D) BuildField(x, y, z Bounds) {
	xStep := (x.Max - x.Min) / float64(f.width)
	yStep := (y.Max - y.Min) / float64(f.height)
	zStep := (z.Max - z.Min) / float64(f.depth)

	i := 0
	for zi := 0; zi < f.depth; zi++ {
		cz := z.Min + float64(zi)*zStep
		for yi := 0; yi < f.height; yi++ {
			cy := y.Min + float64(yi)*yStep
			for xi := 0; xi < f.width; xi++ {
				f.coords[i] = [3]float64{x.Min + float64(xi)*xStep, cy, cz}
				i++
			}
		}
	}
}

func (f *NoiseField3D) index(x, y, z int) int {
	if x < 0 || x >= f.width || y < 0 || y >= f.height || z < 0 || z >= f.depth {
		panic(fmt.Sprintf("noise: grid point (%d, %d, %d) out of range for %dx%dx%d field", x, y, z, f.width, f.height, f.depth))
	}
	return x + f.width*(y+f.height*z)
}

// CoordAtPoint returns the sample coordinate at grid point (x, y, z).
func (f *NoiseField3D) CoordAtPoint(x, y, z int) [3]float64 { return f.coords[f.index(x, y, z)] }

// SetCoordAtPoint assigns the sample coordinate at grid point (x, y, z).
func (f *NoiseField3D) SetCoordAtPoint(x, y, z int, coord [3]float64) {
	f.coords[f.index(x, y, z)] = coord
}

// ValueAtPoint returns the output value at grid point (x, y, z).
func (f *NoiseField3D) ValueAtPoint(x, y, z int) float64 { return f.values[f.index(x, y, z)] }

// ValueAtIndex returns the output value at a row-major index.
func (f *NoiseField3D) ValueAtIndex(i int) float64 { return f.values[i] }

// Clone returns an independent deep copy of the field.
func (f *NoiseField3D) Clone() *NoiseField3D {
	out := &NoiseField3D{
		width:  f.width,
		height: f.height,
		depth:  f.depth,
		coords: make([][3]float64, len(f.coords)),
		values: make([]float64, len(f.values)),
	}
	copy(out.coords, f.coords)
	copy(out.values, f.values)
	return out
}

// ScaleCoordinates returns a copy of the field with every coordinate
// multiplied by factor.
func (f *NoiseField3D) ScaleCoordinates(factor float64) *NoiseField3D {
	out := f.Clone()
	for i := range out.coords {
		out.coords[i][0] *= factor
		out.coords[i][1] *= factor
		out.coords[i][2] *= factor
	}
	return out
}
