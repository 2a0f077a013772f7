package noise

import "math"

// Constant outputs the same value at every point. Mostly useful as an
// operand for combiners and modifiers, and in tests.
type Constant struct {
	Value float64
}

// NewConstant returns a generator that always outputs value.
func NewConstant(value float64) Constant {
	return Constant{Value: value}
}

// Eval2 returns the constant regardless of point.
func (c Constant) Eval2([2]float64) float64 { return c.Value }

// Eval3 returns the constant regardless of point.
func (c Constant) Eval3([3]float64) float64 { return c.Value }

// Eval4 returns the constant regardless of point.
func (c Constant) Eval4([4]float64) float64 { return c.Value }

// ProcessField2D fills a copy of field with the constant.
func (c Constant) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return evalField2D(field, c.Eval2)
}

// ProcessField3D fills a copy of field with the constant.
func (c Constant) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return evalField3D(field, c.Eval3)
}

// Cylinders outputs concentric cylinders around the z axis: the value
// rises from -1 at the ring midpoints to 1 on each unit-radius shell,
// based on the x/y distance from the axis.
type Cylinders struct {
	// Frequency scales the input before the radial distance is taken,
	// packing the shells closer together.
	Frequency float64
}

// NewCylinders returns a Cylinders generator with frequency 1.
func NewCylinders() Cylinders {
	return Cylinders{Frequency: 1.0}
}

func cylinderValue(x, y, frequency float64) float64 {
	x *= frequency
	y *= frequency

	distFromCenter := math.Sqrt(x*x + y*y)
	distFromSmaller := distFromCenter - math.Floor(distFromCenter)
	distFromLarger := 1.0 - distFromSmaller
	nearest := math.Min(distFromSmaller, distFromLarger)

	return 1.0 - nearest*4.0
}

// Eval2 treats the plane as a cross-section through the cylinders.
func (c Cylinders) Eval2(point [2]float64) float64 {
	return cylinderValue(point[0], point[1], c.Frequency)
}

// Eval3 ignores the z coordinate; cylinders extend along it unchanged.
func (c Cylinders) Eval3(point [3]float64) float64 {
	return cylinderValue(point[0], point[1], c.Frequency)
}

// Eval4 ignores the z and w coordinates.
func (c Cylinders) Eval4(point [4]float64) float64 {
	return cylinderValue(point[0], point[1], c.Frequency)
}

// ProcessField2D evaluates the generator over every coordinate of field.
func (c Cylinders) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return evalField2D(field, c.Eval2)
}

// ProcessField3D evaluates the generator over every coordinate of field.
func (c Cylinders) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return evalField3D(field, c.Eval3)
}

// Checkerboard outputs -1 or 1 depending on the parity of the unit cell
// containing the point. Useful for debugging coordinate mappings.
type Checkerboard struct{}

func checkerValue(point []float64) float64 {
	parity := 0
	for _, v := range point {
		parity ^= int(math.Floor(v)) & 1
	}
	if parity != 0 {
		return -1.0
	}
	return 1.0
}

// Eval2 returns the cell parity at a 2D point.
func (Checkerboard) Eval2(point [2]float64) float64 { return checkerValue(point[:]) }

// Eval3 returns the cell parity at a 3D point.
func (Checkerboard) Eval3(point [3]float64) float64 { return checkerValue(point[:]) }

// Eval4 returns the cell parity at a 4D point.
func (Checkerboard) Eval4(point [4]float64) float64 { return checkerValue(point[:]) }

// ProcessField2D evaluates the generator over every coordinate of field.
func (c Checkerboard) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return evalField2D(field, c.Eval2)
}

// ProcessField3D evaluates the generator over every coordinate of field.
func (c Checkerboard) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return evalField3D(field, c.Eval3)
}
