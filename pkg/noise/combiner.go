package noise

import "math"

// Combiners merge the outputs of two sources pointwise. Both sources
// are evaluated over the same coordinate grid, then their value buffers
// are folded together index by index.

func combine2D(field *NoiseField2D, s1, s2 FieldFn2D, op func(a, b float64) float64) *NoiseField2D {
	out := s1.ProcessField2D(field)
	other := s2.ProcessField2D(field)
	combineValues(out.Values(), other.Values(), op)
	return out
}

func combine3D(field *NoiseField3D, s1, s2 FieldFn3D, op func(a, b float64) float64) *NoiseField3D {
	out := s1.ProcessField3D(field)
	other := s2.ProcessField3D(field)
	combineValues(out.Values(), other.Values(), op)
	return out
}

// Add sums the outputs of two sources.
type Add struct {
	Source1 FieldFn
	Source2 FieldFn
}

// NewAdd returns a combiner yielding source1 + source2.
func NewAdd(source1, source2 FieldFn) Add {
	return Add{Source1: source1, Source2: source2}
}

func (a Add) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return combine2D(field, a.Source1, a.Source2, func(x, y float64) float64 { return x + y })
}

func (a Add) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return combine3D(field, a.Source1, a.Source2, func(x, y float64) float64 { return x + y })
}

// Multiply takes the product of the outputs of two sources.
type Multiply struct {
	Source1 FieldFn
	Source2 FieldFn
}

// NewMultiply returns a combiner yielding source1 * source2.
func NewMultiply(source1, source2 FieldFn) Multiply {
	return Multiply{Source1: source1, Source2: source2}
}

func (m Multiply) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return combine2D(field, m.Source1, m.Source2, func(x, y float64) float64 { return x * y })
}

func (m Multiply) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return combine3D(field, m.Source1, m.Source2, func(x, y float64) float64 { return x * y })
}

// Max takes the larger of the two source outputs at each point.
type Max struct {
	Source1 FieldFn
	Source2 FieldFn
}

// NewMax returns a combiner yielding max(source1, source2).
func NewMax(source1, source2 FieldFn) Max {
	return Max{Source1: source1, Source2: source2}
}

func (m Max) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return combine2D(field, m.Source1, m.Source2, math.Max)
}

func (m Max) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return combine3D(field, m.Source1, m.Source2, math.Max)
}

// Min takes the smaller of the two source outputs at each point.
type Min struct {
	Source1 FieldFn
	Source2 FieldFn
}

// NewMin returns a combiner yielding min(source1, source2).
func NewMin(source1, source2 FieldFn) Min {
	return Min{Source1: source1, Source2: source2}
}

func (m Min) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return combine2D(field, m.Source1, m.Source2, math.Min)
}

func (m Min) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return combine3D(field, m.Source1, m.Source2, math.Min)
}

// Power raises the first source's output to the power of the second's.
// Negative bases with fractional exponents produce NaN, which is
// propagated rather than masked.
type Power struct {
	Source1 FieldFn
	Source2 FieldFn
}

// NewPower returns a combiner yielding source1 ^ source2.
func NewPower(source1, source2 FieldFn) Power {
	return Power{Source1: source1, Source2: source2}
}

func (p Power) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return combine2D(field, p.Source1, p.Source2, math.Pow)
}

func (p Power) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return combine3D(field, p.Source1, p.Source2, math.Pow)
}
