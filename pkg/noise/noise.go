// Package noise implements deterministic, seed-parameterized coherent
// noise: Perlin and OpenSimplex point-evaluation kernels in 2, 3 and 4
// dimensions, batched evaluation of those kernels over rectangular and
// volumetric coordinate fields, and a small algebra of combinators
// (arithmetic blends, clamps, selects, fractal summation) that compose
// fields into new fields.
//
// Kernels are immutable value types. For a fixed seed every evaluation
// is a pure function of its input point, so kernels and their
// permutation tables may be shared freely across goroutines.
package noise

// DefaultSeed is used by kernels constructed without an explicit seed.
const DefaultSeed uint32 = 0

// FieldFn2D evaluates itself over every coordinate of a 2D field,
// returning a new field with the same coordinates and grid shape.
type FieldFn2D interface {
	ProcessField2D(field *NoiseField2D) *NoiseField2D
}

// FieldFn3D is the 3D counterpart of FieldFn2D.
type FieldFn3D interface {
	ProcessField3D(field *NoiseField3D) *NoiseField3D
}

// FieldFn is implemented by every generator and combinator in this
// package. Combinators accept any FieldFn as a source, so new kinds of
// generators can be plugged in from outside the package.
type FieldFn interface {
	FieldFn2D
	FieldFn3D
}
