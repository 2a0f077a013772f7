package noise

import "github.com/dgravesa/go-parallel/parallel"

// Field evaluation is embarrassingly parallel: every output slot depends
// only on the coordinate at the same index, so the parallel strategy
// fans point evaluations out across workers while each worker writes
// only its own slot. Serial and parallel evaluation of the same kernel
// therefore produce bit-identical value buffers; parallelism is across
// points, never across the terms of one point's sum.

func evalField2D(field *NoiseField2D, fn func([2]float64) float64) *NoiseField2D {
	out := field.Clone()
	coords := field.Coordinates()
	values := out.Values()
	parallel.For(len(coords), func(i, _ int) {
		values[i] = fn(coords[i])
	})
	return out
}

func evalField2DSerial(field *NoiseField2D, fn func([2]float64) float64) *NoiseField2D {
	out := field.Clone()
	values := out.Values()
	for i, p := range field.Coordinates() {
		values[i] = fn(p)
	}
	return out
}

func evalField3D(field *NoiseField3D, fn func([3]float64) float64) *NoiseField3D {
	out := field.Clone()
	coords := field.Coordinates()
	values := out.Values()
	parallel.For(len(coords), func(i, _ int) {
		values[i] = fn(coords[i])
	})
	return out
}

func evalField3DSerial(field *NoiseField3D, fn func([3]float64) float64) *NoiseField3D {
	out := field.Clone()
	values := out.Values()
	for i, p := range field.Coordinates() {
		values[i] = fn(p)
	}
	return out
}

// mapValues rewrites a value buffer in place through a pointwise
// function, fanning out across workers.
func mapValues(values []float64, fn func(float64) float64) {
	parallel.For(len(values), func(i, _ int) {
		values[i] = fn(values[i])
	})
}

// combineValues folds src into dst pointwise.
func combineValues(dst, src []float64, op func(a, b float64) float64) {
	for i := range dst {
		dst[i] = op(dst[i], src[i])
	}
}
