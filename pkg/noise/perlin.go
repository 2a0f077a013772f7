package noise

import "math"

// Scale constants calibrated per dimension as the reciprocal of the
// empirical maximum of the corner-surflet sum, so typical output spans
// [-1, 1] before the final clamp absorbs floating-point overshoot.
const (
	perlinScale2D = 3.1604938271604937
	perlinScale3D = 3.8898553255531074
	perlinScale4D = 4.424369240215691
)

// Perlin outputs 2/3/4-dimensional Perlin gradient noise using the
// surflet form: each corner of the surrounding lattice cell contributes
// attn^4 * dot(offset, gradient) with attn = max(0, 1 - |offset|^2).
//
// Perlin is an immutable value type; copies share the permutation table,
// which is read-only after construction.
type Perlin struct {
	seed  uint32
	table *PermutationTable
}

// NewPerlin constructs a Perlin kernel with the default seed.
func NewPerlin() Perlin {
	return NewPerlinSeed(DefaultSeed)
}

// NewPerlinSeed constructs a Perlin kernel for the given seed.
func NewPerlinSeed(seed uint32) Perlin {
	return Perlin{seed: seed, table: NewPermutationTable(seed)}
}

// Seed returns the kernel's seed.
func (p Perlin) Seed() uint32 { return p.seed }

// WithSeed returns a kernel for the given seed. The receiver is never
// mutated; a new permutation table is built unless the seed is
// unchanged.
func (p Perlin) WithSeed(seed uint32) Perlin {
	if seed == p.seed {
		return p
	}
	return NewPerlinSeed(seed)
}

// Eval2 evaluates the kernel at a 2D point, returning a value in [-1, 1].
func (p Perlin) Eval2(point [2]float64) float64 {
	return clampf(p.surfletSum(point[:])*perlinScale2D, -1.0, 1.0)
}

// Eval3 evaluates the kernel at a 3D point, returning a value in [-1, 1].
func (p Perlin) Eval3(point [3]float64) float64 {
	return clampf(p.surfletSum(point[:])*perlinScale3D, -1.0, 1.0)
}

// Eval4 evaluates the kernel at a 4D point, returning a value in [-1, 1].
func (p Perlin) Eval4(point [4]float64) float64 {
	return clampf(p.surfletSum(point[:])*perlinScale4D, -1.0, 1.0)
}

// surfletSum accumulates the surflet contributions of all 2^n corners
// of the unit lattice cell containing point. Corners are visited in
// x-fastest order so the summation order is fixed regardless of how
// callers schedule point evaluations.
func (p Perlin) surfletSum(point []float64) float64 {
	n := len(point)

	var near [4]int
	var frac [4]float64
	for axis := 0; axis < n; axis++ {
		floored := math.Floor(point[axis])
		near[axis] = int(floored)
		frac[axis] = point[axis] - floored
	}

	sum := 0.0
	for corner := 0; corner < 1<<n; corner++ {
		var lattice [4]int
		var offset [4]float64
		attn := 1.0
		for axis := 0; axis < n; axis++ {
			bit := (corner >> axis) & 1
			lattice[axis] = near[axis] + bit
			offset[axis] = frac[axis] - float64(bit)
			attn -= offset[axis] * offset[axis]
		}
		if attn <= 0.0 {
			continue
		}

		index := p.table.Hash(lattice[:n]...)
		var grad [4]float64
		switch n {
		case 2:
			g := gradient2(index)
			grad[0], grad[1] = g[0], g[1]
		case 3:
			g := gradient3(index)
			grad[0], grad[1], grad[2] = g[0], g[1], g[2]
		default:
			grad = gradient4(index)
		}

		dot := 0.0
		for axis := 0; axis < n; axis++ {
			dot += offset[axis] * grad[axis]
		}
		attnSq := attn * attn
		sum += attnSq * attnSq * dot
	}
	return sum
}

// ProcessField2D evaluates the kernel over every coordinate of field in
// parallel, returning a new field.
func (p Perlin) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return evalField2D(field, p.Eval2)
}

// ProcessField2DSerial is the sequential strategy; its output is
// bit-identical to ProcessField2D.
func (p Perlin) ProcessField2DSerial(field *NoiseField2D) *NoiseField2D {
	return evalField2DSerial(field, p.Eval2)
}

// ProcessField3D evaluates the kernel over every coordinate of field in
// parallel, returning a new field.
func (p Perlin) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return evalField3D(field, p.Eval3)
}

// ProcessField3DSerial is the sequential strategy; its output is
// bit-identical to ProcessField3D.
func (p Perlin) ProcessField3DSerial(field *NoiseField3D) *NoiseField3D {
	return evalField3DSerial(field, p.Eval3)
}
