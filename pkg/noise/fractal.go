package noise

import "math"

// MaxOctaves caps how many octave layers a fractal will stack. Each
// octave doubles (roughly) the sampled frequency, and past this count
// the contribution falls below float64 resolution for any practical
// input range.
const MaxOctaves = 32

func clampOctaves(octaves int) int {
	if octaves < 1 {
		return 1
	}
	if octaves > MaxOctaves {
		return MaxOctaves
	}
	return octaves
}

// buildSources constructs one Perlin kernel per octave. Each octave gets
// its own seed so the layers decorrelate instead of echoing each other.
func buildSources(seed uint32, octaves int) []Perlin {
	sources := make([]Perlin, octaves)
	for i := range sources {
		sources[i] = NewPerlinSeed(seed + uint32(i))
	}
	return sources
}

// RidgedMulti is a multifractal of stacked Perlin octaves where each
// octave's signal is folded into a ridge, (1-|v|)^2, and weighted by the
// previous octave's signal. Sharp creases form where the underlying
// noise crosses zero, giving a mountainous character.
type RidgedMulti struct {
	// Frequency scales the input before the first octave.
	Frequency float64
	// Lacunarity is the per-octave frequency multiplier. Values near 2
	// work well; an irrational-looking choice avoids octave alignment.
	Lacunarity float64
	// Gain feeds each octave's signal forward as the next octave's
	// weight. Higher gain makes the ridges rougher.
	Gain float64

	seed    uint32
	octaves int
	sources []Perlin
}

// NewRidgedMulti returns a ridged multifractal with the default seed,
// 6 octaves, frequency 1, lacunarity 2.17 and gain 2.
func NewRidgedMulti() RidgedMulti {
	return NewRidgedMultiSeed(DefaultSeed)
}

// NewRidgedMultiSeed returns a ridged multifractal for the given seed.
func NewRidgedMultiSeed(seed uint32) RidgedMulti {
	const defaultOctaves = 6
	return RidgedMulti{
		Frequency:  1.0,
		Lacunarity: 2.17,
		Gain:       2.0,
		seed:       seed,
		octaves:    defaultOctaves,
		sources:    buildSources(seed, defaultOctaves),
	}
}

// Seed returns the fractal's base seed.
func (r RidgedMulti) Seed() uint32 { return r.seed }

// Octaves returns the number of stacked octaves.
func (r RidgedMulti) Octaves() int { return r.octaves }

// WithSeed returns a copy reseeded with seed, rebuilding the octave
// kernels.
func (r RidgedMulti) WithSeed(seed uint32) RidgedMulti {
	if seed == r.seed {
		return r
	}
	r.seed = seed
	r.sources = buildSources(seed, r.octaves)
	return r
}

// SetOctaves returns a copy with the octave count clamped to
// [1, MaxOctaves], rebuilding the octave kernels.
func (r RidgedMulti) SetOctaves(octaves int) RidgedMulti {
	octaves = clampOctaves(octaves)
	if octaves == r.octaves {
		return r
	}
	r.octaves = octaves
	r.sources = buildSources(r.seed, octaves)
	return r
}

// SetFrequency returns a copy with the given base frequency.
func (r RidgedMulti) SetFrequency(frequency float64) RidgedMulti {
	r.Frequency = frequency
	return r
}

// SetLacunarity returns a copy with the given lacunarity.
func (r RidgedMulti) SetLacunarity(lacunarity float64) RidgedMulti {
	r.Lacunarity = lacunarity
	return r
}

// SetGain returns a copy with the given gain.
func (r RidgedMulti) SetGain(gain float64) RidgedMulti {
	r.Gain = gain
	return r
}

// ridgeStep folds one octave's raw noise into a ridge signal and
// advances the running weight.
func (r RidgedMulti) ridgeStep(signal float64, weight *float64) float64 {
	signal = 1.0 - math.Abs(signal)
	signal *= signal
	signal *= *weight
	*weight = clampf(signal*r.Gain, 0.0, 1.0)
	return signal
}

// outputScale maps the accumulated octave sum back into roughly [-1, 1].
func (r RidgedMulti) outputScale() float64 {
	scale := 2.0 - math.Pow(0.5, float64(r.octaves-1))
	return 2.0 / scale
}

// Eval2 evaluates the fractal at a 2D point.
func (r RidgedMulti) Eval2(point [2]float64) float64 {
	x := point[0] * r.Frequency
	y := point[1] * r.Frequency

	result := 0.0
	weight := 1.0
	for _, source := range r.sources {
		result += r.ridgeStep(source.Eval2([2]float64{x, y}), &weight)
		x *= r.Lacunarity
		y *= r.Lacunarity
	}
	return scaleShift(result, r.outputScale())
}

// Eval3 evaluates the fractal at a 3D point.
func (r RidgedMulti) Eval3(point [3]float64) float64 {
	x := point[0] * r.Frequency
	y := point[1] * r.Frequency
	z := point[2] * r.Frequency

	result := 0.0
	weight := 1.0
	for _, source := range r.sources {
		result += r.ridgeStep(source.Eval3([3]float64{x, y, z}), &weight)
		x *= r.Lacunarity
		y *= r.Lacunarity
		z *= r.Lacunarity
	}
	return scaleShift(result, r.outputScale())
}

// Eval4 evaluates the fractal at a 4D point.
func (r RidgedMulti) Eval4(point [4]float64) float64 {
	x := point[0] * r.Frequency
	y := point[1] * r.Frequency
	z := point[2] * r.Frequency
	w := point[3] * r.Frequency

	result := 0.0
	weight := 1.0
	for _, source := range r.sources {
		result += r.ridgeStep(source.Eval4([4]float64{x, y, z, w}), &weight)
		x *= r.Lacunarity
		y *= r.Lacunarity
		z *= r.Lacunarity
		w *= r.Lacunarity
	}
	return scaleShift(result, r.outputScale())
}

// ProcessField2D stacks octave fields over the grid: each octave is the
// underlying kernel evaluated on a frequency-scaled copy of the
// coordinates, folded into the accumulator exactly as the point form
// does.
func (r RidgedMulti) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := field.Clone()
	values := out.Values()
	clear(values)

	weights := make([]float64, len(values))
	for i := range weights {
		weights[i] = 1.0
	}

	frequency := r.Frequency
	for _, source := range r.sources {
		octave := source.ProcessField2D(field.ScaleCoordinates(frequency))
		for i, signal := range octave.Values() {
			values[i] += r.ridgeStep(signal, &weights[i])
		}
		frequency *= r.Lacunarity
	}

	scale := r.outputScale()
	mapValues(values, func(v float64) float64 { return scaleShift(v, scale) })
	return out
}

// ProcessField3D is the volumetric counterpart of ProcessField2D.
func (r RidgedMulti) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := field.Clone()
	values := out.Values()
	clear(values)

	weights := make([]float64, len(values))
	for i := range weights {
		weights[i] = 1.0
	}

	frequency := r.Frequency
	for _, source := range r.sources {
		octave := source.ProcessField3D(field.ScaleCoordinates(frequency))
		for i, signal := range octave.Values() {
			values[i] += r.ridgeStep(signal, &weights[i])
		}
		frequency *= r.Lacunarity
	}

	scale := r.outputScale()
	mapValues(values, func(v float64) float64 { return scaleShift(v, scale) })
	return out
}

// Fbm is classic fractional Brownian motion: Perlin octaves with
// geometrically decaying amplitude, normalized so the output stays in
// the base kernel's range.
type Fbm struct {
	Frequency   float64
	Lacunarity  float64
	Persistence float64

	seed    uint32
	octaves int
	sources []Perlin
}

// NewFbm returns an fBm fractal with the default seed, 6 octaves,
// frequency 1, lacunarity 2 and persistence 0.5.
func NewFbm() Fbm {
	return NewFbmSeed(DefaultSeed)
}

// NewFbmSeed returns an fBm fractal for the given seed.
func NewFbmSeed(seed uint32) Fbm {
	const defaultOctaves = 6
	return Fbm{
		Frequency:   1.0,
		Lacunarity:  2.0,
		Persistence: 0.5,
		seed:        seed,
		octaves:     defaultOctaves,
		sources:     buildSources(seed, defaultOctaves),
	}
}

// Seed returns the fractal's base seed.
func (f Fbm) Seed() uint32 { return f.seed }

// Octaves returns the number of stacked octaves.
func (f Fbm) Octaves() int { return f.octaves }

// WithSeed returns a copy reseeded with seed.
func (f Fbm) WithSeed(seed uint32) Fbm {
	if seed == f.seed {
		return f
	}
	f.seed = seed
	f.sources = buildSources(seed, f.octaves)
	return f
}

// SetOctaves returns a copy with the octave count clamped to
// [1, MaxOctaves].
func (f Fbm) SetOctaves(octaves int) Fbm {
	octaves = clampOctaves(octaves)
	if octaves == f.octaves {
		return f
	}
	f.octaves = octaves
	f.sources = buildSources(f.seed, octaves)
	return f
}

// totalAmplitude is the normalization divisor: the sum of all octave
// amplitudes.
func (f Fbm) totalAmplitude() float64 {
	total := 0.0
	amplitude := 1.0
	for i := 0; i < f.octaves; i++ {
		total += amplitude
		amplitude *= f.Persistence
	}
	return total
}

// Eval2 evaluates the fractal at a 2D point.
func (f Fbm) Eval2(point [2]float64) float64 {
	x := point[0] * f.Frequency
	y := point[1] * f.Frequency

	result := 0.0
	amplitude := 1.0
	for _, source := range f.sources {
		result += source.Eval2([2]float64{x, y}) * amplitude
		amplitude *= f.Persistence
		x *= f.Lacunarity
		y *= f.Lacunarity
	}
	return result / f.totalAmplitude()
}

// Eval3 evaluates the fractal at a 3D point.
func (f Fbm) Eval3(point [3]float64) float64 {
	x := point[0] * f.Frequency
	y := point[1] * f.Frequency
	z := point[2] * f.Frequency

	result := 0.0
	amplitude := 1.0
	for _, source := range f.sources {
		result += source.Eval3([3]float64{x, y, z}) * amplitude
		amplitude *= f.Persistence
		x *= f.Lacunarity
		y *= f.Lacunarity
		z *= f.Lacunarity
	}
	return result / f.totalAmplitude()
}

// Eval4 evaluates the fractal at a 4D point.
func (f Fbm) Eval4(point [4]float64) float64 {
	x := point[0] * f.Frequency
	y := point[1] * f.Frequency
	z := point[2] * f.Frequency
	w := point[3] * f.Frequency

	result := 0.0
	amplitude := 1.0
	for _, source := range f.sources {
		result += source.Eval4([4]float64{x, y, z, w}) * amplitude
		amplitude *= f.Persistence
		x *= f.Lacunarity
		y *= f.Lacunarity
		z *= f.Lacunarity
		w *= f.Lacunarity
	}
	return result / f.totalAmplitude()
}

// ProcessField2D stacks octave fields over the grid.
func (f Fbm) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := field.Clone()
	values := out.Values()
	clear(values)

	frequency := f.Frequency
	amplitude := 1.0
	for _, source := range f.sources {
		octave := source.ProcessField2D(field.ScaleCoordinates(frequency))
		for i, v := range octave.Values() {
			values[i] += v * amplitude
		}
		frequency *= f.Lacunarity
		amplitude *= f.Persistence
	}

	total := f.totalAmplitude()
	mapValues(values, func(v float64) float64 { return v / total })
	return out
}

// ProcessField3D is the volumetric counterpart of ProcessField2D.
func (f Fbm) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := field.Clone()
	values := out.Values()
	clear(values)

	frequency := f.Frequency
	amplitude := 1.0
	for _, source := range f.sources {
		octave := source.ProcessField3D(field.ScaleCoordinates(frequency))
		for i, v := range octave.Values() {
			values[i] += v * amplitude
		}
		frequency *= f.Lacunarity
		amplitude *= f.Persistence
	}

	total := f.totalAmplitude()
	mapValues(values, func(v float64) float64 { return v / total })
	return out
}

// Billow is fBm over folded octaves: each octave's noise is mapped
// through 2|v|-1 before weighting, producing billowy, cloud-like lobes.
type Billow struct {
	Frequency   float64
	Lacunarity  float64
	Persistence float64

	seed    uint32
	octaves int
	sources []Perlin
}

// NewBillow returns a billow fractal with the default seed, 6 octaves,
// frequency 1, lacunarity 2 and persistence 0.5.
func NewBillow() Billow {
	return NewBillowSeed(DefaultSeed)
}

// NewBillowSeed returns a billow fractal for the given seed.
func NewBillowSeed(seed uint32) Billow {
	const defaultOctaves = 6
	return Billow{
		Frequency:   1.0,
		Lacunarity:  2.0,
		Persistence: 0.5,
		seed:        seed,
		octaves:     defaultOctaves,
		sources:     buildSources(seed, defaultOctaves),
	}
}

// Seed returns the fractal's base seed.
func (b Billow) Seed() uint32 { return b.seed }

// Octaves returns the number of stacked octaves.
func (b Billow) Octaves() int { return b.octaves }

// WithSeed returns a copy reseeded with seed.
func (b Billow) WithSeed(seed uint32) Billow {
	if seed == b.seed {
		return b
	}
	b.seed = seed
	b.sources = buildSources(seed, b.octaves)
	return b
}

// SetOctaves returns a copy with the octave count clamped to
// [1, MaxOctaves].
func (b Billow) SetOctaves(octaves int) Billow {
	octaves = clampOctaves(octaves)
	if octaves == b.octaves {
		return b
	}
	b.octaves = octaves
	b.sources = buildSources(b.seed, octaves)
	return b
}

func (b Billow) totalAmplitude() float64 {
	total := 0.0
	amplitude := 1.0
	for i := 0; i < b.octaves; i++ {
		total += amplitude
		amplitude *= b.Persistence
	}
	return total
}

func billowFold(v float64) float64 {
	return 2.0*math.Abs(v) - 1.0
}

// Eval2 evaluates the fractal at a 2D point.
func (b Billow) Eval2(point [2]float64) float64 {
	x := point[0] * b.Frequency
	y := point[1] * b.Frequency

	result := 0.0
	amplitude := 1.0
	for _, source := range b.sources {
		result += billowFold(source.Eval2([2]float64{x, y})) * amplitude
		amplitude *= b.Persistence
		x *= b.Lacunarity
		y *= b.Lacunarity
	}
	return result / b.totalAmplitude()
}

// Eval3 evaluates the fractal at a 3D point.
func (b Billow) Eval3(point [3]float64) float64 {
	x := point[0] * b.Frequency
	y := point[1] * b.Frequency
	z := point[2] * b.Frequency

	result := 0.0
	amplitude := 1.0
	for _, source := range b.sources {
		result += billowFold(source.Eval3([3]float64{x, y, z})) * amplitude
		amplitude *= b.Persistence
		x *= b.Lacunarity
		y *= b.Lacunarity
		z *= b.Lacunarity
	}
	return result / b.totalAmplitude()
}

// Eval4 evaluates the fractal at a 4D point.
func (b Billow) Eval4(point [4]float64) float64 {
	x := point[0] * b.Frequency
	y := point[1] * b.Frequency
	z := point[2] * b.Frequency
	w := point[3] * b.Frequency

	result := 0.0
	amplitude := 1.0
	for _, source := range b.sources {
		result += billowFold(source.Eval4([4]float64{x, y, z, w})) * amplitude
		amplitude *= b.Persistence
		x *= b.Lacunarity
		y *= b.Lacunarity
		z *= b.Lacunarity
		w *= b.Lacunarity
	}
	return result / b.totalAmplitude()
}

// ProcessField2D stacks octave fields over the grid.
func (b Billow) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	out := field.Clone()
	values := out.Values()
	clear(values)

	frequency := b.Frequency
	amplitude := 1.0
	for _, source := range b.sources {
		octave := source.ProcessField2D(field.ScaleCoordinates(frequency))
		for i, v := range octave.Values() {
			values[i] += billowFold(v) * amplitude
		}
		frequency *= b.Lacunarity
		amplitude *= b.Persistence
	}

	total := b.totalAmplitude()
	mapValues(values, func(v float64) float64 { return v / total })
	return out
}

// ProcessField3D is the volumetric counterpart of ProcessField2D.
func (b Billow) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	out := field.Clone()
	values := out.Values()
	clear(values)

	frequency := b.Frequency
	amplitude := 1.0
	for _, source := range b.sources {
		octave := source.ProcessField3D(field.ScaleCoordinates(frequency))
		for i, v := range octave.Values() {
			values[i] += billowFold(v) * amplitude
		}
		frequency *= b.Lacunarity
		amplitude *= b.Persistence
	}

	total := b.totalAmplitude()
	mapValues(values, func(v float64) float64 { return v / total })
	return out
}

// Turbulence perturbs the sampling coordinates of a source with one fBm
// distorter per axis before evaluating it, warping the source's
// features.
type Turbulence struct {
	Source FieldFn

	// Power scales how far coordinates are displaced.
	Power float64

	seed     uint32
	xDistort Fbm
	yDistort Fbm
	zDistort Fbm
}

// NewTurbulence wraps source with default-seed distorters of power 1
// and roughness 3.
func NewTurbulence(source FieldFn) Turbulence {
	return NewTurbulenceSeed(source, DefaultSeed)
}

// NewTurbulenceSeed wraps source with distorters derived from seed.
func NewTurbulenceSeed(source FieldFn, seed uint32) Turbulence {
	const roughness = 3
	return Turbulence{
		Source:   source,
		Power:    1.0,
		seed:     seed,
		xDistort: NewFbmSeed(seed).SetOctaves(roughness),
		yDistort: NewFbmSeed(seed + 1).SetOctaves(roughness),
		zDistort: NewFbmSeed(seed + 2).SetOctaves(roughness),
	}
}

// Seed returns the distorters' base seed.
func (t Turbulence) Seed() uint32 { return t.seed }

// WithSeed returns a copy with reseeded distorters.
func (t Turbulence) WithSeed(seed uint32) Turbulence {
	if seed == t.seed {
		return t
	}
	t.seed = seed
	t.xDistort = t.xDistort.WithSeed(seed)
	t.yDistort = t.yDistort.WithSeed(seed + 1)
	t.zDistort = t.zDistort.WithSeed(seed + 2)
	return t
}

// SetPower returns a copy with the given displacement power.
func (t Turbulence) SetPower(power float64) Turbulence {
	t.Power = power
	return t
}

// SetRoughness returns a copy whose distorters use the given octave
// count.
func (t Turbulence) SetRoughness(roughness int) Turbulence {
	t.xDistort = t.xDistort.SetOctaves(roughness)
	t.yDistort = t.yDistort.SetOctaves(roughness)
	t.zDistort = t.zDistort.SetOctaves(roughness)
	return t
}

func (t Turbulence) distort2(point [2]float64) [2]float64 {
	return [2]float64{
		point[0] + t.Power*t.xDistort.Eval2(point),
		point[1] + t.Power*t.yDistort.Eval2(point),
	}
}

func (t Turbulence) distort3(point [3]float64) [3]float64 {
	return [3]float64{
		point[0] + t.Power*t.xDistort.Eval3(point),
		point[1] + t.Power*t.yDistort.Eval3(point),
		point[2] + t.Power*t.zDistort.Eval3(point),
	}
}

// ProcessField2D evaluates the source on a coordinate-warped copy of
// field, then restores the original coordinates on the output.
func (t Turbulence) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	warped := field.Clone()
	coords := warped.Coordinates()
	for i, p := range field.Coordinates() {
		coords[i] = t.distort2(p)
	}

	out := t.Source.ProcessField2D(warped)
	copy(out.Coordinates(), field.Coordinates())
	return out
}

// ProcessField3D is the volumetric counterpart of ProcessField2D.
func (t Turbulence) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	warped := field.Clone()
	coords := warped.Coordinates()
	for i, p := range field.Coordinates() {
		coords[i] = t.distort3(p)
	}

	out := t.Source.ProcessField3D(warped)
	copy(out.Coordinates(), field.Coordinates())
	return out
}
