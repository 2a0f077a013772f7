package noise

import (
	"math"
	"slices"
	"testing"
)

func TestRidgedMultiDefaults(t *testing.T) {
	r := NewRidgedMulti()
	if r.Octaves() != 6 {
		t.Fatalf("default octaves = %d, want 6", r.Octaves())
	}
	if r.Frequency != 1.0 || r.Lacunarity != 2.17 || r.Gain != 2.0 {
		t.Fatalf("default parameters frequency=%v lacunarity=%v gain=%v", r.Frequency, r.Lacunarity, r.Gain)
	}
}

func TestRidgedMultiOctaveClamping(t *testing.T) {
	r := NewRidgedMulti().SetOctaves(0)
	if r.Octaves() != 1 {
		t.Fatalf("SetOctaves(0) gave %d octaves, want 1", r.Octaves())
	}
	r = r.SetOctaves(1000)
	if r.Octaves() != MaxOctaves {
		t.Fatalf("SetOctaves(1000) gave %d octaves, want %d", r.Octaves(), MaxOctaves)
	}
}

func TestRidgedMultiDeterministic(t *testing.T) {
	a := NewRidgedMultiSeed(42)
	b := NewRidgedMultiSeed(42)
	for _, p := range randomPoints(200) {
		if a.Eval2([2]float64{p[0], p[1]}) != b.Eval2([2]float64{p[0], p[1]}) {
			t.Fatalf("fractals from seed 42 disagree at %v", p[:2])
		}
		if a.Eval3([3]float64{p[0], p[1], p[2]}) != b.Eval3([3]float64{p[0], p[1], p[2]}) {
			t.Fatalf("fractals from seed 42 disagree at %v", p[:3])
		}
		if a.Eval4(p) != b.Eval4(p) {
			t.Fatalf("fractals from seed 42 disagree at %v", p)
		}
	}
}

func TestRidgedMultiSeedSensitivity(t *testing.T) {
	a := NewRidgedMultiSeed(1)
	b := NewRidgedMultiSeed(2)
	for _, p := range randomPoints(100) {
		if a.Eval2([2]float64{p[0], p[1]}) != b.Eval2([2]float64{p[0], p[1]}) {
			return
		}
	}
	t.Fatal("seeds 1 and 2 agree on every probe point")
}

func TestRidgedMultiFieldDeterministic(t *testing.T) {
	field := buildTestField2D(t, 32, 32)
	r := NewRidgedMultiSeed(7)

	first := r.ProcessField2D(field)
	second := r.ProcessField2D(field)
	if !slices.Equal(first.Values(), second.Values()) {
		t.Fatal("repeated field evaluation differs")
	}
	for _, v := range first.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("field contains non-finite value %v", v)
		}
	}
}

func TestRidgedMultiFieldOutputVaries(t *testing.T) {
	field := buildTestField3D(t, 8, 8, 8)
	out := NewRidgedMultiSeed(7).ProcessField3D(field)

	first := out.ValueAtIndex(0)
	for _, v := range out.Values() {
		if v != first {
			return
		}
	}
	t.Fatal("fractal field is constant")
}

func TestFbmNormalized(t *testing.T) {
	f := NewFbmSeed(9)
	// Octave kernels clamp to [-1, 1] and the sum is divided by the
	// total amplitude, so fBm stays in [-1, 1].
	for _, p := range randomPoints(2000) {
		if v := f.Eval2([2]float64{p[0], p[1]}); v < -1.0 || v > 1.0 {
			t.Fatalf("Eval2(%v) = %v, want [-1, 1]", p[:2], v)
		}
		if v := f.Eval3([3]float64{p[0], p[1], p[2]}); v < -1.0 || v > 1.0 {
			t.Fatalf("Eval3(%v) = %v, want [-1, 1]", p[:3], v)
		}
		if v := f.Eval4(p); v < -1.0 || v > 1.0 {
			t.Fatalf("Eval4(%v) = %v, want [-1, 1]", p, v)
		}
	}
}

func TestFbmSingleOctaveMatchesKernel(t *testing.T) {
	f := NewFbmSeed(3).SetOctaves(1)
	kernel := NewPerlinSeed(3)
	for _, p := range randomPoints(100) {
		q := [2]float64{p[0], p[1]}
		if f.Eval2(q) != kernel.Eval2(q) {
			t.Fatalf("single-octave fBm differs from its kernel at %v", q)
		}
	}
}

func TestBillowNormalized(t *testing.T) {
	b := NewBillowSeed(9)
	for _, p := range randomPoints(2000) {
		if v := b.Eval2([2]float64{p[0], p[1]}); v < -1.0 || v > 1.0 {
			t.Fatalf("Eval2(%v) = %v, want [-1, 1]", p[:2], v)
		}
	}
}

func TestBillowDiffersFromFbm(t *testing.T) {
	f := NewFbmSeed(4)
	b := NewBillowSeed(4)
	for _, p := range randomPoints(100) {
		q := [2]float64{p[0], p[1]}
		if f.Eval2(q) != b.Eval2(q) {
			return
		}
	}
	t.Fatal("billow output identical to fBm")
}

func TestTurbulenceDeterministic(t *testing.T) {
	field := buildTestField2D(t, 16, 16)
	turb := NewTurbulenceSeed(NewPerlinSeed(1), 5)

	first := turb.ProcessField2D(field)
	second := turb.ProcessField2D(field)
	if !slices.Equal(first.Values(), second.Values()) {
		t.Fatal("repeated turbulence evaluation differs")
	}
	if !slices.Equal(first.Coordinates(), field.Coordinates()) {
		t.Fatal("turbulence leaked warped coordinates into the output")
	}
}

func TestTurbulenceWarpsSource(t *testing.T) {
	field := buildTestField2D(t, 16, 16)
	source := NewPerlinSeed(1)

	plain := source.ProcessField2D(field)
	warped := NewTurbulenceSeed(source, 5).ProcessField2D(field)
	if slices.Equal(plain.Values(), warped.Values()) {
		t.Fatal("turbulence output identical to the undistorted source")
	}
}

func TestFractalWithSeedRebuildsSources(t *testing.T) {
	r := NewRidgedMultiSeed(1)
	reseeded := r.WithSeed(2)
	if r.Seed() != 1 || reseeded.Seed() != 2 {
		t.Fatalf("seeds after WithSeed: %d, %d", r.Seed(), reseeded.Seed())
	}

	p := [2]float64{1.5, -2.25}
	if reseeded.Eval2(p) != NewRidgedMultiSeed(2).Eval2(p) {
		t.Fatal("WithSeed fractal disagrees with a fresh fractal of the same seed")
	}
}
