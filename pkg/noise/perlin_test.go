package noise

import (
	"math/rand/v2"
	"testing"
)

func randomPoints(n int) [][4]float64 {
	r := rand.New(rand.NewPCG(11, 17))
	points := make([][4]float64, n)
	for i := range points {
		for axis := 0; axis < 4; axis++ {
			points[i][axis] = r.Float64()*200.0 - 100.0
		}
	}
	return points
}

func TestPerlinOutputRange(t *testing.T) {
	kernel := NewPerlinSeed(5)
	for _, p := range randomPoints(10000) {
		if v := kernel.Eval2([2]float64{p[0], p[1]}); v < -1.0 || v > 1.0 {
			t.Fatalf("Eval2(%v) = %v, want [-1, 1]", p[:2], v)
		}
		if v := kernel.Eval3([3]float64{p[0], p[1], p[2]}); v < -1.0 || v > 1.0 {
			t.Fatalf("Eval3(%v) = %v, want [-1, 1]", p[:3], v)
		}
		if v := kernel.Eval4(p); v < -1.0 || v > 1.0 {
			t.Fatalf("Eval4(%v) = %v, want [-1, 1]", p, v)
		}
	}
}

func TestPerlinDeterministic(t *testing.T) {
	a := NewPerlinSeed(123)
	b := NewPerlinSeed(123)
	for _, p := range randomPoints(500) {
		if a.Eval3([3]float64{p[0], p[1], p[2]}) != b.Eval3([3]float64{p[0], p[1], p[2]}) {
			t.Fatalf("kernels from seed 123 disagree at %v", p[:3])
		}
	}
}

func TestPerlinSeedSensitivity(t *testing.T) {
	a := NewPerlinSeed(1)
	b := NewPerlinSeed(2)
	for _, p := range randomPoints(100) {
		if a.Eval2([2]float64{p[0], p[1]}) != b.Eval2([2]float64{p[0], p[1]}) {
			return
		}
	}
	t.Fatal("seeds 1 and 2 agree on every probe point")
}

func TestPerlinNotConstant(t *testing.T) {
	kernel := NewPerlin()
	first := kernel.Eval2([2]float64{0.5, 0.5})
	for _, p := range randomPoints(100) {
		if kernel.Eval2([2]float64{p[0], p[1]}) != first {
			return
		}
	}
	t.Fatal("kernel output constant over probe points")
}

func TestPerlinWithSeed(t *testing.T) {
	kernel := NewPerlinSeed(10)
	same := kernel.WithSeed(10)
	if same.table != kernel.table {
		t.Fatal("WithSeed with unchanged seed rebuilt the table")
	}

	other := kernel.WithSeed(11)
	if other.Seed() != 11 {
		t.Fatalf("WithSeed(11).Seed() = %d", other.Seed())
	}
	if kernel.Seed() != 10 {
		t.Fatal("WithSeed mutated the receiver")
	}

	p := [2]float64{3.25, -7.5}
	if other.Eval2(p) != NewPerlinSeed(11).Eval2(p) {
		t.Fatal("WithSeed kernel disagrees with a fresh kernel of the same seed")
	}
}
