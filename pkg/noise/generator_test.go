package noise

import "testing"

func TestConstant(t *testing.T) {
	c := NewConstant(0.75)
	if c.Eval2([2]float64{1, 2}) != 0.75 {
		t.Fatal("Eval2 did not return the constant")
	}
	if c.Eval3([3]float64{1, 2, 3}) != 0.75 {
		t.Fatal("Eval3 did not return the constant")
	}
	if c.Eval4([4]float64{1, 2, 3, 4}) != 0.75 {
		t.Fatal("Eval4 did not return the constant")
	}
	evalConstants2D(t, c, 0.75)
	evalConstants3D(t, c, 0.75)
}

func TestCylinders(t *testing.T) {
	c := NewCylinders()

	// On a unit shell the value peaks at 1.
	if got := c.Eval2([2]float64{1.0, 0.0}); got != 1.0 {
		t.Fatalf("value on unit shell = %v, want 1", got)
	}
	if got := c.Eval2([2]float64{0.0, 2.0}); got != 1.0 {
		t.Fatalf("value on second shell = %v, want 1", got)
	}
	// Halfway between shells it bottoms out at -1.
	if got := c.Eval2([2]float64{1.5, 0.0}); got != -1.0 {
		t.Fatalf("value between shells = %v, want -1", got)
	}

	// z is the cylinder axis: moving along it changes nothing.
	a := c.Eval3([3]float64{0.7, 0.3, 0.0})
	b := c.Eval3([3]float64{0.7, 0.3, 123.0})
	if a != b {
		t.Fatalf("value changed along the cylinder axis: %v vs %v", a, b)
	}
}

func TestCylindersFrequency(t *testing.T) {
	c := Cylinders{Frequency: 2.0}
	// Frequency 2 halves the shell spacing.
	if got := c.Eval2([2]float64{0.5, 0.0}); got != 1.0 {
		t.Fatalf("value on compressed shell = %v, want 1", got)
	}
}

func TestCheckerboard(t *testing.T) {
	var c Checkerboard

	if got := c.Eval2([2]float64{0.5, 0.5}); got != 1.0 {
		t.Fatalf("cell (0,0) = %v, want 1", got)
	}
	if got := c.Eval2([2]float64{1.5, 0.5}); got != -1.0 {
		t.Fatalf("cell (1,0) = %v, want -1", got)
	}
	if got := c.Eval2([2]float64{1.5, 1.5}); got != 1.0 {
		t.Fatalf("cell (1,1) = %v, want 1", got)
	}
	if got := c.Eval3([3]float64{0.5, 0.5, 1.5}); got != -1.0 {
		t.Fatalf("cell (0,0,1) = %v, want -1", got)
	}
	if got := c.Eval4([4]float64{0.5, 0.5, 1.5, 1.5}); got != 1.0 {
		t.Fatalf("cell (0,0,1,1) = %v, want 1", got)
	}
}

func TestGeneratorsImplementFieldFn(t *testing.T) {
	// Compile-time checks that every generator satisfies FieldFn.
	var fns = []FieldFn{
		NewConstant(0),
		NewCylinders(),
		Checkerboard{},
		NewPerlin(),
		NewOpenSimplex(),
		NewRidgedMulti(),
		NewFbm(),
		NewBillow(),
		NewTurbulence(NewPerlin()),
		NewAdd(NewConstant(0), NewConstant(0)),
		NewMultiply(NewConstant(0), NewConstant(0)),
		NewMax(NewConstant(0), NewConstant(0)),
		NewMin(NewConstant(0), NewConstant(0)),
		NewPower(NewConstant(0), NewConstant(0)),
		NewAbs(NewConstant(0)),
		NewNegate(NewConstant(0)),
		NewClamp(NewConstant(0)),
		NewScaleBias(NewConstant(0)),
		NewExponent(NewConstant(0)),
		NewBlend(NewConstant(0), NewConstant(0), NewConstant(0)),
		NewSelect(NewConstant(0), NewConstant(0), NewConstant(0)),
	}
	if len(fns) == 0 {
		t.Fatal("unreachable")
	}
}
