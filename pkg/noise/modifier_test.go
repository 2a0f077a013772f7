package noise

import "testing"

func TestAbsConstant(t *testing.T) {
	evalConstants2D(t, NewAbs(NewConstant(-0.5)), 0.5)
	evalConstants3D(t, NewAbs(NewConstant(0.5)), 0.5)
}

func TestNegateConstant(t *testing.T) {
	evalConstants2D(t, NewNegate(NewConstant(0.5)), -0.5)
	evalConstants3D(t, NewNegate(NewConstant(-0.25)), 0.25)
}

func TestClampDefaultBounds(t *testing.T) {
	evalConstants2D(t, NewClamp(NewConstant(5.0)), 1.0)
	evalConstants2D(t, NewClamp(NewConstant(-5.0)), -1.0)
	evalConstants2D(t, NewClamp(NewConstant(0.5)), 0.5)
	evalConstants3D(t, NewClamp(NewConstant(5.0)), 1.0)
}

func TestClampSetBounds(t *testing.T) {
	clamp := NewClamp(NewConstant(0.9)).SetBounds(-0.5, 0.5)
	evalConstants2D(t, clamp, 0.5)

	// Reversed bounds are reordered.
	reversed := NewClamp(NewConstant(0.9)).SetBounds(0.5, -0.5)
	if reversed.LowerBound != -0.5 || reversed.UpperBound != 0.5 {
		t.Fatalf("SetBounds(0.5, -0.5) kept bounds (%v, %v)", reversed.LowerBound, reversed.UpperBound)
	}
}

func TestScaleBias(t *testing.T) {
	sb := NewScaleBias(NewConstant(0.25)).SetScale(2.0).SetBias(1.0)
	evalConstants2D(t, sb, 1.5)
	evalConstants3D(t, sb, 1.5)

	// Defaults are the identity map.
	evalConstants2D(t, NewScaleBias(NewConstant(0.25)), 0.25)
}

func TestExponentIdentity(t *testing.T) {
	// Exponent 1 is the identity for in-range input.
	evalConstants2D(t, NewExponent(NewConstant(0.5)), 0.5)
	evalConstants2D(t, NewExponent(NewConstant(-1.0)), -1.0)
	evalConstants2D(t, NewExponent(NewConstant(1.0)), 1.0)
}

func TestExponentCurve(t *testing.T) {
	// ((0.5+1)/2)^2 * 2 - 1 = 0.125
	evalConstants2D(t, NewExponent(NewConstant(0.5)).SetExponent(2.0), 0.125)
	evalConstants3D(t, NewExponent(NewConstant(0.5)).SetExponent(2.0), 0.125)
}

func TestModifierBuildersDoNotMutate(t *testing.T) {
	base := NewClamp(NewConstant(0.0))
	base.SetBounds(-9, 9)
	if base.LowerBound != -1.0 || base.UpperBound != 1.0 {
		t.Fatal("SetBounds mutated the receiver")
	}
}
