package noise

import "testing"

func TestSelectWithoutFalloff(t *testing.T) {
	s1 := NewConstant(10.0)
	s2 := NewConstant(20.0)

	// Control strictly inside the default (0, 1) bounds picks source2.
	evalConstants2D(t, NewSelect(s1, s2, NewConstant(0.5)), 20.0)
	evalConstants3D(t, NewSelect(s1, s2, NewConstant(0.5)), 20.0)

	// Control outside picks source1.
	evalConstants2D(t, NewSelect(s1, s2, NewConstant(2.0)), 10.0)
	evalConstants2D(t, NewSelect(s1, s2, NewConstant(-0.5)), 10.0)

	// The bounds themselves are outside.
	evalConstants2D(t, NewSelect(s1, s2, NewConstant(0.0)), 10.0)
	evalConstants2D(t, NewSelect(s1, s2, NewConstant(1.0)), 10.0)
}

func TestSelectSetBounds(t *testing.T) {
	s := NewSelect(NewConstant(10.0), NewConstant(20.0), NewConstant(5.0)).SetBounds(4.0, 6.0)
	evalConstants2D(t, s, 20.0)

	reversed := NewSelect(NewConstant(0), NewConstant(0), NewConstant(0)).SetBounds(6.0, 4.0)
	if reversed.LowerBound != 4.0 || reversed.UpperBound != 6.0 {
		t.Fatalf("SetBounds(6, 4) kept bounds (%v, %v)", reversed.LowerBound, reversed.UpperBound)
	}
}

func TestSelectFalloffBand(t *testing.T) {
	s1 := NewConstant(10.0)
	s2 := NewConstant(20.0)
	sel := func(control float64) Select {
		return NewSelect(s1, s2, NewConstant(control)).SetFalloff(0.25)
	}

	// Well outside and well inside behave as without falloff.
	evalConstants2D(t, sel(-1.0), 10.0)
	evalConstants2D(t, sel(0.5), 20.0)
	evalConstants2D(t, sel(2.0), 10.0)

	// The exact lower bound sits mid-band: smoothstep(0.5) = 0.5.
	evalConstants2D(t, sel(0.0), 15.0)
	evalConstants2D(t, sel(1.0), 15.0)

	// Band edges.
	evalConstants2D(t, sel(-0.25), 10.0)
	evalConstants2D(t, sel(0.25), 20.0)
}

func TestBlend(t *testing.T) {
	s1 := NewConstant(10.0)
	s2 := NewConstant(20.0)

	evalConstants2D(t, NewBlend(s1, s2, NewConstant(0.0)), 10.0)
	evalConstants2D(t, NewBlend(s1, s2, NewConstant(1.0)), 20.0)
	evalConstants2D(t, NewBlend(s1, s2, NewConstant(0.5)), 15.0)
	evalConstants3D(t, NewBlend(s1, s2, NewConstant(0.5)), 15.0)

	// Control is not clamped; out-of-range values extrapolate.
	evalConstants2D(t, NewBlend(s1, s2, NewConstant(2.0)), 30.0)
}
