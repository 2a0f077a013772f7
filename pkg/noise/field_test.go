package noise

import "testing"

func TestNewNoiseField2DRejectsZeroDimensions(t *testing.T) {
	if _, err := NewNoiseField2D(0, 5); err == nil {
		t.Fatal("expected error for zero width")
	}
	if _, err := NewNoiseField2D(5, 0); err == nil {
		t.Fatal("expected error for zero height")
	}
	if _, err := NewNoiseField2D(maxGridSize, 5); err == nil {
		t.Fatalf("expected error for width %d", maxGridSize)
	}
}

func TestNewNoiseField2DZeroed(t *testing.T) {
	field, err := NewNoiseField2D(5, 5)
	if err != nil {
		t.Fatalf("NewNoiseField2D(5, 5): %v", err)
	}
	if len(field.Coordinates()) != 25 || len(field.Values()) != 25 {
		t.Fatalf("got %d coords, %d values, want 25 each", len(field.Coordinates()), len(field.Values()))
	}
	for i, c := range field.Coordinates() {
		if c != [2]float64{} {
			t.Fatalf("coordinate %d not zeroed: %v", i, c)
		}
	}
	for i, v := range field.Values() {
		if v != 0 {
			t.Fatalf("value %d not zeroed: %v", i, v)
		}
	}
}

func TestNewNoiseField3DRejectsZeroDimensions(t *testing.T) {
	for _, dims := range [][3]int{{0, 4, 4}, {4, 0, 4}, {4, 4, 0}} {
		if _, err := NewNoiseField3D(dims[0], dims[1], dims[2]); err == nil {
			t.Fatalf("expected error for dimensions %v", dims)
		}
	}
}

func TestBuildField2DLinearMapping(t *testing.T) {
	field, err := NewNoiseField2D(8, 4)
	if err != nil {
		t.Fatal(err)
	}
	field.BuildField(Bounds{-4, 4}, Bounds{0, 4})

	// Step is extent/n, so x runs -4, -3, ..., 3 and never reaches 4.
	for xi := 0; xi < 8; xi++ {
		got := field.CoordAtPoint(xi, 0)[0]
		want := -4.0 + float64(xi)
		if got != want {
			t.Fatalf("coord x at column %d = %v, want %v", xi, got, want)
		}
	}
	for _, c := range field.Coordinates() {
		if c[0] >= 4.0 {
			t.Fatalf("x coordinate %v reached the upper bound", c[0])
		}
		if c[1] >= 4.0 {
			t.Fatalf("y coordinate %v reached the upper bound", c[1])
		}
	}
}

func TestField2DIndexing(t *testing.T) {
	field, err := NewNoiseField2D(7, 5)
	if err != nil {
		t.Fatal(err)
	}

	field.SetCoordAtPoint(3, 2, [2]float64{1.5, -2.5})
	if got := field.Coordinates()[3+7*2]; got != [2]float64{1.5, -2.5} {
		t.Fatalf("row-major slot holds %v", got)
	}
	if got := field.CoordAtPoint(3, 2); got != [2]float64{1.5, -2.5} {
		t.Fatalf("CoordAtPoint(3, 2) = %v", got)
	}

	values := make([]float64, 35)
	values[3+7*2] = 9.0
	field.SetValues(values)
	if got := field.ValueAtPoint(3, 2); got != 9.0 {
		t.Fatalf("ValueAtPoint(3, 2) = %v, want 9", got)
	}
	if got := field.ValueAtIndex(3 + 7*2); got != 9.0 {
		t.Fatalf("ValueAtIndex = %v, want 9", got)
	}
}

func TestField3DIndexing(t *testing.T) {
	field, err := NewNoiseField3D(4, 3, 2)
	if err != nil {
		t.Fatal(err)
	}

	field.SetCoordAtPoint(1, 2, 1, [3]float64{1, 2, 3})
	if got := field.Coordinates()[1+4*(2+3*1)]; got != [3]float64{1, 2, 3} {
		t.Fatalf("row-major slot holds %v", got)
	}
}

func TestFieldIndexPanicsOutOfRange(t *testing.T) {
	field, err := NewNoiseField2D(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range grid point")
		}
	}()
	field.ValueAtPoint(4, 0)
}

func TestSetValuesPanicsOnLengthMismatch(t *testing.T) {
	field, err := NewNoiseField2D(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for mismatched value buffer")
		}
	}()
	field.SetValues(make([]float64, 3))
}

func TestCloneIsIndependent(t *testing.T) {
	field, err := NewNoiseField2D(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	field.BuildField(Bounds{0, 3}, Bounds{0, 3})

	clone := field.Clone()
	clone.Coordinates()[0] = [2]float64{99, 99}
	clone.Values()[0] = 99

	if field.Coordinates()[0] == ([2]float64{99, 99}) {
		t.Fatal("clone shares coordinate storage with the original")
	}
	if field.Values()[0] == 99 {
		t.Fatal("clone shares value storage with the original")
	}
}

func TestScaleCoordinates(t *testing.T) {
	field, err := NewNoiseField2D(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	field.BuildField(Bounds{-1, 1}, Bounds{-1, 1})

	scaled := field.ScaleCoordinates(2.0)
	for i, c := range field.Coordinates() {
		want := [2]float64{c[0] * 2, c[1] * 2}
		if got := scaled.Coordinates()[i]; got != want {
			t.Fatalf("scaled coord %d = %v, want %v", i, got, want)
		}
	}
	// Original untouched.
	if field.CoordAtPoint(3, 3) == scaled.CoordAtPoint(3, 3) {
		t.Fatal("ScaleCoordinates mutated the original field")
	}
}
