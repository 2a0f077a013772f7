package noise

import "testing"

func TestPermutationTableDeterministic(t *testing.T) {
	a := NewPermutationTable(42)
	b := NewPermutationTable(42)

	for x := -300; x < 300; x += 7 {
		for y := -300; y < 300; y += 11 {
			if a.Hash2(x, y) != b.Hash2(x, y) {
				t.Fatalf("tables from seed 42 disagree at (%d,%d)", x, y)
			}
		}
	}
}

func TestPermutationTableSeedSensitivity(t *testing.T) {
	a := NewPermutationTable(1)
	b := NewPermutationTable(2)

	same := 0
	total := 0
	for x := 0; x < 64; x++ {
		for y := 0; y < 64; y++ {
			if a.Hash2(x, y) == b.Hash2(x, y) {
				same++
			}
			total++
		}
	}
	// Collisions happen, identical tables do not.
	if same == total {
		t.Fatal("seeds 1 and 2 produced identical hash sequences")
	}
}

func TestPermutationTableHashRange(t *testing.T) {
	table := NewPermutationTable(7)
	for x := -1000; x < 1000; x += 13 {
		for y := -1000; y < 1000; y += 17 {
			h := table.Hash2(x, y)
			if h < 0 || h > 255 {
				t.Fatalf("Hash2(%d,%d) = %d, want [0, 255]", x, y, h)
			}
		}
	}
}

func TestPermutationTableUnrolledForms(t *testing.T) {
	table := NewPermutationTable(9)
	probes := [][4]int{
		{0, 0, 0, 0},
		{1, 2, 3, 4},
		{-1, -2, -3, -4},
		{255, 256, 257, -256},
		{12345, -6789, 42, 7},
	}
	for _, p := range probes {
		if got, want := table.Hash2(p[0], p[1]), table.Hash(p[0], p[1]); got != want {
			t.Fatalf("Hash2%v = %d, Hash = %d", p[:2], got, want)
		}
		if got, want := table.Hash3(p[0], p[1], p[2]), table.Hash(p[0], p[1], p[2]); got != want {
			t.Fatalf("Hash3%v = %d, Hash = %d", p[:3], got, want)
		}
		if got, want := table.Hash4(p[0], p[1], p[2], p[3]), table.Hash(p[0], p[1], p[2], p[3]); got != want {
			t.Fatalf("Hash4%v = %d, Hash = %d", p, got, want)
		}
	}
}

func TestPermutationTableCoversAllIndices(t *testing.T) {
	table := NewPermutationTable(3)
	seen := make(map[int]bool)
	for x := 0; x < 256; x++ {
		seen[table.Hash(x)] = true
	}
	if len(seen) != 256 {
		t.Fatalf("single-axis hash covers %d of 256 indices", len(seen))
	}
}
