package noise

import "math/rand/v2"

const permTableSize = 256

// PermutationTable is a seeded pseudo-random permutation of the indices
// 0-255, stored doubled to 512 entries so lattice hashes can chain
// lookups without a modulo. It is built once per kernel and never
// mutated afterwards, so it is safe to share across goroutines.
type PermutationTable struct {
	values [permTableSize * 2]int
}

// NewPermutationTable derives a permutation deterministically from seed
// using a PCG-driven Fisher-Yates shuffle. The same seed always yields
// a bit-identical table.
func NewPermutationTable(seed uint32) *PermutationTable {
	r := rand.New(rand.NewPCG(uint64(seed), 0))

	var p [permTableSize]int
	for i := range p {
		p[i] = i
	}
	r.Shuffle(permTableSize, func(i, j int) { p[i], p[j] = p[j], p[i] })

	t := &PermutationTable{}
	for i := range t.values {
		t.values[i] = p[i&(permTableSize-1)]
	}
	return t
}

// Hash folds integer lattice coordinates through the table one axis at
// a time, producing a gradient index in [0, 255]. Negative coordinates
// are handled by the mask.
func (t *PermutationTable) Hash(coords ...int) int {
	index := 0
	for _, c := range coords {
		index = t.values[index+(c&0xff)]
	}
	return index
}

// Hash2 is the unrolled two-coordinate form of Hash.
func (t *PermutationTable) Hash2(x, y int) int {
	return t.values[t.values[x&0xff]+(y&0xff)]
}

// Hash3 is the unrolled three-coordinate form of Hash.
func (t *PermutationTable) Hash3(x, y, z int) int {
	return t.values[t.values[t.values[x&0xff]+(y&0xff)]+(z&0xff)]
}

// Hash4 is the unrolled four-coordinate form of Hash.
func (t *PermutationTable) Hash4(x, y, z, w int) int {
	return t.values[t.values[t.values[t.values[x&0xff]+(y&0xff)]+(z&0xff)]+(w&0xff)]
}
