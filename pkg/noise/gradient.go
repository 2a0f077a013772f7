package noise

import "math"

// Gradient vectors for each dimension, indexed by the low bits (or a
// small modulus) of a permutation hash. Diagonal entries are normalized
// so every vector has unit length.
const (
	diag2 = math.Sqrt2 / 2.0
	diag4 = 0.5773502691896258 // 1/sqrt(3)
)

var gradients2 = [8][2]float64{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{diag2, diag2}, {-diag2, diag2}, {diag2, -diag2}, {-diag2, -diag2},
}

// The twelve edge midpoints of a cube, projected to the unit sphere.
var gradients3 = [12][3]float64{
	{diag2, diag2, 0}, {diag2, -diag2, 0}, {-diag2, diag2, 0}, {-diag2, -diag2, 0},
	{diag2, 0, diag2}, {diag2, 0, -diag2}, {-diag2, 0, diag2}, {-diag2, 0, -diag2},
	{0, diag2, diag2}, {0, diag2, -diag2}, {0, -diag2, diag2}, {0, -diag2, -diag2},
}

// Thirty-two 4D vectors: one component zero, the rest +-1/sqrt(3).
var gradients4 = [32][4]float64{
	{0, diag4, diag4, diag4}, {0, diag4, diag4, -diag4}, {0, diag4, -diag4, diag4}, {0, diag4, -diag4, -diag4},
	{0, -diag4, diag4, diag4}, {0, -diag4, diag4, -diag4}, {0, -diag4, -diag4, diag4}, {0, -diag4, -diag4, -diag4},
	{diag4, 0, diag4, diag4}, {diag4, 0, diag4, -diag4}, {diag4, 0, -diag4, diag4}, {diag4, 0, -diag4, -diag4},
	{-diag4, 0, diag4, diag4}, {-diag4, 0, diag4, -diag4}, {-diag4, 0, -diag4, diag4}, {-diag4, 0, -diag4, -diag4},
	{diag4, diag4, 0, diag4}, {diag4, diag4, 0, -diag4}, {diag4, -diag4, 0, diag4}, {diag4, -diag4, 0, -diag4},
	{-diag4, diag4, 0, diag4}, {-diag4, diag4, 0, -diag4}, {-diag4, -diag4, 0, diag4}, {-diag4, -diag4, 0, -diag4},
	{diag4, diag4, diag4, 0}, {diag4, diag4, -diag4, 0}, {diag4, -diag4, diag4, 0}, {diag4, -diag4, -diag4, 0},
	{-diag4, diag4, diag4, 0}, {-diag4, diag4, -diag4, 0}, {-diag4, -diag4, diag4, 0}, {-diag4, -diag4, -diag4, 0},
}

func gradient2(index int) [2]float64 {
	return gradients2[index&0x07]
}

func gradient3(index int) [3]float64 {
	return gradients3[index%12]
}

func gradient4(index int) [4]float64 {
	return gradients4[index&0x1f]
}
