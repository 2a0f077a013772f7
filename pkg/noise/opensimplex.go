package noise

import "math"

// OpenSimplex lattice constants, after the algorithm published at
// http://uniblock.tumblr.com/post/97868843242/noise (not Ken Perlin's
// patent-encumbered simplex noise).
const (
	stretch2D = -0.211324865405187 // (1/sqrt(2+1) - 1) / 2
	squish2D  = 0.366025403784439  // (sqrt(2+1) - 1) / 2
	stretch3D = -1.0 / 6.0         // (1/sqrt(3+1) - 1) / 3
	squish3D  = 1.0 / 3.0          // (sqrt(3+1) - 1) / 3
	stretch4D = -0.138196601125011 // (1/sqrt(4+1) - 1) / 4
	squish4D  = 0.309016994374947  // (sqrt(4+1) - 1) / 4

	norm2D = 1.0 / 14.0
	norm3D = 1.0 / 14.0
	norm4D = 1.0 / 6.8699090070956625
)

// OpenSimplex outputs 2/3/4-dimensional OpenSimplex noise: the input is
// stretched onto a simplectic lattice, the simplex containing the point
// is classified, and a radius-2 surflet is summed over the contributing
// lattice vertices. Unlike Perlin the output is not clamped, so extreme
// parameter choices may produce values slightly outside [-1, 1].
//
// OpenSimplex is an immutable value type; copies share the read-only
// permutation table.
type OpenSimplex struct {
	seed  uint32
	table *PermutationTable
}

// NewOpenSimplex constructs an OpenSimplex kernel with the default seed.
func NewOpenSimplex() OpenSimplex {
	return NewOpenSimplexSeed(DefaultSeed)
}

// NewOpenSimplexSeed constructs an OpenSimplex kernel for the given seed.
func NewOpenSimplexSeed(seed uint32) OpenSimplex {
	return OpenSimplex{seed: seed, table: NewPermutationTable(seed)}
}

// Seed returns the kernel's seed.
func (o OpenSimplex) Seed() uint32 { return o.seed }

// WithSeed returns a kernel for the given seed without mutating the
// receiver.
func (o OpenSimplex) WithSeed(seed uint32) OpenSimplex {
	if seed == o.seed {
		return o
	}
	return NewOpenSimplexSeed(seed)
}

func (o OpenSimplex) surflet2(xsv, ysv int, dx, dy float64) float64 {
	d := [2]float64{dx, dy}
	attn := 2.0 - dot2(d, d)
	if attn <= 0.0 {
		return 0.0
	}
	g := gradient2(o.table.Hash2(xsv, ysv))
	attnSq := attn * attn
	return attnSq * attnSq * dot2(d, g)
}

func (o OpenSimplex) surflet3(xsv, ysv, zsv int, dx, dy, dz float64) float64 {
	d := [3]float64{dx, dy, dz}
	attn := 2.0 - dot3(d, d)
	if attn <= 0.0 {
		return 0.0
	}
	g := gradient3(o.table.Hash3(xsv, ysv, zsv))
	attnSq := attn * attn
	return attnSq * attnSq * dot3(d, g)
}

func (o OpenSimplex) surflet4(xsv, ysv, zsv, wsv int, pos [4]float64) float64 {
	attn := 2.0 - dot4(pos, pos)
	if attn <= 0.0 {
		return 0.0
	}
	g := gradient4(o.table.Hash4(xsv, ysv, zsv, wsv))
	attnSq := attn * attn
	return attnSq * attnSq * dot4(pos, g)
}

// Eval2 evaluates 2D OpenSimplex noise at point.
func (o OpenSimplex) Eval2(point [2]float64) float64 {
	// Place the input onto the stretched rhombus grid.
	stretchOffset := (point[0] + point[1]) * stretch2D
	xs := point[0] + stretchOffset
	ys := point[1] + stretchOffset

	xsbF := math.Floor(xs)
	ysbF := math.Floor(ys)
	xsb := int(xsbF)
	ysb := int(ysbF)

	// Skew back out to get the rhombus origin in input space.
	squishOffset := (xsbF + ysbF) * squish2D

	// Fractional skewed coordinates classify the region; inSum > 1
	// means the (1,1) triangle.
	xins := xs - xsbF
	yins := ys - ysbF
	inSum := xins + yins

	dx0 := point[0] - (xsbF + squishOffset)
	dy0 := point[1] - (ysbF + squishOffset)

	t0 := squish2D
	t1 := squish2D + 1.0
	t2 := squish2D + t1
	t3 := squish2D + squish2D
	t4 := 1.0 + t2

	// Contributions (1, 0) and (0, 1) are shared by both triangles.
	value := o.surflet2(xsb+1, ysb, dx0-t1, dy0-t0)
	value += o.surflet2(xsb, ysb+1, dx0-t0, dy0-t1)

	var vx, vy, evx, evy int
	var dx, dy, edx, edy float64

	if inSum < 1.0 {
		// (0,0) triangle. The surflet radius exceeds one simplex, so
		// one extra vertex contributes, picked by nearest-edge
		// tie-break.
		vx, vy = xsb, ysb
		dx, dy = dx0, dy0

		centerDist := 1.0 - inSum
		if centerDist > xins || centerDist > yins {
			if xins > yins {
				evx, evy = xsb+1, ysb-1
				edx, edy = dx0-1.0, dy0+1.0
			} else {
				evx, evy = xsb-1, ysb+1
				edx, edy = dx0+1.0, dy0-1.0
			}
		} else {
			evx, evy = xsb+1, ysb+1
			edx, edy = dx0-t2, dy0-t2
		}
	} else {
		// (1,1) triangle.
		vx, vy = xsb+1, ysb+1
		dx, dy = dx0-t2, dy0-t2

		centerDist := 2.0 - inSum
		if centerDist < xins || centerDist < yins {
			if xins > yins {
				evx, evy = xsb+2, ysb
				edx, edy = dx0-t4, dy0-t3
			} else {
				evx, evy = xsb, ysb+2
				edx, edy = dx0-t3, dy0-t4
			}
		} else {
			evx, evy = xsb, ysb
			edx, edy = dx0, dy0
		}
	}

	value += o.surflet2(vx, vy, dx, dy)
	value += o.surflet2(evx, evy, edx, edy)

	return value * norm2D
}

// Eval3 evaluates 3D OpenSimplex noise at point. The containing region
// of the stretched cube is one of two tetrahedra or the octahedron
// between them; each region contributes four primary vertices plus two
// extra vertices chosen by nearest-distance tie-breaks.
func (o OpenSimplex) Eval3(point [3]float64) float64 {
	stretchOffset := (point[0] + point[1] + point[2]) * stretch3D
	xs := point[0] + stretchOffset
	ys := point[1] + stretchOffset
	zs := point[2] + stretchOffset

	xsbF := math.Floor(xs)
	ysbF := math.Floor(ys)
	zsbF := math.Floor(zs)
	xsb := int(xsbF)
	ysb := int(ysbF)
	zsb := int(zsbF)

	squishOffset := (xsbF + ysbF + zsbF) * squish3D

	xins := xs - xsbF
	yins := ys - ysbF
	zins := zs - zsbF
	inSum := xins + yins + zins

	dx0 := point[0] - (xsbF + squishOffset)
	dy0 := point[1] - (ysbF + squishOffset)
	dz0 := point[2] - (zsbF + squishOffset)

	const (
		sq  = squish3D
		sq2 = 2.0 * squish3D
		sq3 = 3.0 * squish3D
	)

	var value float64
	var xsvExt0, ysvExt0, zsvExt0 int
	var xsvExt1, ysvExt1, zsvExt1 int
	var dxExt0, dyExt0, dzExt0 float64
	var dxExt1, dyExt1, dzExt1 float64

	switch {
	case inSum <= 1.0:
		// Inside the tetrahedron at (0,0,0). Determine which two of
		// (1,0,0), (0,1,0), (0,0,1) are closest; axis bits 1|2|4.
		aPoint, bPoint := 0x01, 0x02
		aScore, bScore := xins, yins
		if aScore >= bScore && zins > bScore {
			bScore, bPoint = zins, 0x04
		} else if aScore < bScore && zins > aScore {
			aScore, aPoint = zins, 0x04
		}

		wins := 1.0 - inSum
		if wins > aScore || wins > bScore {
			// (0,0,0) is one of the two closest vertices; the other
			// closest vertex determines the extra vertices.
			c := aPoint
			if bScore > aScore {
				c = bPoint
			}

			if c&0x01 == 0 {
				xsvExt0, xsvExt1 = xsb-1, xsb
				dxExt0, dxExt1 = dx0+1.0, dx0
			} else {
				xsvExt0, xsvExt1 = xsb+1, xsb+1
				dxExt0, dxExt1 = dx0-1.0, dx0-1.0
			}

			if c&0x02 == 0 {
				ysvExt0, ysvExt1 = ysb, ysb
				dyExt0, dyExt1 = dy0, dy0
				if c&0x01 == 0 {
					ysvExt1--
					dyExt1 += 1.0
				} else {
					ysvExt0--
					dyExt0 += 1.0
				}
			} else {
				ysvExt0, ysvExt1 = ysb+1, ysb+1
				dyExt0, dyExt1 = dy0-1.0, dy0-1.0
			}

			if c&0x04 == 0 {
				zsvExt0, zsvExt1 = zsb, zsb-1
				dzExt0, dzExt1 = dz0, dz0+1.0
			} else {
				zsvExt0, zsvExt1 = zsb+1, zsb+1
				dzExt0, dzExt1 = dz0-1.0, dz0-1.0
			}
		} else {
			// (0,0,0) is not one of the closest two; the extra
			// vertices are determined by the closest two combined.
			c := aPoint | bPoint

			if c&0x01 == 0 {
				xsvExt0, xsvExt1 = xsb, xsb-1
				dxExt0, dxExt1 = dx0-sq2, dx0+1.0-sq
			} else {
				xsvExt0, xsvExt1 = xsb+1, xsb+1
				dxExt0, dxExt1 = dx0-1.0-sq2, dx0-1.0-sq
			}

			if c&0x02 == 0 {
				ysvExt0, ysvExt1 = ysb, ysb-1
				dyExt0, dyExt1 = dy0-sq2, dy0+1.0-sq
			} else {
				ysvExt0, ysvExt1 = ysb+1, ysb+1
				dyExt0, dyExt1 = dy0-1.0-sq2, dy0-1.0-sq
			}

			if c&0x04 == 0 {
				zsvExt0, zsvExt1 = zsb, zsb-1
				dzExt0, dzExt1 = dz0-sq2, dz0+1.0-sq
			} else {
				zsvExt0, zsvExt1 = zsb+1, zsb+1
				dzExt0, dzExt1 = dz0-1.0-sq2, dz0-1.0-sq
			}
		}

		value += o.surflet3(xsb, ysb, zsb, dx0, dy0, dz0)
		value += o.surflet3(xsb+1, ysb, zsb, dx0-1.0-sq, dy0-sq, dz0-sq)
		value += o.surflet3(xsb, ysb+1, zsb, dx0-sq, dy0-1.0-sq, dz0-sq)
		value += o.surflet3(xsb, ysb, zsb+1, dx0-sq, dy0-sq, dz0-1.0-sq)

	case inSum >= 2.0:
		// Inside the tetrahedron at (1,1,1). Closest two out of
		// (1,1,0), (1,0,1), (0,1,1).
		aPoint, bPoint := 0x06, 0x05
		aScore, bScore := xins, yins
		if aScore <= bScore && zins < bScore {
			bScore, bPoint = zins, 0x03
		} else if aScore > bScore && zins < aScore {
			aScore, aPoint = zins, 0x03
		}

		wins := 3.0 - inSum
		if wins < aScore || wins < bScore {
			// (1,1,1) is one of the two closest vertices.
			c := aPoint
			if bScore < aScore {
				c = bPoint
			}

			if c&0x01 != 0 {
				xsvExt0, xsvExt1 = xsb+2, xsb+1
				dxExt0, dxExt1 = dx0-2.0-sq3, dx0-1.0-sq3
			} else {
				xsvExt0, xsvExt1 = xsb, xsb
				dxExt0, dxExt1 = dx0-sq3, dx0-sq3
			}

			if c&0x02 != 0 {
				ysvExt0, ysvExt1 = ysb+1, ysb+1
				dyExt0, dyExt1 = dy0-1.0-sq3, dy0-1.0-sq3
				if c&0x01 != 0 {
					ysvExt1++
					dyExt1 -= 1.0
				} else {
					ysvExt0++
					dyExt0 -= 1.0
				}
			} else {
				ysvExt0, ysvExt1 = ysb, ysb
				dyExt0, dyExt1 = dy0-sq3, dy0-sq3
			}

			if c&0x04 != 0 {
				zsvExt0, zsvExt1 = zsb+1, zsb+2
				dzExt0, dzExt1 = dz0-1.0-sq3, dz0-2.0-sq3
			} else {
				zsvExt0, zsvExt1 = zsb, zsb
				dzExt0, dzExt1 = dz0-sq3, dz0-sq3
			}
		} else {
			// (1,1,1) is not one of the closest two; the shared axes
			// of the closest two decide.
			c := aPoint & bPoint

			if c&0x01 != 0 {
				xsvExt0, xsvExt1 = xsb+1, xsb+2
				dxExt0, dxExt1 = dx0-1.0-sq, dx0-2.0-sq2
			} else {
				xsvExt0, xsvExt1 = xsb, xsb
				dxExt0, dxExt1 = dx0-sq, dx0-sq2
			}

			if c&0x02 != 0 {
				ysvExt0, ysvExt1 = ysb+1, ysb+2
				dyExt0, dyExt1 = dy0-1.0-sq, dy0-2.0-sq2
			} else {
				ysvExt0, ysvExt1 = ysb, ysb
				dyExt0, dyExt1 = dy0-sq, dy0-sq2
			}

			if c&0x04 != 0 {
				zsvExt0, zsvExt1 = zsb+1, zsb+2
				dzExt0, dzExt1 = dz0-1.0-sq, dz0-2.0-sq2
			} else {
				zsvExt0, zsvExt1 = zsb, zsb
				dzExt0, dzExt1 = dz0-sq, dz0-sq2
			}
		}

		value += o.surflet3(xsb+1, ysb+1, zsb, dx0-1.0-sq2, dy0-1.0-sq2, dz0-sq2)
		value += o.surflet3(xsb+1, ysb, zsb+1, dx0-1.0-sq2, dy0-sq2, dz0-1.0-sq2)
		value += o.surflet3(xsb, ysb+1, zsb+1, dx0-sq2, dy0-1.0-sq2, dz0-1.0-sq2)
		value += o.surflet3(xsb+1, ysb+1, zsb+1, dx0-1.0-sq3, dy0-1.0-sq3, dz0-1.0-sq3)

	default:
		// Inside the octahedron (rectified 3-simplex) between them.
		var aScore, bScore float64
		var aPoint, bPoint int
		var aIsFurtherSide, bIsFurtherSide bool

		// Decide between (0,0,1) and (1,1,0).
		if p1 := xins + yins; p1 > 1.0 {
			aScore, aPoint, aIsFurtherSide = p1-1.0, 0x03, true
		} else {
			aScore, aPoint, aIsFurtherSide = 1.0-p1, 0x04, false
		}

		// Decide between (0,1,0) and (1,0,1).
		if p2 := xins + zins; p2 > 1.0 {
			bScore, bPoint, bIsFurtherSide = p2-1.0, 0x05, true
		} else {
			bScore, bPoint, bIsFurtherSide = 1.0-p2, 0x02, false
		}

		// The closer of (1,0,0) and (0,1,1) replaces the further of
		// the two decided above, if it beats it.
		if p3 := yins + zins; p3 > 1.0 {
			score := p3 - 1.0
			if aScore <= bScore && aScore < score {
				aScore, aPoint, aIsFurtherSide = score, 0x06, true
			} else if aScore > bScore && bScore < score {
				bScore, bPoint, bIsFurtherSide = score, 0x06, true
			}
		} else {
			score := 1.0 - p3
			if aScore <= bScore && aScore < score {
				aScore, aPoint, aIsFurtherSide = score, 0x01, false
			} else if aScore > bScore && bScore < score {
				bScore, bPoint, bIsFurtherSide = score, 0x01, false
			}
		}

		if aIsFurtherSide == bIsFurtherSide {
			if aIsFurtherSide {
				// Both closest points on the (1,1,1) side: one extra
				// point is (1,1,1), the other lies on the shared axis.
				xsvExt0, ysvExt0, zsvExt0 = xsb+1, ysb+1, zsb+1
				dxExt0, dyExt0, dzExt0 = dx0-1.0-sq3, dy0-1.0-sq3, dz0-1.0-sq3

				switch c := aPoint & bPoint; {
				case c&0x01 != 0:
					xsvExt1, ysvExt1, zsvExt1 = xsb+2, ysb, zsb
					dxExt1, dyExt1, dzExt1 = dx0-2.0-sq2, dy0-sq2, dz0-sq2
				case c&0x02 != 0:
					xsvExt1, ysvExt1, zsvExt1 = xsb, ysb+2, zsb
					dxExt1, dyExt1, dzExt1 = dx0-sq2, dy0-2.0-sq2, dz0-sq2
				default:
					xsvExt1, ysvExt1, zsvExt1 = xsb, ysb, zsb+2
					dxExt1, dyExt1, dzExt1 = dx0-sq2, dy0-sq2, dz0-2.0-sq2
				}
			} else {
				// Both closest points on the (0,0,0) side: one extra
				// point is (0,0,0), the other is keyed by the omitted
				// axis.
				xsvExt0, ysvExt0, zsvExt0 = xsb, ysb, zsb
				dxExt0, dyExt0, dzExt0 = dx0, dy0, dz0

				switch c := aPoint | bPoint; {
				case c&0x01 == 0:
					xsvExt1, ysvExt1, zsvExt1 = xsb-1, ysb+1, zsb+1
					dxExt1, dyExt1, dzExt1 = dx0+1.0-sq, dy0-1.0-sq, dz0-1.0-sq
				case c&0x02 == 0:
					xsvExt1, ysvExt1, zsvExt1 = xsb+1, ysb-1, zsb+1
					dxExt1, dyExt1, dzExt1 = dx0-1.0-sq, dy0+1.0-sq, dz0-1.0-sq
				default:
					xsvExt1, ysvExt1, zsvExt1 = xsb+1, ysb+1, zsb-1
					dxExt1, dyExt1, dzExt1 = dx0-1.0-sq, dy0-1.0-sq, dz0+1.0-sq
				}
			}
		} else {
			// One closest point on each side.
			var c1, c2 int
			if aIsFurtherSide {
				c1, c2 = aPoint, bPoint
			} else {
				c1, c2 = bPoint, aPoint
			}

			// One extra point is a permutation of (1,1,-1), negating
			// the axis absent from c1.
			switch {
			case c1&0x01 == 0:
				xsvExt0, ysvExt0, zsvExt0 = xsb-1, ysb+1, zsb+1
				dxExt0, dyExt0, dzExt0 = dx0+1.0-sq, dy0-1.0-sq, dz0-1.0-sq
			case c1&0x02 == 0:
				xsvExt0, ysvExt0, zsvExt0 = xsb+1, ysb-1, zsb+1
				dxExt0, dyExt0, dzExt0 = dx0-1.0-sq, dy0+1.0-sq, dz0-1.0-sq
			default:
				xsvExt0, ysvExt0, zsvExt0 = xsb+1, ysb+1, zsb-1
				dxExt0, dyExt0, dzExt0 = dx0-1.0-sq, dy0-1.0-sq, dz0+1.0-sq
			}

			// The other is a permutation of (0,0,2) on c2's axis.
			xsvExt1, ysvExt1, zsvExt1 = xsb, ysb, zsb
			dxExt1, dyExt1, dzExt1 = dx0-sq2, dy0-sq2, dz0-sq2
			switch {
			case c2&0x01 != 0:
				xsvExt1 += 2
				dxExt1 -= 2.0
			case c2&0x02 != 0:
				ysvExt1 += 2
				dyExt1 -= 2.0
			default:
				zsvExt1 += 2
				dzExt1 -= 2.0
			}
		}

		value += o.surflet3(xsb+1, ysb, zsb, dx0-1.0-sq, dy0-sq, dz0-sq)
		value += o.surflet3(xsb, ysb+1, zsb, dx0-sq, dy0-1.0-sq, dz0-sq)
		value += o.surflet3(xsb, ysb, zsb+1, dx0-sq, dy0-sq, dz0-1.0-sq)
		value += o.surflet3(xsb+1, ysb+1, zsb, dx0-1.0-sq2, dy0-1.0-sq2, dz0-sq2)
		value += o.surflet3(xsb+1, ysb, zsb+1, dx0-1.0-sq2, dy0-sq2, dz0-1.0-sq2)
		value += o.surflet3(xsb, ysb+1, zsb+1, dx0-sq2, dy0-1.0-sq2, dz0-1.0-sq2)
	}

	value += o.surflet3(xsvExt0, ysvExt0, zsvExt0, dxExt0, dyExt0, dzExt0)
	value += o.surflet3(xsvExt1, ysvExt1, zsvExt1, dxExt1, dyExt1, dzExt1)

	return value * norm3D
}

// Eval4 evaluates 4D OpenSimplex noise at point. The stretched
// hypercube decomposes into two outer pentachoron regions with five
// contributing vertices each and two dispentachoron regions with ten.
func (o OpenSimplex) Eval4(point [4]float64) float64 {
	stretchOffset := (point[0] + point[1] + point[2] + point[3]) * stretch4D
	xs := point[0] + stretchOffset
	ys := point[1] + stretchOffset
	zs := point[2] + stretchOffset
	ws := point[3] + stretchOffset

	xsbF := math.Floor(xs)
	ysbF := math.Floor(ys)
	zsbF := math.Floor(zs)
	wsbF := math.Floor(ws)
	xsb := int(xsbF)
	ysb := int(ysbF)
	zsb := int(zsbF)
	wsb := int(wsbF)

	squishOffset := (xsbF + ysbF + zsbF + wsbF) * squish4D

	inSum := (xs - xsbF) + (ys - ysbF) + (zs - zsbF) + (ws - wsbF)

	pos0 := [4]float64{
		point[0] - (xsbF + squishOffset),
		point[1] - (ysbF + squishOffset),
		point[2] - (zsbF + squishOffset),
		point[3] - (wsbF + squishOffset),
	}

	const (
		sq  = squish4D
		sq3 = 3.0 * squish4D
	)

	var value float64

	switch {
	case inSum <= 1.0:
		// Pentachoron at (0,0,0,0).
		value += o.surflet4(xsb, ysb, zsb, wsb, pos0)

		pos1 := [4]float64{pos0[0] - 1.0 - sq, pos0[1] - sq, pos0[2] - sq, pos0[3] - sq}
		value += o.surflet4(xsb+1, ysb, zsb, wsb, pos1)

		pos2 := [4]float64{pos1[0] + 1.0, pos1[1] - 1.0, pos1[2], pos1[3]}
		value += o.surflet4(xsb, ysb+1, zsb, wsb, pos2)

		pos3 := [4]float64{pos2[0], pos1[1], pos1[2] - 1.0, pos1[3]}
		value += o.surflet4(xsb, ysb, zsb+1, wsb, pos3)

		pos4 := [4]float64{pos2[0], pos1[1], pos1[2], pos1[3] - 1.0}
		value += o.surflet4(xsb, ysb, zsb, wsb+1, pos4)

	case inSum >= 3.0:
		// Pentachoron at (1,1,1,1).
		pos4 := [4]float64{pos0[0] - 1.0 - sq3, pos0[1] - 1.0 - sq3, pos0[2] - 1.0 - sq3, pos0[3] - sq3}
		value += o.surflet4(xsb+1, ysb+1, zsb+1, wsb, pos4)

		pos3 := [4]float64{pos4[0], pos4[1], pos4[2] + 1.0, pos4[3] - 1.0}
		value += o.surflet4(xsb+1, ysb+1, zsb, wsb+1, pos3)

		pos2 := [4]float64{pos4[0], pos4[1] + 1.0, pos4[2], pos3[3]}
		value += o.surflet4(xsb+1, ysb, zsb+1, wsb+1, pos2)

		pos1 := [4]float64{pos0[0] - sq3, pos4[1], pos4[2], pos3[3]}
		value += o.surflet4(xsb, ysb+1, zsb+1, wsb+1, pos1)

		pos5 := [4]float64{pos4[0] - sq, pos4[1] - sq, pos4[2] - sq, pos3[3] - sq}
		value += o.surflet4(xsb+1, ysb+1, zsb+1, wsb+1, pos5)

	case inSum <= 2.0:
		// First dispentachoron.
		pos1 := [4]float64{pos0[0] - 1.0 - sq, pos0[1] - sq, pos0[2] - sq, pos0[3] - sq}
		value += o.surflet4(xsb+1, ysb, zsb, wsb, pos1)

		pos2 := [4]float64{pos1[0] + 1.0, pos1[1] - 1.0, pos1[2], pos1[3]}
		value += o.surflet4(xsb, ysb+1, zsb, wsb, pos2)

		pos3 := [4]float64{pos2[0], pos1[1], pos1[2] - 1.0, pos1[3]}
		value += o.surflet4(xsb, ysb, zsb+1, wsb, pos3)

		pos4 := [4]float64{pos2[0], pos1[1], pos1[2], pos1[3] - 1.0}
		value += o.surflet4(xsb, ysb, zsb, wsb+1, pos4)

		pos5 := [4]float64{pos1[0] - sq, pos2[1] - sq, pos1[2] - sq, pos1[3] - sq}
		value += o.surflet4(xsb+1, ysb+1, zsb, wsb, pos5)

		pos6 := [4]float64{pos5[0], pos5[1] + 1.0, pos5[2] - 1.0, pos5[3]}
		value += o.surflet4(xsb+1, ysb, zsb+1, wsb, pos6)

		pos7 := [4]float64{pos5[0], pos6[1], pos5[2], pos5[3] - 1.0}
		value += o.surflet4(xsb+1, ysb, zsb, wsb+1, pos7)

		pos8 := [4]float64{pos5[0] + 1.0, pos5[1], pos6[2], pos5[3]}
		value += o.surflet4(xsb, ysb+1, zsb+1, wsb, pos8)

		pos9 := [4]float64{pos8[0], pos5[1], pos5[2], pos7[3]}
		value += o.surflet4(xsb, ysb+1, zsb, wsb+1, pos9)

		pos10 := [4]float64{pos8[0], pos6[1], pos6[2], pos7[3]}
		value += o.surflet4(xsb, ysb, zsb+1, wsb+1, pos10)

	default:
		// Second dispentachoron.
		pos4 := [4]float64{pos0[0] - 1.0 - sq3, pos0[1] - 1.0 - sq3, pos0[2] - 1.0 - sq3, pos0[3] - sq3}
		value += o.surflet4(xsb+1, ysb+1, zsb+1, wsb, pos4)

		pos3 := [4]float64{pos4[0], pos4[1], pos4[2] + 1.0, pos4[3] - 1.0}
		value += o.surflet4(xsb+1, ysb+1, zsb, wsb+1, pos3)

		pos2 := [4]float64{pos4[0], pos4[1] + 1.0, pos4[2], pos3[3]}
		value += o.surflet4(xsb+1, ysb, zsb+1, wsb+1, pos2)

		pos1 := [4]float64{pos4[0] + 1.0, pos4[1], pos4[2], pos3[3]}
		value += o.surflet4(xsb, ysb+1, zsb+1, wsb+1, pos1)

		pos5 := [4]float64{pos4[0] + sq, pos4[1] + sq, pos3[2] + sq, pos4[3] + sq}
		value += o.surflet4(xsb+1, ysb+1, zsb, wsb, pos5)

		pos6 := [4]float64{pos5[0], pos5[1] + 1.0, pos5[2] - 1.0, pos5[3]}
		value += o.surflet4(xsb+1, ysb, zsb+1, wsb, pos6)

		pos7 := [4]float64{pos5[0], pos6[1], pos5[2], pos5[3] - 1.0}
		value += o.surflet4(xsb+1, ysb, zsb, wsb+1, pos7)

		pos8 := [4]float64{pos5[0] + 1.0, pos5[1], pos6[2], pos5[3]}
		value += o.surflet4(xsb, ysb+1, zsb+1, wsb, pos8)

		pos9 := [4]float64{pos8[0], pos5[1], pos5[2], pos7[3]}
		value += o.surflet4(xsb, ysb+1, zsb, wsb+1, pos9)

		pos10 := [4]float64{pos8[0], pos6[1], pos6[2], pos7[3]}
		value += o.surflet4(xsb, ysb, zsb+1, wsb+1, pos10)
	}

	return value * norm4D
}

// ProcessField2D evaluates the kernel over every coordinate of field in
// parallel, returning a new field.
func (o OpenSimplex) ProcessField2D(field *NoiseField2D) *NoiseField2D {
	return evalField2D(field, o.Eval2)
}

// ProcessField2DSerial is the sequential strategy; its output is
// bit-identical to ProcessField2D.
func (o OpenSimplex) ProcessField2DSerial(field *NoiseField2D) *NoiseField2D {
	return evalField2DSerial(field, o.Eval2)
}

// ProcessField3D evaluates the kernel over every coordinate of field in
// parallel, returning a new field.
func (o OpenSimplex) ProcessField3D(field *NoiseField3D) *NoiseField3D {
	return evalField3D(field, o.Eval3)
}

// ProcessField3DSerial is the sequential strategy; its output is
// bit-identical to ProcessField3D.
func (o OpenSimplex) ProcessField3DSerial(field *NoiseField3D) *NoiseField3D {
	return evalField3DSerial(field, o.Eval3)
}
