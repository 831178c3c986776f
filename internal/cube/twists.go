package cube

// cyclePoint names a single three-sticker run inside a twist's
// four-face cycle: the face it lives on and the three column-major
// indices (in correspondence order) that move together.
type cyclePoint struct {
	face Face
	idx  [3]int
}

// cycle4 moves the stickers named by each point one step forward
// along the chain points[0] -> points[1] -> points[2] -> points[3] ->
// points[0]: the old contents of points[k] become the new contents of
// points[k+1]. This is the shared machinery behind every face twist's
// edge-cycling behaviour described in spec.md 4.1.
func cycle4(c *Cube, points [4]cyclePoint) {
	var saved [4][3]uint8
	for k, p := range points {
		for i, idx := range p.idx {
			saved[k][i] = c.Faces[p.face][idx]
		}
	}
	for k := range points {
		next := (k + 1) % 4
		dst := points[next]
		for i, idx := range dst.idx {
			c.Faces[dst.face][idx] = saved[k][i]
		}
	}
}

// TwistU rotates the U face clockwise and cycles the top row of
// F -> L -> B -> R.
func (c *Cube) TwistU() {
	rotateFaceCW(&c.Faces[U])
	cycle4(c, [4]cyclePoint{
		{F, [3]int{0, 3, 6}},
		{L, [3]int{0, 3, 6}},
		{B, [3]int{0, 3, 6}},
		{R, [3]int{0, 3, 6}},
	})
}

// TwistUPrime is the inverse of TwistU.
func (c *Cube) TwistUPrime() { c.TwistU(); c.TwistU(); c.TwistU() }

// TwistU2 is a 180-degree U turn.
func (c *Cube) TwistU2() { c.TwistU(); c.TwistU() }

// TwistD rotates the D face clockwise and cycles the bottom row of
// F -> R -> B -> L.
func (c *Cube) TwistD() {
	rotateFaceCW(&c.Faces[D])
	cycle4(c, [4]cyclePoint{
		{F, [3]int{2, 5, 8}},
		{R, [3]int{2, 5, 8}},
		{B, [3]int{2, 5, 8}},
		{L, [3]int{2, 5, 8}},
	})
}

func (c *Cube) TwistDPrime() { c.TwistD(); c.TwistD(); c.TwistD() }
func (c *Cube) TwistD2()     { c.TwistD(); c.TwistD() }

// TwistF rotates the F face clockwise, cycling U[2,5,8] (U's bottom
// row), R[0,3,6] (R's top row), D[6,3,0] (D's top row, reversed) and
// L[8,5,2] (L's bottom row, reversed) in the column-major layout.
func (c *Cube) TwistF() {
	rotateFaceCW(&c.Faces[F])
	cycle4(c, [4]cyclePoint{
		{U, [3]int{2, 5, 8}},
		{R, [3]int{0, 3, 6}},
		{D, [3]int{6, 3, 0}},
		{L, [3]int{8, 5, 2}},
	})
}

func (c *Cube) TwistFPrime() { c.TwistF(); c.TwistF(); c.TwistF() }
func (c *Cube) TwistF2()     { c.TwistF(); c.TwistF() }

// TwistB rotates the B face clockwise, cycling U[6,3,0] (U's top row,
// reversed), L[0,3,6] (L's top row), D[2,5,8] (D's bottom row) and
// R[8,5,2] (R's bottom row, reversed) in the column-major layout.
func (c *Cube) TwistB() {
	rotateFaceCW(&c.Faces[B])
	cycle4(c, [4]cyclePoint{
		{U, [3]int{6, 3, 0}},
		{L, [3]int{0, 3, 6}},
		{D, [3]int{2, 5, 8}},
		{R, [3]int{8, 5, 2}},
	})
}

func (c *Cube) TwistBPrime() { c.TwistB(); c.TwistB(); c.TwistB() }
func (c *Cube) TwistB2()     { c.TwistB(); c.TwistB() }

// TwistR rotates the R face clockwise, cycling U's right column, B's
// left column (reversed), D's right column and F's right column.
func (c *Cube) TwistR() {
	rotateFaceCW(&c.Faces[R])
	cycle4(c, [4]cyclePoint{
		{U, [3]int{6, 7, 8}},
		{B, [3]int{2, 1, 0}},
		{D, [3]int{6, 7, 8}},
		{F, [3]int{6, 7, 8}},
	})
}

func (c *Cube) TwistRPrime() { c.TwistR(); c.TwistR(); c.TwistR() }
func (c *Cube) TwistR2()     { c.TwistR(); c.TwistR() }

// TwistL rotates the L face clockwise: the mirror of TwistR, cycling
// U's left column, F's left column, D's left column and B's right
// column (reversed).
func (c *Cube) TwistL() {
	rotateFaceCW(&c.Faces[L])
	cycle4(c, [4]cyclePoint{
		{U, [3]int{0, 1, 2}},
		{F, [3]int{0, 1, 2}},
		{D, [3]int{0, 1, 2}},
		{B, [3]int{8, 7, 6}},
	})
}

func (c *Cube) TwistLPrime() { c.TwistL(); c.TwistL(); c.TwistL() }
func (c *Cube) TwistL2()     { c.TwistL(); c.TwistL() }
