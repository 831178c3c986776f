package cube

// reorderFaces replaces c's six faces with a new assignment, given as
// the old face index (U=0,F=1,R=2,B=3,L=4,D=5) to source each new slot
// from, in canonical U,F,R,B,L,D order.
func reorderFaces(c *Cube, from [6]Face) {
	old := c.Faces
	for slot, src := range from {
		c.Faces[slot] = old[src]
	}
}

// RotateX rotates the whole cube about the R/L axis: faces become
// [F, D, R, U, L, B], with R spun clockwise and L counter-clockwise.
func (c *Cube) RotateX() {
	reorderFaces(c, [6]Face{F, D, R, U, L, B})
	rotateFaceCW(&c.Faces[R])
	rotateFaceCCW(&c.Faces[L])
}

// RotateXPrime is the inverse of RotateX: faces become
// [B, U, R, D, L, F], R counter-clockwise, L clockwise.
func (c *Cube) RotateXPrime() {
	reorderFaces(c, [6]Face{B, U, R, D, L, F})
	rotateFaceCCW(&c.Faces[R])
	rotateFaceCW(&c.Faces[L])
}

// RotateX2 is a 180-degree X rotation: faces become
// [D, B, R, F, L, U], R and L each reversed.
func (c *Cube) RotateX2() {
	reorderFaces(c, [6]Face{D, B, R, F, L, U})
	rotateFace180(&c.Faces[R])
	rotateFace180(&c.Faces[L])
}

// RotateY rotates the whole cube about the U/D axis: faces become
// [U, R, B, L, F, D], U spun clockwise and D counter-clockwise.
func (c *Cube) RotateY() {
	reorderFaces(c, [6]Face{U, R, B, L, F, D})
	rotateFaceCW(&c.Faces[U])
	rotateFaceCCW(&c.Faces[D])
}

// RotateYPrime is the inverse of RotateY: faces become
// [U, L, F, R, B, D], U counter-clockwise, D clockwise.
func (c *Cube) RotateYPrime() {
	reorderFaces(c, [6]Face{U, L, F, R, B, D})
	rotateFaceCCW(&c.Faces[U])
	rotateFaceCW(&c.Faces[D])
}

// RotateY2 is a 180-degree Y rotation: faces become
// [U, B, L, F, R, D], U and D each reversed.
func (c *Cube) RotateY2() {
	reorderFaces(c, [6]Face{U, B, L, F, R, D})
	rotateFace180(&c.Faces[U])
	rotateFace180(&c.Faces[D])
}

// RotateZ rotates the whole cube about the F/B axis: faces become
// [L, F, U, B, D, R], F spun clockwise and B counter-clockwise.
func (c *Cube) RotateZ() {
	reorderFaces(c, [6]Face{L, F, U, B, D, R})
	rotateFaceCW(&c.Faces[F])
	rotateFaceCCW(&c.Faces[B])
}

// RotateZPrime is the inverse of RotateZ: faces become
// [R, F, D, B, U, L], F counter-clockwise, B clockwise.
func (c *Cube) RotateZPrime() {
	reorderFaces(c, [6]Face{R, F, D, B, U, L})
	rotateFaceCCW(&c.Faces[F])
	rotateFaceCW(&c.Faces[B])
}

// RotateZ2 is a 180-degree Z rotation: faces become
// [D, F, L, B, R, U], F and B each reversed.
func (c *Cube) RotateZ2() {
	reorderFaces(c, [6]Face{D, F, L, B, R, U})
	rotateFace180(&c.Faces[F])
	rotateFace180(&c.Faces[B])
}
