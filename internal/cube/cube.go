// Package cube implements the value-typed 3x3x3 Rubik's cube that
// cubescript's virtual machine treats as its entire data universe.
//
// A Cube is six faces of nine stickers each, stored in the fixed order
// U, F, R, B, L, D. Every public operation is a permutation of the
// sticker multiset: colours never appear or vanish, they only move.
package cube

import "fmt"

// Face identifies one of the six sides of a cube. The zero value is U.
type Face int

const (
	U Face = iota
	F
	R
	B
	L
	D
)

func (face Face) String() string {
	return [...]string{"U", "F", "R", "B", "L", "D"}[face]
}

// Colour is the initial sticker value painted on a given Face. Only
// distinctness of these values matters to execution; cubescript's
// opcode decoding depends on their sums (see SumFace), so the exact
// assignment is part of the language definition, not an implementation
// detail. U is 0, so a U face holding only U stickers sums to 0 (NOP);
// the other faces take disjoint bits (F=1, R=2, B=4, L=8, D=16), which
// keeps accidental arithmetic collisions easy to spot while debugging.
const (
	ColourU uint8 = 0
	ColourF uint8 = 1 << (iota - 1)
	ColourR
	ColourB
	ColourL
	ColourD
)

var faceColour = [6]uint8{ColourU, ColourF, ColourR, ColourB, ColourL, ColourD}

// Cube is six faces of nine stickers, laid out column-major:
//
//	0 3 6
//	1 4 7
//	2 5 8
//
// index 0 is top-left and index 8 is bottom-right when looking
// straight at the face.
type Cube struct {
	Faces [6][9]uint8
}

// New returns a freshly solved cube: every face uniformly one colour.
func New() Cube {
	var c Cube
	for face := 0; face < 6; face++ {
		for sticker := 0; sticker < 9; sticker++ {
			c.Faces[face][sticker] = faceColour[face]
		}
	}
	return c
}

// IsSolved reports whether every face of c is a single uniform colour.
func (c Cube) IsSolved() bool {
	for face := 0; face < 6; face++ {
		first := c.Faces[face][0]
		for sticker := 1; sticker < 9; sticker++ {
			if c.Faces[face][sticker] != first {
				return false
			}
		}
	}
	return true
}

// SumFace returns the 8-bit wrapping sum of the nine stickers on the
// given face. This is the sole derivation by which the VM decodes
// opcodes and condition flags from a cube's twisted state: callers
// depend only on equality with specific small integers, never on the
// sum as a colour value in its own right.
func (c Cube) SumFace(face Face) uint8 {
	var sum uint8
	for _, sticker := range c.Faces[face] {
		sum += sticker
	}
	return sum
}

func (c Cube) String() string {
	s := ""
	for face := 0; face < 6; face++ {
		s += fmt.Sprintf("%s: %v\n", Face(face), c.Faces[face])
	}
	return s
}

// rotateFaceCW applies the clockwise permutation [2,5,8,1,4,7,0,3,6]
// to a single nine-sticker face in place.
func rotateFaceCW(f *[9]uint8) {
	old := *f
	f[0], f[1], f[2] = old[2], old[5], old[8]
	f[3], f[4], f[5] = old[1], old[4], old[7]
	f[6], f[7], f[8] = old[0], old[3], old[6]
}

// rotateFaceCCW is the inverse of rotateFaceCW:
// [6,3,0,7,4,1,8,5,2].
func rotateFaceCCW(f *[9]uint8) {
	old := *f
	f[0], f[1], f[2] = old[6], old[3], old[0]
	f[3], f[4], f[5] = old[7], old[4], old[1]
	f[6], f[7], f[8] = old[8], old[5], old[2]
}

// rotateFace180 reverses the nine-sticker array, equivalent to two
// quarter turns under the column-major layout.
func rotateFace180(f *[9]uint8) {
	f[0], f[1], f[2], f[3], f[4], f[5], f[6], f[7], f[8] =
		f[8], f[7], f[6], f[5], f[4], f[3], f[2], f[1], f[0]
}
